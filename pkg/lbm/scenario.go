package lbm

import (
	"fmt"
	"io"
	"math"
)

// Scenario setup: prescribed wall profiles for the channel-flow and
// lid-driven-cavity cases, plus the analytic Poiseuille profile and the
// mid-domain error records used for validation.

// Poiseuille returns the analytic channel profile at physical height y,
//
//	ux = 4 (y_max - y)(y - y_min) / H^2
//
// ramped smoothly from rest by 1 - exp(-it^2 / 2 sigma^2).
func (l *Lattice) Poiseuille(y float64, it, sigma float64) (ux, uy float64) {
	h := l.cfg.YMax - l.cfg.YMin
	ux = 4.0 * (l.cfg.YMax - y) * (y - l.cfg.YMin) / (h * h)
	ramp := 1.0 - math.Exp(-it*it/(2.0*sigma*sigma))
	return ux * ramp, 0.0
}

// SetInletPoiseuille prescribes a parabolic velocity profile on the left
// wall, rest on the other walls, and rho_lbm on the pressure outlet. The
// ramp arguments soften the start-up of the inlet.
func (l *Lattice) SetInletPoiseuille(it, sigma float64) {
	l.resetWalls()
	for j := 0; j < l.ny; j++ {
		l.rhoRight[j] = l.cfg.RhoLBM
		_, y := l.Coords(0, j)
		ux, uy := l.Poiseuille(y, it, sigma)
		l.uLeft[0][j] = l.cfg.ULBM * ux
		l.uLeft[1][j] = l.cfg.ULBM * uy
	}
}

// SetFullPoiseuille prescribes the inlet profile and initializes the whole
// velocity field with the developed parabola.
func (l *Lattice) SetFullPoiseuille() {
	l.resetWalls()
	for j := 0; j < l.ny; j++ {
		l.rhoRight[j] = l.cfg.RhoLBM
		_, y := l.Coords(0, j)
		ux, uy := l.Poiseuille(y, 1.0, 1.0e-10)
		l.uLeft[0][j] = l.cfg.ULBM * ux
		l.uLeft[1][j] = l.cfg.ULBM * uy
		for i := 0; i < l.nx; i++ {
			id := l.idx(i, j)
			l.ux[id] = l.cfg.ULBM * ux
			l.uy[id] = l.cfg.ULBM * uy
		}
	}
}

// SetCavity prescribes tangential lid velocities on the four walls (top,
// bottom, left, right) and imposes them on the edges of the velocity
// field.
func (l *Lattice) SetCavity(ut, ub, ul, ur float64) {
	l.resetWalls()
	for i := 0; i < l.nx; i++ {
		l.uTop[0][i] = ut
		l.uBot[0][i] = ub
	}
	for j := 0; j < l.ny; j++ {
		l.uLeft[1][j] = ul
		l.uRight[1][j] = ur
	}
	for i := 0; i < l.nx; i++ {
		l.ux[l.idx(i, l.ly)] = l.uTop[0][i]
		l.uy[l.idx(i, l.ly)] = l.uTop[1][i]
		l.ux[l.idx(i, 0)] = l.uBot[0][i]
		l.uy[l.idx(i, 0)] = l.uBot[1][i]
	}
	for j := 0; j < l.ny; j++ {
		l.ux[l.idx(0, j)] = l.uLeft[0][j]
		l.uy[l.idx(0, j)] = l.uLeft[1][j]
		l.ux[l.idx(l.lx, j)] = l.uRight[0][j]
		l.uy[l.idx(l.lx, j)] = l.uRight[1][j]
	}
}

func (l *Lattice) resetWalls() {
	for r := 0; r < 2; r++ {
		for j := 0; j < l.ny; j++ {
			l.uLeft[r][j] = 0.0
			l.uRight[r][j] = 0.0
		}
		for i := 0; i < l.nx; i++ {
			l.uTop[r][i] = 0.0
			l.uBot[r][i] = 0.0
		}
	}
	for j := 0; j < l.ny; j++ {
		l.rhoRight[j] = 0.0
	}
}

// PoiseuilleError writes the mid-channel velocity profile against the
// analytic parabola, one line per row: coordinate, normalized simulated
// velocity, exact profile.
func (l *Lattice) PoiseuilleError(w io.Writer, uLBM float64) error {
	i := l.nx / 2
	for j := 0; j < l.ny; j++ {
		_, y := l.Coords(i, j)
		uex, _ := l.Poiseuille(y, 1.0e10, 1.0)
		u := l.ux[l.idx(i, j)]
		if _, err := fmt.Fprintf(w, "%v %v %v\n", float64(j)*l.cfg.Dx, u/uLBM, uex); err != nil {
			return err
		}
	}
	return nil
}

// CavityError writes the mid-line velocity profiles of the cavity case:
// uy along the horizontal mid-line to wy, ux along the vertical mid-line
// to wx. One line per sample: coordinate, normalized velocity.
func (l *Lattice) CavityError(wy, wx io.Writer, uLBM float64) error {
	mj := l.ny / 2
	for i := 0; i < l.nx; i++ {
		if _, err := fmt.Fprintf(wy, "%v %v\n", float64(i)*l.cfg.Dx, l.uy[l.idx(i, mj)]/uLBM); err != nil {
			return err
		}
	}
	mi := l.nx / 2
	for j := 0; j < l.ny; j++ {
		if _, err := fmt.Fprintf(wx, "%v %v\n", float64(j)*l.cfg.Dx, l.ux[l.idx(mi, j)]/uLBM); err != nil {
			return err
		}
	}
	return nil
}
