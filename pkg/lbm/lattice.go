// Package lbm implements a D2Q9 Lattice Boltzmann solver for 2D
// incompressible viscous flow around polygonal obstacles: TRT collision and
// streaming, Zou-He domain boundary conditions, halfway and interpolated
// obstacle bounce-back, momentum-exchange force integration and
// moving-average convergence control.
package lbm

import (
	"math"

	"github.com/go-logr/logr"
)

// Cs is the lattice speed of sound of the D2Q9 stencil.
var Cs = 1.0 / math.Sqrt(3.0)

// lambdaTRT is the magic parameter tying the two relaxation times.
// 1/4 gives the best stability.
const lambdaTRT = 1.0 / 4.0

// Lattice owns the dense distribution and macroscopic fields of the
// simulation together with the D2Q9 stencil constants. All arrays are
// allocated once at construction; the grid cannot be resized.
//
// Fields are flat slices indexed i*ny+j, one slice per direction q, with
// +x left to right, +y bottom to top and the origin at the bottom left.
type Lattice struct {
	cfg Config
	log logr.Logger

	nx, ny int
	lx, ly int // nx-1, ny-1

	// D2Q9 stencil: velocities, weights and the opposite-direction
	// permutation (an involution with ns[0]=0).
	c  [9][2]int
	w  [9]float64
	ns [9]int

	// TRT relaxation parameters derived from tau_lbm.
	tauP, tauM float64
	omP, omM   float64

	// Distribution fields: current, equilibrium, post-collision.
	g, gEq, gUp [9][]float64

	// Macroscopic fields.
	rho    []float64
	ux, uy []float64

	// Tag grid: 0 is fluid, a positive value is an obstacle identifier.
	lattice []int

	// Prescribed wall data, indexed along the wall. Row 0 is the x
	// component, row 1 the y component.
	uLeft, uRight, uTop, uBot [2][]float64
	rhoRight                  []float64

	obstacles []*Obstacle

	// Node spacing used by Coords.
	hx, hy float64
}

// Option configures a Lattice at construction.
type Option func(*Lattice)

// WithLogger sets the logger. The default discards all output.
func WithLogger(log logr.Logger) Option {
	return func(l *Lattice) {
		l.log = log
	}
}

// New builds a Lattice from cfg. It fails with a *GridConfigError if the
// configuration is invalid. Density starts at rho_lbm everywhere and the
// distributions at zero; call a scenario setter and then Init before
// stepping.
func New(cfg Config, opts ...Option) (*Lattice, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Lattice{
		cfg: cfg,
		log: logr.Discard(),
		nx:  cfg.NX,
		ny:  cfg.NY,
		lx:  cfg.NX - 1,
		ly:  cfg.NY - 1,

		c: [9][2]int{
			{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1},
			{1, 1}, {-1, -1}, {-1, 1}, {1, -1},
		},
		w: [9]float64{
			4.0 / 9.0,
			1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0,
			1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
		},
		ns: [9]int{0, 2, 1, 4, 3, 6, 5, 8, 7},

		tauP: cfg.TauLBM,
		tauM: lambdaTRT/(cfg.TauLBM-0.5) + 0.5,

		hx: (cfg.XMax - cfg.XMin) / float64(cfg.NX-1),
		hy: (cfg.YMax - cfg.YMin) / float64(cfg.NY-1),
	}
	l.omP = 1.0 / l.tauP
	l.omM = 1.0 / l.tauM

	for _, opt := range opts {
		opt(l)
	}

	n := l.nx * l.ny
	for q := 0; q < 9; q++ {
		l.g[q] = make([]float64, n)
		l.gEq[q] = make([]float64, n)
		l.gUp[q] = make([]float64, n)
	}
	l.rho = make([]float64, n)
	for i := range l.rho {
		l.rho[i] = cfg.RhoLBM
	}
	l.ux = make([]float64, n)
	l.uy = make([]float64, n)
	l.lattice = make([]int, n)

	for r := 0; r < 2; r++ {
		l.uLeft[r] = make([]float64, l.ny)
		l.uRight[r] = make([]float64, l.ny)
		l.uTop[r] = make([]float64, l.nx)
		l.uBot[r] = make([]float64, l.nx)
	}
	l.rhoRight = make([]float64, l.ny)

	l.log.Info("lbm solver",
		"u_lbm", cfg.ULBM,
		"L_lbm", cfg.LLBM,
		"nu_lbm", cfg.NuLBM,
		"Re_lbm", cfg.ReLBM,
		"tau_p_lbm", l.tauP,
		"tau_m_lbm", l.tauM,
		"dt", cfg.Dt,
		"dx", cfg.Dx,
		"nx", l.nx,
		"ny", l.ny,
		"IBB", cfg.IBB,
	)

	return l, nil
}

// Config returns the configuration the lattice was built from.
func (l *Lattice) Config() Config { return l.cfg }

// Size returns the lattice dimensions.
func (l *Lattice) Size() (nx, ny int) { return l.nx, l.ny }

func (l *Lattice) idx(i, j int) int { return i*l.ny + j }

// Coords returns the physical coordinates of lattice node (i,j).
func (l *Lattice) Coords(i, j int) (x, y float64) {
	return l.cfg.XMin + float64(i)*l.hx, l.cfg.YMin + float64(j)*l.hy
}

// Init sets the distributions to the equilibrium of the current
// macroscopic fields. Call it once after scenario setup, before stepping.
func (l *Lattice) Init() {
	l.Equilibrium()
	for q := 0; q < 9; q++ {
		copy(l.g[q], l.gEq[q])
		copy(l.gUp[q], l.gEq[q])
	}
}

// Macroscopic computes density and velocity moments on every fluid cell.
// Obstacle-tagged cells are left untouched.
func (l *Lattice) Macroscopic() {
	parallelRange(0, l.nx, func(i int) {
		for j := 0; j < l.ny; j++ {
			id := l.idx(i, j)
			if l.lattice[id] > 0 {
				continue
			}
			r := 0.0
			mx := 0.0
			my := 0.0
			for q := 0; q < 9; q++ {
				gq := l.g[q][id]
				r += gq
				mx += float64(l.c[q][0]) * gq
				my += float64(l.c[q][1]) * gq
			}
			l.rho[id] = r
			l.ux[id] = mx / r
			l.uy[id] = my / r
		}
	})
}

// CheckStability scans the fluid cells for non-positive density or
// non-finite fields and returns a *DivergenceError on the first hit.
// it is only used to annotate the error.
func (l *Lattice) CheckStability(it int) error {
	for i := 0; i < l.nx; i++ {
		for j := 0; j < l.ny; j++ {
			id := l.idx(i, j)
			if l.lattice[id] > 0 {
				continue
			}
			r := l.rho[id]
			if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) ||
				math.IsNaN(l.ux[id]) || math.IsInf(l.ux[id], 0) ||
				math.IsNaN(l.uy[id]) || math.IsInf(l.uy[id], 0) {
				return &DivergenceError{It: it, I: i, J: j, Rho: r}
			}
		}
	}
	return nil
}
