package lbm

// Zou-He boundary conditions. Each rule is a pure local update: it reads
// the populations streamed into the wall cell, imposes the prescribed
// velocity (or density), solves the remaining macroscopic unknown from
// mass conservation, and reconstructs the inward-pointing populations from
// the known ones plus the bounce-back of their non-equilibrium part.
//
// Wall rules run over their full edge including the corner cells; the
// dedicated corner rules then overwrite the four corners, fixing the
// populations no single-wall rule determines.

// ZouHeWallVelocity applies the four velocity-wall rules.
func (l *Lattice) ZouHeWallVelocity() {
	l.ZouHeBottomWallVelocity()
	l.ZouHeLeftWallVelocity()
	l.ZouHeRightWallVelocity()
	l.ZouHeTopWallVelocity()
}

// ZouHeCornerVelocity applies the four corner rules.
func (l *Lattice) ZouHeCornerVelocity() {
	l.ZouHeBottomLeftCorner()
	l.ZouHeTopLeftCorner()
	l.ZouHeTopRightCorner()
	l.ZouHeBottomRightCorner()
}

// ZouHeLeftWallVelocity imposes the uLeft profile on the left wall.
func (l *Lattice) ZouHeLeftWallVelocity() {
	for j := 0; j < l.ny; j++ {
		id := l.idx(0, j)
		ux := l.uLeft[0][j]
		uy := l.uLeft[1][j]
		l.ux[id] = ux
		l.uy[id] = uy

		r := (l.g[0][id] + l.g[3][id] + l.g[4][id] +
			2.0*l.g[2][id] + 2.0*l.g[6][id] + 2.0*l.g[7][id]) / (1.0 - ux)
		l.rho[id] = r

		l.g[1][id] = l.g[2][id] + (2.0/3.0)*r*ux
		l.g[5][id] = l.g[6][id] - 0.5*(l.g[3][id]-l.g[4][id]) +
			(1.0/6.0)*r*ux + 0.5*r*uy
		l.g[8][id] = l.g[7][id] + 0.5*(l.g[3][id]-l.g[4][id]) +
			(1.0/6.0)*r*ux - 0.5*r*uy
	}
}

// ZouHeRightWallVelocity imposes the uRight profile on the right wall.
func (l *Lattice) ZouHeRightWallVelocity() {
	for j := 0; j < l.ny; j++ {
		id := l.idx(l.lx, j)
		ux := l.uRight[0][j]
		uy := l.uRight[1][j]
		l.ux[id] = ux
		l.uy[id] = uy

		r := (l.g[0][id] + l.g[3][id] + l.g[4][id] +
			2.0*l.g[1][id] + 2.0*l.g[5][id] + 2.0*l.g[8][id]) / (1.0 + ux)
		l.rho[id] = r

		l.g[2][id] = l.g[1][id] - (2.0/3.0)*r*ux
		l.g[6][id] = l.g[5][id] + 0.5*(l.g[3][id]-l.g[4][id]) -
			(1.0/6.0)*r*ux - 0.5*r*uy
		l.g[7][id] = l.g[8][id] - 0.5*(l.g[3][id]-l.g[4][id]) -
			(1.0/6.0)*r*ux + 0.5*r*uy
	}
}

// ZouHeTopWallVelocity imposes the uTop profile on the top wall.
func (l *Lattice) ZouHeTopWallVelocity() {
	for i := 0; i < l.nx; i++ {
		id := l.idx(i, l.ly)
		ux := l.uTop[0][i]
		uy := l.uTop[1][i]
		l.ux[id] = ux
		l.uy[id] = uy

		r := (l.g[0][id] + l.g[1][id] + l.g[2][id] +
			2.0*l.g[3][id] + 2.0*l.g[5][id] + 2.0*l.g[7][id]) / (1.0 + uy)
		l.rho[id] = r

		l.g[4][id] = l.g[3][id] - (2.0/3.0)*r*uy
		l.g[8][id] = l.g[7][id] - 0.5*(l.g[1][id]-l.g[2][id]) +
			0.5*r*ux - (1.0/6.0)*r*uy
		l.g[6][id] = l.g[5][id] + 0.5*(l.g[1][id]-l.g[2][id]) -
			0.5*r*ux - (1.0/6.0)*r*uy
	}
}

// ZouHeBottomWallVelocity imposes the uBot profile on the bottom wall.
func (l *Lattice) ZouHeBottomWallVelocity() {
	for i := 0; i < l.nx; i++ {
		id := l.idx(i, 0)
		ux := l.uBot[0][i]
		uy := l.uBot[1][i]
		l.ux[id] = ux
		l.uy[id] = uy

		r := (l.g[0][id] + l.g[1][id] + l.g[2][id] +
			2.0*l.g[4][id] + 2.0*l.g[6][id] + 2.0*l.g[8][id]) / (1.0 - uy)
		l.rho[id] = r

		l.g[3][id] = l.g[4][id] + (2.0/3.0)*r*uy
		l.g[5][id] = l.g[6][id] - 0.5*(l.g[1][id]-l.g[2][id]) +
			0.5*r*ux + (1.0/6.0)*r*uy
		l.g[7][id] = l.g[8][id] + 0.5*(l.g[1][id]-l.g[2][id]) -
			0.5*r*ux + (1.0/6.0)*r*uy
	}
}

// ZouHeRightWallPressure imposes the rhoRight density on the right wall and
// solves the wall-normal velocity from mass conservation.
func (l *Lattice) ZouHeRightWallPressure() {
	for j := 0; j < l.ny; j++ {
		id := l.idx(l.lx, j)
		r := l.rhoRight[j]
		l.rho[id] = r

		ux := (l.g[0][id] + l.g[3][id] + l.g[4][id] +
			2.0*l.g[1][id] + 2.0*l.g[5][id] + 2.0*l.g[8][id])/r - 1.0
		uy := l.uRight[1][j]
		l.ux[id] = ux
		l.uy[id] = uy

		l.g[2][id] = l.g[1][id] - (2.0/3.0)*r*ux
		l.g[6][id] = l.g[5][id] + 0.5*(l.g[3][id]-l.g[4][id]) -
			(1.0/6.0)*r*ux - 0.5*r*uy
		l.g[7][id] = l.g[8][id] - 0.5*(l.g[3][id]-l.g[4][id]) -
			(1.0/6.0)*r*ux + 0.5*r*uy
	}
}

// ZouHeBottomLeftCorner combines the bottom and left wall rules at (0,0).
func (l *Lattice) ZouHeBottomLeftCorner() {
	id := l.idx(0, 0)
	nb := l.idx(1, 0)
	ux := l.ux[nb]
	uy := l.uy[nb]
	r := l.rho[nb]
	l.ux[id] = ux
	l.uy[id] = uy
	l.rho[id] = r

	l.g[1][id] = l.g[2][id] + (2.0/3.0)*r*ux
	l.g[3][id] = l.g[4][id] + (2.0/3.0)*r*uy
	l.g[5][id] = l.g[6][id] + (1.0/6.0)*r*ux + (1.0/6.0)*r*uy
	l.g[7][id] = 0.0
	l.g[8][id] = 0.0
	l.g[0][id] = r - l.g[1][id] - l.g[2][id] - l.g[3][id] - l.g[4][id] -
		l.g[5][id] - l.g[6][id] - l.g[7][id] - l.g[8][id]
}

// ZouHeTopLeftCorner combines the top and left wall rules at (0,ly).
func (l *Lattice) ZouHeTopLeftCorner() {
	id := l.idx(0, l.ly)
	nb := l.idx(1, l.ly)
	ux := l.ux[nb]
	uy := l.uy[nb]
	r := l.rho[nb]
	l.ux[id] = ux
	l.uy[id] = uy
	l.rho[id] = r

	l.g[1][id] = l.g[2][id] + (2.0/3.0)*r*ux
	l.g[4][id] = l.g[3][id] - (2.0/3.0)*r*uy
	l.g[8][id] = l.g[7][id] + (1.0/6.0)*r*ux - (1.0/6.0)*r*uy
	l.g[5][id] = 0.0
	l.g[6][id] = 0.0
	l.g[0][id] = r - l.g[1][id] - l.g[2][id] - l.g[3][id] - l.g[4][id] -
		l.g[5][id] - l.g[6][id] - l.g[7][id] - l.g[8][id]
}

// ZouHeTopRightCorner combines the top and right wall rules at (lx,ly).
func (l *Lattice) ZouHeTopRightCorner() {
	id := l.idx(l.lx, l.ly)
	nb := l.idx(l.lx-1, l.ly)
	ux := l.ux[nb]
	uy := l.uy[nb]
	r := l.rho[nb]
	l.ux[id] = ux
	l.uy[id] = uy
	l.rho[id] = r

	l.g[2][id] = l.g[1][id] - (2.0/3.0)*r*ux
	l.g[4][id] = l.g[3][id] - (2.0/3.0)*r*uy
	l.g[6][id] = l.g[5][id] - (1.0/6.0)*r*ux - (1.0/6.0)*r*uy
	l.g[7][id] = 0.0
	l.g[8][id] = 0.0
	l.g[0][id] = r - l.g[1][id] - l.g[2][id] - l.g[3][id] - l.g[4][id] -
		l.g[5][id] - l.g[6][id] - l.g[7][id] - l.g[8][id]
}

// ZouHeBottomRightCorner combines the bottom and right wall rules at (lx,0).
func (l *Lattice) ZouHeBottomRightCorner() {
	id := l.idx(l.lx, 0)
	nb := l.idx(l.lx-1, 0)
	ux := l.ux[nb]
	uy := l.uy[nb]
	r := l.rho[nb]
	l.ux[id] = ux
	l.uy[id] = uy
	l.rho[id] = r

	l.g[2][id] = l.g[1][id] - (2.0/3.0)*r*ux
	l.g[3][id] = l.g[4][id] + (2.0/3.0)*r*uy
	l.g[7][id] = l.g[8][id] - (1.0/6.0)*r*ux + (1.0/6.0)*r*uy
	l.g[5][id] = 0.0
	l.g[6][id] = 0.0
	l.g[0][id] = r - l.g[1][id] - l.g[2][id] - l.g[3][id] - l.g[4][id] -
		l.g[5][id] - l.g[6][id] - l.g[7][id] - l.g[8][id]
}
