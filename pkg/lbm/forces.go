package lbm

// DragLift computes the dimensionless drag and lift coefficients on obs by
// momentum exchange: for every boundary node, the population leaving
// toward the obstacle and the one returning from it carry the momentum
// crossing the surface along the node's bounce-back direction. The sums
// are scaled by the reference density, velocity and length.
func (l *Lattice) DragLift(obs *Obstacle, rRef, uRef, lRef float64) (cx, cy float64) {
	fx := 0.0
	fy := 0.0
	for _, b := range obs.Boundary {
		id := l.idx(b.I, b.J)
		q := b.Q
		qb := l.ns[q]
		g0 := l.gUp[q][id] + l.g[qb][id]
		fx += g0 * float64(l.c[q][0])
		fy += g0 * float64(l.c[q][1])
	}
	cx = -2.0 * fx / (rRef * lRef * uRef * uRef)
	cy = -2.0 * fy / (rRef * lRef * uRef * uRef)
	return cx, cy
}
