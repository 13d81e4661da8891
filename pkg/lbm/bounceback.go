package lbm

// BounceBackObstacle enforces the no-slip condition at the boundary nodes
// of obs, after the domain boundary conditions. For each boundary node the
// post-collision population leaving toward the obstacle along Q returns
// along the opposite direction.
//
// In halfway mode the wall sits midway between the node and the obstacle
// cell. In IBB mode the Bouzidi interpolation uses the sub-grid distance p
// to place the wall exactly, reading one or two upstream fluid nodes;
// boundary nodes are assumed to lie at least two cells from the domain
// walls in that mode.
func (l *Lattice) BounceBackObstacle(obs *Obstacle) {
	if l.cfg.IBB {
		for k, b := range obs.Boundary {
			id := l.idx(b.I, b.J)
			q := b.Q
			qb := l.ns[q]
			cx := l.c[q][0]
			cy := l.c[q][1]
			p := obs.IBB[k]
			pp := 2.0 * p
			if p < 0.5 {
				up1 := l.idx(b.I-cx, b.J-cy)
				up2 := l.idx(b.I-2*cx, b.J-2*cy)
				l.g[qb][id] = p*(pp+1.0)*l.gUp[q][id] +
					(1.0+pp)*(1.0-pp)*l.gUp[q][up1] -
					p*(1.0-pp)*l.gUp[q][up2]
			} else {
				up1 := l.idx(b.I-cx, b.J-cy)
				l.g[qb][id] = (1.0/(p*(pp+1.0)))*l.gUp[q][id] +
					((pp-1.0)/p)*l.gUp[qb][id] +
					((1.0-pp)/(1.0+pp))*l.gUp[qb][up1]
			}
		}
		return
	}

	for _, b := range obs.Boundary {
		id := l.idx(b.I, b.J)
		l.g[l.ns[b.Q]][id] = l.gUp[b.Q][id]
	}
}
