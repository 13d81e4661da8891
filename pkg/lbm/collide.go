package lbm

// CollideStream advances the distributions one timestep.
//
// Collision uses the two-relaxation-time scheme: the non-equilibrium part
// of each population is split into symmetric and antisymmetric components
// with respect to the opposite-direction pairing ns, relaxed with omP and
// omM respectively, and recombined into gUp. The rest population q=0 is its
// own opposite and relaxes with omP alone.
//
// Streaming then copies gUp[q] at (i,j) into g[q] at (i+cx,j+cy) for every
// source whose target lies in the grid; the per-direction clipped ranges
// avoid out-of-bounds writes without branching per cell. Populations
// entering through the domain walls are not produced here and must be
// reconstructed by the Zou-He conditions.
func (l *Lattice) CollideStream() {
	// Collision.
	parallelRange(0, l.nx, func(i int) {
		for j := 0; j < l.ny; j++ {
			id := l.idx(i, j)
			l.gUp[0][id] = l.g[0][id] - l.omP*(l.g[0][id]-l.gEq[0][id])
			for q := 1; q < 9; q++ {
				qb := l.ns[q]
				gp := 0.5 * (l.g[q][id] + l.g[qb][id])
				gm := 0.5 * (l.g[q][id] - l.g[qb][id])
				ep := 0.5 * (l.gEq[q][id] + l.gEq[qb][id])
				em := 0.5 * (l.gEq[q][id] - l.gEq[qb][id])
				l.gUp[q][id] = l.g[q][id] - l.omP*(gp-ep) - l.omM*(gm-em)
			}
		}
	})

	// Streaming. gUp and g are distinct arrays, so the copy order does
	// not matter; directions are independent.
	copy(l.g[0], l.gUp[0])
	parallelRange(1, 9, func(q int) {
		cx := l.c[q][0]
		cy := l.c[q][1]
		ilo, ihi := 0, l.nx
		jlo, jhi := 0, l.ny
		if cx > 0 {
			ihi -= cx
		} else {
			ilo -= cx
		}
		if cy > 0 {
			jhi -= cy
		} else {
			jlo -= cy
		}
		for i := ilo; i < ihi; i++ {
			for j := jlo; j < jhi; j++ {
				l.g[q][l.idx(i+cx, j+cy)] = l.gUp[q][l.idx(i, j)]
			}
		}
	})
}
