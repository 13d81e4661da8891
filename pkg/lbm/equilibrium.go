package lbm

// Equilibrium writes the second-order D2Q9 equilibrium distribution
//
//	gEq[q] = w[q]*rho*(1 + 3(c_q.u) + 4.5(c_q.u)^2 - 1.5|u|^2)
//
// for every cell, from the current macroscopic fields. It has no other
// side effect.
func (l *Lattice) Equilibrium() {
	parallelRange(0, l.nx, func(i int) {
		for j := 0; j < l.ny; j++ {
			id := l.idx(i, j)
			r := l.rho[id]
			ux := l.ux[id]
			uy := l.uy[id]
			v := 1.5 * (ux*ux + uy*uy)
			for q := 0; q < 9; q++ {
				t := 3.0 * (float64(l.c[q][0])*ux + float64(l.c[q][1])*uy)
				l.gEq[q][id] = r * l.w[q] * (1.0 + t + 0.5*t*t - v)
			}
		}
	})
}
