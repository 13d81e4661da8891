package lbm

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestEquilibriumConservation(t *testing.T) {
	l, err := New(testConfig(8, 8))
	assert.NoError(t, err)

	for i := 0; i < l.nx; i++ {
		for j := 0; j < l.ny; j++ {
			id := l.idx(i, j)
			l.rho[id] = 0.8 + 0.05*float64((i+2*j)%9)
			l.ux[id] = 0.02 * float64(i%5-2)
			l.uy[id] = 0.015 * float64(j%5-2)
		}
	}
	l.Equilibrium()

	for i := 0; i < l.nx; i++ {
		for j := 0; j < l.ny; j++ {
			id := l.idx(i, j)
			sum := 0.0
			mx := 0.0
			my := 0.0
			for q := 0; q < 9; q++ {
				sum += l.gEq[q][id]
				mx += float64(l.c[q][0]) * l.gEq[q][id]
				my += float64(l.c[q][1]) * l.gEq[q][id]
			}
			assert.True(t, math.Abs(sum-l.rho[id]) < 1e-13)
			assert.True(t, math.Abs(mx-l.rho[id]*l.ux[id]) < 1e-13)
			assert.True(t, math.Abs(my-l.rho[id]*l.uy[id]) < 1e-13)
		}
	}
}

func TestEquilibriumAtRest(t *testing.T) {
	l, err := New(testConfig(5, 5))
	assert.NoError(t, err)

	// rho = rho_lbm, u = 0 everywhere: gEq reduces to w[q]*rho.
	l.Equilibrium()
	for q := 0; q < 9; q++ {
		for _, v := range l.gEq[q] {
			assert.True(t, math.Abs(v-l.w[q]*l.cfg.RhoLBM) < 1e-15)
		}
	}
}
