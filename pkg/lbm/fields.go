package lbm

import (
	"fmt"
	"math"
)

// ScalarField is a read-only snapshot of a per-cell scalar, consumed by
// external visualization collaborators.
type ScalarField struct {
	NX, NY   int
	MinValue float64
	MaxValue float64
	values   []float64
}

// Value returns the field at cell (i,j).
func (s ScalarField) Value(i, j int) (float64, error) {
	if i < 0 || i >= s.NX {
		return 0, fmt.Errorf("x index out of range, must be between 0 and %d", s.NX-1)
	}
	if j < 0 || j >= s.NY {
		return 0, fmt.Errorf("y index out of range, must be between 0 and %d", s.NY-1)
	}
	return s.values[i*s.NY+j], nil
}

// VectorField is a read-only snapshot of a per-cell vector.
type VectorField struct {
	NX, NY           int
	valuesX, valuesY []float64
}

// Value returns both components at cell (i,j).
func (v VectorField) Value(i, j int) (float64, float64, error) {
	if i < 0 || i >= v.NX {
		return 0, 0, fmt.Errorf("x index out of range, must be between 0 and %d", v.NX-1)
	}
	if j < 0 || j >= v.NY {
		return 0, 0, fmt.Errorf("y index out of range, must be between 0 and %d", v.NY-1)
	}
	return v.valuesX[i*v.NY+j], v.valuesY[i*v.NY+j], nil
}

// Density returns a copy of the density field.
func (l *Lattice) Density() ScalarField {
	vals := make([]float64, len(l.rho))
	copy(vals, l.rho)
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, v := range vals {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	return ScalarField{NX: l.nx, NY: l.ny, MinValue: minVal, MaxValue: maxVal, values: vals}
}

// Velocity returns a copy of the velocity field.
func (l *Lattice) Velocity() VectorField {
	ux := make([]float64, len(l.ux))
	uy := make([]float64, len(l.uy))
	copy(ux, l.ux)
	copy(uy, l.uy)
	return VectorField{NX: l.nx, NY: l.ny, valuesX: ux, valuesY: uy}
}

// Tag returns the obstacle tag of cell (i,j); 0 means fluid.
func (l *Lattice) Tag(i, j int) int {
	if i < 0 || i >= l.nx || j < 0 || j >= l.ny {
		return 0
	}
	return l.lattice[l.idx(i, j)]
}
