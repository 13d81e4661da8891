package lbm

import (
	"errors"
	"fmt"
)

// ErrBuffNotReady is returned by Buff.MovingAverage while the buffer holds
// fewer samples than its configured minimum.
var ErrBuffNotReady = errors.New("convergence buffer holds too few samples")

// GridConfigError wraps the aggregated validation failures of a Config.
type GridConfigError struct {
	Err error
}

func (e *GridConfigError) Error() string {
	return fmt.Sprintf("invalid lattice configuration: %v", e.Err)
}

func (e *GridConfigError) Unwrap() error { return e.Err }

// DivergenceError reports a non-positive density or a non-finite field
// value detected after a timestep. It is fatal; the run must halt.
type DivergenceError struct {
	It   int
	I, J int
	Rho  float64
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("numerical divergence at it=%d, cell (%d,%d), rho=%g", e.It, e.I, e.J, e.Rho)
}

// ObstacleGeometryError reports a degenerate obstacle polygon. The obstacle
// is still registered (empty); the error is informational.
type ObstacleGeometryError struct {
	Tag    int
	Reason string
}

func (e *ObstacleGeometryError) Error() string {
	return fmt.Sprintf("obstacle %d: %s", e.Tag, e.Reason)
}
