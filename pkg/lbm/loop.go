package lbm

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
)

// BoundaryFunc applies a scenario's set of domain boundary conditions
// after streaming. The rule sets are fixed and closed, so scenarios are
// plain functions rather than an interface.
type BoundaryFunc func(*Lattice)

// ChannelBC is the channel-flow set: velocity inlet on the left, pressure
// outlet on the right, no-slip top and bottom, four corners.
func ChannelBC(l *Lattice) {
	l.ZouHeBottomWallVelocity()
	l.ZouHeLeftWallVelocity()
	l.ZouHeRightWallPressure()
	l.ZouHeTopWallVelocity()
	l.ZouHeCornerVelocity()
}

// CavityBC is the lid-driven-cavity set: velocity on all four walls, four
// corners.
func CavityBC(l *Lattice) {
	l.ZouHeWallVelocity()
	l.ZouHeCornerVelocity()
}

// ForceSample is one recorded force-log entry.
type ForceSample struct {
	T            float64
	Cx, Cy       float64
	AvgCx, AvgCy float64
	DCx, DCy     float64
}

// Runner owns and sequences the solver components for one simulation:
// macroscopic update, equilibrium, collision/streaming, domain boundary
// conditions, obstacle bounce-back, force integration and the convergence
// check that governs termination.
type Runner struct {
	lat *Lattice
	bc  BoundaryFunc
	log logr.Logger

	// Reference scales for the force coefficients.
	RefRho, RefU, RefL float64

	drag, lift *Buff

	it   int
	done bool
}

// NewRunner builds a Runner for lat with the given boundary-condition set.
// Reference scales default to rho_lbm, u_lbm and L_lbm (lattice units).
func NewRunner(lat *Lattice, bc BoundaryFunc) *Runner {
	cfg := lat.Config()
	return &Runner{
		lat:    lat,
		bc:     bc,
		log:    lat.log,
		RefRho: cfg.RhoLBM,
		RefU:   cfg.ULBM,
		RefL:   cfg.LLBM,
		drag:   NewBuff("drag", cfg.ObsCvNb, cfg.ObsCvCt),
		lift:   NewBuff("lift", cfg.ObsCvNb, cfg.ObsCvCt),
	}
}

// It returns the current iteration count.
func (r *Runner) It() int { return r.it }

// Done reports whether the configured stopping criterion has been met.
func (r *Runner) Done() bool { return r.done }

// Step advances the simulation one timestep and returns the force sample
// of this iteration. It fails with a *DivergenceError when the fields have
// become unstable.
func (r *Runner) Step() (ForceSample, error) {
	l := r.lat
	cfg := l.Config()

	l.Macroscopic()
	l.Equilibrium()
	l.CollideStream()
	if r.bc != nil {
		r.bc(l)
	}

	cx := 0.0
	cy := 0.0
	for _, obs := range l.obstacles {
		l.BounceBackObstacle(obs)
	}
	for _, obs := range l.obstacles {
		ox, oy := l.DragLift(obs, r.RefRho, r.RefU, r.RefL)
		cx += ox
		cy += oy
	}

	r.drag.Add(cx)
	r.lift.Add(cy)
	avgCx, dcx, _ := r.drag.MovingAverage()
	avgCy, dcy, _ := r.lift.MovingAverage()

	if err := l.CheckStability(r.it); err != nil {
		return ForceSample{}, err
	}

	r.it++
	switch cfg.Stop {
	case StopIt:
		if r.it > cfg.ItMax {
			r.done = true
			r.log.Info("computation ended", "reason", "it>it_max", "it", r.it)
		}
	case StopObs:
		if r.drag.Converged() && r.lift.Converged() {
			r.done = true
			r.log.Info("computation ended", "reason", "converged", "it", r.it)
		}
	}

	return ForceSample{
		T:     float64(r.it) * cfg.Dt,
		Cx:    cx,
		Cy:    cy,
		AvgCx: avgCx,
		AvgCy: avgCy,
		DCx:   dcx,
		DCy:   dcy,
	}, nil
}

// WriteForceSample appends one force-log record:
//
//	t Cx Cy avgCx avgCy dCx dCy
func WriteForceSample(w io.Writer, s ForceSample) error {
	_, err := fmt.Fprintf(w, "%v %v %v %v %v %v %v\n",
		s.T, s.Cx, s.Cy, s.AvgCx, s.AvgCy, s.DCx, s.DCy)
	return err
}

// Run steps the simulation until the stopping criterion is met, the
// context is canceled, or an error occurs. When forceLog is non-nil every
// iteration's force sample is written to it from a dedicated goroutine so
// slow sinks do not stall the solver.
func (r *Runner) Run(ctx context.Context, forceLog io.Writer) error {
	samples := make(chan ForceSample, 64)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(samples)
		for !r.done {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			s, err := r.Step()
			if err != nil {
				return err
			}
			if forceLog != nil {
				select {
				case samples <- s:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
		return nil
	})
	eg.Go(func() error {
		for s := range samples {
			if forceLog == nil {
				continue
			}
			if err := WriteForceSample(forceLog, s); err != nil {
				return err
			}
		}
		return nil
	})
	return eg.Wait()
}
