package lbm

import (
	"fmt"

	"go.uber.org/multierr"
)

// StopMode selects the termination criterion of a run.
type StopMode string

const (
	// StopIt stops once the iteration count reaches ItMax.
	StopIt StopMode = "it"
	// StopObs stops once both the drag and lift buffers report convergence.
	StopObs StopMode = "obs"
)

// Config enumerates every solver option. Zero values are filled in by
// DefaultConfig; a Config is validated once, in New.
type Config struct {
	Name string `json:"name"`

	// Physical domain extents.
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`

	// Lattice resolution.
	NX int `json:"nx"`
	NY int `json:"ny"`

	// Relaxation time and grid/time scaling.
	TauLBM float64 `json:"tau_lbm"`
	Dx     float64 `json:"dx"`
	Dt     float64 `json:"dt"`

	// Physical targets in lattice units.
	ULBM   float64 `json:"u_lbm"`
	LLBM   float64 `json:"L_lbm"`
	NuLBM  float64 `json:"nu_lbm"`
	ReLBM  float64 `json:"Re_lbm"`
	RhoLBM float64 `json:"rho_lbm"`

	// IBB enables interpolated (Bouzidi) bounce-back at obstacle
	// boundaries instead of halfway bounce-back.
	IBB bool `json:"IBB"`

	// Stopping criterion.
	Stop    StopMode `json:"stop"`
	ItMax   int      `json:"it_max"`
	ObsCvCt float64  `json:"obs_cv_ct"`
	ObsCvNb int      `json:"obs_cv_nb"`
}

// DefaultConfig returns the defaults of the reference solver.
func DefaultConfig() Config {
	return Config{
		Name:    "lattice",
		XMin:    0.0,
		XMax:    1.0,
		YMin:    0.0,
		YMax:    1.0,
		NX:      100,
		NY:      100,
		TauLBM:  1.0,
		Dx:      1.0,
		Dt:      1.0,
		ULBM:    0.05,
		LLBM:    100.0,
		NuLBM:   0.01,
		ReLBM:   100.0,
		RhoLBM:  1.0,
		IBB:     false,
		Stop:    StopIt,
		ItMax:   1000,
		ObsCvCt: 1.0e-1,
		ObsCvNb: 500,
	}
}

// Validate checks the configuration and reports every violation at once,
// wrapped in a *GridConfigError.
func (c Config) Validate() error {
	var err error
	if c.NX < 3 {
		err = multierr.Append(err, fmt.Errorf("nx must be >= 3, got %d", c.NX))
	}
	if c.NY < 3 {
		err = multierr.Append(err, fmt.Errorf("ny must be >= 3, got %d", c.NY))
	}
	if c.XMax <= c.XMin {
		err = multierr.Append(err, fmt.Errorf("x_max (%g) must exceed x_min (%g)", c.XMax, c.XMin))
	}
	if c.YMax <= c.YMin {
		err = multierr.Append(err, fmt.Errorf("y_max (%g) must exceed y_min (%g)", c.YMax, c.YMin))
	}
	if c.TauLBM <= 0.5 {
		err = multierr.Append(err, fmt.Errorf("tau_lbm must exceed 0.5, got %g", c.TauLBM))
	}
	if c.RhoLBM <= 0 {
		err = multierr.Append(err, fmt.Errorf("rho_lbm must be positive, got %g", c.RhoLBM))
	}
	if c.Dx <= 0 || c.Dt <= 0 {
		err = multierr.Append(err, fmt.Errorf("dx (%g) and dt (%g) must be positive", c.Dx, c.Dt))
	}
	switch c.Stop {
	case StopIt, StopObs:
	default:
		err = multierr.Append(err, fmt.Errorf("stop must be %q or %q, got %q", StopIt, StopObs, c.Stop))
	}
	if c.Stop == StopObs && c.ObsCvNb <= 0 {
		err = multierr.Append(err, fmt.Errorf("obs_cv_nb must be positive, got %d", c.ObsCvNb))
	}
	if err != nil {
		return &GridConfigError{Err: err}
	}
	return nil
}
