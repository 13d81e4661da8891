package lbm

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestRunnerStopsOnIterationCap(t *testing.T) {
	cfg := testConfig(16, 16)
	cfg.Stop = StopIt
	cfg.ItMax = 10
	l, err := New(cfg)
	assert.NoError(t, err)
	l.SetCavity(0, 0, 0, 0)
	l.Init()

	r := NewRunner(l, CavityBC)
	for !r.Done() {
		_, err := r.Step()
		assert.NoError(t, err)
	}
	assert.Equal(t, 11, r.It())
}

func TestRunStopsOnConvergenceAndWritesForceLog(t *testing.T) {
	cfg := testConfig(16, 16)
	cfg.Stop = StopObs
	cfg.ObsCvNb = 8
	cfg.ObsCvCt = 1.0e-6
	l, err := New(cfg)
	assert.NoError(t, err)
	l.SetCavity(0, 0, 0, 0)
	l.Init()

	// No obstacles: both force signals are identically zero, so the
	// buffers converge as soon as their windows fill.
	var log bytes.Buffer
	r := NewRunner(l, CavityBC)
	assert.NoError(t, r.Run(context.Background(), &log))
	assert.Equal(t, cfg.ObsCvNb, r.It())

	lines := strings.Split(strings.TrimSpace(log.String()), "\n")
	assert.Equal(t, cfg.ObsCvNb, len(lines))
	for _, line := range lines {
		assert.Equal(t, 7, len(strings.Fields(line)))
	}
}

func TestRunHonorsContextCancel(t *testing.T) {
	cfg := testConfig(16, 16)
	cfg.Stop = StopIt
	cfg.ItMax = 1 << 30
	l, err := New(cfg)
	assert.NoError(t, err)
	l.SetCavity(0, 0, 0, 0)
	l.Init()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(l, CavityBC)
	assert.Error(t, r.Run(ctx, nil))
}

// Channel flow with a parabolic Zou-He inlet, pressure outlet and no-slip
// walls must relax to the analytic Poiseuille profile.
func TestPoiseuilleProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}

	cfg := DefaultConfig()
	cfg.NX, cfg.NY = 100, 25
	cfg.XMax, cfg.YMax = 4.0, 1.0
	cfg.ULBM = 0.1
	cfg.RhoLBM = 1.0
	cfg.Dx = 1.0
	cfg.LLBM = float64(cfg.NY - 1)
	cfg.NuLBM = cfg.ULBM * cfg.LLBM / 10.0 // Re = 10
	cfg.TauLBM = 0.5 + cfg.NuLBM/(Cs*Cs)
	cfg.Stop = StopIt
	cfg.ItMax = 4000

	l, err := New(cfg)
	assert.NoError(t, err)

	const sigma = 300.0
	l.SetInletPoiseuille(0, sigma)
	l.Init()

	r := NewRunner(l, ChannelBC)
	for !r.Done() {
		l.SetInletPoiseuille(float64(r.It()), sigma)
		_, err := r.Step()
		assert.NoError(t, err)
	}

	// Compare the mid-channel profile against the exact parabola away
	// from the walls.
	i := cfg.NX / 2
	for j := 2; j < cfg.NY-2; j++ {
		_, y := l.Coords(i, j)
		want := 4.0 * (cfg.YMax - y) * (y - cfg.YMin) / (cfg.YMax * cfg.YMax)
		got := l.ux[l.idx(i, j)] / cfg.ULBM
		if math.Abs(got-want) > 0.05 {
			t.Fatalf("profile mismatch at j=%d: got %f, want %f", j, got, want)
		}
	}
}

// A lid moving right over a closed cavity must set up a single clockwise
// recirculation: forward flow under the lid, return flow below.
func TestCavityRecirculation(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}

	cfg := DefaultConfig()
	cfg.NX, cfg.NY = 64, 64
	cfg.ULBM = 0.1
	cfg.Dx = 1.0
	cfg.LLBM = float64(cfg.NY - 1)
	cfg.NuLBM = cfg.ULBM * cfg.LLBM / 100.0 // Re = 100
	cfg.TauLBM = 0.5 + cfg.NuLBM/(Cs*Cs)
	cfg.Stop = StopIt
	cfg.ItMax = 3000

	l, err := New(cfg)
	assert.NoError(t, err)
	l.SetCavity(cfg.ULBM, 0, 0, 0)
	l.Init()

	r := NewRunner(l, CavityBC)
	for !r.Done() {
		_, err := r.Step()
		assert.NoError(t, err)
	}

	mid := cfg.NX / 2

	// Forward flow just under the lid.
	assert.True(t, l.ux[l.idx(mid, cfg.NY-3)] > 0)

	// Return flow somewhere below the cavity center.
	ret := false
	for j := 1; j < cfg.NY/2; j++ {
		if l.ux[l.idx(mid, j)] < 0 {
			ret = true
			break
		}
	}
	assert.True(t, ret)

	// Downward flow on the right half, upward on the left half.
	down := false
	up := false
	for j := cfg.NY / 4; j < 3*cfg.NY/4; j++ {
		if l.uy[l.idx(3*cfg.NX/4, j)] < 0 {
			down = true
		}
		if l.uy[l.idx(cfg.NX/4, j)] > 0 {
			up = true
		}
	}
	assert.True(t, down)
	assert.True(t, up)
}

// Flow past a cylinder must stay stable and produce positive drag, with
// both bounce-back modes.
func TestCylinderDrag(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}

	for _, ibb := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.NX, cfg.NY = 90, 30
		cfg.XMax, cfg.YMax = 3.0, 1.0
		cfg.ULBM = 0.05
		cfg.Dx = 1.0
		cfg.LLBM = float64(cfg.NY-1) * 0.3 // cylinder diameter in cells
		cfg.NuLBM = cfg.ULBM * cfg.LLBM / 10.0 // Re = 10
		cfg.TauLBM = 0.5 + cfg.NuLBM/(Cs*Cs)
		cfg.IBB = ibb
		cfg.Stop = StopIt
		cfg.ItMax = 1500

		l, err := New(cfg)
		assert.NoError(t, err)

		obs, err := l.AddObstacle(CirclePolygon(0.75, 0.5, 0.15, 96), 1)
		assert.NoError(t, err)
		assert.False(t, obs.Empty())

		const sigma = 150.0
		l.SetInletPoiseuille(0, sigma)
		l.Init()

		r := NewRunner(l, ChannelBC)
		r.RefL = cfg.LLBM

		var last ForceSample
		for !r.Done() {
			l.SetInletPoiseuille(float64(r.It()), sigma)
			last, err = r.Step()
			assert.NoError(t, err)
		}

		assert.False(t, math.IsNaN(last.Cx) || math.IsInf(last.Cx, 0))
		assert.False(t, math.IsNaN(last.Cy) || math.IsInf(last.Cy, 0))
		assert.True(t, last.Cx > 0, "ibb=%v: drag should be positive, got %f", ibb, last.Cx)
	}
}
