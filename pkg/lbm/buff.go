package lbm

// Buff tracks the moving average of a scalar force signal over a fixed
// window and exposes a sticky convergence flag. One Buff runs per tracked
// signal (drag, lift).
type Buff struct {
	name      string
	vals      []float64
	head      int
	count     int
	prev      float64
	threshold float64
	minCount  int
	converged bool
}

// NewBuff creates a buffer of capacity size with convergence threshold ct.
// Queries become evaluable after the first sample; use SetMinSamples to
// require more warmup.
func NewBuff(name string, size int, ct float64) *Buff {
	if size < 1 {
		size = 1
	}
	return &Buff{
		name:      name,
		vals:      make([]float64, size),
		threshold: ct,
		minCount:  1,
	}
}

// SetMinSamples sets the sample count below which MovingAverage returns
// ErrBuffNotReady.
func (b *Buff) SetMinSamples(n int) {
	if n > len(b.vals) {
		n = len(b.vals)
	}
	b.minCount = n
}

// Name returns the signal name.
func (b *Buff) Name() string { return b.name }

// Add pushes a sample, evicting the oldest once the buffer is full.
func (b *Buff) Add(v float64) {
	b.vals[b.head] = v
	b.head = (b.head + 1) % len(b.vals)
	if b.count < len(b.vals) {
		b.count++
	}
}

// MovingAverage returns the mean of the buffered samples and the absolute
// change dc since the previous query. Once the buffer is full and dc drops
// below the threshold the converged flag latches. Before the minimum
// sample count is reached it returns ErrBuffNotReady.
func (b *Buff) MovingAverage() (avg, dc float64, err error) {
	if b.count < b.minCount {
		return 0, 0, ErrBuffNotReady
	}
	sum := 0.0
	for i := 0; i < b.count; i++ {
		sum += b.vals[i]
	}
	avg = sum / float64(b.count)
	if avg > b.prev {
		dc = avg - b.prev
	} else {
		dc = b.prev - avg
	}
	b.prev = avg
	if b.count == len(b.vals) && dc < b.threshold {
		b.converged = true
	}
	return avg, dc, nil
}

// Converged reports whether the signal has stabilized.
func (b *Buff) Converged() bool { return b.converged }
