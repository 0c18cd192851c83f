package smooth

import "fmt"

// Boxcar is a causal moving-average filter using a circular-buffer delay line.
type Boxcar struct {
	delay []float64
	pos   int
}

// NewBoxcar creates a moving average over the last n samples.
func NewBoxcar(n int) (*Boxcar, error) {
	if n <= 0 {
		return nil, fmt.Errorf("smooth: boxcar length must be > 0: %d", n)
	}
	return &Boxcar{delay: make([]float64, n)}, nil
}

// Len returns the window length.
func (b *Boxcar) Len() int {
	return len(b.delay)
}

// ProcessSample pushes x into the delay line and returns the window mean.
func (b *Boxcar) ProcessSample(x float64) float64 {
	b.delay[b.pos] = x
	b.pos++
	if b.pos >= len(b.delay) {
		b.pos = 0
	}

	var sum float64
	for _, v := range b.delay {
		sum += v
	}
	return sum / float64(len(b.delay))
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (b *Boxcar) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = b.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (b *Boxcar) Reset() {
	for i := range b.delay {
		b.delay[i] = 0
	}
	b.pos = 0
}

// MovingAverage returns a causal n-sample moving average of src with a
// zero initial state. It is a one-shot convenience around [Boxcar].
func MovingAverage(src []float64, n int) ([]float64, error) {
	b, err := NewBoxcar(n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(src))
	b.ProcessBlockTo(out, src)
	return out, nil
}
