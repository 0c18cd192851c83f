package fusion

import "sync"

// scratchPool reuses per-sounding working buffers across estimates.
var scratchPool = sync.Pool{
	New: func() any {
		return new([]float64)
	},
}

// getScratch returns a buffer of length n. Contents are unspecified.
func getScratch(n int) *[]float64 {
	b := scratchPool.Get().(*[]float64)
	if cap(*b) < n {
		*b = make([]float64, n)
	}
	*b = (*b)[:n]
	return b
}

func putScratch(b *[]float64) {
	if b != nil {
		scratchPool.Put(b)
	}
}
