// Package smooth provides causal smoothing filters for noisy sample sequences.
//
// [Boxcar] is a direct-form moving average over the most recent N samples
// with a zero-filled delay line, so the first N-1 outputs ramp up from zero:
//
//	y[n] = (1/N) * sum_{k=0}^{N-1} x[n-k],  x[n<0] = 0
//
// The sum is recomputed from the delay line for every sample instead of being
// kept as a running total, so a single non-finite input only affects the N
// outputs whose window contains it.
package smooth
