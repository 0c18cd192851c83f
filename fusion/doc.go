// Package fusion merges the high-gain and low-gain receive channels of a
// dual-channel radar sounder into one high-dynamic-range power echogram.
//
// Fusion runs in four steps:
//
//  1. Equalize: the low-gain matrix is scaled by 10^((HiGain-LoGain)/10) so
//     both channels share one power scale.
//  2. Estimate: every Stride-th sounding is searched, from the surface row
//     downwards, for the first fast-time sample where the smoothed absolute
//     channel difference exceeds ThresholdDB. Samples within Exclusion of the
//     search start are ignored. Soundings without a crossing contribute nothing.
//  3. Aggregate: the valid per-sounding rows are averaged and rounded into one
//     splice index for the whole flight line.
//  4. Merge: rows above splice-BackOff come from the equalized low-gain
//     channel, the rest from the high-gain channel.
//
// Matrices are fast-time rows by sounding columns and hold linear power.
// Inputs are never mutated.
//
//	eng := fusion.New(fusion.WithBackOff(10))
//	res, err := eng.Fuse(low, high, p, surface)
package fusion
