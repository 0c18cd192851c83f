package testutil

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// TwoChannel describes a synthetic dual-channel flight line. The high-gain
// channel decays by 0.1 dB per row from 60 dB with a +30 dB surface return.
// The low-gain channel is built so that after equalization by OffsetDB it sits
// NearDB above the high-gain channel above the gap row and GapDB above it from
// the gap row down.
type TwoChannel struct {
	Rows, Cols int
	SurfaceRow int
	GapRow     int
	GapDB      float64
	NearDB     float64
	OffsetDB   float64
	// ColumnGap overrides GapRow per sounding; a negative row means the
	// channels never diverge in that sounding.
	ColumnGap map[int]int
	// RippleDB adds deterministic uniform noise in [-RippleDB, RippleDB] to
	// the low-gain channel.
	RippleDB float64
	Seed     int64
}

// Build returns the raw low-gain and high-gain power matrices.
func (tc TwoChannel) Build() (low, high *mat.Dense) {
	low = mat.NewDense(tc.Rows, tc.Cols, nil)
	high = mat.NewDense(tc.Rows, tc.Cols, nil)
	rng := rand.New(rand.NewSource(tc.Seed))

	for c := range tc.Cols {
		gap := tc.GapRow
		if g, ok := tc.ColumnGap[c]; ok {
			gap = g
		}
		for r := range tc.Rows {
			hiDB := 60 - 0.1*float64(r)
			if r == tc.SurfaceRow {
				hiDB += 30
			}
			excess := tc.NearDB
			if gap >= 0 && r >= gap {
				excess = tc.GapDB
			}
			if tc.RippleDB > 0 {
				excess += (rng.Float64()*2 - 1) * tc.RippleDB
			}
			high.Set(r, c, dbToPower(hiDB))
			low.Set(r, c, dbToPower(hiDB+excess-tc.OffsetDB))
		}
	}
	return low, high
}

// Surface returns a surface vector holding SurfaceRow for every sounding.
func (tc TwoChannel) Surface() []int {
	s := make([]int, tc.Cols)
	for i := range s {
		s[i] = tc.SurfaceRow
	}
	return s
}

// TimeAxis returns n sample times spaced by 1/rate seconds.
func TimeAxis(n int, rate float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / rate
	}
	return out
}

func dbToPower(db float64) float64 {
	return math.Pow(10, db/10)
}
