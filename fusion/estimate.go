package fusion

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-echogram/dsp/core"
	"github.com/cwbudde/algo-echogram/dsp/smooth"
)

// Estimate holds the per-sounding splice candidates of one flight line.
// Only soundings that produced a candidate appear in Columns and Rows.
type Estimate struct {
	Columns []int // sampled soundings with a candidate
	Rows    []int // candidate splice row, parallel to Columns
	Skipped []int // sampled soundings without a candidate
	Sampled int
	Notes   []string
}

// sampledColumns returns 0, stride, 2*stride, ... below cols.
func sampledColumns(cols, stride int) []int {
	out := make([]int, 0, (cols+stride-1)/stride)
	for c := 0; c < cols; c += stride {
		out = append(out, c)
	}
	return out
}

type candidate struct {
	row  int
	ok   bool
	note string
}

// Estimate searches every Stride-th sounding of the equalized low-gain and
// high-gain matrices for its splice candidate. surface may be empty; when set
// it must hold one row per sounding.
func (e *Engine) Estimate(eqLow, high mat.Matrix, surface []int) (Estimate, error) {
	rows, cols, err := validateShapes(eqLow, high)
	if err != nil {
		return Estimate{}, err
	}
	if err := validateSurface(surface, cols); err != nil {
		return Estimate{}, err
	}

	sampled := sampledColumns(cols, e.cfg.Stride)
	results := make([]candidate, len(sampled))

	var g errgroup.Group
	g.SetLimit(max(e.cfg.Workers, 1))
	for i, c := range sampled {
		g.Go(func() error {
			lo := mat.Col(nil, c, eqLow)
			hi := mat.Col(nil, c, high)

			var start int
			if len(surface) != 0 {
				start = surface[c]
				if start < 0 || start >= rows {
					results[i] = candidate{note: fmt.Sprintf("sounding %d: surface row %d outside [0,%d)", c, start, rows)}
					return nil
				}
			} else {
				start = floats.MaxIdx(lo)
			}

			row, ok := e.columnCandidate(lo, hi, start)
			results[i] = candidate{row: row, ok: ok}
			return nil
		})
	}
	_ = g.Wait()

	est := Estimate{Sampled: len(sampled)}
	for i, r := range results {
		if r.note != "" {
			est.Notes = append(est.Notes, r.note)
		}
		if !r.ok {
			est.Skipped = append(est.Skipped, sampled[i])
			continue
		}
		est.Columns = append(est.Columns, sampled[i])
		est.Rows = append(est.Rows, r.row)
	}
	return est, nil
}

// columnCandidate returns the first row at or below start+Exclusion where the
// smoothed |lo-hi| dB difference exceeds the threshold.
func (e *Engine) columnCandidate(lo, hi []float64, start int) (int, bool) {
	n := len(lo) - start
	if n <= e.cfg.Exclusion {
		return 0, false
	}

	buf := getScratch(n)
	defer putScratch(buf)
	diff := *buf
	for i := range diff {
		diff[i] = core.PowerRatioDB(lo[start+i], hi[start+i])
	}

	box, err := smooth.NewBoxcar(e.cfg.Window)
	if err != nil {
		return 0, false
	}
	box.ProcessBlockTo(diff, diff)

	for j := e.cfg.Exclusion; j < n; j++ {
		if diff[j] > e.cfg.ThresholdDB {
			return start + j, true
		}
	}
	return 0, false
}

// Aggregate averages valid candidate rows and rounds to the nearest row,
// halves away from zero. Missing candidates must simply be left out of rows.
func Aggregate(rows []int) (int, error) {
	if len(rows) == 0 {
		return 0, ErrUndeterminedSplice
	}
	x := make([]float64, len(rows))
	for i, r := range rows {
		x[i] = float64(r)
	}
	return int(math.Round(stat.Mean(x, nil))), nil
}

// spread returns the mean and standard deviation of the candidate rows.
func spread(rows []int) (mean, std float64) {
	x := make([]float64, len(rows))
	for i, r := range rows {
		x[i] = float64(r)
	}
	if len(x) == 1 {
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}
