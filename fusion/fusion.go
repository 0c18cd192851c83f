package fusion

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-echogram/echogram"
	"github.com/cwbudde/algo-echogram/params"
)

// Result is the outcome of fusing one flight line.
type Result struct {
	Merged      *mat.Dense
	OffsetDB    float64 // HiGain - LoGain
	SpliceIndex int     // aggregated crossover row, before back-off
	CutRow      int     // first row taken from the high-gain channel
	Estimate    Estimate
	// Mean and standard deviation of the valid candidate rows.
	CandidateMean   float64
	CandidateStdDev float64
	Diagnostics     []string
}

// Engine fuses dual-channel echograms.
type Engine struct {
	cfg Config
}

// New creates an Engine with the given options applied to [DefaultConfig].
func New(opts ...Option) *Engine {
	return &Engine{cfg: ApplyOptions(opts...)}
}

// Config returns the engine settings.
func (e *Engine) Config() Config {
	return e.cfg
}

// Fuse equalizes the low-gain channel, locates the flight-line splice index
// and merges the two channels. HiGain and LoGain must be set in p.
func (e *Engine) Fuse(low, high mat.Matrix, p params.Params, surface []int) (*Result, error) {
	if p.HiGain == nil {
		return nil, echogram.MissingField(op, params.FieldHiGain)
	}
	if p.LoGain == nil {
		return nil, echogram.MissingField(op, params.FieldLoGain)
	}
	_, cols, err := validateShapes(low, high)
	if err != nil {
		return nil, err
	}
	if err := validateSurface(surface, cols); err != nil {
		return nil, err
	}

	offset := *p.HiGain - *p.LoGain
	eq := Equalize(low, offset)

	est, err := e.Estimate(eq, high, surface)
	if err != nil {
		return nil, err
	}

	splice, err := Aggregate(est.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w (%d soundings sampled)", err, est.Sampled)
	}

	res := &Result{
		OffsetDB:    offset,
		SpliceIndex: splice,
		Estimate:    est,
		Diagnostics: append([]string(nil), est.Notes...),
	}
	res.CandidateMean, res.CandidateStdDev = spread(est.Rows)

	if n := len(est.Skipped); n > 0 {
		res.Diagnostics = append(res.Diagnostics,
			fmt.Sprintf("%d of %d sampled soundings produced no splice candidate", n, est.Sampled))
	}

	cut := splice - e.cfg.BackOff
	if cut < 0 {
		res.Diagnostics = append(res.Diagnostics,
			fmt.Sprintf("splice index %d minus back-off %d is negative; cut clamped to row 0, no low-gain samples retained",
				splice, e.cfg.BackOff))
		cut = 0
	}
	res.CutRow = cut

	res.Merged, err = Merge(eq, high, cut)
	if err != nil {
		return nil, err
	}
	return res, nil
}
