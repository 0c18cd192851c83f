// Package pipeline turns a raw dual-channel recording into a fused,
// time-calibrated echogram record and hands it to a persistence sink.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-echogram/echogram"
	"github.com/cwbudde/algo-echogram/fasttime"
	"github.com/cwbudde/algo-echogram/fusion"
	"github.com/cwbudde/algo-echogram/params"
)

// DefaultIdentifierAttribute names the attribute whose text names a record.
const DefaultIdentifierAttribute = "filename"

// Raw is one recording as bound from its source file. Low and High hold
// linear power; any dB-to-power conversion is the reader's job.
type Raw struct {
	Name       string
	Attributes []params.Entry
	Low, High  *mat.Dense
	Time       []float64
	Surface    []int
}

// Sink persists fused records.
type Sink interface {
	Save(ctx context.Context, rec *echogram.Record) error
}

// Pipeline runs extraction, fusion and calibration for raw recordings.
type Pipeline struct {
	extractor *params.Extractor
	engine    *fusion.Engine
	sink      Sink
	logger    *log.Logger
	idAttr    string
	now       func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithExtractor replaces the default parameter extractor.
func WithExtractor(x *params.Extractor) Option {
	return func(p *Pipeline) {
		if x != nil {
			p.extractor = x
		}
	}
}

// WithEngine replaces the default fusion engine.
func WithEngine(e *fusion.Engine) Option {
	return func(p *Pipeline) {
		if e != nil {
			p.engine = e
		}
	}
}

// WithSink sets where records are saved. Without a sink Run only returns them.
func WithSink(s Sink) Option {
	return func(p *Pipeline) {
		p.sink = s
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithIdentifierAttribute sets the attribute whose text names each record.
func WithIdentifierAttribute(name string) Option {
	return func(p *Pipeline) {
		p.idAttr = name
	}
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		extractor: params.Default(),
		engine:    fusion.New(),
		logger:    log.Default(),
		idAttr:    DefaultIdentifierAttribute,
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Run processes one recording. Extraction issues are logged and recorded as
// diagnostics; fusion and calibration failures abort the run.
func (p *Pipeline) Run(ctx context.Context, raw Raw) (*echogram.Record, error) {
	name := p.recordName(raw)
	logger := p.logger.With("record", name)

	ext := p.extractor.Extract(raw.Attributes)
	rec := &echogram.Record{
		ID:     uuid.NewString(),
		Name:   name,
		Params: ext.Params,
	}
	for _, is := range ext.Issues {
		logger.Warn("parameter not extracted", "field", is.Field, "entry", is.Entry, "err", is.Err)
		rec.Diagnostics = append(rec.Diagnostics, is.Error())
	}

	if raw.Low == nil || raw.High == nil {
		return nil, &echogram.PreconditionError{Op: "pipeline", Field: "channels", Detail: "missing channel matrix"}
	}

	res, err := p.engine.Fuse(raw.Low, raw.High, ext.Params, raw.Surface)
	if err != nil {
		return nil, fmt.Errorf("fuse %s: %w", name, err)
	}
	for _, d := range res.Diagnostics {
		logger.Warn("fusion", "note", d)
	}
	logger.Debug("channels fused",
		"offset_db", res.OffsetDB,
		"splice", res.SpliceIndex,
		"cut", res.CutRow,
		"candidates", len(res.Estimate.Rows),
		"spread", res.CandidateStdDev)

	axis, err := fasttime.Calibrate(raw.Time, ext.Params)
	if err != nil {
		return nil, fmt.Errorf("calibrate %s: %w", name, err)
	}
	if rows, _ := res.Merged.Dims(); len(axis) != rows {
		return nil, &echogram.PreconditionError{
			Op:     "pipeline",
			Field:  "time",
			Detail: fmt.Sprintf("%d sample times for %d fast-time rows", len(axis), rows),
		}
	}

	rec.Merged = res.Merged
	rec.Time = axis
	rec.SpliceIndex = res.SpliceIndex
	rec.CutRow = res.CutRow
	rec.Diagnostics = append(rec.Diagnostics, res.Diagnostics...)
	rec.CreatedAt = p.now().UTC()

	if p.sink != nil {
		if err := p.sink.Save(ctx, rec); err != nil {
			return nil, fmt.Errorf("save %s: %w", name, err)
		}
		logger.Info("record saved", "id", rec.ID)
	}
	return rec, nil
}

// recordName looks the identifier attribute up by name and falls back to
// the raw recording's own name.
func (p *Pipeline) recordName(raw Raw) string {
	if p.idAttr != "" {
		for _, a := range raw.Attributes {
			if a.Name == p.idAttr {
				if s := strings.TrimSpace(a.Text); s != "" {
					return s
				}
				break
			}
		}
	}
	return raw.Name
}
