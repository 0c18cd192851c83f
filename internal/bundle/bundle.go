// Package bundle reads raw dual-channel recordings stored as YAML bundles.
//
// A bundle carries the attribute block, the fast-time axis, an optional
// surface vector and both receive channels as fast-time rows:
//
//	name: R21Ta_0003
//	units: db
//	attributes:
//	  - {name: rfparams, text: "Center Frequency: 60 MHz, high gain 50 dB, low gain 35 dB"}
//	time: [0, 2.0e-8, 4.0e-8]
//	surface: [1, 1]
//	low:  [[10, 11], [40, 41], [12, 12]]
//	high: [[25, 26], [55, 56], [27, 27]]
//
// Channels stored in dB are converted to linear power while reading.
package bundle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-echogram/dsp/core"
	"github.com/cwbudde/algo-echogram/params"
	"github.com/cwbudde/algo-echogram/pipeline"
)

// Units of the stored channel samples.
const (
	UnitsDB     = "db"
	UnitsLinear = "linear"
)

var (
	ErrNoRows      = errors.New("bundle: channel has no rows")
	ErrRaggedRows  = errors.New("bundle: channel rows differ in length")
	ErrUnknownUnit = errors.New("bundle: unknown units")
)

// File is the on-disk layout of a bundle.
type File struct {
	Name       string         `yaml:"name"`
	Units      string         `yaml:"units"`
	Attributes []params.Entry `yaml:"attributes"`
	Time       []float64      `yaml:"time"`
	Surface    []int          `yaml:"surface,omitempty"`
	Low        [][]float64    `yaml:"low"`
	High       [][]float64    `yaml:"high"`
}

// Decode reads one bundle from r.
func Decode(r io.Reader) (pipeline.Raw, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return pipeline.Raw{}, fmt.Errorf("bundle: decode: %w", err)
	}
	return f.Raw()
}

// Load reads the bundle at path. An unnamed bundle is named after its file.
func Load(path string) (pipeline.Raw, error) {
	fh, err := os.Open(path)
	if err != nil {
		return pipeline.Raw{}, err
	}
	defer fh.Close()

	raw, err := Decode(fh)
	if err != nil {
		return pipeline.Raw{}, fmt.Errorf("%s: %w", path, err)
	}
	if raw.Name == "" {
		raw.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return raw, nil
}

// Raw converts the bundle into linear-power channel matrices.
func (f File) Raw() (pipeline.Raw, error) {
	var toPower func(float64) float64
	switch strings.ToLower(f.Units) {
	case UnitsDB, "":
		toPower = core.DBPowerToLinear
	case UnitsLinear:
		toPower = func(v float64) float64 { return v }
	default:
		return pipeline.Raw{}, fmt.Errorf("%w: %q", ErrUnknownUnit, f.Units)
	}

	low, err := channel("low", f.Low, toPower)
	if err != nil {
		return pipeline.Raw{}, err
	}
	high, err := channel("high", f.High, toPower)
	if err != nil {
		return pipeline.Raw{}, err
	}

	return pipeline.Raw{
		Name:       f.Name,
		Attributes: f.Attributes,
		Low:        low,
		High:       high,
		Time:       f.Time,
		Surface:    f.Surface,
	}, nil
}

func channel(name string, rows [][]float64, toPower func(float64) float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoRows)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s row %d: %w: %d != %d", name, i, ErrRaggedRows, len(row), cols)
		}
		for _, v := range row {
			data = append(data, toPower(v))
		}
	}
	return mat.NewDense(len(rows), cols, data), nil
}

// Encode writes raw as a bundle with channels stored in dB.
func Encode(w io.Writer, raw pipeline.Raw) error {
	f := File{
		Name:       raw.Name,
		Units:      UnitsDB,
		Attributes: raw.Attributes,
		Time:       raw.Time,
		Surface:    raw.Surface,
		Low:        toDBRows(raw.Low),
		High:       toDBRows(raw.High),
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("bundle: encode: %w", err)
	}
	return nil
}

func toDBRows(m *mat.Dense) [][]float64 {
	if m == nil {
		return nil
	}
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range r {
		out[i] = make([]float64, c)
		for j := range c {
			out[i][j] = core.LinearPowerToDB(m.At(i, j))
		}
	}
	return out
}
