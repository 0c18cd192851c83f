package params

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func ptr[T any](v T) *T { return &v }

func sampleEntries() []Entry {
	return []Entry{
		{Name: "filename", Text: "R21Ta_DVD01a_0003"},
		{Name: EntryInstrument, Text: "HiCARS 2 airborne ice-penetrating radar"},
		{Name: EntryRFParams, Text: "Center Frequency: 60 MHz, Bandwidth: 15 MHz, chirp 52.5 to 67.5 MHz, " +
			"PRF: 6250 Hz, pulse length 1 microsecond, high gain channel 50 dB, low gain channel 35 dB"},
		{Name: EntryDigital, Text: "Sampling rate: 50 MHz, 32 onboard stacks"},
		{Name: EntryTXOffset, Text: "Record start trails transmit by 2.5 microseconds"},
		{Name: EntryProcessing, Text: "Coherent stacking: 10\nIncoherent averaging: 5"},
	}
}

func TestExtract_AllFields(t *testing.T) {
	res := Default().Extract(sampleEntries())
	require.Empty(t, res.Issues)

	want := Params{
		Instrument:      ptr("HiCARS 2 airborne ice-penetrating radar"),
		CenterFrequency: ptr(60e6),
		F1:              ptr(52.5e6),
		F2:              ptr(67.5e6),
		PRF:             ptr(6250.0),
		PulseLength:     ptr(1e-6),
		HiGain:          ptr(50.0),
		LoGain:          ptr(35.0),
		SamplingRate:    ptr(50e6),
		OnboardStacks:   ptr(32.0),
		TXDelay:         ptr(2.5e-6),
		CoherentSums:    ptr(10.0),
		IncoherentSums:  ptr(5.0),
	}
	if diff := cmp.Diff(want, res.Params, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Fatalf("Extract() mismatch (-want +got):\n%s", diff)
	}

	bw, ok := res.Params.Bandwidth()
	require.True(t, ok)
	assert.InDelta(t, 15e6, bw, 1e-6)

	off, ok := res.Params.GainOffset()
	require.True(t, ok)
	assert.Equal(t, 15.0, off)
}

func TestExtract_MissingLowGain(t *testing.T) {
	entries := sampleEntries()
	entries[2].Text = "Center Frequency: 60 MHz, chirp 52.5 to 67.5 MHz, PRF: 6250 Hz, high gain 50 dB"

	res := Default().Extract(entries)

	assert.Nil(t, res.Params.LoGain)
	assert.Nil(t, res.Params.PulseLength)
	require.NotNil(t, res.Params.HiGain)
	assert.Equal(t, 50.0, *res.Params.HiGain)
	require.NotNil(t, res.Params.CenterFrequency)
	assert.Equal(t, 60e6, *res.Params.CenterFrequency)

	require.Len(t, res.Issues, 2)
	for _, is := range res.Issues {
		assert.True(t, errors.Is(is, ErrPatternNotFound), "issue %v", is)
		assert.Equal(t, EntryRFParams, is.Entry)
	}
	assert.True(t, res.Unset(FieldLoGain))
	assert.False(t, res.Unset(FieldHiGain))
}

func TestExtract_MissingEntryOnlyAffectsItsFields(t *testing.T) {
	var entries []Entry
	for _, e := range sampleEntries() {
		if e.Name != EntryDigital {
			entries = append(entries, e)
		}
	}

	res := Default().Extract(entries)

	assert.Nil(t, res.Params.SamplingRate)
	assert.Nil(t, res.Params.OnboardStacks)
	assert.NotNil(t, res.Params.TXDelay)
	assert.NotNil(t, res.Params.CoherentSums)

	require.Len(t, res.Issues, 2)
	for _, is := range res.Issues {
		assert.ErrorIs(t, is, ErrMissingEntry)
		assert.Equal(t, EntryDigital, is.Entry)
	}
}

func TestExtract_EntryNamesAreCaseSensitive(t *testing.T) {
	res := Default().Extract([]Entry{{Name: "RFPARAMS", Text: "high gain 50 dB"}})
	assert.Nil(t, res.Params.HiGain)
	assert.True(t, res.Unset(FieldHiGain))
}

func TestExtract_FirstDuplicateWins(t *testing.T) {
	res := Default().Extract([]Entry{
		{Name: EntryTXOffset, Text: "3 microseconds"},
		{Name: EntryTXOffset, Text: "7 microseconds"},
	})
	require.NotNil(t, res.Params.TXDelay)
	assert.InDelta(t, 3e-6, *res.Params.TXDelay, 1e-18)
}

func TestExtract_IgnoresNumbersOutsidePhrase(t *testing.T) {
	res := Default().Extract([]Entry{{
		Name: EntryRFParams,
		Text: "Revision 7, 2011 season. high gain: 48.5 dB (channel 2)",
	}})
	require.NotNil(t, res.Params.HiGain)
	assert.Equal(t, 48.5, *res.Params.HiGain)
}

func TestExtract_NoRangeValidation(t *testing.T) {
	res := Default().Extract([]Entry{{Name: EntryRFParams, Text: "Center Frequency: 99999 MHz"}})
	require.NotNil(t, res.Params.CenterFrequency)
	assert.Equal(t, 99999e6, *res.Params.CenterFrequency)
}

func TestExtract_InstrumentVerbatim(t *testing.T) {
	text := "  MARFA / HiCARS-2, 60 MHz  "
	res := Default().Extract([]Entry{{Name: EntryInstrument, Text: text}})
	require.NotNil(t, res.Params.Instrument)
	assert.Equal(t, text, *res.Params.Instrument)
}

func TestExtract_PropertyScaledLiteral(t *testing.T) {
	tests := []struct {
		entry  string
		format string
		field  string
		scale  float64
	}{
		{EntryRFParams, "Center Frequency: %s MHz", FieldCenterFrequency, 1e6},
		{EntryRFParams, "PRF: %s Hz", FieldPRF, 1},
		{EntryRFParams, "pulse of %s microseconds", FieldPulseLength, 1e-6},
		{EntryRFParams, "low gain %s dB", FieldLoGain, 1},
		{EntryDigital, "Sampling frequency %s MHz", FieldSamplingRate, 1e6},
		{EntryTXOffset, "delay %s microseconds", FieldTXDelay, 1e-6},
		{EntryProcessing, "Incoherent averaging: %s", FieldIncoherentSums, 1},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				whole := rapid.IntRange(0, 100000).Draw(rt, "whole")
				lit := strconv.Itoa(whole)
				if rapid.Bool().Draw(rt, "decimal") {
					lit += "." + strconv.Itoa(rapid.IntRange(0, 9999).Draw(rt, "frac"))
				}
				lit0, err := strconv.ParseFloat(lit, 64)
				if err != nil {
					rt.Fatalf("bad literal %q: %v", lit, err)
				}

				res := Default().Extract([]Entry{{Name: tt.entry, Text: fmt.Sprintf(tt.format, lit)}})
				got, ok := res.Params.Lookup(tt.field)
				if !ok {
					rt.Fatalf("%s unset for %q", tt.field, fmt.Sprintf(tt.format, lit))
				}
				if got != lit0*tt.scale {
					rt.Fatalf("%s = %v, want %v", tt.field, got, lit0*tt.scale)
				}
			})
		})
	}
}

func TestExtract_PropertyUnmatchedLeavesUnset(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		noise := rapid.StringMatching(`[a-z ,;]{0,40}`).Draw(rt, "noise")
		entries := sampleEntries()
		entries[3].Text = noise // digital: no digits, no phrase can match

		res := Default().Extract(entries)
		if res.Params.SamplingRate != nil || res.Params.OnboardStacks != nil {
			rt.Fatalf("digital fields set from %q", noise)
		}
		if res.Params.CenterFrequency == nil || res.Params.TXDelay == nil {
			rt.Fatalf("unrelated fields lost for %q", noise)
		}
	})
}

func TestRule_CountTwoTakesLeftToRight(t *testing.T) {
	res := Default().Extract([]Entry{{Name: EntryRFParams, Text: "sweep 140 to 160 MHz"}})
	require.NotNil(t, res.Params.F1)
	require.NotNil(t, res.Params.F2)
	assert.Equal(t, 140e6, *res.Params.F1)
	assert.Equal(t, 160e6, *res.Params.F2)
}

func TestNew_CustomRules(t *testing.T) {
	rules := DefaultRules()[:1]
	x := New(rules...)
	rules[0].Entry = "changed"

	assert.Len(t, x.Rules(), 1)
	assert.Equal(t, EntryInstrument, x.Rules()[0].Entry)
}

func TestParams_LookupAndSet(t *testing.T) {
	var p Params
	_, ok := p.Lookup(FieldPRF)
	assert.False(t, ok)

	assert.True(t, p.Set(FieldPRF, 0))
	v, ok := p.Lookup(FieldPRF)
	assert.True(t, ok, "zero is a set value")
	assert.Zero(t, v)

	assert.False(t, p.Set("Nope", 1))
	_, ok = p.Lookup("Nope")
	assert.False(t, ok)
	assert.Len(t, FieldNames(), 12)
}
