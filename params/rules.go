package params

import (
	"regexp"

	"github.com/cwbudde/algo-echogram/dsp/core"
)

// numberPattern matches an unsigned integer or decimal literal.
var numberPattern = regexp.MustCompile(`\d*\.?\d+`)

// Rule is one row of the extraction table.
type Rule struct {
	// Field is the Params field filled by this rule. For a rule with Count 2
	// it names the first field and Second names the other.
	Field  string
	Second string
	// Entry is the attribute name the rule reads, matched byte-for-byte.
	Entry string
	// Phrase locates the outer phrase. Numbers are taken from inside its match.
	Phrase *regexp.Regexp
	// Count is how many numbers to take from the phrase match, left to right.
	Count int
	// Scale converts the annotated unit to SI.
	Scale float64
	// Verbatim copies the whole entry text into Instrument instead of
	// matching a phrase.
	Verbatim bool
}

// DefaultRules returns the rule table for the dual-channel sounder's
// attribute layout.
func DefaultRules() []Rule {
	return []Rule{
		{Field: FieldInstrument, Entry: EntryInstrument, Verbatim: true},
		{
			Field:  FieldCenterFrequency,
			Entry:  EntryRFParams,
			Phrase: regexp.MustCompile(`(?i)center\s+frequency[^0-9\n]*?\d*\.?\d+\s*MHz`),
			Count:  1,
			Scale:  core.MHz,
		},
		{
			Field:  FieldF1,
			Second: FieldF2,
			Entry:  EntryRFParams,
			Phrase: regexp.MustCompile(`(?i)\d*\.?\d+\s*to\s*\d*\.?\d+\s*MHz`),
			Count:  2,
			Scale:  core.MHz,
		},
		{
			Field:  FieldPRF,
			Entry:  EntryRFParams,
			Phrase: regexp.MustCompile(`(?i)(?:PRF|pulse\s+repetition\s+frequency)[^0-9\n]*?\d*\.?\d+\s*Hz\b`),
			Count:  1,
			Scale:  1,
		},
		{
			Field:  FieldPulseLength,
			Entry:  EntryRFParams,
			Phrase: regexp.MustCompile(`(?i)\d*\.?\d+\s*microsecond`),
			Count:  1,
			Scale:  core.Microsecond,
		},
		{
			Field:  FieldHiGain,
			Entry:  EntryRFParams,
			Phrase: regexp.MustCompile(`(?i)high\s+gain[^0-9\n]*?\d*\.?\d+\s*dB`),
			Count:  1,
			Scale:  1,
		},
		{
			Field:  FieldLoGain,
			Entry:  EntryRFParams,
			Phrase: regexp.MustCompile(`(?i)low\s+gain[^0-9\n]*?\d*\.?\d+\s*dB`),
			Count:  1,
			Scale:  1,
		},
		{
			Field:  FieldSamplingRate,
			Entry:  EntryDigital,
			Phrase: regexp.MustCompile(`(?i)sampl(?:ing|e)\s+(?:rate|frequency)[^0-9\n]*?\d*\.?\d+\s*MHz`),
			Count:  1,
			Scale:  core.MHz,
		},
		{
			Field:  FieldOnboardStacks,
			Entry:  EntryDigital,
			Phrase: regexp.MustCompile(`(?i)\d*\.?\d+\s*onboard\s+stacks`),
			Count:  1,
			Scale:  1,
		},
		{
			Field:  FieldTXDelay,
			Entry:  EntryTXOffset,
			Phrase: regexp.MustCompile(`(?i)\d*\.?\d+\s*microseconds`),
			Count:  1,
			Scale:  core.Microsecond,
		},
		{
			Field:  FieldCoherentSums,
			Entry:  EntryProcessing,
			Phrase: regexp.MustCompile(`Coherent stacking:\s*\d*\.?\d+`),
			Count:  1,
			Scale:  1,
		},
		{
			Field:  FieldIncoherentSums,
			Entry:  EntryProcessing,
			Phrase: regexp.MustCompile(`Incoherent averaging:\s*\d*\.?\d+`),
			Count:  1,
			Scale:  1,
		},
	}
}

// fields returns the Params fields filled by r.
func (r Rule) fields() []string {
	if r.Second != "" {
		return []string{r.Field, r.Second}
	}
	return []string{r.Field}
}
