package params

// Entry is one named free-text annotation from a recording's attribute block.
type Entry struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

// Attribute entry names read by the default rule table.
const (
	EntryInstrument = "instrument"
	EntryRFParams   = "rfparams"
	EntryDigital    = "digital"
	EntryTXOffset   = "TX-record_offset"
	EntryProcessing = "processing"
)

// Params is the structured instrument parameter record.
// A nil field was not found in the attribute text; it is never defaulted.
type Params struct {
	Instrument      *string  `yaml:"instrument,omitempty"`
	CenterFrequency *float64 `yaml:"center_frequency,omitempty"` // Hz
	F1              *float64 `yaml:"f1,omitempty"`               // chirp start, Hz
	F2              *float64 `yaml:"f2,omitempty"`               // chirp end, Hz
	PRF             *float64 `yaml:"prf,omitempty"`              // Hz
	PulseLength     *float64 `yaml:"pulse_length,omitempty"`     // s
	HiGain          *float64 `yaml:"hi_gain,omitempty"`          // dB
	LoGain          *float64 `yaml:"lo_gain,omitempty"`          // dB
	SamplingRate    *float64 `yaml:"sampling_rate,omitempty"`    // Hz
	OnboardStacks   *float64 `yaml:"onboard_stacks,omitempty"`
	TXDelay         *float64 `yaml:"tx_delay,omitempty"` // s
	CoherentSums    *float64 `yaml:"coherent_sums,omitempty"`
	IncoherentSums  *float64 `yaml:"incoherent_sums,omitempty"`
}

// Field names, in rule-table order.
const (
	FieldInstrument      = "Instrument"
	FieldCenterFrequency = "CenterFrequency"
	FieldF1              = "F1"
	FieldF2              = "F2"
	FieldPRF             = "PRF"
	FieldPulseLength     = "PulseLength"
	FieldHiGain          = "HiGain"
	FieldLoGain          = "LoGain"
	FieldSamplingRate    = "SamplingRate"
	FieldOnboardStacks   = "OnboardStacks"
	FieldTXDelay         = "TXDelay"
	FieldCoherentSums    = "CoherentSums"
	FieldIncoherentSums  = "IncoherentSums"
)

// FieldNames lists every numeric field name, in rule-table order.
// Instrument is textual and not included.
func FieldNames() []string {
	return []string{
		FieldCenterFrequency, FieldF1, FieldF2, FieldPRF, FieldPulseLength,
		FieldHiGain, FieldLoGain, FieldSamplingRate, FieldOnboardStacks,
		FieldTXDelay, FieldCoherentSums, FieldIncoherentSums,
	}
}

// numeric returns the address of the pointer backing a numeric field, or nil
// for an unknown name.
func (p *Params) numeric(field string) **float64 {
	switch field {
	case FieldCenterFrequency:
		return &p.CenterFrequency
	case FieldF1:
		return &p.F1
	case FieldF2:
		return &p.F2
	case FieldPRF:
		return &p.PRF
	case FieldPulseLength:
		return &p.PulseLength
	case FieldHiGain:
		return &p.HiGain
	case FieldLoGain:
		return &p.LoGain
	case FieldSamplingRate:
		return &p.SamplingRate
	case FieldOnboardStacks:
		return &p.OnboardStacks
	case FieldTXDelay:
		return &p.TXDelay
	case FieldCoherentSums:
		return &p.CoherentSums
	case FieldIncoherentSums:
		return &p.IncoherentSums
	}
	return nil
}

// Lookup returns the value of a numeric field by name and whether it is set.
func (p Params) Lookup(field string) (float64, bool) {
	ptr := p.numeric(field)
	if ptr == nil || *ptr == nil {
		return 0, false
	}
	return **ptr, true
}

// Set assigns a numeric field by name. It reports false for unknown names.
func (p *Params) Set(field string, v float64) bool {
	ptr := p.numeric(field)
	if ptr == nil {
		return false
	}
	*ptr = &v
	return true
}

// Bandwidth returns the chirp bandwidth F2-F1 when both ends are set.
func (p Params) Bandwidth() (float64, bool) {
	if p.F1 == nil || p.F2 == nil {
		return 0, false
	}
	return *p.F2 - *p.F1, true
}

// GainOffset returns HiGain-LoGain in dB when both gains are set.
func (p Params) GainOffset() (float64, bool) {
	if p.HiGain == nil || p.LoGain == nil {
		return 0, false
	}
	return *p.HiGain - *p.LoGain, true
}
