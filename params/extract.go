package params

import (
	"fmt"
	"strconv"
)

// Extraction is the outcome of one extraction pass.
type Extraction struct {
	Params Params
	Issues []Issue
}

// Unset reports whether field was left unset by an issue.
func (e Extraction) Unset(field string) bool {
	for _, is := range e.Issues {
		if is.Field == field {
			return true
		}
	}
	return false
}

// Extractor applies a rule table to attribute entries.
type Extractor struct {
	rules []Rule
}

// New creates an extractor over the given rules. The slice is copied.
func New(rules ...Rule) *Extractor {
	r := make([]Rule, len(rules))
	copy(r, rules)
	return &Extractor{rules: r}
}

// Default creates an extractor over [DefaultRules].
func Default() *Extractor {
	return New(DefaultRules()...)
}

// Rules returns a copy of the rule table.
func (x *Extractor) Rules() []Rule {
	r := make([]Rule, len(x.rules))
	copy(r, x.rules)
	return r
}

// Extract applies every rule to its attribute entry. When an entry name
// appears more than once the first occurrence is used.
func (x *Extractor) Extract(entries []Entry) Extraction {
	texts := make(map[string]string, len(entries))
	for _, e := range entries {
		if _, dup := texts[e.Name]; !dup {
			texts[e.Name] = e.Text
		}
	}

	var out Extraction
	for _, r := range x.rules {
		text, ok := texts[r.Entry]
		if !ok {
			for _, f := range r.fields() {
				out.Issues = append(out.Issues, Issue{Field: f, Entry: r.Entry, Err: ErrMissingEntry})
			}
			continue
		}

		if r.Verbatim {
			s := text
			out.Params.Instrument = &s
			continue
		}

		values, err := r.apply(text)
		if err != nil {
			for _, f := range r.fields() {
				out.Issues = append(out.Issues, Issue{Field: f, Entry: r.Entry, Err: err})
			}
			continue
		}
		for i, f := range r.fields() {
			if i < len(values) {
				out.Params.Set(f, values[i])
			}
		}
	}
	return out
}

// apply runs the two-stage match on text and returns Count scaled values.
func (r Rule) apply(text string) ([]float64, error) {
	if r.Phrase == nil {
		return nil, fmt.Errorf("%w: rule %s has no phrase", ErrPatternNotFound, r.Field)
	}

	phrase := r.Phrase.FindString(text)
	if phrase == "" {
		return nil, ErrPatternNotFound
	}

	count := max(r.Count, len(r.fields()))
	literals := numberPattern.FindAllString(phrase, count)
	if len(literals) < count {
		return nil, fmt.Errorf("%w: want %d numbers in %q, found %d", ErrInvalidNumber, count, phrase, len(literals))
	}

	scale := r.Scale
	if scale == 0 {
		scale = 1
	}

	values := make([]float64, count)
	for i, lit := range literals {
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidNumber, lit, err)
		}
		values[i] = v * scale
	}
	return values, nil
}
