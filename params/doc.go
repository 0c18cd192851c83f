// Package params extracts numeric instrument parameters from the free-text
// attribute block of a dual-channel radar recording.
//
// Extraction is driven by a declarative [Rule] table. Each rule names the
// attribute entry it reads, an outer phrase pattern, how many numbers to take
// from inside the phrase match and the unit scale applied to them:
//
//	ex := params.Default()
//	res := ex.Extract([]params.Entry{
//		{Name: "rfparams", Text: "Center Frequency: 60 MHz, PRF: 6250 Hz"},
//	})
//	fmt.Println(*res.Params.CenterFrequency) // 6e+07
//
// Numbers are only taken from inside the phrase match, so unrelated numbers
// elsewhere in the same text block never leak into a field.
//
// A field whose phrase is not found stays nil and an [Issue] is recorded; the
// remaining rules still run. Values are not range-checked.
package params
