// Command paraminfo prints the instrument parameters extracted from the
// attribute block of raw recording bundles.
//
// Usage:
//
//	paraminfo [flags] bundle.yaml ...
//
// Examples:
//
//	paraminfo R21Ta_0003.yaml
//	paraminfo --issues R21Ta_*.yaml
//	paraminfo --rules
package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-echogram/internal/bundle"
	"github.com/cwbudde/algo-echogram/params"
)

func main() {
	rules := pflag.Bool("rules", false, "list the extraction rule table and exit")
	issues := pflag.BoolP("issues", "i", false, "also print why unset fields were not extracted")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: paraminfo [flags] bundle.yaml ...\n\n")
		fmt.Fprintf(os.Stderr, "Prints the parameter record extracted from each bundle's attributes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	ex := params.Default()
	if *rules {
		printRules(ex.Rules())
		return
	}

	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range pflag.Args() {
		raw, err := bundle.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			failed = true
			continue
		}
		res := ex.Extract(raw.Attributes)
		printRecord(raw.Name, res, *issues)
	}
	if failed {
		os.Exit(1)
	}
}

func printRules(rules []params.Rule) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Field\tEntry\tCount\tScale\tPhrase\n")
	_, _ = fmt.Fprintf(tw, "-----\t-----\t-----\t-----\t------\n")
	for _, r := range rules {
		field := r.Field
		if r.Second != "" {
			field += "," + r.Second
		}
		phrase := "(verbatim)"
		if r.Phrase != nil {
			phrase = r.Phrase.String()
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%g\t%s\n", field, r.Entry, r.Count, r.Scale, phrase)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printRecord(name string, res params.Extraction, withIssues bool) {
	fmt.Printf("%s\n", name)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	instrument := "-"
	if res.Params.Instrument != nil {
		instrument = strconv.Quote(*res.Params.Instrument)
	}
	_, _ = fmt.Fprintf(tw, "  %s\t%s\n", params.FieldInstrument, instrument)
	for _, f := range params.FieldNames() {
		v, ok := res.Params.Lookup(f)
		if !ok {
			_, _ = fmt.Fprintf(tw, "  %s\t-\n", f)
			continue
		}
		_, _ = fmt.Fprintf(tw, "  %s\t%g\n", f, v)
	}
	if bw, ok := res.Params.Bandwidth(); ok {
		_, _ = fmt.Fprintf(tw, "  Bandwidth\t%g\n", bw)
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	if withIssues {
		for _, is := range res.Issues {
			fmt.Printf("  ! %v\n", is)
		}
	}
}
