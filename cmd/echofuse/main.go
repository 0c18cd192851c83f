// Command echofuse fuses the high-gain and low-gain channels of raw radar
// recording bundles and stores the calibrated echograms in SQLite.
//
// Usage:
//
//	echofuse [flags] bundle.yaml ...
//
// Examples:
//
//	echofuse R21Ta_0003.yaml
//	echofuse --config echofuse.yaml --db season.db R21Ta_*.yaml
//	echofuse --dry-run --back-off 0 --log-level debug R21Ta_0003.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-echogram/fusion"
	"github.com/cwbudde/algo-echogram/internal/bundle"
	"github.com/cwbudde/algo-echogram/internal/config"
	"github.com/cwbudde/algo-echogram/internal/store"
	"github.com/cwbudde/algo-echogram/pipeline"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "YAML configuration file")
	dbPath := pflag.String("db", "", "SQLite database for fused records (overrides config)")
	logLevel := pflag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	dryRun := pflag.BoolP("dry-run", "n", false, "fuse without storing records")
	stride := pflag.Int("stride", 0, "sounding subsampling step for the splice search")
	threshold := pflag.Float64("threshold-db", 0, "channel divergence threshold in dB")
	backOff := pflag.Int("back-off", -1, "samples subtracted from the splice index")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: echofuse [flags] bundle.yaml ...\n\n")
		fmt.Fprintf(os.Stderr, "Fuses dual-channel radar recordings into calibrated echograms.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "echofuse"})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading configuration", "err", err)
	}
	if *dbPath != "" {
		cfg.Database = *dbPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal("invalid log level", "level", cfg.LogLevel)
	}
	logger.SetLevel(level)

	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	opts := cfg.FusionOptions()
	opts = append(opts, fusion.WithStride(*stride), fusion.WithThresholdDB(*threshold))
	if *backOff >= 0 {
		opts = append(opts, fusion.WithBackOff(*backOff))
	}

	pipeOpts := []pipeline.Option{
		pipeline.WithEngine(fusion.New(opts...)),
		pipeline.WithLogger(logger),
		pipeline.WithIdentifierAttribute(cfg.IdentifierAttribute),
	}
	if !*dryRun {
		st, err := store.Open(cfg.Database)
		if err != nil {
			logger.Fatal("opening database", "path", cfg.Database, "err", err)
		}
		defer st.Close()
		pipeOpts = append(pipeOpts, pipeline.WithSink(st))
	}
	p := pipeline.New(pipeOpts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	failed := 0
	for _, path := range pflag.Args() {
		if ctx.Err() != nil {
			break
		}
		raw, err := bundle.Load(path)
		if err != nil {
			logger.Error("reading bundle", "path", path, "err", err)
			failed++
			continue
		}
		rec, err := p.Run(ctx, raw)
		if err != nil {
			logger.Error("fusing bundle", "path", path, "err", err)
			failed++
			continue
		}
		samples, soundings := rec.Dims()
		logger.Info("fused",
			"record", rec.Name,
			"samples", samples,
			"soundings", soundings,
			"splice", rec.SpliceIndex,
			"cut", rec.CutRow)
	}

	if failed > 0 {
		logger.Error("finished with failures", "failed", failed, "total", pflag.NArg())
		stop()
		os.Exit(1)
	}
}
