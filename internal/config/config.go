// Package config loads echofuse run settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-echogram/fusion"
	"github.com/cwbudde/algo-echogram/pipeline"
)

// Fusion holds the splice-search settings. Zero values keep the engine default.
type Fusion struct {
	Stride      int     `yaml:"stride"`
	Window      int     `yaml:"window"`
	ThresholdDB float64 `yaml:"threshold_db"`
	Exclusion   *int    `yaml:"exclusion"`
	BackOff     *int    `yaml:"back_off"`
	Workers     int     `yaml:"workers"`
}

// Config is the full run configuration.
type Config struct {
	Database            string `yaml:"database"`
	LogLevel            string `yaml:"log_level"`
	IdentifierAttribute string `yaml:"identifier_attribute"`
	Fusion              Fusion `yaml:"fusion"`
}

// Default returns the built-in configuration.
func Default() Config {
	exclusion := fusion.DefaultExclusion
	backOff := fusion.DefaultBackOff
	return Config{
		Database:            "echograms.db",
		LogLevel:            "info",
		IdentifierAttribute: pipeline.DefaultIdentifierAttribute,
		Fusion: Fusion{
			Stride:      fusion.DefaultStride,
			Window:      fusion.DefaultWindow,
			ThresholdDB: fusion.DefaultThresholdDB,
			Exclusion:   &exclusion,
			BackOff:     &backOff,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// FusionOptions maps the fusion settings to engine options.
func (c Config) FusionOptions() []fusion.Option {
	opts := []fusion.Option{
		fusion.WithStride(c.Fusion.Stride),
		fusion.WithWindow(c.Fusion.Window),
		fusion.WithThresholdDB(c.Fusion.ThresholdDB),
		fusion.WithWorkers(c.Fusion.Workers),
	}
	if c.Fusion.Exclusion != nil {
		opts = append(opts, fusion.WithExclusion(*c.Fusion.Exclusion))
	}
	if c.Fusion.BackOff != nil {
		opts = append(opts, fusion.WithBackOff(*c.Fusion.BackOff))
	}
	return opts
}
