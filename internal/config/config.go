// SPDX-License-Identifier: MIT

// Package config holds the strassenbench run configuration and loads it from
// layered sources with koanf: defaults, then an optional YAML file, then the
// command-line flags the user actually set.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HesamPourabbasian/Strassen-Matrix/internal/logger"
)

// Default file names used when nothing else is configured.
const (
	DefaultInput  = "matrices.txt"
	DefaultOutput = "results.csv"
)

// Console report formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var (
	// ErrMissingInput is returned when the input path is empty.
	ErrMissingInput = errors.New("config: input path is required")

	// ErrMissingOutput is returned when the CSV output path is empty.
	ErrMissingOutput = errors.New("config: output path is required")

	// ErrUnknownFormat is returned for a console format other than
	// table, json or yaml.
	ErrUnknownFormat = errors.New("config: unknown report format")
)

// Config is the full run configuration.
type Config struct {
	// Input is the matrix file to benchmark.
	Input string `koanf:"input" yaml:"input"`
	// Output is the CSV file written after every run (overwritten).
	Output string `koanf:"output" yaml:"output"`
	// Format selects the console report: table, json or yaml.
	Format string `koanf:"format" yaml:"format"`
	// MetricsFile, when set, receives a Prometheus textfile export.
	MetricsFile string `koanf:"metrics_file" yaml:"metrics_file"`

	Log LogConfig `koanf:"log" yaml:"log"`
}

// LogConfig mirrors logger.Config for the serialisable fields.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input:  DefaultInput,
		Output: DefaultOutput,
		Format: FormatTable,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// defaultMap is Default in koanf's nested map form.
func defaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"input":        d.Input,
		"output":       d.Output,
		"format":       d.Format,
		"metrics_file": d.MetricsFile,
		"log": map[string]any{
			"level":  d.Log.Level,
			"format": d.Log.Format,
		},
	}
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return ErrMissingInput
	}
	if strings.TrimSpace(c.Output) == "" {
		return ErrMissingOutput
	}
	switch strings.ToLower(c.Format) {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	return nil
}

// LoggerConfig converts the log section into a logger.Config.
func (c *Config) LoggerConfig() logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level = c.Log.Level
	cfg.Format = c.Log.Format

	return cfg
}
