// SPDX-License-Identifier: MIT

// Package command provides the strassenbench command-line interface.
//
// It uses urfave/cli/v2. Running the binary without a subcommand is the same
// as "strassenbench run".
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/HesamPourabbasian/Strassen-Matrix/internal/buildinfo"
)

// Flag names shared by the root command and "run".
const (
	flagConfig      = "config"
	flagInput       = "input"
	flagOutput      = "output"
	flagFormat      = "format"
	flagMetricsFile = "metrics-file"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
)

// flagKeys maps configuration flags to their koanf key path.
var flagKeys = []struct {
	flag string
	path []string
}{
	{flagInput, []string{"input"}},
	{flagOutput, []string{"output"}},
	{flagFormat, []string{"format"}},
	{flagMetricsFile, []string{"metrics_file"}},
	{flagLogLevel, []string{"log", "level"}},
	{flagLogFormat, []string{"log", "format"}},
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "strassenbench",
		Usage:   "Benchmark standard against Strassen matrix multiplication",
		Version: buildinfo.String(),
		Flags:   runFlags(),
		Action:  runAction,
		Commands: []*cli.Command{
			RunCommand(),
			GenerateCommand(),
			ConfigCommand(),
		},
	}
}

// runFlags returns fresh flag instances; urfave flags hold parse state and
// cannot be shared between commands.
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
		},
		&cli.StringFlag{
			Name:    flagInput,
			Aliases: []string{"i"},
			Usage:   "matrix input file",
			Value:   "matrices.txt",
		},
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Usage:   "CSV results file (overwritten)",
			Value:   "results.csv",
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Usage:   "console report format: table, json, yaml",
			Value:   "table",
		},
		&cli.StringFlag{
			Name:  flagMetricsFile,
			Usage: "write Prometheus metrics to this textfile",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Usage: "log level: debug, info, warn, error",
			Value: "info",
		},
		&cli.StringFlag{
			Name:  flagLogFormat,
			Usage: "log format: text, json",
			Value: "text",
		},
	}
}

// flagOverrides collects the flags the user set explicitly, outermost
// command first, as a nested koanf map. Unset flags keep their defaults out
// of the map so a config file can still override them.
func flagOverrides(c *cli.Context) map[string]any {
	out := map[string]any{}
	lineage := c.Lineage()
	for i := len(lineage) - 1; i >= 0; i-- {
		ctx := lineage[i]
		for _, fk := range flagKeys {
			if ctx.IsSet(fk.flag) {
				setPath(out, fk.path, ctx.String(fk.flag))
			}
		}
	}

	return out
}

func setPath(m map[string]any, path []string, v any) {
	for _, key := range path[:len(path)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[key] = next
		}
		m = next
	}
	m[path[len(path)-1]] = v
}

// configPath returns the innermost --config value.
func configPath(c *cli.Context) string {
	for _, ctx := range c.Lineage() {
		if ctx.IsSet(flagConfig) {
			return ctx.String(flagConfig)
		}
	}
	return ""
}
