// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/HesamPourabbasian/Strassen-Matrix/bench"
	"github.com/HesamPourabbasian/Strassen-Matrix/internal/config"
	"github.com/HesamPourabbasian/Strassen-Matrix/internal/logger"
	"github.com/HesamPourabbasian/Strassen-Matrix/matrixio"
)

// RunCommand returns the "run" subcommand.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Benchmark every matrix pair of the input file",
		Flags:  runFlags(),
		Action: runAction,
	}
}

// loadConfig merges defaults, the --config file and explicit flags. The
// loader is returned for callers that inspect the raw keys.
func loadConfig(c *cli.Context) (config.Config, *config.Loader, error) {
	l := config.NewLoader(config.WithConfigFile(configPath(c)))
	cfg, err := l.Load(flagOverrides(c))
	return cfg, l, err
}

func runAction(c *cli.Context) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = c.App.ErrWriter
	log, err := logger.New(logCfg)
	if err != nil {
		return err
	}
	logger.SetDefault(log)

	ms, err := matrixio.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	pairs, err := bench.Pairs(ms)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	var metrics *bench.Metrics
	if cfg.MetricsFile != "" {
		metrics = bench.NewMetrics()
	}
	runner := bench.NewRunner(bench.WithMetrics(metrics))

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithRunID(logger.NewContext(ctx, log), runner.RunID())
	log = logger.L(ctx)
	log.Debug("loaded matrices", "input", cfg.Input, "pairs", len(pairs))

	results, err := runner.Run(ctx, pairs)
	if err != nil {
		return err
	}

	switch strings.ToLower(cfg.Format) {
	case config.FormatJSON:
		err = bench.WriteJSON(c.App.Writer, bench.NewReport(runner.RunID(), results))
	case config.FormatYAML:
		err = bench.WriteYAML(c.App.Writer, bench.NewReport(runner.RunID(), results))
	default:
		err = bench.WriteTable(c.App.Writer, results)
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if err := bench.SaveCSV(cfg.Output, results); err != nil {
		return err
	}
	log.Info("results saved", "path", cfg.Output)

	if metrics != nil {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		log.Info("metrics saved", "path", cfg.MetricsFile)
	}

	return nil
}
