// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// ConfigCommand returns the "config" subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration inspection",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the effective configuration as YAML",
				Flags: append(runFlags(), &cli.BoolFlag{
					Name:  "flat",
					Usage: "print one sorted key: value line per dotted key",
				}),
				Action: configShow,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg, l, err := loadConfig(c)
	if err != nil {
		return err
	}

	if c.Bool("flat") {
		return writeFlat(c, l.All())
	}

	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}

	return enc.Close()
}

func writeFlat(c *cli.Context, all map[string]any) error {
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := fmt.Fprintf(c.App.Writer, "%s: %v\n", k, all[k]); err != nil {
			return err
		}
	}

	return nil
}
