// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/urfave/cli/v2"

	"github.com/HesamPourabbasian/Strassen-Matrix/matrix"
	"github.com/HesamPourabbasian/Strassen-Matrix/matrixio"
)

// ErrNoSizes is returned by generate when --sizes is empty.
var ErrNoSizes = errors.New("generate: at least one size is required")

// GenerateCommand returns the "generate" subcommand, which writes random
// square pairs in the input format.
func GenerateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Write random power-of-two matrix pairs to an input file",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:  "sizes",
				Usage: "pair sizes, each a power of two",
				Value: cli.NewIntSlice(2, 4, 8, 16, 32, 64),
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "random seed",
				Value: 1,
			},
			&cli.Int64Flag{
				Name:  "max",
				Usage: "cells are drawn from [-max, max]",
				Value: 10,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "destination file (overwritten)",
				Value: "matrices.txt",
			},
		},
		Action: generateAction,
	}
}

func generateAction(c *cli.Context) error {
	sizes := c.IntSlice("sizes")
	if len(sizes) == 0 {
		return ErrNoSizes
	}
	for _, n := range sizes {
		if !matrix.IsPowerOfTwo(n) {
			return fmt.Errorf("generate: size %d: %w", n, matrix.ErrInvalidShape)
		}
	}

	maxAbs := c.Int64("max")
	if maxAbs < 0 || maxAbs > matrix.MaxRandomAbs {
		return fmt.Errorf("generate: --max %d outside [0, %d]: %w", maxAbs, int64(matrix.MaxRandomAbs), matrix.ErrOutOfRange)
	}
	rng := rand.New(rand.NewSource(c.Int64("seed")))
	ms := make([]*matrix.Dense, 0, 2*len(sizes))
	for _, n := range sizes {
		for k := 0; k < 2; k++ {
			m, err := matrix.NewRandom(n, n, rng, maxAbs)
			if err != nil {
				return fmt.Errorf("generate: size %d: %w", n, err)
			}
			ms = append(ms, m)
		}
	}

	out := c.String("out")
	if err := matrixio.WriteFile(out, ms...); err != nil {
		return err
	}
	_, err := fmt.Fprintf(c.App.Writer, "wrote %d pairs to %s\n", len(sizes), out)

	return err
}
