// SPDX-License-Identifier: MIT

// Command strassenbench times the textbook triple-loop product against
// Strassen's algorithm for every matrix pair of an input file and writes the
// results as a console table and a CSV file.
package main

import (
	"fmt"
	"os"

	"github.com/HesamPourabbasian/Strassen-Matrix/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
