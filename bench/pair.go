// SPDX-License-Identifier: MIT

// Package bench times the standard and Strassen products over matrix pairs,
// checks that they agree, and renders the results as a console table, CSV,
// JSON or YAML, with an optional Prometheus textfile export.
package bench

import (
	"errors"
	"fmt"

	"github.com/HesamPourabbasian/Strassen-Matrix/matrix"
)

// ErrUnpairedMatrix is returned when the input holds an odd number of
// matrices, leaving the last one without a partner.
var ErrUnpairedMatrix = errors.New("bench: odd number of matrices")

// Pair is one benchmark input: the product A·B is computed both ways.
type Pair struct {
	A, B *matrix.Dense
}

// Size is the row count of A, the value reported in the size column.
func (p Pair) Size() int { return p.A.Rows() }

// Pairs groups ms into consecutive (A, B) pairs in input order.
func Pairs(ms []*matrix.Dense) ([]Pair, error) {
	if len(ms)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrUnpairedMatrix, len(ms))
	}

	out := make([]Pair, 0, len(ms)/2)
	for i := 0; i < len(ms); i += 2 {
		out = append(out, Pair{A: ms[i], B: ms[i+1]})
	}

	return out, nil
}
