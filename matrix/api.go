// SPDX-License-Identifier: MIT
// Package matrix: public constructors.
//
// Purpose:
//   - Provide thin, well-documented entry points for building matrices.
//   - Each constructor validates its input and returns sentinel errors.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - NewRandom is deterministic for a given *rand.Rand state.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

// ---------- Constructors & Utilities ----------

// NewFromRows copies a slice of equal-length rows into a new *Dense.
// Errors: ErrInvalidDimensions for no rows or empty rows, ErrRaggedRows when
// a row length differs from the first row.
// Complexity: O(r*c).
func NewFromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf("NewFromRows", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, matrixErrorf("NewFromRows", err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf("NewFromRows",
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrRaggedRows))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		I.data[i*n+i] = 1
	}

	return I, nil
}

// MaxRandomAbs is the largest bound NewRandom accepts: the draw span
// 2*maxAbs+1 must still fit in an int64.
const MaxRandomAbs = math.MaxInt64 / 2

// NewRandom returns a rows×cols matrix with cells drawn uniformly from
// [-maxAbs, maxAbs] using rng.
// Determinism: row-major draw order, so a seeded rng reproduces the matrix.
// Errors: ErrInvalidDimensions, ErrOutOfRange when maxAbs is outside
// [0, MaxRandomAbs].
// Complexity: O(r*c).
func NewRandom(rows, cols int, rng *rand.Rand, maxAbs int64) (*Dense, error) {
	if maxAbs < 0 || maxAbs > MaxRandomAbs {
		return nil, matrixErrorf("NewRandom",
			fmt.Errorf("maxAbs %d outside [0, %d]: %w", maxAbs, int64(MaxRandomAbs), ErrOutOfRange))
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	span := 2*maxAbs + 1
	for idx := range m.data {
		m.data[idx] = rng.Int63n(span) - maxAbs
	}

	return m, nil
}
