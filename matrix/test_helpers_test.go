// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all values small enough that no product overflows int64.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/HesamPourabbasian/Strassen-Matrix/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic At/Set fallback paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// FromRows builds a *Dense from literal rows or fails the test.
func FromRows(t testing.TB, rows ...[]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// RandomDense returns an r×c matrix with cells in [-maxAbs, maxAbs],
// reproducible for a given seed.
func RandomDense(t testing.TB, r, c int, seed int64, maxAbs int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewRandom(r, c, rand.New(rand.NewSource(seed)), maxAbs)
	if err != nil {
		t.Fatalf("NewRandom(%d,%d): %v", r, c, err)
	}

	return m
}

// IdentityDense returns I_n or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return I
}

// asDense asserts the dynamic type of a kernel result.
func asDense(t testing.TB, m matrix.Matrix) *matrix.Dense {
	t.Helper()
	d, ok := m.(*matrix.Dense)
	if !ok {
		t.Fatalf("result is %T, want *matrix.Dense", m)
	}

	return d
}
