// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No kernel
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with
// matrixErrorf(op, err), so callers always match with errors.Is.
//
// ERROR PRIORITY (enforced in validators_test.go):
// nil first, then ErrDimensionMismatch (Add/Sub/Mul) or ErrInvalidShape
// (Strassen: square, equal size, power of two).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidShape signals that an operand violates a structural shape
	// requirement: Strassen needs square operands of equal power-of-two size.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows signals a row-slice input whose rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
