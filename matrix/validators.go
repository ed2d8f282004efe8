// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/power-of-two checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math/bits"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense or *MatrixView stored in the interface is rejected as
// well, as is a zero MatrixView with no base.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	switch v := m.(type) {
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *MatrixView:
		if v == nil || v.base == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures matrices a and b are non-nil with equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateStrassenOperands ensures a and b are square, of equal size, and
// that the size is a power of two.
//
// Errors: ErrNilMatrix, ErrInvalidShape.
// Complexity: O(1).
func ValidateStrassenOperands(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateStrassenOperands", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateStrassenOperands", err)
	}
	if a.Rows() != a.Cols() || b.Rows() != b.Cols() {
		return validatorErrorf("ValidateStrassenOperands",
			fmt.Errorf("%dx%d by %dx%d is not square: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrInvalidShape))
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateStrassenOperands",
			fmt.Errorf("sizes %d and %d differ: %w", a.Rows(), b.Rows(), ErrInvalidShape))
	}
	if !IsPowerOfTwo(a.Rows()) {
		return validatorErrorf("ValidateStrassenOperands",
			fmt.Errorf("size %d is not a power of two: %w", a.Rows(), ErrInvalidShape))
	}

	return nil
}

// IsPowerOfTwo reports whether n is a positive power of two (1, 2, 4, ...).
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}
