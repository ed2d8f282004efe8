// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison primitive shared by the driver and the tests.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1), early exit on first difference.
//   - Dense fast-path operates on the flat buffers; no allocations.

package matrix

// Equal reports whether a and b have the same shape and identical cells.
// It is a comparison primitive, not a validator: nil operands and shape
// mismatches yield false, never an error.
// Time: O(r*c). Space: O(1).
func Equal(a, b Matrix) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}

	// Dense fast-path: compare the flat buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false // early-exit on first difference
				}
			}
			return true
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	r, c := a.Rows(), a.Cols()
	var av, bv int64
	var errA, errB error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, errA = a.At(i, j)
			bv, errB = b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}
