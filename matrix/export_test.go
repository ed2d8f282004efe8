// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the Strassen kernel.
//
// Purpose:
//   - Expose the arena sizing and the work counters of one Strassen run to
//     matrix_test ONLY, without widening the production API.

// StrassenArenaSize_TestOnly forwards to strassenArenaSize.
var StrassenArenaSize_TestOnly = strassenArenaSize

// StrassenWork_TestOnly multiplies a and b and reports how many multiply
// invocations (root included) and block additions/subtractions it took.
func StrassenWork_TestOnly(a, b Matrix) (res Matrix, calls, blockOps int, err error) {
	d, k, err := strassen(a, b)
	if err != nil {
		return nil, 0, 0, err
	}

	return d, k.calls, k.blockOps, nil
}
