// Package matrix implements exact integer matrix arithmetic and the two
// multiplication algorithms compared by the strassenbench tool.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 matrix backed by one flat buffer, and
//     MatrixView, a non-owning window into a Dense.
//   - Element-wise Add, Sub and the Equal comparison primitive.
//   - Mul, the canonical O(n³) triple-loop product.
//   - Strassen, the recursive seven-product method for square operands whose
//     size is a power of two (O(n^log2(7)) ≈ O(n^2.807)).
//
// All values are int64. Overflow wraps silently (two's complement); because
// both algorithms work in the same ring, their results still agree when it
// happens, but they no longer equal the mathematical product.
//
// Kernels never mutate their operands and return freshly allocated Dense
// results. Errors are package sentinels wrapped with an operation tag; match
// them with errors.Is.
package matrix
