// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Strassen's divide-and-conquer product for square operands whose size is
//     a power of two: seven recursive sub-products per level instead of eight.
//
// Design:
//   - Quadrants are index windows (offset + stride) into the operand buffers;
//     splitting never copies.
//   - Each level needs two operand temporaries and seven product blocks of
//     size (n/2)². They are carved from a single arena allocated once per
//     call; the recursion is depth-first, so a level reuses the tail of the
//     arena for every child in turn.
//   - Result quadrants are written straight into the output buffer, so the
//     [C11|C12] over [C21|C22] reassembly costs nothing.
//
// Determinism:
//   - Fixed product order M1..M7 and fixed combination order; exact int64
//     arithmetic (wrapping on overflow, same ring as Mul).

package matrix

// strassenScratchBlocks is the number of (n/2)² blocks one level carves from
// the arena: M1..M7 plus one left and one right operand temporary.
const strassenScratchBlocks = 9

// block is a square window into a flat row-major buffer.
// Element (i,j) lives at data[off + i*stride + j].
type block struct {
	data   []int64
	off    int // offset of element (0,0)
	stride int // distance between consecutive rows
	n      int // side length
}

// quadrants splits b into its four (n/2)×(n/2) windows without copying.
// Complexity: O(1).
func (b block) quadrants() (q11, q12, q21, q22 block) {
	h := b.n / 2
	q11 = block{data: b.data, off: b.off, stride: b.stride, n: h}
	q12 = block{data: b.data, off: b.off + h, stride: b.stride, n: h}
	q21 = block{data: b.data, off: b.off + h*b.stride, stride: b.stride, n: h}
	q22 = block{data: b.data, off: b.off + h*b.stride + h, stride: b.stride, n: h}

	return q11, q12, q21, q22
}

// addBlock writes x + y into dst. dst may alias x or y cell-for-cell.
func addBlock(dst, x, y block) {
	var d, xo, yo int
	for i := 0; i < dst.n; i++ {
		d, xo, yo = dst.off+i*dst.stride, x.off+i*x.stride, y.off+i*y.stride
		for j := 0; j < dst.n; j++ {
			dst.data[d+j] = x.data[xo+j] + y.data[yo+j]
		}
	}
}

// subBlock writes x - y into dst. dst may alias x or y cell-for-cell.
func subBlock(dst, x, y block) {
	var d, xo, yo int
	for i := 0; i < dst.n; i++ {
		d, xo, yo = dst.off+i*dst.stride, x.off+i*x.stride, y.off+i*y.stride
		for j := 0; j < dst.n; j++ {
			dst.data[d+j] = x.data[xo+j] - y.data[yo+j]
		}
	}
}

// strassenArenaSize returns the scratch length needed to multiply n×n blocks:
// Σ 9·h² over h = n/2, n/4, ..., 1. Zero for n == 1.
func strassenArenaSize(n int) int {
	total := 0
	for h := n / 2; h >= 1; h /= 2 {
		total += strassenScratchBlocks * h * h
	}

	return total
}

// strassenKernel runs one multiplication and counts its work.
// calls is the number of multiply invocations (root included) and blockOps
// the number of block additions/subtractions.
type strassenKernel struct {
	calls    int
	blockOps int
}

func (k *strassenKernel) add(dst, x, y block) {
	k.blockOps++
	addBlock(dst, x, y)
}

func (k *strassenKernel) sub(dst, x, y block) {
	k.blockOps++
	subBlock(dst, x, y)
}

// multiply computes c = a × b for n×n blocks, n a power of two.
// MAIN DESCRIPTION:
//   - One Strassen level: split, seven sub-products, four combinations.
//
// Implementation:
//   - Stage 1: base case n == 1 is the scalar product.
//   - Stage 2: carve M1..M7, left, right from the arena front; the rest of
//     the arena goes to the recursive calls.
//   - Stage 3: M1 = (A11+A22)(B11+B22), M2 = (A21+A22)B11, M3 = A11(B12−B22),
//     M4 = A22(B21−B11), M5 = (A11+A12)B22, M6 = (A21−A11)(B11+B12),
//     M7 = (A12−A22)(B21+B22).
//   - Stage 4: C11 = M1+M4−M5+M7, C12 = M3+M5, C21 = M2+M4, C22 = M1+M3−M2+M6,
//     written into c's quadrants.
//
// Complexity:
//   - 7 recursive calls and 18 block add/sub per level: O(n^log2(7)).
func (k *strassenKernel) multiply(c, a, b block, arena []int64) {
	k.calls++
	if a.n == 1 {
		c.data[c.off] = a.data[a.off] * b.data[b.off]
		return
	}

	h := a.n / 2
	hh := h * h
	scratch := func(slot int) block {
		return block{data: arena[slot*hh : (slot+1)*hh], stride: h, n: h}
	}
	m1, m2, m3, m4, m5, m6, m7 := scratch(0), scratch(1), scratch(2), scratch(3), scratch(4), scratch(5), scratch(6)
	left, right := scratch(7), scratch(8)
	rest := arena[strassenScratchBlocks*hh:]

	a11, a12, a21, a22 := a.quadrants()
	b11, b12, b21, b22 := b.quadrants()

	// M1 = (A11 + A22)(B11 + B22)
	k.add(left, a11, a22)
	k.add(right, b11, b22)
	k.multiply(m1, left, right, rest)

	// M2 = (A21 + A22)B11
	k.add(left, a21, a22)
	k.multiply(m2, left, b11, rest)

	// M3 = A11(B12 − B22)
	k.sub(right, b12, b22)
	k.multiply(m3, a11, right, rest)

	// M4 = A22(B21 − B11)
	k.sub(right, b21, b11)
	k.multiply(m4, a22, right, rest)

	// M5 = (A11 + A12)B22
	k.add(left, a11, a12)
	k.multiply(m5, left, b22, rest)

	// M6 = (A21 − A11)(B11 + B12)
	k.sub(left, a21, a11)
	k.add(right, b11, b12)
	k.multiply(m6, left, right, rest)

	// M7 = (A12 − A22)(B21 + B22)
	k.sub(left, a12, a22)
	k.add(right, b21, b22)
	k.multiply(m7, left, right, rest)

	c11, c12, c21, c22 := c.quadrants()

	// C11 = M1 + M4 − M5 + M7
	k.add(c11, m1, m4)
	k.sub(c11, c11, m5)
	k.add(c11, c11, m7)

	// C12 = M3 + M5
	k.add(c12, m3, m5)

	// C21 = M2 + M4
	k.add(c21, m2, m4)

	// C22 = M1 + M3 − M2 + M6
	k.add(c22, m1, m3)
	k.sub(c22, c22, m2)
	k.add(c22, c22, m6)
}

// blockOf exposes m as a block without copying when its storage is flat
// (*Dense or *MatrixView); other implementations are copied via At.
func blockOf(m Matrix) (block, error) {
	switch v := m.(type) {
	case *Dense:
		return block{data: v.data, stride: v.c, n: v.r}, nil
	case *MatrixView:
		return block{data: v.base.data, off: v.r0*v.base.c + v.c0, stride: v.base.c, n: v.r}, nil
	}

	n := m.Rows()
	data := make([]int64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, err := m.At(i, j)
			if err != nil {
				return block{}, err
			}
			data[i*n+j] = x
		}
	}

	return block{data: data, stride: n, n: n}, nil
}

// strassen validates, allocates the result and the arena, and runs the kernel.
// Shared by Strassen and the white-box test bridge.
func strassen(a, b Matrix) (*Dense, *strassenKernel, error) {
	if err := ValidateStrassenOperands(a, b); err != nil {
		return nil, nil, matrixErrorf(opStrassen, err)
	}
	ba, err := blockOf(a)
	if err != nil {
		return nil, nil, matrixErrorf(opStrassen, err)
	}
	bb, err := blockOf(b)
	if err != nil {
		return nil, nil, matrixErrorf(opStrassen, err)
	}

	n := ba.n
	res, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opStrassen, err)
	}
	k := &strassenKernel{}
	k.multiply(block{data: res.data, stride: n, n: n}, ba, bb, make([]int64, strassenArenaSize(n)))

	return res, k, nil
}

// Strassen multiplies two n×n matrices with Strassen's algorithm.
// MAIN DESCRIPTION:
//   - Recursive seven-product multiplication; exact integer result equal to Mul.
//
// Implementation:
//   - Stage 1: ValidateStrassenOperands (square, equal size, power of two).
//   - Stage 2: view operands as flat blocks (no copy for *Dense / *MatrixView).
//   - Stage 3: allocate C and one scratch arena; recurse down to 1×1.
//
// Inputs:
//   - a, b: square matrices of the same power-of-two size n.
//
// Returns:
//   - Matrix: new n×n *Dense with a × b.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (non-square, size mismatch, not a power
//     of two). Non-conforming input is rejected, never padded.
//
// Complexity:
//   - Time O(n^log2(7)); Space O(n²): the result plus an arena of about 3n².
func Strassen(a, b Matrix) (Matrix, error) {
	res, _, err := strassen(a, b)
	if err != nil {
		return nil, err
	}

	return res, nil
}
