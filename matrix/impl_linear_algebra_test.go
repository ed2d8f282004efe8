// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Add, Sub, Equal and Mul.
package matrix_test

import (
	"testing"

	"github.com/HesamPourabbasian/Strassen-Matrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSub checks element-wise results on a small rectangular pair.
func TestAddSub(t *testing.T) {
	a := FromRows(t, []int64{1, 2, 3}, []int64{4, 5, 6})
	b := FromRows(t, []int64{10, 20, 30}, []int64{-4, -5, -6})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{11, 22, 33}, {0, 0, 0}}, asDense(t, sum).ToRows())

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{-9, -18, -27}, {8, 10, 12}}, asDense(t, diff).ToRows())

	// operands untouched
	require.Equal(t, [][]int64{{1, 2, 3}, {4, 5, 6}}, a.ToRows())
}

// TestAddSubDimensionMismatch ensures mismatched shapes fail fast.
func TestAddSubDimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(b, MustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddSubRoundTrip verifies (A + B) − B == A on random data, on both paths.
func TestAddSubRoundTrip(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {3, 5}, {8, 8}, {16, 4}} {
		a := RandomDense(t, shape[0], shape[1], 1, 1000)
		b := RandomDense(t, shape[0], shape[1], 2, 1000)

		sum, err := matrix.Add(a, b)
		require.NoError(t, err)
		back, err := matrix.Sub(sum, b)
		require.NoError(t, err)
		require.True(t, matrix.Equal(a, back), "dense path %v", shape)

		sum, err = matrix.Add(hide{a}, hide{b})
		require.NoError(t, err)
		back, err = matrix.Sub(hide{sum}, b)
		require.NoError(t, err)
		require.True(t, matrix.Equal(hide{a}, back), "fallback path %v", shape)
	}
}

// TestEqual covers reflexivity, single-cell differences and shape mismatch.
func TestEqual(t *testing.T) {
	a := RandomDense(t, 4, 4, 3, 50)
	require.True(t, matrix.Equal(a, a))        // reflexive
	require.True(t, matrix.Equal(a, a.Clone())) // equal copy

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			b := asDense(t, a.Clone())
			v, _ := b.At(i, j)
			require.NoError(t, b.Set(i, j, v+1))
			require.False(t, matrix.Equal(a, b), "cell (%d,%d)", i, j)
			require.False(t, matrix.Equal(hide{a}, b), "fallback cell (%d,%d)", i, j)
		}
	}

	require.False(t, matrix.Equal(MustDense(t, 2, 2), MustDense(t, 2, 3))) // shape mismatch
	require.False(t, matrix.Equal(nil, a))
	var nilDense *matrix.Dense
	require.False(t, matrix.Equal(a, nilDense))
}

// TestMulKnown checks the 2×2 scenario and a rectangular product.
func TestMulKnown(t *testing.T) {
	a := FromRows(t, []int64{1, 2}, []int64{3, 4})
	b := FromRows(t, []int64{5, 6}, []int64{7, 8})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{19, 22}, {43, 50}}, asDense(t, c).ToRows())

	// (2×3)·(3×1)
	r := FromRows(t, []int64{1, 0, -1}, []int64{2, 3, 4})
	v := FromRows(t, []int64{5}, []int64{6}, []int64{7})
	c, err = matrix.Mul(r, v)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{-2}, {56}}, asDense(t, c).ToRows())
}

// TestMulFallbackMatchesDense compares both Mul paths on random operands.
func TestMulFallbackMatchesDense(t *testing.T) {
	a := RandomDense(t, 5, 7, 11, 100)
	b := RandomDense(t, 7, 3, 12, 100)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))
}

// TestMulDimensionMismatch ensures the inner dimension is validated.
func TestMulDimensionMismatch(t *testing.T) {
	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(MustDense(t, 2, 2), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulIdentity checks I·M == M and M·I == M.
func TestMulIdentity(t *testing.T) {
	m := RandomDense(t, 4, 4, 5, 9)
	I := IdentityDense(t, 4)

	left, err := matrix.Mul(I, m)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, left))

	right, err := matrix.Mul(m, I)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, right))
}
