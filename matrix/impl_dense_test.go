// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/HesamPourabbasian/Strassen-Matrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4) // create a Dense matrix of size 3x4

	require.Equal(t, 3, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, 4, m.Cols()) // assert Cols() equals expected cols
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)                         // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2) // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 7) // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, -42)) // set element at row 1, column 2
	val, err := m.At(1, 2)               // retrieve the set element
	require.NoError(t, err)
	require.Equal(t, int64(-42), val) // retrieved value matches
}

// TestNewFromRows covers the happy path and the rejection of ragged or empty input.
func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]int64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, [][]int64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())

	_, err = matrix.NewFromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]int64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewFromRowsCopies ensures the input rows are not aliased.
func TestNewFromRowsCopies(t *testing.T) {
	rows := [][]int64{{1, 2}, {3, 4}}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	rows[0][0] = 99 // mutate the source
	v, _ := m.At(0, 0)
	require.Equal(t, int64(1), v) // matrix keeps its own copy
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := FromRows(t, []int64{1, 0}, []int64{0, 2})

	clone := m.Clone()             // clone the matrix
	_ = clone.Set(0, 0, 3)         // modify the clone, but not the original
	origVal, _ := m.At(0, 0)       // original element
	cloneVal, _ := clone.At(0, 0)  // clone element
	require.Equal(t, int64(1), origVal)
	require.Equal(t, int64(3), cloneVal)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := FromRows(t, []int64{1, -2}, []int64{3, 4})

	require.Equal(t, "[1, -2]\n[3, 4]\n", m.String())
}

// TestIdentity checks the diagonal layout of NewIdentity.
func TestIdentity(t *testing.T) {
	I := IdentityDense(t, 3)
	require.Equal(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I.ToRows())

	_, err := matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewRandomDeterministic checks range and reproducibility for a fixed seed.
func TestNewRandomDeterministic(t *testing.T) {
	a := RandomDense(t, 8, 8, 7, 5)
	b := RandomDense(t, 8, 8, 7, 5)
	require.True(t, matrix.Equal(a, b)) // same seed, same matrix

	for _, row := range a.ToRows() {
		for _, v := range row {
			require.GreaterOrEqual(t, v, int64(-5))
			require.LessOrEqual(t, v, int64(5))
		}
	}
}

// TestNewRandomBounds rejects bounds whose draw span overflows int64 and
// accepts the largest valid one without panicking.
func TestNewRandomBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, maxAbs := range []int64{-1, math.MinInt64, matrix.MaxRandomAbs + 1, math.MaxInt64} {
		require.NotPanics(t, func() {
			_, err := matrix.NewRandom(2, 2, rng, maxAbs)
			require.ErrorIs(t, err, matrix.ErrOutOfRange, "maxAbs=%d", maxAbs)
		})
	}

	var m *matrix.Dense
	var err error
	require.NotPanics(t, func() { m, err = matrix.NewRandom(4, 4, rng, matrix.MaxRandomAbs) })
	require.NoError(t, err)
	for _, row := range m.ToRows() {
		for _, v := range row {
			require.GreaterOrEqual(t, v, int64(-matrix.MaxRandomAbs))
			require.LessOrEqual(t, v, int64(matrix.MaxRandomAbs))
		}
	}

	z, err := matrix.NewRandom(2, 2, rng, 0)
	require.NoError(t, err)
	require.True(t, matrix.Equal(MustDense(t, 2, 2), z))
}

// TestViewSharesStorage verifies reads and write-through of a window.
func TestViewSharesStorage(t *testing.T) {
	m := FromRows(t,
		[]int64{1, 2, 3, 4},
		[]int64{5, 6, 7, 8},
		[]int64{9, 10, 11, 12},
	)

	v, err := m.View(1, 2, 2, 2) // bottom-right 2x2 window
	require.NoError(t, err)
	require.Equal(t, 2, v.Rows())
	require.Equal(t, 2, v.Cols())

	x, err := v.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(7), x)

	require.NoError(t, v.Set(1, 1, 100)) // write through to base
	y, _ := m.At(2, 3)
	require.Equal(t, int64(100), y)

	cp := asDense(t, v.Clone())
	require.Equal(t, [][]int64{{7, 8}, {11, 100}}, cp.ToRows())

	_, err = v.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestViewInvalidWindow ensures windows leaving the base are rejected.
func TestViewInvalidWindow(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.View(1, 1, 2, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = m.View(0, 0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}
