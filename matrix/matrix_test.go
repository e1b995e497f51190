// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the dense kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surveyor/matrix"
)

const eps = 1e-9

// hide wraps any Matrix to mask its concrete type and force fallback paths.
type hide struct{ matrix.Matrix }

// MustDense builds an r×c *Dense from row-major values or fails the test.
func MustDense(t *testing.T, r, c int, values ...float64) *matrix.Dense {
	t.Helper()
	if len(values) == 0 {
		values = make([]float64, r*c)
	}
	m, err := matrix.NewDenseFrom(r, c, values)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// AssertClose compares two matrices element-wise within tol.
func AssertClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			assert.InDelta(t, MustAt(t, want, i, j), MustAt(t, got, i, j), tol, "(%d,%d)", i, j)
		}
	}
}

func TestDense_Basics(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m := MustDense(t, 2, 3)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	require.NoError(t, m.Add(1, 2, 0.5))
	assert.Equal(t, 5.0, MustAt(t, m, 1, 2))

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Add(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	c := m.Clone()
	require.NoError(t, m.Set(1, 2, 0))
	assert.Equal(t, 5.0, MustAt(t, c, 1, 2), "clone must not alias")

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFrom(1, 1, []float64{math.Inf(-1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1}, id.Diag())
	assert.Equal(t, "[1, 0]\n[0, 1]\n", MustDense(t, 2, 2, 1, 0, 0, 1).String())
}

func TestMul(t *testing.T) {
	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustDense(t, 3, 2, 7, 8, 9, 10, 11, 12)
	want := MustDense(t, 2, 2, 58, 64, 139, 154)

	for _, tc := range []struct {
		name string
		a, b matrix.Matrix
	}{
		{"dense", a, b},
		{"fallback", hide{a}, hide{b}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Mul(tc.a, tc.b)
			require.NoError(t, err)
			AssertClose(t, want, got, 0)
		})
	}

	_, err := matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeAndMatVec(t *testing.T) {
	a := MustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	want := MustDense(t, 3, 2, 1, 4, 2, 5, 3, 6)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	AssertClose(t, want, at, 0)
	at, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	AssertClose(t, want, at, 0)

	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)
	y, err = matrix.MatVec(hide{a}, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLU_Reconstructs(t *testing.T) {
	a := MustDense(t, 3, 3,
		4, 3, 2,
		2, 1, 3,
		3, 2, 1,
	)
	l, u, err := matrix.LU(a)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, MustAt(t, l, i, i), "unit diagonal")
		for j := i + 1; j < 3; j++ {
			assert.Equal(t, 0.0, MustAt(t, l, i, j), "L upper must be zero")
			assert.Equal(t, 0.0, MustAt(t, u, j, i), "U lower must be zero")
		}
	}
	lu, err := matrix.Mul(l, u)
	require.NoError(t, err)
	AssertClose(t, a, lu, eps)

	_, _, err = matrix.LU(hide{a})
	require.NoError(t, err)
}

func TestLU_Singular(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    *matrix.Dense
	}{
		{"zero", MustDense(t, 2, 2)},
		{"rank-deficient", MustDense(t, 2, 2, 1, 2, 2, 4)},
		// Third row is the sum of the first two.
		{"dependent-rows", MustDense(t, 3, 3, 1, 1, 1, 1, 2, 3, 2, 3, 4)},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := matrix.LU(tc.m)
			require.ErrorIs(t, err, matrix.ErrSingular)
			_, err = matrix.Inverse(tc.m)
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}

	_, _, err := matrix.LU(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolveAndInverse(t *testing.T) {
	a := MustDense(t, 3, 3,
		4, -2, 1,
		-2, 4, -2,
		1, -2, 4,
	)
	want := []float64{1, -2, 3}
	b, err := matrix.MatVec(a, want)
	require.NoError(t, err)

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, eps)

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	id, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	ident, _ := matrix.NewIdentity(3)
	AssertClose(t, ident, id, eps)

	_, err = matrix.Solve(a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Solve(a, []float64{1, math.NaN(), 2})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNormalEquations(t *testing.T) {
	// Three observations of two unknowns.
	a := MustDense(t, 3, 2,
		1, 0,
		0, 1,
		1, -1,
	)
	w := []float64{1, 4, 2}
	l := []float64{0.5, -0.25, 1}

	n, u, err := matrix.NormalEquations(a, w, l)
	require.NoError(t, err)

	// Reference: AᵀPA and AᵀPL formed explicitly.
	p := MustDense(t, 3, 3, 1, 0, 0, 0, 4, 0, 0, 0, 2)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	atp, err := matrix.Mul(at, p)
	require.NoError(t, err)
	want, err := matrix.Mul(atp, a)
	require.NoError(t, err)
	AssertClose(t, want, n, eps)

	wantU, err := matrix.MatVec(atp, l)
	require.NoError(t, err)
	assert.InDeltaSlice(t, wantU, u, eps)

	nf, uf, err := matrix.NormalEquations(hide{a}, w, l)
	require.NoError(t, err)
	AssertClose(t, n, nf, 0)
	assert.Equal(t, u, uf)

	_, _, err = matrix.NormalEquations(a, w[:2], l)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, _, err = matrix.NormalEquations(a, w, []float64{0, math.Inf(1), 0})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, _, err = matrix.NormalEquations(nil, w, l)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
