// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for LinearSolve, Determinant and
// the inverse family.
package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/affine/matrix"
	"github.com/katalvlaran/affine/vec"
)

// LinearSolveSuite exercises the LU engine on fixed and random inputs.
type LinearSolveSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *LinearSolveSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(20240417))
}

// TestInverseOfIdentity checks that the identity inverts to itself exactly.
func (s *LinearSolveSuite) TestInverseOfIdentity() {
	id := matrix.Identity[float64]()
	require.True(s.T(), matrix.Inverse(id).Equal(id))
	require.Equal(s.T(), 1.0, id.Determinant())
}

// TestZeroMatrix verifies the degenerate path: no panic, zero inverse, zero det.
func (s *LinearSolveSuite) TestZeroMatrix() {
	var z matrix.Matrix44[float64]
	ls := matrix.NewLinearSolve(z)
	require.False(s.T(), ls.Ok())
	require.Equal(s.T(), [4]int{0, 1, 2, 3}, ls.Permutation())
	require.Equal(s.T(), 0.0, ls.Determinant())
	require.Equal(s.T(), vec.Vec4[float64]{}, ls.Solve(vec.New4(1.0, 2, 3, 4)))

	require.Equal(s.T(), 0.0, z.Determinant())
	require.True(s.T(), matrix.Inverse(z).Equal(z))
	inv := z
	matrix.Invert(&inv)
	require.True(s.T(), inv.Equal(z))
}

// TestZeroRowResetsSolver checks that a single all-zero row triggers the reset.
func (s *LinearSolveSuite) TestZeroRowResetsSolver() {
	m := randomMatrix(s.rng, 1)
	for c := 0; c < 4; c++ {
		m.SetElement(2, c, 0)
	}
	ls := matrix.NewLinearSolve(m)
	require.False(s.T(), ls.Ok())
	require.True(s.T(), ls.LU().Equal(matrix.Zero[float64]()))
	require.True(s.T(), matrix.Inverse(m).Equal(matrix.Zero[float64]()))
}

// TestZeroPivotIsReplaced checks that a singular matrix without zero rows
// survives elimination with a tiny pivot instead of dividing by zero.
func (s *LinearSolveSuite) TestZeroPivotIsReplaced() {
	m := matrix.New([16]float64{
		1, 2, 3, 4,
		2, 4, 6, 8, // 2 × row 0
		0, 1, 0, 1,
		1, 0, 1, 0,
	})
	ls := matrix.NewLinearSolve(m)
	require.True(s.T(), ls.Ok())
	det := ls.Determinant()
	require.False(s.T(), math.IsNaN(det))
	require.InDelta(s.T(), 0.0, det, 1e-12)
}

// TestPermutationSign verifies the sign accumulator on pure row swaps.
func (s *LinearSolveSuite) TestPermutationSign() {
	swap := matrix.New([16]float64{
		0, 1, 0, 0,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	require.Equal(s.T(), -1.0, swap.Determinant())

	cycle := matrix.New([16]float64{
		0, 1, 0, 0,
		0, 0, 1, 0,
		1, 0, 0, 0,
		0, 0, 0, 1,
	})
	require.Equal(s.T(), 1.0, cycle.Determinant())
}

// TestSolveKnownSystem solves a hand-checked system.
func (s *LinearSolveSuite) TestSolveKnownSystem() {
	a := matrix.New([16]float64{
		2, 1, 0, 0,
		1, 3, 1, 0,
		0, 1, 4, 1,
		0, 0, 1, 5,
	})
	want := vec.New4(1.0, -2, 3, -4)
	b := a.MulVec4(want)
	got := matrix.NewLinearSolve(a).Solve(b)
	require.True(s.T(), got.ApproxEqual(want, 1e-12), "got %v", got)

	// leading zeros in b exercise the forward-substitution skip
	b = a.MulVec4(vec.New4(0.0, 0, 1, 0))
	got = matrix.NewLinearSolve(a).Solve(b)
	require.True(s.T(), got.ApproxEqual(vec.New4(0.0, 0, 1, 0), 1e-12), "got %v", got)
}

// TestSolveMatchesGonum solves random systems and compares with gonum.
func (s *LinearSolveSuite) TestSolveMatchesGonum() {
	for n := 0; n < 25; n++ {
		a := randomInvertible(s.T(), s.rng)
		b := vec.New4(s.rng.Float64(), s.rng.Float64(), s.rng.Float64(), s.rng.Float64())
		var x mat.VecDense
		require.NoError(s.T(), x.SolveVec(toGonum(a), mat.NewVecDense(4, b[:])))
		got := matrix.NewLinearSolve(a).Solve(b)
		for i := 0; i < 4; i++ {
			require.InDelta(s.T(), x.AtVec(i), got[i], tol)
		}
	}
}

// TestDeterminantMatchesGonum compares against mat.Det.
func (s *LinearSolveSuite) TestDeterminantMatchesGonum() {
	for n := 0; n < 50; n++ {
		a := randomMatrix(s.rng, 3)
		require.InDelta(s.T(), mat.Det(toGonum(a)), a.Determinant(), 1e-9)
	}
}

// TestDeterminantIsMultiplicative checks det(AB) = det(A)·det(B).
func (s *LinearSolveSuite) TestDeterminantIsMultiplicative() {
	for n := 0; n < 50; n++ {
		a, b := randomMatrix(s.rng, 2), randomMatrix(s.rng, 2)
		want := a.Determinant() * b.Determinant()
		got := a.Mul(b).Determinant()
		require.InDelta(s.T(), want, got, 1e-9*math.Max(1, math.Abs(want)))
	}
}

// TestInverseProperties checks Inverse(Inverse(M)) ≈ M and M·Inverse(M) ≈ I.
func (s *LinearSolveSuite) TestInverseProperties() {
	id := matrix.Identity[float64]()
	for n := 0; n < 50; n++ {
		m := randomInvertible(s.T(), s.rng)
		inv := matrix.Inverse(m)
		requireClose(s.T(), id, m.Mul(inv), tol)
		requireClose(s.T(), id, inv.Mul(m), tol)
		requireClose(s.T(), m, matrix.Inverse(inv), tol)

		var g mat.Dense
		require.NoError(s.T(), g.Inverse(toGonum(m)))
		requireCloseGonum(s.T(), &g, inv, tol)

		inPlace := m
		inPlace.Invert()
		require.True(s.T(), inPlace.Equal(inv), "Invert and Inverse must agree bitwise")
	}
}

// TestSingularWithoutZeroRow covers the other singular path: no row is
// zero, so the scan succeeds and the zero pivots are replaced by TinyPivot.
// The result is huge but finite, and Determinant is tiny rather than 0.
func (s *LinearSolveSuite) TestSingularWithoutZeroRow() {
	m := matrix.New([16]float64{
		1, 0, 0, 0,
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
	ls := matrix.NewLinearSolve(m)
	require.True(s.T(), ls.Ok())

	det := m.Determinant()
	require.NotZero(s.T(), det)
	require.Less(s.T(), math.Abs(det), 1e-150)

	inv := matrix.Inverse(m)
	for _, v := range inv.Slice() {
		require.False(s.T(), math.IsNaN(v) || math.IsInf(v, 0), "inverse %v", inv)
	}
	require.False(s.T(), inv.Equal(matrix.Zero[float64]()))
}

func TestLinearSolveSuite(t *testing.T) {
	suite.Run(t, new(LinearSolveSuite))
}

// TestLinearSolve_Float32 runs the solver in single precision.
func TestLinearSolve_Float32(t *testing.T) {
	var m matrix.Matrix44[float32]
	m.SetRotate(0.7, vec.New3[float32](1, 2, 3))
	var sc matrix.Matrix44[float32]
	sc.SetScale(2, 3, 4)
	m.MulInPlace(sc)

	require.InDelta(t, 24.0, float64(m.Determinant()), 1e-4)
	prod := m.Mul(matrix.Inverse(m))
	id := matrix.Identity[float32]()
	require.True(t, prod.ApproxEqual(id, 1e-5), "M·M⁻¹:\n%v", prod)

	// singular float32 input still avoids Inf/NaN through the tiny pivot
	var s32 matrix.Matrix44[float32]
	s32.SetScale(1, 1, 1)
	s32.SetElement(1, 1, 0)
	s32.SetElement(1, 0, 1)
	d := s32.Determinant()
	require.False(t, math.IsNaN(float64(d)))
	require.InDelta(t, 0.0, float64(d), 1e-30)
}
