// SPDX-License-Identifier: MIT
package ops_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/affine/matrix"
	"github.com/katalvlaran/affine/matrix/ops"
	"github.com/katalvlaran/affine/vec"
)

const tol = 1e-9

// DecomposeSuite groups the factorization scenarios: identity-like inputs,
// randomized round trips, reflections, gimbal lock and the failure modes.
type DecomposeSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *DecomposeSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(41))
}

// randomDecomposition draws parameters inside the range where Euler
// extraction is unique: |alpha|, |gamma| < 170°, |beta| < 80°.
func (s *DecomposeSuite) randomDecomposition() ops.Decomposition[float64] {
	u := func(lo, hi float64) float64 { return lo + s.rng.Float64()*(hi-lo) }

	return ops.Decomposition[float64]{
		Scale:       vec.New3(u(0.2, 5), u(0.2, 5), u(0.2, 5)),
		Shear:       vec.New3(u(-1, 1), u(-1, 1), u(-1, 1)),
		Rotation:    vec.New3(u(-170, 170), u(-80, 80), u(-170, 170)),
		Translation: vec.New3(u(-10, 10), u(-10, 10), u(-10, 10)),
	}
}

func (s *DecomposeSuite) requireVec(want, got vec.Vec3[float64], eps float64, what string) {
	s.Require().True(want.ApproxEqual(got, eps), "%s: want %v, got %v", what, want, got)
}

func (s *DecomposeSuite) TestPureTranslation() {
	var m matrix.Matrix44[float64]
	m.SetTranslate(1, 2, 3)

	d, err := ops.Decompose(&m)
	s.Require().NoError(err)
	s.Require().Equal(vec.New3(1.0, 2, 3), d.Translation)
	s.requireVec(vec.New3(1.0, 1, 1), d.Scale, tol, "scale")
	s.requireVec(vec.Vec3[float64]{}, d.Shear, tol, "shear")
	s.requireVec(vec.Vec3[float64]{}, d.Rotation, tol, "rotation")

	var want matrix.Matrix44[float64]
	want.SetTranslate(1, 2, 3)
	s.Require().True(m.ApproxEqual(want, tol))
}

func (s *DecomposeSuite) TestRoundTrip() {
	for n := 0; n < 200; n++ {
		want := s.randomDecomposition()
		start := ops.Compose(want)
		m := start

		got, err := ops.Decompose(&m)
		s.Require().NoError(err)
		s.requireVec(want.Scale, got.Scale, 1e-9, "scale")
		s.requireVec(want.Shear, got.Shear, 1e-9, "shear")
		s.requireVec(want.Rotation, got.Rotation, 1e-7, "rotation")
		s.requireVec(want.Translation, got.Translation, 0, "translation")
		s.Require().True(ops.Compose(got).ApproxEqual(start, 1e-9))

		// *m now holds Trn·Rx·Ry·Rz.
		s.Require().InDelta(1.0, m.Determinant(), 1e-12)
		rigid := ops.Compose(ops.Decomposition[float64]{
			Scale:       vec.New3(1.0, 1, 1),
			Rotation:    want.Rotation,
			Translation: want.Translation,
		})
		s.Require().True(m.ApproxEqual(rigid, 1e-9))
	}
}

func (s *DecomposeSuite) TestMatchesGonumDeterminant() {
	for n := 0; n < 50; n++ {
		d := s.randomDecomposition()
		m := ops.Compose(d)
		g := mat.NewDense(4, 4, m.Slice())
		s.Require().InDelta(d.Scale[0]*d.Scale[1]*d.Scale[2], mat.Det(g), 1e-9)
	}
}

func (s *DecomposeSuite) TestReflection() {
	var start matrix.Matrix44[float64]
	start.SetScale(-1, 2, 3)
	m := start

	d, err := ops.Decompose(&m)
	s.Require().NoError(err)
	s.requireVec(vec.New3(-1.0, -2, -3), d.Scale, tol, "scale")
	s.Require().InDelta(180, math.Abs(d.Rotation[0]), 1e-9)
	s.Require().InDelta(0, d.Rotation[1], 1e-9)
	s.Require().InDelta(0, d.Rotation[2], 1e-9)
	s.Require().InDelta(1.0, m.Determinant(), 1e-12)
	s.Require().True(ops.Compose(d).ApproxEqual(start, tol))
	s.Require().Equal(vec.New4(0.0, 0, 0, 1), m.GetColumn4(3), "translation column keeps w = 1")
}

func (s *DecomposeSuite) TestGimbalLock() {
	in := ops.Decomposition[float64]{
		Scale:       vec.New3(1.0, 2, 3),
		Rotation:    vec.New3(30.0, 90, 20),
		Translation: vec.New3(4.0, 5, 6),
	}
	start := ops.Compose(in)
	m := start

	d, err := ops.Decompose(&m)
	s.Require().NoError(err)
	s.Require().InDelta(90, d.Rotation[1], 1e-5)
	s.Require().Equal(0.0, d.Rotation[2])
	s.Require().InDelta(50, d.Rotation[0], 1e-5)
	s.Require().True(ops.Compose(d).ApproxEqual(start, 1e-6))

	in.Rotation = vec.New3(30.0, -90, 20)
	start = ops.Compose(in)
	m = start
	d, err = ops.Decompose(&m)
	s.Require().NoError(err)
	s.Require().InDelta(-90, d.Rotation[1], 1e-5)
	s.Require().InDelta(10, d.Rotation[0], 1e-5)
	s.Require().True(ops.Compose(d).ApproxEqual(start, 1e-6))
}

func (s *DecomposeSuite) TestProjective() {
	m := matrix.Identity[float64]()
	m.SetElement(3, 0, 0.5)
	before := m

	_, err := ops.Decompose(&m)
	s.Require().ErrorIs(err, matrix.ErrProjective)
	s.Require().Equal("Decompose: matrix: matrix is projective", err.Error())
	s.Require().True(m.Equal(before), "input must be untouched")
}

func (s *DecomposeSuite) TestSingular() {
	var m matrix.Matrix44[float64]
	m.SetScale(1, 0, 1)
	before := m

	_, err := ops.Decompose(&m)
	s.Require().True(errors.Is(err, matrix.ErrSingular))
	s.Require().True(m.Equal(before))

	m.SetScale(1e-4, 1e-4, 1e-4) // det = 1e-12
	_, err = ops.Decompose(&m)
	s.Require().ErrorIs(err, matrix.ErrSingular)

	_, err = ops.Decompose(&m, ops.WithDeterminantEpsilon(1e-13))
	s.Require().NoError(err)
}

func (s *DecomposeSuite) TestDecomposeCopy() {
	want := s.randomDecomposition()
	start := ops.Compose(want)

	d, rigid, err := ops.DecomposeCopy(start)
	s.Require().NoError(err)
	s.requireVec(want.Scale, d.Scale, 1e-9, "scale")
	s.Require().True(start.Equal(ops.Compose(want)), "caller's matrix must be untouched")
	s.Require().InDelta(1.0, rigid.Determinant(), 1e-12)

	m := start
	_, err = ops.Decompose(&m)
	s.Require().NoError(err)
	s.Require().False(m.Equal(start), "Decompose must rewrite the 3×3 block")
	s.Require().True(rigid.Equal(m))

	var bad matrix.Matrix44[float64]
	_, rigid, err = ops.DecomposeCopy(bad)
	s.Require().ErrorIs(err, matrix.ErrProjective)
	s.Require().True(rigid.Equal(matrix.Zero[float64]()))
}

func (s *DecomposeSuite) TestRotationRadians() {
	d := ops.Decomposition[float64]{Rotation: vec.New3(180.0, -90, 45)}
	s.requireVec(vec.New3(math.Pi, -math.Pi/2, math.Pi/4), d.RotationRadians(), 1e-15, "radians")
}

func TestDecomposeSuite(t *testing.T) {
	suite.Run(t, new(DecomposeSuite))
}

func TestDecompose_Float32(t *testing.T) {
	in := ops.Decomposition[float32]{
		Scale:       vec.New3[float32](2, 3, 4),
		Shear:       vec.New3[float32](0.5, -0.25, 0.125),
		Rotation:    vec.New3[float32](10, 20, 30),
		Translation: vec.New3[float32](1, -1, 2),
	}
	m := ops.Compose(in)

	d, err := ops.Decompose(&m)
	require.NoError(t, err)
	require.True(t, in.Scale.ApproxEqual(d.Scale, 1e-4), "scale %v", d.Scale)
	require.True(t, in.Shear.ApproxEqual(d.Shear, 1e-4), "shear %v", d.Shear)
	require.True(t, in.Rotation.ApproxEqual(d.Rotation, 1e-3), "rotation %v", d.Rotation)
	require.Equal(t, in.Translation, d.Translation)
}
