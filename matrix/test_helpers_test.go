// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (seeded RNG, affine builders).
//   • Bridge Matrix44 to gonum/mat so the LU engine is checked against an
//     independent implementation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/affine/matrix"
)

// tol is the component tolerance for double precision comparisons.
const tol = 1e-6

// randomMatrix FILLS a 4×4 matrix with values in [-scale, scale) from rng.
func randomMatrix(rng *rand.Rand, scale float64) matrix.Matrix44[float64] {
	var v [16]float64
	for i := range v {
		v[i] = (rng.Float64()*2 - 1) * scale
	}

	return matrix.New(v)
}

// randomInvertible DRAWS random matrices until one has |det| >= 0.1 so the
// inverse is well conditioned enough for tol-level comparisons.
func randomInvertible(t *testing.T, rng *rand.Rand) matrix.Matrix44[float64] {
	t.Helper()
	for attempt := 0; attempt < 100; attempt++ {
		m := randomMatrix(rng, 2)
		if d := mat.Det(toGonum(m)); d > 0.1 || d < -0.1 {
			return m
		}
	}
	t.Fatalf("randomInvertible: no well-conditioned matrix after 100 draws")

	return matrix.Matrix44[float64]{}
}

// toGonum COPIES m into a gonum Dense (both are row-major).
func toGonum(m matrix.Matrix44[float64]) *mat.Dense {
	return mat.NewDense(4, 4, m.Slice())
}

// requireClose FAILS the test if any element of got differs from want by more than eps.
func requireClose(t *testing.T, want, got matrix.Matrix44[float64], eps float64, msgAndArgs ...interface{}) {
	t.Helper()
	w, g := want.V(), got.V()
	for i := range w {
		require.InDelta(t, w[i], g[i], eps, msgAndArgs...)
	}
}

// requireCloseGonum compares m against a gonum matrix element by element.
func requireCloseGonum(t *testing.T, want mat.Matrix, got matrix.Matrix44[float64], eps float64) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.InDelta(t, want.At(i, j), got.ElementAt(i, j), eps, "element (%d,%d)", i, j)
		}
	}
}
