// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/affine/vec"

// TinyPivot replaces a pivot that is exactly zero after elimination. It
// trades a tiny accuracy loss for never dividing by zero. For float32 the
// value underflows, so the smallest normal float32 is used instead (its
// reciprocal is still finite).
const TinyPivot = 1e-100

var (
	tinyPivot64 float64 = TinyPivot
	tinyPivot32         = float32(0x1p-126)
)

func tinyPivot[T vec.Float]() T {
	if t := T(tinyPivot64); t != 0 {
		return t
	}

	return T(tinyPivot32)
}

// LinearSolve solves A·x = b for a fixed 4×4 A. It holds the LU factors of
// a row permutation of A in a single buffer (unit lower triangle below the
// diagonal, upper triangle on and above it), the permutation and its sign.
//
// A LinearSolve is built once per A and then answers any number of Solve and
// Determinant calls. It is a value: copying it copies the factors.
type LinearSolve[T vec.Float] struct {
	lu    Matrix44[T]
	index [Size]int // index[j] = row swapped into position j
	d     T         // +1 / -1: parity of the permutation
	ok    bool
}

// NewLinearSolve factors a copy of m.
// Implementation:
//   - Stage 1: copy m, run Crout LU with scaled partial pivoting (decompose).
//   - Stage 2: on failure (a row that is entirely zero) reset to the zero
//     matrix with identity permutation and ok=false.
//
// Behavior highlights:
//   - Never fails loudly: an m with an all-zero row gives Determinant()==0
//     and Solve returning the zero vector.
//   - Other singular inputs pass the row scan; an exactly-zero pivot after
//     elimination is replaced by TinyPivot, so Determinant is tiny and Solve
//     returns huge finite values.
//
// Inputs:
//   - m: any 4×4 matrix (singular, projective, non-orthogonal all allowed).
//
// Returns:
//   - LinearSolve[T]: factored solver; check Ok() to learn whether the
//     row scan succeeded.
//
// Complexity:
//   - Time O(4³), Space O(1).
//
// AI-Hints:
//   - Build one solver and call Solve per right-hand side; Invert does exactly
//     that for the four basis columns.
func NewLinearSolve[T vec.Float](m Matrix44[T]) LinearSolve[T] {
	s := LinearSolve[T]{lu: m}
	if s.ok = s.decompose(); !s.ok {
		for i := range s.index {
			s.index[i] = i
		}
		s.lu.SetZero()
	}

	return s
}

// decompose replaces s.lu by the LU factors of a row-wise permutation of
// itself. Returns false when some row is entirely zero.
func (s *LinearSolve[T]) decompose() bool {
	var (
		scaling      [Size]T
		i, j, k      int
		imax         int
		sum, largest T
		t, dum       T
	)
	a := &s.lu.a
	s.d = 1

	// Stage 1: per-row scaling from the largest magnitude.
	for i = 0; i < Size; i++ {
		largest = 0
		for j = 0; j < Size; j++ {
			if t = vec.Abs(a[i<<2|j]); t > largest {
				largest = t
			}
		}
		if largest == 0 {
			return false
		}
		scaling[i] = 1 / largest
	}

	// Stage 2: Crout's method column by column.
	for j = 0; j < Size; j++ {
		for i = 0; i < j; i++ {
			sum = a[i<<2|j]
			for k = 0; k < i; k++ {
				sum -= a[i<<2|k] * a[k<<2|j]
			}
			a[i<<2|j] = sum
		}

		largest = 0
		imax = j
		for i = j; i < Size; i++ {
			sum = a[i<<2|j]
			for k = 0; k < j; k++ {
				sum -= a[i<<2|k] * a[k<<2|j]
			}
			a[i<<2|j] = sum
			if t = scaling[i] * vec.Abs(sum); t >= largest {
				largest = t
				imax = i
			}
		}

		// Stage 3: pivot swap and sign flip.
		if j != imax {
			for k = 0; k < Size; k++ {
				a[imax<<2|k], a[j<<2|k] = a[j<<2|k], a[imax<<2|k]
			}
			s.d = -s.d
			scaling[imax] = scaling[j]
		}
		s.index[j] = imax

		if a[j<<2|j] == 0 {
			a[j<<2|j] = tinyPivot[T]()
		}
		if j != Size-1 {
			dum = 1 / a[j<<2|j]
			for i = j + 1; i < Size; i++ {
				a[i<<2|j] *= dum
			}
		}
	}

	return true
}

// Ok reports whether the factorization succeeded (no all-zero row).
func (s LinearSolve[T]) Ok() bool { return s.ok }

// LU returns a copy of the packed LU factors.
func (s LinearSolve[T]) LU() Matrix44[T] { return s.lu }

// Permutation returns the recorded row swaps: position j received row index[j].
func (s LinearSolve[T]) Permutation() [Size]int { return s.index }

// Determinant returns sign × Π diag(U). It is 0 after a failed factorization.
func (s LinearSolve[T]) Determinant() T {
	det := s.d
	for j := 0; j < Size; j++ {
		det *= s.lu.a[j<<2|j]
	}

	return det
}

// Solve returns x with A·x = b, A being the matrix the solver was built from.
// Implementation:
//   - Stage 1: apply the recorded permutation to b while running forward
//     substitution on the unit lower triangle; leading zeros of b are skipped.
//   - Stage 2: back substitution on the upper triangle.
//
// Behavior highlights:
//   - After a failed factorization the zero vector is returned.
//
// Complexity:
//   - Time O(4²), Space O(1).
func (s LinearSolve[T]) Solve(b vec.Vec4[T]) vec.Vec4[T] {
	if !s.ok {
		return vec.Vec4[T]{}
	}

	var (
		x        = b
		a        = &s.lu.a
		first    = -1
		i, j, ip int
		sum      T
	)
	for i = 0; i < Size; i++ {
		ip = s.index[i]
		sum = x[ip]
		x[ip] = x[i]
		if first != -1 {
			for j = first; j < i; j++ {
				sum -= a[i<<2|j] * x[j]
			}
		} else if sum != 0 {
			first = i
		}
		x[i] = sum
	}
	for i = Size - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < Size; j++ {
			sum -= a[i<<2|j] * x[j]
		}
		x[i] = sum / a[i<<2|i]
	}

	return x
}
