// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/affine/vec"

// Determinant returns det(m) through a fresh LinearSolve.
// If you already hold a LinearSolve for m, call its Determinant instead.
func (m Matrix44[T]) Determinant() T {
	s := NewLinearSolve(m)

	return s.Determinant()
}

// Transpose transposes m in place and returns it.
func (m *Matrix44[T]) Transpose() *Matrix44[T] {
	for i := 1; i < Size; i++ {
		for j := 0; j < i; j++ {
			m.a[i<<2|j], m.a[j<<2|i] = m.a[j<<2|i], m.a[i<<2|j]
		}
	}

	return m
}

// Transpose returns the transpose of m.
func Transpose[T vec.Float](m Matrix44[T]) Matrix44[T] {
	m.Transpose()

	return m
}

// Invert replaces *m with its inverse and returns m.
// Implementation:
//   - Stage 1: build ONE LinearSolve from m.
//   - Stage 2: solve for each standard basis column e_j and write the
//     solution into column j.
//
// Behavior highlights:
//   - A singular m is never reported. With an all-zero row it becomes the
//     zero matrix; otherwise the TinyPivot substitution yields huge finite
//     entries. Check |Determinant| against a threshold first when
//     singularity must be detected.
//
// Complexity:
//   - Time O(4³), Space O(1).
func Invert[T vec.Float](m *Matrix44[T]) *Matrix44[T] {
	*m = Inverse(*m)

	return m
}

// Inverse returns the inverse of m; see Invert for the singular case.
func Inverse[T vec.Float](m Matrix44[T]) Matrix44[T] {
	var (
		res  Matrix44[T]
		col  vec.Vec4[T]
		i, j int
	)
	s := NewLinearSolve(m)
	for j = 0; j < Size; j++ {
		col = s.Solve(vec.Unit4[T](j))
		for i = 0; i < Size; i++ {
			res.a[i<<2|j] = col[i]
		}
	}

	return res
}

// Invert is the method form of the package-level Invert.
func (m *Matrix44[T]) Invert() *Matrix44[T] { return Invert(m) }
