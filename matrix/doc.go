// SPDX-License-Identifier: MIT

// Package matrix provides Matrix44, a dense 4×4 matrix over any
// floating-point scalar, together with the LU engine (LinearSolve) that backs
// its determinant and inverse.
//
// The package provides:
//
//   - Matrix44[T]: value type, 16 scalars in ROW-MAJOR order; element (r,c)
//     lives at index r*4+c.
//   - Arithmetic: Add, Sub, Mul, MulScalar, Neg, Equal and their in-place
//     forms (AddInPlace, MulInPlace, …).
//   - Affine builders (mutating, chainable): SetIdentity, SetDiagonal,
//     SetScale, SetTranslate, SetShearXY/XZ/YZ, SetRotate, FromEulerAngles.
//   - LinearSolve[T]: Crout LU with scaled partial pivoting; Determinant and
//     column-wise Solve.
//   - Determinant, Transpose, Invert (in place), Inverse (value).
//
// Convention boundary:
//
//	Builders assume COLUMN vectors (p' = M·p), like the classic gl* calls,
//	but storage is row-major. A renderer that expects column-major buffers
//	must transpose at the boundary (see ColumnMajor). This is the caller's
//	responsibility and is never done implicitly.
//
// Failure policy (singular input never errors; the result depends on its shape):
//
//   - A row that is entirely zero makes LinearSolve fail (Ok() == false):
//     Determinant reports 0 and Invert/Inverse produce the zero matrix.
//   - Any other singular matrix factors with its zero pivots replaced by
//     TinyPivot: Determinant is tiny but not 0, and Invert/Inverse return
//     huge finite entries (1e100 and beyond for float64).
//   - Compare |Determinant| with a threshold of your own (ops.Decompose
//     does) when singularity must be detected.
//   - Checked accessors (At, Set, FromSlice) return ErrOutOfRange /
//     ErrBadLength. The unchecked accessors (ElementAt, SetElement) panic on a
//     bad index, the same fail-fast contract as Go slice indexing.
//
// Every type is a self-contained fixed-size value: no heap allocation, no
// shared state, safe to use from many goroutines on distinct values.
package matrix
