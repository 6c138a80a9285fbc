// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/affine/vec"
)

// Size is the fixed row and column count of Matrix44.
const Size = 4

// Matrix44 is a dense 4×4 matrix stored row-major. The zero value is the
// zero matrix. It is a plain value: assignment copies all 16 scalars.
type Matrix44[T vec.Float] struct {
	a [16]T
}

// Diag is a diagonal 4×4 matrix stored as its diagonal (Matrix44.MulDiag).
type Diag[T vec.Float] vec.Vec4[T]

// New returns a matrix backed by a copy of v (row-major).
func New[T vec.Float](v [16]T) Matrix44[T] { return Matrix44[T]{a: v} }

// FromSlice copies exactly 16 row-major scalars into a new matrix.
func FromSlice[T vec.Float](s []T) (Matrix44[T], error) {
	var m Matrix44[T]
	if len(s) != 16 {
		return m, matrixErrorf(opFromSlice, fmt.Errorf("len=%d: %w", len(s), ErrBadLength))
	}
	copy(m.a[:], s)

	return m, nil
}

// Zero returns the zero matrix.
func Zero[T vec.Float]() Matrix44[T] { return Matrix44[T]{} }

// Identity returns a fresh identity matrix on every call.
func Identity[T vec.Float]() Matrix44[T] {
	var m Matrix44[T]
	m.SetIdentity()

	return m
}

// Import converts a matrix of scalar type Q into scalar type T with an
// explicit (possibly narrowing) cast per element.
func Import[T, Q vec.Float](src Matrix44[Q]) Matrix44[T] {
	var m Matrix44[T]
	for i, v := range src.a {
		m.a[i] = T(v)
	}

	return m
}

// Construct is Import under the name used by callers that build a new value.
func Construct[T, Q vec.Float](src Matrix44[Q]) Matrix44[T] { return Import[T](src) }

// FromMatrix overwrites m with a copy of src.
func (m *Matrix44[T]) FromMatrix(src Matrix44[T]) *Matrix44[T] {
	m.a = src.a

	return m
}

// ToMatrix copies m into dst.
func (m Matrix44[T]) ToMatrix(dst *Matrix44[T]) { dst.a = m.a }

// RowsNumber returns 4.
func (Matrix44[T]) RowsNumber() int { return Size }

// ColumnsNumber returns 4.
func (Matrix44[T]) ColumnsNumber() int { return Size }

func index(r, c int) int {
	if uint(r) >= Size || uint(c) >= Size {
		panic(fmt.Sprintf(panicIndex, r, c))
	}

	return r<<2 | c
}

// ElementAt returns element (r, c). It panics if either index is outside
// [0, 4); use At for a checked read.
func (m Matrix44[T]) ElementAt(r, c int) T { return m.a[index(r, c)] }

// SetElement writes element (r, c). It panics on a bad index.
func (m *Matrix44[T]) SetElement(r, c int, v T) { m.a[index(r, c)] = v }

// At returns element (r, c) or ErrOutOfRange.
func (m Matrix44[T]) At(r, c int) (T, error) {
	if uint(r) >= Size || uint(c) >= Size {
		return 0, matrixErrorf(opAt, fmt.Errorf("(%d,%d): %w", r, c, ErrOutOfRange))
	}

	return m.a[r<<2|c], nil
}

// Set writes element (r, c) or returns ErrOutOfRange leaving m untouched.
func (m *Matrix44[T]) Set(r, c int, v T) error {
	if uint(r) >= Size || uint(c) >= Size {
		return matrixErrorf(opSet, fmt.Errorf("(%d,%d): %w", r, c, ErrOutOfRange))
	}
	m.a[r<<2|c] = v

	return nil
}

// V returns a copy of the row-major backing buffer.
func (m Matrix44[T]) V() [16]T { return m.a }

// Slice returns the row-major elements in a freshly allocated slice.
func (m Matrix44[T]) Slice() []T {
	s := make([]T, 16)
	copy(s, m.a[:])

	return s
}

// ColumnMajor returns the elements in column-major order, ready for a
// renderer that expects OpenGL-style buffers.
func (m Matrix44[T]) ColumnMajor() [16]T { return Transpose(m).a }

func checkLine(i int) {
	if uint(i) >= Size {
		panic(fmt.Sprintf(panicVecIdx, i))
	}
}

// GetRow4 returns a copy of row i.
func (m Matrix44[T]) GetRow4(i int) vec.Vec4[T] {
	checkLine(i)
	return vec.Vec4[T]{m.a[i<<2], m.a[i<<2+1], m.a[i<<2+2], m.a[i<<2+3]}
}

// GetRow3 returns a copy of the first three entries of row i.
func (m Matrix44[T]) GetRow3(i int) vec.Vec3[T] {
	checkLine(i)
	return vec.Vec3[T]{m.a[i<<2], m.a[i<<2+1], m.a[i<<2+2]}
}

// GetColumn4 returns a copy of column i.
func (m Matrix44[T]) GetColumn4(i int) vec.Vec4[T] {
	checkLine(i)
	return vec.Vec4[T]{m.a[i], m.a[4+i], m.a[8+i], m.a[12+i]}
}

// GetColumn3 returns a copy of the first three entries of column i.
func (m Matrix44[T]) GetColumn3(i int) vec.Vec3[T] {
	checkLine(i)
	return vec.Vec3[T]{m.a[i], m.a[4+i], m.a[8+i]}
}

// SetColumn3 overwrites the first three entries of column i.
func (m *Matrix44[T]) SetColumn3(i int, v vec.Vec3[T]) *Matrix44[T] {
	checkLine(i)
	m.a[i], m.a[4+i], m.a[8+i] = v[0], v[1], v[2]

	return m
}

// String renders the matrix as four bracketed rows.
func (m Matrix44[T]) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%g %g %g %g]", m.a[r<<2], m.a[r<<2+1], m.a[r<<2+2], m.a[r<<2+3])
	}

	return sb.String()
}
