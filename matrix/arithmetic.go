// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/affine/vec"

// Add returns m + o.
func (m Matrix44[T]) Add(o Matrix44[T]) Matrix44[T] {
	var res Matrix44[T]
	for i := range m.a {
		res.a[i] = m.a[i] + o.a[i]
	}

	return res
}

// Sub returns m - o.
func (m Matrix44[T]) Sub(o Matrix44[T]) Matrix44[T] {
	var res Matrix44[T]
	for i := range m.a {
		res.a[i] = m.a[i] - o.a[i]
	}

	return res
}

// Mul returns the matrix product m × o.
// Implementation:
//   - Stage 1: for every (i, j) accumulate Σ_k m(i,k)·o(k,j) from zero.
//
// Behavior highlights:
//   - Each entry is computed independently with a fixed i→j→k order; there is
//     no identity or zero fast path, so results are bitwise reproducible.
//   - Operands are values; m.Mul(m) is safe.
//
// Complexity:
//   - Time O(64) multiply-adds, Space O(1).
func (m Matrix44[T]) Mul(o Matrix44[T]) Matrix44[T] {
	var (
		res     Matrix44[T]
		i, j, k int
		t       T
	)
	for i = 0; i < Size; i++ {
		for j = 0; j < Size; j++ {
			t = 0
			for k = 0; k < Size; k++ {
				t += m.a[i<<2|k] * o.a[k<<2|j]
			}
			res.a[i<<2|j] = t
		}
	}

	return res
}

// MulDiag returns diag(d) × m: row i of m is scaled by d[i].
func (m Matrix44[T]) MulDiag(d Diag[T]) Matrix44[T] {
	res := m
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			res.a[i<<2|j] *= d[i]
		}
	}

	return res
}

// MulVec4 returns m·v for the column vector v.
func (m Matrix44[T]) MulVec4(v vec.Vec4[T]) vec.Vec4[T] {
	var res vec.Vec4[T]
	for i := 0; i < Size; i++ {
		var t T
		for k := 0; k < Size; k++ {
			t += m.a[i<<2|k] * v[k]
		}
		res[i] = t
	}

	return res
}

// MulPoint applies m to the point p (implicit w = 1). When the resulting
// homogeneous w is non-zero the result is divided by it.
func (m Matrix44[T]) MulPoint(p vec.Vec3[T]) vec.Vec3[T] {
	a := &m.a
	s := vec.Vec3[T]{
		a[0]*p[0] + a[1]*p[1] + a[2]*p[2] + a[3],
		a[4]*p[0] + a[5]*p[1] + a[6]*p[2] + a[7],
		a[8]*p[0] + a[9]*p[1] + a[10]*p[2] + a[11],
	}
	w := a[12]*p[0] + a[13]*p[1] + a[14]*p[2] + a[15]
	if w != 0 {
		s = s.Div(w)
	}

	return s
}

// TransformPoints replaces every point in pts with m·p (see MulPoint).
func (m Matrix44[T]) TransformPoints(pts []vec.Vec3[T]) {
	for i := range pts {
		pts[i] = m.MulPoint(pts[i])
	}
}

// MulScalar returns m * k.
func (m Matrix44[T]) MulScalar(k T) Matrix44[T] {
	var res Matrix44[T]
	for i := range m.a {
		res.a[i] = m.a[i] * k
	}

	return res
}

// Neg returns -m.
func (m Matrix44[T]) Neg() Matrix44[T] {
	var res Matrix44[T]
	for i := range m.a {
		res.a[i] = -m.a[i]
	}

	return res
}

// Equal reports exact element-wise equality (no epsilon).
func (m Matrix44[T]) Equal(o Matrix44[T]) bool { return m.a == o.a }

// NotEqual is the negation of Equal.
func (m Matrix44[T]) NotEqual(o Matrix44[T]) bool { return m.a != o.a }

// ApproxEqual reports whether every element differs by at most eps.
func (m Matrix44[T]) ApproxEqual(o Matrix44[T], eps T) bool {
	for i := range m.a {
		if vec.Abs(m.a[i]-o.a[i]) > eps {
			return false
		}
	}

	return true
}

// AddInPlace performs m += o.
func (m *Matrix44[T]) AddInPlace(o Matrix44[T]) *Matrix44[T] {
	for i := range m.a {
		m.a[i] += o.a[i]
	}

	return m
}

// SubInPlace performs m -= o.
func (m *Matrix44[T]) SubInPlace(o Matrix44[T]) *Matrix44[T] {
	for i := range m.a {
		m.a[i] -= o.a[i]
	}

	return m
}

// MulInPlace performs m = m × o.
func (m *Matrix44[T]) MulInPlace(o Matrix44[T]) *Matrix44[T] {
	*m = m.Mul(o)

	return m
}

// ScaleInPlace performs m *= k.
func (m *Matrix44[T]) ScaleInPlace(k T) *Matrix44[T] {
	for i := range m.a {
		m.a[i] *= k
	}

	return m
}
