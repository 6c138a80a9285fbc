// SPDX-License-Identifier: MIT

package quat

import (
	"github.com/katalvlaran/affine/matrix"
	"github.com/katalvlaran/affine/vec"
)

// ToMatrix returns the rotation matrix of q (column-vector convention, the
// same layout SetRotate produces). Built from the qᵢ·qⱼ products; stable for
// any unit q.
func (q Quaternion[T]) ToMatrix() matrix.Matrix44[T] {
	r := q.ToMatrix33()

	return matrix.New([16]T{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	})
}

// ToMatrix33 returns the 3×3 rotation block of ToMatrix, row-major.
func (q Quaternion[T]) ToMatrix33() [9]T {
	w, x, y, z := q[0], q[1], q[2], q[3]
	xx, xy, xz, xw := x*x, x*y, x*z, x*w
	yy, yz, yw := y*y, y*z, y*w
	zz, zw := z*z, z*w

	return [9]T{
		1 - (yy+zz)*2, (xy - zw) * 2, (xz + yw) * 2,
		(xy + zw) * 2, 1 - (zz+xx)*2, (yz - xw) * 2,
		(xz - yw) * 2, (yz + xw) * 2, 1 - (yy+xx)*2,
	}
}

// FromMatrix returns the quaternion of the rotation held in the upper 3×3
// block of m.
// Implementation:
//   - Stage 1: pick the largest of trace, m00, m11, m22. Each one selects the
//     component (w, x, y or z) with the largest magnitude, so the square root
//     below is never taken of less than 1 and no division is by a value
//     smaller than 1.
//   - Stage 2: derive that component from its radicand (1+trace for w,
//     1+mii-mjj-mkk for the axis terms), the rest from the off-diagonal sums
//     and differences.
//
// Behavior highlights:
//   - m MUST already be a rotation matrix. Orthogonality is not checked;
//     anything else yields a well-defined but meaningless quaternion.
//   - Half turns (trace = -1) always land in a diagonal branch, whatever
//     rounding does to the trace.
//   - The sign of the result is arbitrary: q and -q are the same rotation.
func FromMatrix[T vec.Float](m matrix.Matrix44[T]) Quaternion[T] {
	a := m.V()
	m00, m01, m02 := a[0], a[1], a[2]
	m10, m11, m12 := a[4], a[5], a[6]
	m20, m21, m22 := a[8], a[9], a[10]

	switch tr := m00 + m11 + m22; {
	case tr >= m00 && tr >= m11 && tr >= m22:
		sc := vec.Sqrt(1+tr) * 2 // 4|w|
		return Quaternion[T]{
			0.25 * sc,
			(m21 - m12) / sc,
			(m02 - m20) / sc,
			(m10 - m01) / sc,
		}
	case m00 >= m11 && m00 >= m22:
		sc := vec.Sqrt(1+m00-m11-m22) * 2 // 4|x|
		return Quaternion[T]{
			(m21 - m12) / sc,
			0.25 * sc,
			(m01 + m10) / sc,
			(m02 + m20) / sc,
		}
	case m11 >= m22:
		sc := vec.Sqrt(1+m11-m00-m22) * 2 // 4|y|
		return Quaternion[T]{
			(m02 - m20) / sc,
			(m01 + m10) / sc,
			0.25 * sc,
			(m12 + m21) / sc,
		}
	default:
		sc := vec.Sqrt(1+m22-m00-m11) * 2 // 4|z|
		return Quaternion[T]{
			(m10 - m01) / sc,
			(m02 + m20) / sc,
			(m12 + m21) / sc,
			0.25 * sc,
		}
	}
}

// SetFromMatrix overwrites q with FromMatrix(m).
func (q *Quaternion[T]) SetFromMatrix(m matrix.Matrix44[T]) *Quaternion[T] {
	*q = FromMatrix(m)

	return q
}

// FromEulerAngles returns the rotation Rz(gamma)·Ry(beta)·Rx(alpha)
// (radians): alpha about X is applied first.
func FromEulerAngles[T vec.Float](alpha, beta, gamma T) Quaternion[T] {
	ca, cb, cg := vec.Cos(alpha/2), vec.Cos(beta/2), vec.Cos(gamma/2)
	sa, sb, sg := vec.Sin(alpha/2), vec.Sin(beta/2), vec.Sin(gamma/2)

	return Quaternion[T]{
		ca*cb*cg + sa*sb*sg,
		sa*cb*cg - ca*sb*sg,
		ca*sb*cg + sa*cb*sg,
		ca*cb*sg - sa*sb*cg,
	}
}

// ToEulerAngles inverts FromEulerAngles. It reuses the matrix path:
// ToMatrix is Rz·Ry·Rx for column vectors, matrix.FromEulerAngles lays out
// its transpose, so the transposed rotation is handed to
// Matrix44.ToEulerAngles. Lossy at gimbal lock like the matrix version.
func (q Quaternion[T]) ToEulerAngles() (alpha, beta, gamma T) {
	return matrix.Transpose(q.ToMatrix()).ToEulerAngles()
}
