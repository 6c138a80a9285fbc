// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/affine/vec"

// Every Set* builder overwrites all 16 elements and returns m for chaining:
//
//	var m matrix.Matrix44[float64]
//	m.SetRotate(math.Pi/2, vec.New3(0.0, 0, 1))
//
// Shear builders couple a single pair of coordinates:
//
//	XY            XZ            YZ
//	1 k 0 0       1 0 k 0       1 0 0 0
//	0 1 0 0       0 1 0 0       0 1 k 0
//	0 0 1 0       0 0 1 0       0 0 1 0
//	0 0 0 1       0 0 0 1       0 0 0 1

// SetZero sets every element to zero.
func (m *Matrix44[T]) SetZero() *Matrix44[T] {
	m.a = [16]T{}

	return m
}

// SetIdentity is SetDiagonal(1).
func (m *Matrix44[T]) SetIdentity() *Matrix44[T] { return m.SetDiagonal(1) }

// SetDiagonal zeroes m and puts k on the first three diagonal entries.
// Element (3,3) is always 1.
func (m *Matrix44[T]) SetDiagonal(k T) *Matrix44[T] {
	m.SetZero()
	m.a[0], m.a[5], m.a[10], m.a[15] = k, k, k, 1

	return m
}

// SetScale builds a diagonal scale matrix diag(sx, sy, sz, 1).
func (m *Matrix44[T]) SetScale(sx, sy, sz T) *Matrix44[T] {
	m.SetZero()
	m.a[0], m.a[5], m.a[10], m.a[15] = sx, sy, sz, 1

	return m
}

// SetScaleV is SetScale with the factors packed in a vector.
func (m *Matrix44[T]) SetScaleV(s vec.Vec3[T]) *Matrix44[T] { return m.SetScale(s[0], s[1], s[2]) }

// SetTranslate builds the identity with (tx, ty, tz) in column 3.
func (m *Matrix44[T]) SetTranslate(tx, ty, tz T) *Matrix44[T] {
	m.SetIdentity()
	m.a[3], m.a[7], m.a[11] = tx, ty, tz

	return m
}

// SetTranslateV is SetTranslate with the offset packed in a vector.
func (m *Matrix44[T]) SetTranslateV(t vec.Vec3[T]) *Matrix44[T] {
	return m.SetTranslate(t[0], t[1], t[2])
}

// SetShearXY shears X as Y changes: x' = x + sh·y.
func (m *Matrix44[T]) SetShearXY(sh T) *Matrix44[T] {
	m.SetIdentity()
	m.a[0<<2|1] = sh

	return m
}

// SetShearXZ shears X as Z changes: x' = x + sh·z.
func (m *Matrix44[T]) SetShearXZ(sh T) *Matrix44[T] {
	m.SetIdentity()
	m.a[0<<2|2] = sh

	return m
}

// SetShearYZ shears Y as Z changes: y' = y + sh·z.
func (m *Matrix44[T]) SetShearYZ(sh T) *Matrix44[T] {
	m.SetIdentity()
	m.a[1<<2|2] = sh

	return m
}

// SetRotate builds the rotation of angleRad radians about axis
// (Rodrigues form, counter-clockwise for a column vector looking down the
// axis). The axis is normalized internally and need not be unit length;
// a zero axis yields the identity.
func (m *Matrix44[T]) SetRotate(angleRad T, axis vec.Vec3[T]) *Matrix44[T] {
	c := vec.Cos(angleRad)
	s := vec.Sin(angleRad)
	q := 1 - c
	t := axis.Normalize()
	if t == (vec.Vec3[T]{}) {
		return m.SetIdentity()
	}

	m.a = [16]T{
		t[0]*t[0]*q + c, t[0]*t[1]*q - t[2]*s, t[0]*t[2]*q + t[1]*s, 0,
		t[1]*t[0]*q + t[2]*s, t[1]*t[1]*q + c, t[1]*t[2]*q - t[0]*s, 0,
		t[2]*t[0]*q - t[1]*s, t[2]*t[1]*q + t[0]*s, t[2]*t[2]*q + c, 0,
		0, 0, 0, 1,
	}

	return m
}

// ToEulerAngles extracts the fixed XYZ angles (radians) of the rotation
// built by FromEulerAngles:
//
//	alpha = atan2(m12, m22)   beta = asin(-m02)   gamma = atan2(m01, m00)
//
// gamma reads m00, not m11: m01/m00 = tan(gamma) for this layout, so only
// m00 makes the round trip with FromEulerAngles exact.
// The extraction is lossy near gimbal lock (cos(beta) ≈ 0), where alpha and
// gamma are no longer independent.
func (m Matrix44[T]) ToEulerAngles() (alpha, beta, gamma T) {
	alpha = vec.Atan2(m.a[1<<2|2], m.a[2<<2|2])
	beta = vec.Asin(vec.Clamp(-m.a[0<<2|2], -1, 1))
	gamma = vec.Atan2(m.a[0<<2|1], m.a[0<<2|0])

	return alpha, beta, gamma
}

// FromEulerAngles overwrites m with the closed-form rotation for the fixed
// XYZ angles alpha, beta, gamma (radians). The upper 3×3 block is the
// transpose of Rz(gamma)·Ry(beta)·Rx(alpha), i.e. the same rotation laid out
// for row vectors; ToEulerAngles inverts it.
func (m *Matrix44[T]) FromEulerAngles(alpha, beta, gamma T) *Matrix44[T] {
	ca, cb, cg := vec.Cos(alpha), vec.Cos(beta), vec.Cos(gamma)
	sa, sb, sg := vec.Sin(alpha), vec.Sin(beta), vec.Sin(gamma)

	m.SetZero()
	m.a[0<<2|0] = cb * cg
	m.a[1<<2|0] = -ca*sg + sa*sb*cg
	m.a[2<<2|0] = sa*sg + ca*sb*cg

	m.a[0<<2|1] = cb * sg
	m.a[1<<2|1] = ca*cg + sa*sb*sg
	m.a[2<<2|1] = -sa*cg + ca*sb*sg

	m.a[0<<2|2] = -sb
	m.a[1<<2|2] = sa * cb
	m.a[2<<2|2] = ca * cb

	m.a[15] = 1

	return m
}
