// SPDX-License-Identifier: MIT

package quat

import (
	"fmt"

	"github.com/katalvlaran/affine/vec"
)

// Quaternion is (w, x, y, z) on top of vec.Vec4.
type Quaternion[T vec.Float] vec.Vec4[T]

// New returns the quaternion w + xi + yj + zk without normalizing it.
func New[T vec.Float](w, x, y, z T) Quaternion[T] { return Quaternion[T]{w, x, y, z} }

// FromVec4 reinterprets v as (w, x, y, z).
func FromVec4[T vec.Float](v vec.Vec4[T]) Quaternion[T] { return Quaternion[T](v) }

// Identity returns the null rotation (1, 0, 0, 0).
func Identity[T vec.Float]() Quaternion[T] { return Quaternion[T]{1, 0, 0, 0} }

// FromAxis returns the rotation of angle radians about axis. The axis is
// normalized first: w = cos(angle/2), (x,y,z) = axis·sin(angle/2).
func FromAxis[T vec.Float](angle T, axis vec.Vec3[T]) Quaternion[T] {
	var q Quaternion[T]
	q.SetFromAxis(angle, axis)

	return q
}

// Import converts a quaternion of scalar type Q into scalar type T.
func Import[T, Q vec.Float](q Quaternion[Q]) Quaternion[T] {
	return Quaternion[T](vec.Import4[T](vec.Vec4[Q](q)))
}

// SetFromAxis overwrites q with FromAxis(angle, axis).
func (q *Quaternion[T]) SetFromAxis(angle T, axis vec.Vec3[T]) *Quaternion[T] {
	b := axis.Normalize()
	s := vec.Sin(angle / 2)
	*q = Quaternion[T]{vec.Cos(angle / 2), b[0] * s, b[1] * s, b[2] * s}

	return q
}

// SetIdentity overwrites q with the null rotation.
func (q *Quaternion[T]) SetIdentity() *Quaternion[T] {
	*q = Identity[T]()

	return q
}

// ToAxis recovers angle and axis: the magnitude from acos(w), the sign from
// asin(w). This is the historic recovery and loses precision when w is close
// to ±1; it is not an exact inverse of FromAxis for every input. The identity
// returns angle 0 and the zero axis.
func (q Quaternion[T]) ToAxis() (angle T, axis vec.Vec3[T]) {
	w := vec.Clamp(q[0], -1, 1)
	s := vec.Asin(w) * 2
	angle = vec.Acos(w) * 2
	if s < 0 {
		angle = -angle
	}

	return angle, q.Vector().Normalize()
}

func (q Quaternion[T]) W() T { return q[0] }
func (q Quaternion[T]) X() T { return q[1] }
func (q Quaternion[T]) Y() T { return q[2] }
func (q Quaternion[T]) Z() T { return q[3] }

// Vector returns the imaginary part (x, y, z).
func (q Quaternion[T]) Vector() vec.Vec3[T] { return vec.Vec3[T]{q[1], q[2], q[3]} }

// Vec4 returns the backing (w, x, y, z) tuple.
func (q Quaternion[T]) Vec4() vec.Vec4[T] { return vec.Vec4[T](q) }

// Mul returns the Hamilton product q·r:
//
//	w = w1·w2 − v1·v2
//	v = w1·v2 + w2·v1 + v1×v2
//
// q.Mul(r) applies r first, then q.
func (q Quaternion[T]) Mul(r Quaternion[T]) Quaternion[T] {
	v1, v2 := q.Vector(), r.Vector()
	d := v2.Dot(v1)
	v := v1.Scale(r[0]).Add(v2.Scale(q[0])).Add(v1.Cross(v2))

	return Quaternion[T]{q[0]*r[0] - d, v[0], v[1], v[2]}
}

// MulInPlace performs q = q·r.
func (q *Quaternion[T]) MulInPlace(r Quaternion[T]) *Quaternion[T] {
	*q = q.Mul(r)

	return q
}

// MulScalar returns every component multiplied by s.
func (q Quaternion[T]) MulScalar(s T) Quaternion[T] {
	return Quaternion[T](vec.Vec4[T](q).Scale(s))
}

// Add returns the component-wise sum.
func (q Quaternion[T]) Add(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T](vec.Vec4[T](q).Add(vec.Vec4[T](r)))
}

// Dot returns the 4D scalar product.
func (q Quaternion[T]) Dot(r Quaternion[T]) T { return vec.Vec4[T](q).Dot(vec.Vec4[T](r)) }

// Norm returns the 4D length.
func (q Quaternion[T]) Norm() T { return vec.Vec4[T](q).Norm() }

// Normalize returns q scaled to unit length (zero stays zero).
func (q Quaternion[T]) Normalize() Quaternion[T] {
	return Quaternion[T](vec.Vec4[T](q).Normalize())
}

// Conjugate returns (w, -x, -y, -z); for a unit quaternion this is the
// multiplicative inverse.
func (q Quaternion[T]) Conjugate() Quaternion[T] { return Quaternion[T]{q[0], -q[1], -q[2], -q[3]} }

// Invert conjugates q in place.
func (q *Quaternion[T]) Invert() *Quaternion[T] {
	*q = q.Conjugate()

	return q
}

// Invert conjugates *q in place and returns q.
func Invert[T vec.Float](q *Quaternion[T]) *Quaternion[T] { return q.Invert() }

// Inverse returns the conjugate of q.
func Inverse[T vec.Float](q Quaternion[T]) Quaternion[T] { return q.Conjugate() }

// Rotate returns the vector part of q·(0,p)·q*.
func (q Quaternion[T]) Rotate(p vec.Vec3[T]) vec.Vec3[T] {
	r := q.Mul(Quaternion[T]{0, p[0], p[1], p[2]}).Mul(q.Conjugate())

	return r.Vector()
}

// Equal reports exact component-wise equality.
func (q Quaternion[T]) Equal(r Quaternion[T]) bool { return q == r }

// ApproxEqual reports whether every component differs by at most eps.
func (q Quaternion[T]) ApproxEqual(r Quaternion[T], eps T) bool {
	return vec.Vec4[T](q).ApproxEqual(vec.Vec4[T](r), eps)
}

// SameRotation reports whether q and r describe the same rotation within
// eps, treating q and -q as equal.
func (q Quaternion[T]) SameRotation(r Quaternion[T], eps T) bool {
	v := vec.Vec4[T](q)
	w := vec.Vec4[T](r)

	return v.ApproxEqual(w, eps) || v.ApproxEqual(w.Neg(), eps)
}

// String implements fmt.Stringer.
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(w=%g, x=%g, y=%g, z=%g)", q[0], q[1], q[2], q[3])
}
