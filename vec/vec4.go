// SPDX-License-Identifier: MIT

package vec

import "fmt"

// Vec4 is an ordered 4-tuple: homogeneous points, matrix rows and columns,
// and the backing storage of quat.Quaternion.
type Vec4[T Float] [4]T

// New4 returns the vector (x, y, z, w).
func New4[T Float](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// Import4 converts a vector of scalar type Q into scalar type T.
func Import4[T, Q Float](v Vec4[Q]) Vec4[T] {
	return Vec4[T]{T(v[0]), T(v[1]), T(v[2]), T(v[3])}
}

// Unit4 returns the i-th standard basis vector. i must be in [0, 4).
func Unit4[T Float](i int) Vec4[T] {
	var e Vec4[T]
	e[i] = 1

	return e
}

func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

// Vec3 drops the fourth component.
func (v Vec4[T]) Vec3() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

// Scale returns v * k.
func (v Vec4[T]) Scale(k T) Vec4[T] {
	return Vec4[T]{v[0] * k, v[1] * k, v[2] * k, v[3] * k}
}

// Div returns v / k.
func (v Vec4[T]) Div(k T) Vec4[T] {
	return Vec4[T]{v[0] / k, v[1] / k, v[2] / k, v[3] / k}
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v[0], -v[1], -v[2], -v[3]} }

// Dot returns the scalar product v·o.
func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] + v[3]*o[3]
}

// SquaredNorm returns v·v.
func (v Vec4[T]) SquaredNorm() T { return v.Dot(v) }

// Norm returns the Euclidean length of v.
func (v Vec4[T]) Norm() T { return Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length; the zero vector stays zero.
func (v Vec4[T]) Normalize() Vec4[T] {
	n := v.Norm()
	if n == 0 {
		return v
	}

	return v.Div(n)
}

// Equal reports exact component-wise equality.
func (v Vec4[T]) Equal(o Vec4[T]) bool { return v == o }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec4[T]) ApproxEqual(o Vec4[T], eps T) bool {
	for i := range v {
		if Abs(v[i]-o[i]) > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (v Vec4[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v[0], v[1], v[2], v[3])
}
