// SPDX-License-Identifier: MIT

package vec

import "fmt"

// Vec3 is an ordered triple used for points, axes, translations and
// Euler-angle triples.
type Vec3[T Float] [3]T

// New3 returns the vector (x, y, z).
func New3[T Float](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// Import3 converts a vector of scalar type Q into scalar type T.
// Converting float64 to float32 narrows with the usual IEEE rounding.
func Import3[T, Q Float](v Vec3[Q]) Vec3[T] {
	return Vec3[T]{T(v[0]), T(v[1]), T(v[2])}
}

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

// Vec4 extends v with the homogeneous component w.
func (v Vec3[T]) Vec4(w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns v * k.
func (v Vec3[T]) Scale(k T) Vec3[T] {
	return Vec3[T]{v[0] * k, v[1] * k, v[2] * k}
}

// Div returns v / k. Division by zero follows IEEE semantics.
func (v Vec3[T]) Div(k T) Vec3[T] {
	return Vec3[T]{v[0] / k, v[1] / k, v[2] / k}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v[0], -v[1], -v[2]} }

// Dot returns the scalar product v·o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// Cross returns the vector product v×o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// SquaredNorm returns v·v.
func (v Vec3[T]) SquaredNorm() T { return v.Dot(v) }

// Norm returns the Euclidean length of v.
func (v Vec3[T]) Norm() T { return Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged instead of turning into NaNs.
func (v Vec3[T]) Normalize() Vec3[T] {
	n := v.Norm()
	if n == 0 {
		return v
	}

	return v.Div(n)
}

// Equal reports exact component-wise equality.
func (v Vec3[T]) Equal(o Vec3[T]) bool { return v == o }

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3[T]) ApproxEqual(o Vec3[T], eps T) bool {
	for i := range v {
		if Abs(v[i]-o[i]) > eps {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (v Vec3[T]) String() string { return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2]) }
