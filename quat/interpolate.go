// SPDX-License-Identifier: MIT

package quat

import "github.com/katalvlaran/affine/vec"

const (
	// SlerpLinearThreshold is the angle (radians, acos of the 4D dot) below
	// which Interpolate blends linearly instead of dividing by sin(phi).
	SlerpLinearThreshold = 0.01

	// AntipodalDot is the dot product below which the inputs are treated as
	// nearly opposite and the blended result is nudged off zero.
	AntipodalDot = -0.999
)

// Interpolate returns the spherical linear interpolation between a (t = 0)
// and b (t = 1).
// Implementation:
//   - Stage 1: v = a·b, phi = acos(v).
//   - Stage 2: phi > SlerpLinearThreshold: weight a by sin(phi(1-t))/sin(phi)
//     and b by sin(phi·t)/sin(phi). Otherwise weight them by (1-t) and t.
//   - Stage 3: v < AntipodalDot: add t(1-t) to w when it is exactly zero,
//     else to x, so the sum cannot collapse to the zero quaternion.
//   - Stage 4: normalize.
//
// Behavior highlights:
//   - The result is always renormalized, whatever branch was taken.
//   - No shortest-path flip: a and -a interpolate along the long arc.
func Interpolate[T vec.Float](a, b Quaternion[T], t T) Quaternion[T] {
	v := a.Dot(b)
	phi := vec.Acos(vec.Clamp(v, -1, 1))

	var wa, wb T
	if phi > SlerpLinearThreshold {
		sinPhi := vec.Sin(phi)
		wa = vec.Sin(phi*(1-t)) / sinPhi
		wb = vec.Sin(phi*t) / sinPhi
	} else {
		wa, wb = 1-t, t
	}
	c := a.MulScalar(wa).Add(b.MulScalar(wb))

	if v < AntipodalDot {
		d := t * (1 - t)
		if c[0] == 0 {
			c[0] += d
		} else {
			c[1] += d
		}
	}

	return c.Normalize()
}
