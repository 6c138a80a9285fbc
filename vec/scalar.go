// SPDX-License-Identifier: MIT

package vec

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint for every type in this module.
type Float interface {
	constraints.Float
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}

	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}

	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}

	return T(math.Cos(float64(x)))
}

// Asin returns the arcsine of x in radians. Values outside [-1, 1] yield NaN.
func Asin[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Asin(v))
	}

	return T(math.Asin(float64(x)))
}

// Acos returns the arccosine of x in radians. Values outside [-1, 1] yield NaN.
func Acos[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Acos(v))
	}

	return T(math.Acos(float64(x)))
}

// Atan2 returns the arc tangent of y/x using the signs of both to pick the quadrant.
func Atan2[T Float](y, x T) T {
	if v, ok := any(y).(float32); ok {
		return T(math32.Atan2(v, float32(x)))
	}

	return T(math.Atan2(float64(y), float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Abs(v))
	}

	return T(math.Abs(float64(x)))
}

// Clamp limits x to the closed interval [lo, hi].
func Clamp[T Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// ToRad converts degrees to radians.
func ToRad[T Float](deg T) T { return deg * T(math.Pi) / 180 }

// ToDeg converts radians to degrees.
func ToDeg[T Float](rad T) T { return rad * 180 / T(math.Pi) }
