// SPDX-License-Identifier: MIT

// Package vec provides the fixed-size vector primitives shared by matrix and
// quat: Vec3 and Vec4 over any floating-point scalar, plus the scalar math
// kernels (Sqrt, Sin, Asin, Atan2, …) used by the whole module.
//
// Scalar policy:
//   - Every type is generic over Float (~float32 | ~float64).
//   - float32 arithmetic is routed through github.com/chewxy/math32 so single
//     precision code never round-trips through float64; all other
//     instantiations use the standard math package.
//
// Bounds policy:
//   - Vec3 and Vec4 are arrays. A constant out-of-range index is a compile
//     error; a dynamic one panics through the Go runtime bounds check.
//
// Vectors are plain values: every method returns a fresh copy and never
// mutates its receiver.
package vec
