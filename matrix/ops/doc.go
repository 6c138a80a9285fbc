// SPDX-License-Identifier: MIT

// Package ops provides the affine factorization built on top of
// matrix.Matrix44:
//
//	Decompose      affine matrix → scale, shear, rotation (degrees), translation
//	DecomposeCopy  same, leaving the caller's matrix untouched
//	Compose        the inverse: Trn · Rx·Ry·Rz · ShearYZ·ShearXZ·ShearXY · Scale
//
// Failures are reported with the matrix sentinels (matrix.ErrProjective,
// matrix.ErrSingular) wrapped as "<Op>: matrix: <reason>"; match them with
// errors.Is. Numeric thresholds are configured through functional options,
// see options.go.
//
// Units: the rotation angles of a Decomposition are degrees, unlike every
// builder in package matrix. Decomposition.RotationRadians converts.
package ops
