// SPDX-License-Identifier: MIT

// Package quat provides Quaternion, a unit-quaternion rotation layered on
// vec.Vec4 and stored as (w, x, y, z): scalar part first.
//
// Unit norm is the intended invariant but only Interpolate and Normalize
// enforce it; construction from raw components and long multiplication
// chains can drift, so renormalize after arbitrary composition.
//
// Conventions match matrix.SetRotate: column vectors, right-handed,
// positive angles rotate counter-clockwise about the axis. For a unit q:
//
//	q.Rotate(p) == q.ToMatrix().MulPoint(p)
//	FromAxis(θ, a).ToMatrix() == new(matrix.Matrix44[T]).SetRotate(θ, a)
//
// Thresholds are exported constants (SlerpLinearThreshold, AntipodalDot) so
// their numeric role is explicit.
package quat
