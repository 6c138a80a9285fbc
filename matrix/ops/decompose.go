// SPDX-License-Identifier: MIT

package ops

import (
	"github.com/katalvlaran/affine/matrix"
	"github.com/katalvlaran/affine/vec"
)

// Operation tags for matrix.Errorf.
const (
	opDecompose     = "Decompose"
	opDecomposeCopy = "DecomposeCopy"
)

// Decomposition holds the factors of an affine matrix
//
//	M = Trn · Rx·Ry·Rz · ShearYZ·ShearXZ·ShearXY · Scale
//
// Rotation is in DEGREES (alpha about X, beta about Y, gamma about Z) while
// every matrix builder takes radians; use RotationRadians at that boundary.
type Decomposition[T vec.Float] struct {
	Scale       vec.Vec3[T]
	Shear       vec.Vec3[T] // xy, xz, yz
	Rotation    vec.Vec3[T] // degrees
	Translation vec.Vec3[T]
}

// RotationRadians returns Rotation converted to radians.
func (d Decomposition[T]) RotationRadians() vec.Vec3[T] {
	return vec.New3(vec.ToRad(d.Rotation[0]), vec.ToRad(d.Rotation[1]), vec.ToRad(d.Rotation[2]))
}

// Decompose factors the affine matrix *m into scale, shear, rotation and
// translation, and overwrites the upper 3×3 block of *m with the recovered
// rotation (the translation column is kept, so *m becomes a rigid motion).
// Implementation:
//   - Stage 1 (Validate): last row must be [0,0,0,1] (ErrProjective) and
//     |det| must reach the determinant epsilon (ErrSingular).
//   - Stage 2 (Translate): read column 3.
//   - Stage 3 (Gram–Schmidt): normalize column 0 (scale x); project column 1
//     on it (xy shear), normalize the rest (scale y); project column 2 on both
//     axes (xz, yz shear) and normalize the rest (scale z). Shears are
//     divided by the scale of the column they came from.
//   - Stage 4 (Reflect): write the orthonormal axes back as columns. A
//     negative determinant means a reflection; negate scale and the 3×3 block
//     so the stored rotation is proper (det = +1).
//   - Stage 5 (Euler): beta = asin(r02); alpha, gamma from atan2 unless
//     |cos beta| ≤ gimbal epsilon, in which case gamma = 0 and alpha absorbs
//     the whole X/Z rotation.
//
// Behavior highlights:
//   - Arithmetic runs in float64 regardless of T.
//   - On error *m is untouched unless the failure is the post-orthogonalization
//     determinant check, which happens after the write-back.
//   - Compose(d) rebuilds the input up to rounding.
//
// Errors:
//   - matrix.ErrProjective, matrix.ErrSingular (wrapped, match with errors.Is).
//
// Complexity:
//   - Time O(1): two 4×4 LU factorizations and a fixed 3×3 sweep.
func Decompose[T vec.Float](m *matrix.Matrix44[T], opts ...Option) (Decomposition[T], error) {
	o := gatherOptions(opts...)
	var d Decomposition[T]

	// Stage 1: Validate
	if m.GetRow4(3) != (vec.Vec4[T]{0, 0, 0, 1}) {
		return d, matrix.Errorf(opDecompose, matrix.ErrProjective)
	}
	w := matrix.Import[float64](*m)
	if vec.Abs(w.Determinant()) < o.detEps {
		return d, matrix.Errorf(opDecompose, matrix.ErrSingular)
	}

	// Stage 2: Translate
	d.Translation = m.GetColumn3(3)

	// Stage 3: Gram–Schmidt over the first three columns
	var (
		r            [3]vec.Vec3[float64] // orthonormal axes
		scale, shear vec.Vec3[float64]
	)
	c0, c1, c2 := w.GetColumn3(0), w.GetColumn3(1), w.GetColumn3(2)

	scale[0] = c0.Norm()
	r[0] = c0.Normalize()

	shear[0] = r[0].Dot(c1) // xy
	r[1] = c1.Sub(r[0].Scale(shear[0]))
	scale[1] = r[1].Norm()
	r[1] = r[1].Div(scale[1])
	shear[0] /= scale[1]

	shear[1] = r[0].Dot(c2) // xz
	r[2] = c2.Sub(r[0].Scale(shear[1]))
	r[2] = r[2].Sub(r[1].Scale(r[2].Dot(r[1])))
	scale[2] = r[2].Norm()
	r[2] = r[2].Div(scale[2])
	shear[1] /= scale[2]

	shear[2] = r[1].Dot(c2) / scale[2] // yz

	// Stage 4: Reflect
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w.SetElement(i, j, r[j][i])
		}
	}
	det := w.Determinant()
	if vec.Abs(det) < o.detEps {
		m.FromMatrix(matrix.Import[T](w))
		return d, matrix.Errorf(opDecompose, matrix.ErrSingular)
	}
	if det < 0 {
		scale = scale.Neg()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				w.SetElement(i, j, -w.ElementAt(i, j))
			}
		}
	}
	m.FromMatrix(matrix.Import[T](w))

	// Stage 5: Euler
	var alpha, beta, gamma float64
	beta = vec.Asin(vec.Clamp(w.ElementAt(0, 2), -1, 1))
	if vec.Abs(vec.Cos(beta)) > o.gimbalEps {
		alpha = vec.Atan2(-w.ElementAt(1, 2), w.ElementAt(2, 2))
		gamma = vec.Atan2(-w.ElementAt(0, 1), w.ElementAt(0, 0))
	} else {
		alpha = vec.Atan2(w.ElementAt(2, 1), w.ElementAt(1, 1))
		gamma = 0
	}

	d.Scale = vec.Import3[T](scale)
	d.Shear = vec.Import3[T](shear)
	d.Rotation = vec.Import3[T](vec.New3(vec.ToDeg(alpha), vec.ToDeg(beta), vec.ToDeg(gamma)))

	return d, nil
}

// DecomposeCopy is Decompose on a copy of m: the caller's matrix is left as
// is and the recovered rigid motion (rotation block plus translation) is
// returned alongside the factors.
func DecomposeCopy[T vec.Float](m matrix.Matrix44[T], opts ...Option) (Decomposition[T], matrix.Matrix44[T], error) {
	d, err := Decompose(&m, opts...)
	if err != nil {
		return d, matrix.Matrix44[T]{}, matrix.Errorf(opDecomposeCopy, err)
	}

	return d, m, nil
}

// Compose rebuilds Trn · Rx·Ry·Rz · ShearYZ·ShearXZ·ShearXY · Scale from d,
// the inverse of Decompose.
func Compose[T vec.Float](d Decomposition[T]) matrix.Matrix44[T] {
	var trn, rx, ry, rz, syz, sxz, sxy, scl matrix.Matrix44[T]
	rad := d.RotationRadians()

	trn.SetTranslateV(d.Translation)
	rx.SetRotate(rad[0], vec.New3[T](1, 0, 0))
	ry.SetRotate(rad[1], vec.New3[T](0, 1, 0))
	rz.SetRotate(rad[2], vec.New3[T](0, 0, 1))
	sxy.SetShearXY(d.Shear[0])
	sxz.SetShearXZ(d.Shear[1])
	syz.SetShearYZ(d.Shear[2])
	scl.SetScaleV(d.Scale)

	return trn.Mul(rx).Mul(ry).Mul(rz).Mul(syz).Mul(sxz).Mul(sxy).Mul(scl)
}
