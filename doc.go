// Package affine is the math core for 3D transforms: vectors, 4×4 affine
// matrices, unit quaternions and the decomposition of an affine matrix back
// into scale, shear, rotation and translation.
//
// What is inside?
//
//	vec/         Vec3, Vec4 and the scalar kernels (float32 via math32)
//	matrix/      Matrix44: arithmetic, builders, LU solve, determinant, inverse
//	matrix/ops/  Decompose / Compose with functional options
//	quat/        Quaternion: Hamilton product, rotation, matrix round trip, slerp
//	examples/    an orbit camera and a joint blend wired end to end
//
// Conventions shared by every package:
//
//   - Generic over any float type (vec.Float); float32 and float64 are tested.
//   - Row-major storage, column-vector math: M·p, and A.Mul(B) applies B first.
//     Hand Matrix44.ColumnMajor to a GPU; never the raw storage.
//   - Builders take radians; ops.Decomposition reports degrees.
//   - Plain values, no locks, no allocation on the hot paths. Distinct values
//     may be used from distinct goroutines freely.
//   - Failures are values: LinearSolve reports Ok()/Determinant()==0, checked
//     accessors and Decompose return sentinel errors matched with errors.Is.
//
// Quick example:
//
//	var r matrix.Matrix44[float64]
//	r.SetRotate(math.Pi/2, vec.New3(0.0, 0, 1))
//	r.MulPoint(vec.New3(1.0, 0, 0)) // (0, 1, 0)
//
//	go get github.com/katalvlaran/affine
package affine
