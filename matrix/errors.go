// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across matrix and
// matrix/ops. Checked accessors and decompositions return these sentinels and
// tests match them via errors.Is. Nothing here panics on user-triggered
// conditions; the unchecked ElementAt/SetElement accessors are the documented
// exception (see doc.go, bounds policy).

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ...". Context is added at the outer
// boundary with matrixErrorf; callers still match the sentinel with errors.Is.

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, 4).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadLength indicates that a flat buffer does not hold exactly 16 scalars.
	ErrBadLength = errors.New("matrix: buffer length must be 16")

	// ErrProjective signals that an affine matrix was required but the last
	// row is not [0, 0, 0, 1].
	ErrProjective = errors.New("matrix: matrix is projective")

	// ErrSingular signals a determinant whose magnitude is below the
	// configured tolerance.
	ErrSingular = errors.New("matrix: singular matrix")
)

// Operation tags for matrixErrorf.
const (
	opAt        = "At"
	opSet       = "Set"
	opFromSlice = "FromSlice"
)

// Panic messages of the unchecked accessors (programmer error only).
const (
	panicIndex  = "matrix: index (%d,%d) out of range [0,4)"
	panicVecIdx = "matrix: row/column %d out of range [0,4)"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Errorf is the exported form of matrixErrorf for sibling packages
// (matrix/ops) so that every error leaving the module has the same
// "<Op>: matrix: <reason>" shape.
func Errorf(tag string, err error) error { return matrixErrorf(tag, err) }
