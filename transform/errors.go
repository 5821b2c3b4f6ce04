// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.
// Every failure surfaced by the package wraps exactly one of these sentinels,
// so callers match with errors.Is. Nothing is retried or recovered internally:
// all failures stem from invalid mathematical input.

package transform

import "errors"

var (
	// ErrDimensionMismatch is returned when a slice handed to a *FromSlice
	// constructor does not hold exactly 4, 9 or 16 elements as required.
	// Detected before any element is copied.
	ErrDimensionMismatch = errors.New("transform: dimension mismatch")

	// ErrSingularMatrix is returned by Invert when the determinant is exactly 0.
	// There is no epsilon: a matrix whose determinant rounds to 0 fails too.
	ErrSingularMatrix = errors.New("transform: singular matrix")

	// ErrDegenerateProjection is returned when projection parameters make a
	// denominator zero (near == far, left == right, bottom == top, aspect == 0).
	ErrDegenerateProjection = errors.New("transform: degenerate projection")

	// ErrZeroLengthVector is returned by Normalize for the zero vector.
	ErrZeroLengthVector = errors.New("transform: zero-length vector")

	// ErrEmptyComposition is returned by ComposeAll when no matrices are given.
	ErrEmptyComposition = errors.New("transform: empty composition")

	// ErrNaNInf is returned by CheckFinite when NaN or ±Inf is present.
	// Arithmetic never returns it; IEEE propagation is left untouched.
	ErrNaNInf = errors.New("transform: NaN or Inf encountered")
)
