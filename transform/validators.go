// SPDX-License-Identifier: MIT
// Package: transform
//
// Purpose:
//   - Provide a single source of truth for the few checks the package performs.
//   - Return sentinels wrapped with a validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing on the success path.
//
// Note:
//   - Arithmetic kernels never call CheckFinite; NaN/Inf propagate per IEEE 754.

package transform

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// zeroDenominator is the exact value a projection denominator must not take.
// There is deliberately no tolerance.
const zeroDenominator = 0.0

// validatorErrorf wraps err with a validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLen ensures s holds exactly n elements.
//
// Errors: ErrDimensionMismatch (wrapped with want/got counts).
// Complexity: O(1).
func ValidateLen(s []float64, n int) error {
	if len(s) != n {
		return validatorErrorf("ValidateLen",
			fmt.Errorf("want %d elements, got %d: %w", n, len(s), ErrDimensionMismatch))
	}

	return nil
}

// validateExtent ensures lo and hi differ, i.e. 1/(lo-hi) is finite.
// axis names the offending parameter pair in the error.
func validateExtent(axis string, lo, hi float64) error {
	if lo-hi == zeroDenominator {
		return validatorErrorf("validateExtent",
			fmt.Errorf("%s: %v == %v: %w", axis, lo, hi, ErrDegenerateProjection))
	}

	return nil
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// CheckFinite returns ErrNaNInf if any element of m is NaN or ±Inf.
// Use it at ingestion boundaries; the arithmetic itself never rejects NaN/Inf.
// Complexity: O(16).
func CheckFinite(m Matrix4) error {
	if i := slices.IndexFunc(m[:], isNonFinite); i >= 0 {
		return validatorErrorf("CheckFinite",
			fmt.Errorf("element %d (row %d, col %d) = %v: %w", i, i/4, i%4, m[i], ErrNaNInf))
	}

	return nil
}
