// SPDX-License-Identifier: MIT
// Package transform_test contains test helpers.
//
// Purpose:
//   - Tolerance comparison for matrices and points via go-cmp.
//   - A small fixed set of well-conditioned matrices shared across tests.

package transform_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/mtx4/transform"
)

// tol is the per-element absolute tolerance for results that involve rounding.
const tol = 1e-9

// approx equates floats within tol (absolute) and treats NaN as equal to NaN.
var approx = cmp.Options{cmpopts.EquateApprox(0, tol), cmpopts.EquateNaNs()}

// requireNear fails the test if got differs from want by more than tol in any element.
func requireNear[T any](t testing.TB, want, got T, msgAndArgs ...any) {
	t.Helper()
	if d := cmp.Diff(want, got, approx); d != "" {
		if len(msgAndArgs) > 0 {
			t.Fatalf("%v: mismatch (-want +got):\n%s", msgAndArgs[0], d)
		}
		t.Fatalf("mismatch (-want +got):\n%s", d)
	}
}

// invertible returns named, well-conditioned invertible matrices.
func invertible() map[string]transform.Matrix4 {
	trs, _ := transform.ComposeAll(
		transform.RotateZ(0.3),
		transform.Translate(5, -7, 11),
		transform.Scale(2, 0.5, 3),
	)

	return map[string]transform.Matrix4{
		"identity":  transform.Identity(),
		"translate": transform.Translate(1, 2, 3),
		"scale":     transform.Scale(2, 4, 8),
		"rotateX":   transform.RotateX(math.Pi / 3),
		"rotateY":   transform.RotateY(-1.1),
		"rotateZ":   transform.RotateZ(2.5),
		"trs":       trs,
		"general": {
			2, 0, 1, 0,
			1, 3, 0, 1,
			0, 1, 4, 0,
			1, 0, 0, 2,
		},
		"walkthroughSample": {
			4, 0, 0, 0,
			0, 3, 0, 0,
			0, 0, 5, 0,
			4, 8, 4, 1,
		},
	}
}
