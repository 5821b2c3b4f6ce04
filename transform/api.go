// SPDX-License-Identifier: MIT

// Package transform: public API facades.
//
// Purpose:
//   - Provide intention-revealing aliases for the canonical kernels.
//   - Never duplicate logic; every facade delegates 1:1.

package transform

// Product is an alias for MultiplyMatrices: the conventional b × a.
func Product(a, b Matrix4) Matrix4 { return MultiplyMatrices(a, b) }

// Compose is an alias for ComposeAll taking a slice.
func Compose(ms []Matrix4) (Matrix4, error) { return ComposeAll(ms...) }

// InverseOf is an alias for Invert.
func InverseOf(m Matrix4) (Matrix4, error) { return Invert(m) }

// MustInvert is like Invert but panics on a singular matrix.
// Intended for package-level variables built from known-invertible transforms.
func MustInvert(m Matrix4) Matrix4 {
	inv, err := Invert(m)
	if err != nil {
		panic(err)
	}

	return inv
}

// TransformPoint applies m to the position (x, y, z), using w = 1, and
// returns the homogeneous result.
func TransformPoint(m Matrix4, x, y, z float64) Point4 {
	return MultiplyMatrixAndPoint(m, Point4{x, y, z, 1})
}

// TransformDirection applies m to the direction (x, y, z), using w = 0, so
// translation has no effect.
func TransformDirection(m Matrix4, x, y, z float64) Point4 {
	return MultiplyMatrixAndPoint(m, Point4{x, y, z, 0})
}
