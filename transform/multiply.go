// SPDX-License-Identifier: MIT
// Package transform: product kernels and shared operation tags.
//
// Purpose:
//   - Define the point/matrix and matrix/matrix products every other file builds on.
//   - Define operation tags used for uniform error wrapping.
//
// Convention:
//   - Points are row vectors: p' = p · M, so out[j] = Σ_i p[i] * M[i*4+j].
//   - MultiplyMatrices(a, b) applies a to every row of b, which is b × a.

package transform

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMatrix4FromSlice = "Matrix4FromSlice"
	opMatrix3FromSlice = "Matrix3FromSlice"
	opPoint4FromSlice  = "Point4FromSlice"
	opVector3FromSlice = "Vector3FromSlice"
	opComposeAll       = "ComposeAll"
	opInvert           = "Invert"
	opPerspective      = "Perspective"
	opOrthographic     = "Orthographic"
	opNormalize        = "Normalize"
)

// transformErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MultiplyMatrixAndPoint returns point · matrix.
//
// Implementation:
//   - Each output component j is the dot product of the point with column j,
//     summed in the fixed order x, y, z, w.
//
// Behavior highlights:
//   - Never fails; NaN and ±Inf propagate per IEEE 754.
//   - The identity matrix returns the point bit-for-bit.
//   - Results are bit-identical across architectures.
//
// Complexity: 16 multiplications, 12 additions, no allocation.
func MultiplyMatrixAndPoint(matrix Matrix4, point Point4) Point4 {
	x, y, z, w := point[0], point[1], point[2], point[3]

	var out Point4
	for j := 0; j < 4; j++ {
		// explicit conversions keep each product rounded, so no FMA fusion
		out[j] = float64(x*matrix[j]) + float64(y*matrix[4+j]) + float64(z*matrix[8+j]) + float64(w*matrix[12+j])
	}

	return out
}

// MultiplyMatrices applies a to each row of b and reassembles the rows.
// The result equals the conventional row-major product b × a, so the operand
// order matters: MultiplyMatrices(a, b) != MultiplyMatrices(b, a) in general.
// ComposeAll relies on exactly this convention.
//
// Complexity: 64 multiplications, no allocation.
func MultiplyMatrices(a, b Matrix4) Matrix4 {
	return FromRows(
		MultiplyMatrixAndPoint(a, b.Row(0)),
		MultiplyMatrixAndPoint(a, b.Row(1)),
		MultiplyMatrixAndPoint(a, b.Row(2)),
		MultiplyMatrixAndPoint(a, b.Row(3)),
	)
}

// Apply returns p · m.
func (m Matrix4) Apply(p Point4) Point4 { return MultiplyMatrixAndPoint(m, p) }

// Mul returns MultiplyMatrices(m, n), i.e. n × m.
func (m Matrix4) Mul(n Matrix4) Matrix4 { return MultiplyMatrices(m, n) }

// Transpose returns mᵀ.
func Transpose(m Matrix4) Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Transpose returns mᵀ.
func (m Matrix4) Transpose() Matrix4 { return Transpose(m) }
