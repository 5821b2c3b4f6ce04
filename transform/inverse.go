// SPDX-License-Identifier: MIT
// Package transform: determinant, inversion and the normal matrix.
//
// Purpose:
//   - Invert a Matrix4 by full cofactor expansion (adjugate / determinant).
//   - Derive the 3×3 normal matrix from the upper-left block of a Matrix4.
//
// Numeric policy:
//   - Singularity is an exact test against 0; there is no epsilon. A matrix
//     whose true determinant is tiny but non-zero may still round to 0 and fail.
//   - Invert fails loudly (ErrSingularMatrix); NormalMatrix reports ok == false.
//     The two policies differ on purpose and are both part of the contract.

package transform

// zeroDeterminant is the exact determinant value treated as singular.
const zeroDeterminant = 0.0

// adjugate returns the adjugate (transposed cofactor matrix) of m and the
// determinant accumulated from four cofactors along row 0.
//
// Implementation:
//   - Stage 1: name all 16 entries mRC = m[R*4+C].
//   - Stage 2: expand every 3×3 minor explicitly (no loops, fixed term order).
//   - Stage 3: det = m00*adj[0] + m01*adj[4] + m02*adj[8] + m03*adj[12].
//
// Complexity: O(1), ~200 flops.
func adjugate(m Matrix4) (Matrix4, float64) {
	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	m30, m31, m32, m33 := m[12], m[13], m[14], m[15]

	var adj Matrix4
	adj[0] = m21*m32*m13 - m31*m22*m13 + m31*m12*m23 - m11*m32*m23 - m21*m12*m33 + m11*m22*m33
	adj[1] = m31*m22*m03 - m21*m32*m03 - m31*m02*m23 + m01*m32*m23 + m21*m02*m33 - m01*m22*m33
	adj[2] = m11*m32*m03 - m31*m12*m03 + m31*m02*m13 - m01*m32*m13 - m11*m02*m33 + m01*m12*m33
	adj[3] = m21*m12*m03 - m11*m22*m03 - m21*m02*m13 + m01*m22*m13 + m11*m02*m23 - m01*m12*m23
	adj[4] = m30*m22*m13 - m20*m32*m13 - m30*m12*m23 + m10*m32*m23 + m20*m12*m33 - m10*m22*m33
	adj[5] = m20*m32*m03 - m30*m22*m03 + m30*m02*m23 - m00*m32*m23 - m20*m02*m33 + m00*m22*m33
	adj[6] = m30*m12*m03 - m10*m32*m03 - m30*m02*m13 + m00*m32*m13 + m10*m02*m33 - m00*m12*m33
	adj[7] = m10*m22*m03 - m20*m12*m03 + m20*m02*m13 - m00*m22*m13 - m10*m02*m23 + m00*m12*m23
	adj[8] = m20*m31*m13 - m30*m21*m13 + m30*m11*m23 - m10*m31*m23 - m20*m11*m33 + m10*m21*m33
	adj[9] = m30*m21*m03 - m20*m31*m03 - m30*m01*m23 + m00*m31*m23 + m20*m01*m33 - m00*m21*m33
	adj[10] = m10*m31*m03 - m30*m11*m03 + m30*m01*m13 - m00*m31*m13 - m10*m01*m33 + m00*m11*m33
	adj[11] = m20*m11*m03 - m10*m21*m03 - m20*m01*m13 + m00*m21*m13 + m10*m01*m23 - m00*m11*m23
	adj[12] = m30*m21*m12 - m20*m31*m12 - m30*m11*m22 + m10*m31*m22 + m20*m11*m32 - m10*m21*m32
	adj[13] = m20*m31*m02 - m30*m21*m02 + m30*m01*m22 - m00*m31*m22 - m20*m01*m32 + m00*m21*m32
	adj[14] = m30*m11*m02 - m10*m31*m02 - m30*m01*m12 + m00*m31*m12 + m10*m01*m32 - m00*m11*m32
	adj[15] = m10*m21*m02 - m20*m11*m02 + m20*m01*m12 - m00*m21*m12 - m10*m01*m22 + m00*m11*m22

	det := m00*adj[0] + m01*adj[4] + m02*adj[8] + m03*adj[12]

	return adj, det
}

// Determinant returns det(m) by cofactor expansion along row 0.
func Determinant(m Matrix4) float64 {
	_, det := adjugate(m)

	return det
}

// Determinant returns det(m).
func (m Matrix4) Determinant() float64 { return Determinant(m) }

// Invert returns m⁻¹ computed as adjugate(m) / det(m).
//
// Behavior highlights:
//   - The input is never modified; a fresh Matrix4 is returned.
//   - MultiplyMatrices(m, inv) equals Identity() within rounding.
//
// Errors:
//   - ErrSingularMatrix when det(m) == 0 exactly. The caller picks the fallback
//     (identity, skipping the transform, ...).
//
// Complexity: O(1).
func Invert(m Matrix4) (Matrix4, error) {
	adj, det := adjugate(m)
	if det == zeroDeterminant {
		return Matrix4{}, transformErrorf(opInvert, ErrSingularMatrix)
	}

	for i := range adj {
		adj[i] /= det
	}

	return adj, nil
}

// Inverse is the method form of Invert.
func (m Matrix4) Inverse() (Matrix4, error) { return Invert(m) }

// NormalMatrix returns the inverse-transpose of the upper-left 3×3 block of m,
// the matrix that carries surface normals correctly under non-uniform scale.
// Row 3 (translation) and column 3 are discarded.
//
// The inverse-transpose of a 3×3 block equals its cofactor matrix divided by
// its determinant, so only the nine 2×2 cofactors are computed.
//
// On a zero determinant it returns (Matrix3{}, false) instead of an error;
// unlike Invert, a singular block is an expected outcome for callers that
// flatten geometry, and they simply skip normal transformation.
func NormalMatrix(m Matrix4) (Matrix3, bool) {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[4], m[5], m[6]
	g, h, i := m[8], m[9], m[10]

	c00 := e*i - f*h
	c01 := f*g - d*i
	c02 := d*h - e*g

	det := a*c00 + b*c01 + c*c02
	if det == zeroDeterminant {
		return Matrix3{}, false
	}

	inv := 1.0 / det

	return Matrix3{
		c00 * inv, c01 * inv, c02 * inv,
		(c*h - b*i) * inv, (a*i - c*g) * inv, (b*g - a*h) * inv,
		(b*f - c*e) * inv, (c*d - a*f) * inv, (a*e - b*d) * inv,
	}, true
}

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Apply returns v · m, the row-vector product used throughout the package.
// With a NormalMatrix this transforms a surface normal; the result is not
// re-normalized.
func (m Matrix3) Apply(v Vector3) Vector3 {
	x, y, z := v[0], v[1], v[2]

	return Vector3{
		x*m[0] + y*m[3] + z*m[6],
		x*m[1] + y*m[4] + z*m[7],
		x*m[2] + y*m[5] + z*m[8],
	}
}
