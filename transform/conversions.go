// SPDX-License-Identifier: MIT
// Package transform: interop with other geometry packages.
//
// Purpose:
//   - Hand matrices to 2D consumers (PDF content streams, image resamplers)
//     without re-deriving their conventions at every call site.
//
// Conventions:
//   - seehuhn.de/go/geom/matrix.Matrix is [a b c d e f] with row vectors:
//     x' = a·x + c·y + e, y' = b·x + d·y + f. It is the 2D slice of Matrix4.
//   - golang.org/x/image/math/f64.Aff3 is row-major with column vectors:
//     x' = m0·x + m1·y + m2, y' = m3·x + m4·y + m5, i.e. the transpose.
//   - f64.Mat4 is row-major [16]float64, identical storage to Matrix4.

package transform

import (
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/matrix"
)

// Affine2D returns the xy part of m as a PDF-style 2D affine matrix.
// All z and w terms are dropped; the result is exact only for transforms
// that keep the xy plane (2D scales, Z rotations, xy translations).
func (m Matrix4) Affine2D() matrix.Matrix {
	return matrix.Matrix{
		m[0], m[1],
		m[4], m[5],
		m[12], m[13],
	}
}

// FromAffine2D embeds a 2D affine matrix into a Matrix4 that leaves z and w alone.
func FromAffine2D(a matrix.Matrix) Matrix4 {
	return Matrix4{
		a[0], a[1], 0, 0,
		a[2], a[3], 0, 0,
		0, 0, 1, 0,
		a[4], a[5], 0, 1,
	}
}

// Aff3 returns the xy part of m in the column-vector layout used by
// golang.org/x/image/draw transformers.
func (m Matrix4) Aff3() f64.Aff3 {
	return f64.Aff3{
		m[0], m[4], m[12],
		m[1], m[5], m[13],
	}
}

// Mat4 returns m as an x/image f64.Mat4; both are row-major.
func (m Matrix4) Mat4() f64.Mat4 { return f64.Mat4(m) }

// FromMat4 converts an x/image f64.Mat4 to a Matrix4.
func FromMat4(m f64.Mat4) Matrix4 { return Matrix4(m) }

// Vec4 returns p as an x/image f64.Vec4.
func (p Point4) Vec4() f64.Vec4 { return f64.Vec4(p) }

// Vec3 returns v as an x/image f64.Vec3.
func (v Vector3) Vec3() f64.Vec3 { return f64.Vec3(v) }

// Mat3 returns m as an x/image f64.Mat3; both are row-major.
func (m Matrix3) Mat3() f64.Mat3 { return f64.Mat3(m) }
