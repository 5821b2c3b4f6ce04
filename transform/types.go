// SPDX-License-Identifier: MIT

// Value types.
// All types are fixed-size arrays; the element count is part of the type, so
// the 4/9/16 invariant holds by construction. Slice conversion happens only
// through the *FromSlice constructors, which validate length eagerly.

package transform

import "seehuhn.de/go/geom/vec"

// Element counts of the fixed-size types.
const (
	Matrix4Len = 16
	Matrix3Len = 9
	Point4Len  = 4
	Vector3Len = 3
)

// Matrix4 is a 4×4 matrix in row-major order: (row, col) is at row*4+col.
type Matrix4 [Matrix4Len]float64

// Matrix3 is a 3×3 matrix in row-major order: (row, col) is at row*3+col.
// It is produced by NormalMatrix.
type Matrix3 [Matrix3Len]float64

// Point4 holds homogeneous coordinates (x, y, z, w).
// By convention w = 1 for positions and w = 0 for directions; nothing enforces it.
type Point4 [Point4Len]float64

// Vector3 is a 3D direction.
type Vector3 [Vector3Len]float64

// Point2 is a 2D point, shared with seehuhn.de/go/geom so results plug
// straight into 2D geometry code.
type Point2 = vec.Vec2

// Angle helpers document units at call sites; both are plain float64.
type (
	// Degrees is an angle in degrees.
	Degrees = float64
	// Radians is an angle in radians.
	Radians = float64
)

// Matrix4FromSlice copies s into a Matrix4.
// Returns ErrDimensionMismatch unless len(s) == 16.
func Matrix4FromSlice(s []float64) (Matrix4, error) {
	var m Matrix4
	if err := ValidateLen(s, Matrix4Len); err != nil {
		return m, transformErrorf(opMatrix4FromSlice, err)
	}
	copy(m[:], s)

	return m, nil
}

// Matrix3FromSlice copies s into a Matrix3.
// Returns ErrDimensionMismatch unless len(s) == 9.
func Matrix3FromSlice(s []float64) (Matrix3, error) {
	var m Matrix3
	if err := ValidateLen(s, Matrix3Len); err != nil {
		return m, transformErrorf(opMatrix3FromSlice, err)
	}
	copy(m[:], s)

	return m, nil
}

// Point4FromSlice copies s into a Point4.
// Returns ErrDimensionMismatch unless len(s) == 4.
func Point4FromSlice(s []float64) (Point4, error) {
	var p Point4
	if err := ValidateLen(s, Point4Len); err != nil {
		return p, transformErrorf(opPoint4FromSlice, err)
	}
	copy(p[:], s)

	return p, nil
}

// Vector3FromSlice copies s into a Vector3.
// Returns ErrDimensionMismatch unless len(s) == 3.
func Vector3FromSlice(s []float64) (Vector3, error) {
	var v Vector3
	if err := ValidateLen(s, Vector3Len); err != nil {
		return v, transformErrorf(opVector3FromSlice, err)
	}
	copy(v[:], s)

	return v, nil
}

// Slice returns the 16 elements as a fresh slice.
func (m Matrix4) Slice() []float64 { return append([]float64(nil), m[:]...) }

// Slice returns the 9 elements as a fresh slice.
func (m Matrix3) Slice() []float64 { return append([]float64(nil), m[:]...) }

// Slice returns x, y, z, w as a fresh slice.
func (p Point4) Slice() []float64 { return append([]float64(nil), p[:]...) }

// Slice returns the 3 components as a fresh slice.
func (v Vector3) Slice() []float64 { return append([]float64(nil), v[:]...) }

// At returns element (row, col). It panics on an index outside 0..3, like
// any out-of-range array access.
func (m Matrix4) At(row, col int) float64 { return m[row*4+col] }

// Row returns row r as a Point4.
func (m Matrix4) Row(r int) Point4 {
	base := r * 4

	return Point4{m[base], m[base+1], m[base+2], m[base+3]}
}

// Col returns column c as a Point4.
func (m Matrix4) Col(c int) Point4 {
	return Point4{m[c], m[4+c], m[8+c], m[12+c]}
}

// FromRows assembles a Matrix4 from four rows in order.
func FromRows(r0, r1, r2, r3 Point4) Matrix4 {
	return Matrix4{
		r0[0], r0[1], r0[2], r0[3],
		r1[0], r1[1], r1[2], r1[3],
		r2[0], r2[1], r2[2], r2[3],
		r3[0], r3[1], r3[2], r3[3],
	}
}

// At returns element (row, col) of a 3×3 matrix.
func (m Matrix3) At(row, col int) float64 { return m[row*3+col] }
