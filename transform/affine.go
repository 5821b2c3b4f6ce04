// SPDX-License-Identifier: MIT

package transform

import "math"

// Identity returns the 4×4 identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation by (x, y, z). The offsets live in row 3,
// so they act on points with w = 1 and leave directions (w = 0) alone.
func Translate(x, y, z float64) Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Scale returns a scale by width w, height h and depth d along x, y and z.
func Scale(w, h, d float64) Matrix4 {
	return Matrix4{
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, d, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns a rotation about the X axis.
//
// These matrices carry no perspective term: rendered without a projection,
// a rotation out of the screen plane only looks like a 2D shrink.
func RotateX(radians Radians) Matrix4 {
	s, c := math.Sin(radians), math.Cos(radians)

	return Matrix4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation about the Y axis.
func RotateY(radians Radians) Matrix4 {
	s, c := math.Sin(radians), math.Cos(radians)

	return Matrix4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation about the Z axis.
func RotateZ(radians Radians) Matrix4 {
	s, c := math.Sin(radians), math.Cos(radians)

	return Matrix4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
