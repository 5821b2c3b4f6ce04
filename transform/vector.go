// SPDX-License-Identifier: MIT

package transform

import "math"

// degToRad is π/180, applied as (π/180)·angle.
const degToRad = math.Pi / 180

// Normalize returns v scaled to unit length.
// Errors: ErrZeroLengthVector when |v| == 0, since the direction is undefined.
func Normalize(v Vector3) (Vector3, error) {
	length := v.Length()
	if length == 0 {
		return Vector3{}, transformErrorf(opNormalize, ErrZeroLengthVector)
	}

	return Vector3{v[0] / length, v[1] / length, v[2] / length}, nil
}

// Length returns the Euclidean length of v without intermediate overflow
// or underflow: components are scaled by the largest magnitude first.
func (v Vector3) Length() float64 {
	m := math.Max(math.Abs(v[0]), math.Max(math.Abs(v[1]), math.Abs(v[2])))
	if m == 0 || math.IsInf(m, 1) {
		return m
	}
	x, y, z := v[0]/m, v[1]/m, v[2]/m

	return m * math.Sqrt(x*x+y*y+z*z)
}

// DistanceFromOrigin returns the Euclidean distance of p from (0, 0).
func DistanceFromOrigin(p Point2) float64 {
	return math.Hypot(p.X, p.Y)
}

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(angle Degrees) Radians {
	return degToRad * angle
}

// PolarToCartesian returns the point at the given angle and distance from
// the origin. Rotating a 2D point by hand is DistanceFromOrigin followed by
// PolarToCartesian with the new angle.
func PolarToCartesian(radians Radians, distance float64) Point2 {
	return Point2{
		X: math.Cos(radians) * distance,
		Y: math.Sin(radians) * distance,
	}
}
