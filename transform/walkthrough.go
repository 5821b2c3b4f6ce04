// SPDX-License-Identifier: MIT

package transform

import "math"

// Report is the result of Walkthrough. Field names mirror the steps of the
// classic "matrix math for the web" tour. Matrices and Point4 encode as JSON
// arrays; Point and TransformedPoint encode as {"X":..,"Y":..} objects.
//
// TransformMatrix3 scales by 0.8, moves 200 along y, then rotates 90° about z.
// TransformMatrix6 applies the same three steps and then undoes each of them,
// so it equals Identity() within rounding.
type Report struct {
	IdentityResult    Point4  `json:"identityResult"`
	SomeMatrix        Matrix4 `json:"someMatrix"`
	SomeMatrixResult  Matrix4 `json:"someMatrixResult"`
	Axes              Axes    `json:"axes"`
	Scales            Scales  `json:"scales"`
	TranslationMatrix Matrix4 `json:"translationMatrix"`
	ScaleMatrix       Matrix4 `json:"scaleMatrix"`
	Point             Point2  `json:"point"`
	Distance          float64 `json:"distance"`
	Angle             Degrees `json:"angle"`
	Radians           Radians `json:"radians"`
	TransformedPoint  Point2  `json:"transformedPoint"`
	RotateXMatrix     Matrix4 `json:"rotateXMatrix"`
	RotateYMatrix     Matrix4 `json:"rotateYMatrix"`
	RotateZMatrix     Matrix4 `json:"rotateZMatrix"`
	TransformMatrix3  Matrix4 `json:"transformMatrix3"`
	TransformMatrix6  Matrix4 `json:"transformMatrix6"`
}

// Axes is the translation used by the walkthrough.
type Axes struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Scales is the scale used by the walkthrough: width, height, depth.
type Scales struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
	D float64 `json:"d"`
}

// walkthroughSample is a scale-plus-translation matrix used to show that the
// identity leaves a matrix unchanged.
var walkthroughSample = Matrix4{
	4, 0, 0, 0,
	0, 3, 0, 0,
	0, 0, 5, 0,
	4, 8, 4, 1,
}

// Walkthrough runs every builder and combinator once on fixed inputs and
// returns the results. It doubles as an executable smoke test of the package.
func Walkthrough() (Report, error) {
	r := Report{
		IdentityResult:   MultiplyMatrixAndPoint(Identity(), Point4{4, 3, 2, 1}),
		SomeMatrix:       walkthroughSample,
		SomeMatrixResult: MultiplyMatrices(Identity(), walkthroughSample),
		Axes:             Axes{X: 50, Y: 100, Z: 0},
		Scales:           Scales{W: 1.5, H: 0.7, D: 1},
		Point:            Point2{X: 10, Y: 2},
		Angle:            60,
	}
	r.TranslationMatrix = Translate(r.Axes.X, r.Axes.Y, r.Axes.Z)
	r.ScaleMatrix = Scale(r.Scales.W, r.Scales.H, r.Scales.D)

	// rotate a 2D point by hand before doing it with matrices
	r.Distance = DistanceFromOrigin(r.Point)
	r.Radians = DegreesToRadians(r.Angle)
	r.TransformedPoint = PolarToCartesian(r.Radians, r.Distance)

	r.RotateXMatrix = RotateX(r.Radians)
	r.RotateYMatrix = RotateY(r.Radians)
	r.RotateZMatrix = RotateZ(r.Radians)

	var err error
	r.TransformMatrix3, err = ComposeAll(
		RotateZ(math.Pi*0.5), // step 3: rotate 90°
		Translate(0, 200, 0), // step 2: move 200 along y
		Scale(0.8, 0.8, 0.8), // step 1: scale down
	)
	if err != nil {
		return Report{}, err
	}
	r.TransformMatrix6, err = ComposeAll(
		Scale(1.25, 1.25, 1.25), // step 6: scale back up
		Translate(0, -200, 0),   // step 5: move back
		RotateZ(-math.Pi*0.5),   // step 4: rotate back
		RotateZ(math.Pi*0.5),    // step 3
		Translate(0, 200, 0),    // step 2
		Scale(0.8, 0.8, 0.8),    // step 1
	)
	if err != nil {
		return Report{}, err
	}

	return r, nil
}
