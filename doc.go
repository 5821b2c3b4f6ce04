// Package mtx4 is a homogeneous-coordinate 4×4 matrix toolkit for 3D
// spatial transforms.
//
// Everything lives in subpackages:
//
//	transform/           — Matrix4/Point4 algebra: products, affine builders,
//	                       composition, inversion, normal matrix, projections
//	health/              — liveness host: env config, GET /, start/stop
//	health/healthtest/   — start/stop the host around a test
//	cmd/transformd/      — runs the liveness host
//	cmd/transformdemo/   — prints the transform walkthrough
//
// Quick example (scale, then translate, then rotate a point):
//
//	m, _ := transform.ComposeAll(
//		transform.RotateZ(math.Pi/2),
//		transform.Translate(0, 200, 0),
//		transform.Scale(0.8, 0.8, 0.8),
//	)
//	p := m.Apply(transform.Point4{1, 0, 0, 1})
//
//	go get github.com/katalvlaran/mtx4/transform
package mtx4
