// SPDX-License-Identifier: MIT

// Package transform implements homogeneous-coordinate 4×4 matrix algebra for
// 3D spatial transforms.
//
// The package provides:
//
//   - Point/matrix and matrix/matrix products (MultiplyMatrixAndPoint, MultiplyMatrices).
//   - Affine builders: Identity, Translate, Scale, RotateX, RotateY, RotateZ.
//   - Composition of a transform chain with ComposeAll.
//   - Inversion by adjugate/determinant (Invert) and the normal matrix (NormalMatrix).
//   - Projection builders: Perspective and Orthographic.
//   - Vector helpers: Normalize, DistanceFromOrigin, DegreesToRadians, PolarToCartesian.
//
// Layout & convention:
//
//	Matrix4 is row-major: element (row, col) lives at index row*4+col.
//	Points are row vectors multiplied on the left:  p' = p · M.
//	Translation therefore lives in row 3: m[12], m[13], m[14].
//
// Because points multiply from the left, MultiplyMatrices(a, b) equals the
// conventional product b × a, and ComposeAll folds left to right. To scale,
// then translate, then rotate a point, list the matrices in reverse reading
// order:
//
//	m, _ := transform.ComposeAll(
//		transform.RotateZ(math.Pi/2),   // step 3
//		transform.Translate(0, 200, 0), // step 2
//		transform.Scale(0.8, 0.8, 0.8), // step 1
//	)
//
// All values are fixed-size arrays passed by value. No function mutates its
// inputs, performs I/O or keeps state, so every function is safe for
// concurrent use. Errors are package sentinels wrapped with the operation
// name; match them with errors.Is.
package transform
