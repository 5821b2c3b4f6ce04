// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"
)

// Perspective returns a symmetric perspective projection.
//
// Inputs:
//   - fovY:   vertical field of view in radians.
//   - aspect: viewport width / height.
//   - near, far: clip plane distances; view-space z in [near, far] maps into
//     clip space, with w taken from -z (entry (2,3) is -1).
//
// With f = 1/tan(fovY/2) and r = 1/(near-far) the matrix is:
//
//	f/aspect  0  0               0
//	0         f  0               0
//	0         0  (near+far)*r   -1
//	0         0  near*far*r*2    0
//
// Errors: ErrDegenerateProjection when near == far or aspect == 0.
func Perspective(fovY Radians, aspect, near, far float64) (Matrix4, error) {
	if aspect == zeroDenominator {
		return Matrix4{}, transformErrorf(opPerspective,
			validatorErrorf("validateAspect", fmt.Errorf("aspect == 0: %w", ErrDegenerateProjection)))
	}
	if err := validateExtent("near/far", near, far); err != nil {
		return Matrix4{}, transformErrorf(opPerspective, err)
	}

	f := 1.0 / math.Tan(fovY/2)
	rangeInv := 1 / (near - far)

	return Matrix4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (near + far) * rangeInv, -1,
		0, 0, near * far * rangeInv * 2, 0,
	}, nil
}

// Orthographic returns a box projection of [left,right]×[bottom,top]×[near,far]
// onto the clip cube. Each axis gets its own scale on the diagonal and its
// own offset in row 3.
//
// Errors: ErrDegenerateProjection when left == right, bottom == top or near == far.
func Orthographic(left, right, bottom, top, near, far float64) (Matrix4, error) {
	for _, ext := range [...]struct {
		axis   string
		lo, hi float64
	}{
		{"left/right", left, right},
		{"bottom/top", bottom, top},
		{"near/far", near, far},
	} {
		if err := validateExtent(ext.axis, ext.lo, ext.hi); err != nil {
			return Matrix4{}, transformErrorf(opOrthographic, err)
		}
	}

	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)

	return Matrix4{
		-2 * lr, 0, 0, 0,
		0, -2 * bt, 0, 0,
		0, 0, 2 * nf, 0,
		(left + right) * lr, (top + bottom) * bt, (far + near) * nf, 1,
	}, nil
}
