// SPDX-License-Identifier: MIT

package transform

// ComposeAll left-folds ms with MultiplyMatrices:
//
//	acc := ms[0]
//	for _, m := range ms[1:] { acc = MultiplyMatrices(acc, m) }
//
// With row-vector points the last matrix is applied first, so a chain that
// scales, then translates, then rotates is listed as (rotate, translate, scale).
// Reversing the list reverses the order of operations.
//
// Errors: ErrEmptyComposition when ms is empty.
// Complexity: O(len(ms)); the fold is sequential by construction.
func ComposeAll(ms ...Matrix4) (Matrix4, error) {
	if len(ms) == 0 {
		return Matrix4{}, transformErrorf(opComposeAll, ErrEmptyComposition)
	}

	acc := ms[0]
	for _, m := range ms[1:] {
		acc = MultiplyMatrices(acc, m)
	}

	return acc, nil
}
