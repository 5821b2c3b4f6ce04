package transform_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mtx4/transform"
)

// ExampleComposeAll scales a point by 0.8, moves it 200 along y and rotates
// it a quarter turn. Matrices are listed in reverse order of application.
func ExampleComposeAll() {
	m, err := transform.ComposeAll(
		transform.RotateZ(math.Pi*0.5), // step 3
		transform.Translate(0, 200, 0), // step 2
		transform.Scale(0.8, 0.8, 0.8), // step 1
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	p := m.Apply(transform.Point4{1, 0, 0, 1})
	fmt.Printf("%.2f %.2f %.2f %.2f\n", p[0], p[1], p[2], p[3])

	// Output:
	// 200.00 -0.80 0.00 1.00
}

func ExampleMultiplyMatrixAndPoint() {
	p := transform.MultiplyMatrixAndPoint(transform.Identity(), transform.Point4{4, 3, 2, 1})
	fmt.Println(p)

	// Output:
	// [4 3 2 1]
}

func ExampleInvert() {
	inv, err := transform.Invert(transform.Translate(1, 2, 3))
	fmt.Println(inv.Row(3), err)

	_, err = transform.Invert(transform.Matrix4{})
	fmt.Println(errors.Is(err, transform.ErrSingularMatrix))

	// Output:
	// [-1 -2 -3 1] <nil>
	// true
}

func ExampleNormalMatrix() {
	n, ok := transform.NormalMatrix(transform.Scale(2, 4, 8))
	fmt.Println(n, ok)

	_, ok = transform.NormalMatrix(transform.Scale(1, 1, 0))
	fmt.Println(ok)

	// Output:
	// [0.5 0 0 0 0.25 0 0 0 0.125] true
	// false
}
