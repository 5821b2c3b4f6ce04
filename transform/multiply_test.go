package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtx4/transform"
)

func TestMultiplyMatrixAndPoint_Identity(t *testing.T) {
	t.Parallel()

	got := transform.MultiplyMatrixAndPoint(transform.Identity(), transform.Point4{4, 3, 2, 1})
	require.Equal(t, transform.Point4{4, 3, 2, 1}, got)

	for _, p := range []transform.Point4{
		{0, 0, 0, 1},
		{-1.5, 2.25, 1e6, 0},
		{math.SmallestNonzeroFloat64, -7, 3, 1},
	} {
		require.Equal(t, p, transform.MultiplyMatrixAndPoint(transform.Identity(), p))
	}
}

func TestMultiplyMatrixAndPoint_RowVectorConvention(t *testing.T) {
	t.Parallel()

	// Translation lives in row 3 and only affects w=1 points.
	m := transform.Translate(10, 20, 30)
	require.Equal(t, transform.Point4{11, 22, 33, 1}, m.Apply(transform.Point4{1, 2, 3, 1}))
	require.Equal(t, transform.Point4{1, 2, 3, 0}, m.Apply(transform.Point4{1, 2, 3, 0}))

	// out[j] = Σ p[i]*m[i*4+j]
	var general transform.Matrix4
	for i := range general {
		general[i] = float64(i + 1)
	}
	p := transform.Point4{1, 0, 0, 0}
	require.Equal(t, general.Row(0), transform.MultiplyMatrixAndPoint(general, p))
	p = transform.Point4{0, 0, 0, 1}
	require.Equal(t, general.Row(3), transform.MultiplyMatrixAndPoint(general, p))
	p = transform.Point4{1, 1, 1, 1}
	require.Equal(t, transform.Point4{28, 32, 36, 40}, transform.MultiplyMatrixAndPoint(general, p))
}

func TestMultiplyMatrixAndPoint_PropagatesNaNInf(t *testing.T) {
	t.Parallel()

	got := transform.MultiplyMatrixAndPoint(transform.Identity(), transform.Point4{math.NaN(), 1, 2, 1})
	require.True(t, math.IsNaN(got[0]))
	require.Equal(t, 1.0, got[1])

	got = transform.MultiplyMatrixAndPoint(transform.Scale(2, 2, 2), transform.Point4{math.Inf(1), 0, 0, 1})
	require.True(t, math.IsInf(got[0], 1))
}

func TestMultiplyMatrices_IdentityLeft(t *testing.T) {
	t.Parallel()

	for name, m := range invertible() {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, m, transform.MultiplyMatrices(transform.Identity(), m))
		})
	}
}

func TestMultiplyMatrices_IsBTimesA(t *testing.T) {
	t.Parallel()

	a := invertible()["general"]
	b := invertible()["walkthroughSample"]

	// conventional row-major product b × a
	var want transform.Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			for k := 0; k < 4; k++ {
				want[r*4+c] += b[r*4+k] * a[k*4+c]
			}
		}
	}
	require.Equal(t, want, transform.MultiplyMatrices(a, b))
	require.Equal(t, want, a.Mul(b))
	require.Equal(t, want, transform.Product(a, b))
}

func TestMultiplyMatrices_NonCommutative(t *testing.T) {
	t.Parallel()

	a := transform.Translate(1, 0, 0)
	b := transform.RotateZ(math.Pi / 2)

	ab := transform.MultiplyMatrices(a, b)
	ba := transform.MultiplyMatrices(b, a)
	require.NotEqual(t, ab, ba)

	// ab = b × a keeps a's translation untouched in row 3.
	require.Equal(t, transform.Point4{1, 0, 0, 1}, ab.Row(3))
	// ba = a × b rotates it.
	requireNear(t, transform.Point4{0, -1, 0, 1}, ba.Row(3))
}

func TestMultiplyMatrices_TranslationRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range [][3]float64{
		{0, 0, 0},
		{1, 2, 3},
		{-50, 100, 0},
		{1.5, -2.25, 1e3},
		{0.1, 0.2, 0.3},
	} {
		got := transform.MultiplyMatrices(
			transform.Translate(v[0], v[1], v[2]),
			transform.Translate(-v[0], -v[1], -v[2]),
		)
		require.Equal(t, transform.Identity(), got, "translate %v", v)
	}
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := invertible()["general"]
	mt := transform.Transpose(m)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			require.Equal(t, m.At(r, c), mt.At(c, r))
		}
	}
	require.Equal(t, m, mt.Transpose())
	require.Equal(t, m.Col(2), mt.Row(2))
}
