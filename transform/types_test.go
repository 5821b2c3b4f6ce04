package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mtx4/transform"
)

func TestFromSlice_Dimensions(t *testing.T) {
	t.Parallel()

	seq := func(n int) []float64 {
		s := make([]float64, n)
		for i := range s {
			s[i] = float64(i)
		}
		return s
	}

	tests := []struct {
		name string
		want int
		call func([]float64) error
	}{
		{"Matrix4", transform.Matrix4Len, func(s []float64) error { _, err := transform.Matrix4FromSlice(s); return err }},
		{"Matrix3", transform.Matrix3Len, func(s []float64) error { _, err := transform.Matrix3FromSlice(s); return err }},
		{"Point4", transform.Point4Len, func(s []float64) error { _, err := transform.Point4FromSlice(s); return err }},
		{"Vector3", transform.Vector3Len, func(s []float64) error { _, err := transform.Vector3FromSlice(s); return err }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.call(seq(tc.want)))
			for _, n := range []int{0, tc.want - 1, tc.want + 1} {
				err := tc.call(seq(n))
				require.ErrorIs(t, err, transform.ErrDimensionMismatch, "len %d", n)
				require.Contains(t, err.Error(), tc.name+"FromSlice")
			}
			require.ErrorIs(t, tc.call(nil), transform.ErrDimensionMismatch)
		})
	}
}

func TestMatrix4FromSlice_CopiesRowMajor(t *testing.T) {
	t.Parallel()

	src := []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		50, 100, 0, 1,
	}
	m, err := transform.Matrix4FromSlice(src)
	require.NoError(t, err)
	require.Equal(t, transform.Translate(50, 100, 0), m)
	require.Equal(t, 50.0, m.At(3, 0))

	// no aliasing in either direction
	src[12] = -1
	require.Equal(t, 50.0, m[12])
	out := m.Slice()
	out[0] = 9
	require.Equal(t, 1.0, m[0])
	require.Len(t, out, transform.Matrix4Len)
}

func TestMatrix4FromSlice_ErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := transform.Matrix4FromSlice(make([]float64, 15))
	require.EqualError(t, err,
		"Matrix4FromSlice: ValidateLen: want 16 elements, got 15: transform: dimension mismatch")
}

func TestRowsAndCols(t *testing.T) {
	t.Parallel()

	var m transform.Matrix4
	for i := range m {
		m[i] = float64(i)
	}
	require.Equal(t, transform.Point4{4, 5, 6, 7}, m.Row(1))
	require.Equal(t, transform.Point4{1, 5, 9, 13}, m.Col(1))
	require.Equal(t, m, transform.FromRows(m.Row(0), m.Row(1), m.Row(2), m.Row(3)))

	p, err := transform.Point4FromSlice([]float64{4, 3, 2, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{4, 3, 2, 1}, p.Slice())

	v, err := transform.Vector3FromSlice([]float64{3, 4, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4, 0}, v.Slice())

	m3, err := transform.Matrix3FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	require.Equal(t, 6.0, m3.At(1, 2))
	require.Equal(t, []float64{1, 4, 7, 2, 5, 8, 3, 6, 9}, m3.Transpose().Slice())
}
