package table

import (
	"bytes"
	"math"
	"testing"

	"github.com/arloliu/mathfn/errs"
	"github.com/arloliu/mathfn/function"
	"github.com/arloliu/mathfn/internal/hash"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	t.Run("inclusive bounds", func(t *testing.T) {
		xs, err := Linspace(0, 1, 5)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)
	})

	t.Run("descending", func(t *testing.T) {
		xs, err := Linspace(2, -2, 3)
		require.NoError(t, err)
		require.Equal(t, []float64{2, 0, -2}, xs)
	})

	t.Run("last point is exact", func(t *testing.T) {
		xs, err := Linspace(0, math.Pi, 7)
		require.NoError(t, err)
		require.Len(t, xs, 7)
		require.Equal(t, math.Pi, xs[6])
	})

	t.Run("single point", func(t *testing.T) {
		xs, err := Linspace(3, 3, 1)
		require.NoError(t, err)
		require.Equal(t, []float64{3}, xs)
	})

	t.Run("invalid grids", func(t *testing.T) {
		cases := []struct {
			from, to float64
			n        int
		}{
			{0, 1, 1},
			{0, 1, 0},
			{0, 1, -3},
			{math.NaN(), 1, 4},
			{0, math.Inf(1), 4},
		}
		for _, c := range cases {
			_, err := Linspace(c.from, c.to, c.n)
			require.ErrorIs(t, err, errs.ErrInvalidGrid, "from=%v to=%v n=%d", c.from, c.to, c.n)
		}
	})
}

func TestSample(t *testing.T) {
	f := function.NewQuadratic(1, 5, 8)
	xs := []float64{-1, 0, 1, 2, 3}

	tbl, err := Sample(f, xs)
	require.NoError(t, err)
	require.Equal(t, function.KindQuadratic, tbl.Kind)
	require.Equal(t, f.Formula(), tbl.Formula)
	require.Equal(t, hash.ID(f.Formula()), tbl.ID)
	require.Equal(t, 5, tbl.Len())
	require.Equal(t, []float64{4, 8, 14, 22, 32}, tbl.Ys)

	x, y := tbl.At(4)
	require.Equal(t, 3.0, x)
	require.Equal(t, 32.0, y)

	lastX, lastY := f.Last()
	require.Equal(t, 3.0, lastX, "sampling leaves the function at the final point")
	require.Equal(t, 32.0, lastY)

	xs[0] = 100
	require.Equal(t, -1.0, tbl.Xs[0], "table owns a copy of the grid")
}

func TestSampleErrors(t *testing.T) {
	_, err := Sample(function.NewLinear(1, 0), nil)
	require.ErrorIs(t, err, errs.ErrEmptyTable)

	_, err = Sample(function.NewInverseProportional(1), []float64{-1, 0, 1})
	require.ErrorIs(t, err, errs.ErrDivisionByZero)
	require.Contains(t, err.Error(), "sample 1 (x = 0)")
}

func TestTablePrint(t *testing.T) {
	tbl, err := Sample(function.NewPower(2), []float64{1, 2, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tbl.Print(&buf))
	require.Equal(t, "Power f(x) = x^2\nf(1) = 1\nf(2) = 4\nf(3) = 9\n", buf.String())
}
