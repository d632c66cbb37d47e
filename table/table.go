// Package table samples functions over a grid and encodes the samples in a compact
// binary format.
//
// A Table records the sampled function's kind, formula and formula hash together with
// the x and y columns:
//
//	xs, _ := table.Linspace(0, math.Pi, 64)
//	t, err := table.Sample(function.NewTrigonometric(), xs)
//	if err != nil {
//	    return err
//	}
//	data, err := t.Encode(table.WithCompression(format.CompressionZstd))
//
// # Format
//
// An encoded table is laid out as:
//
//	header (24 bytes) | formula length (u16) | formula | payload | CRC32 (u32)
//
// The payload holds count x values followed by count y values as IEEE 754 float64,
// compressed with the codec named in the header. The CRC32 (IEEE) covers every byte
// before it. The magic number and flag byte are always little-endian; every other
// numeric field uses the byte order selected by the flags.
//
// The format is a byte encoding only: this package never reads or writes files.
package table

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/mathfn/errs"
	"github.com/arloliu/mathfn/function"
	"github.com/arloliu/mathfn/internal/hash"
)

// Table is a sampled function.
type Table struct {
	// Kind is the sampled function's kind.
	Kind function.Kind
	// Formula is the sampled function's formula text.
	Formula string
	// ID is the xxHash64 of Formula.
	ID uint64
	// Xs are the sample points in sampling order.
	Xs []float64
	// Ys are the function values, Ys[i] = f(Xs[i]).
	Ys []float64
}

// Linspace returns n evenly spaced points from `from` to `to`, both inclusive.
//
// n must be at least 2, or exactly 1 when from == to. Bounds must be finite.
func Linspace(from, to float64, n int) ([]float64, error) {
	if math.IsNaN(from) || math.IsNaN(to) || math.IsInf(from, 0) || math.IsInf(to, 0) {
		return nil, fmt.Errorf("%w: bounds must be finite, got [%v, %v]", errs.ErrInvalidGrid, from, to)
	}

	switch {
	case n == 1 && from == to:
		return []float64{from}, nil
	case n < 2:
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", errs.ErrInvalidGrid, n)
	}

	xs := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range xs {
		xs[i] = from + float64(i)*step
	}
	xs[n-1] = to

	return xs, nil
}

// Sample evaluates f at every point of xs and returns the resulting table.
//
// Sampling goes through f.Evaluate, so afterwards f's last evaluation is the final
// point of xs. The first evaluation error aborts sampling and is returned wrapped with
// the failing point.
func Sample(f function.Function, xs []float64) (*Table, error) {
	if len(xs) == 0 {
		return nil, errs.ErrEmptyTable
	}

	ys := make([]float64, len(xs))
	for i, x := range xs {
		y, err := f.Evaluate(x)
		if err != nil {
			return nil, fmt.Errorf("sample %d (x = %s): %w", i, function.FormatNumber(x), err)
		}
		ys[i] = y
	}

	formula := f.Formula()

	return &Table{
		Kind:    f.Kind(),
		Formula: formula,
		ID:      hash.ID(formula),
		Xs:      append([]float64(nil), xs...),
		Ys:      ys,
	}, nil
}

// Len returns the number of samples.
func (t *Table) Len() int {
	return len(t.Xs)
}

// At returns the i-th sample.
func (t *Table) At(i int) (x, y float64) {
	return t.Xs[i], t.Ys[i]
}

// Print writes the formula followed by one "f(x) = y" line per sample.
func (t *Table) Print(w io.Writer) error {
	if _, err := fmt.Fprintln(w, t.Formula); err != nil {
		return err
	}
	for i := range t.Xs {
		if _, err := fmt.Fprintf(w, "f(%s) = %s\n", function.FormatNumber(t.Xs[i]), function.FormatNumber(t.Ys[i])); err != nil {
			return err
		}
	}

	return nil
}
