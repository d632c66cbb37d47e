// Package mathfn models a small family of real functions, aggregates them in a
// container and samples them into compact binary tables.
//
// # Core Features
//
//   - Six function variants behind one interface: linear, quadratic, trigonometric,
//     power, indicator (exponential) and inverse-proportional
//   - Evaluation with remembered last input/output and human-readable printing
//   - A Container that sums registered functions at a point, accumulating across calls
//   - Division by zero reported as an error (errs.ErrDivisionByZero), never infinity
//   - Tables of sampled values with optional compression (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
//	l := mathfn.MustFunction("linear", 2, 3)
//	q := mathfn.MustFunction("quadratic", 1, 5, 8)
//
//	c, _ := mathfn.NewContainer()
//	c.Add(l)
//	c.Add(q)
//
//	sum, _ := c.Sum(2) // 29
//	_ = c.Print(os.Stdout)
//
// # Package Structure
//
// This package provides top-level shortcuts around the function, container and table
// packages. Use those packages directly for the full API.
package mathfn

import (
	"github.com/arloliu/mathfn/container"
	"github.com/arloliu/mathfn/function"
	"github.com/arloliu/mathfn/internal/hash"
	"github.com/arloliu/mathfn/table"
)

// NewFunction creates a function by kind name and coefficients.
//
// See function.New for the supported names and coefficient orders.
func NewFunction(name string, coeffs ...float64) (function.Function, error) {
	return function.New(name, coeffs)
}

// MustFunction is like NewFunction but panics on error.
// It is intended for fixed, known-good definitions.
func MustFunction(name string, coeffs ...float64) function.Function {
	f, err := function.New(name, coeffs)
	if err != nil {
		panic(err)
	}

	return f
}

// NewContainer creates an empty container.
func NewContainer(opts ...container.Option) (*container.Container, error) {
	return container.New(opts...)
}

// SampleRange samples f at n evenly spaced points from `from` to `to`.
func SampleRange(f function.Function, from, to float64, n int) (*table.Table, error) {
	xs, err := table.Linspace(from, to, n)
	if err != nil {
		return nil, err
	}

	return table.Sample(f, xs)
}

// FunctionID returns the identifier a table records for f: the xxHash64 of its formula.
func FunctionID(f function.Function) uint64 {
	return hash.ID(f.Formula())
}
