// Package container aggregates function references and sums their values.
//
// A Container does not own the functions added to it. It stores references and
// evaluates them in place, so every Sum updates the last evaluation of each
// registered function. Callers must keep the functions alive for as long as the
// container uses them.
//
// By default the sum accumulates across calls:
//
//	c, _ := container.New()
//	c.Add(function.NewLinear(2, 3))
//	c.Sum(2) // 7
//	c.Sum(2) // 14
//
// Use WithResetPerSum(true) to get the sum at the current point instead.
package container

import (
	"fmt"
	"io"
	"slices"

	"github.com/arloliu/mathfn/function"
	"github.com/arloliu/mathfn/internal/options"
)

// Container holds an ordered list of function references, an accumulated sum and the
// last point the sum was computed at. It is not safe for concurrent use.
type Container struct {
	funcs []function.Function
	sum   float64
	lastX float64
	cfg   Config
}

// New creates an empty container.
func New(opts ...Option) (*Container, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Container{
		funcs: make([]function.Function, 0, cfg.InitialCapacity),
		cfg:   cfg,
	}, nil
}

// Add appends a function reference. Nil functions are ignored.
//
// The reference list grows with append, so its capacity may exceed Len.
// Use WithInitialCapacity to size it up front.
func (c *Container) Add(f function.Function) {
	if f == nil {
		return
	}
	c.funcs = append(c.funcs, f)
}

// Len returns the number of registered functions.
func (c *Container) Len() int {
	return len(c.funcs)
}

// Functions returns the registered functions in insertion order.
// The returned slice is a copy; the functions themselves are shared.
func (c *Container) Functions() []function.Function {
	return slices.Clone(c.funcs)
}

// Sum evaluates every function at x in insertion order, adds the results to the
// accumulator and returns the new accumulated value.
//
// The accumulator is not reset between calls unless WithResetPerSum(true) was given.
// If a function fails to evaluate, Sum returns the unchanged accumulator and an error
// naming the function's position; functions evaluated before it keep their new state.
func (c *Container) Sum(x float64) (float64, error) {
	var total float64
	for i, f := range c.funcs {
		y, err := f.Evaluate(x)
		if err != nil {
			return c.sum, fmt.Errorf("function %d (%s): %w", i, f.Kind(), err)
		}
		total += y
	}

	if c.cfg.ResetPerSum {
		c.sum = 0
	}
	c.sum += total
	c.lastX = x

	return c.sum, nil
}

// Accumulated returns the current accumulator value.
func (c *Container) Accumulated() float64 {
	return c.sum
}

// LastX returns the point used by the most recent successful Sum.
func (c *Container) LastX() float64 {
	return c.lastX
}

// Reset zeroes the accumulator and the last point. Registered functions are kept.
func (c *Container) Reset() {
	c.sum = 0
	c.lastX = 0
}

// Print writes every function's description in insertion order followed by the
// accumulated sum line.
func (c *Container) Print(w io.Writer) error {
	for _, f := range c.funcs {
		if err := f.Print(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Sum function in container (x = %s): %s\n",
		function.FormatNumber(c.lastX), function.FormatNumber(c.sum))

	return err
}
