package function

import (
	"fmt"
	"io"
	"strconv"
)

// Function is a one-variable real function that remembers its last evaluation.
type Function interface {
	// Evaluate computes f(x), records x and the result as the last evaluation and
	// returns the result.
	Evaluate(x float64) (float64, error)
	// Kind returns the variant of the function.
	Kind() Kind
	// Coefficients returns a copy of the function's coefficients in constructor order.
	Coefficients() []float64
	// Formula returns the variant name and formula, e.g. "Linear f(x) = 2x + 3".
	Formula() string
	// Last returns the input and output of the most recent successful evaluation.
	Last() (x, y float64)
	// String returns the formula followed by the last evaluation on a second line.
	String() string
	// Print writes String to w, terminating each line with a newline.
	Print(w io.Writer) error
}

// MustEvaluate evaluates f at x and panics if the evaluation fails.
func MustEvaluate(f Function, x float64) float64 {
	y, err := f.Evaluate(x)
	if err != nil {
		panic(fmt.Sprintf("function: %v", err))
	}

	return y
}

// state holds the last evaluated point shared by every variant.
type state struct {
	x, y float64
}

// Last returns the input and output of the most recent successful evaluation.
func (s *state) Last() (x, y float64) {
	return s.x, s.y
}

func (s *state) record(x, y float64) float64 {
	s.x, s.y = x, y
	return y
}

func (s *state) point() string {
	return "f(" + FormatNumber(s.x) + ") = " + FormatNumber(s.y)
}

// FormatNumber formats v with six significant digits and no trailing zeros,
// e.g. 13, 0.14112 or 1e+06.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func describe(formula string, s *state) string {
	return formula + "\n" + s.point()
}

func writeTo(w io.Writer, formula string, s *state) error {
	_, err := io.WriteString(w, describe(formula, s)+"\n")
	return err
}
