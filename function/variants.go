package function

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/mathfn/errs"
)

// Linear implements f(x) = k*x + b.
type Linear struct {
	state
	k, b float64
}

var _ Function = (*Linear)(nil)

// NewLinear creates a linear function with slope k and intercept b.
func NewLinear(k, b float64) *Linear {
	return &Linear{k: k, b: b}
}

// Evaluate computes k*x + b.
func (l *Linear) Evaluate(x float64) (float64, error) {
	return l.record(x, l.k*x+l.b), nil
}

// Kind returns KindLinear.
func (l *Linear) Kind() Kind {
	return KindLinear
}

// Coefficients returns [k, b].
func (l *Linear) Coefficients() []float64 {
	return []float64{l.k, l.b}
}

// Formula returns the variant name followed by the formula with its coefficients.
func (l *Linear) Formula() string {
	return "Linear f(x) = " + FormatNumber(l.k) + "x + " + FormatNumber(l.b)
}

// String returns the formula and the last evaluation on two lines.
func (l *Linear) String() string {
	return describe(l.Formula(), &l.state)
}

// Print writes String to w followed by a newline.
func (l *Linear) Print(w io.Writer) error {
	return writeTo(w, l.Formula(), &l.state)
}

// Clone returns an independent copy including the last evaluation.
func (l *Linear) Clone() *Linear {
	c := *l
	return &c
}

// Quadratic implements f(x) = a*x^2 + b*x + c.
type Quadratic struct {
	state
	a, b, c float64
}

var _ Function = (*Quadratic)(nil)

// NewQuadratic creates a quadratic function with coefficients a, b and c.
func NewQuadratic(a, b, c float64) *Quadratic {
	return &Quadratic{a: a, b: b, c: c}
}

// Evaluate computes a*x^2 + b*x + c.
func (q *Quadratic) Evaluate(x float64) (float64, error) {
	return q.record(x, q.a*x*x+q.b*x+q.c), nil
}

// Kind returns KindQuadratic.
func (q *Quadratic) Kind() Kind {
	return KindQuadratic
}

// Coefficients returns [a, b, c].
func (q *Quadratic) Coefficients() []float64 {
	return []float64{q.a, q.b, q.c}
}

// Formula returns the variant name followed by the formula with its coefficients.
func (q *Quadratic) Formula() string {
	return "Quadratic f(x) = " + FormatNumber(q.a) + "x^2 + " + FormatNumber(q.b) + "x + " + FormatNumber(q.c)
}

// String returns the formula and the last evaluation on two lines.
func (q *Quadratic) String() string {
	return describe(q.Formula(), &q.state)
}

// Print writes String to w followed by a newline.
func (q *Quadratic) Print(w io.Writer) error {
	return writeTo(w, q.Formula(), &q.state)
}

// Clone returns an independent copy including the last evaluation.
func (q *Quadratic) Clone() *Quadratic {
	c := *q
	return &c
}

// Trigonometric implements f(x) = sin(x).
type Trigonometric struct {
	state
}

var _ Function = (*Trigonometric)(nil)

// NewTrigonometric creates the sine function.
func NewTrigonometric() *Trigonometric {
	return &Trigonometric{}
}

// Evaluate computes sin(x).
func (t *Trigonometric) Evaluate(x float64) (float64, error) {
	return t.record(x, math.Sin(x)), nil
}

// Kind returns KindTrigonometric.
func (t *Trigonometric) Kind() Kind {
	return KindTrigonometric
}

// Coefficients returns an empty slice; sine has no parameters.
func (t *Trigonometric) Coefficients() []float64 {
	return []float64{}
}

// Formula returns the variant name followed by the formula with its coefficients.
func (t *Trigonometric) Formula() string {
	return "Trigonometric f(x) = sin(x)"
}

// String returns the formula and the last evaluation on two lines.
func (t *Trigonometric) String() string {
	return describe(t.Formula(), &t.state)
}

// Print writes String to w followed by a newline.
func (t *Trigonometric) Print(w io.Writer) error {
	return writeTo(w, t.Formula(), &t.state)
}

// Clone returns an independent copy including the last evaluation.
func (t *Trigonometric) Clone() *Trigonometric {
	c := *t
	return &c
}

// Power implements f(x) = x^a.
//
// Results follow math.Pow: a negative x with a non-integer exponent yields NaN.
type Power struct {
	state
	a float64
}

var _ Function = (*Power)(nil)

// NewPower creates a power function with exponent a.
func NewPower(a float64) *Power {
	return &Power{a: a}
}

// Evaluate computes x^a.
func (p *Power) Evaluate(x float64) (float64, error) {
	return p.record(x, math.Pow(x, p.a)), nil
}

// Kind returns KindPower.
func (p *Power) Kind() Kind {
	return KindPower
}

// Coefficients returns [a].
func (p *Power) Coefficients() []float64 {
	return []float64{p.a}
}

// Formula returns the variant name followed by the formula with its coefficients.
func (p *Power) Formula() string {
	return "Power f(x) = x^" + FormatNumber(p.a)
}

// String returns the formula and the last evaluation on two lines.
func (p *Power) String() string {
	return describe(p.Formula(), &p.state)
}

// Print writes String to w followed by a newline.
func (p *Power) Print(w io.Writer) error {
	return writeTo(w, p.Formula(), &p.state)
}

// Clone returns an independent copy including the last evaluation.
func (p *Power) Clone() *Power {
	c := *p
	return &c
}

// Indicator implements the exponential function f(x) = a^x.
type Indicator struct {
	state
	a float64
}

var _ Function = (*Indicator)(nil)

// NewIndicator creates an exponential function with base a.
func NewIndicator(a float64) *Indicator {
	return &Indicator{a: a}
}

// Evaluate computes a^x.
func (i *Indicator) Evaluate(x float64) (float64, error) {
	return i.record(x, math.Pow(i.a, x)), nil
}

// Kind returns KindIndicator.
func (i *Indicator) Kind() Kind {
	return KindIndicator
}

// Coefficients returns [a].
func (i *Indicator) Coefficients() []float64 {
	return []float64{i.a}
}

// Formula returns the variant name followed by the formula with its coefficients.
func (i *Indicator) Formula() string {
	return "Indicator f(x) = " + FormatNumber(i.a) + "^x"
}

// String returns the formula and the last evaluation on two lines.
func (i *Indicator) String() string {
	return describe(i.Formula(), &i.state)
}

// Print writes String to w followed by a newline.
func (i *Indicator) Print(w io.Writer) error {
	return writeTo(w, i.Formula(), &i.state)
}

// Clone returns an independent copy including the last evaluation.
func (i *Indicator) Clone() *Indicator {
	c := *i
	return &c
}

// InverseProportional implements f(x) = k/x.
type InverseProportional struct {
	state
	k float64
}

var _ Function = (*InverseProportional)(nil)

// NewInverseProportional creates an inverse proportionality with constant k.
func NewInverseProportional(k float64) *InverseProportional {
	return &InverseProportional{k: k}
}

// Evaluate computes k/x.
//
// At x == 0 it returns an error wrapping errs.ErrDivisionByZero and leaves the last
// evaluation unchanged.
func (ip *InverseProportional) Evaluate(x float64) (float64, error) {
	if x == 0 {
		return 0, fmt.Errorf("%w: %s at x = 0", errs.ErrDivisionByZero, ip.Formula())
	}

	return ip.record(x, ip.k/x), nil
}

// Kind returns KindInverseProportional.
func (ip *InverseProportional) Kind() Kind {
	return KindInverseProportional
}

// Coefficients returns [k].
func (ip *InverseProportional) Coefficients() []float64 {
	return []float64{ip.k}
}

// Formula returns the variant name followed by the formula with its coefficients.
func (ip *InverseProportional) Formula() string {
	return "Inverse Proportional f(x) = " + FormatNumber(ip.k) + "/x"
}

// String returns the formula and the last evaluation on two lines.
func (ip *InverseProportional) String() string {
	return describe(ip.Formula(), &ip.state)
}

// Print writes String to w followed by a newline.
func (ip *InverseProportional) Print(w io.Writer) error {
	return writeTo(w, ip.Formula(), &ip.state)
}

// Clone returns an independent copy including the last evaluation.
func (ip *InverseProportional) Clone() *InverseProportional {
	c := *ip
	return &c
}
