// Package function models a small family of one-variable real functions behind the
// Function interface.
//
// # Variants
//
//   - Linear: f(x) = k*x + b
//   - Quadratic: f(x) = a*x^2 + b*x + c
//   - Trigonometric: f(x) = sin(x)
//   - Power: f(x) = x^a
//   - Indicator: f(x) = a^x (exponential with base a)
//   - InverseProportional: f(x) = k/x
//
// Every variant remembers the input and output of its most recent successful
// evaluation, which Print reports after the formula:
//
//	l := function.NewLinear(2, 3)
//	if _, err := l.Evaluate(5); err != nil {
//	    return err
//	}
//	_ = l.Print(os.Stdout)
//	// Linear f(x) = 2x + 3
//	// f(5) = 13
//
// # Errors
//
// Evaluate returns an error wrapping errs.ErrDivisionByZero when an InverseProportional
// is evaluated at zero. The function's last state is left untouched in that case.
// MustEvaluate restores fail-fast behavior for callers that prefer to panic.
//
// # Construction by name
//
// New builds a variant from its kind name and coefficient list, which is convenient
// when the function family is chosen at runtime:
//
//	f, err := function.New("quadratic", []float64{1, 5, 8})
//
// Functions are not safe for concurrent use: Evaluate mutates the remembered state.
package function
