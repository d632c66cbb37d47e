package function

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arloliu/mathfn/errs"
)

// Kind identifies a function variant.
type Kind int

const (
	// KindLinear represents f(x) = k*x + b
	KindLinear Kind = iota
	// KindQuadratic represents f(x) = a*x^2 + b*x + c
	KindQuadratic
	// KindTrigonometric represents f(x) = sin(x)
	KindTrigonometric
	// KindPower represents f(x) = x^a
	KindPower
	// KindIndicator represents f(x) = a^x
	KindIndicator
	// KindInverseProportional represents f(x) = k/x
	KindInverseProportional
)

// KindInvalid is returned by KindFromString for unknown names.
const KindInvalid Kind = -1

var kindNames = map[Kind]string{
	KindLinear:              "linear",
	KindQuadratic:           "quadratic",
	KindTrigonometric:       "trigonometric",
	KindPower:               "power",
	KindIndicator:           "indicator",
	KindInverseProportional: "inverse_proportional",
}

// kindAliases accepts a few alternative spellings on top of kindNames.
var kindAliases = map[string]Kind{
	"exponential": KindIndicator,
	"inverse":     KindInverseProportional,
	"sine":        KindTrigonometric,
}

// kindArity is the number of coefficients each kind takes.
var kindArity = map[Kind]int{
	KindLinear:              2,
	KindQuadratic:           3,
	KindTrigonometric:       0,
	KindPower:               1,
	KindIndicator:           1,
	KindInverseProportional: 1,
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Arity returns the number of coefficients the kind takes, or -1 for unknown kinds.
func (k Kind) Arity() int {
	if n, ok := kindArity[k]; ok {
		return n
	}

	return -1
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindLinear,
		KindQuadratic,
		KindTrigonometric,
		KindPower,
		KindIndicator,
		KindInverseProportional,
	}
}

// KindFromString returns the Kind for a name, ignoring case and surrounding spaces.
// Returns KindInvalid for unknown names.
func KindFromString(name string) Kind {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind
		}
	}
	if kind, ok := kindAliases[name]; ok {
		return kind
	}

	return KindInvalid
}

// NewOfKind creates a function of the given kind from its coefficients.
//
// The coefficient count must equal kind.Arity(); coefficients are taken in
// constructor order (for example [k, b] for KindLinear).
func NewOfKind(kind Kind, coeffs []float64) (Function, error) {
	arity := kind.Arity()
	if arity < 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownKind, int(kind))
	}
	if len(coeffs) != arity {
		return nil, fmt.Errorf("%w: %s expects %d, got %d", errs.ErrInvalidCoefficients, kind, arity, len(coeffs))
	}

	switch kind {
	case KindLinear:
		return NewLinear(coeffs[0], coeffs[1]), nil
	case KindQuadratic:
		return NewQuadratic(coeffs[0], coeffs[1], coeffs[2]), nil
	case KindTrigonometric:
		return NewTrigonometric(), nil
	case KindPower:
		return NewPower(coeffs[0]), nil
	case KindIndicator:
		return NewIndicator(coeffs[0]), nil
	case KindInverseProportional:
		return NewInverseProportional(coeffs[0]), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownKind, kind)
	}
}

// New creates a function by kind name and coefficients.
//
// Supported names (case-insensitive):
//   - "linear": 2 coefficients [k, b]
//   - "quadratic": 3 coefficients [a, b, c]
//   - "trigonometric" (or "sine"): no coefficients
//   - "power": 1 coefficient [a]
//   - "indicator" (or "exponential"): 1 coefficient [a]
//   - "inverse_proportional" (or "inverse"): 1 coefficient [k]
//
// Example:
//
//	f, err := function.New("linear", []float64{2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, _ := f.Evaluate(5) // 13
func New(name string, coeffs []float64) (Function, error) {
	kind := KindFromString(name)
	if kind == KindInvalid {
		supported := make([]string, 0, len(kindNames))
		for _, kindName := range kindNames {
			supported = append(supported, kindName)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("%w: %q. Supported kinds: %s", errs.ErrUnknownKind, name, strings.Join(supported, ", "))
	}

	return NewOfKind(kind, coeffs)
}
