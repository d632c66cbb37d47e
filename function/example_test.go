package function_test

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/arloliu/mathfn/errs"
	"github.com/arloliu/mathfn/function"
)

func ExampleLinear() {
	l := function.NewLinear(2, 3)
	if _, err := l.Evaluate(5); err != nil {
		log.Fatal(err)
	}
	if err := l.Print(os.Stdout); err != nil {
		log.Fatal(err)
	}

	// Output:
	// Linear f(x) = 2x + 3
	// f(5) = 13
}

func ExampleNew() {
	f, err := function.New("quadratic", []float64{1, 5, 8})
	if err != nil {
		log.Fatal(err)
	}

	y, _ := f.Evaluate(3)
	fmt.Println(f.Formula())
	fmt.Println(y)

	// Output:
	// Quadratic f(x) = 1x^2 + 5x + 8
	// 32
}

func ExampleInverseProportional_Evaluate() {
	ip := function.NewInverseProportional(7)

	_, err := ip.Evaluate(0)
	fmt.Println(errors.Is(err, errs.ErrDivisionByZero))
	fmt.Println(err)

	// Output:
	// true
	// division by zero: Inverse Proportional f(x) = 7/x at x = 0
}
