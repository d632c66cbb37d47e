package table_test

import (
	"fmt"
	"log"
	"os"

	"github.com/arloliu/mathfn/format"
	"github.com/arloliu/mathfn/function"
	"github.com/arloliu/mathfn/table"
)

func ExampleSample() {
	xs, err := table.Linspace(0, 4, 5)
	if err != nil {
		log.Fatal(err)
	}

	tbl, err := table.Sample(function.NewIndicator(2), xs)
	if err != nil {
		log.Fatal(err)
	}
	if err := tbl.Print(os.Stdout); err != nil {
		log.Fatal(err)
	}

	// Output:
	// Indicator f(x) = 2^x
	// f(0) = 1
	// f(1) = 2
	// f(2) = 4
	// f(3) = 8
	// f(4) = 16
}

func ExampleDecode() {
	tbl, err := table.Sample(function.NewLinear(2, 3), []float64{0, 1, 2})
	if err != nil {
		log.Fatal(err)
	}

	data, err := tbl.Encode(table.WithCompression(format.CompressionLZ4))
	if err != nil {
		log.Fatal(err)
	}

	decoded, err := table.Decode(data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(decoded.Formula)
	fmt.Println(decoded.Kind, decoded.Ys)

	// Output:
	// Linear f(x) = 2x + 3
	// linear [3 5 7]
}
