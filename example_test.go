package axpy_test

import (
	"fmt"

	"github.com/jasondark/axpy"
)

func ExampleRun() {
	x := []float64{1, 2, 3, 4}
	y := []float64{4, 3, 2, 1}
	z := make([]float64, 4)

	vars := &axpy.Vars{}
	vars.SetSeq("x", x)
	vars.SetSeq("y", y)
	vars.SetSeq("z", z)

	if err := axpy.Run("z = x + y", vars); err != nil {
		panic(err)
	}

	fmt.Println(z)
	// Output:
	// [5 5 5 5]
}

func ExampleProgram_Bind() {
	// The destination may appear on the right-hand side; each element is
	// read before it is overwritten within the same iteration.
	x := []float64{1, 2, 3, 4}
	y := []float64{4, 3, 2, 1}
	z := []float64{10, 100, 1000, 10000}

	prog, err := axpy.Compile("z = 2*z - x + 3*y")
	if err != nil {
		panic(err)
	}

	vars := &axpy.Vars{}
	vars.SetSeq("x", x)
	vars.SetSeq("y", y)
	vars.SetSeq("z", z)

	loop, err := prog.Bind(vars)
	if err != nil {
		panic(err)
	}
	loop.Run()

	fmt.Println(z)
	// Output:
	// [31 207 2003 19999]
}

func ExampleLoop_Plan() {
	x := make([]float64, 1024)
	z := make([]float64, 1024)

	vars := &axpy.Vars{}
	vars.SetSeq("x", x)
	vars.SetSeq("z", z)
	vars.SetScalar("a", 0.5)

	prog, err := axpy.Compile("z += a*x")
	if err != nil {
		panic(err)
	}

	loop, err := prog.Bind(vars)
	if err != nil {
		panic(err)
	}

	fmt.Println(loop.Plan())
	// Output:
	// axpy-inplace
}
