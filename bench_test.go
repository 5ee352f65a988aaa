package axpy

import (
	"fmt"
	"testing"
)

func benchLoop(b *testing.B, src string, n int) *Loop {
	b.Helper()

	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) * 0.25
		y[i] = float64(n-i) * 0.5
		z[i] = 1
	}

	vars := &Vars{}
	vars.SetSeq("x", x)
	vars.SetSeq("y", y)
	vars.SetSeq("z", z)
	vars.SetScalar("a", 1.5)

	prog, err := Compile(src)
	if err != nil {
		b.Fatal(err)
	}

	loop, err := prog.Bind(vars)
	if err != nil {
		b.Fatal(err)
	}

	return loop
}

func BenchmarkAxpyInPlacePlan(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			loop := benchLoop(b, "z += a*x", n)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				loop.Run()
			}
		})
	}
}

func BenchmarkGenericPlan(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			loop := benchLoop(b, "z = a*x + z - 2*y", n)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				loop.Run()
			}
		})
	}
}

func BenchmarkCompile(b *testing.B) {
	b.ReportAllocs()

	for b.Loop() {
		if _, err := Compile("z = a*x + z - 2*y"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBind(b *testing.B) {
	n := 1024
	x := make([]float64, n)
	z := make([]float64, n)

	vars := &Vars{}
	vars.SetSeq("x", x)
	vars.SetSeq("z", z)
	vars.SetScalar("a", 1.5)

	prog, err := Compile("z += a*x")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		if _, err := prog.Bind(vars); err != nil {
			b.Fatal(err)
		}
	}
}
