package axpy

import (
	"testing"

	"github.com/jasondark/axpy/internal/testutil"
)

// bindGenericOnly bypasses fast-path selection so tests can compare the
// kernels against the closure evaluator.
func bindGenericOnly(t *testing.T, p *Program, vars *Vars) *Loop {
	t.Helper()

	dst, ok := vars.seq(p.dest)
	if !ok {
		t.Fatalf("destination %q not bound", p.dest)
	}

	b := &binder{vars: vars, index: make(map[string]int)}
	b.addSeq(p.dest, dst)

	if _, err := b.check(p.root); err != nil {
		t.Fatal(err)
	}

	n := len(dst)
	for _, s := range b.seqs {
		if len(s) < n {
			n = len(s)
		}
	}

	l := &Loop{n: n}
	p.bindGeneric(l, b, n)

	return l
}

func planVars(n int) *Vars {
	v := &Vars{}
	v.SetSeq("x", testutil.Noise(1, 2.0, n))
	v.SetSeq("y", testutil.Noise(2, 0.5, n))
	v.SetSeq("z", testutil.Ramp(0.875, n))
	v.SetScalar("a", 1.375)
	return v
}

func TestPlanSelection(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"z = x", "copy"},
		{"z = z", "copy"},
		{"z = -x", "neg"},
		{"z = a*x", "scale"},
		{"z = x*a", "scale"},
		{"z = 2*x", "scale"},
		{"z = x/2", "div"},
		{"z = x + y", "add"},
		{"z = x - y", "sub"},
		{"z += x", "add-inplace"},
		{"z -= x", "sub-inplace"},
		{"z *= x", "mul-inplace"},
		{"z /= x", "div-inplace"},
		{"z += a*x", "axpy-inplace"},
		{"z -= a*x", "axpy-inplace"},
		{"z = z + a*x", "axpy-inplace"},
		{"z = z - a*x", "axpy-inplace"},
		{"z = a*x + y", "axpy"},
		{"z = a*x + z", "axpy"},
		{"z = 2*a", "fill"},
		{"z += a", "add-scalar"},
		{"z -= a", "add-scalar"},
		{"z *= a", "scale-inplace"},
		{"z /= a", "div-scalar"},
		{"z = a*x + z - 2*y", "generic"},
		{"z = (x + y)/2", "generic"},
		{"z = x + a", "generic"},
		{"z = -a*x", "scale"}, // the negated coefficient folds to a constant
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prog, err := Compile(tt.src)
			if err != nil {
				t.Fatal(err)
			}

			loop, err := prog.Bind(planVars(16))
			if err != nil {
				t.Fatal(err)
			}

			if loop.Plan() != tt.want {
				t.Errorf("Plan(%q) = %q, want %q", tt.src, loop.Plan(), tt.want)
			}
		})
	}
}

// TestFastPathsMatchGeneric checks that every recognized shape produces
// bit-identical results to the closure evaluator.
func TestFastPathsMatchGeneric(t *testing.T) {
	srcs := []string{
		"z = x",
		"z = -x",
		"z = a*x",
		"z = x*a",
		"z = x/a",
		"z = x + y",
		"z = x - y",
		"z += x",
		"z -= x",
		"z *= x",
		"z /= x",
		"z += a*x",
		"z -= a*x",
		"z = z + a*x",
		"z = z - a*x",
		"z = a*x + y",
		"z = a*x + z",
		"z = 2*a",
		"z += a",
		"z -= a",
		"z *= a",
		"z /= a",
	}

	const n = 33

	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			prog, err := Compile(src)
			if err != nil {
				t.Fatal(err)
			}

			fastVars := planVars(n)
			genVars := planVars(n)

			fast, err := prog.Bind(fastVars)
			if err != nil {
				t.Fatal(err)
			}
			if fast.Plan() == "generic" {
				t.Fatalf("expected a fast path for %q", src)
			}

			gen := bindGenericOnly(t, prog, genVars)

			fast.Run()
			gen.Run()

			zf, _ := fastVars.seq("z")
			zg, _ := genVars.seq("z")
			for i := range zf {
				if zf[i] != zg[i] {
					t.Errorf("element %d: fast %v != generic %v", i, zf[i], zg[i])
				}
			}
		})
	}
}

func TestFastPathTruncation(t *testing.T) {
	// Fast-path kernels must honor the common-prefix policy too.
	x := []float64{1, 2, 3, 4, 5}
	z := []float64{7, 7, 7}

	vars := &Vars{}
	vars.SetSeq("x", x)
	vars.SetSeq("z", z)
	vars.SetScalar("a", 3)

	prog, err := Compile("z = a*x")
	if err != nil {
		t.Fatal(err)
	}

	loop, err := prog.Bind(vars)
	if err != nil {
		t.Fatal(err)
	}

	if loop.Plan() != "scale" {
		t.Fatalf("Plan() = %q, want %q", loop.Plan(), "scale")
	}
	if loop.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", loop.Len())
	}

	loop.Run()

	for i, want := range []float64{3, 6, 9} {
		if z[i] != want {
			t.Errorf("z[%d] = %v, want %v", i, z[i], want)
		}
	}
}

func TestEmptySequences(t *testing.T) {
	vars := &Vars{}
	vars.SetSeq("x", nil)
	vars.SetSeq("z", nil)

	prog, err := Compile("z = x + x")
	if err != nil {
		t.Fatal(err)
	}

	loop, err := prog.Bind(vars)
	if err != nil {
		t.Fatal(err)
	}

	if loop.Len() != 0 {
		t.Errorf("Len() = %d, want 0", loop.Len())
	}

	loop.Run() // zero iterations, no error, no panic
}
