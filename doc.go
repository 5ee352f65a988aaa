// Package axpy compiles linear-combination statements over float64 slices
// into single fused element-wise loops.
//
// A naive translation of z = a*x + b*y with binary operator overloads
// produces one temporary slice per operator: temp = a*x + b*y followed
// by a second pass copying temp into z. Expression-template libraries
// avoid the temporaries at the cost of a type-level machinery of their
// own. This package takes a third route: it parses the statement once,
// at construction time, and builds a specialized loop that walks every
// distinct sequence operand in lock-step and writes each result element
// directly into the destination.
//
//	prog, err := axpy.Compile("z = a*x + z - 2*y")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vars := &axpy.Vars{}
//	vars.SetScalar("a", 0.5)
//	vars.SetSeq("x", x)
//	vars.SetSeq("y", y)
//	vars.SetSeq("z", z)
//
//	loop, err := prog.Bind(vars)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loop.Run() // z[i] = a*x[i] + z[i] - 2*y[i]
//
// The destination may appear anywhere on the right-hand side: every read
// of an element happens before the write of that element within the same
// iteration, so in-place updates like z = 2*z - x need no temporary.
//
// Statements support the assignment operators = += -= *= /= and
// expressions built from numeric literals, scalar identifiers, sequence
// identifiers, unary minus, binary + and -, scalar multiplication,
// division by a scalar, and parentheses. Evaluation follows the written
// grouping exactly; terms are never reassociated, so floating-point
// results are reproducible.
//
// Common shapes (copy, scale, axpy, element-wise add and subtract, and
// their compound-assignment forms) are routed to fused whole-slice
// kernels, including the SIMD-dispatched ones from algo-vecmath. Every
// other shape runs through a closure tree built once at Bind time.
//
// Sequences of unequal length are zipped: a pass covers the common
// prefix and leaves the excess elements of longer operands untouched.
// WithStrictLengths turns that into a Bind-time error instead.
package axpy
