package axpy

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/jasondark/axpy/internal/kernel"
)

// bindFast recognizes common linear-combination shapes and routes them to
// fused whole-slice kernels, SIMD-dispatched where algo-vecmath covers
// the operation. Every kernel sees operands pre-truncated to the common
// prefix, so the zip policy is unchanged. A shape is matched only when
// the kernel reproduces the written left-to-right evaluation bit-for-bit
// and stays correct when an operand aliases the destination (all kernels
// read an index before writing it).
func (p *Program) bindFast(l *Loop, b *binder, n int) bool {
	dst := b.seqs[0][:n]

	// Pure-scalar right-hand side: broadcast across the destination.
	if c, ok := b.fold(p.root); ok {
		switch p.op {
		case OpAssign:
			l.plan = "fill"
			l.run = func() { kernel.Fill(dst, c) }
		case OpAddAssign:
			l.plan = "add-scalar"
			l.run = func() { kernel.AddScalarInPlace(dst, c) }
		case OpSubAssign:
			// a - c and a + (-c) are the same IEEE operation.
			l.plan = "add-scalar"
			l.run = func() { kernel.AddScalarInPlace(dst, -c) }
		case OpMulAssign:
			l.plan = "scale-inplace"
			l.run = func() { vecmath.ScaleBlock(dst, dst, c) }
		case OpDivAssign:
			l.plan = "div-scalar"
			l.run = func() { kernel.DivScalarInPlace(dst, c) }
		}
		return true
	}

	seq := func(nd node) ([]float64, bool) {
		lf, ok := nd.(*leafNode)
		if !ok {
			return nil, false
		}
		s, ok := b.vars.seq(lf.name)
		if !ok {
			return nil, false
		}
		return s[:n], true
	}

	// Bare sequence right-hand side.
	if x, ok := seq(p.root); ok {
		switch p.op {
		case OpAssign:
			l.plan = "copy"
			l.run = func() { copy(dst, x) }
		case OpAddAssign:
			l.plan = "add-inplace"
			l.run = func() { vecmath.AddBlockInPlace(dst, x) }
		case OpSubAssign:
			l.plan = "sub-inplace"
			l.run = func() { kernel.SubInPlace(dst, x) }
		case OpMulAssign:
			l.plan = "mul-inplace"
			l.run = func() { vecmath.MulBlockInPlace(dst, x) }
		case OpDivAssign:
			l.plan = "div-inplace"
			l.run = func() { kernel.DivInPlace(dst, x) }
		}
		return true
	}

	// Negated sequence.
	if ng, ok := p.root.(*negateNode); ok && p.op == OpAssign {
		if x, ok := seq(ng.x); ok {
			l.plan = "neg"
			l.run = func() { kernel.Neg(dst, x) }
			return true
		}
	}

	bn, ok := p.root.(*binaryNode)
	if !ok {
		return false
	}

	switch bn.op {
	case '*':
		// a*x or x*a; multiplication is IEEE-commutative.
		if a, x, ok := b.scaledTerm(bn, n); ok {
			switch p.op {
			case OpAssign:
				l.plan = "scale"
				l.run = func() { vecmath.ScaleBlock(dst, x, a) }
				return true
			case OpAddAssign:
				l.plan = "axpy-inplace"
				l.run = func() { kernel.AxpyInPlace(dst, a, x) }
				return true
			case OpSubAssign:
				// dst - a*x equals dst + (-a)*x exactly.
				l.plan = "axpy-inplace"
				l.run = func() { kernel.AxpyInPlace(dst, -a, x) }
				return true
			}
		}

	case '/':
		// x/c keeps the division; folding it into a reciprocal multiply
		// would change the rounding.
		if x, ok := seq(bn.lhs); ok && p.op == OpAssign {
			if c, ok := b.fold(bn.rhs); ok {
				l.plan = "div"
				l.run = func() { kernel.Div(dst, x, c) }
				return true
			}
		}

	case '+':
		lx, lok := seq(bn.lhs)
		rx, rok := seq(bn.rhs)
		if p.op != OpAssign {
			break
		}
		if lok && rok {
			l.plan = "add"
			l.run = func() { kernel.Add(dst, lx, rx) }
			return true
		}
		// a*x + y, where y may be the destination itself.
		if rok {
			if lbn, ok := bn.lhs.(*binaryNode); ok {
				if a, x, ok := b.scaledTerm(lbn, n); ok {
					l.plan = "axpy"
					l.run = func() { kernel.Axpy(dst, a, x, rx) }
					return true
				}
			}
		}
		// z + a*x with z the destination: identical to z += a*x.
		if lok && sameSlice(lx, dst) {
			if rbn, ok := bn.rhs.(*binaryNode); ok {
				if a, x, ok := b.scaledTerm(rbn, n); ok {
					l.plan = "axpy-inplace"
					l.run = func() { kernel.AxpyInPlace(dst, a, x) }
					return true
				}
			}
		}

	case '-':
		lx, lok := seq(bn.lhs)
		rx, rok := seq(bn.rhs)
		if p.op != OpAssign {
			break
		}
		if lok && rok {
			l.plan = "sub"
			l.run = func() { kernel.Sub(dst, lx, rx) }
			return true
		}
		// z - a*x with z the destination: identical to z -= a*x.
		if lok && sameSlice(lx, dst) {
			if rbn, ok := bn.rhs.(*binaryNode); ok {
				if a, x, ok := b.scaledTerm(rbn, n); ok {
					l.plan = "axpy-inplace"
					l.run = func() { kernel.AxpyInPlace(dst, -a, x) }
					return true
				}
			}
		}
	}

	return false
}

// scaledTerm matches a '*' node with exactly one foldable scalar side and
// a sequence leaf on the other, returning the coefficient and the
// truncated sequence.
func (b *binder) scaledTerm(bn *binaryNode, n int) (float64, []float64, bool) {
	if bn.op != '*' {
		return 0, nil, false
	}

	if a, ok := b.fold(bn.lhs); ok {
		if lf, ok := bn.rhs.(*leafNode); ok {
			if s, ok := b.vars.seq(lf.name); ok {
				return a, s[:n], true
			}
		}
	}

	if a, ok := b.fold(bn.rhs); ok {
		if lf, ok := bn.lhs.(*leafNode); ok {
			if s, ok := b.vars.seq(lf.name); ok {
				return a, s[:n], true
			}
		}
	}

	return 0, nil, false
}

// sameSlice reports whether two equal-length slices are the same view of
// the same backing array.
func sameSlice(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
