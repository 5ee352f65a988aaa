package axpy

import "fmt"

// Loop is a bound, specialized pass over a set of operands. Binding fixes
// the iteration length (the common prefix of all referenced sequences,
// destination included) and compiles the expression into either a fused
// whole-slice kernel or a closure-tree evaluator. Run performs one pass;
// a Loop is reusable but must not Run concurrently with itself, since the
// generic evaluator owns a scratch row.
type Loop struct {
	n    int
	plan string
	run  func()
}

// Run performs one fused element-wise pass, mutating the destination.
func (l *Loop) Run() { l.run() }

// Len returns the number of elements a pass covers.
func (l *Loop) Len() int { return l.n }

// Plan names the execution plan selected at Bind time, e.g. "scale",
// "axpy-inplace" or "generic".
func (l *Loop) Plan() string { return l.plan }

type kind int

const (
	kindScalar kind = iota
	kindSequence
)

// binder resolves leaves against the variable bindings and accumulates
// the order-stable set of distinct sequence operands. The destination is
// always cursor 0.
type binder struct {
	vars  *Vars
	names []string
	seqs  [][]float64
	index map[string]int
}

func (b *binder) addSeq(name string, s []float64) int {
	if j, ok := b.index[name]; ok {
		return j
	}

	j := len(b.seqs)
	b.index[name] = j
	b.names = append(b.names, name)
	b.seqs = append(b.seqs, s)

	return j
}

// check classifies every leaf and enforces the operand-kind rules:
// '*' needs at least one scalar side and '/' needs a scalar divisor.
// Addition and subtraction accept any mix; a scalar side broadcasts.
func (b *binder) check(n node) (kind, error) {
	switch n := n.(type) {
	case *literalNode:
		return kindScalar, nil

	case *leafNode:
		if s, ok := b.vars.seq(n.name); ok {
			b.addSeq(n.name, s)
			return kindSequence, nil
		}
		if _, ok := b.vars.scalar(n.name); ok {
			return kindScalar, nil
		}
		return 0, fmt.Errorf("%w: %q (offset %d)", ErrUnknownIdent, n.name, n.at)

	case *negateNode:
		return b.check(n.x)

	case *binaryNode:
		lk, err := b.check(n.lhs)
		if err != nil {
			return 0, err
		}
		rk, err := b.check(n.rhs)
		if err != nil {
			return 0, err
		}

		switch n.op {
		case '*':
			if lk == kindSequence && rk == kindSequence {
				return 0, operandErr(n.at, "cannot multiply two sequences")
			}
		case '/':
			if rk == kindSequence {
				return 0, operandErr(n.at, "divisor must be a scalar")
			}
		}

		if lk == kindSequence || rk == kindSequence {
			return kindSequence, nil
		}
		return kindScalar, nil
	}

	return 0, operandErr(n.pos(), "unsupported expression node")
}

// fold evaluates a pure-scalar subtree to its constant value. Scalar
// identifiers are fixed at Bind time, so folding preserves the written
// evaluation order.
func (b *binder) fold(n node) (float64, bool) {
	switch n := n.(type) {
	case *literalNode:
		return n.val, true

	case *leafNode:
		return b.vars.scalar(n.name)

	case *negateNode:
		if v, ok := b.fold(n.x); ok {
			return -v, true
		}

	case *binaryNode:
		lv, ok := b.fold(n.lhs)
		if !ok {
			return 0, false
		}
		rv, ok := b.fold(n.rhs)
		if !ok {
			return 0, false
		}
		switch n.op {
		case '+':
			return lv + rv, true
		case '-':
			return lv - rv, true
		case '*':
			return lv * rv, true
		case '/':
			return lv / rv, true
		}
	}

	return 0, false
}

type evalFn func(row []float64) float64

// compile lowers the tree to a closure per node, folding pure-scalar
// subtrees to constants. Each sequence leaf reads its slot in the
// per-iteration row, filled in lock-step by the run loop.
func (b *binder) compile(n node) evalFn {
	if c, ok := b.fold(n); ok {
		return func([]float64) float64 { return c }
	}

	switch n := n.(type) {
	case *leafNode:
		j := b.index[n.name]
		return func(row []float64) float64 { return row[j] }

	case *negateNode:
		x := b.compile(n.x)
		return func(row []float64) float64 { return -x(row) }

	case *binaryNode:
		lhs := b.compile(n.lhs)
		rhs := b.compile(n.rhs)
		switch n.op {
		case '+':
			return func(row []float64) float64 { return lhs(row) + rhs(row) }
		case '-':
			return func(row []float64) float64 { return lhs(row) - rhs(row) }
		case '*':
			return func(row []float64) float64 { return lhs(row) * rhs(row) }
		default:
			return func(row []float64) float64 { return lhs(row) / rhs(row) }
		}
	}

	// Unfoldable leaves are sequence-bound; check already rejected
	// everything else.
	return func([]float64) float64 { return 0 }
}

// Bind classifies the program's identifiers against vars, validates the
// operand-kind rules, and builds the specialized pass. The destination
// must be bound as a sequence. Unknown identifiers wrap ErrUnknownIdent,
// kind violations wrap ErrInvalidOperand, and under WithStrictLengths
// unequal sequence lengths wrap ErrLengthMismatch.
func (p *Program) Bind(vars *Vars) (*Loop, error) {
	if vars == nil {
		vars = &Vars{}
	}

	dst, ok := vars.seq(p.dest)
	if !ok {
		if _, isScalar := vars.scalar(p.dest); isScalar {
			return nil, operandErr(0, fmt.Sprintf("destination %q must be a sequence", p.dest))
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownIdent, p.dest)
	}

	b := &binder{vars: vars, index: make(map[string]int)}
	b.addSeq(p.dest, dst)

	if _, err := b.check(p.root); err != nil {
		return nil, err
	}

	// Lock-step length: the common prefix of all distinct sequence
	// operands, destination included.
	n := len(dst)
	for _, s := range b.seqs {
		if len(s) < n {
			n = len(s)
		}
	}

	if p.cfg.strictLengths {
		for i, s := range b.seqs {
			if len(s) != len(dst) {
				return nil, fmt.Errorf("%w: %q has %d elements, %q has %d",
					ErrLengthMismatch, b.names[i], len(s), p.dest, len(dst))
			}
		}
	}

	l := &Loop{n: n}
	if p.bindFast(l, b, n) {
		return l, nil
	}

	p.bindGeneric(l, b, n)

	return l, nil
}

// bindGeneric builds the fallback evaluator: one row slot per distinct
// sequence operand, loaded in lock-step each iteration. All element reads
// happen before the single write to dst[i], so self-referential updates
// are correct in place and no iteration observes a later iteration's
// write.
func (p *Program) bindGeneric(l *Loop, b *binder, n int) {
	eval := b.compile(p.root)

	seqs := make([][]float64, len(b.seqs))
	for j, s := range b.seqs {
		seqs[j] = s[:n]
	}
	dst := seqs[0]
	row := make([]float64, len(seqs))
	op := p.op

	l.plan = "generic"
	l.run = func() {
		for i := range dst {
			for j, s := range seqs {
				row[j] = s[i]
			}
			v := eval(row)
			switch op {
			case OpAssign:
				dst[i] = v
			case OpAddAssign:
				dst[i] += v
			case OpSubAssign:
				dst[i] -= v
			case OpMulAssign:
				dst[i] *= v
			case OpDivAssign:
				dst[i] /= v
			}
		}
	}
}
