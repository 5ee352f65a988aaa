package axpy

import "fmt"

// AssignOp identifies the assignment operator of a statement.
type AssignOp int

const (
	OpAssign    AssignOp = iota // =
	OpAddAssign                 // +=
	OpSubAssign                 // -=
	OpMulAssign                 // *=
	OpDivAssign                 // /=
)

// String returns the operator's source spelling.
func (op AssignOp) String() string {
	switch op {
	case OpAssign:
		return "="
	case OpAddAssign:
		return "+="
	case OpSubAssign:
		return "-="
	case OpMulAssign:
		return "*="
	case OpDivAssign:
		return "/="
	}
	return fmt.Sprintf("AssignOp(%d)", int(op))
}

// Program is a compiled assignment statement. It is immutable and may be
// bound to different variable sets any number of times.
type Program struct {
	src    string
	dest   string
	op     AssignOp
	root   node
	idents []string // distinct RHS identifiers, appearance order
	self   bool     // dest appears as a read leaf
	cfg    config
}

// Compile parses "dest OP expr" into a Program. OP is one of = += -= *= /=
// and expr is built from numeric literals, identifiers, unary minus,
// binary + and -, scalar multiplication and division, and parentheses.
//
// Grammar errors wrap ErrSyntax (with the byte offset), an operator
// outside the supported set wraps ErrUnsupportedOperator, and an
// expression exceeding the nesting or term budget wraps ErrTooComplex.
// Operand kinds are not known until Bind.
func Compile(src string, opts ...Option) (*Program, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	toks, err := scan(src)
	if err != nil {
		return nil, err
	}

	p := &parser{toks: toks, maxDepth: cfg.maxDepth, maxTerms: cfg.maxTerms}

	dest, op, root, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	prog := &Program{src: src, dest: dest, op: op, root: root, cfg: cfg}

	seen := make(map[string]bool)
	walk(root, func(n node) {
		l, ok := n.(*leafNode)
		if !ok {
			return
		}
		if l.name == dest {
			prog.self = true
		}
		if !seen[l.name] {
			seen[l.name] = true
			prog.idents = append(prog.idents, l.name)
		}
	})

	return prog, nil
}

// Source returns the statement text the program was compiled from.
func (p *Program) Source() string { return p.src }

// Dest returns the destination identifier.
func (p *Program) Dest() string { return p.dest }

// Operator returns the assignment operator.
func (p *Program) Operator() AssignOp { return p.op }

// Identifiers returns the distinct right-hand-side identifiers in order
// of first appearance. Their classification happens at Bind time.
func (p *Program) Identifiers() []string {
	out := make([]string, len(p.idents))
	copy(out, p.idents)
	return out
}

// SelfReferential reports whether the destination also appears as a read
// operand on the right-hand side.
func (p *Program) SelfReferential() bool { return p.self }

// Run compiles, binds and executes src in one call. For repeated passes
// over the same operands, Compile and Bind once and reuse the Loop.
func Run(src string, vars *Vars, opts ...Option) error {
	prog, err := Compile(src, opts...)
	if err != nil {
		return err
	}

	loop, err := prog.Bind(vars)
	if err != nil {
		return err
	}

	loop.Run()

	return nil
}
