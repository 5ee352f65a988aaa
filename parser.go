package axpy

import "fmt"

// parser is a bounded recursive-descent parser over the scanned token
// stream. terms counts every constructed node; depth is checked whenever
// parsing descends into a nested subexpression (parentheses or a unary
// minus chain). Exceeding either budget aborts with ErrTooComplex rather
// than truncating the expression.
//
// Grammar, lowest to highest precedence:
//
//	stmt    := ident assignOp expr
//	expr    := term { ('+' | '-') term }
//	term    := unary { ('*' | '/') unary }
//	unary   := '-' unary | primary
//	primary := number | ident | '(' expr ')'
//
// Unary minus distributes onto the factor it precedes, so -a*x parses as
// (-a)*x.
type parser struct {
	toks     []token
	pos      int
	maxDepth int
	maxTerms int
	terms    int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) spend() error {
	p.terms++
	if p.terms > p.maxTerms {
		return fmt.Errorf("%w: more than %d terms", ErrTooComplex, p.maxTerms)
	}
	return nil
}

func describe(t token) string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}

// parseStatement parses "dest OP expr" through the trailing EOF token and
// returns the destination identifier, the assignment operator, and the
// expression tree.
func (p *parser) parseStatement() (string, AssignOp, node, error) {
	destTok := p.next()
	if destTok.kind != tokIdent {
		return "", 0, nil, syntaxErr(destTok.at, "expected destination identifier, got "+describe(destTok))
	}

	opTok := p.next()
	if opTok.kind != tokAssign {
		return "", 0, nil, syntaxErr(opTok.at, "expected assignment operator, got "+describe(opTok))
	}
	if !opTok.opOK {
		return "", 0, nil, fmt.Errorf("%w: %q (offset %d)", ErrUnsupportedOperator, opTok.text, opTok.at)
	}

	root, err := p.parseExpr(0)
	if err != nil {
		return "", 0, nil, err
	}

	if t := p.peek(); t.kind != tokEOF {
		return "", 0, nil, syntaxErr(t.at, "unexpected token "+describe(t))
	}

	return destTok.text, opTok.op, root, nil
}

func (p *parser) parseExpr(depth int) (node, error) {
	if depth > p.maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrTooComplex, p.maxDepth)
	}

	lhs, err := p.parseTerm(depth)
	if err != nil {
		return nil, err
	}

	for {
		t := p.peek()
		if t.kind != tokPlus && t.kind != tokMinus {
			break
		}
		p.next()

		rhs, err := p.parseTerm(depth)
		if err != nil {
			return nil, err
		}
		if err := p.spend(); err != nil {
			return nil, err
		}

		op := byte('+')
		if t.kind == tokMinus {
			op = '-'
		}
		lhs = &binaryNode{op: op, lhs: lhs, rhs: rhs, at: t.at}
	}

	return lhs, nil
}

func (p *parser) parseTerm(depth int) (node, error) {
	lhs, err := p.parseUnary(depth)
	if err != nil {
		return nil, err
	}

	for {
		t := p.peek()
		if t.kind != tokStar && t.kind != tokSlash {
			break
		}
		p.next()

		rhs, err := p.parseUnary(depth)
		if err != nil {
			return nil, err
		}
		if err := p.spend(); err != nil {
			return nil, err
		}

		op := byte('*')
		if t.kind == tokSlash {
			op = '/'
		}
		lhs = &binaryNode{op: op, lhs: lhs, rhs: rhs, at: t.at}
	}

	return lhs, nil
}

func (p *parser) parseUnary(depth int) (node, error) {
	if depth > p.maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrTooComplex, p.maxDepth)
	}

	if t := p.peek(); t.kind == tokMinus {
		p.next()

		x, err := p.parseUnary(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := p.spend(); err != nil {
			return nil, err
		}

		return &negateNode{x: x, at: t.at}, nil
	}

	return p.parsePrimary(depth)
}

func (p *parser) parsePrimary(depth int) (node, error) {
	t := p.next()
	switch t.kind {
	case tokIdent:
		if err := p.spend(); err != nil {
			return nil, err
		}
		return &leafNode{name: t.text, at: t.at}, nil

	case tokNumber:
		if err := p.spend(); err != nil {
			return nil, err
		}
		return &literalNode{val: t.val, at: t.at}, nil

	case tokLParen:
		inner, err := p.parseExpr(depth + 1)
		if err != nil {
			return nil, err
		}
		if c := p.next(); c.kind != tokRParen {
			return nil, syntaxErr(c.at, "expected ')', got "+describe(c))
		}
		return inner, nil

	case tokEOF:
		return nil, syntaxErr(t.at, "unexpected end of expression")

	default:
		return nil, syntaxErr(t.at, "unexpected token "+describe(t))
	}
}
