package axpy

import (
	"fmt"
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokAssign
)

// token is one lexical unit of an assignment statement. at is the byte
// offset of the token in the source string.
type token struct {
	kind tokenKind
	at   int
	text string
	val  float64  // tokNumber
	op   AssignOp // tokAssign
	opOK bool     // tokAssign: operator is in the supported set
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// compoundOp maps the first byte of an "OP=" lexeme to its operator.
// Recognized-but-unsupported operators (%=, ^=, &=, |=) lex successfully
// so the parser can report ErrUnsupportedOperator instead of ErrSyntax.
func compoundOp(c byte) (AssignOp, bool) {
	switch c {
	case '+':
		return OpAddAssign, true
	case '-':
		return OpSubAssign, true
	case '*':
		return OpMulAssign, true
	case '/':
		return OpDivAssign, true
	}
	return 0, false
}

func isOpByte(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '^', '&', '|':
		return true
	}
	return false
}

// scan tokenizes a complete statement. The returned stream always ends
// with a tokEOF carrying the source length as its position.
func scan(src string) ([]token, error) {
	toks := make([]token, 0, 16)

	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case isIdentStart(c):
			j := i + 1
			for j < len(src) && isIdentPart(src[j]) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, at: i, text: src[i:j]})
			i = j

		case isDigit(c) || c == '.':
			j := i
			for j < len(src) {
				b := src[j]
				if isDigit(b) || b == '.' || b == 'e' || b == 'E' {
					j++
					continue
				}
				// exponent sign, e.g. 2.5e-3
				if (b == '+' || b == '-') && j > i && (src[j-1] == 'e' || src[j-1] == 'E') {
					j++
					continue
				}
				break
			}
			text := src[i:j]
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, syntaxErr(i, fmt.Sprintf("bad numeric literal %q", text))
			}
			toks = append(toks, token{kind: tokNumber, at: i, text: text, val: v})
			i = j

		case c == '(':
			toks = append(toks, token{kind: tokLParen, at: i, text: "("})
			i++

		case c == ')':
			toks = append(toks, token{kind: tokRParen, at: i, text: ")"})
			i++

		case c == '=':
			toks = append(toks, token{kind: tokAssign, at: i, text: "=", op: OpAssign, opOK: true})
			i++

		case isOpByte(c):
			if i+1 < len(src) && src[i+1] == '=' {
				op, ok := compoundOp(c)
				toks = append(toks, token{kind: tokAssign, at: i, text: src[i : i+2], op: op, opOK: ok})
				i += 2
				break
			}
			switch c {
			case '+':
				toks = append(toks, token{kind: tokPlus, at: i, text: "+"})
			case '-':
				toks = append(toks, token{kind: tokMinus, at: i, text: "-"})
			case '*':
				toks = append(toks, token{kind: tokStar, at: i, text: "*"})
			case '/':
				toks = append(toks, token{kind: tokSlash, at: i, text: "/"})
			default:
				return nil, syntaxErr(i, fmt.Sprintf("unexpected character %q", string(c)))
			}
			i++

		default:
			return nil, syntaxErr(i, fmt.Sprintf("unexpected character %q", string(c)))
		}
	}

	toks = append(toks, token{kind: tokEOF, at: len(src)})

	return toks, nil
}
