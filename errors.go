package axpy

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax reports a malformed statement: unexpected token,
	// unbalanced parentheses, or a missing operator.
	ErrSyntax = errors.New("axpy: syntax error")

	// ErrInvalidOperand reports a sequence used where a scalar is
	// required, or vice versa (e.g. both sides of '*' are sequences).
	ErrInvalidOperand = errors.New("axpy: invalid operand kind")

	// ErrUnsupportedOperator reports an assignment operator outside
	// the supported set = += -= *= /=.
	ErrUnsupportedOperator = errors.New("axpy: unsupported assignment operator")

	// ErrTooComplex reports an expression exceeding the configured
	// nesting or term budget.
	ErrTooComplex = errors.New("axpy: expression too complex")

	// ErrUnknownIdent reports an identifier with no variable binding.
	ErrUnknownIdent = errors.New("axpy: unknown identifier")

	// ErrLengthMismatch reports unequal sequence lengths when binding
	// under WithStrictLengths.
	ErrLengthMismatch = errors.New("axpy: sequence length mismatch")
)

func syntaxErr(at int, msg string) error {
	return fmt.Errorf("%w: %s (offset %d)", ErrSyntax, msg, at)
}

func operandErr(at int, msg string) error {
	return fmt.Errorf("%w: %s (offset %d)", ErrInvalidOperand, msg, at)
}
