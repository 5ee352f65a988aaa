package axpy

// Expression nodes. A tree is built once per Compile, read by every Bind,
// and never mutated. Parenthesized groups exist only as tree shape;
// evaluation follows the shape, which is what preserves the written
// grouping bit-for-bit at run time.

type node interface {
	pos() int
}

// leafNode references an identifier. Whether it is a scalar or a sequence
// is decided at Bind time from the variable bindings.
type leafNode struct {
	name string
	at   int
}

// literalNode is a numeric constant.
type literalNode struct {
	val float64
	at  int
}

// negateNode is unary minus.
type negateNode struct {
	x  node
	at int
}

// binaryNode is one of + - * /.
type binaryNode struct {
	op  byte
	lhs node
	rhs node
	at  int
}

func (n *leafNode) pos() int    { return n.at }
func (n *literalNode) pos() int { return n.at }
func (n *negateNode) pos() int  { return n.at }
func (n *binaryNode) pos() int  { return n.at }

// walk visits n and all descendants in source order.
func walk(n node, f func(node)) {
	f(n)
	switch n := n.(type) {
	case *negateNode:
		walk(n.x, f)
	case *binaryNode:
		walk(n.lhs, f)
		walk(n.rhs, f)
	}
}
