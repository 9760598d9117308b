package engine

// Op identifies how a node was produced. The set is closed: each variant's
// local gradient rule lives in backward.go, and OpPow carries its exponent
// on the node itself.
type Op int

const (
	// OpLeaf marks a node created directly from a constant; it has no
	// operands and no gradient rule.
	OpLeaf Op = iota
	// OpAdd marks a binary addition node.
	OpAdd
	// OpMul marks a binary multiplication node.
	OpMul
	// OpPow marks a unary power node with a fixed real exponent.
	OpPow
	// OpTanh marks a unary hyperbolic tangent node.
	OpTanh
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpPow:
		return "pow"
	case OpTanh:
		return "tanh"
	default:
		return "unknown"
	}
}
