package node

import "github.com/py2cpp-go/core/internal/cst"

// BinaryOperator is the common shape of every two-operand operator
// node. Operator carries the Python operator token; DunderName is its
// `__add__`-style method-dispatch name, per spec §4.5.3, grounded on
// original_source/py2cpp/node/definition/operator.py.
type BinaryOperator struct {
	Base
	Operator   string
	DunderName string
	Left       Node
	Right      Node
}

var dunderByOperator = map[string]string{
	"+":  "__add__",
	"-":  "__sub__",
	"*":  "__mul__",
	"/":  "__truediv__",
	"//": "__floordiv__",
	"%":  "__mod__",
}

// Sum refines BinaryOperator for "+"; the remaining arithmetic
// operators reuse the same shape (see DunderName).
type Sum struct{ BinaryOperator }

// NewBinaryOperator is BinaryOperator's registry Constructor: tree-
// sitter-python lays a `binary_operator` entry's children out as
// (left, operator-token, right); the operator token's own Tag is its
// literal text (the same convention Assign.elements() relies on for
// "=" / ":").
func NewBinaryOperator(entry cst.Entry, fullPath string, q Query) Node {
	base := NewBase(entry, "binary_operator", fullPath, q)
	children, err := q.Children(fullPath)
	if err != nil || len(children) < 3 {
		return BinaryOperator{Base: base}
	}
	operator := children[1].Tag()
	return BinaryOperator{
		Base:       base,
		Operator:   operator,
		DunderName: dunderByOperator[operator],
		Left:       children[0],
		Right:      children[2],
	}
}
