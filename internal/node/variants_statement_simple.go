package node

import "github.com/py2cpp-go/core/internal/cst"

// Assign is the base of the three assignment-statement refinements,
// grounded on
// original_source/py2cpp/node/definition/statement_simple.py.
type Assign struct {
	Base
}

// NewAssign is Assign's registry Constructor, shared by "assignment"
// and "augmented_assignment" tags (refined below into MoveAssign,
// AnnoAssign, AugAssign per spec §4.5.4-adjacent rules).
func NewAssign(entry cst.Entry, fullPath string, q Query) Node {
	return Assign{Base: NewBase(entry, "assignment", fullPath, q)}
}

func (a Assign) elements() []Node {
	children, err := a.Query().Children(a.FullPath())
	if err != nil {
		return nil
	}
	return children
}

// Symbol returns the assignment's lvalue (a Symbol, ThisVar or
// Indexer).
func (a Assign) Symbol() Node {
	return nthOrNil(a.elements(), 0)
}

// MoveAssign is a plain `x = value` with no type annotation. Children
// are [left, "=", right]: 3 entries including the anonymous "=" token.
type MoveAssign struct{ Assign }

// Value returns the right-hand side.
func (m MoveAssign) Value() Node {
	return nthOrNil(m.elements(), len(m.elements())-1)
}

// AnnoAssign is `x: T = value` (or `x: T` with no initializer).
// Children are [left, ":", type] or [left, ":", type, "=", value].
type AnnoAssign struct{ Assign }

// VarType returns the declared type annotation. A forward-reference
// STRING annotation is reinterpreted per parseAnnotation before being
// returned.
func (a AnnoAssign) VarType() Node {
	return parseAnnotation(nthOrNil(a.elements(), 2))
}

// Value returns the initializer, or nil when the declaration carries
// none (`x: T`).
func (a AnnoAssign) Value() Node {
	if len(a.elements()) < 5 {
		return nil
	}
	return nthOrNil(a.elements(), 4)
}

// AugAssign is `x += value` and its sibling compound operators.
type AugAssign struct{ Assign }

// Operator returns the augmented operator's terminal text (e.g. "+=").
func (a AugAssign) Operator() string {
	return asTerminalText(nthOrNil(a.elements(), 1))
}

// Value returns the right-hand side.
func (a AugAssign) Value() Node {
	return nthOrNil(a.elements(), 2)
}

// Return is a return statement.
type Return struct {
	Base
}

func NewReturn(entry cst.Entry, fullPath string, q Query) Node {
	return Return{Base: NewBase(entry, "return_statement", fullPath, q)}
}

// ReturnValue returns the returned expression, or nil for a bare
// `return` (whose only child is the "return" keyword itself).
func (r Return) ReturnValue() Node {
	children, err := r.Query().Children(r.FullPath())
	if err != nil || len(children) < 2 {
		return nil
	}
	return nthOrNil(children, 1)
}

// Import is an import statement. Modeled as a terminal per the
// original (a transpiler resolves its target through the module
// loader rather than expanding its internal grammar).
type Import struct {
	Base
}

func NewImport(entry cst.Entry, fullPath string, q Query) Node {
	return Import{Base: NewBase(entry, "import_statement", fullPath, q)}
}

// ModulePath returns the dotted module path being imported: the first
// dotted_name/identifier child, skipping the "import"/"from" keyword.
func (i Import) ModulePath() Node {
	children, err := i.Query().Children(i.FullPath())
	if err != nil {
		return nil
	}
	for _, c := range children {
		if _, ok := c.(Symbol); ok {
			return c
		}
	}
	return nil
}

// ImportSymbols returns the names imported from the module: every
// Symbol child after the module path itself (empty for a bare
// `import pkg`).
func (i Import) ImportSymbols() []Node {
	children, err := i.Query().Children(i.FullPath())
	if err != nil {
		return nil
	}
	var symbols []Node
	seenModulePath := false
	for _, c := range children {
		if _, ok := c.(Symbol); !ok {
			continue
		}
		if !seenModulePath {
			seenModulePath = true
			continue
		}
		symbols = append(symbols, c)
	}
	return symbols
}
