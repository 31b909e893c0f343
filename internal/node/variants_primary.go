package node

import "github.com/py2cpp-go/core/internal/cst"

// Symbol is a bare name reference (identifier), grounded on
// original_source/py2cpp/node/definition/primary.py (referenced from
// classify.py/query.py; not itself in the retrieved file set, but its
// shape is fully determined by its callers).
type Symbol struct {
	Base
	proxy cst.Proxy
}

func NewSymbol(proxy cst.Proxy) Constructor {
	return func(entry cst.Entry, fullPath string, q Query) Node {
		return Symbol{Base: NewBase(entry, proxy.Tag(entry), fullPath, q), proxy: proxy}
	}
}

// ToString returns the identifier text.
func (s Symbol) ToString() string {
	return s.proxy.Value(s.entry)
}

// TextSymbol is a name recovered from a forward-reference STRING
// annotation (e.g. the "V" in `o: "V | float"`), rather than from its
// own identifier entry; it shares the owning Literal's Base so its
// FullPath/Entry still address the annotation text it came from (spec
// §9's union-handling open question, resolved in DESIGN.md).
type TextSymbol struct {
	Base
	text string
}

// ToString returns the recovered name.
func (t TextSymbol) ToString() string {
	return t.text
}

// This is the `self` receiver reference.
type This struct {
	Base
}

func NewThis(entry cst.Entry, fullPath string, q Query) Node {
	return This{Base: NewBase(entry, "identifier", fullPath, q)}
}

// ThisVar is a member access rooted at `self` (e.g. self.n), realized
// by Attribute-tagged entries whose object is `self`.
type ThisVar struct {
	Base
	proxy cst.Proxy
}

func NewThisVar(proxy cst.Proxy) Constructor {
	return func(entry cst.Entry, fullPath string, q Query) Node {
		return ThisVar{Base: NewBase(entry, "attribute", fullPath, q), proxy: proxy}
	}
}

// Member returns the attribute name (the part after `self.`).
func (t ThisVar) Member() string {
	children := t.proxy.Children(t.entry)
	if len(children) == 0 {
		return ""
	}
	last := children[len(children)-1]
	return t.proxy.Value(last)
}

// Indexer is a subscript expression `a[k]`.
type Indexer struct {
	Base
	Container Node
	Key       Node
}

// subscriptPunctuation is tree-sitter-python's anonymous tokens inside
// a `subscript` node; everything else is the container (first child)
// or the key (first remaining child).
func isSubscriptPunctuation(tag string) bool {
	switch tag {
	case "[", "]", ",":
		return true
	default:
		return false
	}
}

// NewIndexer is Indexer's registry Constructor: container is the first
// child, key the first non-punctuation child after it.
func NewIndexer(entry cst.Entry, fullPath string, q Query) Node {
	base := NewBase(entry, "subscript", fullPath, q)
	children, err := q.Children(fullPath)
	if err != nil || len(children) == 0 {
		return Indexer{Base: base}
	}
	idx := Indexer{Base: base, Container: children[0]}
	for _, c := range children[1:] {
		if isSubscriptPunctuation(c.Tag()) {
			continue
		}
		idx.Key = c
		break
	}
	return idx
}

// GenericType is a parameterized type reference, e.g. list[int]. Symbol
// is the base type name (e.g. "list"); TypeArgs holds every type
// parameter in declaration order; ValueType is the last of them, the
// one an Indexer's result resolves against (for Dict, KeyType carries
// the other parameter).
type GenericType struct {
	Base
	Symbol    Node
	ValueType Node
	TypeArgs  []Node
}

// genericTypeParameterPunctuation is tree-sitter-python's anonymous
// tokens inside a `type_parameter` node.
func isTypeParameterPunctuation(tag string) bool {
	switch tag {
	case "[", "]", ",":
		return true
	default:
		return false
	}
}

// NewGenericType is GenericType's registry Constructor: the base name
// is the first child, its type_parameter sibling (if any) supplies
// TypeArgs.
func NewGenericType(entry cst.Entry, fullPath string, q Query) Node {
	base := NewBase(entry, "generic_type", fullPath, q)
	children, err := q.Children(fullPath)
	if err != nil || len(children) == 0 {
		return GenericType{Base: base}
	}
	g := GenericType{Base: base, Symbol: children[0]}
	if len(children) > 1 {
		if tpChildren, err := q.Children(children[1].FullPath()); err == nil {
			for _, c := range tpChildren {
				if isTypeParameterPunctuation(c.Tag()) {
					continue
				}
				g.TypeArgs = append(g.TypeArgs, c)
			}
		}
	}
	if n := len(g.TypeArgs); n > 0 {
		g.ValueType = g.TypeArgs[n-1]
	}
	return g
}

// ListType refines GenericType whose symbol is "list".
type ListType struct{ GenericType }

// DictType refines GenericType whose symbol is "dict"; carries both
// the key and value type symbols.
type DictType struct {
	GenericType
	KeyType Node
}

// UnionType refines GenericType for a `typing.Union[...]` annotation;
// inference never reads it as an rvalue (spec §4.5.3, §9 open
// question), but declarations (e.g. a dunder method's second
// parameter) destructure it via Types.
type UnionType struct {
	GenericType
	Types []Node
}

// FuncCall is a call expression: Callee is the first child, Arguments
// wrap the argument_list's non-punctuation children.
type FuncCall struct {
	Base
	Callee    Node
	Arguments []Node
}

func isArgumentListPunctuation(tag string) bool {
	switch tag {
	case "(", ")", ",":
		return true
	default:
		return false
	}
}

// NewFuncCall is FuncCall's registry Constructor.
func NewFuncCall(entry cst.Entry, fullPath string, q Query) Node {
	base := NewBase(entry, "call", fullPath, q)
	children, err := q.Children(fullPath)
	if err != nil || len(children) == 0 {
		return FuncCall{Base: base}
	}
	call := FuncCall{Base: base, Callee: children[0]}
	if len(children) < 2 {
		return call
	}
	argsPath := children[1].FullPath()
	argChildren, err := q.Children(argsPath)
	if err != nil {
		return call
	}
	for _, c := range argChildren {
		if isArgumentListPunctuation(c.Tag()) {
			continue
		}
		call.Arguments = append(call.Arguments, Argument{Base: NewBase(c.Entry(), "argument", c.FullPath(), q), Value: c})
	}
	return call
}

// Super references the enclosing class's first parent.
type Super struct {
	Base
}

func NewSuper(entry cst.Entry, fullPath string, q Query) Node {
	return Super{Base: NewBase(entry, "super", fullPath, q)}
}

// Argument wraps a call argument; Value is the wrapped expression.
type Argument struct {
	Base
	Value Node
}
