package node

import "github.com/py2cpp-go/core/internal/cst"

// literalCtor builds the uniform constructor shared by every literal
// variant: tag in, classification alias out. proxy lets String's
// RawText recover the quoted source text, needed to parse forward-
// reference type annotations (spec §9's "V | float" fixture).
func literalCtor(tag, classification string, proxy cst.Proxy) Constructor {
	return func(entry cst.Entry, fullPath string, q Query) Node {
		return Literal{Base: NewBase(entry, tag, fullPath, q), Classification: classification, proxy: proxy}
	}
}

// Literal is the common shape of the scalar/collection literal
// variants (Integer, Float, String, Truthy, Falsy, List, Dict).
// Classification is the primitive alias inference resolves it
// against (spec §4.5.1: "literal's class alias").
type Literal struct {
	Base
	Classification string
	proxy          cst.Proxy
}

// RawText returns the literal's source text (quotes included, for a
// string literal).
func (l Literal) RawText() string {
	if l.proxy == nil {
		return ""
	}
	return l.proxy.Value(l.entry)
}

// NewLiterals returns the tag->Constructor mapping for every literal
// variant, bound to proxy so String can recover its raw text.
func NewLiterals(proxy cst.Proxy) map[string]Constructor {
	return map[string]Constructor{
		"integer":    literalCtor("integer", "int", proxy),
		"float":      literalCtor("float", "float", proxy),
		"string":     literalCtor("string", "str", proxy),
		"true":       literalCtor("true", "bool", proxy),
		"false":      literalCtor("false", "bool", proxy),
		"list":       literalCtor("list", "list", proxy),
		"dictionary": literalCtor("dictionary", "dict", proxy),
	}
}
