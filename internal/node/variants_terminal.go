package node

import "github.com/py2cpp-go/core/internal/cst"

// Terminal is the fallback variant for any entry tag the registry
// does not model; it exposes only its literal text, grounded on
// original_source/py2cpp/node/definition/terminal.py.
type Terminal struct {
	Base
	proxy cst.Proxy
}

// NewTerminal is the registry's fallback Constructor.
func NewTerminal(proxy cst.Proxy) Constructor {
	return func(entry cst.Entry, fullPath string, q Query) Node {
		tag := proxy.Tag(entry)
		return Terminal{Base: NewBase(entry, tag, fullPath, q), proxy: proxy}
	}
}

// Text returns the terminal's literal value, or "" for a non-terminal
// entry resolved through the fallback (e.g. punctuation wrappers).
func (t Terminal) Text() string {
	if !t.proxy.IsTerminal(t.entry) {
		return ""
	}
	return t.proxy.Value(t.entry)
}

// Empty models the grammar-optional "__empty__" slot: present in the
// grammar, absent from this parse.
type Empty struct {
	Base
}

func NewEmpty(entry cst.Entry, fullPath string, q Query) Node {
	return Empty{Base: NewBase(entry, cst.EmptyTag, fullPath, q)}
}
