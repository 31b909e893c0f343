// Package node implements the polymorphic AST (C3): a tag-to-variant
// registry that realizes typed nodes from cst.Entry on demand, with
// feature-based refinement, grounded on
// original_source/py2cpp/node/classify.py, node/resolver.py and the
// node/definition/*.py variant files.
package node

import "github.com/py2cpp-go/core/internal/cst"

// Node is the common interface every AST variant implements.
type Node interface {
	// FullPath is this node's unique address in the tree.
	FullPath() string
	// Tag is the entry tag this node was realized from.
	Tag() string
	// Entry is the underlying opaque CST entry.
	Entry() cst.Entry
}

// ScopeContributor is implemented by variants that introduce a scope
// level (Module, Class, Function and its refinements).
type ScopeContributor interface {
	Node
	ScopeName() string
}

// Query is the minimal surface AST nodes need from NodeQuery to
// resolve siblings/children/expand lazily, per the cyclic-reference
// design in spec §9: the query owns the node cache, nodes hold a
// non-owning reference to it.
type Query interface {
	Exists(fullPath string) bool
	By(fullPath string) (Node, error)
	Parent(fullPath string) (Node, error)
	Ancestor(fullPath, tag string) (Node, error)
	Siblings(fullPath string) ([]Node, error)
	Children(fullPath string) ([]Node, error)
	Expand(fullPath string) ([]Node, error)
}

// Base is embedded by every concrete variant; it carries the fields
// common to all nodes and the non-owning Query back-reference used for
// lazy expansion.
type Base struct {
	entry    cst.Entry
	tag      string
	fullPath string
	query    Query
}

// NewBase constructs the shared fields for a variant.
func NewBase(entry cst.Entry, tag, fullPath string, query Query) Base {
	return Base{entry: entry, tag: tag, fullPath: fullPath, query: query}
}

func (b Base) FullPath() string { return b.fullPath }
func (b Base) Tag() string      { return b.tag }
func (b Base) Entry() cst.Entry { return b.entry }

// Query exposes the back-reference for variants that need to resolve
// their own children/expansion (e.g. Module.Statements, Class.Block).
func (b Base) Query() Query { return b.query }

// Scope walks from fullPath up through resolvable ancestors, collecting
// the ScopeName of every ScopeContributor, and joins them in
// root-to-leaf order. It is how every variant computes spec §3's
// "scope is the dotted concatenation of scope-contributing ancestors".
func Scope(q Query, fullPath string) (string, error) {
	var names []string
	path := fullPath
	for {
		n, err := q.Parent(path)
		if err != nil {
			break
		}
		if sc, ok := n.(ScopeContributor); ok {
			names = append(names, sc.ScopeName())
		}
		if n.FullPath() == path {
			break
		}
		path = n.FullPath()
	}
	// names were collected leaf-to-root; reverse to root-to-leaf.
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	joined := ""
	for _, n := range names {
		if joined == "" {
			joined = n
		} else {
			joined = joined + "." + n
		}
	}
	return joined, nil
}
