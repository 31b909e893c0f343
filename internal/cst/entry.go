// Package cst defines the opaque Entry capabilities the core requires
// from a concrete syntax tree, and a tree-sitter-backed implementation
// of them. The grammar and parser themselves are external collaborators
// (see spec §6); this package only adapts their output to the shape
// EntryNavigator needs.
package cst

// Entry is an opaque CST node. Its capabilities are requested through
// a Proxy rather than through methods on Entry itself, so the core
// never depends on a concrete tree representation.
type Entry interface{}

// EmptyTag is the reserved tag carried by an empty entry (e.g. the
// optional "parameters" slot of a no-argument function definition).
const EmptyTag = "__empty__"

// Proxy exposes the six capabilities EntryNavigator needs from an
// Entry, mirroring original_source/py2cpp/ast/travarsal.py's
// EntryProxy.
type Proxy interface {
	// Tag returns the entry's grammar tag.
	Tag(e Entry) string
	// HasChildren reports whether the entry can be descended into.
	HasChildren(e Entry) bool
	// Children returns the entry's direct children in source order.
	Children(e Entry) []Entry
	// IsTerminal reports whether the entry is a terminal symbol.
	IsTerminal(e Entry) bool
	// Value returns a terminal entry's textual value.
	Value(e Entry) string
	// IsEmpty reports whether a grammar-optional entry was elided by
	// the parse (e.g. an argument-less parameter list).
	IsEmpty(e Entry) bool
}
