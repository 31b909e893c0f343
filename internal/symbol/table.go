// Package symbol implements C5: the scoped symbol database and the
// expression type-inference engine, grounded on
// original_source/py2cpp/node/classify.py (table build + result_of
// stack machine) and original_source/py2cpp/symbol/resolver.py
// (symbol-path resolution + inheritance-chain walk).
package symbol

import (
	"github.com/py2cpp-go/core/internal/domainpath"
	"github.com/py2cpp-go/core/internal/node"
)

// Row is a SymbolRow: a declaration keyed by its scope-qualified name.
type Row struct {
	DomainID string
	Scope    string
	Symbol   string
	Types    node.Node // a Class or Function node; for a declaration annotated with a generic or union type, that annotation node; nil when the annotation does not resolve
	Decl     node.Node // the originating declaration
}

// Table is a SymbolTable: an append-only-during-build, read-only-after
// map of domain_id -> Row. A Table may chain to a parent (the
// primitive library), consulted when a lookup misses locally, per
// spec §5's "library SymbolTable rows may be shared by immutable
// reference".
type Table struct {
	rows   map[string]Row
	parent *Table
}

// New returns an empty table, optionally chained to parent (pass nil
// for the primitive library table itself).
func New(parent *Table) *Table {
	return &Table{rows: make(map[string]Row), parent: parent}
}

// Insert adds row, keyed by its DomainID. Building is the only time a
// Table is mutated.
func (t *Table) Insert(row Row) {
	t.rows[row.DomainID] = row
}

// Lookup finds a row by its exact domain_id, checking this table
// first and falling back to the parent chain.
func (t *Table) Lookup(domainID string) (Row, bool) {
	if row, ok := t.rows[domainID]; ok {
		return row, true
	}
	if t.parent != nil {
		return t.parent.Lookup(domainID)
	}
	return Row{}, false
}

// Join is domainpath.Join, re-exported for callers that build domain
// IDs against this package's Rows.
func Join(parts ...string) string { return domainpath.Join(parts...) }
