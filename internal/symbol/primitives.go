package symbol

import (
	"github.com/py2cpp-go/core/domain"
	"github.com/py2cpp-go/core/internal/node"
)

// LibraryModule is the synthetic module path primitives and the
// Unknown sentinel are registered under, per spec §6's reserved `$`
// prefix for synthetic library symbols.
const LibraryModule = "$"

// PrimitiveNames are the built-in types spec §4.5.1 requires a
// SymbolTable to register.
var PrimitiveNames = []string{"int", "float", "str", "bool", "tuple", "list", "dict", "None"}

// libraryQuery backs every primitive's synthetic node.Class: there is
// no CST behind e.g. "$.int", so every lookup it's asked to perform
// comes back not-found rather than panicking. Class.Parents() and
// Function.ReturnType() — the two places resolve.go/inference.go walk
// back through a Row's Types — already treat that as "no base
// classes" / "no declared return type", exactly as they would for a
// real class with an empty body.
type libraryQuery struct{}

func (libraryQuery) Exists(string) bool                      { return false }
func (libraryQuery) By(p string) (node.Node, error)          { return nil, domain.NewNotFoundError(p) }
func (libraryQuery) Parent(p string) (node.Node, error)      { return nil, domain.NewNotFoundError(p) }
func (libraryQuery) Ancestor(p, _ string) (node.Node, error) { return nil, domain.NewNotFoundError(p) }
func (libraryQuery) Siblings(p string) ([]node.Node, error)  { return nil, domain.NewNotFoundError(p) }
func (libraryQuery) Children(p string) ([]node.Node, error)  { return nil, domain.NewNotFoundError(p) }
func (libraryQuery) Expand(p string) ([]node.Node, error)    { return nil, domain.NewNotFoundError(p) }

var sharedLibraryQuery = libraryQuery{}

// asPrimitiveClass gives name a Class-shaped Types node, per spec
// §3/§8's invariant that every SymbolRow.Types is a Class or Function
// — the same way original_source/.docs/std.py models every primitive
// as a class with methods rather than a bare name. The node carries
// no CST entry, since there is no source text to point one at; its
// fullPath is the primitive's own domain_id and its Query is
// sharedLibraryQuery.
func asPrimitiveClass(domainID string) node.Node {
	return node.NewClass(nil, domainID, sharedLibraryQuery)
}

// NewPrimitives builds the shared, immutable primitive-library table.
// registerUnknown controls whether the `$.Unknown` sentinel is
// present; with it absent, an unresolved reference raises
// SymbolUnresolved instead of falling back to Unknown (spec §9's
// open-question decision, wired to the CLI's --strict flag in
// SPEC_FULL.md).
func NewPrimitives(registerUnknown bool) *Table {
	t := New(nil)
	for _, name := range PrimitiveNames {
		domainID := Join(LibraryModule, name)
		t.Insert(Row{DomainID: domainID, Scope: LibraryModule, Symbol: name, Types: asPrimitiveClass(domainID)})
	}
	if registerUnknown {
		domainID := Join(LibraryModule, "Unknown")
		t.Insert(Row{DomainID: domainID, Scope: LibraryModule, Symbol: "Unknown", Types: asPrimitiveClass(domainID)})
	}
	// `super` gets no row in this table; a `super()` call is resolved
	// by the inference engine's Super variant.
	return t
}
