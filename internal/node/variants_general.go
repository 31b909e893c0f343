package node

import "github.com/py2cpp-go/core/internal/cst"

// Module is the root AST node, grounded on
// original_source/py2cpp/node/definition/general.py. modulePath is
// supplied at construction time by the loader (it is not recoverable
// from the entry alone — it is the caller's module identity, per spec
// §6's reserved `__main__` / dotted-path identifiers).
type Module struct {
	Base
	modulePath string
}

// NewModule returns a Constructor bound to a specific module path.
func NewModule(modulePath string) Constructor {
	return func(entry cst.Entry, fullPath string, q Query) Node {
		return Module{Base: NewBase(entry, "module", fullPath, q), modulePath: modulePath}
	}
}

// ModulePath returns this module's identity key in the symbol table.
func (m Module) ModulePath() string { return m.modulePath }

// ScopeName implements ScopeContributor; a module's scope is its own
// path, not a single segment appended to a parent.
func (m Module) ScopeName() string { return m.modulePath }

// Statements returns the module's top-level statements.
func (m Module) Statements() []Node {
	all, err := m.Query().Expand(m.FullPath())
	if err != nil {
		return nil
	}
	return all
}

// DeclVars returns the module-scope AnnoAssign/MoveAssign declarations
// among its direct statements, in source order.
func (m Module) DeclVars() []Node {
	var out []Node
	for _, s := range m.Statements() {
		switch s.(type) {
		case AnnoAssign, MoveAssign:
			out = append(out, s)
		}
	}
	return out
}
