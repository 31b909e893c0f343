package symbol

import (
	"github.com/py2cpp-go/core/internal/node"
)

// Build walks root (a Module) in source order, inserting each class's
// or function's own row before walking its body, and constructs its Table,
// chained to primitives, per spec §4.5.1. modulePath is root's own
// module identity (spec §6: "__main__" for the analyzed root module,
// or the dotted path under which a library module was loaded).
func Build(q node.Query, root node.Module, primitives *Table) (*Table, error) {
	t := New(primitives)
	modulePath := root.ModulePath()
	if err := walkStatements(q, root.Statements(), modulePath, modulePath, nil, t); err != nil {
		return nil, err
	}
	return t, nil
}

// walkStatements processes a statement list in source order. scope is
// the ancestors-only scope these statements' declarations are keyed
// under; classScope is non-empty only while walking a constructor's
// body, and is where ThisVar (self.x) declarations are keyed.
func walkStatements(q node.Query, statements []node.Node, scope, modulePath string, classScope *string, t *Table) error {
	for _, stmt := range statements {
		if err := walkStatement(q, stmt, scope, modulePath, classScope, t); err != nil {
			return err
		}
	}
	return nil
}

func walkStatement(q node.Query, stmt node.Node, scope, modulePath string, classScope *string, t *Table) error {
	switch v := stmt.(type) {
	case node.Class:
		className := v.ClassName()
		domainID := Join(scope, className)
		t.Insert(Row{DomainID: domainID, Scope: scope, Symbol: className, Types: v, Decl: v})
		block, ok := v.Block().(node.Block)
		if !ok {
			return nil
		}
		return walkStatements(q, block.Statements(), domainID, modulePath, nil, t)

	case node.Constructor:
		if err := walkFunction(q, v.Function, scope, modulePath, t, true); err != nil {
			return err
		}
	case node.ClassMethod:
		if err := walkFunction(q, v.Function, scope, modulePath, t, false); err != nil {
			return err
		}
	case node.Method:
		if err := walkFunction(q, v.Function, scope, modulePath, t, false); err != nil {
			return err
		}
	case node.Function:
		if err := walkFunction(q, v, scope, modulePath, t, false); err != nil {
			return err
		}

	case node.AnnoAssign:
		insertAnnoAssign(q, v, scope, modulePath, classScope, t)

	case node.MoveAssign:
		// Spec §4.5.1: only bare-symbol module-scope moves register a
		// row, and only when the RHS resolves to a known type.
		if classScope != nil || scope != modulePath {
			break
		}
		if sym, ok := v.Symbol().(node.Symbol); ok {
			if row, err := ResultOf(t, q, scope, modulePath, v.Value()); err == nil {
				domainID := Join(scope, sym.ToString())
				t.Insert(Row{DomainID: domainID, Scope: scope, Symbol: sym.ToString(), Types: row.Types, Decl: v})
			}
		}
	}
	return nil
}

// walkFunction inserts the function's own row, its parameters' rows
// (keyed under the function's own domain id, the same scope its body's
// declarations are keyed under), and recurses into its
// block. isConstructor enables ThisVar collection in the body.
func walkFunction(q node.Query, f node.Function, scope, modulePath string, t *Table, isConstructor bool) error {
	name := f.FunctionName()
	domainID := Join(scope, name)
	t.Insert(Row{DomainID: domainID, Scope: scope, Symbol: name, Types: f, Decl: f})

	for _, p := range f.Parameters() {
		sym, ok := p.Symbol().(node.Symbol)
		if !ok {
			continue
		}
		paramDomainID := Join(domainID, sym.ToString())
		types := declaredTypeOf(t, q, scope, modulePath, p.VarType())
		t.Insert(Row{DomainID: paramDomainID, Scope: domainID, Symbol: sym.ToString(), Types: types, Decl: p})
	}

	block, ok := f.Block().(node.Block)
	if !ok {
		return nil
	}
	var classScope *string
	if isConstructor {
		classScope = &scope
	}
	return walkStatements(q, block.Statements(), domainID, modulePath, classScope, t)
}

// declaredTypeOf resolves varType to the Types value a declaration's
// Row should carry. A nominal annotation (a bare class/primitive
// symbol) resolves through the table to its canonical declaration
// (e.g. a class's own Class node); a GenericType-family annotation
// (list[int], dict[str, int], a Union) carries its own structure
// inline (spec §4.5.3's indexer/union rules need TypeArgs/ValueType
// directly, which the generic's own base-symbol row - "list", "dict" -
// does not itself carry) and is stored as-is instead of being
// flattened through that lookup.
func declaredTypeOf(t *Table, q node.Query, scope, modulePath string, varType node.Node) node.Node {
	if varType == nil {
		return nil
	}
	switch varType.(type) {
	case node.GenericType, node.ListType, node.DictType, node.UnionType:
		return varType
	}
	row, err := TypeOf(t, q, scope, modulePath, varType)
	if err != nil {
		return nil
	}
	return row.Types
}

// insertAnnoAssign handles both a plain annotated local (`x: T`,
// scoped to its own enclosing function/class/module) and a ThisVar
// instance-variable declaration (`self.x: T`, scoped to the
// constructor's owning class, per spec §4.5.1).
func insertAnnoAssign(q node.Query, a node.AnnoAssign, scope, modulePath string, classScope *string, t *Table) {
	types := declaredTypeOf(t, q, scope, modulePath, a.VarType())

	if tv, ok := a.Symbol().(node.ThisVar); ok && classScope != nil {
		domainID := Join(*classScope, tv.Member())
		t.Insert(Row{DomainID: domainID, Scope: *classScope, Symbol: tv.Member(), Types: types, Decl: a})
		return
	}

	if sym, ok := a.Symbol().(node.Symbol); ok {
		domainID := Join(scope, sym.ToString())
		t.Insert(Row{DomainID: domainID, Scope: scope, Symbol: sym.ToString(), Types: types, Decl: a})
	}
}
