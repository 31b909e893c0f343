package symbol

import (
	"github.com/py2cpp-go/core/domain"
	"github.com/py2cpp-go/core/internal/domainpath"
	"github.com/py2cpp-go/core/internal/node"
)

// Resolve implements spec §4.5.2's resolver algorithm: greedy
// longest-prefix match against (scope, module, library) in that
// precedence order, then class-member recursion, then inheritance-
// chain (MRO) fallback.
//
// Open-question decision (see DESIGN.md): classify.py's private
// __type_of checks (scope, bare-name) candidates, while spec.md names
// (scope, module) — neither alone makes "primitive lookup is total"
// (spec §8) true against a library namespaced under "$" (spec §6).
// This resolver tries a third, lowest-precedence candidate against
// LibraryModule, which is the mechanism that actually satisfies §8
// while keeping scope-over-module precedence exactly as specified.
func (t *Table) Resolve(scope, path, modulePath string) (Row, error) {
	row, err := t.resolveAt(scope, path, modulePath)
	if err != nil {
		if unk, ok := t.unknownRow(); ok {
			return unk, nil
		}
	}
	return row, err
}

// unknownRow looks up the $.Unknown sentinel (spec §9's open-question
// decision: registered by default, unregistered in --strict mode).
func (t *Table) unknownRow() (Row, bool) {
	return t.Lookup(Join(LibraryModule, "Unknown"))
}

func (t *Table) resolveAt(scope, path, modulePath string) (Row, error) {
	segments := domainpath.Elements(path)
	if len(segments) == 0 {
		return Row{}, domain.NewSymbolUnresolvedError(scope, path)
	}

	for i := len(segments); i >= 1; i-- {
		prefix := domainpath.Join(segments[:i]...)
		for _, base := range []string{scope, modulePath, LibraryModule} {
			candidate := Join(base, prefix)
			row, ok := t.Lookup(candidate)
			if !ok {
				continue
			}
			if i == len(segments) {
				return row, nil
			}
			remainder := domainpath.Join(segments[i:]...)
			return t.resolveMember(row, remainder, modulePath)
		}
	}

	return Row{}, domain.NewSymbolUnresolvedError(scope, path)
}

// resolveMember resolves remainder as a member access rooted at owner
// (spec §4.5.2 step 3), falling back to owner's inheritance chain
// (step 4) when the member isn't declared directly on owner's class.
func (t *Table) resolveMember(owner Row, remainder, modulePath string) (Row, error) {
	if row, err := t.resolveAt(owner.DomainID, remainder, modulePath); err == nil {
		return row, nil
	}

	class, ok := owner.Types.(node.Class)
	if !ok {
		return Row{}, domain.NewSymbolUnresolvedError(owner.DomainID, remainder)
	}

	for _, parent := range class.Parents() {
		parentName := symbolText(parent)
		if parentName == "" {
			continue
		}
		parentRow, err := t.resolveAt(owner.Scope, parentName, modulePath)
		if err != nil {
			continue
		}
		if row, err := t.resolveMember(parentRow, remainder, modulePath); err == nil {
			return row, nil
		}
	}

	return Row{}, domain.NewSymbolUnresolvedError(owner.DomainID, remainder)
}

// symbolText extracts the textual name from whatever node variant can
// appear where a bare symbol reference is expected.
func symbolText(n node.Node) string {
	switch v := n.(type) {
	case node.Symbol:
		return v.ToString()
	case node.TextSymbol:
		return v.ToString()
	case node.Terminal:
		return v.Text()
	default:
		return ""
	}
}

// TypeOf computes the symbol path for n (spec §4.5.2's "single
// identifier, dotted chain, or declared symbol of a GenericType /
// Literal / ClassType") and resolves it.
func TypeOf(t *Table, q node.Query, scope, modulePath string, n node.Node) (Row, error) {
	switch v := n.(type) {
	case node.Symbol:
		return t.Resolve(scope, v.ToString(), modulePath)
	case node.TextSymbol:
		return t.Resolve(scope, v.ToString(), modulePath)
	case node.This:
		return thisClassRow(t, q, n, modulePath)
	case node.ThisVar:
		owner, err := thisClassRow(t, q, n, modulePath)
		if err != nil {
			return Row{}, err
		}
		return t.resolveMember(owner, v.Member(), modulePath)
	case node.GenericType:
		return TypeOf(t, q, scope, modulePath, v.Symbol)
	case node.ListType:
		return TypeOf(t, q, scope, modulePath, v.Symbol)
	case node.DictType:
		return TypeOf(t, q, scope, modulePath, v.Symbol)
	case node.Literal:
		return t.Resolve(scope, v.Classification, modulePath)
	default:
		return Row{}, domain.NewSymbolUnresolvedError(scope, "")
	}
}

// thisClassRow finds n's enclosing class and returns its row, used to
// resolve both bare `self` and `self.member` references.
func thisClassRow(t *Table, q node.Query, n node.Node, modulePath string) (Row, error) {
	classNode, err := q.Ancestor(n.FullPath(), "class_definition")
	if err != nil {
		return Row{}, domain.NewSymbolUnresolvedError("", "self")
	}
	class := classNode.(node.Class)
	classScope, _ := node.Scope(q, class.FullPath())
	domainID := Join(classScope, class.ClassName())
	row, ok := t.Lookup(domainID)
	if !ok {
		return Row{}, domain.NewSymbolUnresolvedError(classScope, class.ClassName())
	}
	return row, nil
}
