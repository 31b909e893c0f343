package node

import "github.com/py2cpp-go/core/internal/cst"

// NewDefaultRegistry builds the registry used by every analysis
// session: the accept_tags and actualized() refinements named in
// SPEC_FULL.md's MODULE EXPANSION / C3 section, grounded on
// original_source/py2cpp's node/definition/*.py files and the tree-
// sitter Python grammar tags the teacher's (now superseded)
// ast_builder.go enumerated.
func NewDefaultRegistry(modulePath string, proxy cst.Proxy) *Registry {
	r := NewRegistry(NewTerminal(proxy))

	r.Accept("module", NewModule(modulePath))
	r.Accept("block", NewBlock)
	r.Accept("parameters", NewParameter)
	r.Accept("typed_parameter", NewParameter)
	r.Accept("default_parameter", NewParameter)
	r.Accept("typed_default_parameter", NewParameter)
	r.Accept("decorator", NewDecorator)
	r.Accept("function_definition", NewFunction)
	r.Accept("class_definition", NewClass)
	r.Accept("if_statement", NewIf)
	r.Accept("elif_clause", NewElseIf)
	r.Accept("while_statement", NewWhile)
	r.Accept("for_statement", NewFor)
	r.Accept("assignment", NewAssign)
	r.Accept("return_statement", NewReturn)
	r.Accept("import_statement", NewImport)
	r.Accept("import_from_statement", NewImport)
	r.Accept("identifier", NewSymbol(proxy))
	r.Accept("dotted_name", NewSymbol(proxy))
	r.Accept("super", NewSuper)
	for tag, ctor := range NewLiterals(proxy) {
		r.Accept(tag, ctor)
	}
	r.Accept(cst.EmptyTag, NewEmpty)

	r.Accept("attribute", NewThisVar(proxy))
	r.Accept("subscript", NewIndexer)
	r.Accept("call", NewFuncCall)
	r.Accept("binary_operator", NewBinaryOperator)
	r.Accept("generic_type", NewGenericType)

	// Function -> Constructor/ClassMethod/Method refinement, spec
	// §4.5.4: first matching rule wins, tested in declaration order.
	r.Actualize("function_definition",
		func(base Node) bool { return base.(Function).FunctionName() == "__init__" },
		func(base Node) Node { return Constructor{Function: base.(Function)} },
	)
	r.Actualize("function_definition",
		func(base Node) bool {
			decorators := base.(Function).Decorators()
			return len(decorators) > 0 && decorators[0].Name() == "classmethod"
		},
		func(base Node) Node { return ClassMethod{Function: base.(Function)} },
	)
	r.Actualize("function_definition",
		func(base Node) bool {
			f := base.(Function)
			if f.FunctionName() == "__init__" {
				return false
			}
			return f.IsFirstParamSelf()
		},
		func(base Node) Node { return Method{Function: base.(Function)} },
	)

	// Assign -> MoveAssign/AnnoAssign refinement. Both share tree-
	// sitter's single "assignment" tag; they're told apart by whether
	// a ":" token separates the lvalue from what follows.
	r.Actualize("assignment",
		func(base Node) bool {
			els := base.(Assign).elements()
			return len(els) >= 2 && els[1].Tag() == ":"
		},
		func(base Node) Node { return AnnoAssign{Assign: base.(Assign)} },
	)
	r.Actualize("assignment",
		func(base Node) bool {
			els := base.(Assign).elements()
			return len(els) >= 2 && els[1].Tag() == "="
		},
		func(base Node) Node { return MoveAssign{Assign: base.(Assign)} },
	)
	r.Accept("augmented_assignment", NewAssign)
	r.Actualize("augmented_assignment",
		func(base Node) bool { return true },
		func(base Node) Node { return AugAssign{Assign: base.(Assign)} },
	)

	// BinaryOperator -> Sum refinement for "+"; the remaining
	// arithmetic operators are resolved by DunderName alone (spec
	// §4.5.3), with no dedicated variant.
	r.Actualize("binary_operator",
		func(base Node) bool { return base.(BinaryOperator).Operator == "+" },
		func(base Node) Node { return Sum{BinaryOperator: base.(BinaryOperator)} },
	)

	// GenericType -> ListType/DictType/UnionType refinement, keyed off
	// the base symbol name and type-argument count.
	r.Actualize("generic_type",
		func(base Node) bool {
			sym, ok := base.(GenericType).Symbol.(Symbol)
			return ok && sym.ToString() == "list"
		},
		func(base Node) Node { return ListType{GenericType: base.(GenericType)} },
	)
	r.Actualize("generic_type",
		func(base Node) bool {
			g := base.(GenericType)
			sym, ok := g.Symbol.(Symbol)
			return ok && sym.ToString() == "dict" && len(g.TypeArgs) == 2
		},
		func(base Node) Node {
			g := base.(GenericType)
			return DictType{GenericType: g, KeyType: g.TypeArgs[0]}
		},
	)
	r.Actualize("generic_type",
		func(base Node) bool {
			sym, ok := base.(GenericType).Symbol.(Symbol)
			return ok && sym.ToString() == "Union"
		},
		func(base Node) Node {
			g := base.(GenericType)
			return UnionType{GenericType: g, Types: g.TypeArgs}
		},
	)

	return r
}
