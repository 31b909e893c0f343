package symbol

import (
	"github.com/py2cpp-go/core/domain"
	"github.com/py2cpp-go/core/internal/node"
)

// ResultOf evaluates expr's inferred type, per spec §4.5.3's
// expression-inference rules. It walks the expression tree directly
// rather than an explicit stack (Go expressions already carry their
// operands as typed fields), but the per-variant branches below are
// exactly the handler table the stack machine would dispatch through:
// no reflection, no variant left to a catch-all beyond the terminal
// "unsupported" case.
func ResultOf(t *Table, q node.Query, scope, modulePath string, expr node.Node) (Row, error) {
	if expr == nil {
		return Row{}, domain.NewLogicError("cannot infer the type of a nil expression")
	}

	if bo, ok := asBinaryOperator(expr); ok {
		return resultOfBinaryOperator(t, q, scope, modulePath, bo)
	}

	switch v := expr.(type) {
	case node.Symbol, node.This, node.ThisVar, node.Literal, node.GenericType, node.ListType, node.DictType:
		return TypeOf(t, q, scope, modulePath, expr)

	case node.UnionType:
		_ = v
		return Row{}, domain.NewOperationUnsupportedError("a union type has no single inferred value")

	case node.Indexer:
		return resultOfIndexer(t, q, scope, modulePath, v)

	case node.FuncCall:
		return resultOfFuncCall(t, q, scope, modulePath, v)

	case node.Super:
		return resultOfSuper(t, q, modulePath, v)

	case node.Argument:
		return ResultOf(t, q, scope, modulePath, v.Value)

	default:
		return Row{}, domain.NewOperationUnsupportedError("no inference rule for this expression")
	}
}

// resultOfIndexer handles `container[key]`: the key's own type is
// irrelevant to the result (spec §4.5.3 names only the container's
// declared value type), so only the container is evaluated.
func resultOfIndexer(t *Table, q node.Query, scope, modulePath string, idx node.Indexer) (Row, error) {
	containerRow, err := ResultOf(t, q, scope, modulePath, idx.Container)
	if err != nil {
		return Row{}, err
	}
	gt, ok := asGenericType(containerRow.Types)
	if !ok || gt.ValueType == nil {
		return Row{}, domain.NewOperationUnsupportedError("indexer target has no declared collection value type")
	}
	return TypeOf(t, q, scope, modulePath, gt.ValueType)
}

func asGenericType(n node.Node) (node.GenericType, bool) {
	switch v := n.(type) {
	case node.GenericType:
		return v, true
	case node.ListType:
		return v.GenericType, true
	case node.DictType:
		return v.GenericType, true
	case node.UnionType:
		return v.GenericType, true
	default:
		return node.GenericType{}, false
	}
}

// resultOfFuncCall resolves a call expression's result type: calling a
// class (or its constructor) yields an instance of that class;
// calling anything else yields its declared return type, resolved in
// the callee's own enclosing scope.
func resultOfFuncCall(t *Table, q node.Query, scope, modulePath string, call node.FuncCall) (Row, error) {
	calleeRow, err := ResultOf(t, q, scope, modulePath, call.Callee)
	if err != nil {
		return Row{}, err
	}

	if _, ok := calleeRow.Types.(node.Class); ok {
		return calleeRow, nil
	}

	fn, ok := asFunction(calleeRow.Types)
	if !ok {
		return Row{}, domain.NewOperationUnsupportedError("callee is not callable")
	}
	// A constructor's row carries its plain Function node, so it is
	// recognized by name; its Scope is the owning class's domain id.
	if fn.FunctionName() == "__init__" {
		if row, ok := t.Lookup(calleeRow.Scope); ok {
			return row, nil
		}
		return Row{}, domain.NewSymbolUnresolvedError(scope, "constructor owner")
	}
	returnType := fn.ReturnType()
	if returnType == nil {
		return Row{}, domain.NewSymbolUnresolvedError(calleeRow.DomainID, "return type")
	}
	return TypeOf(t, q, calleeRow.Scope, modulePath, returnType)
}

func asFunction(n node.Node) (node.Function, bool) {
	switch v := n.(type) {
	case node.Function:
		return v, true
	case node.Constructor:
		return v.Function, true
	case node.ClassMethod:
		return v.Function, true
	case node.Method:
		return v.Function, true
	default:
		return node.Function{}, false
	}
}

// resultOfSuper resolves `super()` to the enclosing class's first
// declared parent.
func resultOfSuper(t *Table, q node.Query, modulePath string, s node.Super) (Row, error) {
	current, err := thisClassRow(t, q, s, modulePath)
	if err != nil {
		return Row{}, err
	}
	class, ok := current.Types.(node.Class)
	if !ok {
		return Row{}, domain.NewLogicError("super used outside a class body")
	}
	parents := class.Parents()
	if len(parents) == 0 {
		return Row{}, domain.NewSymbolUnresolvedError(current.Scope, "super")
	}
	parentName := symbolText(parents[0])
	if parentName == "" {
		return Row{}, domain.NewSymbolUnresolvedError(current.Scope, "super")
	}
	return t.resolveAt(current.Scope, parentName, modulePath)
}

func asBinaryOperator(n node.Node) (node.BinaryOperator, bool) {
	switch v := n.(type) {
	case node.BinaryOperator:
		return v, true
	case node.Sum:
		return v.BinaryOperator, true
	default:
		return node.BinaryOperator{}, false
	}
}

// resultOfBinaryOperator dispatches `left OP right` to the dunder
// method left's class declares for OP, per spec §4.5.3: the right
// operand must match the method's second parameter's declared type
// (destructuring a Union into its members), or the operator is
// rejected as OperationNotAllowed. The result is the right operand's
// own type, matching the original's method-dispatch semantics.
func resultOfBinaryOperator(t *Table, q node.Query, scope, modulePath string, bo node.BinaryOperator) (Row, error) {
	leftRow, err := ResultOf(t, q, scope, modulePath, bo.Left)
	if err != nil {
		return Row{}, err
	}
	rightRow, err := ResultOf(t, q, scope, modulePath, bo.Right)
	if err != nil {
		return Row{}, err
	}

	class, ok := leftRow.Types.(node.Class)
	if !ok {
		return Row{}, domain.NewOperationNotAllowedError("operator " + bo.Operator + " requires a class-typed left operand")
	}
	method, ok := findMethodByName(class, bo.DunderName)
	if !ok {
		return Row{}, domain.NewOperationNotAllowedError("no " + bo.DunderName + " method declared on " + leftRow.DomainID)
	}
	params := method.Parameters()
	if len(params) == 0 {
		return Row{}, domain.NewOperationNotAllowedError(bo.DunderName + " declares no operand parameter")
	}
	declaredType := params[0].VarType()
	if declaredType == nil {
		return Row{}, domain.NewOperationNotAllowedError(bo.DunderName + " operand has no declared type")
	}

	if union, ok := declaredType.(node.UnionType); ok {
		for _, alt := range union.Types {
			if operandMatches(t, q, leftRow.DomainID, modulePath, alt, rightRow) {
				return rightRow, nil
			}
		}
		return Row{}, domain.NewOperationNotAllowedError(bo.DunderName + " right operand matches no declared union member")
	}
	if operandMatches(t, q, leftRow.DomainID, modulePath, declaredType, rightRow) {
		return rightRow, nil
	}
	return Row{}, domain.NewOperationNotAllowedError(bo.DunderName + " right operand type mismatch")
}

func operandMatches(t *Table, q node.Query, scope, modulePath string, declared node.Node, operand Row) bool {
	declaredRow, err := TypeOf(t, q, scope, modulePath, declared)
	if err != nil {
		return false
	}
	return declaredRow.DomainID == operand.DomainID
}

func findMethodByName(class node.Class, dunderName string) (node.Method, bool) {
	for _, m := range class.Methods() {
		if m.FunctionName() == dunderName {
			return m, true
		}
	}
	return node.Method{}, false
}
