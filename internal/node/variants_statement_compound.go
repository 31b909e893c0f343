package node

import (
	"regexp"

	"github.com/py2cpp-go/core/internal/cst"
	"github.com/py2cpp-go/core/internal/domainpath"
)

func parentPath(fullPath string) string {
	n := domainpath.Length(fullPath)
	if n <= 1 {
		return ""
	}
	return domainpath.Left(fullPath, n-1)
}

// Block is a statement list, grounded on
// original_source/py2cpp/node/definition/element.py (referenced by
// statement_compound.py; shape determined by its callers).
type Block struct {
	Base
}

// NewBlock is Block's registry Constructor.
func NewBlock(entry cst.Entry, fullPath string, q Query) Node {
	return Block{Base: NewBase(entry, "block", fullPath, q)}
}

// Statements returns the block's direct child statements, resolved
// via the owning query (expand skips un-modeled CST punctuation).
func (b Block) Statements() []Node {
	all, err := b.Query().Expand(b.FullPath())
	if err != nil {
		return nil
	}
	return all
}

// NewParameter is Parameter's registry Constructor, shared by the
// "parameters", "typed_parameter", "default_parameter" and
// "typed_default_parameter" tags.
func NewParameter(entry cst.Entry, fullPath string, q Query) Node {
	return Parameter{Base: NewBase(entry, "parameter", fullPath, q)}
}

// Parameter is one function parameter, typed or defaulted.
type Parameter struct {
	Base
}

// Symbol returns the parameter's name node.
func (p Parameter) Symbol() Node {
	children, err := p.Query().Children(p.FullPath())
	if err != nil || len(children) == 0 {
		return nil
	}
	return children[0]
}

// VarType returns the parameter's declared type annotation, or nil
// when untyped (e.g. a bare `self`). A forward-reference STRING
// annotation is reinterpreted per parseAnnotation before being
// returned.
func (p Parameter) VarType() Node {
	children, err := p.Query().Children(p.FullPath())
	if err != nil {
		return nil
	}
	for i, c := range children {
		if c.Tag() == ":" && i+1 < len(children) {
			return parseAnnotation(children[i+1])
		}
	}
	return nil
}

// IsSelf reports whether this parameter is the implicit receiver.
func (p Parameter) IsSelf() bool {
	return asTerminalText(p.Symbol()) == "self"
}

// NewDecorator is Decorator's registry Constructor.
func NewDecorator(entry cst.Entry, fullPath string, q Query) Node {
	return Decorator{Base: NewBase(entry, "decorator", fullPath, q)}
}

// Decorator wraps a recognized-but-unevaluated decorator expression
// (spec §9 supplemented feature: pass-through recognition).
type Decorator struct {
	Base
}

// Name returns the decorator's name when the decorator is a plain
// identifier (e.g. "classmethod"); a dotted or called decorator
// yields "".
func (d Decorator) Name() string {
	children, err := d.Query().Children(d.FullPath())
	if err != nil {
		return ""
	}
	for _, c := range children {
		if s, ok := c.(Symbol); ok {
			return s.ToString()
		}
	}
	return ""
}

var accessDunder = regexp.MustCompile(`^__.+__$`)

// AccessLevel derives the access level from a declared name, per spec
// §3: "__x__" -> public, "__x" -> private, "_x" -> protected, else
// public.
func AccessLevel(name string) string {
	switch {
	case accessDunder.MatchString(name):
		return "public"
	case len(name) >= 2 && name[:2] == "__":
		return "private"
	case len(name) >= 1 && name[:1] == "_":
		return "protected"
	default:
		return "public"
	}
}

// Function is a def statement, grounded on
// original_source/py2cpp/node/definition/statement_compound.py.
type Function struct {
	Base
}

// NewFunction is Function's registry Constructor.
func NewFunction(entry cst.Entry, fullPath string, q Query) Node {
	return Function{Base: NewBase(entry, "function_definition", fullPath, q)}
}

// FunctionName returns the declared name.
func (f Function) FunctionName() string {
	children, err := f.Query().Children(f.FullPath())
	if err != nil {
		return ""
	}
	idents := childrenByTag(children, "identifier")
	return asTerminalText(nthOrNil(idents, 0))
}

// Access derives this function's access level from its name.
func (f Function) Access() string {
	return AccessLevel(f.FunctionName())
}

// Decorators returns the decorators attached via an enclosing
// decorated_definition, in source order, unevaluated.
func (f Function) Decorators() []Decorator {
	pp := parentPath(f.FullPath())
	if pp == "" || !f.Query().Exists(pp) {
		return nil
	}
	parent, err := f.Query().By(pp)
	if err != nil || parent.Tag() != "decorated_definition" {
		return nil
	}
	children, err := f.Query().Children(pp)
	if err != nil {
		return nil
	}
	var out []Decorator
	for _, c := range children {
		if d, ok := c.(Decorator); ok {
			out = append(out, d)
		}
	}
	return out
}

// parameterNodes returns every direct child of the parameters list,
// whatever concrete variant it resolved to: a bare untyped parameter
// (e.g. `self`) resolves to Symbol, a typed/defaulted one to
// Parameter.
func (f Function) parameterNodes() []Node {
	paramsPath := f.FullPath() + ".parameters"
	if !f.Query().Exists(paramsPath) {
		return nil
	}
	children, err := f.Query().Children(paramsPath)
	if err != nil {
		return nil
	}
	return children
}

// Parameters returns the function's typed/defaulted parameters, in
// order. A bare untyped parameter (commonly `self`) is not a
// Parameter node; use parameterNodes/IsFirstParamSelf for it.
func (f Function) Parameters() []Parameter {
	var out []Parameter
	for _, c := range f.parameterNodes() {
		if p, ok := c.(Parameter); ok {
			out = append(out, p)
		}
	}
	return out
}

// IsFirstParamSelf reports whether the function's first declared
// parameter is the implicit receiver, regardless of whether it was
// typed (Parameter) or bare (Symbol).
func (f Function) IsFirstParamSelf() bool {
	var first Node
	for _, c := range f.parameterNodes() {
		if !isArgumentListPunctuation(c.Tag()) {
			first = c
			break
		}
	}
	switch p := first.(type) {
	case Parameter:
		return p.IsSelf()
	case Symbol:
		return p.ToString() == "self"
	default:
		return false
	}
}

// ReturnType returns the declared return type, or nil when absent. A
// forward-reference STRING annotation is reinterpreted per
// parseAnnotation before being returned.
func (f Function) ReturnType() Node {
	children, err := f.Query().Children(f.FullPath())
	if err != nil {
		return nil
	}
	idents := childrenByTag(children, "identifier")
	if len(idents) >= 2 {
		return parseAnnotation(idents[1])
	}
	generics := childrenByTag(children, "generic_type")
	if g := nthOrNil(generics, 0); g != nil {
		return parseAnnotation(g)
	}
	strs := childrenByTag(children, "string")
	return parseAnnotation(nthOrNil(strs, 0))
}

// Block returns the function body.
func (f Function) Block() Node {
	blockPath := f.FullPath() + ".block"
	n, err := f.Query().By(blockPath)
	if err != nil {
		return nil
	}
	return n
}

// ScopeName implements ScopeContributor.
func (f Function) ScopeName() string { return f.FunctionName() }

// Constructor refines Function when its name is "__init__".
type Constructor struct{ Function }

// ClassMethod refines Function when its first decorator is
// "classmethod".
type ClassMethod struct{ Function }

// Method refines Function when its first parameter is the implicit
// receiver and it is not a constructor.
type Method struct{ Function }

// NewClass is Class's registry Constructor.
func NewClass(entry cst.Entry, fullPath string, q Query) Node {
	return Class{Base: NewBase(entry, "class_definition", fullPath, q)}
}

// Class is a class statement.
type Class struct {
	Base
}

func (c Class) ClassName() string {
	children, err := c.Query().Children(c.FullPath())
	if err != nil {
		return ""
	}
	idents := childrenByTag(children, "identifier")
	return asTerminalText(nthOrNil(idents, 0))
}

// ScopeName implements ScopeContributor.
func (c Class) ScopeName() string { return c.ClassName() }

// Parents returns the declared base classes, in declaration order.
func (c Class) Parents() []Node {
	argsPath := c.FullPath() + ".argument_list"
	if !c.Query().Exists(argsPath) {
		return nil
	}
	children, err := c.Query().Children(argsPath)
	if err != nil {
		return nil
	}
	return children
}

// Block returns the class body.
func (c Class) Block() Node {
	blockPath := c.FullPath() + ".block"
	n, err := c.Query().By(blockPath)
	if err != nil {
		return nil
	}
	return n
}

// Methods returns direct Method children of the class block.
func (c Class) Methods() []Method {
	block := c.Block()
	if block == nil {
		return nil
	}
	b, ok := block.(Block)
	if !ok {
		return nil
	}
	var out []Method
	for _, s := range b.Statements() {
		if m, ok := s.(Method); ok {
			out = append(out, m)
		}
	}
	return out
}

// ClassMethods returns direct ClassMethod children of the class block.
func (c Class) ClassMethods() []ClassMethod {
	block := c.Block()
	if block == nil {
		return nil
	}
	b, ok := block.(Block)
	if !ok {
		return nil
	}
	var out []ClassMethod
	for _, s := range b.Statements() {
		if m, ok := s.(ClassMethod); ok {
			out = append(out, m)
		}
	}
	return out
}

// Constructor returns the class's __init__ method, if any.
func (c Class) Constructor() (Constructor, bool) {
	block := c.Block()
	if block == nil {
		return Constructor{}, false
	}
	b, ok := block.(Block)
	if !ok {
		return Constructor{}, false
	}
	for _, s := range b.Statements() {
		if ctor, ok := s.(Constructor); ok {
			return ctor, true
		}
	}
	return Constructor{}, false
}

// If is an if statement.
type If struct{ Base }

func NewIf(entry cst.Entry, fullPath string, q Query) Node {
	return If{Base: NewBase(entry, "if_statement", fullPath, q)}
}

// ElseIf is an elif clause.
type ElseIf struct{ Base }

func NewElseIf(entry cst.Entry, fullPath string, q Query) Node {
	return ElseIf{Base: NewBase(entry, "elif_clause", fullPath, q)}
}

// While is a while statement.
type While struct{ Base }

func NewWhile(entry cst.Entry, fullPath string, q Query) Node {
	return While{Base: NewBase(entry, "while_statement", fullPath, q)}
}

// For is a for statement.
type For struct{ Base }

func NewFor(entry cst.Entry, fullPath string, q Query) Node {
	return For{Base: NewBase(entry, "for_statement", fullPath, q)}
}
