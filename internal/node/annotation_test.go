package node

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/py2cpp-go/core/internal/cst"
)

// stubProxy is a minimal cst.Proxy whose Value() returns a fixed
// string, enough to exercise parseAnnotation's text-splitting logic
// without a real parse.
type stubProxy struct{ text string }

func (stubProxy) Tag(cst.Entry) string           { return "string" }
func (stubProxy) HasChildren(cst.Entry) bool     { return false }
func (stubProxy) Children(cst.Entry) []cst.Entry { return nil }
func (stubProxy) IsTerminal(cst.Entry) bool      { return true }
func (p stubProxy) Value(cst.Entry) string       { return p.text }
func (stubProxy) IsEmpty(cst.Entry) bool         { return false }

func stringLiteral(text string) Literal {
	proxy := stubProxy{text: text}
	return Literal{Base: NewBase(struct{}{}, "string", "x", nil), Classification: "str", proxy: proxy}
}

func TestParseAnnotationSingleName(t *testing.T) {
	result := parseAnnotation(stringLiteral(`"Vector"`))
	sym, ok := result.(TextSymbol)
	require.True(t, ok, "expected TextSymbol, got %T", result)
	require.Equal(t, "Vector", sym.ToString())
}

func TestParseAnnotationUnion(t *testing.T) {
	result := parseAnnotation(stringLiteral(`"V | float"`))
	union, ok := result.(UnionType)
	require.True(t, ok, "expected UnionType, got %T", result)
	require.Len(t, union.Types, 2)

	first, ok := union.Types[0].(TextSymbol)
	require.True(t, ok)
	require.Equal(t, "V", first.ToString())

	second, ok := union.Types[1].(TextSymbol)
	require.True(t, ok)
	require.Equal(t, "float", second.ToString())
}

func TestParseAnnotationPassesThroughNonString(t *testing.T) {
	sym := Symbol{Base: NewBase(struct{}{}, "identifier", "x", nil)}
	require.Equal(t, Node(sym), parseAnnotation(sym))
}
