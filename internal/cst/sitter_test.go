package cst_test

import (
	"context"
	"testing"

	"github.com/py2cpp-go/core/internal/cst"
	"github.com/py2cpp-go/core/internal/parser"
	"github.com/stretchr/testify/require"
)

func TestSitterProxyBasics(t *testing.T) {
	p := parser.New()
	result, err := p.Parse(context.Background(), []byte("x = 1\n"))
	require.NoError(t, err)

	proxy := cst.NewSitterProxy()
	root := cst.Wrap(result.RootNode, result.SourceCode)

	require.Equal(t, "module", proxy.Tag(root))
	require.True(t, proxy.HasChildren(root))
	require.False(t, proxy.IsEmpty(root))

	children := proxy.Children(root)
	require.NotEmpty(t, children)

	assign := children[0]
	require.Equal(t, "expression_statement", proxy.Tag(assign))
}

func TestSitterProxyEmptyEntry(t *testing.T) {
	proxy := cst.NewSitterProxy()
	empty := cst.Wrap(nil, nil)

	require.Equal(t, cst.EmptyTag, proxy.Tag(empty))
	require.True(t, proxy.IsEmpty(empty))
	require.False(t, proxy.HasChildren(empty))
	require.Empty(t, proxy.Children(empty))
	require.Equal(t, "", proxy.Value(empty))
}
