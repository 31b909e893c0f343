package navigator_test

import (
	"context"
	"testing"

	"github.com/py2cpp-go/core/internal/cst"
	"github.com/py2cpp-go/core/internal/navigator"
	"github.com/py2cpp-go/core/internal/parser"
	"github.com/stretchr/testify/require"
)

func buildRoot(t *testing.T, source string) (cst.Entry, *navigator.Navigator) {
	t.Helper()
	p := parser.New()
	result, err := p.Parse(context.Background(), []byte(source))
	require.NoError(t, err)

	proxy := cst.NewSitterProxy()
	root := cst.Wrap(result.RootNode, result.SourceCode)
	return root, navigator.New(proxy)
}

func TestBreakTag(t *testing.T) {
	tag, index := navigator.BreakTag("identifier[2]")
	require.Equal(t, "identifier", tag)
	require.Equal(t, 2, index)

	tag, index = navigator.BreakTag("identifier")
	require.Equal(t, "identifier", tag)
	require.Equal(t, -1, index)
}

func TestNormalizeDenormalize(t *testing.T) {
	require.Equal(t, "identifier[3]", navigator.NormalizeTag("identifier", 3))
	require.Equal(t, "identifier", navigator.DenormalizeTag("identifier[3]"))
}

func TestFullPathfyIndexesDuplicateSiblings(t *testing.T) {
	root, nav := buildRoot(t, "x = 1\ny = 2\n")

	all := nav.FullPathfy(root, "", -1)
	require.Contains(t, all, "module")

	found := false
	for path := range all {
		if path == "module.expression_statement[0]" || path == "module.expression_statement[1]" {
			found = true
		}
	}
	require.True(t, found, "expected indexed expression_statement entries, got %v", keys(all))
}

func TestPluckExists(t *testing.T) {
	root, nav := buildRoot(t, "x = 1\n")

	require.True(t, nav.Exists(root, "module"))
	require.False(t, nav.Exists(root, "module.nonexistent"))

	entry, err := nav.Pluck(root, "module")
	require.NoError(t, err)
	require.Equal(t, "module", nav.TagBy(entry))
}

func keys(m map[string]cst.Entry) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	return ks
}
