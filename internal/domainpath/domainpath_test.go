package domainpath_test

import (
	"testing"

	"github.com/py2cpp-go/core/internal/domainpath"
	"github.com/stretchr/testify/assert"
)

func TestElements(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, domainpath.Elements("a.b.c"))
	assert.Equal(t, []string{"a"}, domainpath.Elements("a"))
	assert.Empty(t, domainpath.Elements(""))
	assert.Equal(t, []string{"a", "b"}, domainpath.Elements(".a..b."))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a.b.c", domainpath.Join("a", "b", "c"))
	assert.Equal(t, "a.c", domainpath.Join("a", "", "c"))
	assert.Equal(t, "", domainpath.Join("", ""))
}

func TestLeftRight(t *testing.T) {
	assert.Equal(t, "a.b", domainpath.Left("a.b.c", 2))
	assert.Equal(t, "b.c", domainpath.Right("a.b.c", 2))
	assert.Equal(t, "a.b.c", domainpath.Left("a.b.c", 10))
	assert.Equal(t, "", domainpath.Left("a.b.c", 0))
}

func TestRootParent(t *testing.T) {
	assert.Equal(t, "a", domainpath.Root("a.b.c"))
	assert.Equal(t, "b", domainpath.Parent("a.b.c"))
	assert.Equal(t, "a", domainpath.Root("a"))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 3, domainpath.Length("a.b.c"))
	assert.Equal(t, 0, domainpath.Length(""))
}
