package symbol_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/py2cpp-go/core/internal/analyzer"
	"github.com/py2cpp-go/core/internal/node"
	"github.com/py2cpp-go/core/internal/symbol"
)

// TestBuildRegistersClassAndModuleVariable exercises spec §4.5.1's
// table-build walk: a class's own row, and a module-scope annotated
// variable whose declared type resolves to that class.
func TestBuildRegistersClassAndModuleVariable(t *testing.T) {
	source := `class Point:
    def __init__(self, x: int, y: int) -> None:
        self.x: int = x
        self.y: int = y

origin: Point = Point(0, 0)
`
	primitives := symbol.NewPrimitives(true)
	session, err := analyzer.Analyze(context.Background(), "__main__", []byte(source), primitives)
	require.NoError(t, err)

	classRow, ok := session.Table.Lookup("__main__.Point")
	require.True(t, ok, "expected Point's class row to be registered")
	_, isClass := classRow.Types.(node.Class)
	require.True(t, isClass)

	xRow, ok := session.Table.Lookup("__main__.Point.x")
	require.True(t, ok, "expected self.x to be registered under the class scope")
	require.Equal(t, "x", xRow.Symbol)

	varRow, ok := session.Table.Lookup("__main__.origin")
	require.True(t, ok, "expected the module-scope `origin` declaration to be registered")
	_, isClassType := varRow.Types.(node.Class)
	require.True(t, isClassType, "origin's declared type should resolve to Point's own Class node")
}

// TestResolveMethodViaInheritance exercises spec §4.5.2 step 4: a
// subclass that doesn't itself declare a method resolves it by
// walking its declared parent chain.
func TestResolveMethodViaInheritance(t *testing.T) {
	source := `class Animal:
    def speak(self) -> str:
        return "..."

class Dog(Animal):
    def fetch(self) -> bool:
        return True
`
	primitives := symbol.NewPrimitives(true)
	session, err := analyzer.Analyze(context.Background(), "__main__", []byte(source), primitives)
	require.NoError(t, err)

	row, err := session.Table.Resolve("__main__", "Dog.speak", "__main__")
	require.NoError(t, err)
	require.Equal(t, "__main__.Animal.speak", row.DomainID)
}
