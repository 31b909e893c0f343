package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/py2cpp-go/core/domain"
	"github.com/py2cpp-go/core/internal/symbol"
)

// Loader resolves dotted module paths to backing files under a set of
// library roots and caches their analyzed Sessions, so importing the
// same module twice from different callers reuses one SymbolTable
// (spec §6's module loader, repurposed from the teacher's
// module_analyzer.go/dependency_graph.go).
type Loader struct {
	roots      []string
	primitives *symbol.Table
	loaded     map[string]*Session
}

// NewLoader returns a Loader searching roots in order, chaining every
// analyzed module's symbol table to primitives.
func NewLoader(roots []string, primitives *symbol.Table) *Loader {
	return &Loader{roots: roots, primitives: primitives, loaded: make(map[string]*Session)}
}

// Resolve turns a dotted module path (e.g. "pkg.sub.mod") into a file
// path, trying each root in order, `<root>/<path-with-slashes>.py` and
// its `__init__.py` package form, per spec §6's reserved dotted-path
// module identifiers.
func (l *Loader) Resolve(modulePath string) (string, error) {
	rel := strings.ReplaceAll(modulePath, ".", string(filepath.Separator))
	for _, root := range l.roots {
		candidates := []string{
			filepath.Join(root, rel+".py"),
			filepath.Join(root, rel, "__init__.py"),
		}
		for _, candidate := range candidates {
			if matches, err := doublestar.FilepathGlob(candidate); err == nil && len(matches) > 0 {
				return matches[0], nil
			}
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", domain.NewNotFoundError(modulePath)
}

// Load resolves and analyzes modulePath, memoizing the result. A
// module already loaded under the same dotted path is returned from
// cache rather than re-parsed (spec §6: module identity is the dotted
// path itself; the core performs no re-export deduplication beyond
// this).
func (l *Loader) Load(ctx context.Context, modulePath string) (*Session, error) {
	if s, ok := l.loaded[modulePath]; ok {
		return s, nil
	}

	file, err := l.Resolve(modulePath)
	if err != nil {
		return nil, err
	}
	source, err := os.ReadFile(file)
	if err != nil {
		return nil, domain.NewFileNotFoundError(file, err)
	}

	session, err := Analyze(ctx, modulePath, source, l.primitives)
	if err != nil {
		return nil, err
	}
	l.loaded[modulePath] = session
	return session, nil
}

// LoadRoot analyzes source as the root module under analysis (spec §6:
// the CLI's root module is keyed "__main__"), without touching the
// loader's file-resolution cache.
func LoadRoot(ctx context.Context, source []byte, primitives *symbol.Table) (*Session, error) {
	return Analyze(ctx, "__main__", source, primitives)
}
