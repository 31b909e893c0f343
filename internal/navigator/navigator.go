// Package navigator implements EntryNavigator (C2): depth-first
// full-path indexing over an opaque cst.Entry tree, computed on each
// call rather than stored, grounded on
// original_source/py2cpp/ast/travarsal.py's EntryProxy/ASTFinder.
package navigator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/py2cpp-go/core/domain"
	"github.com/py2cpp-go/core/internal/cst"
)

// Navigator walks a cst.Entry tree through a cst.Proxy, indexing every
// entry by its full domain path (dot-joined tags, sibling-disambiguated
// by a trailing [index] when more than one sibling shares a tag).
type Navigator struct {
	proxy cst.Proxy
}

// New returns a Navigator backed by proxy.
func New(proxy cst.Proxy) *Navigator {
	return &Navigator{proxy: proxy}
}

var tagIndexPattern = regexp.MustCompile(`^(\w+)\[(\d+)\]$`)

// NormalizeTag appends an [index] suffix to a tag name.
func NormalizeTag(tag string, index int) string {
	return fmt.Sprintf("%s[%d]", tag, index)
}

// DenormalizeTag strips an [index] suffix, if present.
func DenormalizeTag(tag string) string {
	base, _ := BreakTag(tag)
	return base
}

// BreakTag splits a possibly-indexed tag into its base tag and index,
// returning index -1 when the tag carries no index.
func BreakTag(tag string) (string, int) {
	m := tagIndexPattern.FindStringSubmatch(tag)
	if m == nil {
		return tag, -1
	}
	idx, _ := strconv.Atoi(m[2])
	return m[1], idx
}

// EscapedPath escapes '.', '[' and ']' for use inside a regular
// expression, as NodeQuery's path-matching predicates require.
func EscapedPath(path string) string {
	r := strings.NewReplacer(".", `\.`, "[", `\[`, "]", `\]`)
	return r.Replace(path)
}

func (n *Navigator) hasChild(e cst.Entry) bool {
	return n.proxy.HasChildren(e)
}

// TagBy returns e's tag.
func (n *Navigator) TagBy(e cst.Entry) string {
	return n.proxy.Tag(e)
}

// Exists reports whether fullPath resolves to an entry under root.
func (n *Navigator) Exists(root cst.Entry, fullPath string) bool {
	_, err := n.Pluck(root, fullPath)
	return err == nil
}

// Pluck resolves fullPath (rooted at root's own tag) to its entry.
func (n *Navigator) Pluck(root cst.Entry, fullPath string) (cst.Entry, error) {
	if n.TagBy(root) == fullPath {
		return root, nil
	}
	return n.pluck(root, withoutRootPath(fullPath))
}

func withoutRootPath(fullPath string) string {
	parts := strings.SplitN(fullPath, ".", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func (n *Navigator) pluck(entry cst.Entry, path string) (cst.Entry, error) {
	if n.hasChild(entry) && path != "" {
		parts := strings.SplitN(path, ".", 2)
		orgTag, remain := parts[0], ""
		if len(parts) == 2 {
			remain = parts[1]
		}
		tag, index := BreakTag(orgTag)
		children := n.proxy.Children(entry)
		if index != -1 {
			if index >= 0 && index < len(children) {
				return n.pluck(children[index], remain)
			}
		} else {
			for _, child := range children {
				if n.TagBy(child) == tag {
					return n.pluck(child, remain)
				}
			}
		}
	} else if path == "" {
		return entry, nil
	}
	return nil, domain.NewNotFoundError(path)
}

// Tester decides whether an entry found by Find should be kept, given
// its full path.
type Tester func(entry cst.Entry, fullPath string) bool

// Find resolves via to its entry, then returns every descendant entry
// (including via itself) for which tester returns true, keyed by full
// path. depth limits descent (-1: unlimited).
func (n *Navigator) Find(root cst.Entry, via string, tester Tester, depth int) (map[string]cst.Entry, error) {
	entry, err := n.Pluck(root, via)
	if err != nil {
		return nil, err
	}
	all := n.FullPathfy(entry, via, depth)
	found := make(map[string]cst.Entry, len(all))
	for path, e := range all {
		if tester(e, path) {
			found[path] = e
		}
	}
	return found, nil
}

// FullPathfy indexes entry and every descendant (down to depth, -1 for
// unlimited) by full path. path must be the caller-supplied full path
// of entry itself; pass "" only when entry is the tree root.
func (n *Navigator) FullPathfy(entry cst.Entry, path string, depth int) map[string]cst.Entry {
	if path == "" {
		path = n.TagBy(entry)
	}

	paths := map[string]cst.Entry{path: entry}
	if depth == 0 {
		return paths
	}

	if n.hasChild(entry) {
		children := n.proxy.Children(entry)
		indexesByTag := alignedChildren(n, children)
		for index, child := range children {
			tag := n.TagBy(child)
			var childPath string
			if len(indexesByTag[tag]) == 1 {
				childPath = path + "." + tag
			} else {
				childPath = path + "." + NormalizeTag(tag, index)
			}
			for k, v := range n.FullPathfy(child, childPath, depth-1) {
				paths[k] = v
			}
		}
	}

	return paths
}

func alignedChildren(n *Navigator, children []cst.Entry) map[string][]int {
	tagOf := make([]string, len(children))
	for i, child := range children {
		tagOf[i] = n.TagBy(child)
	}
	indexesByTag := make(map[string][]int)
	for i, tag := range tagOf {
		indexesByTag[tag] = append(indexesByTag[tag], i)
	}
	return indexesByTag
}
