// Package query implements NodeQuery (C4): path/parent/ancestor/
// siblings/children/expand over the AST, grounded on
// original_source/py2cpp/node/query.py's Nodes(Query[Node]) class.
package query

import (
	"regexp"
	"sort"
	"strings"

	"github.com/py2cpp-go/core/domain"
	"github.com/py2cpp-go/core/internal/cst"
	"github.com/py2cpp-go/core/internal/domainpath"
	"github.com/py2cpp-go/core/internal/navigator"
	"github.com/py2cpp-go/core/internal/node"
)

// NodeQuery is the session's single entry point for resolving AST
// nodes from full paths. It implements node.Query so variants can
// resolve their own children lazily (spec §9's node<->query cycle).
type NodeQuery struct {
	nav      *navigator.Navigator
	registry *node.Registry
	proxy    cst.Proxy
	root     cst.Entry
}

// New returns a NodeQuery over root, backed by nav and registry.
func New(root cst.Entry, nav *navigator.Navigator, registry *node.Registry, proxy cst.Proxy) *NodeQuery {
	return &NodeQuery{nav: nav, registry: registry, proxy: proxy, root: root}
}

// Exists delegates to the navigator.
func (q *NodeQuery) Exists(fullPath string) bool {
	return q.nav.Exists(q.root, fullPath)
}

// By resolves fullPath to its entry, then to a typed node via the
// registry.
func (q *NodeQuery) By(fullPath string) (node.Node, error) {
	entry, err := q.nav.Pluck(q.root, fullPath)
	if err != nil {
		return nil, err
	}
	tag := q.nav.TagBy(entry)
	return q.registry.Resolve(entry, tag, fullPath, q), nil
}

// Parent steps left through path segments until one is resolvable,
// per spec §4.4.
func (q *NodeQuery) Parent(fullPath string) (node.Node, error) {
	length := domainpath.Length(fullPath)
	for n := length - 1; n >= 1; n-- {
		candidate := domainpath.Left(fullPath, n)
		tag, _ := navigator.BreakTag(domainpath.Right(candidate, 1))
		if q.registry.CanResolve(tag) && q.Exists(candidate) {
			return q.By(candidate)
		}
	}
	return nil, domain.NewNotFoundError(fullPath)
}

// Ancestor searches upward from fullPath for a segment whose
// un-indexed tag equals tag.
func (q *NodeQuery) Ancestor(fullPath, tag string) (node.Node, error) {
	length := domainpath.Length(fullPath)
	for n := length - 1; n >= 1; n-- {
		candidate := domainpath.Left(fullPath, n)
		segTag, _ := navigator.BreakTag(domainpath.Right(candidate, 1))
		if segTag == tag {
			return q.By(candidate)
		}
	}
	return nil, domain.NewNotFoundError(fullPath)
}

// Siblings returns every entry sharing fullPath's parent prefix, at
// the same depth, in left-to-right order.
func (q *NodeQuery) Siblings(fullPath string) ([]node.Node, error) {
	length := domainpath.Length(fullPath)
	if length < 2 {
		return nil, domain.NewNotFoundError(fullPath)
	}
	parentPrefix := domainpath.Left(fullPath, length-1)
	return q.singleSegmentMatches(parentPrefix)
}

// Children returns every entry directly under fullPath, in
// left-to-right order.
func (q *NodeQuery) Children(fullPath string) ([]node.Node, error) {
	return q.singleSegmentMatches(fullPath)
}

func (q *NodeQuery) singleSegmentMatches(prefix string) ([]node.Node, error) {
	all := q.nav.FullPathfy(q.root, "", -1)
	pattern := regexp.MustCompile(`^` + navigator.EscapedPath(prefix) + `\.[^.]+$`)

	type match struct {
		path string
		n    node.Node
	}
	var matches []match
	for path, entry := range all {
		if !pattern.MatchString(path) {
			continue
		}
		tag := q.nav.TagBy(entry)
		matches = append(matches, match{path: path, n: q.registry.Resolve(entry, tag, path, q)})
	}

	sort.Slice(matches, func(i, j int) bool { return sourceOrderLess(matches[i].path, matches[j].path) })

	out := make([]node.Node, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.n)
	}
	return out, nil
}

// segmentLess orders two single path segments (e.g. "expression_statement[2]"
// and "expression_statement[10]") by tag, then by numeric sibling
// index so that [10] sorts after [2]..[9] rather than before them
// (absent index sorts as 0, matching the single-child case).
func segmentLess(a, b string) bool {
	tagA, idxA := navigator.BreakTag(a)
	tagB, idxB := navigator.BreakTag(b)
	if tagA != tagB {
		return tagA < tagB
	}
	if idxA < 0 {
		idxA = 0
	}
	if idxB < 0 {
		idxB = 0
	}
	return idxA < idxB
}

// sourceOrderLess orders full paths sharing a common parent prefix by
// their trailing segment alone.
func sourceOrderLess(a, b string) bool {
	return segmentLess(domainpath.Right(a, 1), domainpath.Right(b, 1))
}

// fullPathLess orders full paths segment by segment (left to right),
// the same way sourceOrderLess orders a single segment, so that two
// paths diverging at any depth still sort by sibling index rather
// than by lexicographic string comparison of the whole path.
func fullPathLess(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		if as[i] == bs[i] {
			continue
		}
		return segmentLess(as[i], bs[i])
	}
	return len(as) < len(bs)
}

// Expand walks descendants of fullPath, including an entry iff (a) it
// is not fullPath itself, (b) no already-included ancestor covers it,
// and (c) its last segment's tag can_resolve OR the entry is a
// terminal whose entire relative path has no resolvable tag.
func (q *NodeQuery) Expand(fullPath string) ([]node.Node, error) {
	root, err := q.nav.Pluck(q.root, fullPath)
	if err != nil {
		return nil, err
	}
	all := q.nav.FullPathfy(root, fullPath, -1)

	type match struct {
		path string
		n    node.Node
	}
	var matches []match
	included := make(map[string]bool)

	paths := make([]string, 0, len(all))
	for p := range all {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool { return fullPathLess(paths[i], paths[j]) })

	for _, path := range paths {
		if path == fullPath {
			continue
		}
		if coveredByIncludedAncestor(path, included) {
			continue
		}
		entry := all[path]
		relative := strings.TrimPrefix(path, fullPath+".")
		segTag, _ := navigator.BreakTag(lastSegment(path))
		resolvable := q.registry.CanResolve(segTag)
		terminal := q.proxy.IsTerminal(entry) && !pathContainsResolvableTag(q.registry, relative)
		if !resolvable && !terminal {
			continue
		}
		included[path] = true
		tag := q.nav.TagBy(entry)
		matches = append(matches, match{path: path, n: q.registry.Resolve(entry, tag, path, q)})
	}

	sort.Slice(matches, func(i, j int) bool { return fullPathLess(matches[i].path, matches[j].path) })
	out := make([]node.Node, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.n)
	}
	return out, nil
}

func lastSegment(path string) string {
	parts := strings.Split(path, ".")
	return parts[len(parts)-1]
}

func coveredByIncludedAncestor(path string, included map[string]bool) bool {
	for ancestor := range included {
		if strings.HasPrefix(path, ancestor+".") {
			return true
		}
	}
	return false
}

func pathContainsResolvableTag(r *node.Registry, relative string) bool {
	for _, seg := range strings.Split(relative, ".") {
		if seg == "" {
			continue
		}
		tag, _ := navigator.BreakTag(seg)
		if r.CanResolve(tag) {
			return true
		}
	}
	return false
}
