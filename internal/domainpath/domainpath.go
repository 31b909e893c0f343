// Package domainpath implements the dotted-name utility shared by the
// CST navigator, the node registry, and the symbol resolver. A domain
// path is a sequence of non-empty segments joined by '.'; it has no
// notion of what the segments mean, only how to split, join, and slice
// them.
package domainpath

import "strings"

// Elements splits origin into its non-empty dot-separated segments.
func Elements(origin string) []string {
	raw := strings.Split(origin, ".")
	elems := make([]string, 0, len(raw))
	for _, e := range raw {
		if e != "" {
			elems = append(elems, e)
		}
	}
	return elems
}

// ElemCounts returns the number of elements in origin.
func ElemCounts(origin string) int {
	return len(Elements(origin))
}

// Join joins the non-empty parts with '.'. Empty parts are skipped.
func Join(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ".")
}

// Left returns the first counts elements of origin, joined.
func Left(origin string, counts int) string {
	elems := Elements(origin)
	if counts > len(elems) {
		counts = len(elems)
	}
	if counts < 0 {
		counts = 0
	}
	return Join(elems[:counts]...)
}

// Right returns the last counts elements of origin, joined.
func Right(origin string, counts int) string {
	elems := Elements(origin)
	if counts > len(elems) {
		counts = len(elems)
	}
	if counts < 0 {
		counts = 0
	}
	return Join(elems[len(elems)-counts:]...)
}

// Length returns the number of elements in origin.
func Length(origin string) int {
	return len(Elements(origin))
}

// Root returns the first element of origin. Panics on an empty path,
// mirroring the precondition the callers (resolver, navigator) already
// establish before calling it.
func Root(origin string) string {
	return Elements(origin)[0]
}

// Parent returns the second-to-last element of origin (the direct
// parent segment's own name, not the parent's full path).
func Parent(origin string) string {
	elems := Elements(origin)
	return elems[len(elems)-2]
}
