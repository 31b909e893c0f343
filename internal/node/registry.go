package node

import (
	"github.com/py2cpp-go/core/domain"
	"github.com/py2cpp-go/core/internal/cst"
)

// Constructor realizes a Node from an entry given its resolved full
// path and a back-reference to the query that will own it.
type Constructor func(entry cst.Entry, fullPath string, q Query) Node

// FeaturePredicate decides whether a refinement should replace the
// base instance it was handed, per spec §4.3's actualized(via=...).
type FeaturePredicate func(base Node) bool

// refinement pairs a predicate with the constructor that replaces the
// base instance when the predicate matches.
type refinement struct {
	predicate FeaturePredicate
	replace   func(base Node) Node
}

// Registry maps entry tags to AST variant constructors, with
// declaration-ordered refinements layered on top, grounded on
// original_source/py2cpp/node/resolver.py's NodeResolver.
type Registry struct {
	ctors       map[string]Constructor
	refinements map[string][]refinement // keyed by the base variant's tag
	instances   map[string]Node         // memoized per full path
	fallback    Constructor
}

// NewRegistry returns an empty registry. Fallback constructs a
// Terminal for any tag with no registered constructor.
func NewRegistry(fallback Constructor) *Registry {
	return &Registry{
		ctors:       make(map[string]Constructor),
		refinements: make(map[string][]refinement),
		instances:   make(map[string]Node),
		fallback:    fallback,
	}
}

// Accept registers ctor as the variant constructor for tag.
func (r *Registry) Accept(tag string, ctor Constructor) {
	r.ctors[tag] = ctor
}

// Actualize registers a refinement of the variant realized from
// baseTag: when predicate holds against the freshly-built base
// instance, replace constructs the final node from it. Refinements
// for the same baseTag are tested in the order they were registered.
func (r *Registry) Actualize(baseTag string, predicate FeaturePredicate, replace func(base Node) Node) {
	r.refinements[baseTag] = append(r.refinements[baseTag], refinement{predicate: predicate, replace: replace})
}

// CanResolve reports whether tag has a registered (non-fallback)
// constructor.
func (r *Registry) CanResolve(tag string) bool {
	_, ok := r.ctors[tag]
	return ok
}

// Resolve realizes the node for entry at fullPath, memoized per path.
func (r *Registry) Resolve(entry cst.Entry, tag, fullPath string, q Query) Node {
	if inst, ok := r.instances[fullPath]; ok {
		return inst
	}

	ctor, ok := r.ctors[tag]
	if !ok {
		ctor = r.fallback
	}
	base := ctor(entry, fullPath, q)

	for _, ref := range r.refinements[tag] {
		if ref.predicate(base) {
			base = ref.replace(base)
			break
		}
	}

	r.instances[fullPath] = base
	return base
}

// Clear drops all memoized instances. Exposed for sessions that reuse
// a registry across module re-parses.
func (r *Registry) Clear() {
	r.instances = make(map[string]Node)
}

// ErrCannotResolve is an error value for an unrecognized construct. The
// registry itself never fails to resolve (it always falls back to
// Terminal), and no package in this repository returns this value.
var ErrCannotResolve = domain.NewOperationUnsupportedError("no node variant registered for tag")
