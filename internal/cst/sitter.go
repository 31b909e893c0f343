package cst

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// sitterEntry wraps a *sitter.Node together with the source buffer it
// was parsed from, since tree-sitter nodes don't carry their own text.
// A nil node represents an elided grammar-optional slot (IsEmpty).
type sitterEntry struct {
	node   *sitter.Node
	source []byte
}

// SitterProxy adapts go-tree-sitter's Python grammar output to Proxy.
// It is the concrete EntryProxy shipped with the core; EntryNavigator
// never imports go-tree-sitter directly.
type SitterProxy struct{}

// NewSitterProxy returns the tree-sitter-backed Proxy implementation.
func NewSitterProxy() *SitterProxy {
	return &SitterProxy{}
}

// Wrap turns a tree-sitter root/child node into an Entry the rest of
// the core can navigate without knowing it is tree-sitter underneath.
func Wrap(node *sitter.Node, source []byte) Entry {
	return sitterEntry{node: node, source: source}
}

func (p *SitterProxy) Tag(e Entry) string {
	se := e.(sitterEntry)
	if se.node == nil {
		return EmptyTag
	}
	return se.node.Type()
}

func (p *SitterProxy) HasChildren(e Entry) bool {
	se := e.(sitterEntry)
	return se.node != nil && se.node.ChildCount() > 0
}

func (p *SitterProxy) Children(e Entry) []Entry {
	se := e.(sitterEntry)
	if se.node == nil {
		return nil
	}
	count := int(se.node.ChildCount())
	children := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		child := se.node.Child(i)
		if child == nil {
			children = append(children, sitterEntry{node: nil, source: se.source})
			continue
		}
		children = append(children, sitterEntry{node: child, source: se.source})
	}
	return children
}

func (p *SitterProxy) IsTerminal(e Entry) bool {
	se := e.(sitterEntry)
	return se.node != nil && se.node.ChildCount() == 0
}

func (p *SitterProxy) Value(e Entry) string {
	se := e.(sitterEntry)
	if se.node == nil {
		return ""
	}
	return se.node.Content(se.source)
}

func (p *SitterProxy) IsEmpty(e Entry) bool {
	se := e.(sitterEntry)
	return se.node == nil
}
