package node

import "strings"

// parseAnnotation reinterprets a STRING-literal type annotation (a
// forward reference, e.g. `o: "V | float"` or `-> "V"`) as the
// GenericType/UnionType/TextSymbol shape its text denotes, splitting
// on "|" per PEP 604 union syntax. Any other node (an already-typed
// GenericType, a bare Symbol, nil) passes through unchanged: only a
// raw string in annotation position needs this rewrite (spec §8's
// forward-reference fixture, §9's union-handling decision).
func parseAnnotation(raw Node) Node {
	lit, ok := raw.(Literal)
	if !ok || lit.Tag() != "string" {
		return raw
	}
	text := strings.Trim(lit.RawText(), "\"'")
	parts := strings.Split(text, "|")
	if len(parts) == 1 {
		return TextSymbol{Base: lit.Base, text: strings.TrimSpace(parts[0])}
	}

	var alts []Node
	for _, p := range parts {
		alts = append(alts, TextSymbol{Base: lit.Base, text: strings.TrimSpace(p)})
	}
	return UnionType{GenericType: GenericType{Base: lit.Base, TypeArgs: alts}, Types: alts}
}

// childrenByTag filters a Children() result down to the nodes whose
// Tag matches, preserving order. Used where the grammar places a slot
// among several same-tagged siblings at a fixed occurrence (e.g. a
// function's name is the first identifier child, its optional return
// type the second).
func childrenByTag(all []Node, tag string) []Node {
	var out []Node
	for _, n := range all {
		if n.Tag() == tag {
			out = append(out, n)
		}
	}
	return out
}

func nthOrNil(nodes []Node, n int) Node {
	if n < 0 || n >= len(nodes) {
		return nil
	}
	return nodes[n]
}

func asTerminalText(n Node) string {
	if n == nil {
		return ""
	}
	if t, ok := n.(Terminal); ok {
		return t.Text()
	}
	if s, ok := n.(Symbol); ok {
		return s.ToString()
	}
	return ""
}
