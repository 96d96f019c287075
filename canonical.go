package xenon

// CanonicalNode is the prefix-independent projection of a node, used
// for structural comparison. Canonical forms are keyed by resolved
// names only: the prefix an author happened to pick, the order
// attributes were written in, and the CDATA-vs-plain distinction are
// all erased.
type CanonicalNode interface {
	canonicalNode()
}

// CanonicalElement is the canonical form of an element: resolved name,
// an order-independent resolved attribute mapping, and the ordered
// canonical children.
type CanonicalElement struct {
	Name       EName
	Attributes map[EName]string
	Children   []CanonicalNode
}

// CanonicalText is merged, CDATA-agnostic character data.
type CanonicalText struct {
	Content string
}

// CanonicalComment is a comment retained under WithComments(true).
type CanonicalComment struct {
	Content string
}

// CanonicalPI is a processing instruction retained under
// WithProcessingInstructions(true).
type CanonicalPI struct {
	Target string
	Data   string
}

// CanonicalEntityRef is an entity reference. Entity references carry
// data semantics (they are unexpandable in this tree), so they always
// survive canonicalization.
type CanonicalEntityRef struct {
	Name string
}

func (*CanonicalElement) canonicalNode()  {}
func (CanonicalText) canonicalNode()      {}
func (CanonicalComment) canonicalNode()   {}
func (CanonicalPI) canonicalNode()        {}
func (CanonicalEntityRef) canonicalNode() {}

// Canonicalize projects a tree to its canonical form. By default
// comments and processing instructions are dropped, since they carry
// no data semantics; use WithComments and WithProcessingInstructions
// to retain them. Adjacent and empty text runs are merged away.
func Canonicalize(n Node, options ...CanonicalizeOption) CanonicalNode {
	return canonicalize(n, newCanonicalMode(options))
}

type canonicalMode struct {
	comments bool
	pi       bool
}

func newCanonicalMode(options []CanonicalizeOption) canonicalMode {
	var mode canonicalMode
	for _, o := range options {
		switch o.Ident() {
		case identKeepComments{}:
			mode.comments = o.Value().(bool)
		case identKeepPI{}:
			mode.pi = o.Value().(bool)
		}
	}
	return mode
}

func canonicalize(n Node, mode canonicalMode) CanonicalNode {
	switch n := n.(type) {
	case *Element:
		attrs := make(map[EName]string, n.attrs.Len())
		for q, v := range n.attrs.Range() {
			resolved, _ := n.scope.ResolveAttributeName(q)
			attrs[resolved] = v
		}
		children := make([]CanonicalNode, 0, len(n.children))
		for _, child := range n.children {
			if c := canonicalize(child, mode); c != nil {
				children = append(children, c)
			}
		}
		return &CanonicalElement{
			Name:       n.ResolvedName(),
			Attributes: attrs,
			Children:   mergeText(children),
		}
	case *Text:
		return CanonicalText{Content: n.content}
	case *Comment:
		if !mode.comments {
			return nil
		}
		return CanonicalComment{Content: n.content}
	case *ProcessingInstruction:
		if !mode.pi {
			return nil
		}
		return CanonicalPI{Target: n.target, Data: n.data}
	case *EntityRef:
		return CanonicalEntityRef{Name: n.name}
	}
	return nil
}

// mergeText coalesces runs of adjacent text children and drops empty
// ones.
func mergeText(children []CanonicalNode) []CanonicalNode {
	var out []CanonicalNode
	for _, c := range children {
		t, ok := c.(CanonicalText)
		if !ok {
			out = append(out, c)
			continue
		}
		if t.Content == "" {
			continue
		}
		if len(out) > 0 {
			if prev, ok := out[len(out)-1].(CanonicalText); ok {
				out[len(out)-1] = CanonicalText{Content: prev.Content + t.Content}
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Canonicalize re-applies canonical normalization to an
// already-canonical element. For a form produced by the package-level
// Canonicalize under the same options this is a no-op (modulo value
// copying): normalization is idempotent.
func (c *CanonicalElement) Canonicalize(options ...CanonicalizeOption) *CanonicalElement {
	mode := newCanonicalMode(options)
	return c.normalize(mode)
}

func (c *CanonicalElement) normalize(mode canonicalMode) *CanonicalElement {
	attrs := make(map[EName]string, len(c.Attributes))
	for k, v := range c.Attributes {
		attrs[k] = v
	}
	children := make([]CanonicalNode, 0, len(c.Children))
	for _, child := range c.Children {
		switch child := child.(type) {
		case *CanonicalElement:
			children = append(children, child.normalize(mode))
		case CanonicalComment:
			if mode.comments {
				children = append(children, child)
			}
		case CanonicalPI:
			if mode.pi {
				children = append(children, child)
			}
		default:
			children = append(children, child)
		}
	}
	return &CanonicalElement{Name: c.Name, Attributes: attrs, Children: mergeText(children)}
}

// EqualCanonical compares two canonical forms by deep value equality.
func EqualCanonical(a, b CanonicalNode) bool {
	switch a := a.(type) {
	case *CanonicalElement:
		eb, ok := b.(*CanonicalElement)
		if !ok || a.Name != eb.Name {
			return false
		}
		if len(a.Attributes) != len(eb.Attributes) || len(a.Children) != len(eb.Children) {
			return false
		}
		for k, v := range a.Attributes {
			if bv, ok := eb.Attributes[k]; !ok || bv != v {
				return false
			}
		}
		for i := range a.Children {
			if !EqualCanonical(a.Children[i], eb.Children[i]) {
				return false
			}
		}
		return true
	case CanonicalText:
		tb, ok := b.(CanonicalText)
		return ok && a == tb
	case CanonicalComment:
		cb, ok := b.(CanonicalComment)
		return ok && a == cb
	case CanonicalPI:
		pb, ok := b.(CanonicalPI)
		return ok && a == pb
	case CanonicalEntityRef:
		rb, ok := b.(CanonicalEntityRef)
		return ok && a == rb
	}
	return false
}

// ResolvedEqual reports whether two trees are equal under
// canonicalization: independent of prefix choice, attribute order and
// node identity.
func ResolvedEqual(a, b Node, options ...CanonicalizeOption) bool {
	return EqualCanonical(Canonicalize(a, options...), Canonicalize(b, options...))
}
