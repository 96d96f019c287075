package xenon

import (
	"github.com/lestrrat-go/xenon/internal/orderedmap"
)

// NewElement constructs an element and eagerly validates its naming
// invariants: name must resolve under scope, and every attribute name
// must resolve under the attribute scope (scope with the default
// namespace removed, since the default namespace never applies to
// unprefixed attributes). Attribute order is preserved; a duplicate
// attribute name is ErrDuplicateAttribute.
//
// No partially-valid element is ever returned: on any violation the
// result is a nil element and the error describing the first problem
// found.
func NewElement(name QName, attrs []Attr, scope Scope, children ...Node) (*Element, error) {
	if _, ok := scope.ResolveName(name); !ok {
		return nil, ErrUnboundPrefix{Name: name}
	}
	m := orderedmap.New[QName, string]()
	for _, attr := range attrs {
		if _, ok := scope.ResolveAttributeName(attr.Name); !ok {
			return nil, ErrUnboundPrefix{Name: attr.Name}
		}
		if err := m.Set(attr.Name, attr.Value); err != nil {
			return nil, ErrDuplicateAttribute{Name: attr.Name}
		}
	}
	if len(children) > 0 {
		children = append([]Node(nil), children...)
	}
	return &Element{name: name, attrs: m, scope: scope, children: children}, nil
}

func (*Element) Type() NodeType {
	return ElementNodeType
}

// Name returns the element's qualified name as written.
func (e *Element) Name() QName {
	return e.name
}

// ResolvedName returns the element's namespace-resolved name.
func (e *Element) ResolvedName() EName {
	n, _ := e.scope.ResolveName(e.name)
	return n
}

// Scope returns the absolute namespace scope in effect for the
// element.
func (e *Element) Scope() Scope {
	return e.scope
}

// AttributeScope returns the element's scope with the default
// namespace removed. This is the scope attribute names resolve under.
func (e *Element) AttributeScope() Scope {
	return e.scope.WithoutDefault()
}

// Attributes returns the attributes in document order, as written.
func (e *Element) Attributes() []Attr {
	out := make([]Attr, 0, e.attrs.Len())
	for name, value := range e.attrs.Range() {
		out = append(out, Attr{Name: name, Value: value})
	}
	return out
}

// ResolvedAttributes returns the namespace-resolved view of the
// attributes, in document order.
func (e *Element) ResolvedAttributes() []ResolvedAttr {
	out := make([]ResolvedAttr, 0, e.attrs.Len())
	for name, value := range e.attrs.Range() {
		resolved, _ := e.scope.ResolveAttributeName(name)
		out = append(out, ResolvedAttr{Name: resolved, Value: value})
	}
	return out
}

// Attr returns the value of the attribute with the given resolved
// name, and whether such an attribute exists.
func (e *Element) Attr(name EName) (string, bool) {
	for q, value := range e.attrs.Range() {
		resolved, _ := e.scope.ResolveAttributeName(q)
		if resolved == name {
			return value, true
		}
	}
	return "", false
}

// Children returns the element's children in document order. The
// returned slice is a copy; the element itself cannot be changed
// through it.
func (e *Element) Children() []Node {
	if len(e.children) == 0 {
		return nil
	}
	return append([]Node(nil), e.children...)
}

// WithAttributes returns a new element identical to e except for its
// attribute list. e is left untouched.
func (e *Element) WithAttributes(attrs ...Attr) (*Element, error) {
	return NewElement(e.name, attrs, e.scope, e.children...)
}

// WithChildren returns a new element identical to e except for its
// children. Unaffected subtrees are shared, not copied.
func (e *Element) WithChildren(children ...Node) (*Element, error) {
	return NewElement(e.name, e.Attributes(), e.scope, children...)
}
