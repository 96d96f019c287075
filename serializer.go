package xenon

import (
	"github.com/lestrrat-go/pdebug"
)

// Serialize walks the tree rooted at el and produces the equivalent
// flat token sequence. parent is the scope in effect immediately
// outside el; pass the empty Scope for a standalone document.
//
// Namespace declarations are re-derived at every level as the minimal
// diff between the parent scope and the element's own scope, so every
// namespace used in a subtree is declared on the path from the root to
// its point of use, and nothing already in effect is re-declared.
// Re-parsing the result with Build yields a tree that is
// resolved-equal to el.
//
// That re-parse guarantee covers trees whose scopes only grow from
// parent to child, which is every tree Build produces. A hand-built
// tree whose child scope drops a prefix bound in its parent serializes
// to a prefix undeclaration, which Build rejects with
// ErrInvalidDeclaration.
func Serialize(el *Element, parent Scope) ([]Token, error) {
	if pdebug.Enabled {
		pdebug.Printf("xenon.Serialize: <%s>", el.Name())
	}
	return appendTokens(nil, el, parent)
}

func appendTokens(out []Token, n Node, parent Scope) ([]Token, error) {
	switch n := n.(type) {
	case *Element:
		decls := parent.Relativize(n.scope)
		attrs, err := n.serializedAttrs()
		if err != nil {
			return nil, err
		}
		out = append(out, StartElementToken{
			Name:       n.name,
			Attrs:      attrs,
			Namespaces: decls.Bindings(),
		})
		for _, child := range n.children {
			out, err = appendTokens(out, child, n.scope)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, EndElementToken{Name: n.name})
	case *Text:
		out = append(out, CharactersToken{Content: n.content, CDATA: n.cdata})
	case *Comment:
		out = append(out, CommentToken{Content: n.content})
	case *ProcessingInstruction:
		out = append(out, ProcessingInstructionToken{Target: n.target, Data: n.data})
	case *EntityRef:
		out = append(out, EntityRefToken{Name: n.name})
	}
	return out, nil
}

// serializedAttrs re-derives each attribute's qualified name from its
// resolved name against the attribute scope. The prefix as written is
// kept while it still resolves to the attribute's namespace; otherwise
// another prefix bound to that URI is substituted. For elements built
// through NewElement the original prefix is always still valid.
func (e *Element) serializedAttrs() ([]Attr, error) {
	if e.attrs.Len() == 0 {
		return nil, nil
	}
	ascope := e.AttributeScope()
	out := make([]Attr, 0, e.attrs.Len())
	for name, value := range e.attrs.Range() {
		q := name
		if name.Prefix != "" {
			resolved, _ := e.scope.ResolveAttributeName(name)
			if uri, ok := ascope.LookupPrefix(name.Prefix); !ok || uri != resolved.URI {
				p, ok := ascope.PrefixFor(resolved.URI)
				if !ok {
					return nil, ErrUnboundPrefix{Name: name}
				}
				q = QName{Prefix: p, Local: name.Local}
			}
		}
		out = append(out, Attr{Name: q, Value: value})
	}
	return out, nil
}
