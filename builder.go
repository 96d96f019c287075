package xenon

import (
	"github.com/lestrrat-go/pdebug"
)

// Build consumes one well-formed subtree from the front of tokens and
// returns the constructed element along with the unconsumed remainder
// of the sequence. The subtree is taken to stand alone, so its root's
// parent scope is the empty scope.
func Build(tokens []Token) (*Element, []Token, error) {
	return BuildWithScope(tokens, Scope{})
}

// BuildWithScope is Build with an explicit parent scope, for token
// sequences cut out of the middle of a larger document.
//
// The engine is a single-pass recursive-descent matcher. Recursion
// depth equals document nesting depth, not token count. All
// validation is eager: a structural problem or an unresolvable name
// surfaces before any node containing it is built.
func BuildWithScope(tokens []Token, parent Scope) (*Element, []Token, error) {
	if pdebug.Enabled {
		pdebug.Printf("xenon.BuildWithScope: %d tokens", len(tokens))
	}
	if len(tokens) == 0 {
		return nil, nil, ErrMalformedInput{}
	}
	start, ok := tokens[0].(StartElementToken)
	if !ok {
		return nil, nil, ErrMalformedInput{Token: tokens[0]}
	}
	b := &builder{tokens: tokens, pos: 1}
	el, err := b.element(start, parent, 1)
	if err != nil {
		return nil, nil, err
	}
	return el, tokens[b.pos:], nil
}

type builder struct {
	tokens []Token
	pos    int
}

// element builds the element opened by start. depth is the number of
// elements open once start has been read; the matching end tag is the
// one encountered at this same depth, and any end tag that closes a
// different name there is a structural error.
func (b *builder) element(start StartElementToken, parent Scope, depth int) (*Element, error) {
	decls, err := NewDeclarations(start.Namespaces)
	if err != nil {
		return nil, err
	}
	scope := parent.Resolve(decls)
	name, ok := scope.ResolveName(start.Name)
	if !ok {
		return nil, ErrUnboundPrefix{Name: start.Name}
	}
	if pdebug.Enabled {
		pdebug.Printf("xenon.builder: <%s> at depth %d", start.Name, depth)
	}

	var children []Node
	for {
		if b.pos >= len(b.tokens) {
			return nil, ErrUnterminatedElement{Name: start.Name}
		}
		tok := b.tokens[b.pos]
		b.pos++
		switch tok := tok.(type) {
		case StartElementToken:
			child, err := b.element(tok, scope, depth+1)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		case EndElementToken:
			endName, ok := scope.ResolveName(tok.Name)
			if !ok {
				return nil, ErrUnboundPrefix{Name: tok.Name}
			}
			if endName != name {
				return nil, ErrUnmatchedEndElement{Expected: name, Got: endName, Depth: depth}
			}
			return NewElement(start.Name, start.Attrs, scope, children...)
		case CharactersToken:
			if tok.CDATA {
				children = append(children, NewCDATA(tok.Content))
			} else {
				children = append(children, NewText(tok.Content))
			}
		case CommentToken:
			children = append(children, NewComment(tok.Content))
		case ProcessingInstructionToken:
			children = append(children, NewProcessingInstruction(tok.Target, tok.Data))
		case EntityRefToken:
			children = append(children, NewEntityRef(tok.Name))
		}
	}
}
