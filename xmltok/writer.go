package xmltok

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/lestrrat-go/xenon"
)

// WriteTokens renders a token stream as XML text. The stream is
// trusted: structural correctness is the engine's business, not the
// writer's.
func WriteTokens(out io.Writer, tokens []xenon.Token) error {
	w := &writer{out: out}
	for _, tok := range tokens {
		w.token(tok)
	}
	return w.err
}

// Write serializes the tree rooted at el as a standalone document.
func Write(out io.Writer, el *xenon.Element) error {
	tokens, err := xenon.Serialize(el, xenon.Scope{})
	if err != nil {
		return errors.Wrap(err, "failed to serialize tree")
	}
	return WriteTokens(out, tokens)
}

type writer struct {
	out io.Writer
	err error
}

func (w *writer) token(tok xenon.Token) {
	switch tok := tok.(type) {
	case xenon.StartElementToken:
		w.start(tok)
	case xenon.EndElementToken:
		w.ws("</" + tok.Name.String() + ">")
	case xenon.CharactersToken:
		if tok.CDATA {
			w.ws("<![CDATA[" + tok.Content + "]]>")
		} else {
			w.escape(tok.Content)
		}
	case xenon.CommentToken:
		w.ws("<!--" + tok.Content + "-->")
	case xenon.ProcessingInstructionToken:
		w.ws("<?" + tok.Target + " " + tok.Data + "?>")
	case xenon.EntityRefToken:
		w.ws("&" + tok.Name + ";")
	}
}

func (w *writer) start(tok xenon.StartElementToken) {
	w.ws("<" + tok.Name.String())
	for _, attr := range tok.Attrs {
		w.ws(" " + attr.Name.String() + `="`)
		w.escape(attr.Value)
		w.ws(`"`)
	}
	for _, ns := range tok.Namespaces {
		name := "xmlns"
		if ns.Prefix != "" {
			name += ":" + ns.Prefix
		}
		w.ws(" " + name + `="`)
		w.escape(ns.URI)
		w.ws(`"`)
	}
	w.ws(">")
}

func (w *writer) ws(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

func (w *writer) escape(s string) {
	if w.err != nil {
		return
	}
	w.err = xml.EscapeText(w.out, []byte(s))
}
