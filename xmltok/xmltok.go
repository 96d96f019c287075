// Package xmltok bridges the encoding/xml tokenizer and a small text
// writer to the xenon token stream. The core engines never touch
// bytes; this package is the collaborator that does, in both
// directions.
package xmltok

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/lestrrat-go/xenon"
	"github.com/lestrrat-go/xenon/encoding"
)

// NewDecoder returns an encoding/xml decoder configured the way this
// package expects: non-UTF-8 documents are transcoded through the
// encoding package.
func NewDecoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.CharsetReader = encoding.NewReader
	return d
}

// ReadTokens drains d's raw token stream into xenon tokens. Raw
// tokens are used so that names arrive unresolved: the prefix as
// written lands in QName.Prefix, and namespace declaration attributes
// (xmlns, xmlns:*) are lifted out of the attribute list into
// NSBindings. The XML declaration and DTD directives are skipped.
func ReadTokens(d *xml.Decoder) ([]xenon.Token, error) {
	var out []xenon.Token
	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read token")
		}
		if t := convert(tok); t != nil {
			out = append(out, t)
		}
	}
}

func convert(tok xml.Token) xenon.Token {
	switch tok := tok.(type) {
	case xml.StartElement:
		return convertStart(tok)
	case xml.EndElement:
		return xenon.EndElementToken{Name: rawName(tok.Name)}
	case xml.CharData:
		// encoding/xml does not distinguish CDATA sections
		return xenon.CharactersToken{Content: string(tok)}
	case xml.Comment:
		return xenon.CommentToken{Content: string(tok)}
	case xml.ProcInst:
		if tok.Target == "xml" {
			return nil
		}
		return xenon.ProcessingInstructionToken{Target: tok.Target, Data: string(tok.Inst)}
	}
	return nil
}

// rawName converts a name from RawToken, where Space holds the prefix
// as written rather than a resolved URI.
func rawName(n xml.Name) xenon.QName {
	return xenon.QName{Prefix: n.Space, Local: n.Local}
}

func convertStart(tok xml.StartElement) xenon.Token {
	var attrs []xenon.Attr
	var ns []xenon.NSBinding
	for _, attr := range tok.Attr {
		switch {
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			ns = append(ns, xenon.NSBinding{URI: attr.Value})
		case attr.Name.Space == "xmlns":
			ns = append(ns, xenon.NSBinding{Prefix: attr.Name.Local, URI: attr.Value})
		default:
			attrs = append(attrs, xenon.Attr{Name: rawName(attr.Name), Value: attr.Value})
		}
	}
	return xenon.StartElementToken{Name: rawName(tok.Name), Attrs: attrs, Namespaces: ns}
}

// Parse reads one whole document and builds the tree for its root
// element. Whitespace, comments and processing instructions in the
// prolog and epilog are discarded.
func Parse(doc []byte) (*xenon.Element, error) {
	tokens, err := ReadTokens(NewDecoder(bytes.NewReader(doc)))
	if err != nil {
		return nil, err
	}
	el, _, err := xenon.Build(skipProlog(tokens))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build tree")
	}
	return el, nil
}

func skipProlog(tokens []xenon.Token) []xenon.Token {
	for len(tokens) > 0 {
		switch tok := tokens[0].(type) {
		case xenon.CharactersToken:
			if strings.TrimSpace(tok.Content) != "" {
				return tokens
			}
		case xenon.CommentToken, xenon.ProcessingInstructionToken:
		default:
			return tokens
		}
		tokens = tokens[1:]
	}
	return tokens
}
