package xenon

import "strings"

// QName is a lexical XML name exactly as written in a document: an
// optional namespace prefix plus a local part. A QName carries no
// namespace semantics by itself; resolving it against a Scope yields
// an EName.
type QName struct {
	Prefix string
	Local  string
}

// ParseQName splits a raw name of the form "prefix:local" (or plain
// "local") into its parts.
func ParseQName(s string) QName {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return QName{Prefix: s[:i], Local: s[i+1:]}
	}
	return QName{Local: s}
}

func (q QName) String() string {
	if q.Prefix == "" {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}

// EName is a namespace-resolved name: an optional namespace URI plus a
// local part. Two QNames written with different prefixes that resolve
// to the same EName are the same name wherever namespace semantics
// matter.
type EName struct {
	URI   string
	Local string
}

// String renders the name in Clark notation, "{uri}local". Names in
// no namespace render as the bare local part.
func (e EName) String() string {
	if e.URI == "" {
		return e.Local
	}
	return "{" + e.URI + "}" + e.Local
}
