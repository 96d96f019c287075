package xenon

import "sort"

// XMLNamespace is the namespace URI that the "xml" prefix is bound to
// in every scope, without ever being declared.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// Scope is an absolute, immutable mapping from namespace prefixes
// (plus a separate slot for the default namespace) to namespace URIs.
// It models everything in effect at one point in a document, not just
// what was declared there. The zero value is the empty scope, which
// resolves only unprefixed names, to "no namespace".
//
// Scope values are never mutated after construction; Resolve returns
// a new Scope and existing values may be shared freely.
type Scope struct {
	defaultNS string
	prefixes  map[string]string
}

// NewScope builds a scope directly from a set of bindings. A binding
// with an empty prefix sets the default namespace. Bindings with an
// empty URI are skipped: an absolute scope holds real bindings only.
func NewScope(bindings ...NSBinding) Scope {
	var s Scope
	for _, b := range bindings {
		if b.URI == "" {
			continue
		}
		if b.Prefix == "" {
			s.defaultNS = b.URI
			continue
		}
		if s.prefixes == nil {
			s.prefixes = make(map[string]string)
		}
		s.prefixes[b.Prefix] = b.URI
	}
	return s
}

// DefaultNamespace returns the URI the default namespace is bound to,
// and whether one is bound at all.
func (s Scope) DefaultNamespace() (string, bool) {
	return s.defaultNS, s.defaultNS != ""
}

// LookupPrefix returns the URI bound to prefix. The "xml" prefix is
// implicitly bound in every scope.
func (s Scope) LookupPrefix(prefix string) (string, bool) {
	if uri, ok := s.prefixes[prefix]; ok {
		return uri, true
	}
	if prefix == "xml" {
		return XMLNamespace, true
	}
	return "", false
}

// PrefixFor returns a prefix currently bound to uri. When several
// prefixes are bound to the same URI the lexically smallest one is
// chosen, so the result is deterministic.
func (s Scope) PrefixFor(uri string) (string, bool) {
	var found string
	var ok bool
	for p, u := range s.prefixes {
		if u != uri {
			continue
		}
		if !ok || p < found {
			found, ok = p, true
		}
	}
	if !ok && uri == XMLNamespace {
		return "xml", true
	}
	return found, ok
}

// ResolveName resolves an element name against the scope. Unprefixed
// names take the default namespace.
func (s Scope) ResolveName(q QName) (EName, bool) {
	if q.Prefix == "" {
		return EName{URI: s.defaultNS, Local: q.Local}, true
	}
	uri, ok := s.LookupPrefix(q.Prefix)
	if !ok {
		return EName{}, false
	}
	return EName{URI: uri, Local: q.Local}, true
}

// ResolveAttributeName resolves an attribute name against the scope.
// The default namespace never applies to unprefixed attributes, so an
// unprefixed attribute always resolves to no namespace.
func (s Scope) ResolveAttributeName(q QName) (EName, bool) {
	if q.Prefix == "" {
		return EName{Local: q.Local}, true
	}
	uri, ok := s.LookupPrefix(q.Prefix)
	if !ok {
		return EName{}, false
	}
	return EName{URI: uri, Local: q.Local}, true
}

// WithoutDefault returns the attribute scope: the same prefix bindings
// with the default namespace entry removed.
func (s Scope) WithoutDefault() Scope {
	if s.defaultNS == "" {
		return s
	}
	return Scope{prefixes: s.prefixes}
}

// Len returns the number of bindings, counting the default namespace
// as one.
func (s Scope) Len() int {
	n := len(s.prefixes)
	if s.defaultNS != "" {
		n++
	}
	return n
}

// Bindings returns every binding in the scope: the default namespace
// first, then prefixes in sorted order.
func (s Scope) Bindings() []NSBinding {
	out := make([]NSBinding, 0, s.Len())
	if s.defaultNS != "" {
		out = append(out, NSBinding{URI: s.defaultNS})
	}
	for _, p := range s.sortedPrefixes() {
		out = append(out, NSBinding{Prefix: p, URI: s.prefixes[p]})
	}
	return out
}

func (s Scope) sortedPrefixes() []string {
	if len(s.prefixes) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.prefixes))
	for p := range s.prefixes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether two scopes hold exactly the same bindings.
func (s Scope) Equal(other Scope) bool {
	if s.defaultNS != other.defaultNS || len(s.prefixes) != len(other.prefixes) {
		return false
	}
	for p, uri := range s.prefixes {
		if other.prefixes[p] != uri {
			return false
		}
	}
	return true
}

// Resolve applies decls to the scope and returns the new absolute
// scope: declared entries override, undeclared entries are removed,
// and every other binding is inherited unchanged.
func (s Scope) Resolve(decls Declarations) Scope {
	out := Scope{defaultNS: s.defaultNS}
	if len(s.prefixes) > 0 || len(decls.prefixes) > 0 {
		out.prefixes = make(map[string]string, len(s.prefixes)+len(decls.prefixes))
		for p, uri := range s.prefixes {
			out.prefixes[p] = uri
		}
	}
	if decls.unsetDefault {
		out.defaultNS = ""
	}
	if decls.defaultNS != "" {
		out.defaultNS = decls.defaultNS
	}
	for p, uri := range decls.prefixes {
		out.prefixes[p] = uri
	}
	for p := range decls.undeclared {
		delete(out.prefixes, p)
	}
	if len(out.prefixes) == 0 {
		out.prefixes = nil
	}
	return out
}

// Relativize computes the minimal Declarations d such that
// s.Resolve(d) equals child: only bindings that were added, changed
// or removed between the two scopes appear in d.
func (s Scope) Relativize(child Scope) Declarations {
	var d Declarations
	if child.defaultNS != s.defaultNS {
		if child.defaultNS == "" {
			d.unsetDefault = true
		} else {
			d.defaultNS = child.defaultNS
		}
	}
	for p, uri := range child.prefixes {
		if s.prefixes[p] != uri {
			if d.prefixes == nil {
				d.prefixes = make(map[string]string)
			}
			d.prefixes[p] = uri
		}
	}
	for p := range s.prefixes {
		if _, ok := child.prefixes[p]; !ok {
			if d.undeclared == nil {
				d.undeclared = make(map[string]struct{})
			}
			d.undeclared[p] = struct{}{}
		}
	}
	return d
}

// Declarations is the namespace delta declared directly on one
// element: new bindings, prefix undeclarations, and optionally an
// undeclaration of the default namespace.
//
// Prefix undeclaration is representable here because Relativize needs
// it to express an arbitrary difference between two scopes. The tree
// construction engine, however, follows XML Namespaces 1.0 and rejects
// xmlns:p="" on input; only the default namespace may be undeclared in
// a document. See NewDeclarations.
type Declarations struct {
	defaultNS    string
	unsetDefault bool
	prefixes     map[string]string
	undeclared   map[string]struct{}
}

// NewDeclarations builds a Declarations value from the raw namespace
// bindings of one start tag. An empty URI means undeclaration: legal
// for the default namespace, an ErrInvalidDeclaration for a prefix.
func NewDeclarations(bindings []NSBinding) (Declarations, error) {
	var d Declarations
	for _, b := range bindings {
		if b.Prefix == "" {
			if b.URI == "" {
				d.defaultNS = ""
				d.unsetDefault = true
			} else {
				d.defaultNS = b.URI
				d.unsetDefault = false
			}
			continue
		}
		if b.URI == "" {
			return Declarations{}, ErrInvalidDeclaration{Prefix: b.Prefix}
		}
		if d.prefixes == nil {
			d.prefixes = make(map[string]string)
		}
		d.prefixes[b.Prefix] = b.URI
	}
	return d, nil
}

// IsEmpty reports whether d declares nothing at all.
func (d Declarations) IsEmpty() bool {
	return d.defaultNS == "" && !d.unsetDefault &&
		len(d.prefixes) == 0 && len(d.undeclared) == 0
}

// Bindings renders the delta in the wire shape carried by
// StartElementToken: the default namespace first, then declared
// prefixes in sorted order, then undeclarations as empty-URI entries.
func (d Declarations) Bindings() []NSBinding {
	var out []NSBinding
	if d.unsetDefault {
		out = append(out, NSBinding{})
	} else if d.defaultNS != "" {
		out = append(out, NSBinding{URI: d.defaultNS})
	}
	declared := make([]string, 0, len(d.prefixes))
	for p := range d.prefixes {
		declared = append(declared, p)
	}
	sort.Strings(declared)
	for _, p := range declared {
		out = append(out, NSBinding{Prefix: p, URI: d.prefixes[p]})
	}
	removed := make([]string, 0, len(d.undeclared))
	for p := range d.undeclared {
		removed = append(removed, p)
	}
	sort.Strings(removed)
	for _, p := range removed {
		out = append(out, NSBinding{Prefix: p})
	}
	return out
}
