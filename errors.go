package xenon

import (
	"fmt"
)

// ErrDuplicateAttribute is returned by NewElement when two attributes
// share the same qualified name. Name is the name declared twice.
type ErrDuplicateAttribute struct {
	Name QName
}

func (e ErrDuplicateAttribute) Error() string {
	return fmt.Sprintf("duplicate attribute %q", e.Name)
}

// ErrMalformedInput means a token sequence did not begin with a start
// element where one is required. Token is the offending token; it is
// nil when the input was empty.
type ErrMalformedInput struct {
	Token Token
}

func (e ErrMalformedInput) Error() string {
	if e.Token == nil {
		return "malformed input: no tokens"
	}
	return fmt.Sprintf("malformed input: expected start element, got %T", e.Token)
}

// ErrUnterminatedElement means the input ran out before the matching
// end tag for Name was found.
type ErrUnterminatedElement struct {
	Name QName
}

func (e ErrUnterminatedElement) Error() string {
	return fmt.Sprintf("unterminated element <%s>: input exhausted before matching end tag", e.Name)
}

// ErrUnmatchedEndElement means an end tag was found that does not
// close the element open at its depth.
type ErrUnmatchedEndElement struct {
	Expected EName
	Got      EName
	Depth    int
}

func (e ErrUnmatchedEndElement) Error() string {
	return fmt.Sprintf("unmatched end element at depth %d: expected </%s>, got </%s>", e.Depth, e.Expected, e.Got)
}

// ErrInvalidDeclaration means a namespace declaration bound a prefix
// to an empty URI. Undeclaring a prefix this way is not permitted;
// only the default namespace may be undeclared.
type ErrInvalidDeclaration struct {
	Prefix string
}

func (e ErrInvalidDeclaration) Error() string {
	return fmt.Sprintf("invalid namespace declaration: prefix %q declared with empty URI", e.Prefix)
}

// ErrUnboundPrefix means a qualified name used a prefix that has no
// binding in the applicable scope. It is raised at element
// construction time, never deferred.
type ErrUnboundPrefix struct {
	Name QName
}

func (e ErrUnboundPrefix) Error() string {
	return fmt.Sprintf("unbound namespace prefix %q in name %q", e.Name.Prefix, e.Name)
}

// ErrPathNotFound means path navigation failed: no child matched the
// path entry at index Entry.
type ErrPathNotFound struct {
	Path  Path
	Entry int
}

func (e ErrPathNotFound) Error() string {
	return fmt.Sprintf("path %s: no matching child for entry %d", e.Path, e.Entry)
}
