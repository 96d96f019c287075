package xenon

import (
	"github.com/lestrrat-go/xenon/internal/orderedmap"
)

// NodeType identifies the kind of a node in the tree.
type NodeType int

const (
	ElementNodeType NodeType = iota + 1
	TextNodeType
	CommentNodeType
	ProcessingInstructionNodeType
	EntityRefNodeType
)

// Node is the common interface of every node in the tree. Nodes are
// immutable: once constructed they never change, so a subtree may be
// referenced from multiple trees at once and shared across goroutines
// without synchronization. Two structurally identical nodes are still
// distinct values; equality between trees is defined by the canonical
// projection, not by identity.
type Node interface {
	Type() NodeType
}

// Element is a single XML element: a qualified name, an ordered set of
// uniquely-named attributes, the absolute namespace Scope in effect
// for the element, and an ordered sequence of child nodes. Elements
// are constructed through NewElement, which validates that the element
// name and every attribute name resolve under the applicable scope.
type Element struct {
	name     QName
	attrs    *orderedmap.Map[QName, string]
	scope    Scope
	children []Node
}

// Text is character data. The cdata flag records whether the data was
// written as a CDATA section; it affects serialization only.
type Text struct {
	content string
	cdata   bool
}

// Comment is an XML comment.
type Comment struct {
	content string
}

// ProcessingInstruction is an XML processing instruction.
type ProcessingInstruction struct {
	target string
	data   string
}

// EntityRef is an entity reference, kept unexpanded: the tree records
// the name only.
type EntityRef struct {
	name string
}

// Attr is a single attribute as written: qualified name plus value.
type Attr struct {
	Name  QName
	Value string
}

// ResolvedAttr is the namespace-resolved view of an attribute.
type ResolvedAttr struct {
	Name  EName
	Value string
}
