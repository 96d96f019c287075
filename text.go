package xenon

// NewText creates a plain character data node.
func NewText(content string) *Text {
	return &Text{content: content}
}

// NewCDATA creates a character data node marked as a CDATA section.
// The flag only matters to the serializer; the content is the same
// either way, and canonicalization erases the distinction.
func NewCDATA(content string) *Text {
	return &Text{content: content, cdata: true}
}

func (*Text) Type() NodeType {
	return TextNodeType
}

// Content returns the character data.
func (t *Text) Content() string {
	return t.content
}

// IsCDATA reports whether the node was written as a CDATA section.
func (t *Text) IsCDATA() bool {
	return t.cdata
}
