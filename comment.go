package xenon

// NewComment creates a comment node.
func NewComment(content string) *Comment {
	return &Comment{content: content}
}

func (*Comment) Type() NodeType {
	return CommentNodeType
}

// Content returns the comment text.
func (c *Comment) Content() string {
	return c.content
}
