package xenon

// NewEntityRef creates an entity reference node. The reference is kept
// unexpanded; this tree has no notion of entity definitions, so the
// name is all there is.
func NewEntityRef(name string) *EntityRef {
	return &EntityRef{name: name}
}

func (*EntityRef) Type() NodeType {
	return EntityRefNodeType
}

// Name returns the referenced entity's name, without the surrounding
// "&" and ";".
func (e *EntityRef) Name() string {
	return e.name
}
