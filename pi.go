package xenon

// NewProcessingInstruction creates a processing instruction node with
// the given target and data.
func NewProcessingInstruction(target, data string) *ProcessingInstruction {
	return &ProcessingInstruction{target: target, data: data}
}

func (*ProcessingInstruction) Type() NodeType {
	return ProcessingInstructionNodeType
}

// Target returns the processing instruction target.
func (p *ProcessingInstruction) Target() string {
	return p.target
}

// Data returns the processing instruction data.
func (p *ProcessingInstruction) Data() string {
	return p.data
}
