package xenon

// NSBinding is one namespace declaration as it appears on a start
// tag. An empty Prefix denotes the default namespace; an empty URI an
// undeclaration.
type NSBinding struct {
	Prefix string
	URI    string
}

// Token is one entry in the flat stream the engines consume and
// produce. The concrete wire encoding is the external tokenizer's and
// writer's business; tokens carry shape only.
type Token interface {
	token()
}

// StartElementToken opens an element. Attrs holds the ordinary
// attributes in document order; namespace declaration attributes are
// carried separately in Namespaces.
type StartElementToken struct {
	Name       QName
	Attrs      []Attr
	Namespaces []NSBinding
}

// EndElementToken closes the innermost open element. Its name must
// resolve to the same EName as the opening tag's.
type EndElementToken struct {
	Name QName
}

// CharactersToken is character data, CDATA or plain.
type CharactersToken struct {
	Content string
	CDATA   bool
}

// CommentToken is a comment.
type CommentToken struct {
	Content string
}

// ProcessingInstructionToken is a processing instruction.
type ProcessingInstructionToken struct {
	Target string
	Data   string
}

// EntityRefToken is an unexpanded entity reference.
type EntityRefToken struct {
	Name string
}

func (StartElementToken) token()          {}
func (EndElementToken) token()            {}
func (CharactersToken) token()            {}
func (CommentToken) token()               {}
func (ProcessingInstructionToken) token() {}
func (EntityRefToken) token()             {}
