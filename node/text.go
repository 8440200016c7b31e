package node

// Text holds decoded character data: entities have already been
// resolved by the time a Text node exists. This tree model has no
// sibling list, so adjacent text is merged by the tree builder itself
// before appending rather than at node-construction time.
type Text struct {
	base
	data string
}

func NewText(data string) *Text {
	return &Text{data: data}
}

func (*Text) Type() Kind { return TextKind }

// Data returns the decoded text content.
func (t *Text) Data() string { return t.data }

// AddContent appends more decoded text. Used by the tree builder to
// coalesce consecutive text tokens into a single Text child instead of
// emitting one node per token.
func (t *Text) AddContent(s string) { t.data += s }
