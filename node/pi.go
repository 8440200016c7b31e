package node

// PI holds a processing-instruction body: everything between "<?" and
// "?>", undecoded, with no target/data split: the whole body is
// stored as one opaque payload (XML-mode detection just
// substring-matches "xml" in it; nothing downstream needs the target
// parsed out separately).
type PI struct {
	base
	body string
}

func NewPI(body string) *PI {
	return &PI{body: body}
}

func (*PI) Type() Kind { return PIKind }

// Body returns the raw processing-instruction body.
func (p *PI) Body() string { return p.body }
