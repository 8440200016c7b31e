package node

// Raw holds verbatim, undecoded text. The tree builder creates one only
// as the direct child of a script or style Tag, for the body the
// tokenizer captured in raw-text mode. Shaped after Text with decoding
// dropped.
type Raw struct {
	base
	data string
}

func NewRaw(data string) *Raw {
	return &Raw{data: data}
}

func (*Raw) Type() Kind { return RawKind }

// Data returns the verbatim text content.
func (r *Raw) Data() string { return r.data }
