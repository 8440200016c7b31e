package node

// Doctype holds a doctype payload: everything between "<!DOCTYPE" and
// the terminating ">", undecoded, including any internal subset in
// "[ … ]". This engine only keeps the raw payload; declaration
// machinery for the internal subset has no home here (see DESIGN.md).
type Doctype struct {
	base
	body string
}

func NewDoctype(body string) *Doctype {
	return &Doctype{body: body}
}

func (*Doctype) Type() Kind { return DoctypeKind }

// Body returns the raw doctype payload.
func (d *Doctype) Body() string { return d.body }
