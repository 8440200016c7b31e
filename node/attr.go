package node

// AttrValue is the decoded value of an attribute, or the "valueless"
// sentinel for a boolean attribute written without "=" (e.g. <input
// disabled>). Attributes are stored unordered in a Tag's map rather
// than as sibling nodes of their own, so this stays a plain value type.
type AttrValue struct {
	Value    string
	HasValue bool
}

// Attr builds a valued AttrValue.
func Attr(value string) AttrValue {
	return AttrValue{Value: value, HasValue: true}
}

// Valueless builds the "no value" sentinel AttrValue.
func Valueless() AttrValue {
	return AttrValue{}
}
