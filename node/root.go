package node

// Root is the tree root. It is the only variant with no parent, and
// the only variant the engine hands back from Parse as the top of a
// tree.
type Root struct {
	container
}

var _ Container = (*Root)(nil)

// NewRoot creates an empty Root.
func NewRoot() *Root {
	return &Root{}
}

func (*Root) Type() Kind { return RootKind }

// Parent always returns nil: Root has no parent by construction.
func (*Root) Parent() Node { return nil }

func (*Root) setParent(Node) {
	// Root never has a parent; silently ignored so generic tree-walking
	// code doesn't need a type switch to skip it.
}
