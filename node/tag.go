package node

import "sort"

// Tag is an HTML/XML element: a name, an unordered attribute map, and
// an ordered list of children. Attributes are stored as a flat,
// unordered map; namespace resolution is out of scope for this engine.
type Tag struct {
	base
	container
	name  string
	attrs map[string]AttrValue
}

var _ Container = (*Tag)(nil)

// NewTag creates an orphan Tag with no attributes and no children.
func NewTag(name string) *Tag {
	return &Tag{name: name, attrs: make(map[string]AttrValue)}
}

func (*Tag) Type() Kind { return TagKind }

// Name returns the tag's name, lowercase in HTML mode, as the tree
// builder wrote it.
func (t *Tag) Name() string { return t.name }

// TagName satisfies internal/elstack.Item so the tree builder can push
// Tags directly onto its open-element stack.
func (t *Tag) TagName() string { return t.name }

// SetAttr sets (or overwrites) an attribute. A later call for the same
// name overwrites an earlier one.
func (t *Tag) SetAttr(name string, v AttrValue) {
	if t.attrs == nil {
		t.attrs = make(map[string]AttrValue)
	}
	t.attrs[name] = v
}

// Attr looks up a single attribute by name.
func (t *Tag) Attr(name string) (AttrValue, bool) {
	v, ok := t.attrs[name]
	return v, ok
}

// Attrs returns the attribute map directly; callers must not retain a
// reference across a subsequent SetAttr call without copying.
func (t *Tag) Attrs() map[string]AttrValue {
	return t.attrs
}

// AttrNames returns attribute names in ascending lexicographic order,
// matching the deterministic ordering render.Write uses.
func (t *Tag) AttrNames() []string {
	names := make([]string, 0, len(t.attrs))
	for k := range t.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
