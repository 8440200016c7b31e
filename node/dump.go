package node

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders n as an indented ASCII tree for debugging and test
// failure output, built on xlab/treeprint. It is not part of the wire
// format; render.String/Write is the serializer external collaborators
// should use.
func Dump(n Node) string {
	tree := treeprint.New()
	addBranch(tree, n)
	return tree.String()
}

func addBranch(parent treeprint.Tree, n Node) {
	switch v := n.(type) {
	case *Root:
		for _, c := range v.Children() {
			addBranch(parent, c)
		}
	case *Tag:
		branch := parent.AddBranch(fmt.Sprintf("tag:%s%s", v.Name(), dumpAttrs(v)))
		for _, c := range v.Children() {
			addBranch(branch, c)
		}
	case *Text:
		parent.AddNode(fmt.Sprintf("text:%q", v.Data()))
	case *Raw:
		parent.AddNode(fmt.Sprintf("raw:%q", v.Data()))
	case *Doctype:
		parent.AddNode(fmt.Sprintf("doctype:%q", v.Body()))
	case *Comment:
		parent.AddNode(fmt.Sprintf("comment:%q", v.Body()))
	case *CDATA:
		parent.AddNode(fmt.Sprintf("cdata:%q", v.Body()))
	case *PI:
		parent.AddNode(fmt.Sprintf("pi:%q", v.Body()))
	default:
		parent.AddNode(fmt.Sprintf("%s", n.Type()))
	}
}

func dumpAttrs(t *Tag) string {
	names := t.AttrNames()
	if len(names) == 0 {
		return ""
	}
	s := ""
	for _, name := range names {
		v := t.Attrs()[name]
		if v.HasValue {
			s += fmt.Sprintf(" %s=%q", name, v.Value)
		} else {
			s += " " + name
		}
	}
	return s
}
