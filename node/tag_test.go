package node_test

import (
	"testing"

	"github.com/jhannah/mojo/node"
	"github.com/stretchr/testify/require"
)

func TestTagTree(t *testing.T) {
	root := node.NewRoot()
	div := node.NewTag("div")
	p := node.NewTag("p")

	require.NoError(t, node.AddChild(root, div))
	require.NoError(t, node.AddChild(div, p))

	require.Equal(t, div, p.Parent())
	require.Equal(t, []node.Node{div}, root.Children())
	require.Equal(t, []node.Node{p}, div.Children())
	require.Nil(t, root.Parent())
}

func TestTagAttrs(t *testing.T) {
	tag := node.NewTag("input")
	tag.SetAttr("type", node.Attr("checkbox"))
	tag.SetAttr("disabled", node.Valueless())

	v, ok := tag.Attr("type")
	require.True(t, ok)
	require.Equal(t, node.Attr("checkbox"), v)

	v, ok = tag.Attr("disabled")
	require.True(t, ok)
	require.False(t, v.HasValue)

	require.Equal(t, []string{"disabled", "type"}, tag.AttrNames())
}

func TestTagAttrOverwrite(t *testing.T) {
	tag := node.NewTag("p")
	tag.SetAttr("id", node.Attr("a"))
	tag.SetAttr("id", node.Attr("b"))

	v, ok := tag.Attr("id")
	require.True(t, ok)
	require.Equal(t, "b", v.Value)
}

func TestAncestors(t *testing.T) {
	root := node.NewRoot()
	div := node.NewTag("div")
	span := node.NewTag("span")
	require.NoError(t, node.AddChild(root, div))
	require.NoError(t, node.AddChild(div, span))

	anc := node.Ancestors(span)
	require.Equal(t, []node.Node{div, root}, anc)
}
