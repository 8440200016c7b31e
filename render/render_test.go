package render_test

import (
	"testing"

	"github.com/jhannah/mojo/node"
	"github.com/jhannah/mojo/render"
	"github.com/stretchr/testify/require"
)

func TestRenderVoidElementHTML(t *testing.T) {
	root := node.NewRoot()
	br := node.NewTag("br")
	require.NoError(t, node.AddChild(root, br))

	require.Equal(t, "<br />", render.String(root, node.Mode(0)))
}

func TestRenderSelfClosingXML(t *testing.T) {
	root := node.NewRoot()
	foo := node.NewTag("Foo")
	require.NoError(t, node.AddChild(root, foo))

	var mode node.Mode
	mode.SetXML(true)
	require.Equal(t, "<Foo />", render.String(root, mode))
}

func TestRenderEmptyNonVoidGetsExplicitClose(t *testing.T) {
	root := node.NewRoot()
	p := node.NewTag("p")
	require.NoError(t, node.AddChild(root, p))

	require.Equal(t, "<p></p>", render.String(root, node.Mode(0)))
}

func TestRenderAttributesSortedAndEscaped(t *testing.T) {
	root := node.NewRoot()
	tag := node.NewTag("a")
	tag.SetAttr("href", node.Attr(`"quoted"&`))
	tag.SetAttr("class", node.Valueless())
	require.NoError(t, node.AddChild(root, tag))

	require.Equal(t, `<a class href="&#34;quoted&#34;&amp;"></a>`, render.String(root, node.Mode(0)))
}

func TestRenderTextEscaped(t *testing.T) {
	root := node.NewRoot()
	require.NoError(t, node.AddChild(root, node.NewText("a < b & c")))

	require.Equal(t, "a &lt; b &amp; c", render.String(root, node.Mode(0)))
}

func TestRenderRawVerbatim(t *testing.T) {
	root := node.NewRoot()
	script := node.NewTag("script")
	require.NoError(t, node.AddChild(root, script))
	require.NoError(t, node.AddChild(script, node.NewRaw("if (1<2) a()")))

	require.Equal(t, "<script>if (1<2) a()</script>", render.String(root, node.Mode(0)))
}

func TestRenderDoctypeCommentCDATAPI(t *testing.T) {
	root := node.NewRoot()
	require.NoError(t, node.AddChild(root, node.NewDoctype("html")))
	require.NoError(t, node.AddChild(root, node.NewComment(" hi ")))
	require.NoError(t, node.AddChild(root, node.NewCDATA("1<2")))
	require.NoError(t, node.AddChild(root, node.NewPI(`xml version="1.0"`)))

	require.Equal(t,
		`<!DOCTYPE html><!-- hi --><![CDATA[1<2]]><?xml version="1.0"?>`,
		render.String(root, node.Mode(0)))
}
