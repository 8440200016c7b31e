// Package treebuilder consumes a token stream and builds a node tree,
// applying HTML's tag-omission and scope-closing rules along the way.
package treebuilder

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jhannah/mojo/internal/debug"
	"github.com/jhannah/mojo/internal/elstack"
	"github.com/jhannah/mojo/internal/htmlsets"
	"github.com/jhannah/mojo/internal/tracing"
	"github.com/jhannah/mojo/node"
	"github.com/jhannah/mojo/token"
)

type builder struct {
	ctx  context.Context
	mode *node.Mode
	root *node.Root
	open elstack.Stack
}

// Build drains src, building a tree rooted at the returned node.Root.
// mode is read (and, via processing instructions, written) as
// building proceeds: an XML-mode PI flips mode before any later token
// is scanned, since src is a *token.Scanner pulled one token at a
// time rather than a pre-tokenized slice. ctx only matters for a trace
// logger installed via tracing.WithTraceLogger; pass context.Background()
// otherwise.
func Build(ctx context.Context, src *token.Scanner, mode *node.Mode) *node.Root {
	b := &builder{ctx: ctx, mode: mode, root: node.NewRoot()}
	for {
		tok, ok := src.Next()
		if !ok {
			break
		}
		b.handle(tok)
	}
	return b.root
}

func (b *builder) handle(tok token.Token) {
	switch tok.Kind {
	case token.Text:
		b.appendText(tok.Data)
	case token.PI:
		b.appendLeaf(node.NewPI(tok.Body))
		if strings.Contains(strings.ToLower(tok.Body), "xml") {
			b.mode.AutoDetectXML()
		}
	case token.Comment:
		b.appendLeaf(node.NewComment(tok.Body))
	case token.CDATA:
		b.appendLeaf(node.NewCDATA(tok.Body))
	case token.Doctype:
		b.appendLeaf(node.NewDoctype(tok.Body))
	case token.StartTag:
		b.openTag(tok)
	case token.EndTag:
		b.closeTag(b.normalize(tok.Name))
	case token.RawText:
		b.appendRaw(tok.Data)
	}
}

func (b *builder) normalize(name string) string {
	if b.mode.IsXML() {
		return name
	}
	return strings.ToLower(name)
}

func (b *builder) current() node.Container {
	if b.open.Len() == 0 {
		return b.root
	}
	return b.open.Top().(*node.Tag)
}

func (b *builder) appendLeaf(n node.Node) {
	node.AddChild(b.current(), n)
}

// appendText coalesces consecutive text tokens into one Text child,
// matching the "entities in text are decoded once" node contract: the
// tree never holds two adjacent Text siblings.
func (b *builder) appendText(s string) {
	if s == "" {
		return
	}
	children := b.current().Children()
	if len(children) > 0 {
		if t, ok := children[len(children)-1].(*node.Text); ok {
			t.AddContent(s)
			return
		}
	}
	b.appendLeaf(node.NewText(s))
}

// appendRaw attaches a Raw child to the script/style tag currently
// open; unlike text, an empty raw body is dropped entirely rather than
// producing an empty Raw child, so "exactly one raw child if any body
// was present" holds.
func (b *builder) appendRaw(s string) {
	if s == "" {
		return
	}
	b.appendLeaf(node.NewRaw(s))
}

func (b *builder) openTag(tok token.Token) {
	name := b.normalize(tok.Name)
	htmlMode := !b.mode.IsXML()

	if htmlMode && b.open.Len() > 0 {
		debug.Printf("openTag %q over open=%v", name, b.open)
		b.applyTagOmission(name)
		b.closePhrasingCrossing(name)
	}

	tag := node.NewTag(name)
	for _, a := range tok.Attrs {
		attrName := a.Name
		if htmlMode {
			attrName = strings.ToLower(attrName)
		}
		tag.SetAttr(attrName, node.AttrValue{Value: a.Value.Value, HasValue: a.Value.HasValue})
	}

	node.AddChild(b.current(), tag)
	b.open.Push(tag)

	if tok.SelfClosing || (htmlMode && htmlsets.Void[name]) {
		b.closeTag(name)
	}
}

// applyTagOmission implements HTML's tag-omission table: which open
// elements a new start tag implicitly closes before it opens.
func (b *builder) applyTagOmission(name string) {
	switch {
	case name == "li":
		b.closeScope(map[string]bool{"li": true}, "ul")
	case htmlsets.ParagraphClosers[name]:
		b.implicitEnd("p")
	case name == "body":
		b.implicitEnd("head")
	case name == "optgroup":
		b.implicitEnd("optgroup")
	case name == "option":
		b.implicitEnd("option")
	case name == "colgroup" || name == "thead" || name == "tbody" || name == "tfoot":
		b.closeScope(htmlsets.TableSections, "table")
	case name == "tr":
		b.closeScope(map[string]bool{"tr": true}, "table")
	case name == "th" || name == "td":
		b.closeScope(map[string]bool{"th": true}, "table")
		b.closeScope(map[string]bool{"td": true}, "table")
	case name == "dt" || name == "dd":
		b.implicitEnd("dt")
		b.implicitEnd("dd")
	case name == "rt" || name == "rp":
		b.implicitEnd("rt")
		b.implicitEnd("rp")
	}
}

// closePhrasingCrossing closes back out of any open phrasing-content
// ancestors before a non-phrasing element opens, so block content
// never nests inside an inline element (e.g. opening <p> while <b> is
// open closes the <b> first rather than nesting <p> under it).
func (b *builder) closePhrasingCrossing(name string) {
	if htmlsets.Phrasing[name] {
		return
	}
	if b.open.Len() > 0 && htmlsets.Phrasing[b.open.Top().TagName()] {
		tracing.TraceEvent(b.ctx, "close phrasing crossing", slog.String("opening", name))
	}
	b.open.PopWhileIn(htmlsets.Phrasing)
}

func (b *builder) implicitEnd(name string) {
	b.closeScope(map[string]bool{name: true}, "")
}

func (b *builder) closeScope(allowed map[string]bool, scope string) bool {
	closed := b.open.CloseScope(allowed, scope)
	if closed {
		tracing.TraceEvent(b.ctx, "close-scope", slog.String("scope", scope))
	}
	return closed
}

// closeTag implements the end-tag algorithm for name E: locate the
// matching open ancestor, aborting if a phrasing element's end tag
// would have to cross a non-phrasing boundary, then close back to it.
func (b *builder) closeTag(name string) {
	if b.open.Len() == 0 {
		return
	}
	htmlMode := !b.mode.IsXML()
	phrasingTarget := htmlMode && htmlsets.Phrasing[name]

	idx := -1
	for i := b.open.Len() - 1; i >= 0; i-- {
		anc := b.open[i].(*node.Tag)
		if anc.Name() == name {
			idx = i
			break
		}
		if phrasingTarget && !htmlsets.Phrasing[anc.Name()] {
			tracing.TraceEvent(b.ctx, "phrasing guard aborted end tag",
				slog.String("end-tag", name), slog.String("blocking-ancestor", anc.Name()))
			return // phrasing guard: end tag would cross a non-phrasing ancestor
		}
	}
	if idx < 0 {
		debug.Dump(name, b.open)
		return // not found: ignore the stray end tag
	}

	for {
		top := b.open.Top().(*node.Tag)
		if top.Name() == name {
			b.open.Pop()
			return
		}
		if name == "table" && b.closeScope(htmlsets.TableSections, "table") {
			continue
		}
		if b.open.Len() == 0 {
			return
		}
		b.open.Pop()
	}
}
