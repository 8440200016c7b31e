// Package render serializes a node tree back into markup.
package render

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/jhannah/mojo/internal/htmlsets"
	"github.com/jhannah/mojo/node"
)

// String renders n as a markup string under mode.
func String(n node.Node, mode node.Mode) string {
	var buf bytes.Buffer
	_ = Write(&buf, n, mode)
	return buf.String()
}

// Write renders n to w under mode. It never returns a non-nil error
// of its own; the returned error only ever reflects a write failure
// from w, matching io.Writer's contract.
func Write(w io.Writer, n node.Node, mode node.Mode) error {
	rw := &renderWriter{w: w}
	rw.write(n, mode)
	return rw.err
}

type renderWriter struct {
	w   io.Writer
	err error
}

func (rw *renderWriter) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

func (rw *renderWriter) write(n node.Node, mode node.Mode) {
	if rw.err != nil || n == nil {
		return
	}
	switch v := n.(type) {
	case *node.Root:
		for _, c := range v.Children() {
			rw.write(c, mode)
		}
	case *node.Tag:
		rw.writeTag(v, mode)
	case *node.Text:
		rw.printf("%s", escape(v.Data()))
	case *node.Raw:
		rw.printf("%s", v.Data())
	case *node.Doctype:
		if v.Body() == "" {
			rw.printf("<!DOCTYPE>")
		} else {
			rw.printf("<!DOCTYPE %s>", v.Body())
		}
	case *node.Comment:
		rw.printf("<!--%s-->", v.Body())
	case *node.CDATA:
		rw.printf("<![CDATA[%s]]>", v.Body())
	case *node.PI:
		rw.printf("<?%s?>", v.Body())
	}
}

func (rw *renderWriter) writeTag(t *node.Tag, mode node.Mode) {
	rw.printf("<%s", t.Name())
	for _, name := range t.AttrNames() {
		v, _ := t.Attr(name)
		if v.HasValue {
			rw.printf(" %s=\"%s\"", name, escape(v.Value))
		} else {
			rw.printf(" %s", name)
		}
	}

	children := t.Children()
	selfClose := len(children) == 0 && (mode.IsXML() || htmlsets.Void[t.Name()])
	if selfClose {
		rw.printf(" />")
		return
	}

	rw.printf(">")
	for _, c := range children {
		rw.write(c, mode)
	}
	rw.printf("</%s>", t.Name())
}

// escape XML-escapes &, <, >, ", ' in text and attribute values.
// html.EscapeString is used instead of a hand-written replacer for the
// same reason decodeEntities defers to html.UnescapeString (see
// DESIGN.md).
func escape(s string) string {
	return html.EscapeString(s)
}
