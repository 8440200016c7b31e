// Package mojo is a permissive HTML/XML engine: a tokenizer, a
// tag-omission-aware tree builder, and a renderer, wired together
// behind a small Engine facade.
package mojo

import (
	"context"
	"log/slog"

	"github.com/jhannah/mojo/internal/tracing"
	"github.com/jhannah/mojo/node"
	"github.com/jhannah/mojo/render"
	"github.com/jhannah/mojo/token"
	"github.com/jhannah/mojo/treebuilder"
)

// WithTraceLogger attaches tlog to ctx; a subsequent ParseContext call
// made with that ctx logs each tag-omission and phrasing-guard
// decision the tree builder makes. With -tags notrace this, and every
// TraceEvent call it enables, compiles away to nothing.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	return tracing.WithTraceLogger(ctx, tlog)
}

// Engine owns one parsed tree and the xml/html mode flag that governs
// both parsing and rendering. The zero value is ready to use: mode
// starts unset (auto-detect) and Tree returns nil until Parse or
// SetTree installs a tree; New starts with an empty Root instead.
type Engine struct {
	tree node.Node
	mode node.Mode
}

// New returns a ready-to-use Engine with an empty tree.
func New() *Engine {
	return &Engine{tree: node.NewRoot()}
}

// Parse tokenizes and builds a tree from source, replacing e's
// current tree, and returns e for chaining. It never fails: malformed
// input degrades to a best-effort tree per the tokenizer and tree
// builder's repair rules.
func (e *Engine) Parse(source string) *Engine {
	return e.ParseContext(context.Background(), source)
}

// ParseContext is Parse with a context carrying an optional trace
// logger installed via WithTraceLogger.
func (e *Engine) ParseContext(ctx context.Context, source string) *Engine {
	// A method value (e.mode.IsXML) would snapshot e.mode by value right
	// here; the closure re-reads e.mode on every call instead, so it
	// sees treebuilder.Build's later AutoDetectXML writes through &e.mode.
	scanner := token.New(source, func() bool { return e.mode.IsXML() })
	e.tree = treebuilder.Build(ctx, scanner, &e.mode)
	return e
}

// Render serializes e's current tree back to markup.
func (e *Engine) Render() string {
	return render.String(e.tree, e.mode)
}

// Tree returns the root of the current tree.
func (e *Engine) Tree() node.Node {
	return e.tree
}

// SetTree replaces the current tree wholesale, for callers building
// or editing a tree outside of Parse.
func (e *Engine) SetTree(n node.Node) {
	e.tree = n
}

// XML reports whether the engine is pinned to XML mode. A freshly
// created Engine, or one reset with SetXMLAuto, reports false here
// until either SetXML or a qualifying processing instruction pins it.
func (e *Engine) XML() bool {
	return e.mode.IsXML()
}

// SetXML pins the engine's mode explicitly, overriding and disabling
// any further auto-detection from processing instructions.
func (e *Engine) SetXML(v bool) {
	e.mode.SetXML(v)
}

// SetXMLAuto reverts the mode to auto-detect: the next Parse call is
// free to latch XML mode from a qualifying processing instruction
// again.
func (e *Engine) SetXMLAuto() {
	e.mode.Unset()
}
