// Package htmlsets holds the fixed tag-name lookup tables the tree
// builder consults for tag-omission and scoping decisions: which
// elements are void, which close an in-progress paragraph, which are
// "phrasing content", and which belong to a table's implicit section
// structure.
package htmlsets

// Void lists elements that never have an end tag or children; the
// tree builder treats their start tag as immediately self-closing in
// HTML mode.
var Void = set(
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"keygen", "link", "menuitem", "meta", "param", "source", "track",
	"wbr",
)

// ParagraphClosers is the paragraph-breaking set: opening any of these
// implicitly ends an open <p>.
var ParagraphClosers = set(
	"address", "article", "aside", "blockquote", "dir", "div", "dl",
	"fieldset", "footer", "form", "h1", "h2", "h3", "h4", "h5", "h6",
	"header", "hr", "main", "menu", "nav", "ol", "p", "pre",
	"section", "table", "ul",
)

// Phrasing is the phrasing-content set. An end tag for one of these
// aborts instead of closing if the walk toward its matching start tag
// would cross a non-phrasing ancestor.
var Phrasing = set(
	"a", "abbr", "area", "audio", "b", "bdi", "bdo", "br", "button",
	"canvas", "cite", "code", "data", "datalist", "del", "dfn", "em",
	"embed", "i", "iframe", "img", "input", "ins", "kbd", "keygen",
	"label", "link", "map", "mark", "math", "meta", "meter",
	"noscript", "object", "output", "progress", "q", "ruby", "s",
	"samp", "script", "select", "small", "span", "strong", "sub",
	"sup", "svg", "template", "textarea", "time", "u", "var",
	"video", "wbr",
	// obsolete inline names
	"acronym", "applet", "basefont", "big", "font", "strike", "tt",
)

// TableSections is the table-section set consulted by close-scope
// when opening colgroup/thead/tbody/tfoot and on a </table> end tag.
var TableSections = set("colgroup", "tbody", "td", "tfoot", "th", "thead", "tr")

// RawText lists elements whose content the tokenizer must capture
// verbatim instead of scanning for markup.
var RawText = set("script", "style")

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}
