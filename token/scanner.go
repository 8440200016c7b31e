package token

import (
	"strings"
	"unicode"

	"github.com/lestrrat-go/strcursor"
)

// Scanner is a pull-based lexer built on top of strcursor.Cursor: one
// recognizer function per token shape, each of which finds the length
// of the run it wants by peeking ahead without advancing, then takes
// it in a single Consume call. The caller calls Next once per token —
// so that XML-mode auto-detection (triggered by a PI the tree builder
// sees) can take effect on the very next token the scanner decides, in
// particular on whether a following script/style start tag should
// trigger raw-text mode under HTML's case-insensitive name matching.
type Scanner struct {
	cur *strcursor.Cursor

	// isXML reports the engine's current mode. It is a callback rather
	// than a snapshot because the tree builder may flip the mode via
	// auto-detection between two calls to Next.
	isXML func() bool

	// pendingRawEnd, when non-empty, is the lowercase-if-html tag name
	// the scanner is watching for: the previous call to Next returned a
	// start tag for a raw-text element, and the next call must return
	// its RawText body.
	pendingRawEnd string

	// queue holds tokens already produced but not yet returned by
	// Next — used only to hand back the synthetic EndTag that follows
	// a RawText body without re-scanning it.
	queue []Token
}

// New creates a Scanner over src. isXML is consulted on every start
// tag to decide whether script/style raw-text recognition matches the
// name case-insensitively (HTML) or exactly (XML); tag and attribute
// names themselves are returned as scanned.
func New(src string, isXML func() bool) *Scanner {
	return &Scanner{cur: strcursor.New([]byte(src)), isXML: isXML}
}

func (s *Scanner) done() bool {
	return s.cur.Done()
}

// hasPrefixAt reports whether p begins i runes ahead of the cursor
// (hasPrefixAt(1, p) tests the construct starting directly under it).
// strcursor.Cursor.HasPrefix only tests at the cursor itself; this is
// the lookahead generalization scanText needs to find where a
// "runaway '<'" run of text ends.
func (s *Scanner) hasPrefixAt(i int, p string) bool {
	for j, r := range []rune(p) {
		if s.cur.Peek(i+j) != r {
			return false
		}
	}
	return true
}

// hasPrefixFoldAt is hasPrefixAt's case-insensitive twin, needed for
// HTML's case-insensitive "<!DOCTYPE" and raw-text close-tag matching.
// strcursor has no case-folding prefix test of its own.
func (s *Scanner) hasPrefixFoldAt(i int, p string) bool {
	for j, r := range []rune(p) {
		if unicode.ToLower(s.cur.Peek(i+j)) != unicode.ToLower(r) {
			return false
		}
	}
	return true
}

func (s *Scanner) hasPrefixFold(p string) bool {
	return s.hasPrefixFoldAt(1, p)
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

// Next returns the next token in source order, or ok=false once the
// scanner is exhausted.
func (s *Scanner) Next() (Token, bool) {
	if len(s.queue) > 0 {
		tok := s.queue[0]
		s.queue = s.queue[1:]
		return tok, true
	}
	if s.pendingRawEnd != "" {
		return s.scanRawText(), true
	}
	if s.done() {
		return Token{}, false
	}
	if s.cur.Peek(1) != '<' {
		return s.scanText(), true
	}

	switch {
	case s.cur.HasPrefix("<?"):
		return s.scanPI(), true
	case s.cur.HasPrefix("<!--"):
		return s.scanComment(), true
	case s.cur.HasPrefix("<![CDATA["):
		return s.scanCDATA(), true
	case s.hasPrefixFold("<!DOCTYPE"):
		return s.scanDoctype(), true
	case s.cur.HasPrefix("</"):
		return s.scanEndTag(), true
	case isTagStart(s.cur.Peek(2)):
		return s.scanStartTag(), true
	default:
		// A bare '<' that matches nothing else folds into the
		// surrounding text instead of erroring.
		return s.scanText(), true
	}
}

func isTagStart(r rune) bool {
	return r == '_' || r == ':' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// scanText consumes the run of characters up to the next '<' that
// opens a recognized construct; a '<' that can't start anything folds
// into the same text run (the "runaway '<'" rule).
func (s *Scanner) scanText() Token {
	i := 1
	for s.cur.HasChars(i) {
		if s.cur.Peek(i) == '<' && s.constructStartsAt(i) {
			break
		}
		i++
	}
	body := s.cur.Consume(i - 1)
	return Token{Kind: Text, Data: decodeEntities(body)}
}

// constructStartsAt reports whether a recognizable PI/comment/CDATA/
// doctype/start-tag/end-tag begins i runes ahead of the cursor.
func (s *Scanner) constructStartsAt(i int) bool {
	switch {
	case s.hasPrefixAt(i, "<?"):
		return true
	case s.hasPrefixAt(i, "<!--"):
		return true
	case s.hasPrefixAt(i, "<![CDATA["):
		return true
	case s.hasPrefixFoldAt(i, "<!DOCTYPE"):
		return true
	case s.hasPrefixAt(i, "</"):
		return true
	case isTagStart(s.cur.Peek(i + 1)):
		return true
	default:
		return false
	}
}

func (s *Scanner) scanPI() Token {
	s.cur.ConsumePrefix("<?")
	i := 1
	for s.cur.HasChars(i) && !s.hasPrefixAt(i, "?>") {
		i++
	}
	body := s.cur.Consume(i - 1)
	s.cur.ConsumePrefix("?>")
	return Token{Kind: PI, Body: body}
}

func (s *Scanner) scanComment() Token {
	s.cur.ConsumePrefix("<!--")
	i := 1
	for s.cur.HasChars(i) && !s.hasPrefixAt(i, "--") {
		i++
	}
	body := s.cur.Consume(i - 1)
	// Whitespace between "--" and the closing '>' is tolerated.
	s.cur.ConsumePrefix("--")
	for !s.done() && isSpace(s.cur.Peek(1)) {
		s.cur.Advance(1)
	}
	s.cur.ConsumePrefix(">")
	return Token{Kind: Comment, Body: body}
}

func (s *Scanner) scanCDATA() Token {
	s.cur.ConsumePrefix("<![CDATA[")
	i := 1
	for s.cur.HasChars(i) && !s.hasPrefixAt(i, "]]>") {
		i++
	}
	body := s.cur.Consume(i - 1)
	s.cur.ConsumePrefix("]]>")
	return Token{Kind: CDATA, Body: body}
}

// scanDoctype consumes "<!DOCTYPE" … ">" tracking '['/']' depth, since
// an internal subset may itself contain '>' characters (e.g. entity
// declarations) that must not terminate the doctype early.
func (s *Scanner) scanDoctype() Token {
	s.cur.Advance(len([]rune("<!DOCTYPE")))
	i := 1
	depth := 0
	for s.cur.HasChars(i) {
		switch s.cur.Peek(i) {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case '>':
			if depth == 0 {
				body := strings.TrimSpace(s.cur.Consume(i - 1))
				s.cur.Advance(1)
				return Token{Kind: Doctype, Body: body}
			}
		}
		i++
	}
	return Token{Kind: Doctype, Body: strings.TrimSpace(s.cur.Consume(i - 1))}
}

func (s *Scanner) scanEndTag() Token {
	s.cur.ConsumePrefix("</")
	i := 1
	for s.cur.HasChars(i) && s.cur.Peek(i) != '>' {
		i++
	}
	name := strings.TrimSpace(s.cur.Consume(i - 1))
	s.cur.ConsumePrefix(">")
	return Token{Kind: EndTag, Name: name}
}

func (s *Scanner) scanStartTag() Token {
	s.cur.Advance(1) // '<'
	i := 1
	for s.cur.HasChars(i) && !isNameEnd(s.cur.Peek(i)) {
		i++
	}
	name := s.cur.Consume(i - 1)

	var attrs []Attribute
	selfClosing := false
	for {
		s.skipSpace()
		if s.done() {
			break
		}
		if s.cur.Peek(1) == '>' {
			s.cur.Advance(1)
			break
		}
		if s.cur.Peek(1) == '/' {
			if end := s.selfCloseEnd(); end > 0 {
				selfClosing = true
				s.cur.Advance(end)
				break
			}
			// lone '/' with no '>' (optionally past whitespace) ahead of
			// it: drop it and keep scanning attributes.
			s.cur.Advance(1)
			continue
		}
		attr, ok := s.scanAttribute()
		if !ok {
			break
		}
		attrs = append(attrs, attr)
	}

	tok := Token{Kind: StartTag, Name: name, Attrs: attrs, SelfClosing: selfClosing}

	rawName := name
	if !s.isXML() {
		rawName = strings.ToLower(rawName)
	}
	if !selfClosing && (rawName == "script" || rawName == "style") {
		s.pendingRawEnd = rawName
	}
	return tok
}

// selfCloseEnd reports how many runes ahead of the cursor the tag's
// closing '>' sits, given that Peek(1) is already known to be '/' — the
// '/' may be followed by whitespace before the '>'. Returns 0 if no
// '>' follows, meaning the '/' is a stray character instead.
func (s *Scanner) selfCloseEnd() int {
	i := 2
	for s.cur.HasChars(i) && isSpace(s.cur.Peek(i)) {
		i++
	}
	if s.cur.Peek(i) == '>' {
		return i
	}
	return 0
}

func isNameEnd(r rune) bool {
	return r == 0 || r == '<' || r == '>' || r == '=' || isSpace(r) || r == '/'
}

func (s *Scanner) skipSpace() {
	for !s.done() && isSpace(s.cur.Peek(1)) {
		s.cur.Advance(1)
	}
}

func (s *Scanner) scanAttribute() (Attribute, bool) {
	i := 1
	for s.cur.HasChars(i) && !isAttrKeyEnd(s.cur.Peek(i)) {
		i++
	}
	key := s.cur.Consume(i - 1)
	if key == "" {
		// stuck on something unexpected; consume one rune so the loop
		// in scanStartTag always makes progress.
		if !s.done() {
			s.cur.Advance(1)
		}
		return Attribute{}, false
	}
	s.skipSpace()
	if s.cur.Peek(1) != '=' {
		return Attribute{Name: key, Value: AttrValue{}}, true
	}
	s.cur.Advance(1)
	s.skipSpace()

	value := s.scanAttrValue()
	return Attribute{Name: key, Value: AttrValue{Value: decodeEntities(value), HasValue: true}}, true
}

func isAttrKeyEnd(r rune) bool {
	return r == 0 || r == '<' || r == '>' || r == '=' || isSpace(r)
}

func (s *Scanner) scanAttrValue() string {
	if s.cur.Peek(1) == '"' || s.cur.Peek(1) == '\'' {
		q := s.cur.Peek(1)
		s.cur.Advance(1)
		i := 1
		for s.cur.HasChars(i) && s.cur.Peek(i) != q {
			i++
		}
		v := s.cur.Consume(i - 1)
		s.cur.ConsumePrefix(string(q))
		return v
	}
	i := 1
	for s.cur.HasChars(i) && s.cur.Peek(i) != '>' && !isSpace(s.cur.Peek(i)) {
		i++
	}
	return s.cur.Consume(i - 1)
}

// scanRawText consumes everything up to (but not including) the
// matching "</name" close tag for a script/style element, emitting the
// RawText token and queuing the matching EndTag token for the
// following Next call. If no close tag is ever found, the remainder of
// the document becomes the RawText body and no EndTag token is
// produced.
func (s *Scanner) scanRawText() Token {
	name := s.pendingRawEnd
	s.pendingRawEnd = ""
	closeTag := "</" + name

	i := 1
	for s.cur.HasChars(i) && !s.hasPrefixFoldAt(i, closeTag) {
		i++
	}
	body := s.cur.Consume(i - 1)
	if s.done() {
		return Token{Kind: RawText, Name: name, Data: body}
	}

	s.cur.ConsumePrefix("</")
	j := 1
	for s.cur.HasChars(j) && s.cur.Peek(j) != '>' {
		j++
	}
	s.cur.Advance(j - 1)
	s.cur.ConsumePrefix(">")
	s.queue = append(s.queue, Token{Kind: EndTag, Name: name})
	return Token{Kind: RawText, Name: name, Data: body}
}

