package token_test

import (
	"testing"

	"github.com/jhannah/mojo/token"
	"github.com/stretchr/testify/require"
)

func htmlScanner(src string) *token.Scanner {
	return token.New(src, func() bool { return false })
}

func collect(t *testing.T, s *token.Scanner) []token.Token {
	t.Helper()
	var out []token.Token
	for {
		tok, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func TestScanText(t *testing.T) {
	toks := collect(t, htmlScanner("hello world"))
	require.Len(t, toks, 1)
	require.Equal(t, token.Text, toks[0].Kind)
	require.Equal(t, "hello world", toks[0].Data)
}

func TestScanEntityInText(t *testing.T) {
	toks := collect(t, htmlScanner("a &amp; b"))
	require.Len(t, toks, 1)
	require.Equal(t, "a & b", toks[0].Data)
}

func TestScanRunawayLessThan(t *testing.T) {
	toks := collect(t, htmlScanner("a < b"))
	require.Len(t, toks, 1)
	require.Equal(t, token.Text, toks[0].Kind)
	require.Equal(t, "a < b", toks[0].Data)
}

func TestScanStartAndEndTag(t *testing.T) {
	toks := collect(t, htmlScanner(`<div id="x">hi</div>`))
	require.Len(t, toks, 3)
	require.Equal(t, token.StartTag, toks[0].Kind)
	require.Equal(t, "div", toks[0].Name)
	require.Len(t, toks[0].Attrs, 1)
	require.Equal(t, "id", toks[0].Attrs[0].Name)
	require.Equal(t, "x", toks[0].Attrs[0].Value.Value)
	require.True(t, toks[0].Attrs[0].Value.HasValue)

	require.Equal(t, token.Text, toks[1].Kind)
	require.Equal(t, "hi", toks[1].Data)

	require.Equal(t, token.EndTag, toks[2].Kind)
	require.Equal(t, "div", toks[2].Name)
}

func TestScanValuelessAttribute(t *testing.T) {
	toks := collect(t, htmlScanner(`<input disabled>`))
	require.Len(t, toks, 1)
	require.Len(t, toks[0].Attrs, 1)
	require.Equal(t, "disabled", toks[0].Attrs[0].Name)
	require.False(t, toks[0].Attrs[0].Value.HasValue)
}

func TestScanSelfClosing(t *testing.T) {
	toks := collect(t, htmlScanner(`<br/>`))
	require.Len(t, toks, 1)
	require.True(t, toks[0].SelfClosing)
	require.Equal(t, "br", toks[0].Name)
}

func TestScanComment(t *testing.T) {
	toks := collect(t, htmlScanner(`<!-- hello -- >`))
	require.Len(t, toks, 1)
	require.Equal(t, token.Comment, toks[0].Kind)
	require.Equal(t, " hello ", toks[0].Body)
}

func TestScanCDATA(t *testing.T) {
	toks := collect(t, htmlScanner(`<![CDATA[1<2]]>`))
	require.Len(t, toks, 1)
	require.Equal(t, token.CDATA, toks[0].Kind)
	require.Equal(t, "1<2", toks[0].Body)
}

func TestScanDoctypeWithInternalSubset(t *testing.T) {
	toks := collect(t, htmlScanner(`<!DOCTYPE html [<!ENTITY x "y">]>`))
	require.Len(t, toks, 1)
	require.Equal(t, token.Doctype, toks[0].Kind)
	require.Equal(t, `html [<!ENTITY x "y">]`, toks[0].Body)
}

func TestScanPI(t *testing.T) {
	toks := collect(t, htmlScanner(`<?xml version="1.0"?>`))
	require.Len(t, toks, 1)
	require.Equal(t, token.PI, toks[0].Kind)
	require.Equal(t, `xml version="1.0"`, toks[0].Body)
}

func TestScanScriptRawText(t *testing.T) {
	toks := collect(t, htmlScanner(`<script>if (1<2) a()</script>`))
	require.Len(t, toks, 3)
	require.Equal(t, token.StartTag, toks[0].Kind)
	require.Equal(t, token.RawText, toks[1].Kind)
	require.Equal(t, "if (1<2) a()", toks[1].Data)
	require.Equal(t, token.EndTag, toks[2].Kind)
	require.Equal(t, "script", toks[2].Name)
}

func TestScanScriptRawTextUnterminated(t *testing.T) {
	toks := collect(t, htmlScanner(`<script>no closing tag`))
	require.Len(t, toks, 2)
	require.Equal(t, token.RawText, toks[1].Kind)
	require.Equal(t, "no closing tag", toks[1].Data)
}

func TestScanXMLModePreservesCase(t *testing.T) {
	s := token.New(`<Foo/>`, func() bool { return true })
	toks := collect(t, s)
	require.Len(t, toks, 1)
	require.Equal(t, "Foo", toks[0].Name)
}
