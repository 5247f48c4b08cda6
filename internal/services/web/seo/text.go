package seo

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PlainText strips markup from content. Block-level elements and <br>
// become newlines, entities are decoded, and script or style bodies are
// dropped. Plain text passes through unchanged.
func PlainText(content string) string {
	if !strings.ContainsAny(content, "<&") {
		return content
	}
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(content))
	skip := 0
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail; either way the text so far is the result.
			return strings.TrimSpace(b.String())
		case html.TextToken:
			if skip == 0 {
				b.Write(tokenizer.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			switch a := atom.Lookup(name); {
			case a == atom.Script || a == atom.Style:
				skip++
			case a == atom.Br:
				b.WriteByte('\n')
			case isBlock(a):
				newline(&b)
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			switch a := atom.Lookup(name); {
			case a == atom.Script || a == atom.Style:
				if skip > 0 {
					skip--
				}
			case isBlock(a):
				newline(&b)
			}
		}
	}
}

// Description returns the meta description for content: the first
// DescriptionLength characters of its text with newlines flattened, plus
// an ellipsis when the text was longer.
func Description(content string) string {
	excerpt, truncated := flatExcerpt(content)
	if truncated {
		excerpt += "..."
	}
	return excerpt
}

func flatExcerpt(content string) (string, bool) {
	text := []rune(PlainText(content))
	truncated := len(text) > DescriptionLength
	if truncated {
		text = text[:DescriptionLength]
	}
	return strings.ReplaceAll(string(text), "\n", " "), truncated
}

// Excerpt returns the first n characters of content's text followed by an
// ellipsis, the teaser shown on post cards.
func Excerpt(content string, n int) string {
	text := []rune(PlainText(content))
	if n >= 0 && len(text) > n {
		text = text[:n]
	}
	return string(text) + "..."
}

// Paragraphs splits content's text into the paragraphs of the article body.
func Paragraphs(content string) []string {
	return strings.Split(PlainText(content), "\n")
}

func newline(b *strings.Builder) {
	s := b.String()
	if s == "" || strings.HasSuffix(s, "\n") {
		return
	}
	b.WriteByte('\n')
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol, atom.Blockquote, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Section, atom.Article, atom.Tr:
		return true
	default:
		return false
	}
}
