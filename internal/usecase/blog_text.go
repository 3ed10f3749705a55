package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

const (
	excerptLength  = 150
	wordsPerMinute = 200
)

// PlainText extracts the visible text of an HTML fragment. Block-level tags
// become spaces so words on either side do not run together.
func PlainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail: keep what was read so far
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				skip++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				if skip > 0 {
					skip--
				}
			}
			b.WriteByte(' ')
		}
	}
}

// Excerpt shortens text to at most n runes, cutting at the last space at or
// before n, and appends "...". Text that already fits is returned unchanged.
func Excerpt(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}

	cut := n
	for i := n; i > 0; i-- {
		if unicode.IsSpace(r[i]) {
			cut = i
			break
		}
	}
	return strings.TrimRightFunc(string(r[:cut]), unicode.IsSpace) + "..."
}

// ReadingMinutes assumes 200 words per minute, rounding up.
func ReadingMinutes(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 1
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
