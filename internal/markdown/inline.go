package markdown

import (
	"fmt"
	"strings"
)

// SpanKind identifies the style of an inline span.
type SpanKind uint8

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
	SpanImage
)

var spanKindNames = [...]string{
	SpanPlain:  "plain",
	SpanBold:   "bold",
	SpanItalic: "italic",
	SpanCode:   "code",
	SpanLink:   "link",
	SpanImage:  "image",
}

func (k SpanKind) String() string {
	if int(k) < len(spanKindNames) {
		return spanKindNames[k]
	}
	return fmt.Sprintf("SpanKind(%d)", k)
}

// TextSpan is one inline unit of text. URL is set only for links and images;
// for images Text holds the alt text.
type TextSpan struct {
	Kind SpanKind
	Text string
	URL  string
}

// delimiter describes one inline form. match is called only when the input at
// pos starts with open; it returns the span and the offset just past the form,
// or ok=false when the form is never closed.
type delimiter struct {
	open  string
	kind  SpanKind
	match func(s string, pos int) (span TextSpan, end int, ok bool)
}

// delimiters lists inline forms in match priority. At each scan position the
// first form whose opener is present wins, so "**" is tried before "*" and
// "![" before "[".
var delimiters = []delimiter{
	{open: "**", kind: SpanBold, match: enclosed("**", SpanBold)},
	{open: "*", kind: SpanItalic, match: enclosed("*", SpanItalic)},
	{open: "`", kind: SpanCode, match: enclosed("`", SpanCode)},
	{open: "![", kind: SpanImage, match: bracketed("![", SpanImage)},
	{open: "[", kind: SpanLink, match: bracketed("[", SpanLink)},
}

// enclosed matches forms that open and close with the same marker.
func enclosed(marker string, kind SpanKind) func(string, int) (TextSpan, int, bool) {
	return func(s string, pos int) (TextSpan, int, bool) {
		start := pos + len(marker)
		idx := strings.Index(s[start:], marker)
		if idx < 0 {
			return TextSpan{}, 0, false
		}
		return TextSpan{Kind: kind, Text: s[start : start+idx]}, start + idx + len(marker), true
	}
}

// bracketed matches "[text](url)" style forms after the given opener.
func bracketed(opener string, kind SpanKind) func(string, int) (TextSpan, int, bool) {
	return func(s string, pos int) (TextSpan, int, bool) {
		start := pos + len(opener)
		mid := strings.IndexByte(s[start:], ']')
		if mid < 0 || !strings.HasPrefix(s[start+mid+1:], "(") {
			return TextSpan{}, 0, false
		}
		urlStart := start + mid + 2
		closeIdx := strings.IndexByte(s[urlStart:], ')')
		if closeIdx < 0 {
			return TextSpan{}, 0, false
		}
		return TextSpan{
			Kind: kind,
			Text: s[start : start+mid],
			URL:  s[urlStart : urlStart+closeIdx],
		}, urlStart + closeIdx + 1, true
	}
}

// Tokenize splits text into an ordered sequence of spans covering the whole
// input. Span contents are taken verbatim; styles do not nest.
func Tokenize(text string) ([]TextSpan, error) {
	var (
		spans     []TextSpan
		plainFrom int
	)

	flush := func(to int) {
		if to > plainFrom {
			spans = append(spans, TextSpan{Kind: SpanPlain, Text: text[plainFrom:to]})
		}
	}

	for pos := 0; pos < len(text); {
		d, ok := delimiterAt(text, pos)
		if !ok {
			pos++
			continue
		}

		span, end, closed := d.match(text, pos)
		if !closed {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnmatchedDelimiter, d.open, pos)
		}

		flush(pos)
		spans = append(spans, span)
		pos = end
		plainFrom = end
	}
	flush(len(text))

	return spans, nil
}

// delimiterAt returns the highest-priority form whose opener starts at pos.
func delimiterAt(s string, pos int) (delimiter, bool) {
	switch s[pos] {
	case '*', '`', '!', '[':
	default:
		return delimiter{}, false
	}
	for _, d := range delimiters {
		if strings.HasPrefix(s[pos:], d.open) {
			return d, true
		}
	}
	return delimiter{}, false
}
