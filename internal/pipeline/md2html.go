package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/markdown"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*NativeConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)

// NativeConverter converts Markdown with the built-in block and inline parser.
// Parse failures are returned unwrapped so callers can match the markdown
// package's sentinel errors.
type NativeConverter struct {
	parser *markdown.Parser
}

// NewNativeConverter creates a NativeConverter. A nil highlighter leaves
// fenced code as plain <pre><code>.
func NewNativeConverter(h markdown.CodeHighlighter) *NativeConverter {
	var opts []markdown.ParserOption
	if h != nil {
		opts = append(opts, markdown.WithCodeHighlighter(h))
	}
	return &NativeConverter{parser: markdown.NewParser(opts...)}
}

// ToHTML parses content and renders the root <div> fragment.
func (c *NativeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root, err := c.parser.Parse(content)
	if err != nil {
		return "", err
	}
	return htmlnode.Render(root), nil
}

// GoldmarkConverter converts Markdown to HTML using goldmark (CommonMark + GFM).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions.
// A non-empty highlightStyle enables Chroma highlighting with CSS classes,
// matching the classes ChromaHighlighter emits.
func NewGoldmarkConverter(highlightStyle string) *GoldmarkConverter {
	extensions := []goldmark.Extender{
		extension.GFM,
		extension.Footnote,
	}
	if highlightStyle != "" {
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(highlightStyle),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// WithUnsafe is not used: raw HTML in sources is omitted.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
