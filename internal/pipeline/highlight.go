package pipeline

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-md2site/internal/markdown"
)

// DefaultHighlightStyle is used when highlighting is enabled without a style.
const DefaultHighlightStyle = "github"

// Sentinel errors for code highlighting.
var (
	ErrHighlight          = errors.New("code highlighting failed")
	ErrUnknownHighlighter = errors.New("unknown highlight style")
)

// Compile-time interface check.
var _ markdown.CodeHighlighter = (*ChromaHighlighter)(nil)

// ChromaHighlighter renders fenced code with Chroma using CSS classes,
// so the page needs the stylesheet returned by CSS.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a highlighter for the named Chroma style.
// An empty name selects DefaultHighlightStyle.
func NewChromaHighlighter(styleName string) (*ChromaHighlighter, error) {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownHighlighter, styleName, strings.Join(HighlightStyles(), ", "))
	}
	return &ChromaHighlighter{
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}, nil
}

// Highlight renders code for lang. Unknown languages return ok=false so the
// caller keeps its plain rendering.
func (h *ChromaHighlighter) Highlight(lang, code string) (string, bool, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false, nil
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false, fmt.Errorf("%w: tokenising %s: %v", ErrHighlight, lang, err)
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", false, fmt.Errorf("%w: formatting %s: %v", ErrHighlight, lang, err)
	}
	return buf.String(), true, nil
}

// CSS returns the stylesheet for the classes emitted by Highlight.
func (h *ChromaHighlighter) CSS() (string, error) {
	var buf strings.Builder
	if err := h.formatter.WriteCSS(&buf, h.style); err != nil {
		return "", fmt.Errorf("%w: writing stylesheet: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}

// StyleName returns the Chroma style in use.
func (h *ChromaHighlighter) StyleName() string {
	return h.style.Name
}

// HighlightStyles lists registered Chroma style names, sorted.
func HighlightStyles() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
