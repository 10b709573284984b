package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// CodeHighlighter renders fenced code that declares a language. Returning
// ok=false keeps the default <pre><code> rendering for that block.
type CodeHighlighter interface {
	Highlight(lang, code string) (html string, ok bool, err error)
}

// Parser converts Markdown into an HTML node tree.
// The zero value is ready to use and is safe for concurrent use.
type Parser struct {
	highlighter CodeHighlighter
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithCodeHighlighter renders fenced code blocks that name a language with h.
func WithCodeHighlighter(h CodeHighlighter) ParserOption {
	return func(p *Parser) {
		p.highlighter = h
	}
}

// NewParser creates a Parser with the given options.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts a Markdown document into a root <div> whose children are the
// document's blocks in order. Any inline parse failure aborts the whole
// document; no partial tree is returned.
func Parse(doc string) (*htmlnode.Node, error) {
	return (&Parser{}).Parse(doc)
}

// Parse converts a Markdown document into a root <div> node.
func (p *Parser) Parse(doc string) (*htmlnode.Node, error) {
	root := htmlnode.Element("div")
	for _, b := range ParseBlocks(doc) {
		n, err := p.BlockNode(b)
		if err != nil {
			return nil, err
		}
		root.Append(n)
	}
	return root, nil
}

// BlockNode maps a block to its element shell with inline children.
func BlockNode(b Block) (*htmlnode.Node, error) {
	return (&Parser{}).BlockNode(b)
}

// BlockNode maps a block to its element shell with inline children.
func (p *Parser) BlockNode(b Block) (*htmlnode.Node, error) {
	switch b.Kind {
	case BlockHeading:
		if b.Level < 1 || b.Level > maxHeadingLevel {
			return nil, fmt.Errorf("%w: heading level %d", ErrUnknownKind, b.Level)
		}
		return inlineElement("h"+strconv.Itoa(b.Level), strings.Join(b.Lines, " "))
	case BlockCode:
		return p.codeNode(b)
	case BlockQuote:
		return inlineElement("blockquote", strings.Join(b.Lines, " "))
	case BlockUnorderedList:
		return listNode("ul", b.Lines)
	case BlockOrderedList:
		return listNode("ol", b.Lines)
	case BlockParagraph:
		return inlineElement("p", strings.Join(b.Lines, " "))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, b.Kind)
	}
}

// SpanNode maps one inline span to a leaf or a small element.
func SpanNode(s TextSpan) (*htmlnode.Node, error) {
	switch s.Kind {
	case SpanPlain:
		return htmlnode.Text(s.Text), nil
	case SpanBold:
		return htmlnode.Element("b", htmlnode.Text(s.Text)), nil
	case SpanItalic:
		return htmlnode.Element("i", htmlnode.Text(s.Text)), nil
	case SpanCode:
		return htmlnode.Element("code", htmlnode.Text(s.Text)), nil
	case SpanLink:
		return htmlnode.Element("a", htmlnode.Text(s.Text)).SetAttr("href", s.URL), nil
	case SpanImage:
		return htmlnode.Element("img").SetAttr("src", s.URL).SetAttr("alt", s.Text), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, s.Kind)
	}
}

// InlineNodes tokenizes text and maps every span to a node.
func InlineNodes(text string) ([]*htmlnode.Node, error) {
	spans, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]*htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		n, err := SpanNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func inlineElement(tag, text string) (*htmlnode.Node, error) {
	children, err := InlineNodes(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.Element(tag, children...), nil
}

func listNode(tag string, items []string) (*htmlnode.Node, error) {
	list := htmlnode.Element(tag)
	for _, item := range items {
		li, err := inlineElement("li", item)
		if err != nil {
			return nil, err
		}
		list.Append(li)
	}
	return list, nil
}

func (p *Parser) codeNode(b Block) (*htmlnode.Node, error) {
	code := strings.Join(b.Lines, "\n")
	if p.highlighter != nil && b.Lang != "" {
		html, ok, err := p.highlighter.Highlight(b.Lang, code)
		if err != nil {
			return nil, err
		}
		if ok {
			return htmlnode.Text(html), nil
		}
	}
	return htmlnode.Element("pre", htmlnode.Element("code", htmlnode.Text(code))), nil
}
