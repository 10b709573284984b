package markdown_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/markdown"
)

// ---------------------------------------------------------------------------
// TestParse - Full document to rendered HTML
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty document",
			input: "",
			want:  "<div></div>",
		},
		{
			name:  "bold and italic",
			input: "# Test Title\n**Bold** and *italic*",
			want:  "<div><h1>Test Title</h1><p><b>Bold</b> and <i>italic</i></p></div>",
		},
		{
			name:  "paragraph lines joined with a space",
			input: "first line\nsecond line",
			want:  "<div><p>first line second line</p></div>",
		},
		{
			name:  "ordered list",
			input: "# Lists Test\n1. First item\n2. Second item\n3. Third item",
			want:  "<div><h1>Lists Test</h1><ol><li>First item</li><li>Second item</li><li>Third item</li></ol></div>",
		},
		{
			name:  "list items are tokenized",
			input: "- **a**\n- [b](c)",
			want:  `<div><ul><li><b>a</b></li><li><a href="c">b</a></li></ul></div>`,
		},
		{
			name:  "quote lines joined",
			input: "> one\n> two",
			want:  "<div><blockquote>one two</blockquote></div>",
		},
		{
			name:  "image",
			input: "![alt text](image.png)",
			want:  `<div><p><img src="image.png" alt="alt text"></img></p></div>`,
		},
		{
			name:  "inline code",
			input: "Use `fmt.Println` here",
			want:  "<div><p>Use <code>fmt.Println</code> here</p></div>",
		},
		{
			name:  "code block is not tokenized",
			input: "```\n**not bold** *x [y\n```",
			want:  "<div><pre><code>**not bold** *x [y</code></pre></div>",
		},
		{
			name:  "code block keeps blank lines",
			input: "```\na\n\nb\n```",
			want:  "<div><pre><code>a\n\nb</code></pre></div>",
		},
		{
			name:  "heading levels",
			input: "## Two\n\n### Three",
			want:  "<div><h2>Two</h2><h3>Three</h3></div>",
		},
		{
			name:  "no escaping",
			input: "a < b & c",
			want:  "<div><p>a < b & c</p></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := markdown.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got := htmlnode.Render(root); got != tt.want {
				t.Errorf("Parse(%q) rendered\n got: %s\nwant: %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_ComplexPage(t *testing.T) {
	t.Parallel()

	input := "# Complex Page\n* List item 1\n* List item 2\n\n[Link](https://example.com)\n\n> This is a blockquote\n\n## Second Level Header\n\n```\ndef code():\n    pass\n```"

	root, err := markdown.Parse(input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	var tags []string
	for _, c := range root.Children {
		tags = append(tags, c.Tag)
	}
	if diff := cmp.Diff([]string{"h1", "ul", "p", "blockquote", "h2", "pre"}, tags); diff != "" {
		t.Fatalf("block order mismatch (-want +got):\n%s", diff)
	}

	if n := len(root.Children[1].Children); n != 2 {
		t.Errorf("ul has %d children, want 2", n)
	}

	link := root.Children[2].Children[0]
	if href, _ := link.Attr("href"); link.Tag != "a" || href != "https://example.com" {
		t.Errorf("paragraph child = <%s href=%q>, want <a href=\"https://example.com\">", link.Tag, href)
	}

	code := root.Children[5].Children[0]
	if code.Tag != "code" {
		t.Fatalf("pre child = %q, want code", code.Tag)
	}
	if got := code.TextContent(); got != "def code():\n    pass" {
		t.Errorf("code text = %q, want %q", got, "def code():\n    pass")
	}

	want := `<div><h1>Complex Page</h1><ul><li>List item 1</li><li>List item 2</li></ul>` +
		`<p><a href="https://example.com">Link</a></p><blockquote>This is a blockquote</blockquote>` +
		"<h2>Second Level Header</h2><pre><code>def code():\n    pass</code></pre></div>"
	if got := htmlnode.Render(root); got != want {
		t.Errorf("rendered\n got: %s\nwant: %s", got, want)
	}
}

func TestParse_OrderedListOfN(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 9, 10, 25} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			lines := make([]string, n)
			for i := range lines {
				lines[i] = fmt.Sprintf("%d. item %d", i+1, i+1)
			}

			root, err := markdown.Parse(strings.Join(lines, "\n"))
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if len(root.Children) != 1 || root.Children[0].Tag != "ol" {
				t.Fatalf("root children = %s, want single <ol>", htmlnode.Render(root))
			}
			items := root.Children[0].Children
			if len(items) != n {
				t.Fatalf("ol has %d items, want %d", len(items), n)
			}
			for i, li := range items {
				if want := fmt.Sprintf("item %d", i+1); li.Tag != "li" || li.TextContent() != want {
					t.Errorf("item %d = <%s>%s, want <li>%s", i, li.Tag, li.TextContent(), want)
				}
			}
		})
	}
}

func TestParse_DelimiterProperties(t *testing.T) {
	t.Parallel()

	for _, x := range []string{"X", "hello world", "a_b", "42"} {
		bold, err := markdown.Parse("before **" + x + "** after")
		if err != nil {
			t.Fatalf("Parse(bold %q) error: %v", x, err)
		}
		if got := htmlnode.Render(bold); !strings.Contains(got, "<b>"+x+"</b>") {
			t.Errorf("bold %q rendered %s", x, got)
		}

		italic, err := markdown.Parse("before *" + x + "* after")
		if err != nil {
			t.Fatalf("Parse(italic %q) error: %v", x, err)
		}
		if got := htmlnode.Render(italic); !strings.Contains(got, "<i>"+x+"</i>") {
			t.Errorf("italic %q rendered %s", x, got)
		}
	}
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()

	input := "# T\n\n**b** *i* `c` [l](u) ![a](s)\n\n- x\n- y"

	first, err := markdown.Parse(input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	second, err := markdown.Parse(input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if htmlnode.Render(first) != htmlnode.Render(second) {
		t.Error("two renders of the same document differ")
	}
}

func TestParse_UnmatchedDelimiterAborts(t *testing.T) {
	t.Parallel()

	tests := []string{
		"*italic without close",
		"# Fine\n\nfine paragraph\n\n**broken",
		"- ok\n- [broken",
		"> `open",
	}

	for _, input := range tests {
		root, err := markdown.Parse(input)
		if !errors.Is(err, markdown.ErrUnmatchedDelimiter) {
			t.Errorf("Parse(%q) error = %v, want ErrUnmatchedDelimiter", input, err)
		}
		if root != nil {
			t.Errorf("Parse(%q) returned a partial tree", input)
		}
	}
}

func TestParse_WellFormedHTML(t *testing.T) {
	t.Parallel()

	input := "# Title\n\nSome **bold** and [a link](https://example.com).\n\n1. one\n2. two\n\n> quote\n\n```\ncode\n```"
	root, err := markdown.Parse(input)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	doc, err := html.Parse(strings.NewReader(htmlnode.Render(root)))
	if err != nil {
		t.Fatalf("html.Parse() error: %v", err)
	}

	counts := map[string]int{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			counts[n.Data]++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	for tag, want := range map[string]int{"div": 1, "h1": 1, "p": 1, "b": 1, "a": 1, "ol": 1, "li": 2, "blockquote": 1, "pre": 1, "code": 1} {
		if counts[tag] != want {
			t.Errorf("<%s> count = %d, want %d", tag, counts[tag], want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestBuilder - Span and block mapping
// ---------------------------------------------------------------------------

func TestSpanNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		span markdown.TextSpan
		want string
	}{
		{markdown.TextSpan{Kind: markdown.SpanPlain, Text: "p"}, "p"},
		{markdown.TextSpan{Kind: markdown.SpanBold, Text: "b"}, "<b>b</b>"},
		{markdown.TextSpan{Kind: markdown.SpanItalic, Text: "i"}, "<i>i</i>"},
		{markdown.TextSpan{Kind: markdown.SpanCode, Text: "c"}, "<code>c</code>"},
		{markdown.TextSpan{Kind: markdown.SpanLink, Text: "l", URL: "u"}, `<a href="u">l</a>`},
		{markdown.TextSpan{Kind: markdown.SpanImage, Text: "a", URL: "s"}, `<img src="s" alt="a"></img>`},
	}

	for _, tt := range tests {
		t.Run(tt.span.Kind.String(), func(t *testing.T) {
			t.Parallel()

			n, err := markdown.SpanNode(tt.span)
			if err != nil {
				t.Fatalf("SpanNode() error: %v", err)
			}
			if got := htmlnode.Render(n); got != tt.want {
				t.Errorf("SpanNode(%+v) = %q, want %q", tt.span, got, tt.want)
			}
		})
	}
}

func TestSpanNode_ImageHasNoChildren(t *testing.T) {
	t.Parallel()

	n, err := markdown.SpanNode(markdown.TextSpan{Kind: markdown.SpanImage, Text: "a", URL: "s"})
	if err != nil {
		t.Fatalf("SpanNode() error: %v", err)
	}
	if len(n.Children) != 0 || n.Value != "" {
		t.Errorf("img node = %+v, want no children and no value", n)
	}
}

func TestUnknownKinds(t *testing.T) {
	t.Parallel()

	if _, err := markdown.SpanNode(markdown.TextSpan{Kind: markdown.SpanKind(200)}); !errors.Is(err, markdown.ErrUnknownKind) {
		t.Errorf("SpanNode(unknown) error = %v, want ErrUnknownKind", err)
	}
	if _, err := markdown.BlockNode(markdown.Block{Kind: markdown.BlockKind(200)}); !errors.Is(err, markdown.ErrUnknownKind) {
		t.Errorf("BlockNode(unknown) error = %v, want ErrUnknownKind", err)
	}
	if _, err := markdown.BlockNode(markdown.Block{Kind: markdown.BlockHeading, Level: 7}); !errors.Is(err, markdown.ErrUnknownKind) {
		t.Errorf("BlockNode(h7) error = %v, want ErrUnknownKind", err)
	}
}

func TestBlockNode_EveryKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		block markdown.Block
		want  string
	}{
		{markdown.Block{Kind: markdown.BlockParagraph, Lines: []string{"a", "b"}}, "<p>a b</p>"},
		{markdown.Block{Kind: markdown.BlockHeading, Level: 4, Lines: []string{"h"}}, "<h4>h</h4>"},
		{markdown.Block{Kind: markdown.BlockCode, Lines: []string{"x", "y"}}, "<pre><code>x\ny</code></pre>"},
		{markdown.Block{Kind: markdown.BlockQuote, Lines: []string{"q"}}, "<blockquote>q</blockquote>"},
		{markdown.Block{Kind: markdown.BlockUnorderedList, Lines: []string{"u"}}, "<ul><li>u</li></ul>"},
		{markdown.Block{Kind: markdown.BlockOrderedList, Lines: []string{"o"}}, "<ol><li>o</li></ol>"},
	}

	for _, tt := range tests {
		t.Run(tt.block.Kind.String(), func(t *testing.T) {
			t.Parallel()

			n, err := markdown.BlockNode(tt.block)
			if err != nil {
				t.Fatalf("BlockNode() error: %v", err)
			}
			if got := htmlnode.Render(n); got != tt.want {
				t.Errorf("BlockNode() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParser - Code highlighting hook
// ---------------------------------------------------------------------------

type fakeHighlighter struct {
	html string
	ok   bool
	err  error
	seen []string
}

func (f *fakeHighlighter) Highlight(lang, code string) (string, bool, error) {
	f.seen = append(f.seen, lang+":"+code)
	return f.html, f.ok, f.err
}

func TestParser_CodeHighlighter(t *testing.T) {
	t.Parallel()

	t.Run("language block is highlighted", func(t *testing.T) {
		t.Parallel()

		h := &fakeHighlighter{html: `<pre class="chroma">hl</pre>`, ok: true}
		root, err := markdown.NewParser(markdown.WithCodeHighlighter(h)).Parse("```go\nx := 1\n```")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if got := htmlnode.Render(root); got != `<div><pre class="chroma">hl</pre></div>` {
			t.Errorf("rendered %q", got)
		}
		if diff := cmp.Diff([]string{"go:x := 1"}, h.seen); diff != "" {
			t.Errorf("highlighter calls mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("block without language is untouched", func(t *testing.T) {
		t.Parallel()

		h := &fakeHighlighter{html: "unused", ok: true}
		root, err := markdown.NewParser(markdown.WithCodeHighlighter(h)).Parse("```\nx\n```")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if got := htmlnode.Render(root); got != "<div><pre><code>x</code></pre></div>" {
			t.Errorf("rendered %q", got)
		}
		if len(h.seen) != 0 {
			t.Errorf("highlighter called %d times, want 0", len(h.seen))
		}
	})

	t.Run("declined language falls back", func(t *testing.T) {
		t.Parallel()

		h := &fakeHighlighter{ok: false}
		root, err := markdown.NewParser(markdown.WithCodeHighlighter(h)).Parse("```nope\nx\n```")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		if got := htmlnode.Render(root); got != "<div><pre><code>x</code></pre></div>" {
			t.Errorf("rendered %q", got)
		}
	})

	t.Run("highlighter error aborts", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		h := &fakeHighlighter{err: boom}
		if _, err := markdown.NewParser(markdown.WithCodeHighlighter(h)).Parse("```go\nx\n```"); !errors.Is(err, boom) {
			t.Errorf("Parse() error = %v, want %v", err, boom)
		}
	})
}
