package markdown

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestSplitBlocks - Blank-line segmentation
// ---------------------------------------------------------------------------

func TestSplitBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty document",
			input: "",
			want:  nil,
		},
		{
			name:  "only blank lines",
			input: "\n\n  \n\t\n",
			want:  nil,
		},
		{
			name:  "single chunk",
			input: "one line",
			want:  []string{"one line"},
		},
		{
			name:  "two chunks",
			input: "first\n\nsecond",
			want:  []string{"first", "second"},
		},
		{
			name:  "many blank lines collapse",
			input: "# Multiple Newlines\n\n\n\nSome content",
			want:  []string{"# Multiple Newlines", "Some content"},
		},
		{
			name:  "whitespace-only line splits",
			input: "a\n   \nb",
			want:  []string{"a", "b"},
		},
		{
			name:  "single line breaks preserved",
			input: "* a\n* b\n\ntext",
			want:  []string{"* a\n* b", "text"},
		},
		{
			name:  "leading and trailing blank regions",
			input: "\n\n  para  \n\n",
			want:  []string{"para"},
		},
		{
			name:  "fenced code keeps internal blank lines",
			input: "```\nline one\n\nline two\n```\n\nafter",
			want:  []string{"```\nline one\n\nline two\n```", "after"},
		},
		{
			name:  "fence with language",
			input: "```go\na\n\nb\n```",
			want:  []string{"```go\na\n\nb\n```"},
		},
		{
			name:  "fence after heading keeps blank lines",
			input: "# Code\n```\na\n\nb\n```",
			want:  []string{"# Code\n```\na\n\nb\n```"},
		},
		{
			name:  "fence inside paragraph still splits",
			input: "Intro:\n```\nx\n\ny\n```",
			want:  []string{"Intro:\n```\nx", "y\n```"},
		},
		{
			name:  "unclosed fence does not swallow document",
			input: "```\ncode\n\nnext",
			want:  []string{"```\ncode", "next"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitBlocks(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitBlocks(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestClassifyBlock - Block typing in priority order
// ---------------------------------------------------------------------------

func TestClassifyBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		chunk    string
		want     Block
		wantRest []string
	}{
		{
			name:  "h1",
			chunk: "# Title",
			want:  Block{Kind: BlockHeading, Level: 1, Lines: []string{"Title"}},
		},
		{
			name:  "h6",
			chunk: "###### Deep",
			want:  Block{Kind: BlockHeading, Level: 6, Lines: []string{"Deep"}},
		},
		{
			name:  "seven hashes is a paragraph",
			chunk: "####### Too deep",
			want:  Block{Kind: BlockParagraph, Lines: []string{"####### Too deep"}},
		},
		{
			name:  "missing space is a paragraph",
			chunk: "#NoSpace",
			want:  Block{Kind: BlockParagraph, Lines: []string{"#NoSpace"}},
		},
		{
			name:     "heading consumes first line only",
			chunk:    "# Title\n* a\n* b",
			want:     Block{Kind: BlockHeading, Level: 1, Lines: []string{"Title"}},
			wantRest: []string{"* a", "* b"},
		},
		{
			name:  "code block",
			chunk: "```\nx := 1\n\n  y := 2\n```",
			want:  Block{Kind: BlockCode, Lines: []string{"x := 1", "", "  y := 2"}},
		},
		{
			name:  "code block with language",
			chunk: "```python\npass\n```",
			want:  Block{Kind: BlockCode, Lines: []string{"pass"}, Lang: "python"},
		},
		{
			name:  "empty code block",
			chunk: "```\n```",
			want:  Block{Kind: BlockCode, Lines: []string{}},
		},
		{
			name:  "lone fence is a paragraph",
			chunk: "```",
			want:  Block{Kind: BlockParagraph, Lines: []string{"```"}},
		},
		{
			name:  "quote strips marker and one space",
			chunk: "> first\n>second\n>  third",
			want:  Block{Kind: BlockQuote, Lines: []string{"first", "second", " third"}},
		},
		{
			name:  "mixed quote is a paragraph",
			chunk: "> quoted\nnot quoted",
			want:  Block{Kind: BlockParagraph, Lines: []string{"> quoted", "not quoted"}},
		},
		{
			name:  "unordered list with both markers",
			chunk: "* one\n- two",
			want:  Block{Kind: BlockUnorderedList, Lines: []string{"one", "two"}},
		},
		{
			name:  "bullet without space is a paragraph",
			chunk: "*one*\n- two",
			want:  Block{Kind: BlockParagraph, Lines: []string{"*one*", "- two"}},
		},
		{
			name:  "ordered list",
			chunk: "1. First item\n2. Second item\n3. Third item",
			want:  Block{Kind: BlockOrderedList, Lines: []string{"First item", "Second item", "Third item"}},
		},
		{
			name:  "broken sequence falls through to paragraph",
			chunk: "1. a\n3. b",
			want:  Block{Kind: BlockParagraph, Lines: []string{"1. a", "3. b"}},
		},
		{
			name:  "sequence must start at one",
			chunk: "2. a\n3. b",
			want:  Block{Kind: BlockParagraph, Lines: []string{"2. a", "3. b"}},
		},
		{
			name:  "paragraph fallback",
			chunk: "Some text\nwrapped",
			want:  Block{Kind: BlockParagraph, Lines: []string{"Some text", "wrapped"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, rest := ClassifyBlock(strings.Split(tt.chunk, "\n"))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ClassifyBlock(%q) mismatch (-want +got):\n%s", tt.chunk, diff)
			}
			if diff := cmp.Diff(tt.wantRest, rest); diff != "" {
				t.Errorf("ClassifyBlock(%q) rest mismatch (-want +got):\n%s", tt.chunk, diff)
			}
		})
	}
}

func TestOrderedItems_LongSequence(t *testing.T) {
	t.Parallel()

	var lines []string
	for i := 1; i <= 12; i++ {
		lines = append(lines, strings.Repeat("x", i))
	}
	for i := range lines {
		lines[i] = strconv.Itoa(i+1) + ". " + lines[i]
	}

	b, _ := ClassifyBlock(lines)
	if b.Kind != BlockOrderedList {
		t.Fatalf("Kind = %s, want ordered_list", b.Kind)
	}
	if len(b.Lines) != 12 {
		t.Errorf("len(Lines) = %d, want 12", len(b.Lines))
	}
	if b.Lines[9] != strings.Repeat("x", 10) {
		t.Errorf("Lines[9] = %q", b.Lines[9])
	}
}

// ---------------------------------------------------------------------------
// TestParseBlocks - Splitting plus classification
// ---------------------------------------------------------------------------

func TestParseBlocks(t *testing.T) {
	t.Parallel()

	doc := "# Lists Test\n1. First item\n2. Second item\n\n> quote\n\nplain"

	var kinds []BlockKind
	for _, b := range ParseBlocks(doc) {
		kinds = append(kinds, b.Kind)
	}

	want := []BlockKind{BlockHeading, BlockOrderedList, BlockQuote, BlockParagraph}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("block kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockKind_String(t *testing.T) {
	t.Parallel()

	if got := BlockUnorderedList.String(); got != "unordered_list" {
		t.Errorf("BlockUnorderedList.String() = %q", got)
	}
	if got := BlockKind(99).String(); got != "BlockKind(99)" {
		t.Errorf("BlockKind(99).String() = %q", got)
	}
}
