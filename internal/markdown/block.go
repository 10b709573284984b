package markdown

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockKind identifies the structural type of a block.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockCode
	BlockQuote
	BlockUnorderedList
	BlockOrderedList
)

var blockKindNames = [...]string{
	BlockParagraph:     "paragraph",
	BlockHeading:       "heading",
	BlockCode:          "code",
	BlockQuote:         "quote",
	BlockUnorderedList: "unordered_list",
	BlockOrderedList:   "ordered_list",
}

func (k BlockKind) String() string {
	if int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return fmt.Sprintf("BlockKind(%d)", k)
}

// Block is one structural unit of a document. Lines hold the block's source
// lines with markers already stripped. Level is set only for headings and
// Lang only for fenced code that names a language.
type Block struct {
	Kind  BlockKind
	Level int
	Lines []string
	Lang  string
}

const (
	fence           = "```"
	maxHeadingLevel = 6
)

// SplitBlocks splits a document into trimmed, non-empty chunks separated by
// blank lines. Blank lines between an opening fence that starts a block and a
// later closing fence do not split, so fenced code keeps its internal blank
// lines. A fence in the middle of a paragraph gets no such protection.
func SplitBlocks(doc string) []string {
	lines := strings.Split(doc, "\n")

	lastClose := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == fence {
			lastClose = i
		}
	}

	var (
		chunks  []string
		current []string
		inFence bool
	)

	flush := func() {
		chunk := strings.TrimSpace(strings.Join(current, "\n"))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		current = current[:0]
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case inFence && trimmed == fence:
			inFence = false
		case !inFence && isOpeningFence(trimmed) && i < lastClose && opensBlock(current):
			inFence = true
		}

		if trimmed == "" && !inFence {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return chunks
}

// opensBlock reports whether a line appended to current would start a block:
// current is empty or holds only a heading, which ClassifyBlock splits off.
func opensBlock(current []string) bool {
	switch len(current) {
	case 0:
		return true
	case 1:
		_, _, ok := headingLine(strings.TrimSpace(current[0]))
		return ok
	}
	return false
}

// ParseBlocks splits and classifies a whole document in order.
func ParseBlocks(doc string) []Block {
	var blocks []Block
	for _, chunk := range SplitBlocks(doc) {
		lines := strings.Split(chunk, "\n")
		for len(lines) > 0 {
			var b Block
			b, lines = ClassifyBlock(lines)
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// ClassifyBlock classifies a chunk of lines. Kinds are checked in priority
// order: heading, code, quote, unordered list, ordered list, paragraph.
//
// A heading consumes only the first line; the remaining lines are returned
// for classification as a separate block. Every other kind consumes the
// whole chunk and rest is nil.
func ClassifyBlock(lines []string) (b Block, rest []string) {
	if len(lines) == 0 {
		return Block{Kind: BlockParagraph}, nil
	}

	if level, text, ok := headingLine(lines[0]); ok {
		if len(lines) > 1 {
			rest = lines[1:]
		}
		return Block{Kind: BlockHeading, Level: level, Lines: []string{text}}, rest
	}

	if lang, body, ok := fencedCode(lines); ok {
		return Block{Kind: BlockCode, Lines: body, Lang: lang}, nil
	}

	if items, ok := stripEach(lines, quoteMarker); ok {
		return Block{Kind: BlockQuote, Lines: items}, nil
	}

	if items, ok := stripEach(lines, bulletMarker); ok {
		return Block{Kind: BlockUnorderedList, Lines: items}, nil
	}

	if items, ok := orderedItems(lines); ok {
		return Block{Kind: BlockOrderedList, Lines: items}, nil
	}

	return Block{Kind: BlockParagraph, Lines: append([]string(nil), lines...)}, nil
}

// headingLine matches 1-6 '#' characters followed by a single space.
func headingLine(line string) (level int, text string, ok bool) {
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0, "", false
	}
	if level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	return level, line[level+1:], true
}

// isOpeningFence reports whether a trimmed line opens a fenced block:
// three backticks, optionally followed by a language word.
func isOpeningFence(trimmed string) bool {
	if !strings.HasPrefix(trimmed, fence) {
		return false
	}
	return isLanguageWord(trimmed[len(fence):])
}

func isLanguageWord(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '+', r == '_', r == '#', r == '.':
		default:
			return false
		}
	}
	return true
}

func fencedCode(lines []string) (lang string, body []string, ok bool) {
	if len(lines) < 2 {
		return "", nil, false
	}
	first := strings.TrimSpace(lines[0])
	last := strings.TrimSpace(lines[len(lines)-1])
	if !isOpeningFence(first) || last != fence {
		return "", nil, false
	}
	body = append([]string{}, lines[1:len(lines)-1]...)
	return first[len(fence):], body, true
}

// stripEach applies strip to every line, failing if any line does not match.
func stripEach(lines []string, strip func(string) (string, bool)) ([]string, bool) {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		item, ok := strip(line)
		if !ok {
			return nil, false
		}
		out = append(out, item)
	}
	return out, true
}

func quoteMarker(line string) (string, bool) {
	if !strings.HasPrefix(line, ">") {
		return "", false
	}
	return strings.TrimPrefix(line[1:], " "), true
}

func bulletMarker(line string) (string, bool) {
	if strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "- ") {
		return line[2:], true
	}
	return "", false
}

// orderedItems requires line k (1-based) to start with "k. ". Any break in
// the sequence disqualifies the whole chunk.
func orderedItems(lines []string) ([]string, bool) {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		prefix := strconv.Itoa(i+1) + ". "
		if !strings.HasPrefix(line, prefix) {
			return nil, false
		}
		out = append(out, line[len(prefix):])
	}
	return out, true
}
