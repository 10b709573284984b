package md2site

import (
	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/markdown"
)

// Node is an element or raw-text leaf of a parsed document.
type Node = htmlnode.Node

// Attribute is an ordered name/value pair on an element.
type Attribute = htmlnode.Attribute

// Parse converts a Markdown document into a root <div> node whose children
// are the document's blocks in order. It fails with ErrUnmatchedDelimiter
// when any inline marker is never closed; no partial tree is returned.
func Parse(md string) (*Node, error) {
	return markdown.Parse(md)
}

// Render serializes a node tree to HTML. Text is written verbatim.
func Render(n *Node) string {
	return htmlnode.Render(n)
}

// ExtractTitle returns the text of the first line that starts with "# ",
// trimmed. It returns ErrMissingTitle when no such line exists.
func ExtractTitle(md string) (string, error) {
	return markdown.ExtractTitle(md)
}
