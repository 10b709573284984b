package htmlnode

import (
	"io"
	"strings"
)

// Render serializes n to HTML.
//
// Text leaves are written verbatim: no escaping is performed. Callers that
// need escaped output must escape values before building the tree.
func Render(n *Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

// WriteTo writes the rendered HTML of n to w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	written, err := io.WriteString(w, Render(n))
	return int64(written), err
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return Render(n)
}

func writeNode(sb *strings.Builder, n *Node) {
	if n.IsText() {
		sb.WriteString(n.Value)
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, a := range n.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(a.Value)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')

	for _, c := range n.Children {
		writeNode(sb, c)
	}

	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}
