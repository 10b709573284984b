// Package htmlnode models the HTML output tree and serializes it.
//
// A Node is either a raw-text leaf (empty Tag, Value set, no children) or an
// element (Tag set, Value empty, zero or more children). Each node exclusively
// owns its children; trees are built once per conversion and discarded after
// rendering.
package htmlnode

// Attribute is a single name="value" pair on an element.
type Attribute struct {
	Name  string
	Value string
}

// Node is an element of the output tree.
type Node struct {
	Tag      string
	Value    string
	Children []*Node
	Attrs    []Attribute
}

// Text creates a raw-text leaf.
func Text(value string) *Node {
	return &Node{Value: value}
}

// Element creates an element with the given tag and children.
func Element(tag string, children ...*Node) *Node {
	n := &Node{Tag: tag}
	if len(children) > 0 {
		n.Children = append(make([]*Node, 0, len(children)), children...)
	}
	return n
}

// IsText reports whether n is a raw-text leaf.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Append adds children in order and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// SetAttr sets an attribute. An existing attribute keeps its position;
// a new one is appended so output order follows insertion order.
func (n *Node) SetAttr(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attribute{Name: name, Value: value})
	return n
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Walk visits n and its descendants depth-first, pre-order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// TextContent concatenates the values of all text leaves under n.
func (n *Node) TextContent() string {
	var out []byte
	n.Walk(func(c *Node) bool {
		if c.IsText() {
			out = append(out, c.Value...)
		}
		return true
	})
	return string(out)
}
