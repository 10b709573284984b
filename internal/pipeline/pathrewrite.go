package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// markdownExts are link target extensions rewritten to .html.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// RewriteMarkdownLinks points relative links at sibling Markdown sources to
// the generated pages: a[href] "guide/setup.md#install" becomes
// "guide/setup.html#install". Query strings and fragments are kept.
//
// Does NOT rewrite:
//   - absolute URLs, protocol-relative URLs, or anchors
//   - absolute paths (site-root links are left to the author)
//   - img[src] or other attributes
//
// The fragment is re-serialized by x/net/html, so void elements come back
// self-closed and text is entity-escaped.
func RewriteMarkdownLinks(htmlContent string) (string, error) {
	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key == "href" {
				n.Attr[i].Val = rewriteHref(attr.Val)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c)
	}
}

// rewriteHref returns href with a Markdown extension swapped for .html, or
// href unchanged when it is not a relative Markdown link.
func rewriteHref(href string) string {
	if !isRelativePath(href) {
		return href
	}

	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return href
	}

	ext := path.Ext(u.Path)
	if !markdownExts[strings.ToLower(ext)] {
		return href
	}

	u.Path = strings.TrimSuffix(u.Path, ext) + ".html"
	return u.String()
}

// isRelativePath returns true if the path should be considered for rewriting.
func isRelativePath(p string) bool {
	if p == "" {
		return false
	}

	// Skip anchors, absolute paths, and protocol-relative URLs
	if strings.HasPrefix(p, "#") || strings.HasPrefix(p, "/") {
		return false
	}

	// Skip URLs with a scheme (http:, https:, mailto:, data:, ...)
	if i := strings.IndexByte(p, ':'); i > 0 && !strings.ContainsAny(p[:i], "/?#") {
		return false
	}

	return true
}
