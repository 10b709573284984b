package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Page template placeholders. Substitution is literal, not a template language.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrMissingPlaceholder indicates a page template cannot receive content.
var ErrMissingPlaceholder = errors.New("page template has no " + ContentPlaceholder + " placeholder")

// PageData holds the values substituted into a page template.
type PageData struct {
	Title   string
	Content string
}

// PageRenderer defines the contract for page template substitution.
type PageRenderer interface {
	RenderPage(ctx context.Context, tmpl string, data PageData) (string, error)
}

// PageTemplate substitutes placeholders into a page template.
type PageTemplate struct{}

// RenderPage replaces every occurrence of both placeholders in one pass, so
// placeholder text inside the title or content is left as-is.
func (p *PageTemplate) RenderPage(ctx context.Context, tmpl string, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r := strings.NewReplacer(
		TitlePlaceholder, data.Title,
		ContentPlaceholder, data.Content,
	)
	return r.Replace(tmpl), nil
}

// ValidatePageTemplate checks that tmpl can receive page content.
func ValidatePageTemplate(tmpl string) error {
	if !strings.Contains(tmpl, ContentPlaceholder) {
		return fmt.Errorf("%w (%d bytes)", ErrMissingPlaceholder, len(tmpl))
	}
	return nil
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if pos, ok := afterOpenTag(htmlContent, lowerHTML, "<body"); ok {
		return htmlContent[:pos] + styleBlock + htmlContent[pos:]
	}

	return styleBlock + htmlContent
}

// afterOpenTag returns the offset just past the first tag starting with
// prefix, matched case-insensitively through lowerHTML.
func afterOpenTag(htmlContent, lowerHTML, prefix string) (int, bool) {
	idx := strings.Index(lowerHTML, prefix)
	if idx == -1 {
		return 0, false
	}
	closeIdx := strings.Index(htmlContent[idx:], ">")
	if closeIdx == -1 {
		return 0, false
	}
	return idx + closeIdx + 1, true
}

// sanitizeCSS escapes "</" so stylesheet text cannot close the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
