package md2site

import "github.com/alnah/go-md2site/internal/assets"

// Styles lists the built-in style names accepted by WithStyle, sorted.
func Styles() []string {
	return assets.NewEmbeddedLoader().StyleNames()
}

// Templates lists the built-in page template names accepted by
// WithTemplateName, sorted.
func Templates() []string {
	return assets.NewEmbeddedLoader().TemplateNames()
}
