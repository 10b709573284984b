package md2site

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/pipeline"
)

// DefaultHighlightStyle is the Chroma style used by WithHighlighting("").
const DefaultHighlightStyle = pipeline.DefaultHighlightStyle

// HighlightStyles lists the Chroma style names accepted by WithHighlighting.
func HighlightStyles() []string {
	return pipeline.HighlightStyles()
}

// Engine selects the Markdown to HTML implementation.
type Engine string

// Supported engines.
const (
	// EngineNative is the built-in parser with the small dialect documented
	// on the package.
	EngineNative Engine = "native"

	// EngineGoldmark renders CommonMark with GFM extensions via goldmark.
	EngineGoldmark Engine = "goldmark"
)

// ParseEngine resolves an engine name case-insensitively. An empty name
// selects EngineNative.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(name))) {
	case "", EngineNative:
		return EngineNative, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	default:
		return "", fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, name, EngineNative, EngineGoldmark)
	}
}

// Input contains per-document conversion parameters.
type Input struct {
	Markdown   string // Markdown content
	Template   string // Page template content (optional, overrides the converter's)
	SourcePath string // Source file path (optional, reported in events only)
}

// ConvertResult contains the outputs of a conversion.
type ConvertResult struct {
	HTML    string // Complete page: template with title, content and CSS
	Content string // Rendered body fragment substituted for {{ Content }}
	Title   string // Extracted title substituted for {{ Title }}
}

// Stage names a step of the conversion pipeline.
type Stage string

// Pipeline stages reported to observers, in execution order.
const (
	StagePreprocess Stage = "preprocess"
	StageConvert    Stage = "convert"
	StageTitle      Stage = "title"
	StageRewrite    Stage = "rewrite"
	StageTemplate   Stage = "template"
	StageStyle      Stage = "style"
)

// Event reports the completion of one pipeline stage.
type Event struct {
	Stage    Stage
	Source   string // Input.SourcePath
	Duration time.Duration
	Err      error // Non-nil when the stage failed; no later stage runs
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds options as given, resolved by NewConverter.
type converterConfig struct {
	engine         Engine
	highlight      bool
	highlightStyle string
	templateInput  string // content
	templatePath   string
	templateName   string
	styleInput     string // name, path, or CSS content
	assetPath      string
	rewriteLinks   bool
	observer       func(Event)
}

// WithEngine selects the Markdown engine. Invalid values are reported by
// NewConverter as ErrInvalidEngine.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithHighlighting enables syntax highlighting of fenced code that names a
// language, using the given Chroma style (empty = github).
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// WithTemplate sets the page template content.
// Takes precedence over WithTemplatePath and WithTemplateName.
func WithTemplate(content string) Option {
	return func(c *Converter) {
		c.cfg.templateInput = content
	}
}

// WithTemplatePath loads the page template from a file.
func WithTemplatePath(path string) Option {
	return func(c *Converter) {
		c.cfg.templatePath = path
	}
}

// WithTemplateName loads a named page template from the asset loader
// (custom asset path first, then built-in).
func WithTemplateName(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithStyle sets the CSS injected into every page.
// Accepts a style name ("minimal"), a file path ("./custom.css"),
// or CSS content ("body { ... }").
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath sets a directory searched for templates/ and styles/ before
// the built-in assets.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithLinkRewriting rewrites relative links to .md files so they point at
// the generated .html pages.
func WithLinkRewriting(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.rewriteLinks = enabled
	}
}

// WithObserver receives an Event after every pipeline stage. The function
// is called from the converting goroutine and must be safe for concurrent
// use when the Converter is shared.
func WithObserver(fn func(Event)) Option {
	return func(c *Converter) {
		c.cfg.observer = fn
	}
}
