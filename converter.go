package md2site

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/markdown"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.PageRenderer         = (*pipeline.PageTemplate)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ markdown.CodeHighlighter      = (*pipeline.ChromaHighlighter)(nil)
)

// Converter orchestrates the Markdown-to-page pipeline.
// Create with NewConverter and call Convert once per document.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	pageRenderer  pipeline.PageRenderer
	cssInjector   pipeline.CSSInjector
	template      string
	css           string
}

// NewConverter creates a Converter with default configuration: native
// engine, built-in page template, no CSS, no highlighting.
// Returns error if an engine, asset, template or style cannot be resolved.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{engine: EngineNative},
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.SourcePreprocessor{},
		pageRenderer: &pipeline.PageTemplate{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}
	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	if err := c.resolveEngine(); err != nil {
		return nil, err
	}

	return c, nil
}

// Engine returns the engine in use.
func (c *Converter) Engine() Engine {
	return c.cfg.engine
}

// Convert runs the full pipeline for one document.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpl := c.template
	if input.Template != "" {
		if err := pipeline.ValidatePageTemplate(input.Template); err != nil {
			return nil, err
		}
		tmpl = input.Template
	}

	var md string
	if err := c.stage(input, StagePreprocess, func() error {
		md = c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
		return ctx.Err()
	}); err != nil {
		return nil, err
	}

	var content string
	if err := c.stage(input, StageConvert, func() (err error) {
		content, err = c.htmlConverter.ToHTML(ctx, md)
		return err
	}); err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	var title string
	if err := c.stage(input, StageTitle, func() (err error) {
		title, err = markdown.ExtractTitle(md)
		return err
	}); err != nil {
		return nil, err
	}

	if c.cfg.rewriteLinks {
		if err := c.stage(input, StageRewrite, func() (err error) {
			content, err = pipeline.RewriteMarkdownLinks(content)
			return err
		}); err != nil {
			return nil, fmt.Errorf("rewriting links: %w", err)
		}
	}

	var page string
	if err := c.stage(input, StageTemplate, func() (err error) {
		page, err = c.pageRenderer.RenderPage(ctx, tmpl, pipeline.PageData{Title: title, Content: content})
		return err
	}); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	if err := c.stage(input, StageStyle, func() error {
		page = c.cssInjector.InjectCSS(ctx, page, c.css)
		return ctx.Err()
	}); err != nil {
		return nil, err
	}

	return &ConvertResult{HTML: page, Content: content, Title: title}, nil
}

// stage runs fn and reports its outcome to the observer, if any.
func (c *Converter) stage(input Input, s Stage, fn func() error) error {
	if c.cfg.observer == nil {
		return fn()
	}
	start := time.Now()
	err := fn()
	c.cfg.observer(Event{
		Stage:    s,
		Source:   input.SourcePath,
		Duration: time.Since(start),
		Err:      err,
	})
	return err
}

// resolveTemplate picks the page template: content, then path, then name,
// then the built-in default.
func (c *Converter) resolveTemplate() error {
	var (
		tmpl string
		err  error
	)

	switch {
	case c.cfg.templateInput != "":
		tmpl = c.cfg.templateInput
	case c.cfg.templatePath != "":
		tmpl, err = assets.ReadFile(c.cfg.templatePath, assets.ErrTemplateNotFound)
	case c.cfg.templateName != "":
		tmpl, err = c.assetLoader.LoadTemplate(c.cfg.templateName)
	default:
		tmpl, err = c.assetLoader.LoadTemplate(assets.DefaultTemplateName)
	}
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}

	if err := pipeline.ValidatePageTemplate(tmpl); err != nil {
		return err
	}
	c.template = tmpl
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	var (
		css string
		err error
	)

	switch {
	case fileutil.IsFilePath(input):
		css, err = assets.ReadFile(input, assets.ErrStyleNotFound)
	case strings.Contains(input, "{"):
		css = input
	default:
		css, err = c.assetLoader.LoadStyle(input)
	}
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}

	c.css = css
	return nil
}

// resolveEngine builds the HTML converter and appends the highlighting
// stylesheet when highlighting is on.
func (c *Converter) resolveEngine() error {
	var highlighter *pipeline.ChromaHighlighter
	if c.cfg.highlight {
		h, err := pipeline.NewChromaHighlighter(c.cfg.highlightStyle)
		if err != nil {
			return err
		}
		css, err := h.CSS()
		if err != nil {
			return err
		}
		highlighter = h
		c.css = joinCSS(c.css, css)
	}

	switch c.cfg.engine {
	case EngineGoldmark:
		style := ""
		if highlighter != nil {
			style = highlighter.StyleName()
		}
		c.htmlConverter = pipeline.NewGoldmarkConverter(style)
	default:
		if highlighter != nil {
			c.htmlConverter = pipeline.NewNativeConverter(highlighter)
		} else {
			c.htmlConverter = pipeline.NewNativeConverter(nil)
		}
	}
	return nil
}

func joinCSS(base, extra string) string {
	if base == "" {
		return extra
	}
	return base + "\n" + extra
}
