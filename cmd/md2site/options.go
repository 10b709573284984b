package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
)

// loadSiteConfig resolves the configuration for a command: the config file
// named by flag or MD2SITE_CONFIG (defaults if neither), then environment
// overrides.
func loadSiteConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			hint := ""
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				hint = hints.ForConfigNotFound(config.SearchPaths(name))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// converterOptions maps the resolved configuration to library options.
func converterOptions(cfg *config.Config) ([]md2site.Option, error) {
	engine, err := md2site.ParseEngine(cfg.Engine.Name)
	if err != nil {
		return nil, err
	}

	opts := []md2site.Option{
		md2site.WithEngine(engine),
		md2site.WithLinkRewriting(cfg.Page.RewriteLinks),
	}

	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2site.WithAssetPath(cfg.Assets.BasePath))
	}

	// A template containing a separator is a file; anything else is a name.
	switch tmpl := cfg.Page.Template; {
	case tmpl == "":
	case fileutil.IsFilePath(tmpl):
		opts = append(opts, md2site.WithTemplatePath(tmpl))
	default:
		opts = append(opts, md2site.WithTemplateName(tmpl))
	}

	if cfg.Page.Style != "" {
		opts = append(opts, md2site.WithStyle(cfg.Page.Style))
	}

	if cfg.Engine.Highlight {
		opts = append(opts, md2site.WithHighlighting(cfg.Engine.HighlightStyle))
	}

	return opts, nil
}

// stageLogger returns an observer printing per-stage timings, used with
// --verbose. The returned function is safe for concurrent use.
func stageLogger(w io.Writer) func(md2site.Event) {
	out := &syncWriter{w: w}
	return func(e md2site.Event) {
		status := "ok"
		if e.Err != nil {
			status = "failed"
		}
		out.printf("  %s %s %s (%v)\n", e.Source, e.Stage, status, e.Duration.Round(time.Microsecond))
	}
}
