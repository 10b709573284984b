package main

import (
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2site/internal/config"
)

// mergeBuildFlags merges explicitly set CLI flags into config. CLI values
// override config values; flags left at their default never do.
func mergeBuildFlags(fs *flag.FlagSet, f *buildFlags, cfg *config.Config) {
	if fs.Changed("content") {
		cfg.Site.ContentDir = f.site.content
	}
	if fs.Changed("static") {
		cfg.Site.StaticDir = f.site.static
	}
	if fs.Changed("output") {
		cfg.Site.OutputDir = f.site.output
	}
	if fs.Changed("ignore") {
		cfg.Site.Ignore = append(cfg.Site.Ignore, f.site.ignore...)
	}
	if fs.Changed("workers") {
		cfg.Build.Workers = f.workers
	}
	if fs.Changed("no-clean") {
		cfg.Build.KeepOutput = f.noClean
	}

	mergePageFlags(fs, &f.page, cfg)
	mergeEngineFlags(fs, &f.engine, cfg)
}

// mergePageFlags merges page assembly flags into config.
func mergePageFlags(fs *flag.FlagSet, f *pageFlags, cfg *config.Config) {
	if fs.Changed("template") {
		cfg.Page.Template = f.template
	}
	if fs.Changed("style") {
		cfg.Page.Style = f.style
	}
	if fs.Changed("asset-path") {
		cfg.Assets.BasePath = f.assetPath
	}
	if fs.Changed("rewrite-links") {
		cfg.Page.RewriteLinks = f.rewriteLinks
	}
}

// mergeEngineFlags merges engine flags into config.
func mergeEngineFlags(fs *flag.FlagSet, f *engineFlags, cfg *config.Config) {
	if fs.Changed("engine") {
		cfg.Engine.Name = f.name
	}
	if fs.Changed("highlight") {
		cfg.Engine.Highlight = f.highlight != ""
		cfg.Engine.HighlightStyle = f.highlight
	}
}
