package main

import (
	"io"

	flag "github.com/spf13/pflag"

	md2site "github.com/alnah/go-md2site"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds the source and destination trees.
type siteFlags struct {
	content string
	static  string
	output  string
	ignore  []string
}

// pageFlags holds page assembly flags.
type pageFlags struct {
	template     string // Template name or file path
	style        string // Style name, file path, or CSS
	assetPath    string // Custom asset directory
	rewriteLinks bool
}

// engineFlags holds Markdown engine flags.
type engineFlags struct {
	name      string
	highlight string // Chroma style; set to the default style by a bare --highlight
}

// buildFlags holds all flags for the build and config commands.
type buildFlags struct {
	common  commonFlags
	site    siteFlags
	page    pageFlags
	engine  engineFlags
	workers int
	noClean bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	page   pageFlags
	engine engineFlags
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSiteFlags adds source and output tree flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.content, "content", "", "markdown source directory")
	fs.StringVar(&f.static, "static", "", "static files copied as-is")
	fs.StringVarP(&f.output, "output", "o", "", "generated site directory")
	fs.StringSliceVar(&f.ignore, "ignore", nil, "glob of content paths to skip (repeatable)")
}

// addPageFlags adds page assembly flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.template, "template", "t", "", "page template name or file path")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "point relative .md links at .html pages")
}

// addEngineFlags adds engine flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVar(&f.name, "engine", "", "markdown engine: native, goldmark")
	fs.StringVar(&f.highlight, "highlight", "", "highlight fenced code with a Chroma style")
	fs.Lookup("highlight").NoOptDefVal = md2site.DefaultHighlightStyle
}

// parseBuildFlags parses build command flags and returns the flag set, so
// callers can tell explicit values from defaults.
func parseBuildFlags(name string, args []string, usage func(io.Writer), stderr io.Writer) (*buildFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &buildFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.noClean, "no-clean", false, "keep existing output directory contents")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addPageFlags(fs, &f.page)
	addEngineFlags(fs, &f.engine)

	fs.Usage = func() { usage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}

// parseConvertFlags parses convert command flags.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default: stdout)")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addEngineFlags(fs, &f.engine)

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}
