package main

import (
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// stdinPath selects standard input as the convert source.
const stdinPath = "-"

// runConvert converts a single document to a page on stdout or at --output.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, fs, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}

	switch fs.NArg() {
	case 0:
		return fmt.Errorf("%w: convert needs a markdown file (or - for stdin)", ErrNoInput)
	case 1:
	default:
		return fmt.Errorf("%w: convert takes one file, got %d", ErrUsage, fs.NArg())
	}
	inputPath := fs.Arg(0)

	if inputPath != stdinPath {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return err
		}
	}

	cfg, err := resolveConvertConfig(fs, flags, env)
	if err != nil {
		return err
	}

	conv, err := newConverter(cfg, flags.common.verbose, env)
	if err != nil {
		return err
	}

	content, err := readSource(inputPath, env.Stdin)
	if err != nil {
		return err
	}

	page, err := conv.Convert(ctx, md2site.Input{Markdown: content, SourcePath: inputPath})
	if err != nil {
		return err
	}

	if flags.output == "" {
		_, err := io.WriteString(env.Stdout, page.HTML)
		return err
	}

	if err := fileutil.WriteFile(flags.output, page.HTML); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Created %s\n", flags.output)
	}
	return nil
}

// resolveConvertConfig layers config file, environment and the page and
// engine flags. Site settings do not apply to a single document.
func resolveConvertConfig(fs *flag.FlagSet, flags *convertFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadSiteConfig(flags.common.config, envCfg)
	if err != nil {
		return nil, err
	}

	mergePageFlags(fs, &flags.page, cfg)
	mergeEngineFlags(fs, &flags.engine, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readSource reads path, or stdin when path is "-".
func readSource(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinPath {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- user-provided input path
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	return string(data), nil
}
