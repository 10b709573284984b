package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
)

// runBuild generates the whole site: it discovers content, resets the
// output directory, mirrors static files, then converts every page.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, fs, err := parseBuildFlags("build", args, printBuildUsage, env.Stderr)
	if err != nil {
		return flagError(err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := resolveBuildConfig(fs, flags, env)
	if err != nil {
		return err
	}

	conv, err := newConverter(cfg, flags.common.verbose, env)
	if err != nil {
		return err
	}

	site := cfg.Site
	if !fileutil.DirExists(site.ContentDir) {
		return fmt.Errorf("%w: content directory %s does not exist", ErrNoInput, site.ContentDir)
	}

	files, err := discoverFiles(site.ContentDir, site.OutputDir, site.Ignore)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, site.ContentDir)
	}

	if err := prepareOutputDir(site.OutputDir, cfg.Build.KeepOutput); err != nil {
		return err
	}

	copied, err := copyStatic(ctx, site.StaticDir, site.OutputDir)
	if err != nil {
		return err
	}

	workers := md2site.ResolveWorkers(cfg.Build.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Copied %d static file(s)\n", copied)
		fmt.Fprintf(env.Stderr, "Converting %d page(s) with %d worker(s)\n", len(files), workers)
	}

	results := convertBatch(ctx, conv, workers, files)
	printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)

	return batchError(results)
}

// resolveBuildConfig layers config file, environment and flags, then
// validates the result.
func resolveBuildConfig(fs *flag.FlagSet, flags *buildFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadSiteConfig(flags.common.config, envCfg)
	if err != nil {
		return nil, err
	}

	mergeBuildFlags(fs, flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newConverter builds the shared converter for cfg. With verbose set, stage
// timings are printed to env.Stderr.
func newConverter(cfg *config.Config, verbose bool, env *Environment) (*md2site.Converter, error) {
	opts, err := converterOptions(cfg)
	if err != nil {
		return nil, err
	}
	if verbose {
		opts = append(opts, md2site.WithObserver(stageLogger(env.Stderr)))
	}

	conv, err := md2site.NewConverter(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating converter: %w", err)
	}
	return conv, nil
}

// prepareOutputDir deletes dir unless keep is set, then recreates it.
func prepareOutputDir(dir string, keep bool) error {
	if dir == "" {
		return fmt.Errorf("%w: output directory is not set", ErrUsage)
	}
	if !keep {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("%w: %v%s", ErrPrepareOutput, err, hints.ForOutputDirectory())
		}
	}
	if err := os.MkdirAll(dir, fileutil.DirPerm); err != nil {
		return fmt.Errorf("%w: %v%s", ErrPrepareOutput, err, hints.ForOutputDirectory())
	}
	return nil
}

// copyStatic mirrors staticDir into outputDir. A missing or unset static
// directory copies nothing.
func copyStatic(ctx context.Context, staticDir, outputDir string) (int, error) {
	if staticDir == "" {
		return 0, nil
	}
	if _, err := os.Stat(staticDir); errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}

	n, err := fileutil.CopyTree(ctx, staticDir, outputDir)
	if err != nil {
		return n, fmt.Errorf("copying static files: %w", err)
	}
	return n, nil
}
