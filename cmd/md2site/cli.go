package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/hints"
)

// ErrUsage marks invalid command lines.
var ErrUsage = errors.New("invalid usage")

// run dispatches args (program name first) to a command and returns the
// process exit code. Errors are printed to env.Stderr with a hint when one
// applies.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "convert":
		err = runConvert(ctx, rest, env)
	case "config":
		err = runConfig(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// flagError turns a flag parsing failure into a usage error. Help requests
// are not failures: usage was already printed.
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// hintFor returns an actionable hint for err, or "" when none applies.
// Batch failures carry their hints on the per-file lines instead.
func hintFor(err error) string {
	var batch *batchFailure
	if errors.As(err, &batch) {
		return ""
	}

	switch {
	case errors.Is(err, md2site.ErrMissingTitle):
		return hints.ForMissingTitle()
	case errors.Is(err, md2site.ErrUnmatchedDelimiter):
		return hints.ForUnmatchedDelimiter()
	case errors.Is(err, md2site.ErrMissingPlaceholder):
		return hints.ForMissingPlaceholder()
	case errors.Is(err, md2site.ErrStyleNotFound):
		return hints.ForStyleNotFound(md2site.Styles())
	case errors.Is(err, md2site.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(md2site.Templates())
	case errors.Is(err, md2site.ErrUnknownHighlightStyle):
		return hints.ForHighlightStyle()
	}
	return ""
}
