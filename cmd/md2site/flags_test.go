package main

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2site/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseBuildFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseBuildFlags(t *testing.T) {
	t.Parallel()

	f, fs, err := parseBuildFlags("build", []string{
		"-c", "site",
		"--content", "docs",
		"-o", "dist",
		"--ignore", "drafts",
		"--ignore", "*.tmp.md",
		"-w", "4",
		"--no-clean",
		"-t", "bare",
		"--style", "minimal",
		"--engine", "goldmark",
		"--highlight",
		"-v",
	}, printBuildUsage, io.Discard)
	if err != nil {
		t.Fatalf("parseBuildFlags() error: %v", err)
	}

	if f.common.config != "site" || !f.common.verbose || f.common.quiet {
		t.Errorf("common = %+v", f.common)
	}
	if diff := cmp.Diff([]string{"drafts", "*.tmp.md"}, f.site.ignore); diff != "" {
		t.Errorf("ignore mismatch (-want +got):\n%s", diff)
	}
	if f.site.content != "docs" || f.site.output != "dist" || f.workers != 4 || !f.noClean {
		t.Errorf("site/build flags = %+v, workers=%d noClean=%v", f.site, f.workers, f.noClean)
	}
	if f.page.template != "bare" || f.page.style != "minimal" {
		t.Errorf("page = %+v", f.page)
	}
	if f.engine.name != "goldmark" || f.engine.highlight != "github" {
		t.Errorf("engine = %+v, want goldmark with default highlight style", f.engine)
	}
	if fs.Changed("static") {
		t.Error("static reported as changed")
	}
}

func TestParseBuildFlags_HighlightValue(t *testing.T) {
	t.Parallel()

	f, _, err := parseBuildFlags("build", []string{"--highlight=monokai"}, printBuildUsage, io.Discard)
	if err != nil {
		t.Fatalf("parseBuildFlags() error: %v", err)
	}
	if f.engine.highlight != "monokai" {
		t.Errorf("highlight = %q, want monokai", f.engine.highlight)
	}
}

func TestParseBuildFlags_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := parseBuildFlags("build", []string{"--bogus"}, printBuildUsage, io.Discard)
	if err == nil {
		t.Fatal("parseBuildFlags(--bogus) expected error")
	}
	if !errors.Is(flagError(err), ErrUsage) {
		t.Errorf("flagError() = %v, want ErrUsage", flagError(err))
	}

	_, _, err = parseBuildFlags("build", []string{"--help"}, printBuildUsage, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("parseBuildFlags(--help) error = %v, want ErrHelp", err)
	}
	if flagError(err) != nil {
		t.Error("flagError(ErrHelp) should be nil")
	}
}

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	f, fs, err := parseConvertFlags([]string{"doc.md", "-o", "doc.html", "--rewrite-links", "-q"}, io.Discard)
	if err != nil {
		t.Fatalf("parseConvertFlags() error: %v", err)
	}
	if f.output != "doc.html" || !f.page.rewriteLinks || !f.common.quiet {
		t.Errorf("flags = %+v", f)
	}
	if diff := cmp.Diff([]string{"doc.md"}, fs.Args()); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestMergeBuildFlags - CLI over config
// ---------------------------------------------------------------------------

func TestMergeBuildFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Site.Ignore = []string{"from-config"}
	cfg.Page.Style = "default"
	cfg.Page.RewriteLinks = true
	cfg.Build.Workers = 3

	f, fs, err := parseBuildFlags("build", []string{
		"--output", "dist",
		"--ignore", "from-flag",
		"--rewrite-links=false",
		"--highlight=nord",
	}, printBuildUsage, io.Discard)
	if err != nil {
		t.Fatalf("parseBuildFlags() error: %v", err)
	}

	mergeBuildFlags(fs, f, cfg)

	want := config.DefaultConfig()
	want.Site.OutputDir = "dist"
	want.Site.Ignore = []string{"from-config", "from-flag"}
	want.Page.Style = "default"
	want.Page.RewriteLinks = false
	want.Engine.Highlight = true
	want.Engine.HighlightStyle = "nord"
	want.Build.Workers = 3

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("merged config mismatch (-want +got):\n%s", diff)
	}
}
