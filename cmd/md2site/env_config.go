package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-md2site/internal/config"
)

// envPrefix marks variables read by md2site.
const envPrefix = "MD2SITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2SITE_CONFIG: config file name or path
	ContentDir string // MD2SITE_CONTENT_DIR: markdown source directory
	StaticDir  string // MD2SITE_STATIC_DIR: static files directory
	OutputDir  string // MD2SITE_OUTPUT_DIR: generated site directory
	Template   string // MD2SITE_TEMPLATE: page template name or path
	Style      string // MD2SITE_STYLE: CSS style name or path
	AssetPath  string // MD2SITE_ASSET_PATH: custom asset directory
	Engine     string // MD2SITE_ENGINE: native or goldmark
	Workers    int    // MD2SITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2SITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SITE_CONFIG":      true,
	"MD2SITE_CONTENT_DIR": true,
	"MD2SITE_STATIC_DIR":  true,
	"MD2SITE_OUTPUT_DIR":  true,
	"MD2SITE_TEMPLATE":    true,
	"MD2SITE_STYLE":       true,
	"MD2SITE_ASSET_PATH":  true,
	"MD2SITE_ENGINE":      true,
	"MD2SITE_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2SITE_CONFIG"),
		ContentDir: os.Getenv("MD2SITE_CONTENT_DIR"),
		StaticDir:  os.Getenv("MD2SITE_STATIC_DIR"),
		OutputDir:  os.Getenv("MD2SITE_OUTPUT_DIR"),
		Template:   os.Getenv("MD2SITE_TEMPLATE"),
		Style:      os.Getenv("MD2SITE_STYLE"),
		AssetPath:  os.Getenv("MD2SITE_ASSET_PATH"),
		Engine:     os.Getenv("MD2SITE_ENGINE"),
	}

	// Non-numeric or non-positive values are ignored.
	if workers := os.Getenv("MD2SITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2SITE_* variables,
// sorted by name.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}

	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig applies set environment variables over the config file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setIf(&cfg.Site.ContentDir, env.ContentDir)
	setIf(&cfg.Site.StaticDir, env.StaticDir)
	setIf(&cfg.Site.OutputDir, env.OutputDir)
	setIf(&cfg.Page.Template, env.Template)
	setIf(&cfg.Page.Style, env.Style)
	setIf(&cfg.Assets.BasePath, env.AssetPath)
	setIf(&cfg.Engine.Name, env.Engine)

	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}

// setIf assigns value to dst when value is non-empty.
func setIf(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
