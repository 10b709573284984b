// Package config loads and validates the YAML site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// AppDirName is the directory under the user config dir searched by name.
const AppDirName = "go-md2site"

// Field length limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxNameLength  = 64   // Asset and style names
	MaxIgnoreCount = 100  // Ignore patterns
	MaxWorkers     = 32   // Upper bound for build.workers
)

// Engine names accepted by engine.name.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// Config holds all configuration for site generation.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Page   PageConfig   `yaml:"page"`
	Engine EngineConfig `yaml:"engine"`
	Assets AssetsConfig `yaml:"assets"`
	Build  BuildConfig  `yaml:"build"`
}

// SiteConfig defines the source and destination trees.
type SiteConfig struct {
	ContentDir string   `yaml:"contentDir"` // Markdown sources
	StaticDir  string   `yaml:"staticDir"`  // Copied verbatim into OutputDir (empty = none)
	OutputDir  string   `yaml:"outputDir"`  // Generated site
	Ignore     []string `yaml:"ignore"`     // Glob patterns matched against content-relative paths
}

// PageConfig defines how each page is assembled.
type PageConfig struct {
	Template     string `yaml:"template"`     // Template name or path (empty = built-in page)
	Style        string `yaml:"style"`        // Style name or path (empty = no CSS injected)
	RewriteLinks bool   `yaml:"rewriteLinks"` // Rewrite relative .md links to .html
}

// EngineConfig selects the Markdown engine.
type EngineConfig struct {
	Name           string `yaml:"name"`           // "native" (default) or "goldmark"
	Highlight      bool   `yaml:"highlight"`      // Syntax-highlight fenced code with a language
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style (empty = github)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// BuildConfig defines build behavior.
type BuildConfig struct {
	Workers    int  `yaml:"workers"`    // 0 = auto
	KeepOutput bool `yaml:"keepOutput"` // Do not delete OutputDir before building
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			ContentDir: "content",
			StaticDir:  "static",
			OutputDir:  "public",
		},
		Engine: EngineConfig{Name: EngineNative},
	}
}

// Validate checks field lengths and cross-field constraints.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct {
		field, value string
	}{
		{"site.contentDir", c.Site.ContentDir},
		{"site.staticDir", c.Site.StaticDir},
		{"site.outputDir", c.Site.OutputDir},
		{"page.template", c.Page.Template},
		{"page.style", c.Page.Style},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("engine.highlightStyle", c.Engine.HighlightStyle, MaxNameLength); err != nil {
		return err
	}

	switch strings.ToLower(c.Engine.Name) {
	case "", EngineNative, EngineGoldmark:
	default:
		return fmt.Errorf("%w: engine.name: %q (must be %s or %s)", ErrInvalidConfig, c.Engine.Name, EngineNative, EngineGoldmark)
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers: must be between 0 and %d, got %d", ErrInvalidConfig, MaxWorkers, c.Build.Workers)
	}

	if len(c.Site.Ignore) > MaxIgnoreCount {
		return fmt.Errorf("%w: site.ignore: %d patterns (max %d)", ErrInvalidConfig, len(c.Site.Ignore), MaxIgnoreCount)
	}
	for i, pattern := range c.Site.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: site.ignore[%d]: %q: %v", ErrInvalidConfig, i, pattern, err)
		}
	}

	return c.validateOutputDir()
}

// validateOutputDir refuses output locations that a clean build would wipe
// together with the sources.
func (c *Config) validateOutputDir() error {
	out := c.Site.OutputDir
	if out == "" {
		return nil
	}

	cleanOut := filepath.Clean(out)
	if cleanOut == "." || cleanOut == string(filepath.Separator) {
		return fmt.Errorf("%w: site.outputDir: %q would delete the working tree", ErrInvalidConfig, out)
	}

	for _, src := range []struct{ field, dir string }{
		{"site.contentDir", c.Site.ContentDir},
		{"site.staticDir", c.Site.StaticDir},
	} {
		if src.dir == "" {
			continue
		}
		if fileutil.IsWithin(src.dir, cleanOut) {
			return fmt.Errorf("%w: site.outputDir: %q contains %s %q", ErrInvalidConfig, out, src.field, src.dir)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Encode returns the configuration as YAML.
func (c *Config) Encode() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the files tried, in order, when a config is given by
// name: ./name.yaml, ./name.yml, then the same under the user config dir.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
