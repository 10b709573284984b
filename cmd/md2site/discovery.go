package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// htmlExt is the extension of generated pages, without the dot.
const htmlExt = "html"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds every markdown file under contentDir and maps it to
// the mirrored .html path under outputDir. Paths matching an ignore pattern
// (against the slash-separated content-relative path or the base name) are
// skipped; an ignored directory is skipped entirely. An outputDir nested in
// contentDir is never scanned. Results are in lexical walk order.
func discoverFiles(contentDir, outputDir string, ignore []string) ([]FileToConvert, error) {
	var files []FileToConvert
	err := filepath.WalkDir(contentDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", p, err)
		}

		rel, err := filepath.Rel(contentDir, p)
		if err != nil {
			return err
		}

		if d.IsDir() {
			if rel != "." && (isIgnored(rel, ignore) || fileutil.IsWithin(p, outputDir)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !isMarkdown(p) || isIgnored(rel, ignore) {
			return nil
		}

		outPath, err := resolveOutputPath(rel, outputDir)
		if err != nil {
			return err
		}
		files = append(files, FileToConvert{InputPath: p, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath mirrors a content-relative markdown path under outputDir
// with the .html extension.
func resolveOutputPath(rel, outputDir string) (string, error) {
	page, err := fileutil.ReplaceExt(rel, htmlExt)
	if err != nil {
		return "", err
	}
	return filepath.Join(outputDir, page), nil
}

// isIgnored reports whether rel matches any pattern. Patterns were checked
// for syntax by config validation, so match errors count as no match.
func isIgnored(rel string, patterns []string) bool {
	slashed := filepath.ToSlash(rel)
	base := path.Base(slashed)
	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, slashed); ok {
			return true
		}
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// isMarkdown reports whether p has a .md or .markdown extension, in any case.
func isMarkdown(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(p string) error {
	if !isMarkdown(p) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(p))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2site.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2site.MaxWorkers)
	}
	return nil
}
