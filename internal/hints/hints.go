// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	sep := string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, sep+"go-md2site"+sep) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	return availableHint(available)
}

// ForTemplateNotFound returns hints for page template not found errors.
func ForTemplateNotFound(available []string) string {
	return availableHint(available)
}

// ForHighlightStyle returns hints for unknown Chroma styles.
func ForHighlightStyle() string {
	return format("try github, monokai, dracula or nord")
}

// ForMissingTitle returns hints for documents without a title line.
func ForMissingTitle() string {
	return format(`add a first-level heading such as "# My Page" at the start of a line`)
}

// ForUnmatchedDelimiter returns hints for unclosed inline markup.
func ForUnmatchedDelimiter() string {
	return format("close the marker, or put literal *, ` and [ inside a fenced code block")
}

// ForMissingPlaceholder returns hints for templates that cannot receive content.
func ForMissingPlaceholder() string {
	return format("add {{ Content }} (with the spaces) where the page body belongs")
}

func availableHint(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
