package markdown

import "strings"

// ExtractTitle returns the text of the first line starting with exactly "# ".
//
// Lines are scanned in order without regard to code fences, so an unindented
// "# " line inside a fenced block is taken as the title.
func ExtractTitle(doc string) (string, error) {
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:]), nil
		}
	}
	return "", ErrMissingTitle
}
