package markdown

import "errors"

// Sentinel errors for parsing operations.
var (
	// ErrUnmatchedDelimiter indicates an inline opener (**, *, `, [, ![)
	// with no matching close before the end of its text.
	ErrUnmatchedDelimiter = errors.New("unmatched inline delimiter")

	// ErrMissingTitle indicates no line of the document starts with "# ".
	ErrMissingTitle = errors.New("no title found")

	// ErrUnknownKind indicates a span or block kind outside the declared set.
	ErrUnknownKind = errors.New("unknown node kind")
)
