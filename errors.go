package md2site

import (
	"errors"

	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/markdown"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Sentinel errors for document parsing. These are the same values returned
// by the internal parser, so errors.Is works across package boundaries.
var (
	ErrUnmatchedDelimiter = markdown.ErrUnmatchedDelimiter
	ErrMissingTitle       = markdown.ErrMissingTitle
	ErrUnknownKind        = markdown.ErrUnknownKind
)

// Sentinel errors for converter construction and conversion.
var (
	ErrInvalidEngine         = errors.New("invalid engine")
	ErrInvalidAssetPath      = errors.New("invalid asset path")
	ErrHTMLConversion        = pipeline.ErrHTMLConversion
	ErrHighlight             = pipeline.ErrHighlight
	ErrUnknownHighlightStyle = pipeline.ErrUnknownHighlighter
	ErrMissingPlaceholder    = pipeline.ErrMissingPlaceholder
)

// Asset loading errors.
var (
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName
)
