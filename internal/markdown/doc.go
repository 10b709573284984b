// Package markdown parses a small Markdown dialect into an htmlnode tree.
//
// # Pipeline
//
//  1. SplitBlocks cuts the document on blank lines (fence-aware).
//  2. ClassifyBlock types each chunk: heading, code, quote, unordered list,
//     ordered list, or paragraph (fallback).
//  3. Tokenize turns block text into inline spans: bold, italic, code,
//     image, link, plain.
//  4. BlockNode and SpanNode map blocks and spans to HTML nodes under a
//     root <div>.
//
// ExtractTitle runs independently over the raw text.
//
// # Limitations
//
// Inline styles do not nest, text is never HTML-escaped, and an inline opener
// without a matching close fails the whole document with ErrUnmatchedDelimiter.
package markdown
