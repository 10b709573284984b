// Package pipeline implements the stages around Markdown-to-HTML conversion.
//
// Stages, in the order the converter runs them:
//   - Markdown preprocessing (line ending normalization, BOM removal)
//   - Markdown to HTML fragment via an HTMLConverter: the native parser
//     (internal/markdown) or Goldmark
//   - Code highlighting via Chroma, shared by both engines
//   - Link rewriting of relative .md targets to .html (x/net/html)
//   - Page template substitution of {{ Title }} and {{ Content }}
//   - CSS injection into the finished page
package pipeline
