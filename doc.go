// Package md2site converts Markdown documents into HTML pages.
//
// # Quick Start
//
// Parse and render a document with the core parser:
//
//	root, err := md2site.Parse("# Hello\n\nWorld")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(md2site.Render(root))
//	// <div><h1>Hello</h1><p>World</p></div>
//
// Produce a complete page from the built-in template:
//
//	conv, err := md2site.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := conv.Convert(ctx, md2site.Input{Markdown: source})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(result.HTML), 0o644)
//
// # Conversion Pipeline
//
// Convert runs these stages in order:
//
//  1. Markdown preprocessing (BOM removal, line ending normalization)
//  2. Markdown to HTML fragment (native parser or Goldmark)
//  3. Title extraction (first "# " line)
//  4. Optional rewriting of relative .md links to .html
//  5. Page template substitution of {{ Title }} and {{ Content }}
//  6. CSS injection (style plus highlighting stylesheet)
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := md2site.NewConverter(
//	    md2site.WithEngine(md2site.EngineGoldmark),
//	    md2site.WithHighlighting("monokai"),
//	    md2site.WithStyle("minimal"),
//	    md2site.WithAssetPath("/path/to/custom/assets"),
//	)
//
// A Converter holds only immutable state after construction and is safe for
// concurrent use, so one instance can serve a whole worker pool.
//
// # Native Dialect
//
// The native engine supports ATX headings (# to ######), fenced code,
// block quotes, "* " / "- " lists, "1. " ordered lists, and paragraphs;
// inline bold (**), italic (*), code (`), links and images. Inline styles do
// not nest, text is not HTML-escaped, and an unclosed inline marker fails the
// document with ErrUnmatchedDelimiter.
package md2site
