// Package fontstash implements a runtime glyph atlas for dynamic text
// rendering. It rasterizes glyphs on demand into a single 8-bit alpha
// texture and hands positioned textured quads back to the caller, leaving
// the actual drawing to whatever renderer the application uses.
//
// The pipeline follows a separation of concerns:
//
//   - Stash: the central context holding fonts, styling state and the atlas
//   - FontParser: pluggable font parsing backend (default: golang.org/x/image)
//   - atlas: shelf-packed alpha texture with dirty-region tracking
//   - Renderer: optional callbacks notified of atlas texture changes
//
// # Example usage
//
//	stash, err := fontstash.New(512, 512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := stash.AddFontFromFile("sans", "Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stash.SetFont(id)
//	stash.SetSize(24)
//	quads, err := stash.Quads(100, 100, "Hello, world!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for quad := range quads {
//	    // append quad vertices to your batch
//	    _ = quad
//	}
//	// upload stash.TextureData() wherever stash.DirtyRect() reports changes
//
// Glyph geometry is delivered exclusively by pull-based iteration: a text
// call never invokes per-vertex callbacks. [Stash.TextIter] returns an
// explicit iterator, and [Stash.Quads] exposes the same sequence as an
// iter.Seq for range-over-func loops. Both yield identical quads for the
// same input.
//
// # Pluggable parser backend
//
// Font parsing is abstracted through the FontParser interface. By default,
// golang.org/x/image/font/sfnt is used. The "gotext" backend parses through
// github.com/go-text/typesetting instead, and custom parsers can be
// registered:
//
//	fontstash.RegisterParser("myparser", myCustomParser)
//	stash, err := fontstash.New(512, 512, fontstash.WithParser("myparser"))
//
// # Concurrency
//
// A Stash is NOT safe for concurrent use. It holds a single atlas and a
// single state stack; callers sharing one Stash across goroutines must
// synchronize externally.
package fontstash
