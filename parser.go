package fontstash

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (e.g., golang.org/x/image/font/sfnt vs go-text/typesetting).
//
// The default implementation uses golang.org/x/image/font/sfnt.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
// This interface abstracts the underlying font representation.
//
// All pixel-space results use y-down coordinates relative to a glyph
// origin on the baseline, so bounding boxes above the baseline have
// negative MinY.
type ParsedFont interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// GlyphIndex returns the glyph index for a rune.
	// Returns 0 if the rune has no glyph in this font.
	GlyphIndex(r rune) GlyphID

	// GlyphAdvance returns the advance width in pixels for a glyph at the
	// given size (pixels per em).
	GlyphAdvance(gid GlyphID, ppem float64) float64

	// Kern returns the kerning adjustment in pixels between two glyphs at
	// the given size. Backends without a simple pair-kerning surface
	// return 0; shaped iteration applies kerning during shaping instead.
	Kern(a, b GlyphID, ppem float64) float64

	// GlyphBounds returns the bounding box for a glyph at the given size.
	// The second result is false when the glyph has no outline.
	GlyphBounds(gid GlyphID, ppem float64) (Rect, bool)

	// GlyphOutline returns the outline for a glyph scaled to the given
	// size. The second result is false when the glyph has no outline.
	GlyphOutline(gid GlyphID, ppem float64) (Outline, bool)

	// Metrics returns the font metrics at the given size.
	Metrics(ppem float64) FontMetrics
}

// FontMetrics holds font-level metrics at a specific size, in pixels.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font
	// (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive).
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (m FontMetrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// parserRegistry holds registered font parsers.
// The default parser is "ximage" (golang.org/x/image).
var parserRegistry = map[string]FontParser{
	"ximage": &ximageParser{},
	"gotext": &gotextParser{},
}

// defaultParserName is the name of the default parser.
const defaultParserName = "ximage"

// RegisterParser registers a custom font parser.
// This allows users to provide their own parsing implementation.
// Not safe for concurrent use with font loading; register parsers
// during program initialization.
func RegisterParser(name string, parser FontParser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) FontParser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
