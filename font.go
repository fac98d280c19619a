package fontstash

// FontInvalid is the font ID returned by failed lookups; no loaded font
// ever has this ID.
const FontInvalid = -1

// Font is one loaded font inside a Stash. Fonts are created through
// [Stash.AddFont] and addressed by the integer ID it returns; the struct
// itself is exposed for metric queries and parser access.
type Font struct {
	id     int
	name   string
	data   []byte
	parsed ParsedFont

	// fallbacks are font IDs consulted, in order, when this font has no
	// glyph for a rune.
	fallbacks []int
}

// ID returns the font's ID within its Stash.
func (f *Font) ID() int { return f.id }

// Name returns the alias the font was registered under.
func (f *Font) Name() string { return f.name }

// Parsed returns the parsed font for advanced operations.
func (f *Font) Parsed() ParsedFont { return f.parsed }

// Data returns the raw font file bytes. The slice is owned by the Font;
// callers must not modify it.
func (f *Font) Data() []byte { return f.data }
