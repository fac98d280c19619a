package fontstash

import (
	"fmt"
	"image"
	"os"

	"github.com/gostash/fontstash/atlas"
)

// state is one entry of the styling state stack.
type state struct {
	font    int
	align   Align
	size    float32
	color   uint32
	blur    float32
	spacing float32
}

// defaultState returns the state installed by New and ClearState.
func defaultState() state {
	return state{
		font:  0,
		align: AlignDefault,
		size:  12,
		color: 0xffffffff,
	}
}

// Stash is the central text context: it owns the loaded fonts, the glyph
// atlas, the glyph cache and a stack of styling states. Text operations
// rasterize missing glyphs into the atlas as a side effect and return
// positioned quads; the caller draws them with the atlas texture.
//
// A Stash is NOT safe for concurrent use.
type Stash struct {
	config stashConfig

	atlas  *atlas.Atlas
	fonts  []*Font
	byName map[string]int
	states []state
	cache  *glyphCache

	// onErr overrides the default error handling (logging a warning).
	onErr func(error)

	// shaper is created lazily on the first ShapeText call.
	shaper *GoTextShaper
}

// New creates a Stash with an atlas of the given size.
// Width and height must be within [atlas.MinSize, atlas.MaxSize].
func New(width, height int, opts ...Option) (*Stash, error) {
	config := defaultStashConfig()
	for _, opt := range opts {
		opt(&config)
	}

	a, err := atlas.New(width, height)
	if err != nil {
		return nil, err
	}

	s := &Stash{
		config: config,
		atlas:  a,
		byName: make(map[string]int),
		states: make([]state, 1, config.maxStates),
		cache:  newGlyphCache(),
	}
	s.states[0] = defaultState()

	if r := config.renderer; r != nil {
		if err := r.CreateTexture(width, height); err != nil {
			return nil, fmt.Errorf("fontstash: creating atlas texture: %w", err)
		}
	}
	return s, nil
}

// state returns the top of the state stack.
func (s *Stash) state() *state {
	return &s.states[len(s.states)-1]
}

// reportError delivers an error to the handler set with SetErrorHandler,
// or logs a warning when no handler is installed.
func (s *Stash) reportError(err error) {
	if s.onErr != nil {
		s.onErr(err)
		return
	}
	Logger().Warn("fontstash error", "err", err)
}

// SetErrorHandler installs a handler for errors that occur in the middle
// of iteration and cannot be returned directly, such as [ErrAtlasFull] and
// state stack misuse. Pass nil to restore the default (a logged warning).
func (s *Stash) SetErrorHandler(fn func(error)) {
	s.onErr = fn
}

// Font storage.

// AddFont registers a font from raw TTF/OTF data under the given alias.
// The data slice is copied internally and can be reused after this call.
// Returns the new font's ID.
func (s *Stash) AddFont(name string, data []byte) (int, error) {
	if len(data) == 0 {
		return FontInvalid, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	// Parsers keep a reference to the slice they are handed rather than
	// copying it, so parse the private copy, not the caller's slice.
	parser := getParser(s.config.parserName)
	parsed, err := parser.Parse(dataCopy)
	if err != nil {
		return FontInvalid, &FontParseError{Name: name, Err: err}
	}

	f := &Font{
		id:     len(s.fonts),
		name:   name,
		data:   dataCopy,
		parsed: parsed,
	}
	s.fonts = append(s.fonts, f)
	s.byName[name] = f.id

	Logger().Debug("font added",
		"name", name, "id", f.id, "glyphs", parsed.NumGlyphs())
	return f.id, nil
}

// AddFontFromFile registers a font loaded from a file path.
func (s *Stash) AddFontFromFile(name, path string) (int, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return FontInvalid, fmt.Errorf("fontstash: failed to read font file: %w", err)
	}
	return s.AddFont(name, data)
}

// Font returns the font with the given ID.
func (s *Stash) Font(id int) (*Font, error) {
	if id < 0 || id >= len(s.fonts) {
		return nil, &InvalidFontError{ID: id}
	}
	return s.fonts[id], nil
}

// FontByName returns the ID of the font registered under the alias.
// Returns FontInvalid and ErrFontNotFound when no font matches.
func (s *Stash) FontByName(name string) (int, error) {
	id, ok := s.byName[name]
	if !ok {
		return FontInvalid, ErrFontNotFound
	}
	return id, nil
}

// AddFallbackFont appends fallback to base's fallback chain. Runes without
// a glyph in base are looked up in its fallbacks in registration order.
func (s *Stash) AddFallbackFont(base, fallback int) error {
	bf, err := s.Font(base)
	if err != nil {
		return err
	}
	if _, err := s.Font(fallback); err != nil {
		return err
	}
	bf.fallbacks = append(bf.fallbacks, fallback)
	return nil
}

// currentFont returns the font selected by the current state.
func (s *Stash) currentFont() (*Font, error) {
	if len(s.fonts) == 0 {
		return nil, ErrNoFontSet
	}
	id := s.state().font
	if id < 0 || id >= len(s.fonts) {
		return nil, &InvalidFontError{ID: id}
	}
	return s.fonts[id], nil
}

// State setters.

// SetFont selects the font for subsequent text operations.
func (s *Stash) SetFont(id int) { s.state().font = id }

// SetSize sets the font size in pixels.
func (s *Stash) SetSize(size float32) { s.state().size = size }

// SetColor sets the text color as packed RGBA (see [RGBA]). The color is
// carried as state for the caller's benefit and does not affect the atlas,
// which stores coverage only.
func (s *Stash) SetColor(color uint32) { s.state().color = color }

// SetSpacing sets the extra advance in pixels added between glyphs.
func (s *Stash) SetSpacing(spacing float32) { s.state().spacing = spacing }

// SetBlur sets the blur radius in pixels applied to rasterized glyphs.
// Values are clamped to [0, 20] at rasterization time.
func (s *Stash) SetBlur(blur float32) { s.state().blur = blur }

// SetAlign sets the alignment applied by text operations.
func (s *Stash) SetAlign(align Align) { s.state().align = align }

// Color returns the current state's packed RGBA color, for callers
// building vertex data from quads.
func (s *Stash) Color() uint32 { return s.state().color }

// State stack.

// PushState duplicates the current state. The previous state is restored
// by PopState. Exceeding the stack capacity reports ErrStatesOverflow
// through the error handler and leaves the stack unchanged.
func (s *Stash) PushState() {
	if len(s.states) >= cap(s.states) {
		s.reportError(ErrStatesOverflow)
		return
	}
	s.states = append(s.states, *s.state())
}

// PopState restores the previously pushed state. Popping the last state
// reports ErrStatesUnderflow through the error handler and leaves the
// stack unchanged.
func (s *Stash) PopState() {
	if len(s.states) <= 1 {
		s.reportError(ErrStatesUnderflow)
		return
	}
	s.states = s.states[:len(s.states)-1]
}

// ClearState resets the current state to defaults without touching the
// rest of the stack.
func (s *Stash) ClearState() {
	*s.state() = defaultState()
}

// Atlas management.

// AtlasSize returns the atlas dimensions in texels.
func (s *Stash) AtlasSize() (width, height int) {
	return s.atlas.Width(), s.atlas.Height()
}

// ExpandAtlas grows the atlas to at least the given size, preserving all
// rasterized glyphs. Quads obtained before the expansion keep valid
// texture coordinates only relative to the old size, so callers should
// re-iterate pending text after expanding.
func (s *Stash) ExpandAtlas(width, height int) error {
	width = max(width, s.atlas.Width())
	height = max(height, s.atlas.Height())
	if err := s.atlas.Expand(width, height); err != nil {
		return err
	}
	if r := s.config.renderer; r != nil {
		if err := r.CreateTexture(width, height); err != nil {
			return fmt.Errorf("fontstash: recreating atlas texture: %w", err)
		}
	}
	s.flush()
	Logger().Info("atlas expanded", "width", width, "height", height)
	return nil
}

// ResetAtlas discards all rasterized glyphs and clears the atlas to the
// given size. Loaded fonts and the state stack are kept.
func (s *Stash) ResetAtlas(width, height int) error {
	if err := s.atlas.Reset(width, height); err != nil {
		return err
	}
	s.cache.clear()
	if r := s.config.renderer; r != nil {
		if err := r.CreateTexture(width, height); err != nil {
			return fmt.Errorf("fontstash: recreating atlas texture: %w", err)
		}
	}
	Logger().Info("atlas reset", "width", width, "height", height)
	return nil
}

// AtlasUtilization returns the fraction of atlas area covered by glyph
// cells, between 0 and 1.
func (s *Stash) AtlasUtilization() float64 {
	return s.atlas.Utilization()
}

// Texture access.

// TextureData returns the atlas pixel buffer (one byte per texel,
// row-major) together with its dimensions. The slice is owned by the
// Stash; treat it as read-only and do not retain it across ExpandAtlas or
// ResetAtlas.
func (s *Stash) TextureData() (pixels []byte, width, height int) {
	return s.atlas.Pixels(), s.atlas.Width(), s.atlas.Height()
}

// DirtyRect returns the atlas region modified since the last call and
// clears it. The second result is false when nothing changed. When a
// [Renderer] is attached it consumes the dirty region itself; use one
// mechanism or the other, not both.
func (s *Stash) DirtyRect() (image.Rectangle, bool) {
	return s.atlas.TakeDirty()
}

// flush pushes pending atlas changes to the attached renderer, if any.
func (s *Stash) flush() {
	r := s.config.renderer
	if r == nil {
		return
	}
	if dirty, ok := s.atlas.TakeDirty(); ok {
		r.UpdateTexture(dirty, s.atlas.Pixels(), s.atlas.Width())
	}
}

// CacheStats returns cumulative glyph cache counters.
func (s *Stash) CacheStats() GlyphCacheStats {
	return s.cache.stats
}
