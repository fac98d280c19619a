package fontstash

import (
	"iter"
	"math"
	"unicode/utf8"
)

// TextIterator walks a text string glyph by glyph, yielding one textured
// quad per visible glyph. Glyphs missing from the atlas are rasterized as
// a side effect, so the atlas may become dirty during iteration; when the
// iterator is exhausted pending changes are flushed to the attached
// renderer.
//
// The iterator captures the state at creation time; later setter calls on
// the Stash do not affect it.
type TextIterator struct {
	stash *Stash
	st    state
	font  *Font
	ppem  float64

	text string
	pos  int
	x, y float32

	prevFont int
	prevGID  GlyphID
	hasPrev  bool
}

// TextIter starts iterating the glyph quads of text with its anchor at
// (x, y), interpreted according to the current alignment and the stash's
// zero position.
func (s *Stash) TextIter(x, y float32, text string) (*TextIterator, error) {
	f, err := s.currentFont()
	if err != nil {
		return nil, err
	}
	st := *s.state()

	switch st.align.Horizontal() {
	case AlignCenter:
		x -= s.measureAdvance(f, &st, text) * 0.5
	case AlignRight:
		x -= s.measureAdvance(f, &st, text)
	}
	y += s.vertAlignOffset(f, &st)

	return &TextIterator{
		stash: s,
		st:    st,
		font:  f,
		ppem:  float64(quantizeSize(st.size)) / 10,
		text:  text,
		x:     x,
		y:     y,
	}, nil
}

// X returns the current pen x position.
func (it *TextIterator) X() float32 { return it.x }

// Y returns the pen y position (the baseline).
func (it *TextIterator) Y() float32 { return it.y }

// Next returns the quad for the next visible glyph. Whitespace and other
// glyphs without pixel coverage advance the pen without producing a quad.
// The second result is false once the text is exhausted.
func (it *TextIterator) Next() (Quad, bool) {
	for it.pos < len(it.text) {
		r, size := utf8.DecodeRuneInString(it.text[it.pos:])
		it.pos += size

		f, gid := it.stash.resolveGlyph(it.font, r)

		// Kerning and letter spacing apply between glyphs, rounded to
		// whole pixels so cells land on texel boundaries. Kerning pairs
		// only exist within one font.
		if it.hasPrev {
			var kern float64
			if it.prevFont == f.id {
				kern = f.parsed.Kern(it.prevGID, gid, it.ppem)
			}
			it.x += float32(int(kern + float64(it.st.spacing) + 0.5))
		}

		rec := it.stash.getGlyph(f, gid, &it.st, true)
		if rec == nil {
			// Atlas full; the error is already reported. Skip the glyph
			// and break the kerning chain.
			it.hasPrev = false
			continue
		}

		q, visible := it.stash.quadFor(rec, it.x, it.y)
		it.x += float32(int(rec.xadv + 0.5))
		it.prevFont = f.id
		it.prevGID = gid
		it.hasPrev = true

		if visible {
			return q, true
		}
	}
	it.stash.flush()
	return Quad{}, false
}

// Quads returns the glyph quads of text as a range-over-func sequence,
// anchored at (x, y):
//
//	for q := range s.Quads(x, y, "hello") {
//	    emit(q)
//	}
//
// Breaking out of the loop early still flushes pending atlas changes.
// The error reports an unusable current font; everything that can go
// wrong mid-iteration goes through the error handler instead.
func (s *Stash) Quads(x, y float32, text string) (iter.Seq[Quad], error) {
	it, err := s.TextIter(x, y, text)
	if err != nil {
		return nil, err
	}
	return func(yield func(Quad) bool) {
		for {
			q, ok := it.Next()
			if !ok {
				return
			}
			if !yield(q) {
				s.flush()
				return
			}
		}
	}, nil
}

// quadFor builds the positioned quad for a rendered glyph record with the
// pen at (penX, penY). Returns false for records without atlas pixels.
func (s *Stash) quadFor(rec *glyphRecord, penX, penY float32) (Quad, bool) {
	if rec.region.Empty() {
		return Quad{}, false
	}

	aw := float32(s.atlas.Width())
	ah := float32(s.atlas.Height())
	w := float32(rec.region.Dx())
	h := float32(rec.region.Dy())

	// Snap the cell to whole pixels so the texels map 1:1 on screen.
	rx := float32(math.Floor(float64(penX) + float64(rec.offX)))

	var q Quad
	q.X0 = rx
	q.X1 = rx + w
	q.S0 = float32(rec.region.Min.X) / aw
	q.T0 = float32(rec.region.Min.Y) / ah
	q.S1 = float32(rec.region.Max.X) / aw
	q.T1 = float32(rec.region.Max.Y) / ah

	if s.config.zero == ZeroTopLeft {
		ry := float32(math.Floor(float64(penY) + float64(rec.offY)))
		q.Y0 = ry
		q.Y1 = ry + h
	} else {
		ry := float32(math.Floor(float64(penY) - float64(rec.offY)))
		q.Y0 = ry
		q.Y1 = ry - h
	}
	return q, true
}

// vertAlignOffset returns the baseline shift that realizes the state's
// vertical alignment for the given font and size. Positive y points down
// with ZeroTopLeft and up with ZeroBottomLeft.
func (s *Stash) vertAlignOffset(f *Font, st *state) float32 {
	ppem := float64(quantizeSize(st.size)) / 10
	m := f.parsed.Metrics(ppem)

	var off float64
	switch st.align.Vertical() {
	case AlignTop:
		off = m.Ascent
	case AlignMiddle:
		off = (m.Ascent - m.Descent) / 2
	case AlignBottom:
		off = -m.Descent
	default: // AlignBaseline
		return 0
	}
	if s.config.zero == ZeroBottomLeft {
		off = -off
	}
	return float32(off)
}
