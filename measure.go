package fontstash

import "math"

// measureAdvance returns the total pen advance of text under the given
// state, using the same integer pen arithmetic as iteration so that
// measured and rendered text line up exactly.
func (s *Stash) measureAdvance(base *Font, st *state, text string) float32 {
	ppem := float64(quantizeSize(st.size)) / 10

	var x float32
	var prevFont int
	var prevGID GlyphID
	hasPrev := false

	for _, r := range text {
		f, gid := s.resolveGlyph(base, r)
		if hasPrev {
			var kern float64
			if prevFont == f.id {
				kern = f.parsed.Kern(prevGID, gid, ppem)
			}
			x += float32(int(kern + float64(st.spacing) + 0.5))
		}
		rec := s.getGlyph(f, gid, st, false)
		x += float32(int(rec.xadv + 0.5))
		prevFont = f.id
		prevGID = gid
		hasPrev = true
	}
	return x
}

// TextBounds measures text as if drawn at (x, y) with the current state,
// without touching the atlas. It returns the pen advance and the bounding
// box of all glyph cells, in the same coordinates iteration would place
// quads in. Text with no visible glyphs yields a bounds collapsed onto the
// anchor.
func (s *Stash) TextBounds(x, y float32, text string) (advance float32, bounds Rect, err error) {
	f, err := s.currentFont()
	if err != nil {
		return 0, Rect{}, err
	}
	st := s.state()
	ppem := float64(quantizeSize(st.size)) / 10
	pad := int(quantizeBlur(st.blur)) + 2

	switch st.align.Horizontal() {
	case AlignCenter:
		x -= s.measureAdvance(f, st, text) * 0.5
	case AlignRight:
		x -= s.measureAdvance(f, st, text)
	}
	y += s.vertAlignOffset(f, st)

	startX := x
	bounds = Rect{MinX: float64(x), MinY: float64(y), MaxX: float64(x), MaxY: float64(y)}

	var prevFont int
	var prevGID GlyphID
	hasPrev := false

	for _, r := range text {
		gf, gid := s.resolveGlyph(f, r)
		if hasPrev {
			var kern float64
			if prevFont == gf.id {
				kern = gf.parsed.Kern(prevGID, gid, ppem)
			}
			x += float32(int(kern + float64(st.spacing) + 0.5))
		}

		if gb, ok := gf.parsed.GlyphBounds(gid, ppem); ok {
			cell := glyphCellRect(gb, pad)
			if !cell.Empty() {
				x0 := math.Floor(float64(x) + float64(cell.Min.X))
				x1 := x0 + float64(cell.Dx())
				bounds.MinX = math.Min(bounds.MinX, x0)
				bounds.MaxX = math.Max(bounds.MaxX, x1)

				var y0, y1 float64
				if s.config.zero == ZeroTopLeft {
					y0 = math.Floor(float64(y) + float64(cell.Min.Y))
					y1 = y0 + float64(cell.Dy())
				} else {
					y1 = math.Floor(float64(y) - float64(cell.Min.Y))
					y0 = y1 - float64(cell.Dy())
				}
				bounds.MinY = math.Min(bounds.MinY, math.Min(y0, y1))
				bounds.MaxY = math.Max(bounds.MaxY, math.Max(y0, y1))
			}
		}

		rec := s.getGlyph(gf, gid, st, false)
		x += float32(int(rec.xadv + 0.5))
		prevFont = gf.id
		prevGID = gid
		hasPrev = true
	}
	return x - startX, bounds, nil
}

// VertMetrics returns the current font's vertical metrics at the current
// size, in pixels. Descent is positive.
func (s *Stash) VertMetrics() (ascent, descent, lineHeight float32, err error) {
	f, err := s.currentFont()
	if err != nil {
		return 0, 0, 0, err
	}
	ppem := float64(quantizeSize(s.state().size)) / 10
	m := f.parsed.Metrics(ppem)
	return float32(m.Ascent), float32(m.Descent), float32(m.LineHeight()), nil
}

// LineBounds returns the vertical extent of a text line whose anchor sits
// at y under the current state, as a [minY, maxY] interval in the stash's
// coordinate convention.
func (s *Stash) LineBounds(y float32) (minY, maxY float32, err error) {
	f, err := s.currentFont()
	if err != nil {
		return 0, 0, err
	}
	st := s.state()
	ppem := float64(quantizeSize(st.size)) / 10
	m := f.parsed.Metrics(ppem)
	lineh := float32(m.LineHeight())

	y += s.vertAlignOffset(f, st)

	if s.config.zero == ZeroTopLeft {
		minY = y - float32(m.Ascent)
		maxY = minY + lineh
	} else {
		maxY = y + float32(m.Descent)
		minY = maxY - lineh
	}
	return minY, maxY, nil
}
