package fontstash

// ShapeText lays out text through HarfBuzz shaping and returns the quads
// for all visible glyphs, anchored at (x, y) under the current state. Use
// it instead of [Stash.TextIter] when the text needs ligatures, shaping
// rules of complex scripts, or right-to-left ordering; the per-rune
// iteration path is cheaper for plain Latin text.
//
// The text is split into direction runs with [SplitRuns] and each run is
// shaped separately; runs are placed left to right in logical order.
// Shaping resolves glyphs in the current font only, without consulting
// fallback fonts. Letter spacing is added to every shaped advance, and
// glyphs that do not fit the atlas are skipped after reporting
// [ErrAtlasFull], matching iteration.
func (s *Stash) ShapeText(x, y float32, text string) ([]Quad, error) {
	f, err := s.currentFont()
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	if s.shaper == nil {
		s.shaper = NewGoTextShaper()
	}

	st := *s.state()
	size := float64(quantizeSize(st.size)) / 10
	spacing := float64(st.spacing)

	runs := SplitRuns(text, DirectionLTR)
	shaped := make([][]ShapedGlyph, len(runs))
	var total float64
	for i, run := range runs {
		shaped[i] = s.shaper.Shape(f, size, run.Direction, run.Text)
		for _, g := range shaped[i] {
			total += g.XAdvance + spacing
		}
	}

	switch st.align.Horizontal() {
	case AlignCenter:
		x -= float32(total * 0.5)
	case AlignRight:
		x -= float32(total)
	}
	y += s.vertAlignOffset(f, &st)

	var quads []Quad
	penX := float64(x)
	for _, glyphs := range shaped {
		runX := penX
		for _, g := range glyphs {
			rec := s.getGlyph(f, g.GID, &st, true)
			if rec == nil {
				continue
			}
			gx := runX + g.X
			gy := float64(y)
			if s.config.zero == ZeroTopLeft {
				gy += g.Y
			} else {
				gy -= g.Y
			}
			if q, ok := s.quadFor(rec, float32(gx), float32(gy)); ok {
				quads = append(quads, q)
			}
			runX += g.XAdvance + spacing
		}
		penX = runX
	}

	// Quads reference atlas texels written during this call.
	s.flush()
	return quads, nil
}
