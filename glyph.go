package fontstash

import "fmt"

// quantizeSize converts a pixel size to tenths of a pixel, the resolution
// glyph cells are cached at.
func quantizeSize(size float32) int16 {
	if size < 0 {
		return 0
	}
	return int16(size*10 + 0.5)
}

// quantizeBlur rounds and clamps a blur radius to the cached range.
func quantizeBlur(blur float32) uint8 {
	if blur <= 0 {
		return 0
	}
	if blur > maxBlur {
		return maxBlur
	}
	return uint8(blur + 0.5)
}

// resolveGlyph maps a rune to a glyph, consulting f's fallback chain when
// f itself has no glyph for it. Returns f and its notdef glyph when no
// font in the chain covers the rune.
func (s *Stash) resolveGlyph(f *Font, r rune) (*Font, GlyphID) {
	gid := f.parsed.GlyphIndex(r)
	if gid != 0 {
		return f, gid
	}
	for _, id := range f.fallbacks {
		if id < 0 || id >= len(s.fonts) {
			continue
		}
		fb := s.fonts[id]
		if g := fb.parsed.GlyphIndex(r); g != 0 {
			return fb, g
		}
	}
	return f, gid
}

// getGlyph returns the cached record for a glyph at the state's size and
// blur, creating it on demand. When bitmapRequired is set the glyph is
// rasterized into the atlas as well; a nil return then means the atlas is
// full (already reported through the error handler) and the glyph should
// be skipped. Measurement passes bitmapRequired=false and never touches
// the atlas.
func (s *Stash) getGlyph(f *Font, gid GlyphID, st *state, bitmapRequired bool) *glyphRecord {
	key := glyphKey{
		font:  f.id,
		gid:   gid,
		sizeQ: quantizeSize(st.size),
		blur:  quantizeBlur(st.blur),
	}
	rec := s.cache.get(key)
	if rec != nil && (rec.rendered || !bitmapRequired) {
		return rec
	}

	ppem := float64(key.sizeQ) / 10
	if rec == nil {
		rec = &glyphRecord{
			key:  key,
			xadv: f.parsed.GlyphAdvance(gid, ppem),
		}
		s.cache.put(rec)
	}
	if !bitmapRequired {
		return rec
	}

	outline, outlineOK := f.parsed.GlyphOutline(gid, ppem)
	if !outlineOK || outline.Empty() {
		// Whitespace or an empty notdef: advance only.
		rec.rendered = true
		return rec
	}
	gb, boundsOK := f.parsed.GlyphBounds(gid, ppem)
	if !boundsOK {
		// Backends without extents still carry the outline; its
		// control-point box serves as the cell.
		gb = outline.Bounds()
	}

	pad := int(key.blur) + 2
	mask := rasterizeOutline(outline, glyphCellRect(gb, pad))
	if mask == nil {
		rec.rendered = true
		return rec
	}
	if key.blur > 0 {
		blurAlpha(mask, float64(key.blur))
	}

	cell := mask.Rect
	region, placed := s.atlas.Place(mask)
	if !placed {
		s.reportError(fmt.Errorf("%w: glyph %d of font %q at size %.1f",
			ErrAtlasFull, gid, f.name, ppem))
		return nil
	}

	rec.region = region
	rec.offX = cell.Min.X
	rec.offY = cell.Min.Y
	rec.rendered = true
	return rec
}
