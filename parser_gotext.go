package fontstash

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
// Select it with WithParser("gotext"). Fonts parsed by this backend share
// their parsed tables with shaped iteration, which avoids parsing the same
// data twice when ShapeText is the primary entry point.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontstash: failed to parse font: %w", err)
	}
	return &gotextParsedFont{face: face}, nil
}

// gotextParsedFont implements ParsedFont on a go-text font.Face.
//
// font.Face caches glyph lookups and is not safe for concurrent use, so
// every operation holds the mutex.
type gotextParsedFont struct {
	mu   sync.Mutex
	face *font.Face
}

// Name implements ParsedFont.Name. Family name extraction is left to the
// caller; fonts in a Stash are keyed by the alias passed to AddFont.
func (f *gotextParsedFont) Name() string {
	return ""
}

// NumGlyphs implements ParsedFont.NumGlyphs. go-text does not expose the
// glyph count, so this backend reports 0; use the default backend when the
// count matters.
func (f *gotextParsedFont) NumGlyphs() int {
	return 0
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int(f.face.Upem())
}

// scale returns the font-unit to pixel scale factor for a size.
func (f *gotextParsedFont) scale(ppem float64) float64 {
	upem := float64(f.face.Upem())
	if upem == 0 {
		return 0
	}
	return ppem / upem
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) GlyphID {
	f.mu.Lock()
	defer f.mu.Unlock()
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphID(gid)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(gid GlyphID, ppem float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return float64(f.face.HorizontalAdvance(font.GID(gid))) * f.scale(ppem)
}

// Kern implements ParsedFont.Kern. Pair kerning has no direct surface in
// go-text; it is applied during shaping, so the simple iterator path
// reports no kerning for this backend.
func (f *gotextParsedFont) Kern(a, b GlyphID, ppem float64) float64 {
	return 0
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *gotextParsedFont) GlyphBounds(gid GlyphID, ppem float64) (Rect, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ext, ok := f.face.GlyphExtents(font.GID(gid))
	if !ok {
		return Rect{}, false
	}
	s := f.scale(ppem)

	// Extents are y-up font units: YBearing is the top edge and Height
	// extends downward as a negative value. Flip into y-down pixels.
	r := Rect{
		MinX: float64(ext.XBearing) * s,
		MinY: -float64(ext.YBearing) * s,
		MaxX: float64(ext.XBearing+ext.Width) * s,
		MaxY: -float64(ext.YBearing+ext.Height) * s,
	}
	if r.Empty() {
		return Rect{}, false
	}
	return r, true
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *gotextParsedFont) GlyphOutline(gid GlyphID, ppem float64) (Outline, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data := f.face.GlyphData(font.GID(gid))
	outline, ok := data.(font.GlyphOutline)
	if !ok || len(outline.Segments) == 0 {
		return Outline{}, false
	}
	s := float32(f.scale(ppem))

	out := Outline{Segments: make([]OutlineSegment, len(outline.Segments))}
	for i, seg := range outline.Segments {
		var op OutlineOp
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			op = OutlineOpMoveTo
		case ot.SegmentOpLineTo:
			op = OutlineOpLineTo
		case ot.SegmentOpQuadTo:
			op = OutlineOpQuadTo
		case ot.SegmentOpCubeTo:
			op = OutlineOpCubeTo
		}
		var args [3]OutlinePoint
		for j := range seg.Args {
			// Font units are y-up; pixels are y-down.
			args[j] = OutlinePoint{
				X: seg.Args[j].X * s,
				Y: -seg.Args[j].Y * s,
			}
		}
		out.Segments[i] = OutlineSegment{Op: op, Args: args}
	}
	return out, true
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(ppem float64) FontMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	ext, ok := f.face.FontHExtents()
	if !ok {
		return FontMetrics{}
	}
	s := f.scale(ppem)
	return FontMetrics{
		Ascent:  float64(ext.Ascender) * s,
		Descent: -float64(ext.Descender) * s,
		LineGap: float64(ext.LineGap) * s,
	}
}
