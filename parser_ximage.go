package fontstash

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontstash: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
//
// sfnt.Buffer is not safe for concurrent use, so every operation shares
// a single buffer behind a mutex. The buffer amortizes glyph-table
// allocations across calls.
type ximageParsedFont struct {
	font *sfnt.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// Hinting is disabled throughout: quads are positioned at fractional
// coordinates by the caller and hinted outlines would fight the atlas
// placement rounding.
const ximageHinting = font.HintingNone

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := f.font.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// NumGlyphs implements ParsedFont.NumGlyphs.
func (f *ximageParsedFont) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) GlyphID {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return GlyphID(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(gid GlyphID, ppem float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	advance, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), floatToFixed66(ppem), ximageHinting)
	if err != nil {
		return 0
	}
	return fixedToFloat64(advance)
}

// Kern implements ParsedFont.Kern. Fonts without a kern table report 0.
func (f *ximageParsedFont) Kern(a, b GlyphID, ppem float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	kern, err := f.font.Kern(&f.buf, sfnt.GlyphIndex(a), sfnt.GlyphIndex(b), floatToFixed66(ppem), ximageHinting)
	if err != nil {
		return 0
	}
	return fixedToFloat64(kern)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
func (f *ximageParsedFont) GlyphBounds(gid GlyphID, ppem float64) (Rect, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bounds, _, err := f.font.GlyphBounds(&f.buf, sfnt.GlyphIndex(gid), floatToFixed66(ppem), ximageHinting)
	if err != nil {
		return Rect{}, false
	}
	r := Rect{
		MinX: fixedToFloat64(bounds.Min.X),
		MinY: fixedToFloat64(bounds.Min.Y),
		MaxX: fixedToFloat64(bounds.Max.X),
		MaxY: fixedToFloat64(bounds.Max.Y),
	}
	if r.Empty() {
		return Rect{}, false
	}
	return r, true
}

// GlyphOutline implements ParsedFont.GlyphOutline.
func (f *ximageParsedFont) GlyphOutline(gid GlyphID, ppem float64) (Outline, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	segs, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), floatToFixed66(ppem), nil)
	if err != nil || len(segs) == 0 {
		return Outline{}, false
	}

	// The segment slice is owned by the buffer and reused on the next
	// LoadGlyph call, so the conversion below also serves as the copy.
	out := Outline{Segments: make([]OutlineSegment, len(segs))}
	for i, seg := range segs {
		var op OutlineOp
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			op = OutlineOpCubeTo
		}
		out.Segments[i] = OutlineSegment{
			Op: op,
			Args: [3]OutlinePoint{
				{X: fixedToFloat32(seg.Args[0].X), Y: fixedToFloat32(seg.Args[0].Y)},
				{X: fixedToFloat32(seg.Args[1].X), Y: fixedToFloat32(seg.Args[1].Y)},
				{X: fixedToFloat32(seg.Args[2].X), Y: fixedToFloat32(seg.Args[2].Y)},
			},
		}
	}
	return out, true
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.font.Metrics(&f.buf, floatToFixed66(ppem), ximageHinting)
	if err != nil {
		return FontMetrics{}
	}
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	return FontMetrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: fixedToFloat64(m.Height) - ascent - descent,
	}
}

// floatToFixed66 converts a pixel value to fixed.Int26_6.
func floatToFixed66(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + 0.5)
}

// fixedToFloat64 converts fixed.Int26_6 to float64 pixels.
func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// fixedToFloat32 converts fixed.Int26_6 to float32 pixels.
func fixedToFloat32(v fixed.Int26_6) float32 {
	return float32(v) / 64.0
}
