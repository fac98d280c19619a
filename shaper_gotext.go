package fontstash

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// ShapedGlyph is one glyph produced by shaping, positioned relative to the
// start of its run in pixels.
type ShapedGlyph struct {
	// GID is the glyph index in the shaped font.
	GID GlyphID

	// Cluster is the byte offset of the source rune cluster in the run's
	// text. Several glyphs may share a cluster (splitting) and a single
	// glyph may cover several runes (ligatures).
	Cluster int

	// X, Y offset the glyph origin from the run's pen start.
	X, Y float64

	// XAdvance and YAdvance move the pen after this glyph; exactly one is
	// nonzero depending on the run direction.
	XAdvance, YAdvance float64
}

// GoTextShaper shapes text with go-text/typesetting's HarfBuzz port,
// applying OpenType substitution and positioning (GSUB/GPOS): ligatures,
// mark placement and complex-script rules that the per-rune iteration path
// cannot. Fonts that express pair kerning only through a legacy kern table
// shape with plain advances. It is used by [Stash.ShapeText] and can be
// shared between stashes.
//
// GoTextShaper is safe for concurrent use: parsed font.Font objects are
// read-only and cached per Font, while the non-concurrent-safe
// HarfbuzzShaper instances are pooled.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*Font]*font.Font
}

// NewGoTextShaper creates an empty shaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*Font]*font.Font),
	}
}

// Shape shapes text as a single run of the given direction at the given
// pixel size. Returns nil when the text is empty or the font data cannot
// be parsed; mixed-direction text should be split with [SplitRuns] first.
func (s *GoTextShaper) Shape(f *Font, size float64, dir Direction, text string) []ShapedGlyph {
	if text == "" || f == nil {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(f)
	if err != nil {
		Logger().Warn("shaping skipped, font not parseable",
			"font", f.Name(), "err", err)
		return nil
	}

	// font.Face carries per-call mutable caches and is not safe for
	// concurrent use; wrapping the shared *Font is cheap.
	goTextFace := font.NewFace(goTextFont)

	runes := []rune(text)
	gtDir := mapDirection(dir)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: gtDir,
		Face:      goTextFace,
		Size:      floatToFixed66(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	return convertShapedGlyphs(text, runes, output.Glyphs, gtDir)
}

// getOrCreateFont returns the cached go-text font for f, parsing the font
// data on first use. font.Font is read-only, so caching it is safe.
func (s *GoTextShaper) getOrCreateFont(f *Font) (*font.Font, error) {
	s.mu.RLock()
	if gt, ok := s.fontCache[f]; ok {
		s.mu.RUnlock()
		return gt, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gt, ok := s.fontCache[f]; ok {
		return gt, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(f.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[f] = face.Font
	return face.Font, nil
}

// ClearCache drops all cached parsed fonts.
func (s *GoTextShaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*Font]*font.Font)
}

// mapDirection converts a Direction to go-text's representation.
func mapDirection(d Direction) di.Direction {
	switch d {
	case DirectionRTL:
		return di.DirectionRTL
	case DirectionTTB:
		return di.DirectionTTB
	case DirectionBTT:
		return di.DirectionBTT
	default:
		return di.DirectionLTR
	}
}

// detectScript returns the script of the first non-space rune. Run
// splitting keeps scripts homogeneous within a run, so one sample is
// enough.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertShapedGlyphs accumulates go-text glyphs into pen-relative
// ShapedGlyphs with byte-offset clusters.
func convertShapedGlyphs(text string, runes []rune, glyphs []shaping.Glyph, dir di.Direction) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	// go-text reports clusters as rune indices; callers index bytes.
	byteOff := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		byteOff[i] = off
		off += len(string(r))
	}
	byteOff[len(runes)] = len(text)

	result := make([]ShapedGlyph, len(glyphs))
	var x, y float64
	for i, g := range glyphs {
		cluster := g.TextIndex()
		if cluster < 0 || cluster >= len(byteOff) {
			cluster = 0
		}
		result[i] = ShapedGlyph{
			GID:     GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph IDs are 16-bit in sfnt fonts
			Cluster: byteOff[cluster],
			X:       x + fixedToFloat64(g.XOffset),
			Y:       y - fixedToFloat64(g.YOffset),
		}
		adv := fixedToFloat64(g.Advance)
		if dir.IsVertical() {
			result[i].YAdvance = adv
			y += adv
		} else {
			result[i].XAdvance = adv
			x += adv
		}
	}
	return result
}
