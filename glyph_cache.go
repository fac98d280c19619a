package fontstash

import "image"

// glyphKey uniquely identifies a cached glyph cell.
type glyphKey struct {
	// font is the ID of the font the glyph was resolved in (after
	// fallback resolution).
	font int

	// gid is the glyph index within that font.
	gid GlyphID

	// sizeQ is the font size quantized to tenths of a pixel. Two sizes
	// within the same tenth share cells.
	sizeQ int16

	// blur is the integer blur radius.
	blur uint8
}

// glyphRecord is one cached glyph cell.
type glyphRecord struct {
	key glyphKey

	// region is the cell's position in atlas texels. Empty for glyphs
	// without pixel coverage (whitespace) and for records created by
	// measurement before any rasterization happened.
	region image.Rectangle

	// offX, offY position the cell relative to the pen, offY relative to
	// the baseline (negative above it).
	offX, offY int

	// xadv is the unrounded advance width in pixels.
	xadv float64

	// rendered is set once the cell has pixels in the atlas. Measurement
	// creates unrendered records; iteration upgrades them on demand.
	rendered bool
}

// GlyphCacheStats holds cumulative glyph cache counters.
type GlyphCacheStats struct {
	Hits       uint64
	Misses     uint64
	Insertions uint64
}

// glyphCache maps glyph keys to atlas cells.
//
// Unlike a byte-bounded mask cache, entries reference regions of a shared
// texture that cannot be reclaimed piecemeal, so there is no eviction:
// capacity pressure surfaces as ErrAtlasFull and the cache is dropped
// wholesale on ResetAtlas. The Stash owning the cache is single-threaded,
// so no locking is needed.
type glyphCache struct {
	entries map[glyphKey]*glyphRecord
	stats   GlyphCacheStats
}

// newGlyphCache creates an empty glyph cache.
func newGlyphCache() *glyphCache {
	return &glyphCache{
		entries: make(map[glyphKey]*glyphRecord, 256),
	}
}

// get retrieves a cached record, counting the lookup.
func (c *glyphCache) get(key glyphKey) *glyphRecord {
	rec, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return nil
	}
	c.stats.Hits++
	return rec
}

// put stores a record.
func (c *glyphCache) put(rec *glyphRecord) {
	c.entries[rec.key] = rec
	c.stats.Insertions++
}

// clear drops all records, keeping the statistics.
func (c *glyphCache) clear() {
	c.entries = make(map[glyphKey]*glyphRecord, 256)
}

// len returns the number of cached records.
func (c *glyphCache) len() int {
	return len(c.entries)
}

// hitRate returns the cache hit rate as a percentage.
// Returns 0 if there are no accesses.
func (s GlyphCacheStats) hitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}
