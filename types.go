package fontstash

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphID is a glyph index within a font. Index 0 is the missing-glyph
// placeholder ("notdef") in every OpenType font.
type GlyphID uint16

// Align is a bit set controlling how quads returned by [Stash.TextIter]
// are positioned relative to the iteration origin. Combine exactly one
// horizontal flag with exactly one vertical flag.
type Align uint8

const (
	// AlignLeft places the origin at the start of the text. Default.
	AlignLeft Align = 1 << iota
	// AlignCenter centers the text horizontally on the origin.
	AlignCenter
	// AlignRight places the origin at the end of the text.
	AlignRight
	// AlignTop places the origin at the top of the line.
	AlignTop
	// AlignMiddle centers the line vertically on the origin.
	AlignMiddle
	// AlignBottom places the origin at the bottom of the line.
	AlignBottom
	// AlignBaseline places the origin on the text baseline. Default.
	AlignBaseline
)

// AlignDefault is the alignment used by a fresh or cleared state.
const AlignDefault = AlignLeft | AlignBaseline

// Horizontal returns the horizontal component of the alignment,
// falling back to AlignLeft when none is set.
func (a Align) Horizontal() Align {
	switch {
	case a&AlignCenter != 0:
		return AlignCenter
	case a&AlignRight != 0:
		return AlignRight
	default:
		return AlignLeft
	}
}

// Vertical returns the vertical component of the alignment,
// falling back to AlignBaseline when none is set.
func (a Align) Vertical() Align {
	switch {
	case a&AlignTop != 0:
		return AlignTop
	case a&AlignMiddle != 0:
		return AlignMiddle
	case a&AlignBottom != 0:
		return AlignBottom
	default:
		return AlignBaseline
	}
}

// ZeroPosition selects the coordinate convention for quads.
type ZeroPosition int

const (
	// ZeroTopLeft places the origin at the top-left corner with Y growing
	// downward. Default, matches most 2D APIs.
	ZeroTopLeft ZeroPosition = iota
	// ZeroBottomLeft places the origin at the bottom-left corner with Y
	// growing upward, matching GL-style clip space.
	ZeroBottomLeft
)

// String returns the string representation of the zero position.
func (z ZeroPosition) String() string {
	switch z {
	case ZeroTopLeft:
		return "TopLeft"
	case ZeroBottomLeft:
		return "BottomLeft"
	default:
		return unknownStr
	}
}

// Direction specifies text direction for shaped iteration.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
	// DirectionTTB is top-to-bottom text (traditional Chinese, Japanese)
	DirectionTTB
	// DirectionBTT is bottom-to-top text (rare)
	DirectionBTT
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	case DirectionTTB:
		return "TTB"
	case DirectionBTT:
		return "BTT"
	default:
		return unknownStr
	}
}

// IsVertical returns true if the direction is vertical (TTB or BTT).
func (d Direction) IsVertical() bool {
	return d == DirectionTTB || d == DirectionBTT
}

// Quad is one textured rectangle of glyph geometry.
//
// (X0, Y0)-(X1, Y1) is the target rectangle in the caller's coordinate
// space, and (S0, T0)-(S1, T1) is the matching region of the atlas texture
// in normalized [0, 1] coordinates. The caller typically emits two
// triangles (or one instanced quad) per Quad.
type Quad struct {
	X0, Y0, S0, T0 float32
	X1, Y1, S1, T1 float32
}

// Rect is an axis-aligned rectangle in y-down pixel coordinates relative
// to a glyph origin on the baseline. Min.Y is therefore usually negative.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// RGBA packs the four color channels into the uint32 format used by
// [Stash.SetColor], with red in the least significant byte.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}
