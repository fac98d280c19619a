package fontstash

// OutlineOp identifies one drawing operation of a glyph outline.
type OutlineOp uint8

const (
	// OutlineOpMoveTo starts a new contour at Args[0].
	OutlineOpMoveTo OutlineOp = iota
	// OutlineOpLineTo draws a line to Args[0].
	OutlineOpLineTo
	// OutlineOpQuadTo draws a quadratic curve through control Args[0] to Args[1].
	OutlineOpQuadTo
	// OutlineOpCubeTo draws a cubic curve through controls Args[0], Args[1] to Args[2].
	OutlineOpCubeTo
)

// OutlinePoint is a single outline coordinate in y-down pixels relative to
// the glyph origin on the baseline.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment is one operation of a glyph outline. Only the first
// Op.argCount() entries of Args are meaningful.
type OutlineSegment struct {
	Op   OutlineOp
	Args [3]OutlinePoint
}

// argCount returns the number of meaningful Args for the operation.
func (op OutlineOp) argCount() int {
	switch op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubeTo:
		return 3
	default:
		return 1
	}
}

// Outline is a glyph outline scaled to a specific pixel size, ready for
// rasterization.
type Outline struct {
	Segments []OutlineSegment
}

// Empty reports whether the outline has no segments (e.g. a space glyph).
func (o Outline) Empty() bool {
	return len(o.Segments) == 0
}

// Bounds returns the control-point bounding box of the outline. Curves
// never leave the convex hull of their control points, so the box is
// conservative but may overestimate slightly on curved edges. That is the
// same trade-off the underlying font libraries make, and it only costs a
// few blank texels per glyph cell.
func (o Outline) Bounds() Rect {
	if len(o.Segments) == 0 {
		return Rect{}
	}

	first := true
	var r Rect
	for _, seg := range o.Segments {
		n := seg.Op.argCount()
		for i := 0; i < n; i++ {
			x := float64(seg.Args[i].X)
			y := float64(seg.Args[i].Y)
			if first {
				r = Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
				first = false
				continue
			}
			if x < r.MinX {
				r.MinX = x
			}
			if x > r.MaxX {
				r.MaxX = x
			}
			if y < r.MinY {
				r.MinY = y
			}
			if y > r.MaxY {
				r.MaxY = y
			}
		}
	}
	return r
}
