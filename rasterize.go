package fontstash

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// glyphCellRect returns the integer pixel cell for a glyph with the given
// outline bounds, expanded by pad texels on every side. The same expansion
// is applied by measurement so that measured boxes and rasterized cells
// agree.
func glyphCellRect(b Rect, pad int) image.Rectangle {
	if b.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(b.MinX))-pad,
		int(math.Floor(b.MinY))-pad,
		int(math.Ceil(b.MaxX))+pad,
		int(math.Ceil(b.MaxY))+pad,
	)
}

// rasterizeOutline renders an outline into an alpha mask whose Rect is the
// given glyph cell, positioned relative to the glyph origin on the
// baseline. The cell comes from glyphCellRect so that measurement and
// rasterization agree on cell geometry; coverage outside it is clipped.
// Returns nil for an empty cell.
func rasterizeOutline(outline Outline, cell image.Rectangle) *image.Alpha {
	if cell.Empty() {
		return nil
	}

	w := cell.Dx()
	h := cell.Dy()

	var r vector.Rasterizer
	r.Reset(w, h)
	r.DrawOp = draw.Src

	// The rasterizer works in the positive quadrant; shift so that
	// cell.Min lands on (0, 0).
	ox := float32(-cell.Min.X)
	oy := float32(-cell.Min.Y)

	started := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case OutlineOpMoveTo:
			if started {
				r.ClosePath()
			}
			r.MoveTo(seg.Args[0].X+ox, seg.Args[0].Y+oy)
			started = true
		case OutlineOpLineTo:
			r.LineTo(seg.Args[0].X+ox, seg.Args[0].Y+oy)
		case OutlineOpQuadTo:
			r.QuadTo(
				seg.Args[0].X+ox, seg.Args[0].Y+oy,
				seg.Args[1].X+ox, seg.Args[1].Y+oy,
			)
		case OutlineOpCubeTo:
			r.CubeTo(
				seg.Args[0].X+ox, seg.Args[0].Y+oy,
				seg.Args[1].X+ox, seg.Args[1].Y+oy,
				seg.Args[2].X+ox, seg.Args[2].Y+oy,
			)
		}
	}
	if started {
		r.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	// The source is uniform, so the sampling offset point is irrelevant.
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// Translate the mask to its final position relative to the origin.
	mask.Rect = mask.Rect.Add(cell.Min)
	return mask
}
