package atlas

import (
	"image"
)

// Size limits for the atlas texture. The initial size of a text stash is
// typically 512; anything past MaxSize stops being a cache and starts
// being a memory problem.
const (
	MinSize = 64
	MaxSize = 8192
)

// SizeError reports an invalid atlas dimension.
type SizeError struct {
	Dim    string
	Value  int
	Reason string
}

func (e *SizeError) Error() string {
	return "atlas: invalid " + e.Dim + ": " + e.Reason
}

// validateSize checks one atlas dimension against the allowed range.
func validateSize(dim string, v int) error {
	if v < MinSize {
		return &SizeError{Dim: dim, Value: v, Reason: "must be at least 64"}
	}
	if v > MaxSize {
		return &SizeError{Dim: dim, Value: v, Reason: "must be at most 8192"}
	}
	return nil
}

// Atlas is a shelf-packed 8-bit alpha texture. Rasterized glyph cells are
// placed into the pixel buffer and the region still awaiting upload is
// tracked as a dirty rectangle.
//
// An Atlas is not safe for concurrent use.
type Atlas struct {
	pixels []byte
	width  int
	height int
	shelf  *Shelf
	dirty  image.Rectangle
}

// New creates an atlas of the given size with no padding between cells;
// callers bake whatever padding they need into the cells themselves.
func New(width, height int) (*Atlas, error) {
	if err := validateSize("width", width); err != nil {
		return nil, err
	}
	if err := validateSize("height", height); err != nil {
		return nil, err
	}
	return &Atlas{
		pixels: make([]byte, width*height),
		width:  width,
		height: height,
		shelf:  NewShelf(width, height, 0),
	}, nil
}

// Width returns the atlas width in texels.
func (a *Atlas) Width() int { return a.width }

// Height returns the atlas height in texels.
func (a *Atlas) Height() int { return a.height }

// Pixels returns the backing pixel buffer, one byte per texel, row-major
// with stride Width. The slice is owned by the atlas; callers must treat
// it as read-only and must not retain it across Expand or Reset.
func (a *Atlas) Pixels() []byte { return a.pixels }

// Image returns an *image.Alpha view sharing the atlas pixel buffer.
func (a *Atlas) Image() *image.Alpha {
	return &image.Alpha{
		Pix:    a.pixels,
		Stride: a.width,
		Rect:   image.Rect(0, 0, a.width, a.height),
	}
}

// Place allocates a cell for the mask and copies its pixels in.
// The returned rectangle is the cell's position in atlas texels.
// Returns false when the mask does not fit; the atlas is unchanged.
func (a *Atlas) Place(mask *image.Alpha) (image.Rectangle, bool) {
	if mask == nil {
		return image.Rectangle{}, false
	}
	w := mask.Rect.Dx()
	h := mask.Rect.Dy()
	x, y, ok := a.shelf.Allocate(w, h)
	if !ok {
		return image.Rectangle{}, false
	}

	for row := 0; row < h; row++ {
		src := mask.Pix[row*mask.Stride : row*mask.Stride+w]
		dst := a.pixels[(y+row)*a.width+x:]
		copy(dst[:w], src)
	}

	region := image.Rect(x, y, x+w, y+h)
	a.markDirty(region)
	return region, true
}

// CanFit reports whether a cell of the given size could be allocated.
func (a *Atlas) CanFit(w, h int) bool {
	return a.shelf.CanFit(w, h)
}

// Expand grows the atlas, preserving all placed cells and their
// coordinates. Both dimensions must be at least the current size.
func (a *Atlas) Expand(width, height int) error {
	if err := validateSize("width", width); err != nil {
		return err
	}
	if err := validateSize("height", height); err != nil {
		return err
	}
	if width < a.width || height < a.height {
		return &SizeError{Dim: "size", Value: width, Reason: "expand cannot shrink the atlas"}
	}
	if width == a.width && height == a.height {
		return nil
	}

	pixels := make([]byte, width*height)
	for row := 0; row < a.height; row++ {
		copy(pixels[row*width:row*width+a.width], a.pixels[row*a.width:(row+1)*a.width])
	}

	// Everything already placed must be re-uploaded: the caller's texture
	// is recreated at the new size.
	a.markDirty(image.Rect(0, 0, a.width, a.height))

	a.pixels = pixels
	a.width = width
	a.height = height
	a.shelf.Grow(width, height)
	return nil
}

// Reset discards all placed cells and pixel data, optionally changing the
// atlas size. Regions returned by earlier Place calls become invalid.
func (a *Atlas) Reset(width, height int) error {
	if err := validateSize("width", width); err != nil {
		return err
	}
	if err := validateSize("height", height); err != nil {
		return err
	}

	if width == a.width && height == a.height {
		clear(a.pixels)
	} else {
		a.pixels = make([]byte, width*height)
		a.width = width
		a.height = height
	}
	a.shelf.Reset(width, height)
	a.dirty = image.Rectangle{}
	return nil
}

// Utilization returns the fraction of atlas area covered by cells.
func (a *Atlas) Utilization() float64 {
	return a.shelf.Utilization()
}

// TakeDirty returns the region modified since the last call and clears it.
// The second result is false when nothing changed.
func (a *Atlas) TakeDirty() (image.Rectangle, bool) {
	if a.dirty.Empty() {
		return image.Rectangle{}, false
	}
	d := a.dirty
	a.dirty = image.Rectangle{}
	return d, true
}

// markDirty unions the rectangle into the pending dirty region.
func (a *Atlas) markDirty(r image.Rectangle) {
	if a.dirty.Empty() {
		a.dirty = r
		return
	}
	a.dirty = a.dirty.Union(r)
}
