package atlas

// Shelf implements shelf-based rectangle packing.
// Simple and fast algorithm suitable for glyph-sized rectangles.
//
// The algorithm organizes rectangles in horizontal "shelves".
// Each shelf has a fixed height (determined by the tallest item placed so far).
// New items are placed left-to-right on the current shelf until no space remains,
// then a new shelf is started below.
type Shelf struct {
	width   int     // Total width of the packing area
	height  int     // Total height of the packing area
	padding int     // Padding between cells
	shelves []shelf // List of shelves

	// Tracking for utilization
	usedArea int
}

// shelf represents a horizontal strip in the packing area.
type shelf struct {
	y      int // Y position of shelf top
	height int // Height of the shelf (tallest item so far)
	x      int // Current X position (next free slot)
}

// NewShelf creates a new shelf packer for the given dimensions.
func NewShelf(width, height, padding int) *Shelf {
	return &Shelf{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16), // Preallocate for typical use
	}
}

// Allocate finds space for a rectangle of the given size.
// Returns x, y position and true if space was found, or -1, -1, false if not.
//
// The algorithm:
//  1. Try to fit on an existing shelf with enough height
//  2. If no shelf fits, create a new shelf
//  3. If no space for a new shelf, allocation fails
func (a *Shelf) Allocate(w, h int) (x, y int, ok bool) {
	if w <= 0 || h <= 0 {
		return -1, -1, false
	}

	// Add padding to requested size
	paddedW := w + a.padding
	paddedH := h + a.padding

	// Try to find an existing shelf with enough space and height
	for i := range a.shelves {
		shelf := &a.shelves[i]

		// Check if item fits horizontally
		if shelf.x+paddedW > a.width {
			continue
		}

		// Check if item fits vertically in this shelf
		if h > shelf.height {
			// Item is taller than shelf - check if we can extend the shelf.
			// Only possible if this is the last shelf and there's room below.
			if i == len(a.shelves)-1 {
				newBottom := shelf.y + paddedH
				if newBottom <= a.height {
					// Extend shelf height
					shelf.height = h
					x, y = shelf.x, shelf.y
					shelf.x += paddedW
					a.usedArea += w * h
					return x, y, true
				}
			}
			continue
		}

		// Item fits on this shelf
		x, y = shelf.x, shelf.y
		shelf.x += paddedW
		a.usedArea += w * h
		return x, y, true
	}

	// No existing shelf works - try to create a new one
	newY := 0
	if len(a.shelves) > 0 {
		last := a.shelves[len(a.shelves)-1]
		newY = last.y + last.height + a.padding
	}

	// Check if new shelf fits
	if paddedW > a.width || newY+paddedH > a.height {
		return -1, -1, false
	}

	// Create new shelf
	newShelf := shelf{
		y:      newY,
		height: h,
		x:      paddedW,
	}
	a.shelves = append(a.shelves, newShelf)
	a.usedArea += w * h

	return 0, newY, true
}

// CanFit returns true if an item of the given size could possibly fit.
// This is a quick check without actually allocating.
func (a *Shelf) CanFit(w, h int) bool {
	paddedW := w + a.padding
	paddedH := h + a.padding

	// Items wider than the packing area can never fit
	if paddedW > a.width {
		return false
	}

	// Items taller than the packing area can never fit
	if paddedH > a.height {
		return false
	}

	// Check existing shelves
	for i := range a.shelves {
		shelf := &a.shelves[i]

		// Check if item fits horizontally
		if shelf.x+paddedW > a.width {
			continue
		}

		// Check if item fits in shelf height
		if h <= shelf.height {
			return true
		}

		// Check if we can extend last shelf
		if i == len(a.shelves)-1 {
			if shelf.y+paddedH <= a.height {
				return true
			}
		}
	}

	// Check if we can create a new shelf
	newY := 0
	if len(a.shelves) > 0 {
		last := a.shelves[len(a.shelves)-1]
		newY = last.y + last.height + a.padding
	}

	return newY+paddedH <= a.height
}

// Grow enlarges the packing area. Existing shelves keep their positions,
// so previously allocated cells stay valid; new space opens to the right
// of each shelf and below the last one. Shrinking is not allowed.
func (a *Shelf) Grow(width, height int) {
	if width > a.width {
		a.width = width
	}
	if height > a.height {
		a.height = height
	}
}

// Reset clears all allocations, allowing the packer to be reused,
// optionally with new dimensions.
func (a *Shelf) Reset(width, height int) {
	a.shelves = a.shelves[:0] // Keep capacity
	a.usedArea = 0
	a.width = width
	a.height = height
}

// Utilization returns the fraction of the packing area used (0.0 to 1.0).
func (a *Shelf) Utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	totalArea := a.width * a.height
	return float64(a.usedArea) / float64(totalArea)
}

// ShelfCount returns the number of shelves currently in use.
func (a *Shelf) ShelfCount() int {
	return len(a.shelves)
}

// RemainingHeight returns the vertical space remaining for new shelves.
func (a *Shelf) RemainingHeight() int {
	if len(a.shelves) == 0 {
		return a.height
	}

	last := a.shelves[len(a.shelves)-1]
	used := last.y + last.height + a.padding
	if used >= a.height {
		return 0
	}
	return a.height - used
}
