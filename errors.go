package fontstash

import (
	"errors"
	"strconv"
)

// Sentinel errors for the fontstash package.
var (
	// ErrAtlasFull is reported through the error handler when a glyph does
	// not fit into the atlas. Call [Stash.ExpandAtlas] or [Stash.ResetAtlas]
	// to recover.
	ErrAtlasFull = errors.New("fontstash: atlas full")

	// ErrStatesOverflow is reported when PushState exceeds the state
	// stack capacity.
	ErrStatesOverflow = errors.New("fontstash: state stack overflow")

	// ErrStatesUnderflow is reported when PopState is called on a stack
	// holding a single state.
	ErrStatesUnderflow = errors.New("fontstash: state stack underflow")

	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontstash: empty font data")

	// ErrFontNotFound is returned when no font matches a name lookup.
	ErrFontNotFound = errors.New("fontstash: font not found")

	// ErrNoFontSet is returned when text operations run without a font.
	ErrNoFontSet = errors.New("fontstash: no font set")
)

// InvalidFontError is returned when a font ID does not refer to a loaded
// font.
type InvalidFontError struct {
	ID int
}

func (e *InvalidFontError) Error() string {
	return "fontstash: invalid font id " + strconv.Itoa(e.ID)
}

// FontParseError wraps a parser backend failure for a named font.
type FontParseError struct {
	Name string
	Err  error
}

func (e *FontParseError) Error() string {
	return "fontstash: parsing font " + strconv.Quote(e.Name) + ": " + e.Err.Error()
}

// Unwrap returns the underlying parser error.
func (e *FontParseError) Unwrap() error {
	return e.Err
}
