package fontstash

import "image"

// Renderer receives atlas texture lifecycle notifications. Attach one with
// [WithRenderer] to mirror the atlas into a GPU texture; without one, poll
// [Stash.DirtyRect] and [Stash.TextureData] instead. Both styles observe
// the same pixels.
//
// Methods are invoked synchronously from Stash operations, on whatever
// goroutine called the Stash.
type Renderer interface {
	// CreateTexture is called when the atlas texture is created, expanded
	// or reset. Any previously uploaded texture is invalid afterwards.
	// A non-nil error from CreateTexture aborts the operation that
	// triggered it.
	CreateTexture(width, height int) error

	// UpdateTexture is called when a region of the atlas has new pixels.
	// The pixels slice is the full atlas buffer, one byte per texel with
	// the given stride; only rect needs re-uploading. The slice must not
	// be retained after the call returns.
	UpdateTexture(rect image.Rectangle, pixels []byte, stride int)
}
