// Package atlas implements the shelf-packed alpha texture backing a glyph
// stash. An Atlas owns a single 8-bit pixel buffer, allocates rectangular
// cells through a shelf packer, and tracks the dirty region that still
// needs uploading to the caller's texture.
//
// The package is deliberately renderer-agnostic: it never touches a GPU.
// Callers read Pixels and the dirty rectangle and upload however they like.
package atlas
