package fontstash

import (
	"image"
	"math"
)

// Fixed-point precision for the blur accumulator and pixel values.
const (
	blurAPrec = 16
	blurZPrec = 7
)

// maxBlur caps the blur radius; the glyph cell padding grows with the
// radius and anything larger degenerates into a smudge anyway.
const maxBlur = 20

// blurAlpha applies an approximate Gaussian blur to the mask in place,
// implemented as two passes of a bidirectional exponential moving average
// over rows and columns. The mask must include enough padding around the
// glyph for the blur to decay into, which getGlyph guarantees by sizing
// the cell with the blur radius.
func blurAlpha(mask *image.Alpha, blur float64) {
	if mask == nil || blur < 0.01 {
		return
	}

	sigma := blur*0.57735 + 0.5 // 0.57735 ~= 1/sqrt(3)
	alpha := int32(float64(1<<blurAPrec) * (1 - math.Exp(-2.3/(sigma+1))))

	w := mask.Rect.Dx()
	h := mask.Rect.Dy()

	blurRows(mask.Pix, w, h, mask.Stride, alpha)
	blurCols(mask.Pix, w, h, mask.Stride, alpha)
	blurRows(mask.Pix, w, h, mask.Stride, alpha)
	blurCols(mask.Pix, w, h, mask.Stride, alpha)
}

// blurCols runs the exponential average along each row, left-to-right and
// back, zeroing the edge texels so the glyph fades out inside its cell.
func blurCols(pix []byte, w, h, stride int, alpha int32) {
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w]
		var z int32
		for x := 1; x < w; x++ {
			z += (alpha * ((int32(row[x]) << blurZPrec) - z)) >> blurAPrec
			row[x] = byte(z >> blurZPrec)
		}
		row[w-1] = 0
		z = 0
		for x := w - 2; x >= 0; x-- {
			z += (alpha * ((int32(row[x]) << blurZPrec) - z)) >> blurAPrec
			row[x] = byte(z >> blurZPrec)
		}
		row[0] = 0
	}
}

// blurRows is blurCols along each column.
func blurRows(pix []byte, w, h, stride int, alpha int32) {
	for x := 0; x < w; x++ {
		col := pix[x:]
		var z int32
		for y := stride; y < h*stride; y += stride {
			z += (alpha * ((int32(col[y]) << blurZPrec) - z)) >> blurAPrec
			col[y] = byte(z >> blurZPrec)
		}
		col[(h-1)*stride] = 0
		z = 0
		for y := (h - 2) * stride; y >= 0; y -= stride {
			z += (alpha * ((int32(col[y]) << blurZPrec) - z)) >> blurAPrec
			col[y] = byte(z >> blurZPrec)
		}
		col[0] = 0
	}
}
