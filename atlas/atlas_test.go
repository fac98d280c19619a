package atlas

import (
	"image"
	"testing"
)

func testMask(w, h int, value byte) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = value
	}
	return m
}

func TestNew(t *testing.T) {
	a, err := New(256, 128)
	if err != nil {
		t.Fatalf("New(256, 128) failed: %v", err)
	}
	if a.Width() != 256 || a.Height() != 128 {
		t.Errorf("size = %dx%d, want 256x128", a.Width(), a.Height())
	}
	if len(a.Pixels()) != 256*128 {
		t.Errorf("len(Pixels) = %d, want %d", len(a.Pixels()), 256*128)
	}
}

func TestNew_InvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"width too small", 32, 256},
		{"height too small", 256, 32},
		{"width too large", 16384, 256},
		{"height too large", 256, 16384},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h); err == nil {
				t.Errorf("New(%d, %d) succeeded, want SizeError", tt.w, tt.h)
			}
		})
	}
}

func TestPlace(t *testing.T) {
	a, _ := New(64, 64)
	mask := testMask(8, 8, 0xff)

	region, ok := a.Place(mask)
	if !ok {
		t.Fatal("Place failed on an empty atlas")
	}
	if region.Dx() != 8 || region.Dy() != 8 {
		t.Errorf("region = %v, want 8x8", region)
	}

	// The mask pixels must land in the region.
	img := a.Image()
	if got := img.AlphaAt(region.Min.X, region.Min.Y).A; got != 0xff {
		t.Errorf("pixel at region min = %d, want 255", got)
	}
	if got := img.AlphaAt(region.Max.X-1, region.Max.Y-1).A; got != 0xff {
		t.Errorf("pixel at region max = %d, want 255", got)
	}
}

func TestPlace_TranslatedMask(t *testing.T) {
	a, _ := New(64, 64)

	// Masks arrive with their Rect positioned relative to the glyph
	// origin; only the extent matters for placement.
	mask := testMask(8, 8, 0x80)
	mask.Rect = mask.Rect.Add(image.Pt(-3, -10))

	region, ok := a.Place(mask)
	if !ok {
		t.Fatal("Place failed")
	}
	if got := a.Image().AlphaAt(region.Min.X, region.Min.Y).A; got != 0x80 {
		t.Errorf("pixel = %d, want 128", got)
	}
}

func TestPlace_Full(t *testing.T) {
	a, _ := New(64, 64)
	mask := testMask(40, 40, 0xff)

	if _, ok := a.Place(mask); !ok {
		t.Fatal("first Place failed")
	}
	if _, ok := a.Place(mask); ok {
		t.Error("second 40x40 Place succeeded in a 64x64 atlas")
	}
}

func TestDirtyTracking(t *testing.T) {
	a, _ := New(64, 64)

	if _, ok := a.TakeDirty(); ok {
		t.Error("new atlas reports a dirty region")
	}

	r1, _ := a.Place(testMask(8, 8, 0xff))
	r2, _ := a.Place(testMask(8, 8, 0xff))

	dirty, ok := a.TakeDirty()
	if !ok {
		t.Fatal("no dirty region after Place")
	}
	if !r1.In(dirty) || !r2.In(dirty) {
		t.Errorf("dirty %v does not cover %v and %v", dirty, r1, r2)
	}

	// TakeDirty clears.
	if _, ok := a.TakeDirty(); ok {
		t.Error("dirty region survived TakeDirty")
	}
}

func TestExpand(t *testing.T) {
	a, _ := New(64, 64)
	region, _ := a.Place(testMask(8, 8, 0xff))
	a.TakeDirty()

	if err := a.Expand(128, 128); err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if a.Width() != 128 || a.Height() != 128 {
		t.Errorf("size = %dx%d, want 128x128", a.Width(), a.Height())
	}

	// Placed pixels keep their coordinates.
	if got := a.Image().AlphaAt(region.Min.X, region.Min.Y).A; got != 0xff {
		t.Errorf("pixel lost after Expand: %d, want 255", got)
	}

	// The whole old area is dirty for re-upload.
	dirty, ok := a.TakeDirty()
	if !ok {
		t.Fatal("no dirty region after Expand")
	}
	if !image.Rect(0, 0, 64, 64).In(dirty) {
		t.Errorf("dirty %v does not cover the old atlas area", dirty)
	}
}

func TestExpand_CannotShrink(t *testing.T) {
	a, _ := New(128, 128)
	if err := a.Expand(64, 64); err == nil {
		t.Error("Expand(64, 64) on a 128x128 atlas succeeded")
	}
}

func TestReset(t *testing.T) {
	a, _ := New(64, 64)
	region, _ := a.Place(testMask(8, 8, 0xff))

	if err := a.Reset(128, 128); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if a.Width() != 128 || a.Height() != 128 {
		t.Errorf("size = %dx%d, want 128x128", a.Width(), a.Height())
	}
	if got := a.Image().AlphaAt(region.Min.X, region.Min.Y).A; got != 0 {
		t.Errorf("pixel survived Reset: %d, want 0", got)
	}
	if _, ok := a.TakeDirty(); ok {
		t.Error("dirty region survived Reset")
	}

	// The full area is reusable.
	if _, ok := a.Place(testMask(100, 100, 0xff)); !ok {
		t.Error("Place(100x100) failed after Reset to 128x128")
	}
}

func TestUtilization(t *testing.T) {
	a, _ := New(64, 64)
	if u := a.Utilization(); u != 0 {
		t.Errorf("empty atlas Utilization = %f, want 0", u)
	}
	a.Place(testMask(32, 32, 0xff))
	if u := a.Utilization(); u != 0.25 {
		t.Errorf("Utilization = %f, want 0.25", u)
	}
}
