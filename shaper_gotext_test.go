package fontstash

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func shaperTestFont(t *testing.T) *Font {
	t.Helper()
	s, err := New(512, 512)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	id, err := s.AddFont("regular", goregular.TTF)
	if err != nil {
		t.Fatalf("AddFont failed: %v", err)
	}
	f, _ := s.Font(id)
	return f
}

func TestGoTextShaperBasicLatin(t *testing.T) {
	f := shaperTestFont(t)
	shaper := NewGoTextShaper()

	glyphs := shaper.Shape(f, 16, DirectionLTR, "Hello")
	if len(glyphs) != 5 {
		t.Fatalf("Shape(\"Hello\") = %d glyphs, want 5", len(glyphs))
	}

	var prevX float64
	for i, g := range glyphs {
		if g.GID == 0 {
			t.Errorf("glyph %d resolved to notdef", i)
		}
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d: XAdvance = %f, want > 0", i, g.XAdvance)
		}
		if i > 0 && g.X <= prevX {
			t.Errorf("glyph %d: X = %f, want > previous %f", i, g.X, prevX)
		}
		prevX = g.X
	}
}

func TestGoTextShaperClusters(t *testing.T) {
	f := shaperTestFont(t)
	shaper := NewGoTextShaper()

	// Multi-byte input: clusters are byte offsets into the run text.
	text := "héllo"
	glyphs := shaper.Shape(f, 16, DirectionLTR, text)
	if len(glyphs) == 0 {
		t.Fatal("no glyphs")
	}
	for i, g := range glyphs {
		if g.Cluster < 0 || g.Cluster >= len(text) {
			t.Errorf("glyph %d cluster %d out of range [0, %d)", i, g.Cluster, len(text))
		}
	}
	if glyphs[0].Cluster != 0 {
		t.Errorf("first cluster = %d, want 0", glyphs[0].Cluster)
	}
}

func TestGoTextShaperPairWidth(t *testing.T) {
	f := shaperTestFont(t)
	shaper := NewGoTextShaper()

	a := shaper.Shape(f, 16, DirectionLTR, "A")
	v := shaper.Shape(f, 16, DirectionLTR, "V")
	av := shaper.Shape(f, 16, DirectionLTR, "AV")
	if len(a) != 1 || len(v) != 1 || len(av) != 2 {
		t.Fatalf("glyph counts = %d, %d, %d", len(a), len(v), len(av))
	}

	// Go Regular carries pair kerning only in a legacy kern table, which
	// shaping does not consult, so the pair width equals the isolated
	// advances. GPOS positioning may contract it but never expand it.
	separate := a[0].XAdvance + v[0].XAdvance
	shaped := av[0].XAdvance + av[1].XAdvance
	if shaped > separate+1e-6 {
		t.Errorf("shaped \"AV\" width %f, want <= %f", shaped, separate)
	}
	if av[0].XAdvance <= 0 || av[1].XAdvance <= 0 {
		t.Errorf("pair advances = %f, %f, want > 0", av[0].XAdvance, av[1].XAdvance)
	}
}

func TestGoTextShaperEmpty(t *testing.T) {
	f := shaperTestFont(t)
	shaper := NewGoTextShaper()

	if got := shaper.Shape(f, 16, DirectionLTR, ""); got != nil {
		t.Errorf("Shape(\"\") = %v, want nil", got)
	}
	if got := shaper.Shape(nil, 16, DirectionLTR, "x"); got != nil {
		t.Errorf("Shape(nil font) = %v, want nil", got)
	}
}

func TestGoTextShaperCachesFonts(t *testing.T) {
	f := shaperTestFont(t)
	shaper := NewGoTextShaper()

	shaper.Shape(f, 16, DirectionLTR, "one")
	shaper.Shape(f, 24, DirectionLTR, "two")
	if len(shaper.fontCache) != 1 {
		t.Errorf("fontCache has %d entries, want 1", len(shaper.fontCache))
	}

	shaper.ClearCache()
	if len(shaper.fontCache) != 0 {
		t.Errorf("fontCache has %d entries after ClearCache, want 0", len(shaper.fontCache))
	}
}

func TestShapeText(t *testing.T) {
	s, _ := newTestStash(t)
	s.SetSize(24)

	quads, err := s.ShapeText(10, 100, "Shaped text")
	if err != nil {
		t.Fatalf("ShapeText failed: %v", err)
	}
	// 10 visible glyphs; the space yields no quad.
	if len(quads) != 10 {
		t.Fatalf("got %d quads, want 10", len(quads))
	}
	for i, q := range quads {
		if q.X1 <= q.X0 {
			t.Errorf("quad %d has non-positive width", i)
		}
		if i > 0 && q.X0 <= quads[i-1].X0 {
			t.Errorf("quad %d does not advance", i)
		}
	}
}

func TestShapeTextEmpty(t *testing.T) {
	s, _ := newTestStash(t)
	quads, err := s.ShapeText(0, 0, "")
	if err != nil || quads != nil {
		t.Errorf("ShapeText(\"\") = %v, %v, want nil, nil", quads, err)
	}
}

func TestShapeTextNoFont(t *testing.T) {
	s, _ := New(512, 512)
	if _, err := s.ShapeText(0, 0, "x"); err == nil {
		t.Error("ShapeText without a font succeeded")
	}
}

func TestShapeTextAlignment(t *testing.T) {
	s, _ := newTestStash(t)
	s.SetSize(24)

	s.SetAlign(AlignLeft | AlignBaseline)
	left, _ := s.ShapeText(100, 100, "mm")

	s.SetAlign(AlignRight | AlignBaseline)
	right, _ := s.ShapeText(100, 100, "mm")

	if len(left) != 2 || len(right) != 2 {
		t.Fatalf("quad counts = %d, %d, want 2 each", len(left), len(right))
	}
	if right[0].X0 >= left[0].X0 {
		t.Errorf("right-aligned X0 = %f, want < left-aligned %f",
			right[0].X0, left[0].X0)
	}
}
