package fontstash

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func collectQuads(t *testing.T, s *Stash, x, y float32, text string) []Quad {
	t.Helper()
	it, err := s.TextIter(x, y, text)
	if err != nil {
		t.Fatalf("TextIter failed: %v", err)
	}
	var quads []Quad
	for {
		q, ok := it.Next()
		if !ok {
			return quads
		}
		quads = append(quads, q)
	}
}

func TestTextIterBasic(t *testing.T) {
	s, _ := newTestStash(t)
	s.SetSize(24)

	quads := collectQuads(t, s, 10, 100, "Hello")
	if len(quads) != 5 {
		t.Fatalf("got %d quads, want 5", len(quads))
	}

	for i, q := range quads {
		if q.X1 <= q.X0 || q.Y1 <= q.Y0 {
			t.Errorf("quad %d has non-positive extent: %+v", i, q)
		}
		if q.S1 <= q.S0 || q.T1 <= q.T0 {
			t.Errorf("quad %d has degenerate texture coords: %+v", i, q)
		}
		if q.S0 < 0 || q.S1 > 1 || q.T0 < 0 || q.T1 > 1 {
			t.Errorf("quad %d texture coords outside [0, 1]: %+v", i, q)
		}
		if i > 0 && q.X0 <= quads[i-1].X0 {
			t.Errorf("quad %d does not advance past quad %d", i, i-1)
		}
	}

	// Capital H at 24px sits above the baseline at y=100; its cell may
	// reach a few texels past it from the padding.
	if quads[0].Y1 > 104 || quads[0].Y0 > 90 {
		t.Errorf("first quad = %+v, want it above the baseline at 100", quads[0])
	}
}

func TestTextIterWhitespace(t *testing.T) {
	s, _ := newTestStash(t)

	quads := collectQuads(t, s, 0, 100, "a b")
	if len(quads) != 2 {
		t.Fatalf("got %d quads for \"a b\", want 2 (space yields none)", len(quads))
	}

	// The space still advances the pen.
	narrow := collectQuads(t, s, 0, 100, "ab")
	if quads[1].X0 <= narrow[1].X0 {
		t.Error("space did not advance the pen")
	}
}

func TestTextIterEmpty(t *testing.T) {
	s, _ := newTestStash(t)
	if quads := collectQuads(t, s, 0, 0, ""); len(quads) != 0 {
		t.Errorf("got %d quads for empty text, want 0", len(quads))
	}
}

func TestTextIterDeterministic(t *testing.T) {
	s, _ := newTestStash(t)
	s.SetSize(20)

	first := collectQuads(t, s, 10, 50, "same")
	second := collectQuads(t, s, 10, 50, "same")

	if len(first) != len(second) {
		t.Fatalf("quad counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("quad %d differs between passes: %+v vs %+v",
				i, first[i], second[i])
		}
	}

	// The second pass is served from the cache.
	if s.CacheStats().Hits == 0 {
		t.Error("second pass produced no cache hits")
	}
}

func TestTextIterZeroBottomLeft(t *testing.T) {
	sTop, _ := newTestStash(t)
	sBot, err := New(512, 512, WithZeroPosition(ZeroBottomLeft))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	id, _ := sBot.AddFont("regular", sTop.fonts[0].Data())
	sBot.SetFont(id)

	top := collectQuads(t, sTop, 10, 100, "A")
	bot := collectQuads(t, sBot, 10, 100, "A")
	if len(top) != 1 || len(bot) != 1 {
		t.Fatalf("quad counts = %d, %d, want 1 each", len(top), len(bot))
	}

	// Same glyph, mirrored vertical orientation: y-down puts Y0 above Y1
	// numerically smaller, y-up the other way around.
	if !(top[0].Y0 < top[0].Y1) {
		t.Errorf("top-left quad not y-down: %+v", top[0])
	}
	if !(bot[0].Y0 > bot[0].Y1) {
		t.Errorf("bottom-left quad not y-up: %+v", bot[0])
	}
	if top[0].X0 != bot[0].X0 || top[0].S0 != bot[0].S0 {
		t.Error("zero position changed horizontal placement or texture coords")
	}
}

func TestTextIterAlignment(t *testing.T) {
	s, _ := newTestStash(t)
	s.SetSize(24)

	s.SetAlign(AlignLeft | AlignBaseline)
	left := collectQuads(t, s, 100, 100, "mm")

	s.SetAlign(AlignRight | AlignBaseline)
	right := collectQuads(t, s, 100, 100, "mm")

	s.SetAlign(AlignCenter | AlignBaseline)
	center := collectQuads(t, s, 100, 100, "mm")

	if left[0].X0 <= center[0].X0 || center[0].X0 <= right[0].X0 {
		t.Errorf("alignment order wrong: left %f, center %f, right %f",
			left[0].X0, center[0].X0, right[0].X0)
	}

	s.SetAlign(AlignLeft | AlignTop)
	topAligned := collectQuads(t, s, 100, 100, "m")
	if topAligned[0].Y0 < 100 {
		t.Errorf("top-aligned quad starts at %f, want >= 100", topAligned[0].Y0)
	}
}

func TestTextIterSpacing(t *testing.T) {
	s, _ := newTestStash(t)

	plain := collectQuads(t, s, 0, 100, "ab")
	s.SetSpacing(10)
	spaced := collectQuads(t, s, 0, 100, "ab")

	gapPlain := plain[1].X0 - plain[0].X0
	gapSpaced := spaced[1].X0 - spaced[0].X0
	if gapSpaced-gapPlain < 9 || gapSpaced-gapPlain > 11 {
		t.Errorf("spacing delta = %f, want ~10", gapSpaced-gapPlain)
	}
}

func TestTextIterBlur(t *testing.T) {
	s, _ := newTestStash(t)
	s.SetBlur(4)

	quads := collectQuads(t, s, 20, 100, "B")
	if len(quads) != 1 {
		t.Fatalf("got %d quads, want 1", len(quads))
	}

	s.SetBlur(0)
	sharp := collectQuads(t, s, 20, 100, "B")

	// The blurred cell is padded by the blur radius on every side.
	blurredW := quads[0].X1 - quads[0].X0
	sharpW := sharp[0].X1 - sharp[0].X0
	if blurredW < sharpW+4 {
		t.Errorf("blurred quad width %f vs sharp %f, want >= +4 padding",
			blurredW, sharpW)
	}
}

func TestQuadsSeq(t *testing.T) {
	s, _ := newTestStash(t)

	seq, err := s.Quads(10, 100, "range")
	if err != nil {
		t.Fatalf("Quads failed: %v", err)
	}
	n := 0
	for q := range seq {
		if q.X1 <= q.X0 {
			t.Errorf("quad %d has non-positive width", n)
		}
		n++
	}
	if n != 5 {
		t.Errorf("yielded %d quads, want 5", n)
	}

	// Early break must not panic and still leaves the stash usable.
	seq, _ = s.Quads(10, 100, "range")
	for range seq {
		break
	}
	if got := collectQuads(t, s, 10, 100, "ok"); len(got) != 2 {
		t.Errorf("stash unusable after early break: got %d quads", len(got))
	}
}

func TestQuadsMatchesNext(t *testing.T) {
	s, _ := newTestStash(t)
	s.SetSize(24)

	viaNext := collectQuads(t, s, 10, 100, "equal paths")

	seq, err := s.Quads(10, 100, "equal paths")
	if err != nil {
		t.Fatalf("Quads failed: %v", err)
	}
	var viaSeq []Quad
	for q := range seq {
		viaSeq = append(viaSeq, q)
	}

	if len(viaSeq) != len(viaNext) {
		t.Fatalf("quad counts differ: Next %d, Quads %d", len(viaNext), len(viaSeq))
	}
	for i := range viaNext {
		if viaNext[i] != viaSeq[i] {
			t.Errorf("quad %d differs between paths: %+v vs %+v",
				i, viaNext[i], viaSeq[i])
		}
	}
}

func TestTextIterAtlasFull(t *testing.T) {
	s, err := New(64, 64)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	id, _ := s.AddFont("regular", goregular.TTF)
	s.SetFont(id)
	s.SetSize(60)

	var reported error
	s.SetErrorHandler(func(err error) { reported = err })

	// Distinct 60px glyphs overflow a 64x64 atlas quickly; iteration must
	// finish without panicking and report the condition.
	it, _ := s.TextIter(0, 60, "ABCDEFGH")
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	if !errors.Is(reported, ErrAtlasFull) {
		t.Errorf("reported error = %v, want ErrAtlasFull", reported)
	}

	// Expanding the atlas recovers: the same text then renders in full.
	if err := s.ExpandAtlas(1024, 1024); err != nil {
		t.Fatalf("ExpandAtlas failed: %v", err)
	}
	reported = nil
	if got := collectQuads(t, s, 0, 60, "ABCDEFGH"); len(got) != 8 {
		t.Errorf("got %d quads after expanding, want 8", len(got))
	}
	if reported != nil {
		t.Errorf("error reported after expanding: %v", reported)
	}
}
