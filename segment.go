package fontstash

import (
	"golang.org/x/text/unicode/bidi"
)

// TextRun is a maximal substring with a single resolved direction, the
// unit the shaper operates on.
type TextRun struct {
	// Text is the run's substring; Start and End are its byte offsets in
	// the original string.
	Text       string
	Start, End int

	// Direction is the run's resolved bidi direction.
	Direction Direction

	// Level is the run's bidi embedding level; odd levels are
	// right-to-left.
	Level int
}

// SplitRuns splits text into direction runs using the Unicode bidi
// algorithm, in logical order. Neutral text resolves to the base
// direction. A single-direction string yields one run.
func SplitRuns(text string, base Direction) []TextRun {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	levels := bidiLevels(text, len(runes), base)

	byteOff := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		byteOff[i] = off
		off += len(string(r))
	}
	byteOff[len(runes)] = len(text)

	var runs []TextRun
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && levels[i] == levels[start] {
			continue
		}
		runs = append(runs, makeRun(text, byteOff, start, i, levels[start]))
		start = i
	}
	return runs
}

// bidiLevels computes a per-rune embedding level for text.
func bidiLevels(text string, nrunes int, base Direction) []int {
	levels := make([]int, nrunes)

	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// Run.Pos returns rune indices, end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := start; j <= end && j < nrunes; j++ {
			levels[j] = level
		}
	}
	return levels
}

func makeRun(text string, byteOff []int, startRune, endRune, level int) TextRun {
	dir := DirectionLTR
	if level%2 == 1 {
		dir = DirectionRTL
	}
	return TextRun{
		Text:      text[byteOff[startRune]:byteOff[endRune]],
		Start:     byteOff[startRune],
		End:       byteOff[endRune],
		Direction: dir,
		Level:     level,
	}
}
