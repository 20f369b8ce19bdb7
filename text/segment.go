package text

import "golang.org/x/text/unicode/bidi"

// Segment is a contiguous run of text with a single direction.
type Segment struct {
	// Text is the run's slice of the original string.
	Text string

	// Start, End are byte offsets into the original string.
	Start, End int

	// Direction is the resolved direction of the run.
	Direction Direction

	// Level is the bidi embedding level (even = LTR, odd = RTL).
	Level int
}

// SegmentText splits text into direction runs using the Unicode bidi
// algorithm. Purely-LTR text comes back as a single segment.
func SegmentText(text string) []Segment {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	levels := bidiLevels(text, len(runes))

	byteOffsets := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		byteOffsets[i] = offset
		offset += len(string(r))
	}
	byteOffsets[len(runes)] = len(text)

	var segments []Segment
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && levels[i] == levels[start] {
			continue
		}
		dir := DirectionLTR
		if levels[start]%2 == 1 {
			dir = DirectionRTL
		}
		segments = append(segments, Segment{
			Text:      text[byteOffsets[start]:byteOffsets[i]],
			Start:     byteOffsets[start],
			End:       byteOffsets[i],
			Direction: dir,
			Level:     levels[start],
		})
		start = i
	}
	return segments
}

// paragraphDirection returns the base direction of the text, defaulting to
// LTR for neutral content.
func paragraphDirection(text string) Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return DirectionLTR
	}
	if p.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// bidiLevels computes a per-rune embedding level (0 = LTR, 1 = RTL).
func bidiLevels(text string, runeCount int) []int {
	levels := make([]int, runeCount)

	p := bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns RUNE indices (start, end inclusive)
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		startRune, endRune := run.Pos()
		runLevel := 0
		if run.Direction() == bidi.RightToLeft {
			runLevel = 1
		}
		for j := startRune; j <= endRune && j < len(levels); j++ {
			levels[j] = runLevel
		}
	}
	return levels
}
