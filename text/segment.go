package text

import "golang.org/x/text/unicode/bidi"

// segment is a maximal single-direction run of text.
type segment struct {
	start int // rune index, inclusive
	end   int // rune index, exclusive
	dir   Direction
}

// segmentText splits s into directional runs ordered visually left to
// right, so shaping can walk them with a single advancing pen. Pure LTR
// text yields one segment covering the whole string.
func segmentText(s string, runeCount int) []segment {
	if runeCount == 0 {
		return nil
	}

	whole := []segment{{start: 0, end: runeCount, dir: DirectionLTR}}

	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return whole
	}

	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	segs := make([]segment, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)

		// run.Pos() returns rune indices, end inclusive.
		start, end := run.Pos()
		if start > end || end >= runeCount {
			return whole
		}

		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		segs = append(segs, segment{start: start, end: end + 1, dir: dir})
	}

	return segs
}
