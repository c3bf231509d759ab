// Package match locates the region of a document that a proposed fix
// should replace. Fix anchors (line numbers and the expected original
// snippet) come from an upstream review step and are frequently stale by
// the time a fix is applied, so location is attempted with a ladder of
// strategies of decreasing confidence: windowed exact, global exact with
// a tolerance band, whitespace-normalized, and fuzzy line scoring.
package match

// LineRange identifies a contiguous region of a document.
// Lines and columns are 0-based; EndCol is exclusive.
type LineRange struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// midLine returns the vertical midpoint of the range, used to rank
// candidates by proximity to a hint.
func (r LineRange) midLine() float64 {
	return (float64(r.StartLine) + float64(r.EndLine)) / 2
}

// Hint is the declared (and possibly stale) 1-based line range of a fix.
// It biases the search toward the expected region but is never trusted
// as ground truth.
type Hint struct {
	StartLine int
	EndLine   int
}

// midLine returns the hint midpoint in 0-based line coordinates.
func (h Hint) midLine() float64 {
	return (float64(h.StartLine-1) + float64(h.EndLine-1)) / 2
}

// Candidate is a located region that might correspond to a fix's anchor.
type Candidate struct {
	// Range is the located region in 0-based line/column coordinates.
	Range LineRange

	// Text is the raw document text covered by Range.
	Text string

	// Score is the fuzzy similarity score in [0, 1].
	// Zero for strategies that match exactly.
	Score float64
}

// Source is a read-only view of a document's text.
// Implemented by document.Document.
type Source interface {
	// Text returns the full document text.
	Text() string

	// LineCount returns the number of lines in the document.
	LineCount() int

	// Line returns the raw text of the 0-based line i, without the
	// trailing line break.
	Line(i int) string
}

// sourceLines collects all raw lines of src.
func sourceLines(src Source) []string {
	n := src.LineCount()
	lines := make([]string, n)
	for i := range n {
		lines[i] = src.Line(i)
	}
	return lines
}

// clampLine clamps a 0-based line index to [0, lineCount-1].
func clampLine(i, lineCount int) int {
	if i < 0 {
		return 0
	}
	if i > lineCount-1 {
		return lineCount - 1
	}
	return i
}

// lineWindowRange builds the range covering whole lines
// [startLine, endLine] of src.
func lineWindowRange(src Source, startLine, endLine int) LineRange {
	return LineRange{
		StartLine: startLine,
		StartCol:  0,
		EndLine:   endLine,
		EndCol:    len(src.Line(endLine)),
	}
}

// closestToHint picks the candidate whose midpoint is numerically closest
// to the hint's midpoint. On equal distance the earlier candidate wins,
// and candidate order is document order, so selection is stable.
func closestToHint(candidates []Candidate, hint Hint) *Candidate {
	if len(candidates) == 0 {
		return nil
	}
	hintMid := hint.midLine()
	best := 0
	bestDist := absFloat(candidates[0].Range.midLine() - hintMid)
	for i := 1; i < len(candidates); i++ {
		d := absFloat(candidates[i].Range.midLine() - hintMid)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	c := candidates[best]
	return &c
}

// withinTolerance reports whether the candidate overlaps the tolerance
// band of tolerance lines around the hint.
func withinTolerance(r LineRange, hint Hint, tolerance int) bool {
	return hint.StartLine-1-tolerance <= r.EndLine && r.StartLine <= hint.EndLine-1+tolerance
}

// selectWithHint applies the tolerance-band-and-closest-midpoint rule.
// Without a hint the first candidate in document order wins. With a hint,
// candidates outside the tolerance band are discarded; if none survive
// the result is nil rather than the nearest out-of-tolerance candidate.
func selectWithHint(candidates []Candidate, hint *Hint, tolerance int) *Candidate {
	if len(candidates) == 0 {
		return nil
	}
	if hint == nil {
		c := candidates[0]
		return &c
	}
	surviving := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if withinTolerance(c.Range, *hint, tolerance) {
			surviving = append(surviving, c)
		}
	}
	return closestToHint(surviving, *hint)
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
