package match

// First/last line agreement earns a bonus on top of the per-line score:
// the edges of a snippet are the strongest signal that a drifted window
// is still the intended region.
const fuzzyEdgeBonus = 0.15

// FuzzyNearHint scores fixed-length line windows around the hint against
// the expected snippet lines and accepts the best window clearing a
// size-dependent minimum score. It is the last resort before giving up
// and never runs without a hint.
//
// Windows are always exactly the snippet's line count: an edit that
// inserted or deleted a line inside the region will not fuzzy-match.
// Variable-length alignment would have to replace this strategy behind
// the same interface.
type FuzzyNearHint struct {
	// Radius is the number of lines searched either side of the hint.
	Radius int
}

// Name implements Strategy.
func (s FuzzyNearHint) Name() string { return "fuzzy" }

// MinScore returns the minimum acceptable score for a snippet of the
// given line count. Short snippets are statistically more likely to
// collide with unrelated code, so they need near-perfect agreement.
func MinScore(lineCount int) float64 {
	switch {
	case lineCount <= 2:
		return 0.95
	case lineCount <= 6:
		return 0.80
	case lineCount <= 25:
		return 0.70
	default:
		return 0.65
	}
}

// Find implements Strategy.
func (s FuzzyNearHint) Find(src Source, snippet string, hint *Hint) *Candidate {
	if hint == nil || snippet == "" {
		return nil
	}
	expected := normalizedLines(snippet)
	n := len(expected)

	lineCount := src.LineCount()
	if n > lineCount {
		return nil
	}

	minScore := MinScore(n)
	first := clampLine(hint.StartLine-1-s.Radius, lineCount)
	last := clampLine(hint.EndLine-1+s.Radius, lineCount)

	var best *Candidate
	var bestDist float64
	hintMid := hint.midLine()

	for start := first; start <= last && start+n <= lineCount; start++ {
		end := start + n - 1
		score := scoreWindow(src, start, expected)
		if score < minScore {
			continue
		}
		r := lineWindowRange(src, start, end)
		dist := absFloat(r.midLine() - hintMid)
		if best == nil || score > best.Score || (score == best.Score && dist < bestDist) {
			best = &Candidate{
				Range: r,
				Text:  windowText(src, start, end),
				Score: score,
			}
			bestDist = dist
		}
	}
	return best
}

// scoreWindow scores the n document lines starting at start against the
// expected normalized lines: the fraction of lines equal at the same
// index, plus an edge bonus for each of the first and last lines
// matching, clamped to [0, 1].
func scoreWindow(src Source, start int, expected []string) float64 {
	n := len(expected)
	exact := 0
	for i := range n {
		if normalizeLine(src.Line(start+i)) == expected[i] {
			exact++
		}
	}
	score := float64(exact) / float64(n)
	if normalizeLine(src.Line(start)) == expected[0] {
		score += fuzzyEdgeBonus
	}
	if normalizeLine(src.Line(start+n-1)) == expected[n-1] {
		score += fuzzyEdgeBonus
	}
	if score > 1 {
		score = 1
	}
	return score
}
