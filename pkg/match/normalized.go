package match

import "strings"

// Normalized recovers matches that differ from the expected snippet only
// by trailing whitespace or line-ending style. It runs only after both
// exact strategies have failed.
type Normalized struct {
	// Tolerance is the hint tolerance band in lines, shared with
	// GlobalExact selection.
	Tolerance int
}

// Name implements Strategy.
func (s Normalized) Name() string { return "normalized" }

// Find implements Strategy. The normalized snippet must be a substring of
// the normalized document, otherwise the strategy fails immediately
// without the window scan.
func (s Normalized) Find(src Source, snippet string, hint *Hint) *Candidate {
	if snippet == "" {
		return nil
	}
	normSnippet := Normalize(snippet)
	if !strings.Contains(Normalize(src.Text()), normSnippet) {
		return nil
	}

	snippetLines := len(strings.Split(normSnippet, "\n"))
	lineCount := src.LineCount()
	if snippetLines > lineCount {
		return nil
	}

	var candidates []Candidate
	for start := 0; start+snippetLines <= lineCount; start++ {
		end := start + snippetLines - 1
		window := windowText(src, start, end)
		if Normalize(window) == normSnippet {
			candidates = append(candidates, Candidate{
				Range: lineWindowRange(src, start, end),
				Text:  window,
			})
		}
	}

	return selectWithHint(candidates, hint, s.Tolerance)
}
