package match

import "strings"

// FindAllExact returns every literal occurrence of snippet in text, in
// document order. The search advances one character past each found
// index, so overlapping occurrences are each reported. Downstream
// tolerance filtering depends on seeing all of them.
func FindAllExact(text, snippet string) []Candidate {
	if snippet == "" {
		return nil
	}
	var candidates []Candidate
	from := 0
	for {
		i := strings.Index(text[from:], snippet)
		if i < 0 {
			break
		}
		abs := from + i
		candidates = append(candidates, Candidate{
			Range: BuildRange(text, abs, snippet),
			Text:  snippet,
		})
		from = abs + 1
	}
	return candidates
}

// WindowedExact finds the first window of whole lines within Radius lines
// of the hint whose normalized text equals the normalized snippet. This is
// the highest-confidence strategy and runs first.
type WindowedExact struct {
	// Radius is the number of lines searched either side of the hint.
	Radius int
}

// Name implements Strategy.
func (s WindowedExact) Name() string { return "windowed-exact" }

// Find implements Strategy. Requires a hint; returns nil without one.
func (s WindowedExact) Find(src Source, snippet string, hint *Hint) *Candidate {
	if hint == nil || snippet == "" {
		return nil
	}
	normSnippet := Normalize(snippet)
	snippetLines := len(strings.Split(normSnippet, "\n"))

	lineCount := src.LineCount()
	if lineCount == 0 || snippetLines > lineCount {
		return nil
	}

	first := clampLine(hint.StartLine-1-s.Radius, lineCount)
	last := clampLine(hint.EndLine-1+s.Radius, lineCount)

	for start := first; start <= last && start+snippetLines <= lineCount; start++ {
		end := start + snippetLines - 1
		window := windowText(src, start, end)
		if Normalize(window) == normSnippet {
			return &Candidate{
				Range: lineWindowRange(src, start, end),
				Text:  window,
			}
		}
	}
	return nil
}

// GlobalExact searches the whole document for literal occurrences of the
// snippet. With a hint, occurrences outside a tolerance band of Tolerance
// lines are discarded and the closest-midpoint survivor wins; without a
// hint the first occurrence wins.
type GlobalExact struct {
	Tolerance int
}

// Name implements Strategy.
func (s GlobalExact) Name() string { return "global-exact" }

// Find implements Strategy.
func (s GlobalExact) Find(src Source, snippet string, hint *Hint) *Candidate {
	candidates := FindAllExact(src.Text(), snippet)
	return selectWithHint(candidates, hint, s.Tolerance)
}

// windowText joins the raw lines [start, end] of src with "\n".
func windowText(src Source, start, end int) string {
	var b strings.Builder
	for i := start; i <= end; i++ {
		if i > start {
			b.WriteByte('\n')
		}
		b.WriteString(src.Line(i))
	}
	return b.String()
}
