package match

import "strings"

// IsAlreadyApplied reports whether the replacement text is already
// present in the document, so that re-running a fix is an idempotent
// no-op instead of an error.
//
// An empty replacement never counts as applied. Literal containment
// anywhere in the document counts. Otherwise containment is checked on
// normalized text: across the whole document when no hint is available,
// or only within radius lines of the hint when one is, which keeps
// unrelated identical code elsewhere in a large file from producing a
// false positive.
func IsAlreadyApplied(src Source, replacement string, hint *Hint, radius int) bool {
	if replacement == "" {
		return false
	}
	if strings.Contains(src.Text(), replacement) {
		return true
	}

	normReplacement := Normalize(replacement)
	if hint == nil {
		return strings.Contains(Normalize(src.Text()), normReplacement)
	}

	lineCount := src.LineCount()
	if lineCount == 0 {
		return false
	}
	first := clampLine(hint.StartLine-1-radius, lineCount)
	last := clampLine(hint.EndLine-1+radius, lineCount)
	window := windowText(src, first, last)
	return strings.Contains(Normalize(window), normReplacement)
}
