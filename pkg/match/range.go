package match

import "strings"

// BuildRange converts a byte offset plus the matched text at that offset
// into a 0-based line/column range. The start position is derived from
// the line breaks in text[:offset]; the end position from the line breaks
// inside matched itself. Works for single-line and multi-line matches,
// including a match ending exactly at end of document.
func BuildRange(text string, offset int, matched string) LineRange {
	prefix := text[:offset]
	startLine := strings.Count(prefix, "\n")

	startCol := offset
	if last := strings.LastIndexByte(prefix, '\n'); last >= 0 {
		startCol = offset - last - 1
	}

	breaks := strings.Count(matched, "\n")
	endLine := startLine + breaks

	var endCol int
	if breaks == 0 {
		endCol = startCol + len(matched)
	} else {
		endCol = len(matched) - strings.LastIndexByte(matched, '\n') - 1
	}

	return LineRange{
		StartLine: startLine,
		StartCol:  startCol,
		EndLine:   endLine,
		EndCol:    endCol,
	}
}
