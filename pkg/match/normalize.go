package match

import "strings"

// Normalize canonicalizes text for tolerant comparison: all line ending
// styles become "\n" and trailing whitespace is stripped from every line.
// Leading whitespace and blank lines are left untouched, so indentation
// still has to agree for two texts to compare equal.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// normalizeLine strips trailing whitespace (including a stray carriage
// return) from a single raw line.
func normalizeLine(line string) string {
	return strings.TrimRight(line, " \t\r")
}

// normalizedLines returns the lines of Normalize(text).
func normalizedLines(text string) []string {
	return strings.Split(Normalize(text), "\n")
}
