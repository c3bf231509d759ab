package match_test

import (
	"strings"

	"github.com/yaklabco/refix/pkg/match"
)

// textSource adapts a plain string to match.Source for tests.
type textSource struct {
	text  string
	lines []string
}

func src(text string) *textSource {
	return &textSource{text: text, lines: strings.Split(text, "\n")}
}

// srcLines builds a source from individual lines.
func srcLines(lines ...string) *textSource {
	return src(strings.Join(lines, "\n"))
}

func (s *textSource) Text() string      { return s.text }
func (s *textSource) LineCount() int    { return len(s.lines) }
func (s *textSource) Line(i int) string { return s.lines[i] }

var _ match.Source = (*textSource)(nil)

// repeatLines produces n distinct filler lines prefixed with tag.
func repeatLines(tag string, n int) []string {
	lines := make([]string, n)
	for i := range n {
		lines[i] = tag
	}
	return lines
}
