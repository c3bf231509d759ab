package edit

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around each change.
const contextLines = 3

// Diff is a unified diff between the original and patched content of one
// file, produced for dry-run reporting.
type Diff struct {
	// Path is the file path used in the diff headers.
	Path string

	// Hunks are the changed regions with surrounding context.
	Hunks []Hunk

	// Additions and Deletions count changed lines across all hunks.
	Additions int
	Deletions int
}

// Hunk is one contiguous region of a unified diff.
type Hunk struct {
	// OriginalStart and OriginalCount address the hunk in the original
	// content, 1-based.
	OriginalStart int
	OriginalCount int

	// ModifiedStart and ModifiedCount address the hunk in the patched
	// content, 1-based.
	ModifiedStart int
	ModifiedCount int

	// Lines are the hunk's lines in order.
	Lines []Line
}

// LineKind classifies a diff line.
type LineKind int

const (
	// LineContext is an unchanged line.
	LineContext LineKind = iota

	// LineAdd is a line present only in the patched content.
	LineAdd

	// LineRemove is a line present only in the original content.
	LineRemove
)

// Line is a single line of a hunk, without the +/-/space prefix.
type Line struct {
	Kind    LineKind
	Content string
}

// Generate computes a unified diff between original and modified content.
// Returns nil when the contents are identical.
func Generate(path, original, modified string) *Diff {
	if original == modified {
		return nil
	}

	origLines := splitLines(original)
	modLines := splitLines(modified)

	ops := diffOps(origLines, modLines)
	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, h := range hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case LineAdd:
				d.Additions++
			case LineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// HasChanges reports whether the diff contains any hunks.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String renders the diff in unified format without the git header.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
		for _, l := range h.Lines {
			switch l.Kind {
			case LineContext:
				fmt.Fprintf(&b, " %s\n", l.Content)
			case LineAdd:
				fmt.Fprintf(&b, "+%s\n", l.Content)
			case LineRemove:
				fmt.Fprintf(&b, "-%s\n", l.Content)
			}
		}
	}
	return b.String()
}

// FullString renders the diff including the git header.
func (d *Diff) FullString() string {
	if !d.HasChanges() {
		return ""
	}
	return d.GitHeader() + "\n" + d.String()
}

// splitLines splits content into lines, dropping the empty tail produced
// by a trailing newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// op is a single line-level diff operation.
type op struct {
	kind    LineKind
	content string
	origIdx int // 0-based original line, -1 for adds
	modIdx  int // 0-based modified line, -1 for removes
}

// diffOps computes line operations via a longest-common-subsequence walk.
func diffOps(orig, mod []string) []op {
	// LCS lengths table.
	m, n := len(orig), len(mod)
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if orig[i] == mod[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else {
				table[i][j] = max(table[i+1][j], table[i][j+1])
			}
		}
	}

	var ops []op
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case orig[i] == mod[j]:
			ops = append(ops, op{kind: LineContext, content: orig[i], origIdx: i, modIdx: j})
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			ops = append(ops, op{kind: LineRemove, content: orig[i], origIdx: i, modIdx: -1})
			i++
		default:
			ops = append(ops, op{kind: LineAdd, content: mod[j], origIdx: -1, modIdx: j})
			j++
		}
	}
	for ; i < m; i++ {
		ops = append(ops, op{kind: LineRemove, content: orig[i], origIdx: i, modIdx: -1})
	}
	for ; j < n; j++ {
		ops = append(ops, op{kind: LineAdd, content: mod[j], origIdx: -1, modIdx: j})
	}
	return ops
}

// groupHunks groups operations into hunks, keeping contextLines of
// unchanged lines around each change and merging changes whose context
// would overlap.
func groupHunks(ops []op) []Hunk {
	// Indices of changed ops.
	var changes []int
	for i, o := range ops {
		if o.kind != LineContext {
			changes = append(changes, i)
		}
	}
	if len(changes) == 0 {
		return nil
	}

	var hunks []Hunk
	start := changes[0]
	prev := changes[0]

	flush := func(firstChange, lastChange int) {
		lo := max(0, firstChange-contextLines)
		hi := min(len(ops)-1, lastChange+contextLines)
		hunks = append(hunks, buildHunk(ops[lo:hi+1]))
	}

	for _, c := range changes[1:] {
		if c-prev > contextLines*2 {
			flush(start, prev)
			start = c
		}
		prev = c
	}
	flush(start, prev)
	return hunks
}

// buildHunk assembles a Hunk from a slice of consecutive operations.
func buildHunk(ops []op) Hunk {
	h := Hunk{Lines: make([]Line, 0, len(ops))}

	origStart, modStart := -1, -1
	for _, o := range ops {
		h.Lines = append(h.Lines, Line{Kind: o.kind, Content: o.content})
		if o.origIdx >= 0 {
			if origStart < 0 {
				origStart = o.origIdx
			}
			h.OriginalCount++
		}
		if o.modIdx >= 0 {
			if modStart < 0 {
				modStart = o.modIdx
			}
			h.ModifiedCount++
		}
	}

	// Pure insertions or deletions still need a stable anchor line.
	if origStart < 0 {
		origStart = 0
	}
	if modStart < 0 {
		modStart = 0
	}
	h.OriginalStart = origStart + 1
	h.ModifiedStart = modStart + 1
	return h
}
