package reporter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/refix/internal/ui/pretty"
	"github.com/yaklabco/refix/pkg/analysis"
)

// DiffRenderer formats reports as unified diffs in GitHub style.
type DiffRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewDiffRenderer creates a new diff renderer.
func NewDiffRenderer(opts Options) *DiffRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *DiffRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report == nil {
		return nil
	}

	var filesWithDiffs, additions, deletions int
	for i := range report.ByFile {
		file := &report.ByFile[i]
		if file.DiffText == "" {
			continue
		}
		filesWithDiffs++
		add, del := r.writeDiff(file.Path, file.DiffText)
		additions += add
		deletions += del
	}

	if filesWithDiffs > 0 && r.opts.ShowSummary {
		r.writeSummary(filesWithDiffs, additions, deletions)
	}
	return nil
}

// writeDiff outputs a single file's diff with formatting and returns
// its addition and deletion counts.
func (r *DiffRenderer) writeDiff(path, diffText string) (additions, deletions int) {
	displayPath := strings.TrimPrefix(path, "/")

	header := fmt.Sprintf("diff --git a/%s b/%s", displayPath, displayPath)
	fmt.Fprintln(r.out, r.styles.DiffHeader.Render(header))
	fmt.Fprintln(r.out, r.styles.DiffRemove.Render("--- a/"+displayPath))
	fmt.Fprintln(r.out, r.styles.DiffAdd.Render("+++ b/"+displayPath))

	for _, line := range strings.Split(diffText, "\n") {
		if line == "" || strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}
		switch {
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(r.out, r.styles.DiffHunk.Render(line))
		case strings.HasPrefix(line, "+"):
			additions++
			fmt.Fprintln(r.out, r.styles.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			deletions++
			fmt.Fprintln(r.out, r.styles.DiffRemove.Render(line))
		default:
			fmt.Fprintln(r.out, r.styles.DiffContext.Render(line))
		}
	}

	fmt.Fprintln(r.out) // Blank line between files
	return additions, deletions
}

// writeSummary writes a git-style change summary line at the end.
func (r *DiffRenderer) writeSummary(files, additions, deletions int) {
	var parts []string

	fileWord := "files"
	if files == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("%d %s changed", files, fileWord))

	if additions > 0 {
		insertionWord := "insertions"
		if additions == 1 {
			insertionWord = "insertion"
		}
		parts = append(parts, r.styles.DiffAdd.Render(fmt.Sprintf("%d %s(+)", additions, insertionWord)))
	}

	if deletions > 0 {
		deletionWord := "deletions"
		if deletions == 1 {
			deletionWord = "deletion"
		}
		parts = append(parts, r.styles.DiffRemove.Render(fmt.Sprintf("%d %s(-)", deletions, deletionWord)))
	}

	fmt.Fprintln(r.out, strings.Join(parts, ", "))
}
