package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/refix/internal/ui/pretty"
	"github.com/yaklabco/refix/pkg/analysis"
	"github.com/yaklabco/refix/pkg/runner"
)

// TextRenderer formats reports as styled terminal output.
type TextRenderer struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer(opts Options) *TextRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Render implements Renderer.
func (r *TextRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report == nil || report.Totals.Fixes == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No fixes to apply."))
		}
		return nil
	}

	if report.DryRun {
		fmt.Fprintln(r.bw, r.styles.Bold.Render("Dry run, no files written."))
		fmt.Fprintln(r.bw)
	}

	if r.opts.GroupByFile {
		r.renderGrouped(report)
	} else {
		r.renderFlat(report)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(statsFromTotals(report.Totals)))
	}

	return nil
}

// renderGrouped writes fix outcomes grouped by file.
func (r *TextRenderer) renderGrouped(report *analysis.Report) {
	byPath := make(map[string][]*analysis.FixEntry, len(report.ByFile))
	for i := range report.Fixes {
		entry := &report.Fixes[i]
		byPath[entry.FilePath] = append(byPath[entry.FilePath], entry)
	}

	for i := range report.ByFile {
		file := &report.ByFile[i]
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file))
		for _, entry := range byPath[file.Path] {
			fmt.Fprint(r.bw, r.styles.FormatFixOutcome(entry))
		}
		fmt.Fprintln(r.bw)
	}
}

// renderFlat writes fix outcomes without grouping.
func (r *TextRenderer) renderFlat(report *analysis.Report) {
	for i := range report.Fixes {
		entry := &report.Fixes[i]
		fmt.Fprintf(r.bw, "%s:", r.styles.FilePath.Render(entry.FilePath))
		fmt.Fprint(r.bw, r.styles.FormatFixOutcome(entry))
	}
}

// statsFromTotals rebuilds runner stats for the shared summary formatter.
func statsFromTotals(t analysis.Totals) runner.Stats {
	return runner.Stats{
		FilesTargeted:       t.Files,
		FilesModified:       t.FilesModified,
		FixesTotal:          t.Fixes,
		FixesApplied:        t.Applied,
		FixesAlreadyApplied: t.AlreadyApplied,
		FixesFailed:         t.Failed,
		FailuresByReason:    t.ByReason,
		MatchesByStrategy:   t.ByStrategy,
	}
}
