package reporter

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/refix/internal/ui/pretty"
	"github.com/yaklabco/refix/pkg/analysis"
)

// Table layout constants for summary output.
const (
	tableWidth        = 90 // Width of table separators.
	fileColWidth      = 52 // Width of the file path column.
	numColWidth       = 7  // Width of numeric columns.
	skipColWidth      = 8  // Width of the already-applied column.
	maxFilePathLength = 50 // Maximum characters for file path before truncation.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if report.Totals.Fixes == 0 {
		fmt.Fprintln(r.out, r.styles.Success.Render("No fixes to apply"))
		return nil
	}

	r.renderFileTable(report.ByFile)
	if len(report.Totals.ByReason) > 0 {
		fmt.Fprintln(r.out)
		r.renderReasonBreakdown(report.Totals.ByReason)
	}

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)
	return nil
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	// Header - pad first, then style
	fmt.Fprintf(r.out, "%s %s %s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Fixes", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Applied", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Skipped", skipColWidth)),
		r.styles.TableHeader.Render(padLeft("Failed", numColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for i := range files {
		file := &files[i]

		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		// Pad first, then style
		paddedPath := padRight(path, fileColWidth)
		var styledPath string
		switch {
		case file.Failed > 0:
			styledPath = r.styles.TableErrorRow.Render(paddedPath)
		case file.AlreadyApplied > 0:
			styledPath = r.styles.TableWarnRow.Render(paddedPath)
		default:
			styledPath = paddedPath
		}

		fmt.Fprintf(r.out, "%s %s %s %s %s\n",
			styledPath,
			padLeft(strconv.Itoa(file.Fixes), numColWidth),
			padLeft(strconv.Itoa(file.Applied), numColWidth),
			padLeft(strconv.Itoa(file.AlreadyApplied), skipColWidth),
			padLeft(strconv.Itoa(file.Failed), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderReasonBreakdown(byReason map[string]int) {
	fmt.Fprintln(r.out, r.styles.Bold.Render("Failures"))

	reasons := make([]string, 0, len(byReason))
	for reason := range byReason {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)

	for _, reason := range reasons {
		fmt.Fprintf(r.out, "  %s %s\n",
			r.styles.Failure.Render(padLeft(strconv.Itoa(byReason[reason]), 4)),
			reason,
		)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	var parts []string

	fixWord := "fixes"
	if totals.Fixes == 1 {
		fixWord = "fix"
	}

	var outcomeParts []string
	if totals.Applied > 0 {
		outcomeParts = append(outcomeParts, r.styles.Success.Render(fmt.Sprintf("%d applied", totals.Applied)))
	}
	if totals.AlreadyApplied > 0 {
		outcomeParts = append(outcomeParts, r.styles.Dim.Render(fmt.Sprintf("%d already applied", totals.AlreadyApplied)))
	}
	if totals.Failed > 0 {
		outcomeParts = append(outcomeParts, r.styles.Error.Render(fmt.Sprintf("%d failed", totals.Failed)))
	}

	if len(outcomeParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", totals.Fixes, fixWord, strings.Join(outcomeParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", totals.Fixes, fixWord))
	}

	fileWord := "files"
	if totals.Files == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("in %d %s", totals.Files, fileWord))

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+strings.Join(parts, " "))
}
