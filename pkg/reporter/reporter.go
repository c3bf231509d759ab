// Package reporter provides fix outcome and diff reporting functionality.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/refix/pkg/analysis"
	"github.com/yaklabco/refix/pkg/runner"
)

// Compile-time interface check for reporterFacade.
var _ Reporter = (*reporterFacade)(nil)

// Reporter formats and writes fix application results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of failed fixes and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// reporterFacade bridges the Reporter interface to Renderer implementations.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter by analyzing the result and rendering it.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Failed, nil
}

// newRendererFacade creates a facade wrapping a Renderer.
func newRendererFacade(renderer Renderer, opts Options, includeDiffs bool) *reporterFacade {
	return &reporterFacade{
		renderer: renderer,
		analysisOpts: analysis.Options{
			IncludeFixes:  true,
			IncludeByFile: true,
			IncludeDiffs:  includeDiffs,
			DryRun:        opts.DryRun,
			SortBy:        analysis.SortByAlpha,
		},
	}
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	// Validate and handle format
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return newRendererFacade(NewJSONRenderer(opts), opts, true), nil
	case FormatDiff:
		return newRendererFacade(NewDiffRenderer(opts), opts, true), nil
	case FormatSummary:
		return newRendererFacade(NewSummaryRenderer(opts), opts, false), nil
	case FormatText:
		return newRendererFacade(NewTextRenderer(opts), opts, false), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
