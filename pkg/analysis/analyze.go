// Package analysis transforms runner results into a presentation-neutral
// report consumed by every renderer.
package analysis

import (
	"cmp"
	"slices"
	"time"

	"github.com/yaklabco/refix/pkg/apply"
	"github.com/yaklabco/refix/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through file outcomes to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
		DryRun:    opts.DryRun,
	}

	if result == nil {
		return report
	}

	report.Totals = Totals{
		Files:          result.Stats.FilesTargeted,
		FilesModified:  result.Stats.FilesModified,
		Fixes:          result.Stats.FixesTotal,
		Applied:        result.Stats.FixesApplied,
		AlreadyApplied: result.Stats.FixesAlreadyApplied,
		Failed:         result.Stats.FixesFailed,
	}
	if len(result.Stats.FailuresByReason) > 0 {
		report.Totals.ByReason = result.Stats.FailuresByReason
	}
	if len(result.Stats.MatchesByStrategy) > 0 {
		report.Totals.ByStrategy = result.Stats.MatchesByStrategy
	}

	for _, file := range result.Files {
		fa := FileAnalysis{
			Path:          file.Path,
			Language:      file.Language,
			Fixes:         len(file.Results),
			Written:       file.Written,
			BackupCreated: file.BackupCreated,
		}
		if opts.IncludeDiffs && file.Diff != nil && file.Diff.HasChanges() {
			fa.DiffText = file.Diff.String()
		}

		for _, res := range file.Results {
			switch {
			case res.Applied && res.Reason == apply.ReasonAlreadyApplied:
				fa.AlreadyApplied++
			case res.Applied:
				fa.Applied++
			default:
				fa.Failed++
			}

			if opts.IncludeFixes {
				report.Fixes = append(report.Fixes, FixEntry{
					FixID:    res.FixID,
					FilePath: res.Path,
					Applied:  res.Applied,
					Reason:   string(res.Reason),
					Message:  res.Message,
					Strategy: res.Strategy,
					Score:    res.Score,
				})
			}
		}

		if opts.IncludeByFile {
			report.ByFile = append(report.ByFile, fa)
		}
	}

	sortFileAnalysis(report.ByFile, opts.SortBy, opts.SortDesc)
	return report
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		var result int
		switch sortBy {
		case SortByFailed:
			result = cmp.Compare(left.Failed, right.Failed)
		case SortByFixes:
			result = cmp.Compare(left.Fixes, right.Fixes)
		default: // SortByAlpha, always ascending
			return cmp.Compare(left.Path, right.Path)
		}
		if result == 0 {
			return cmp.Compare(left.Path, right.Path)
		}
		if desc {
			result = -result
		}
		return result
	})
}
