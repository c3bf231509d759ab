package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/refix/pkg/apply"
	"github.com/yaklabco/refix/pkg/edit"
	"github.com/yaklabco/refix/pkg/runner"
)

func sampleResult() *runner.Result {
	result := &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:     "b.go",
				Language: "go",
				Written:  true,
				Diff:     edit.Generate("b.go", "old\n", "new\n"),
				Results: []apply.Result{
					{FixID: "f1", Path: "b.go", Applied: true, Reason: apply.ReasonApplied, Strategy: "windowed-exact"},
					{FixID: "f2", Path: "b.go", Applied: true, Reason: apply.ReasonAlreadyApplied},
				},
			},
			{
				Path:     "a.go",
				Language: "go",
				Results: []apply.Result{
					{FixID: "f3", Path: "a.go", Reason: apply.ReasonSnippetNotFound, Message: "could not find original snippet"},
				},
			},
		},
	}
	result.Stats = runner.Stats{
		FilesTargeted:       2,
		FilesModified:       1,
		FixesTotal:          3,
		FixesApplied:        1,
		FixesAlreadyApplied: 1,
		FixesFailed:         1,
		FailuresByReason:    map[string]int{string(apply.ReasonSnippetNotFound): 1},
		MatchesByStrategy:   map[string]int{"windowed-exact": 1},
	}
	return result
}

func TestAnalyze_NilResult(t *testing.T) {
	t.Parallel()

	report := Analyze(nil, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, ReportVersion, report.Version)
	assert.Equal(t, 0, report.Totals.Fixes)
	assert.Empty(t, report.Fixes)
}

func TestAnalyze_EmptyResult(t *testing.T) {
	t.Parallel()

	report := Analyze(&runner.Result{Stats: runner.Stats{}}, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, 0, report.Totals.Fixes)
	assert.Empty(t, report.Fixes)
	assert.Empty(t, report.ByFile)
	assert.False(t, report.Totals.HasFailures())
}

func TestAnalyze_CountsTotals(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	assert.Equal(t, 2, report.Totals.Files)
	assert.Equal(t, 1, report.Totals.FilesModified)
	assert.Equal(t, 3, report.Totals.Fixes)
	assert.Equal(t, 1, report.Totals.Applied)
	assert.Equal(t, 1, report.Totals.AlreadyApplied)
	assert.Equal(t, 1, report.Totals.Failed)
	assert.Equal(t, 1, report.Totals.ByReason[string(apply.ReasonSnippetNotFound)])
	assert.Equal(t, 1, report.Totals.ByStrategy["windowed-exact"])
	assert.True(t, report.Totals.HasFailures())
}

func TestAnalyze_FixEntries(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	require.Len(t, report.Fixes, 3)
	assert.Equal(t, "f1", report.Fixes[0].FixID)
	assert.Equal(t, "windowed-exact", report.Fixes[0].Strategy)
	assert.Equal(t, string(apply.ReasonAlreadyApplied), report.Fixes[1].Reason)
	assert.False(t, report.Fixes[2].Applied)
}

func TestAnalyze_ByFileSortedAlpha(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "a.go", report.ByFile[0].Path)
	assert.Equal(t, "b.go", report.ByFile[1].Path)

	b := report.ByFile[1]
	assert.Equal(t, 2, b.Fixes)
	assert.Equal(t, 1, b.Applied)
	assert.Equal(t, 1, b.AlreadyApplied)
	assert.True(t, b.Written)
}

func TestAnalyze_SortByFailedDesc(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.SortBy = SortByFailed
	opts.SortDesc = true

	report := Analyze(sampleResult(), opts)

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "a.go", report.ByFile[0].Path, "file with the failure sorts first")
}

func TestAnalyze_IncludeDiffs(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.IncludeDiffs = true

	report := Analyze(sampleResult(), opts)

	require.Len(t, report.ByFile, 2)
	assert.Empty(t, report.ByFile[0].DiffText)
	assert.Contains(t, report.ByFile[1].DiffText, "-old")
	assert.Contains(t, report.ByFile[1].DiffText, "+new")
}

func TestAnalyze_ExcludeViews(t *testing.T) {
	t.Parallel()

	opts := Options{SortBy: SortByAlpha}
	report := Analyze(sampleResult(), opts)

	assert.Empty(t, report.Fixes)
	assert.Empty(t, report.ByFile)
	assert.Equal(t, 3, report.Totals.Fixes, "totals survive view exclusion")
}

func TestAnalyze_DryRunFlag(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.DryRun = true

	report := Analyze(sampleResult(), opts)
	assert.True(t, report.DryRun)
}

func TestSortFieldIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, SortByAlpha.IsValid())
	assert.True(t, SortByFailed.IsValid())
	assert.True(t, SortByFixes.IsValid())
	assert.False(t, SortField("bogus").IsValid())
}
