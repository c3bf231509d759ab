package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/refix/internal/ui/pretty"
	"github.com/yaklabco/refix/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesTargeted:       10,
		FilesModified:       3,
		FixesTotal:          15,
		FixesApplied:        12,
		FixesAlreadyApplied: 1,
		FixesFailed:         2,
		FailuresByReason:    map[string]int{"snippet-not-found": 2},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files targeted:")
	assert.Contains(t, result, "10")
	assert.Contains(t, result, "Files modified:")
	assert.Contains(t, result, "Total fixes:")
	assert.Contains(t, result, "15")
	assert.Contains(t, result, "Applied:")
	assert.Contains(t, result, "12")
	assert.Contains(t, result, "Already applied:")
	assert.Contains(t, result, "Failed:")
	assert.Contains(t, result, "snippet-not-found: 2")
	assert.Contains(t, result, "Some fixes could not be applied")
}

func TestFormatSummary_AllApplied(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesTargeted: 2,
		FilesModified: 2,
		FixesTotal:    4,
		FixesApplied:  4,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "All fixes applied")
	assert.NotContains(t, result, "Failed:")
}

func TestFormatSummary_Empty(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{})
	assert.Contains(t, result, "Nothing to do")
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name     string
		stats    runner.Stats
		contains []string
	}{
		{
			name:     "no fixes",
			stats:    runner.Stats{},
			contains: []string{"No fixes to apply"},
		},
		{
			name: "mixed outcomes",
			stats: runner.Stats{
				FilesTargeted:       3,
				FixesTotal:          7,
				FixesApplied:        4,
				FixesAlreadyApplied: 1,
				FixesFailed:         2,
			},
			contains: []string{"4 applied", "1 already applied", "2 failed", "in 3 files"},
		},
		{
			name: "single file",
			stats: runner.Stats{
				FilesTargeted: 1,
				FixesTotal:    1,
				FixesApplied:  1,
			},
			contains: []string{"1 applied", "in 1 file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := styles.FormatSummaryOneLine(tt.stats)
			for _, want := range tt.contains {
				assert.Contains(t, result, want)
			}
		})
	}
}

func TestFormatFixOutcome(t *testing.T) {
	styles := pretty.NewStyles(false)

	entry := newFixEntry("fix-1", true, "applied", "windowed-exact", 0)
	out := styles.FormatFixOutcome(entry)
	assert.Contains(t, out, "fix-1")
	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "(windowed-exact)")

	fuzzy := newFixEntry("fix-2", true, "applied", "fuzzy", 0.83)
	out = styles.FormatFixOutcome(fuzzy)
	assert.Contains(t, out, "(fuzzy 0.83)")

	failed := newFixEntry("fix-3", false, "snippet-not-found", "", 0)
	failed.Message = "could not find original snippet"
	out = styles.FormatFixOutcome(failed)
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "could not find original snippet")
}

func TestFormatStatus(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "applied", styles.FormatStatus(true, "applied"))
	assert.Equal(t, "already applied", styles.FormatStatus(true, "already-applied"))
	assert.Equal(t, "failed", styles.FormatStatus(false, "snippet-not-found"))
}
