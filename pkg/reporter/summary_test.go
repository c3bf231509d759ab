package reporter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/refix/pkg/reporter"
	"github.com/yaklabco/refix/pkg/runner"
)

func TestSummaryReport(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatSummary,
		Color:  "never",
	})
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	out := buf.String()
	assert.Contains(t, out, "Files Summary")
	assert.Contains(t, out, "main.go")
	assert.Contains(t, out, "util.go")
	assert.Contains(t, out, "Failures")
	assert.Contains(t, out, "snippet-not-found")
	assert.Contains(t, out, "Total:")
	assert.Contains(t, out, "3 fixes")
	assert.Contains(t, out, "1 failed")
}

func TestSummaryReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer: &buf,
		Format: reporter.FormatSummary,
		Color:  "never",
	})
	require.NoError(t, err)

	failed, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Equal(t, 0, failed)
	assert.Contains(t, buf.String(), "No fixes to apply")
}
