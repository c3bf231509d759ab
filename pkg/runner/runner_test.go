package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/refix/pkg/apply"
	"github.com/yaklabco/refix/pkg/fsutil"
	"github.com/yaklabco/refix/pkg/review"
	"github.com/yaklabco/refix/pkg/runner"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func anchoredFix(id, path string, line int, replacement, snippet string) review.Fix {
	return review.Fix{
		ID:                      id,
		FilePath:                path,
		StartLine:               line,
		EndLine:                 line,
		Replacement:             replacement,
		ExpectedOriginalSnippet: &snippet,
	}
}

func optsFor(dir string) runner.Options {
	opts := runner.DefaultOptions()
	opts.WorkingDir = dir
	return opts
}

func TestRunEmptyReview(t *testing.T) {
	t.Parallel()

	result, err := runner.New(optsFor(t.TempDir())).Run(context.Background(), &review.Review{})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Equal(t, 0, result.Stats.FilesTargeted)
	assert.False(t, result.HasFailures())
}

func TestRunAppliesAcrossFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	aPath := writeFile(t, dir, "a.txt", "one\ntwo\nthree\n")
	bPath := writeFile(t, dir, "b.txt", "alpha\nbeta\n")

	rev := &review.Review{Fixes: []review.Fix{
		anchoredFix("f1", "a.txt", 2, "TWO", "two"),
		anchoredFix("f2", "b.txt", 1, "ALPHA", "alpha"),
	}}

	result, err := runner.New(optsFor(dir)).Run(context.Background(), rev)
	require.NoError(t, err)

	require.Len(t, result.Files, 2)
	assert.Equal(t, "a.txt", result.Files[0].Path)
	assert.Equal(t, "b.txt", result.Files[1].Path)
	assert.True(t, result.Files[0].Written)
	assert.True(t, result.Files[1].Written)

	assert.Equal(t, "one\nTWO\nthree\n", readFile(t, aPath))
	assert.Equal(t, "ALPHA\nbeta\n", readFile(t, bPath))

	assert.Equal(t, 2, result.Stats.FilesTargeted)
	assert.Equal(t, 2, result.Stats.FilesModified)
	assert.Equal(t, 2, result.Stats.FixesApplied)
	assert.Equal(t, 0, result.Stats.FixesFailed)
	assert.False(t, result.HasFailures())
}

func TestRunSequentialWithinFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", "first\nsecond\nthird\n")

	// The first fix grows the file, shifting the second fix's declared
	// line. The snippet anchor recovers it.
	rev := &review.Review{Fixes: []review.Fix{
		anchoredFix("f1", "f.txt", 1, "first\ninserted", "first"),
		anchoredFix("f2", "f.txt", 3, "THIRD", "third"),
	}}

	result, err := runner.New(optsFor(dir)).Run(context.Background(), rev)
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.Equal(t, 2, result.Files[0].Applied())
	assert.Equal(t, "first\ninserted\nsecond\nTHIRD\n", readFile(t, path))
}

func TestRunMissingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rev := &review.Review{Fixes: []review.Fix{
		anchoredFix("f1", "absent.txt", 1, "x", "y"),
		anchoredFix("f2", "absent.txt", 2, "x", "y"),
	}}

	result, err := runner.New(optsFor(dir)).Run(context.Background(), rev)
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	outcome := result.Files[0]
	require.Len(t, outcome.Results, 2)
	for _, res := range outcome.Results {
		assert.False(t, res.Applied)
		assert.Equal(t, apply.ReasonFileUnavailable, res.Reason)
	}
	assert.Equal(t, 2, result.Stats.FixesFailed)
	assert.Equal(t, 2, result.Stats.FailuresByReason[string(apply.ReasonFileUnavailable)])
	assert.True(t, result.HasFailures())
}

func TestRunDryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", "keep\nchange\n")

	opts := optsFor(dir)
	opts.DryRun = true

	rev := &review.Review{Fixes: []review.Fix{
		anchoredFix("f1", "f.txt", 2, "changed", "change"),
	}}

	result, err := runner.New(opts).Run(context.Background(), rev)
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	outcome := result.Files[0]
	assert.False(t, outcome.Written)
	require.NotNil(t, outcome.Diff)
	assert.True(t, outcome.Diff.HasChanges())

	assert.Equal(t, "keep\nchange\n", readFile(t, path), "dry run must not write")
	assert.Equal(t, 1, result.Stats.FilesModified)
}

func TestRunCreatesBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", "original\n")

	opts := optsFor(dir)
	opts.Backup = fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	rev := &review.Review{Fixes: []review.Fix{
		anchoredFix("f1", "f.txt", 1, "changed", "original"),
	}}

	result, err := runner.New(opts).Run(context.Background(), rev)
	require.NoError(t, err)

	require.Len(t, result.Files, 1)
	assert.True(t, result.Files[0].BackupCreated)
	assert.Equal(t, "original\n", readFile(t, fsutil.BackupPath(path, fsutil.BackupModeSidecar)))
	assert.Equal(t, "changed\n", readFile(t, path))
}

func TestRunMixedOutcomes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "f.txt", "hello\nworld\n")

	rev := &review.Review{Fixes: []review.Fix{
		anchoredFix("f1", "f.txt", 1, "HELLO", "hello"),
		anchoredFix("f2", "f.txt", 2, "gone", "never present text"),
	}}

	result, err := runner.New(optsFor(dir)).Run(context.Background(), rev)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FixesApplied)
	assert.Equal(t, 1, result.Stats.FixesFailed)
	assert.Equal(t, 1, result.Stats.FailuresByReason[string(apply.ReasonSnippetNotFound)])
	assert.Equal(t, 1, result.Stats.MatchesByStrategy["windowed-exact"])
	assert.True(t, result.HasFailures())
}

func TestRunAlreadyAppliedCountsSeparately(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "f.txt", "already PATCHED here\n")

	rev := &review.Review{Fixes: []review.Fix{
		anchoredFix("f1", "f.txt", 1, "PATCHED", "ORIGINAL"),
	}}

	result, err := runner.New(optsFor(dir)).Run(context.Background(), rev)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FixesAlreadyApplied)
	assert.Equal(t, 0, result.Stats.FixesApplied)
	assert.False(t, result.HasFailures())

	require.Len(t, result.Files, 1)
	assert.False(t, result.Files[0].Written, "idempotent outcome must not write")
	assert.Equal(t, "already PATCHED here\n", readFile(t, path))
}

func TestRunManyFilesConcurrently(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rev := &review.Review{}
	for i := 0; i < 20; i++ {
		name := filepath.Join("sub", "f"+string(rune('a'+i))+".txt")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
		writeFile(t, dir, name, "target line\n")
		rev.Fixes = append(rev.Fixes, anchoredFix("fix-"+name, name, 1, "patched line", "target line"))
	}

	opts := optsFor(dir)
	opts.Jobs = 4

	result, err := runner.New(opts).Run(context.Background(), rev)
	require.NoError(t, err)

	require.Len(t, result.Files, 20)
	for i := 1; i < len(result.Files); i++ {
		assert.Less(t, result.Files[i-1].Path, result.Files[i].Path, "outcomes ordered by path")
	}
	assert.Equal(t, 20, result.Stats.FixesApplied)
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "f.txt", "content\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rev := &review.Review{Fixes: []review.Fix{
		anchoredFix("f1", "f.txt", 1, "x", "content"),
	}}

	_, err := runner.New(optsFor(dir)).Run(ctx, rev)
	assert.Error(t, err)
}
