// Package runner provides multi-file fix application orchestration.
package runner

import (
	"github.com/yaklabco/refix/pkg/fsutil"
	"github.com/yaklabco/refix/pkg/match"
)

// Options controls a fix application run.
type Options struct {
	// WorkingDir is the base directory fix file paths are resolved
	// against. If empty, the current process working directory is used.
	WorkingDir string

	// Jobs controls the maximum number of concurrently processed files.
	// 0 or negative means "auto" (runtime.NumCPU()). Fixes within one
	// file are always applied sequentially regardless of Jobs.
	Jobs int

	// DryRun applies fixes in memory and collects diffs without
	// writing any file.
	DryRun bool

	// Backup controls sidecar backups of files before they are written.
	Backup fsutil.BackupConfig

	// Match carries the search tuning for the strategy ladder.
	Match match.Options
}

// DefaultOptions returns the standard run options.
func DefaultOptions() Options {
	return Options{
		Backup: fsutil.DefaultBackupConfig(),
		Match:  match.DefaultOptions(),
	}
}
