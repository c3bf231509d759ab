// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig  = "config"
	FieldDryRun  = "dry_run"
	FieldJobs    = "jobs"
	FieldBackups = "backups"

	// Fix fields.
	FieldFixID    = "fix_id"
	FieldStrategy = "strategy"
	FieldReason   = "reason"
	FieldScore    = "score"
	FieldLine     = "line"

	// Statistics fields.
	FieldFixesTotal    = "fixes_total"
	FieldFixesApplied  = "fixes_applied"
	FieldFixesFailed   = "fixes_failed"
	FieldFilesTargeted = "files_targeted"
	FieldFilesModified = "files_modified"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
