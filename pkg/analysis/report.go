package analysis

import "time"

// Report contains pre-computed views of a fix application run.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Fixes is the flat per-fix list for detailed output.
	Fixes []FixEntry `json:"fixes,omitempty"`

	// ByFile groups outcomes by file path.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// DryRun marks a run that wrote nothing to disk.
	DryRun bool `json:"dryRun,omitempty"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// FixEntry represents a single fix outcome in the report.
type FixEntry struct {
	FixID    string  `json:"fixId"`
	FilePath string  `json:"filePath"`
	Applied  bool    `json:"applied"`
	Reason   string  `json:"reason"`
	Message  string  `json:"message,omitempty"`
	Strategy string  `json:"strategy,omitempty"`
	Score    float64 `json:"score,omitempty"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files          int            `json:"filesTargeted"`
	FilesModified  int            `json:"filesModified"`
	Fixes          int            `json:"totalFixes"`
	Applied        int            `json:"applied"`
	AlreadyApplied int            `json:"alreadyApplied"`
	Failed         int            `json:"failed"`
	ByReason       map[string]int `json:"failuresByReason,omitempty"`
	ByStrategy     map[string]int `json:"matchesByStrategy,omitempty"`
}

// HasFailures returns true if any fix could not be applied.
func (t Totals) HasFailures() bool {
	return t.Failed > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path           string `json:"path"`
	Language       string `json:"language,omitempty"`
	Fixes          int    `json:"fixes"`
	Applied        int    `json:"applied"`
	AlreadyApplied int    `json:"alreadyApplied"`
	Failed         int    `json:"failed"`
	Written        bool   `json:"written"`
	BackupCreated  bool   `json:"backupCreated,omitempty"`
	DiffText       string `json:"diff,omitempty"`
}
