package analysis

// SortField specifies how to sort per-file analysis results.
type SortField string

const (
	// SortByAlpha sorts alphabetically by path.
	SortByAlpha SortField = "alpha"
	// SortByFailed sorts by failed fix count (descending by default).
	SortByFailed SortField = "failed"
	// SortByFixes sorts by total fix count.
	SortByFixes SortField = "fixes"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByAlpha, SortByFailed, SortByFixes:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeFixes includes the flat per-fix list.
	IncludeFixes bool

	// IncludeByFile includes the per-file analysis.
	IncludeByFile bool

	// IncludeDiffs attaches unified diff text to file analyses.
	IncludeDiffs bool

	// DryRun marks the report as a preview run.
	DryRun bool

	// SortBy specifies how to sort ByFile.
	SortBy SortField

	// SortDesc sorts in descending order (highest first).
	SortDesc bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeFixes:  true,
		IncludeByFile: true,
		SortBy:        SortByAlpha,
	}
}
