package cli

import "github.com/yaklabco/refix/pkg/runner"

// Exit codes for refix.
const (
	// ExitSuccess indicates successful execution with every fix applied.
	ExitSuccess = 0

	// ExitFixesFailed indicates the run completed but some fixes could
	// not be applied.
	ExitFixesFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code based on the run result.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		return ExitFixesFailed
	}

	return ExitSuccess
}
