package logging_test

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/refix/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		level    string
		expected log.Level
	}{
		{"debug for verbose apply runs", "debug", log.DebugLevel},
		{"info", "info", log.InfoLevel},
		{"warn", "warn", log.WarnLevel},
		{"warning alias", "warning", log.WarnLevel},
		{"error", "error", log.ErrorLevel},
		{"unknown level defaults to info", "chatty", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"uppercase DEBUG", "DEBUG", log.DebugLevel},
		{"mixed case Warn", "Warn", log.WarnLevel},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logger := logging.New(testCase.level)
			if logger == nil {
				t.Fatal("New returned nil logger")
			}

			if logger.GetLevel() != testCase.expected {
				t.Errorf("expected level %v, got %v", testCase.expected, logger.GetLevel())
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	if logging.Default() == nil {
		t.Fatal("Default returned nil logger")
	}
}

func TestSetLevel(t *testing.T) {
	// Not parallel: mutates the package default.

	original := logging.Default()
	defer logging.SetDefault(original)

	logging.SetDefault(logging.New("info"))

	logging.SetLevel("debug")
	if logging.Default().GetLevel() != log.DebugLevel {
		t.Error("SetLevel to debug failed")
	}

	logging.SetLevel("error")
	if logging.Default().GetLevel() != log.ErrorLevel {
		t.Error("SetLevel to error failed")
	}
}

func TestSetDefault(t *testing.T) {
	// Not parallel: mutates the package default.

	original := logging.Default()
	defer logging.SetDefault(original)

	applyLogger := logging.New("error")
	logging.SetDefault(applyLogger)

	if logging.Default() != applyLogger {
		t.Error("SetDefault did not change the default logger")
	}
}

func TestNewInteractive(t *testing.T) {
	t.Parallel()

	logger := logging.NewInteractive()
	if logger == nil {
		t.Fatal("NewInteractive returned nil logger")
	}

	// Prompts and confirmations log at info regardless of --debug.
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("expected info level, got %v", logger.GetLevel())
	}
}

func TestWithLoggerRoundTrip(t *testing.T) {
	t.Parallel()

	runLogger := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), runLogger)

	if got := logging.FromContext(ctx); got != runLogger {
		t.Error("FromContext did not return the attached logger")
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != logging.Default() {
		t.Error("plain context must yield the default logger")
	}
}

func TestFieldNamesAreStable(t *testing.T) {
	t.Parallel()

	// Downstream log scraping keys on these; renames are breaking.
	stable := map[string]string{
		logging.FieldFixID:    "fix_id",
		logging.FieldStrategy: "strategy",
		logging.FieldReason:   "reason",
		logging.FieldPath:     "path",
	}
	for got, want := range stable {
		if got != want {
			t.Errorf("field constant %q changed, want %q", got, want)
		}
	}
}
