// Package config defines core configuration types for refix.
// These types are pure data structures with no external dependencies on Viper or other config loaders.
package config

import (
	"runtime"

	"github.com/yaklabco/refix/pkg/fsutil"
	"github.com/yaklabco/refix/pkg/match"
)

// BackupsConfig controls backup behavior when writing files.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode"` // "sidecar" or "none"
}

// OutputFormat specifies the output format for apply results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// SearchConfig holds the snippet search tuning parameters. Zero values
// mean "use the built-in default".
type SearchConfig struct {
	// WindowRadius is the line radius around the hint for the
	// first-pass windowed search.
	WindowRadius int `mapstructure:"window_radius" yaml:"window_radius"`

	// ToleranceLines is the maximum hint drift accepted by the
	// whole-file search passes.
	ToleranceLines int `mapstructure:"tolerance_lines" yaml:"tolerance_lines"`

	// FuzzyRadius is the line radius for the fuzzy last-resort search.
	FuzzyRadius int `mapstructure:"fuzzy_radius" yaml:"fuzzy_radius"`

	// AppliedRadius is the line radius for detecting an already
	// applied replacement.
	AppliedRadius int `mapstructure:"applied_radius" yaml:"applied_radius"`
}

// Config is the root configuration structure for refix.
type Config struct {
	// Search tunes the snippet search parameters.
	Search SearchConfig `mapstructure:"search" yaml:"search"`

	// Jobs specifies the number of files processed in parallel (0 = auto).
	Jobs int `mapstructure:"jobs" yaml:"jobs"`

	// Backups configures backup behavior when writing files.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// DryRun shows what would change without writing files.
	DryRun bool `mapstructure:"-" yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Color controls colored output: "auto", "always", or "never".
	Color string `mapstructure:"-" yaml:"-"`

	// NoBackups disables backup creation regardless of Backups.Enabled.
	NoBackups bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Search: SearchConfig{
			WindowRadius:   match.DefaultWindowRadius,
			ToleranceLines: match.DefaultToleranceLines,
			FuzzyRadius:    match.DefaultFuzzyRadius,
			AppliedRadius:  match.DefaultAppliedRadius,
		},
		Jobs: 0, // 0 means use GOMAXPROCS
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    string(fsutil.BackupModeSidecar),
		},
		Format: FormatText,
		Color:  "auto",
	}
}

// MatchOptions converts the search settings to engine options, filling
// unset fields with the defaults.
func (c *Config) MatchOptions() match.Options {
	opts := match.DefaultOptions()
	if c.Search.WindowRadius > 0 {
		opts.WindowRadius = c.Search.WindowRadius
	}
	if c.Search.ToleranceLines > 0 {
		opts.ToleranceLines = c.Search.ToleranceLines
	}
	if c.Search.FuzzyRadius > 0 {
		opts.FuzzyRadius = c.Search.FuzzyRadius
	}
	if c.Search.AppliedRadius > 0 {
		opts.AppliedRadius = c.Search.AppliedRadius
	}
	return opts
}

// BackupConfig converts the backup settings to the filesystem layer's
// form, honoring the NoBackups override.
func (c *Config) BackupConfig() fsutil.BackupConfig {
	if c.NoBackups || !c.Backups.Enabled {
		return fsutil.BackupConfig{Enabled: false, Mode: fsutil.BackupModeNone}
	}
	mode := fsutil.BackupMode(c.Backups.Mode)
	if mode == "" {
		mode = fsutil.BackupModeSidecar
	}
	return fsutil.BackupConfig{Enabled: true, Mode: mode}
}

// EffectiveJobs resolves the worker count, defaulting to the CPU count.
func (c *Config) EffectiveJobs() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.NumCPU()
}
