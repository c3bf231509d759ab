package configloader

import "github.com/yaklabco/refix/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Search: merge individual fields
	if override.Search.WindowRadius != 0 {
		result.Search.WindowRadius = override.Search.WindowRadius
	}
	if override.Search.ToleranceLines != 0 {
		result.Search.ToleranceLines = override.Search.ToleranceLines
	}
	if override.Search.FuzzyRadius != 0 {
		result.Search.FuzzyRadius = override.Search.FuzzyRadius
	}
	if override.Search.AppliedRadius != 0 {
		result.Search.AppliedRadius = override.Search.AppliedRadius
	}

	// Booleans: these are tricky because false is the zero value.
	// A true in override always wins; a config file cannot unset a
	// flag set earlier in the chain.
	if override.DryRun {
		result.DryRun = override.DryRun
	}
	if override.NoBackups {
		result.NoBackups = override.NoBackups
	}

	// Backups: merge individual fields
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = override.Backups.Enabled
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
