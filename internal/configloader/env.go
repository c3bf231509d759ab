package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/refix/pkg/config"
)

// envVarPrefix is the prefix for all refix environment variables.
const envVarPrefix = "REFIX_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"DRY_RUN":                {field: "dry_run", typ: envTypeBool},
	"JOBS":                   {field: "jobs", typ: envTypeInt},
	"FORMAT":                 {field: "format", typ: envTypeString},
	"COLOR":                  {field: "color", typ: envTypeString},
	"BACKUPS_ENABLED":        {field: "backups.enabled", typ: envTypeBool},
	"BACKUPS_MODE":           {field: "backups.mode", typ: envTypeString},
	"NO_BACKUPS":             {field: "no_backups", typ: envTypeBool},
	"SEARCH_WINDOW_RADIUS":   {field: "search.window_radius", typ: envTypeInt},
	"SEARCH_TOLERANCE_LINES": {field: "search.tolerance_lines", typ: envTypeInt},
	"SEARCH_FUZZY_RADIUS":    {field: "search.fuzzy_radius", typ: envTypeInt},
	"SEARCH_APPLIED_RADIUS":  {field: "search.applied_radius", typ: envTypeInt},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with REFIX_ (e.g., REFIX_JOBS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = value
	case "backups.mode":
		cfg.Backups.Mode = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "dry_run":
		cfg.DryRun = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	case "no_backups":
		cfg.NoBackups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "search.window_radius":
		cfg.Search.WindowRadius = value
	case "search.tolerance_lines":
		cfg.Search.ToleranceLines = value
	case "search.fuzzy_radius":
		cfg.Search.FuzzyRadius = value
	case "search.applied_radius":
		cfg.Search.AppliedRadius = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"REFIX_DRY_RUN":                "Dry-run mode: true or false",
		"REFIX_JOBS":                   "Number of parallel workers (0 = auto)",
		"REFIX_FORMAT":                 "Output format: text, json, diff, or summary",
		"REFIX_COLOR":                  "Colored output: auto, always, or never",
		"REFIX_BACKUPS_ENABLED":        "Enable backups when writing: true or false",
		"REFIX_BACKUPS_MODE":           "Backup mode: sidecar or none",
		"REFIX_NO_BACKUPS":             "Disable backups: true or false",
		"REFIX_SEARCH_WINDOW_RADIUS":   "Line radius for the windowed search pass",
		"REFIX_SEARCH_TOLERANCE_LINES": "Maximum hint drift accepted by whole-file passes",
		"REFIX_SEARCH_FUZZY_RADIUS":    "Line radius for the fuzzy search pass",
		"REFIX_SEARCH_APPLIED_RADIUS":  "Line radius for already-applied detection",
	}
}
