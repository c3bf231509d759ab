package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every setting with its default value.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateJSON()
	}
	if opts.Full {
		return fullTemplate(), nil
	}
	return minimalTemplate(), nil
}

// minimalTemplate creates a minimal commented template.
func minimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# refix configuration
# See: https://github.com/yaklabco/refix

# Number of files processed in parallel (0 = auto)
# jobs: 0

# Backups written before modifying files
backups:
  enabled: true
  mode: sidecar

# Snippet search tuning. Sensible defaults apply when omitted.
# search:
#   window_radius: 100
#   tolerance_lines: 50
#   fuzzy_radius: 200
#   applied_radius: 200
`)

	return buf.Bytes()
}

// fullTemplate creates a template with all settings spelled out.
func fullTemplate() []byte {
	cfg := NewConfig()

	var buf bytes.Buffer
	buf.WriteString(`# refix configuration - Full Template
# See: https://github.com/yaklabco/refix

# Line radius around the fix's line hint for the first search pass
search:
  window_radius: ` + fmt.Sprint(cfg.Search.WindowRadius) + `
  # Maximum hint drift accepted by the whole-file passes
  tolerance_lines: ` + fmt.Sprint(cfg.Search.ToleranceLines) + `
  # Line radius for the fuzzy last-resort search
  fuzzy_radius: ` + fmt.Sprint(cfg.Search.FuzzyRadius) + `
  # Line radius for detecting an already applied replacement
  applied_radius: ` + fmt.Sprint(cfg.Search.AppliedRadius) + `

# Number of files processed in parallel (0 = auto based on CPU cores)
jobs: 0

# Backups written before modifying files
backups:
  enabled: true
  mode: sidecar
`)

	return buf.Bytes()
}

// templateJSON emits the default configuration as indented JSON.
func templateJSON() ([]byte, error) {
	cfg := NewConfig()

	out := map[string]any{
		"search": map[string]any{
			"window_radius":   cfg.Search.WindowRadius,
			"tolerance_lines": cfg.Search.ToleranceLines,
			"fuzzy_radius":    cfg.Search.FuzzyRadius,
			"applied_radius":  cfg.Search.AppliedRadius,
		},
		"jobs": cfg.Jobs,
		"backups": map[string]any{
			"enabled": cfg.Backups.Enabled,
			"mode":    cfg.Backups.Mode,
		},
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# refix configuration
# See: https://github.com/yaklabco/refix`
}
