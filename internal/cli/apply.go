package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/refix/internal/configloader"
	"github.com/yaklabco/refix/internal/logging"
	"github.com/yaklabco/refix/pkg/config"
	"github.com/yaklabco/refix/pkg/reporter"
	"github.com/yaklabco/refix/pkg/review"
	"github.com/yaklabco/refix/pkg/runner"
)

// ErrFixesFailed is returned when some fixes could not be applied.
var ErrFixesFailed = errors.New("some fixes could not be applied")

type applyFlags struct {
	format     string
	workingDir string
	compact    bool
}

func newApplyCommand() *cobra.Command {
	var cfg config.Config
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply <review-file>",
		Short: "Apply the fixes from a review file",
		Long:  applyLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args[0], &cfg, flags)
		},
	}

	addApplyFlags(cmd, &cfg, flags)

	return cmd
}

const applyLongDescription = `Apply the fixes from a review file to the working tree.

The review file is JSON, or Markdown containing a fenced JSON block.
Each fix names a file, a line range, the snippet it expects to replace,
and the replacement text. Fixes whose snippet has moved since the review
was written are relocated automatically; fixes whose snippet cannot be
found are skipped and reported.

Examples:
  refix apply review.json              # Apply fixes from JSON review
  refix apply review.md                # Apply fixes from Markdown review
  refix apply review.json --dry-run    # Show diffs without writing
  refix apply review.json --format json  # Machine-readable results
  refix apply review.json --no-backups   # Skip sidecar backups`

func runApply(cmd *cobra.Command, reviewPath string, cfg *config.Config, flags *applyFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	finalCfg, workDir, err := resolveConfig(ctx, cmd, cfg, flags.workingDir, logger)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
		logging.FieldBackups, finalCfg.Backups.Enabled,
	)

	// Load the review file.
	rev, err := review.Load(reviewPath)
	if err != nil {
		return fmt.Errorf("load review: %w", err)
	}

	logger.Debug("review loaded",
		logging.FieldInput, reviewPath,
		logging.FieldFixesTotal, len(rev.Fixes),
		logging.FieldFiles, len(rev.FixesByFile()),
	)

	// Run the fixes with the resolved logger attached for the pipeline.
	ctx = logging.WithLogger(ctx, logger)
	fixRunner := runner.New(runner.Options{
		WorkingDir: workDir,
		Jobs:       finalCfg.Jobs,
		DryRun:     finalCfg.DryRun,
		Backup:     finalCfg.BackupConfig(),
		Match:      finalCfg.MatchOptions(),
	})

	result, err := fixRunner.Run(ctx, rev)
	if err != nil {
		return errors.Join(errors.New("apply run failed"), err)
	}

	// Report results.
	failed, err := reportResult(ctx, cmd, finalCfg, flags.compact, result)
	if err != nil {
		return err
	}

	if failed > 0 {
		return ErrFixesFailed
	}

	return nil
}

// resolveConfig merges CLI flags with discovered configuration files and
// the environment, returning the final config and working directory.
func resolveConfig(
	ctx context.Context,
	cmd *cobra.Command,
	cliCfg *config.Config,
	workingDirFlag string,
	logger *log.Logger,
) (*config.Config, string, error) {
	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir := workingDirFlag
	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			return nil, "", fmt.Errorf("get working directory: %w", err)
		}
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}

// reportResult renders the run result in the configured format and
// returns the number of failed fixes.
func reportResult(
	ctx context.Context,
	cmd *cobra.Command,
	cfg *config.Config,
	compact bool,
	result *runner.Result,
) (int, error) {
	// Get color mode from persistent flag; the config's value covers
	// the env override.
	colorMode := cfg.Color
	if cmd.Flags().Changed("color") {
		if v, err := cmd.Flags().GetString("color"); err == nil {
			colorMode = v
		}
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return 0, fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     compact,
		DryRun:      cfg.DryRun,
	})
	if err != nil {
		return 0, fmt.Errorf("create reporter: %w", err)
	}

	failed, err := rep.Report(ctx, result)
	if err != nil {
		return 0, fmt.Errorf("report results: %w", err)
	}

	return failed, nil
}

func addApplyFlags(cmd *cobra.Command, cfg *config.Config, flags *applyFlags) {
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff, summary")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of files processed in parallel (0 = auto)")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when writing")
	cmd.Flags().StringVarP(&flags.workingDir, "working-dir", "C", "", "base directory for file paths in the review (default: current directory)")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
