package cli

import (
	"bufio"
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/refix/internal/logging"
	"github.com/yaklabco/refix/internal/ui/pretty"
	"github.com/yaklabco/refix/pkg/apply"
	"github.com/yaklabco/refix/pkg/config"
	"github.com/yaklabco/refix/pkg/document"
	"github.com/yaklabco/refix/pkg/review"
)

type checkFlags struct {
	workingDir string
}

func newCheckCommand() *cobra.Command {
	var cfg config.Config
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <review-file>",
		Short: "Check whether the fixes from a review file would apply",
		Long: `Check a review file against the working tree without modifying anything.

Each fix is located in its target file using the same search the apply
command uses, minus the fuzzy last-resort pass. A fix that only the
fuzzy pass would find is reported as not applicable, since its outcome
is less certain.

Examples:
  refix check review.json    # Verify fixes before applying
  refix check review.md      # Works with Markdown reviews too`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], &cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.workingDir, "working-dir", "C", "", "base directory for file paths in the review (default: current directory)")

	return cmd
}

func runCheck(cmd *cobra.Command, reviewPath string, cfg *config.Config, flags *checkFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	finalCfg, workDir, err := resolveConfig(ctx, cmd, cfg, flags.workingDir, logger)
	if err != nil {
		return err
	}

	rev, err := review.Load(reviewPath)
	if err != nil {
		return fmt.Errorf("load review: %w", err)
	}

	colorMode := finalCfg.Color
	if cmd.Flags().Changed("color") {
		if v, err := cmd.Flags().GetString("color"); err == nil {
			colorMode = v
		}
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
	w := bufio.NewWriter(out)

	applier := apply.New(finalCfg.MatchOptions())
	notApplicable := checkFixes(ctx, w, styles, applier, rev, workDir)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if notApplicable > 0 {
		return ErrFixesFailed
	}

	return nil
}

// checkFixes preflights every fix and writes per-file results. It
// returns the number of fixes that would not apply.
func checkFixes(
	ctx context.Context,
	w *bufio.Writer,
	styles *pretty.Styles,
	applier *apply.Applier,
	rev *review.Review,
	workDir string,
) int {
	byFile := rev.FixesByFile()
	paths := make([]string, 0, len(byFile))
	for path := range byFile {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	total := 0
	notApplicable := 0

	for _, path := range paths {
		fixes := byFile[path]
		total += len(fixes)

		fmt.Fprintln(w, styles.FilePath.Render(path))

		doc, err := document.Open(ctx, workDir, path)
		if err != nil {
			for _, fix := range fixes {
				notApplicable++
				fmt.Fprintf(w, "  %s  %s\n",
					fix.ID, styles.Failure.Render(fmt.Sprintf("unavailable (%v)", err)))
			}
			fmt.Fprintln(w)
			continue
		}

		for i := range fixes {
			if applier.CanApply(&fixes[i], doc) {
				fmt.Fprintf(w, "  %s  %s\n", fixes[i].ID, styles.Applied.Render("would apply"))
			} else {
				notApplicable++
				fmt.Fprintf(w, "  %s  %s\n", fixes[i].ID, styles.Failure.Render("would not apply"))
			}
		}
		fmt.Fprintln(w)
	}

	if total == 0 {
		fmt.Fprintln(w, "No fixes to check")
		return 0
	}

	if notApplicable == 0 {
		fmt.Fprintln(w, styles.Success.Render(fmt.Sprintf("All %d fixes would apply", total)))
	} else {
		fmt.Fprintln(w, styles.Failure.Render(
			fmt.Sprintf("%d of %d fixes would not apply", notApplicable, total)))
	}

	return notApplicable
}
