package commands

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/config"
	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/posting"
	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/render"
	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/schedule"
)

func newGenerateCommand() *cobra.Command {
	var (
		targetPeriod string
		schedulePath string
		outDir       string
		cfgFile      string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate amortization postings for one month",
		Long: `Generate balanced debit/credit postings for a single target month
from the configured prepayment schedule. Entries are shown for review
and saved as accounting_entries_<period>.csv.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if schedulePath != "" {
				cfg.Schedule = schedulePath
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}

			if targetPeriod == "" {
				targetPeriod, err = promptPeriod(cmd)
				if err != nil {
					return err
				}
			}

			return runGenerate(cmd, cfg, targetPeriod, dryRun)
		},
	}

	cmd.Flags().StringVar(&targetPeriod, "period", "", "target month (YYYY-MM); prompted for when omitted")
	cmd.Flags().StringVar(&schedulePath, "schedule", "", "schedule file (overrides config)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (overrides config)")
	cmd.Flags().StringVar(&cfgFile, "config", config.File, "config file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show entries without saving")

	return cmd
}

// promptPeriod asks on the terminal for the target month.
func promptPeriod(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Enter the target month for amortization (YYYY-MM, e.g. 2024-05): ")

	sc := bufio.NewScanner(cmd.InOrStdin())
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("reading target month: %w", err)
		}
		return "", fmt.Errorf("no target month given")
	}
	return strings.TrimSpace(sc.Text()), nil
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, targetPeriod string, dryRun bool) error {
	sched, err := schedule.Load(cfg.Schedule)
	if err != nil {
		return err
	}
	slog.Info("loaded schedule",
		"path", cfg.Schedule,
		"records", len(sched.Records),
		"months", len(sched.Months),
	)

	accounts := posting.Accounts{
		Expense:    cfg.Accounts.Expense,
		Prepayment: cfg.Accounts.Prepayment,
	}
	entries, err := posting.Generate(sched, targetPeriod, accounts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No accounting entries generated for %s. Check that the schedule has amortization amounts for this period.\n", targetPeriod)
		return nil
	}

	if verrs := posting.Validate(entries); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("generated entries failed validation: %s", strings.Join(msgs, "; "))
	}

	if err := render.Entries(out, entries); err != nil {
		return err
	}

	if dryRun {
		fmt.Fprintln(out, "Dry run, entries not saved.")
		return nil
	}

	path, err := posting.Save(cfg.OutputDir, targetPeriod, entries)
	if err != nil {
		// The entries are already on screen; a failed save must not
		// discard them.
		slog.Warn("could not save entries", "error", err)
		return nil
	}
	fmt.Fprintf(out, "Saved accounting entries to %s\n", path)
	return nil
}
