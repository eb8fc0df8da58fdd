package commands

import (
	"github.com/spf13/cobra"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/config"
	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/render"
)

func newShowCommand() *cobra.Command {
	var schedulePath string
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the normalized schedule",
		Long: `Show the schedule as the generator sees it: one row per prepaid
item with its reference and per-month amortization amounts, after
header normalization and the balance-row drop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := loadConfiguredSchedule(cfgFile, schedulePath)
			if err != nil {
				return err
			}
			return render.Records(cmd.OutOrStdout(), sched)
		},
	}

	cmd.Flags().StringVar(&schedulePath, "schedule", "", "schedule file (overrides config)")
	cmd.Flags().StringVar(&cfgFile, "config", config.File, "config file")

	return cmd
}
