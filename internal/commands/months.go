package commands

import (
	"github.com/spf13/cobra"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/config"
	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/model"
	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/render"
	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/schedule"
)

func newMonthsCommand() *cobra.Command {
	var schedulePath string
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "months",
		Short: "List the month columns a schedule covers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := loadConfiguredSchedule(cfgFile, schedulePath)
			if err != nil {
				return err
			}
			return render.Months(cmd.OutOrStdout(), sched)
		},
	}

	cmd.Flags().StringVar(&schedulePath, "schedule", "", "schedule file (overrides config)")
	cmd.Flags().StringVar(&cfgFile, "config", config.File, "config file")

	return cmd
}

// loadConfiguredSchedule loads the schedule named by the flag, falling
// back to the configured one.
func loadConfiguredSchedule(cfgFile, schedulePath string) (*model.Schedule, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if schedulePath != "" {
		cfg.Schedule = schedulePath
	}
	return schedule.Load(cfg.Schedule)
}
