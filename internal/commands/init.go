package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/config"
)

func newInitCommand() *cobra.Command {
	var schedulePath string
	var outDir string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default prepay.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, schedulePath, outDir)
		},
	}

	cmd.Flags().StringVar(&schedulePath, "schedule", "", "schedule file the project reads")
	cmd.Flags().StringVar(&outDir, "out", "", "directory generated entry files are saved to")

	return cmd
}

func runInit(cmd *cobra.Command, dir, schedulePath, outDir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.File)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.Default()
	if schedulePath != "" {
		cfg.Schedule = schedulePath
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized prepay project at %s\n", path)
	return nil
}
