// Package config handles prepay.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/posting"
)

// File is the default configuration file name.
const File = "prepay.yaml"

// DefaultSchedule is the schedule file consulted when none is
// configured, matching the finance team's standard export name.
const DefaultSchedule = "Prepayment assignment.csv"

// Environment variables overriding file values.
const (
	envSchedule   = "PREPAY_SCHEDULE"
	envOutputDir  = "PREPAY_OUTPUT_DIR"
	envExpense    = "PREPAY_EXPENSE_ACCOUNT"
	envPrepayment = "PREPAY_PREPAYMENT_ACCOUNT"
)

// Config represents the top-level prepay.yaml configuration.
type Config struct {
	Schedule  string         `yaml:"schedule"`
	OutputDir string         `yaml:"output_dir"`
	Accounts  AccountsConfig `yaml:"accounts"`
}

// AccountsConfig names the ledger accounts postings are booked to.
type AccountsConfig struct {
	Expense    string `yaml:"expense"`
	Prepayment string `yaml:"prepayment"`
}

// Default returns a Config with the stock schedule location and
// account codes.
func Default() *Config {
	return &Config{
		Schedule:  DefaultSchedule,
		OutputDir: ".",
		Accounts: AccountsConfig{
			Expense:    posting.DefaultExpenseAccount,
			Prepayment: posting.DefaultPrepaymentAccount,
		},
	}
}

// Load reads configuration from path, layering file values over
// defaults and environment values over both. A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// applyEnv overrides cfg with PREPAY_* environment values. A .env
// file in the working directory is read first; already-set variables
// win over it.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envSchedule); v != "" {
		cfg.Schedule = v
	}
	if v := os.Getenv(envOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(envExpense); v != "" {
		cfg.Accounts.Expense = v
	}
	if v := os.Getenv(envPrepayment); v != "" {
		cfg.Accounts.Prepayment = v
	}
}
