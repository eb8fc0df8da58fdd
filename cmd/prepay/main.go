package main

import (
	"os"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
