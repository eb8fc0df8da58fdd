// Package posting turns a loaded amortization schedule into balanced
// double-entry postings for one target month.
package posting

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/model"
	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/period"
)

// Default ledger account codes for the two legs of each pair.
const (
	DefaultExpenseAccount    = "EXP001"
	DefaultPrepaymentAccount = "PRE001"
)

// descriptionFormat renders an entry description from the item label.
const descriptionFormat = "Prepayment amortisation for %s"

// negligible is the magnitude at or below which a month cell counts as
// rounding noise, not activity.
var negligible = decimal.New(5, -3)

// Accounts names the debit and credit sides of every generated pair.
type Accounts struct {
	Expense    string
	Prepayment string
}

// DefaultAccounts returns the stock expense/prepayment account pair.
func DefaultAccounts() Accounts {
	return Accounts{
		Expense:    DefaultExpenseAccount,
		Prepayment: DefaultPrepaymentAccount,
	}
}

// Generate produces postings for targetPeriod ("YYYY-MM") from a
// loaded schedule. A period the schedule does not cover yields an
// empty list with no error; a malformed period fails with
// period.ErrFormat. Entries come out in record order, debit before
// credit, and each credit is the exact negation of its debit.
func Generate(sched *model.Schedule, targetPeriod string, accounts Accounts) ([]model.PostingEntry, error) {
	target, err := period.Parse(targetPeriod)
	if err != nil {
		return nil, err
	}

	label := period.Label(target)
	if !sched.HasMonth(label) {
		slog.Warn("period not covered by schedule", "period", targetPeriod, "column", label)
		return nil, nil
	}

	date := period.End(target)
	var entries []model.PostingEntry
	for _, rec := range sched.Records {
		amount := rec.AmountFor(label)
		if amount.Abs().Cmp(negligible) <= 0 {
			continue
		}

		// Schedules record amortization as negative numbers; the sign
		// carries no ledger meaning and is normalized away.
		debit := amount.Round(2).Abs()
		desc := fmt.Sprintf(descriptionFormat, rec.Item)
		ref := rec.Reference.String()

		entries = append(entries,
			model.PostingEntry{
				Date:        date,
				Description: desc,
				Reference:   ref,
				Account:     accounts.Expense,
				Amount:      debit,
			},
			model.PostingEntry{
				Date:        date,
				Description: desc,
				Reference:   ref,
				Account:     accounts.Prepayment,
				Amount:      debit.Neg(),
			},
		)
	}
	return entries, nil
}
