package posting

import (
	"fmt"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/model"
)

// ValidationError describes a single invariant violation in a
// generated posting list.
type ValidationError struct {
	Pair        int
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("pair %d: %s", e.Pair, e.Description)
}

// Validate enforces the pairing invariants on generated postings:
// entries come in debit/credit pairs, each pair sums to exactly zero,
// hits two distinct accounts, and shares date, description, and
// reference across both legs.
func Validate(entries []model.PostingEntry) []ValidationError {
	var errs []ValidationError

	if len(entries)%2 != 0 {
		return append(errs, ValidationError{
			Pair:        len(entries) / 2,
			Description: fmt.Sprintf("odd entry count %d, debit without credit", len(entries)),
		})
	}

	for i := 0; i < len(entries); i += 2 {
		pair := i / 2
		debit, credit := entries[i], entries[i+1]

		if !debit.Amount.IsPositive() {
			errs = append(errs, ValidationError{
				Pair:        pair,
				Description: fmt.Sprintf("debit amount %s is not positive", debit.Amount),
			})
		}
		if sum := debit.Amount.Add(credit.Amount); !sum.IsZero() {
			errs = append(errs, ValidationError{
				Pair:        pair,
				Description: fmt.Sprintf("amounts %s and %s do not sum to zero", debit.Amount, credit.Amount),
			})
		}
		if debit.Account == credit.Account {
			errs = append(errs, ValidationError{
				Pair:        pair,
				Description: fmt.Sprintf("both legs hit account %s", debit.Account),
			})
		}
		if !debit.Date.Equal(credit.Date) || debit.Description != credit.Description || debit.Reference != credit.Reference {
			errs = append(errs, ValidationError{
				Pair:        pair,
				Description: "legs disagree on date, description, or reference",
			})
		}
	}
	return errs
}
