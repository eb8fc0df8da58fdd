package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostingEntry is one ledger line of a generated double entry.
// Entries are created fresh per generation call and never persisted
// by the pipeline itself.
type PostingEntry struct {
	Date        time.Time // last calendar day of the target month
	Description string
	Reference   string // plain integer string, or MissingReference
	Account     string
	Amount      decimal.Decimal // positive debit, or its exact negation
}
