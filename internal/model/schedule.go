// Package model defines the data types shared across the prepay
// pipeline.
package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// DefaultItem labels records whose source row had no item name.
const DefaultItem = "Generic Item"

// MissingReference is how an absent or unparseable invoice number
// renders.
const MissingReference = "N/A"

// MonthColumn identifies a calendar month column in the schedule,
// formatted as three-letter month abbreviation plus two-digit year,
// e.g. "May-24".
type MonthColumn string

// Reference is an optional whole-number invoice identifier. Absent or
// unparseable values are distinct from present ones and are never
// coerced to zero.
type Reference struct {
	Value int64
	Valid bool
}

// NewReference returns a present Reference.
func NewReference(v int64) Reference {
	return Reference{Value: v, Valid: true}
}

// String renders the reference as a plain integer, or the missing
// marker.
func (r Reference) String() string {
	if !r.Valid {
		return MissingReference
	}
	return strconv.FormatInt(r.Value, 10)
}

// ScheduleRecord is one normalized row of the prepayment schedule.
// Records are built once at load time and read-only afterwards.
type ScheduleRecord struct {
	Item        string
	Reference   Reference
	TotalAmount decimal.Decimal
	Monthly     map[MonthColumn]decimal.Decimal
}

// AmountFor returns the record's amortization amount for a month
// column, zero when the schedule has no such column.
func (r ScheduleRecord) AmountFor(col MonthColumn) decimal.Decimal {
	return r.Monthly[col]
}

// Schedule is the loader's output: records in source order plus the
// recognized month columns in header order.
type Schedule struct {
	Records []ScheduleRecord
	Months  []MonthColumn
}

// HasMonth reports whether the schedule recognizes a month column.
func (s *Schedule) HasMonth(col MonthColumn) bool {
	for _, m := range s.Months {
		if m == col {
			return true
		}
	}
	return false
}
