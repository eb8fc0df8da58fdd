// Package period handles target-period values: the YYYY-MM strings
// naming the month postings are generated for.
package period

import (
	"errors"
	"fmt"
	"time"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/model"
)

// ErrFormat is returned when a target period is not a YYYY-MM value.
var ErrFormat = errors.New("invalid target period format")

const (
	// parseLayout is the accepted period shape: 4-digit year, dash,
	// month with or without a leading zero.
	parseLayout = "2006-1"
	// labelLayout is the schedule's month-column shape (e.g. "May-24").
	labelLayout = "Jan-06"
)

// Parse interprets a target period like "2024-05". The month may be
// unpadded ("2024-5"); "2024/05" and "May-2024" are rejected, as are
// out-of-range months.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(parseLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM)", ErrFormat, s)
	}
	return t, nil
}

// Label converts a period to its schedule column label ("2024-05" -> "May-24").
func Label(t time.Time) model.MonthColumn {
	return model.MonthColumn(t.Format(labelLayout))
}

// End returns the last calendar day of the period's month.
func End(t time.Time) time.Time {
	// Day 0 of the following month normalizes to this month's last day.
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}
