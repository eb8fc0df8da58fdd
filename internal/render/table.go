// Package render formats schedules and postings for terminal review.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/model"
	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/posting"
)

// Entries writes postings as an aligned table. Rows render exactly as
// they are saved to CSV.
func Entries(w io.Writer, entries []model.PostingEntry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ReplaceAll(posting.Header, ",", "\t"))
	for _, e := range entries {
		fmt.Fprintln(tw, strings.Join(posting.MarshalEntry(e), "\t"))
	}
	return tw.Flush()
}

// Records writes the loaded schedule as an aligned table, one column
// per recognized month.
func Records(w io.Writer, sched *model.Schedule) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprint(tw, "Item\tReference\tTotal")
	for _, m := range sched.Months {
		fmt.Fprintf(tw, "\t%s", m)
	}
	fmt.Fprintln(tw)

	for _, rec := range sched.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s", rec.Item, rec.Reference, rec.TotalAmount.StringFixed(2))
		for _, m := range sched.Months {
			fmt.Fprintf(tw, "\t%s", rec.AmountFor(m).StringFixed(2))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// Months lists the schedule's recognized month columns, one per line.
func Months(w io.Writer, sched *model.Schedule) error {
	for _, m := range sched.Months {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return err
		}
	}
	return nil
}
