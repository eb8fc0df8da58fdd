package posting

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/model"
)

// Header is the CSV header for generated entry files.
const Header = "Date,Description,Reference,Account,Amount"

const (
	numFields  = 5
	dateFormat = "02/01/2006"
	colDate    = 0
	colDesc    = 1
	colRef     = 2
	colAccount = 3
	colAmount  = 4
)

// MarshalEntry converts a PostingEntry to a CSV row ([]string).
func MarshalEntry(e model.PostingEntry) []string {
	row := make([]string, numFields)
	row[colDate] = e.Date.Format(dateFormat)
	row[colDesc] = e.Description
	row[colRef] = e.Reference
	row[colAccount] = e.Account
	row[colAmount] = e.Amount.StringFixed(2)
	return row
}

// WriteEntries writes entries to w as CSV, header included.
func WriteEntries(w io.Writer, entries []model.PostingEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// FileName returns the output file name for a target period, e.g.
// accounting_entries_2024-05.csv.
func FileName(targetPeriod string) string {
	return fmt.Sprintf("accounting_entries_%s.csv", targetPeriod)
}

// Save writes entries to dir under the period's file name, overwriting
// any previous run, and returns the full path.
func Save(dir, targetPeriod string, entries []model.PostingEntry) (string, error) {
	path := filepath.Join(dir, FileName(targetPeriod))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteEntries(f, entries); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
