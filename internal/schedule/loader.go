// Package schedule loads prepayment amortization schedules from
// finance-team spreadsheet exports into normalized records.
package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/model"
)

// Source column labels in the export's header row.
const (
	colItems     = "Items"
	colReference = "Invoice number"
	colTotal     = "Invoice amount"
)

// headerSkip is the count of title rows preceding the column header.
const headerSkip = 2

// summarySentinel marks the running-balance trailer row.
const summarySentinel = "Balance"

var (
	// ErrNotFound means the schedule file does not exist.
	ErrNotFound = errors.New("schedule file not found")
	// ErrEmpty means the input held no data rows to parse.
	ErrEmpty = errors.New("schedule contains no data rows")
	// ErrNoMonthColumns means the header row has no MMM-YY columns.
	ErrNoMonthColumns = errors.New("no month columns found")
)

// Load reads a schedule from path, choosing the reader by extension.
// Files ending in .xlsx or .xlsm are read as workbooks, everything
// else as CSV.
func Load(path string) (*model.Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("opening schedule: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return ReadXLSX(f)
	default:
		return ReadCSV(f)
	}
}

// ReadCSV parses a schedule from CSV content. Ragged rows are allowed;
// short rows read as blank cells.
func ReadCSV(r io.Reader) (*model.Schedule, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading schedule CSV: %w", err)
	}
	return Parse(rows)
}

// Parse normalizes raw table rows into a Schedule. The first two rows
// are title content, the third is the column header, and the rest are
// item rows. A trailing row whose first cell equals the balance
// sentinel is dropped before records are built.
func Parse(rows [][]string) (*model.Schedule, error) {
	if len(rows) <= headerSkip+1 {
		return nil, fmt.Errorf("%w (%d rows)", ErrEmpty, len(rows))
	}
	header := rows[headerSkip]
	data := rows[headerSkip+1:]

	if last := len(data) - 1; firstCell(data[last]) == summarySentinel {
		slog.Debug("dropping balance summary row")
		data = data[:last]
	}

	cols := resolveColumns(header)
	if len(cols.months) == 0 {
		return nil, ErrNoMonthColumns
	}
	if cols.item < 0 {
		slog.Warn("item column not found, using placeholder labels", "want", colItems)
	}
	if cols.ref < 0 {
		slog.Warn("reference column not found, references will be missing", "want", colReference)
	}

	sched := &model.Schedule{Months: make([]model.MonthColumn, 0, len(cols.months))}
	for _, m := range cols.months {
		sched.Months = append(sched.Months, m.label)
	}
	for _, row := range data {
		sched.Records = append(sched.Records, buildRecord(row, cols))
	}
	return sched, nil
}

// columns holds resolved header positions. -1 means the column is
// absent from the source.
type columns struct {
	item   int
	ref    int
	total  int
	months []monthIndex
}

type monthIndex struct {
	label model.MonthColumn
	idx   int
}

// resolveColumns maps header labels to positions once, first
// occurrence winning for duplicates. Labels match exactly, without
// trimming.
func resolveColumns(header []string) columns {
	cols := columns{item: -1, ref: -1, total: -1}
	seen := make(map[model.MonthColumn]bool)
	for i, label := range header {
		switch label {
		case colItems:
			if cols.item < 0 {
				cols.item = i
			}
		case colReference:
			if cols.ref < 0 {
				cols.ref = i
			}
		case colTotal:
			if cols.total < 0 {
				cols.total = i
			}
		default:
			if !isMonthColumn(label) {
				continue
			}
			mc := model.MonthColumn(label)
			if seen[mc] {
				continue
			}
			seen[mc] = true
			cols.months = append(cols.months, monthIndex{label: mc, idx: i})
		}
	}
	return cols
}

// isMonthColumn reports whether a header label names a schedule month:
// exactly six characters, three letters, a dash, two digits. The rule
// is syntactic only, so "Xyz-24" passes.
func isMonthColumn(label string) bool {
	r := []rune(label)
	if len(r) != 6 || r[3] != '-' {
		return false
	}
	return unicode.IsLetter(r[0]) && unicode.IsLetter(r[1]) && unicode.IsLetter(r[2]) &&
		unicode.IsDigit(r[4]) && unicode.IsDigit(r[5])
}

func buildRecord(row []string, cols columns) model.ScheduleRecord {
	rec := model.ScheduleRecord{
		Item:        model.DefaultItem,
		Reference:   parseReference(cell(row, cols.ref)),
		TotalAmount: parseAmount(cell(row, cols.total)),
		Monthly:     make(map[model.MonthColumn]decimal.Decimal, len(cols.months)),
	}
	if item := cell(row, cols.item); item != "" {
		rec.Item = item
	}
	for _, m := range cols.months {
		rec.Monthly[m.label] = parseAmount(cell(row, m.idx))
	}
	return rec
}

// parseReference interprets an invoice number cell. Whole numbers are
// kept as integers so rendering never shows a decimal point; blanks,
// text, fractional values, and integers beyond int64 range are
// missing.
func parseReference(s string) model.Reference {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsInteger() {
		return model.Reference{}
	}
	bi := d.BigInt()
	if !bi.IsInt64() {
		return model.Reference{}
	}
	return model.NewReference(bi.Int64())
}

// parseAmount reads a numeric cell. A blank or non-numeric cell means
// no amortization that month and parses as zero.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// cell returns row[idx], or "" when the column is absent or the row is
// too short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func firstCell(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return row[0]
}
