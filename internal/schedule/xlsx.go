package schedule

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/clifftonowen/Prepayment-Amortization-Automation-Script/internal/model"
)

// ReadXLSX parses a schedule from the first sheet of an Excel
// workbook. The sheet layout matches the CSV export: two title rows,
// a header row, item rows, and an optional balance trailer.
func ReadXLSX(r io.Reader) (*model.Schedule, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w (workbook has no sheets)", ErrEmpty)
	}
	// Underlying values, not display text: a number format would
	// render amounts as text like "1,200.00", which does not parse.
	rows, err := wb.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return Parse(rows)
}
