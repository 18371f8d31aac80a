package source

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

func decodeXLSX(r io.Reader, opts Options) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	// Trailing blank rows come back as empty slices.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return fromRecords(rows, opts.Header)
}
