package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bjaus/arraytex"
)

func decodeCSV(r io.Reader, opts Options) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("decode csv: %w", err)
	}
	return fromRecords(records, opts.Header)
}

// fromRecords converts string records into a two-dimensional array. Integers
// are tried first, then floats; any float makes the whole array float.
func fromRecords(records [][]string, header bool) (Table, error) {
	var t Table
	if header && len(records) > 0 {
		t.Columns = records[0]
		records = records[1:]
	}

	cols := len(t.Columns)
	if len(records) > 0 {
		cols = len(records[0])
	}
	b := builder{shape: []int{len(records), cols}, allInt: true}
	for i, rec := range records {
		if len(rec) != cols {
			return Table{}, fmt.Errorf("%w: row %d has %d fields, expected %d", arraytex.ErrRagged, i+1, len(rec), cols)
		}
		for j, field := range rec {
			field = strings.TrimSpace(field)
			path := fmt.Sprintf("row %d column %d", i+1, j+1)
			if n, err := strconv.ParseInt(field, 10, 64); err == nil {
				b.addInt(n)
				continue
			}
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return Table{}, fmt.Errorf("%w: %s: %q", ErrNotNumeric, path, field)
			}
			b.addFloat(f)
		}
	}

	var err error
	if b.allInt {
		t.Array, err = arraytex.New(b.shape, b.ints)
	} else {
		t.Array, err = arraytex.New(b.shape, b.floats)
	}
	return t, err
}
