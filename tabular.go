package arraytex

import (
	"strconv"
	"strings"
)

const indexHeader = "Index"

// ToTabular renders a as a booktabs tabular environment with a header row.
//
// Column names default to "Col 1".."Col N" and alignment defaults to "c" for
// every column. A row index prepends a column labelled "Index" (alignment
// "l") unless the names and alignments already include it.
//
// Arrays of rank > 2 fail with a [*DimensionError] before any metadata is
// checked. Alignments, column names or row labels whose count disagrees with
// the array fail with a [*DimensionMismatchError].
func ToTabular(a Array, opts ...Option) (string, error) {
	cfg := gatherOptions(opts)
	out, err := renderTabular(a, cfg)
	if err != nil {
		return "", err
	}
	return deliver(out, cfg)
}

func renderTabular(a Array, cfg Config) (string, error) {
	if err := a.checkRank(); err != nil {
		return "", err
	}
	cols := a.columns()
	explicit := cfg.Alignment.explicit()
	indexed := cfg.RowIndex != nil

	// With a row index the lists may legitimately hold one extra entry, so
	// their lengths are checked once the index column is known.
	if !indexed {
		if explicit && len(cfg.Alignment.Columns) != cols {
			return "", columnMismatch("alignment", len(cfg.Alignment.Columns), cols)
		}
		if cfg.ColumnNames != nil && len(cfg.ColumnNames) != cols {
			return "", columnMismatch("column_names", len(cfg.ColumnNames), cols)
		}
	}

	var aligns []Alignment
	if explicit {
		aligns = append(aligns, cfg.Alignment.Columns...)
	} else {
		broadcast := cfg.Alignment.Broadcast
		if broadcast == "" {
			broadcast = AlignCenter
		}
		aligns = make([]Alignment, cols)
		for i := range aligns {
			aligns[i] = broadcast
		}
	}

	names := append([]string(nil), cfg.ColumnNames...)
	if cfg.ColumnNames == nil {
		names = make([]string, cols)
		for i := range names {
			names[i] = "Col " + strconv.Itoa(i+1)
		}
	}

	rows, err := formatCells(a, cfg)
	if err != nil {
		return "", err
	}

	if indexed {
		if len(cfg.RowIndex) != len(rows) {
			return "", &DimensionMismatchError{Field: "row_index", Got: len(cfg.RowIndex), Want: len(rows), Unit: "rows"}
		}
		defaultHeader := len(names) == cols
		if defaultHeader {
			names = append([]string{indexHeader}, names...)
		}
		if len(aligns) == cols && (!explicit || defaultHeader) {
			aligns = append([]Alignment{AlignLeft}, aligns...)
		}
		if len(names) != cols+1 {
			return "", columnMismatch("column_names", len(names), cols+1)
		}
		if len(aligns) != len(names) {
			return "", columnMismatch("alignment", len(aligns), len(names))
		}
		for i, row := range rows {
			rows[i] = append([]string{cfg.RowIndex[i]}, row...)
		}
	}

	var widths []int
	if cfg.Pad {
		widths = columnWidths(len(names), append([][]string{names}, rows...)...)
	}

	specs := make([]string, len(aligns))
	for i, al := range aligns {
		specs[i] = string(al)
	}

	lines := make([]string, 0, len(rows)+6)
	lines = append(lines,
		`\begin{tabular}{`+strings.Join(specs, " ")+`}`,
		`\toprule`,
		endRow(joinRow(names, widths, aligns, AlignLeft), cfg.Pad),
		`\midrule`,
	)
	for _, row := range rows {
		lines = append(lines, endRow(joinRow(row, widths, aligns, AlignLeft), cfg.Pad))
	}
	lines = append(lines, `\bottomrule`, `\end{tabular}`)
	return strings.Join(lines, "\n"), nil
}
