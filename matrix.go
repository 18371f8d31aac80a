package arraytex

import "strings"

// ToMatrix renders a as a LaTeX matrix environment named by the configured
// style ("b" gives bmatrix). Arrays of rank > 2 fail with a
// [*DimensionError]; an unusable number format fails with a [*FormatError].
//
// Without a number format each float is written in its shortest round-trip
// form, chosen per value: 2.0 renders as "2" and 1e-5 as "1\mathrm{e}{-05}".
//
//	\begin{bmatrix}
//	1 & 2 & 3 \\
//	4 & 5 & 6 \\
//	\end{bmatrix}
func ToMatrix(a Array, opts ...Option) (string, error) {
	cfg := gatherOptions(opts)
	out, err := renderMatrix(a, cfg)
	if err != nil {
		return "", err
	}
	return deliver(out, cfg)
}

func renderMatrix(a Array, cfg Config) (string, error) {
	if err := a.checkRank(); err != nil {
		return "", err
	}
	cells, err := formatCells(a, cfg)
	if err != nil {
		return "", err
	}

	var widths []int
	if cfg.Pad {
		widths = columnWidths(a.columns(), cells...)
	}

	env := cfg.Style + "matrix"
	lines := make([]string, 0, len(cells)+2)
	lines = append(lines, `\begin{`+env+`}`)
	for _, row := range cells {
		lines = append(lines, endRow(joinRow(row, widths, nil, AlignRight), cfg.Pad))
	}
	lines = append(lines, `\end{`+env+`}`)
	return strings.Join(lines, "\n"), nil
}
