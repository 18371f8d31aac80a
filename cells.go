package arraytex

import (
	"regexp"
	"strings"
)

const (
	colSep = " & "
	rowEnd = ` \\`
)

// exponentRegex matches the exponent marker produced by e/g formatting.
var exponentRegex = regexp.MustCompile(`e([+-]?\d+)`)

const (
	inlineExponent     = `\mathrm{e}{${1}}`
	scientificExponent = ` \times 10^{${1}}`
)

// formatCells renders a into one slice of cells per logical row. A scalar and
// a vector each form a single row. The caller has already rejected rank > 2.
func formatCells(a Array, cfg Config) ([][]string, error) {
	render := defaultRender
	if cfg.NumberFormat != "" {
		nf, err := parseNumberFormat(cfg.NumberFormat)
		if err != nil {
			return nil, err
		}
		if err := nf.check(a); err != nil {
			return nil, err
		}
		render = nf.render
	}

	exponent := inlineExponent
	if cfg.Scientific {
		exponent = scientificExponent
	}

	nrows, ncols := a.rows(), a.columns()
	out := make([][]string, nrows)
	for r := range nrows {
		row := make([]string, ncols)
		for c := range ncols {
			cell := strings.TrimSpace(render(a, r*ncols+c))
			row[c] = exponentRegex.ReplaceAllString(cell, exponent)
		}
		out[r] = row
	}
	return out, nil
}

// joinRow joins cells with the column delimiter. When widths is non-nil each
// cell is padded to its column width first, aligned by aligns (or fallback
// past the end of aligns).
func joinRow(cells []string, widths []int, aligns []Alignment, fallback Alignment) string {
	if widths == nil {
		return strings.Join(cells, colSep)
	}
	padded := make([]string, len(cells))
	for i, cell := range cells {
		align := fallback
		if i < len(aligns) {
			align = aligns[i]
		}
		padded[i] = alignCell(cell, widths[i], align)
	}
	return strings.Join(padded, colSep)
}

// endRow strips incidental whitespace and appends the row terminator.
// Padded lines keep their leading whitespace.
func endRow(line string, pad bool) string {
	if pad {
		return strings.TrimRight(line, " ") + rowEnd
	}
	return strings.TrimSpace(line) + rowEnd
}
