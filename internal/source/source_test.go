package source_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bjaus/arraytex"
	"github.com/bjaus/arraytex/internal/source"
)

func matrixOf(t *testing.T, a arraytex.Array) string {
	t.Helper()
	out, err := arraytex.ToMatrix(a)
	require.NoError(t, err)
	return out
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    source.Format
		wantErr require.ErrorAssertionFunc
	}{
		"json":    {input: "json", want: source.JSON, wantErr: require.NoError},
		"yaml":    {input: "yaml", want: source.YAML, wantErr: require.NoError},
		"yml":     {input: "yml", want: source.YAML, wantErr: require.NoError},
		"upper":   {input: "CSV", want: source.CSV, wantErr: require.NoError},
		"xlsx":    {input: "xlsx", want: source.XLSX, wantErr: require.NoError},
		"unknown": {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := source.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, source.CSV, source.FormatFromPath("data/table.csv"))
	assert.Equal(t, source.YAML, source.FormatFromPath("m.yml"))
	assert.Equal(t, source.XLSX, source.FormatFromPath("book.XLSX"))
	assert.Equal(t, source.JSON, source.FormatFromPath("matrix.txt"))
	assert.Equal(t, source.JSON, source.FormatFromPath("noext"))
	assert.Equal(t, []source.Format{source.JSON, source.YAML, source.CSV, source.XLSX}, source.Formats())
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		shape []int
		isInt bool
		want  string
	}{
		"grid": {
			input: `[[1, 2, 3], [4, 5, 6]]`,
			shape: []int{2, 3},
			isInt: true,
			want:  "\\begin{bmatrix}\n1 & 2 & 3 \\\\\n4 & 5 & 6 \\\\\n\\end{bmatrix}",
		},
		"vector of floats": {
			input: `[1, 2.5]`,
			shape: []int{2},
			isInt: false,
			want:  "\\begin{bmatrix}\n1 & 2.5 \\\\\n\\end{bmatrix}",
		},
		"scalar": {
			input: `7`,
			shape: []int{},
			isInt: true,
			want:  "\\begin{bmatrix}\n7 \\\\\n\\end{bmatrix}",
		},
		"exponent literal": {
			input: `[1e-3]`,
			shape: []int{1},
			isInt: false,
			want:  "\\begin{bmatrix}\n0.001 \\\\\n\\end{bmatrix}",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := source.Decode(strings.NewReader(tt.input), source.JSON, source.Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.shape, got.Array.Shape())
			assert.Equal(t, tt.isInt, got.Array.IsInt())
			assert.Equal(t, tt.want, matrixOf(t, got.Array))
		})
	}
}

func TestDecodeJSONSplitLayout(t *testing.T) {
	t.Parallel()
	input := `{"columns": ["a", "b"], "index": ["x", 2], "data": [[1, 2], [3, 4]]}`
	got, err := source.Decode(strings.NewReader(input), source.JSON, source.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Columns)
	assert.Equal(t, []string{"x", "2"}, got.Index)
	assert.Equal(t, []int{2, 2}, got.Array.Shape())
}

func TestDecodeJSONThreeDimensions(t *testing.T) {
	t.Parallel()
	got, err := source.Decode(strings.NewReader(`[[[1, 2], [3, 4]], [[5, 6], [7, 8]]]`), source.JSON, source.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, got.Array.Rank())

	_, err = arraytex.ToMatrix(got.Array)
	require.ErrorIs(t, err, arraytex.ErrDimension)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input  string
		format source.Format
		target error
	}{
		"ragged rows":        {input: `[[1, 2], [3]]`, format: source.JSON, target: arraytex.ErrRagged},
		"mixed depth":        {input: `[1, [2]]`, format: source.JSON, target: arraytex.ErrRagged},
		"string leaf":        {input: `[1, "two"]`, format: source.JSON, target: source.ErrNotNumeric},
		"bool leaf":          {input: "- true\n", format: source.YAML, target: source.ErrNotNumeric},
		"csv text":           {input: "1,x\n", format: source.CSV, target: source.ErrNotNumeric},
		"csv ragged":         {input: "1,2\n3\n", format: source.CSV, target: arraytex.ErrRagged},
		"unsupported format": {input: "", format: "toml", target: source.ErrUnsupportedFormat},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := source.Decode(strings.NewReader(tt.input), tt.format, source.Options{})
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestDecodeDocumentErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"invalid json":   `[1, 2`,
		"missing data":   `{"columns": ["a"]}`,
		"unknown key":    `{"data": [1], "rows": 1}`,
		"columns scalar": `{"data": [1], "columns": "a"}`,
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := source.Decode(strings.NewReader(input), source.JSON, source.Options{})
			require.Error(t, err)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()
	input := `
columns: [low, high]
data:
  - [1, 2.5]
  - [3, 4]
`
	got, err := source.Decode(strings.NewReader(input), source.YAML, source.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "high"}, got.Columns)
	assert.Nil(t, got.Index)
	assert.False(t, got.Array.IsInt())
	assert.Equal(t, "\\begin{bmatrix}\n1 & 2.5 \\\\\n3 & 4 \\\\\n\\end{bmatrix}", matrixOf(t, got.Array))
}

func TestDecodeCSV(t *testing.T) {
	t.Parallel()
	got, err := source.Decode(strings.NewReader("a, b\n1, 2\n3, 4\n"), source.CSV, source.Options{Header: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Columns)
	assert.True(t, got.Array.IsInt())
	assert.Equal(t, []int{2, 2}, got.Array.Shape())

	got, err = source.Decode(strings.NewReader("0.5\n"), source.CSV, source.Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, got.Array.Shape())
	assert.False(t, got.Array.IsInt())
}

func TestDecodeCSVHeaderOnly(t *testing.T) {
	t.Parallel()
	got, err := source.Decode(strings.NewReader("a,b,c\n"), source.CSV, source.Options{Header: true})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, got.Array.Shape())
}

func workbook(t *testing.T, sheet string, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestDecodeXLSX(t *testing.T) {
	t.Parallel()
	buf := workbook(t, "Sheet1", [][]any{
		{"Low", "High"},
		{1, 200.5},
		{3, 4},
	})
	got, err := source.Decode(buf, source.XLSX, source.Options{Header: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Low", "High"}, got.Columns)
	assert.Equal(t, []int{2, 2}, got.Array.Shape())

	out, err := arraytex.ToTabular(got.Array, arraytex.WithColumnNames(got.Columns...))
	require.NoError(t, err)
	assert.Contains(t, out, `Low & High \\`)
	assert.Contains(t, out, `1 & 200.5 \\`)
}

func TestDecodeXLSXNamedSheet(t *testing.T) {
	t.Parallel()
	buf := workbook(t, "Data", [][]any{{1, 2, 3}})
	got, err := source.Decode(buf, source.XLSX, source.Options{Sheet: "Data"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got.Array.Shape())
	assert.True(t, got.Array.IsInt())
}

func TestDecodeXLSXErrors(t *testing.T) {
	t.Parallel()
	_, err := source.Decode(strings.NewReader("not a workbook"), source.XLSX, source.Options{})
	require.Error(t, err)

	buf := workbook(t, "Sheet1", [][]any{{1, 2}})
	_, err = source.Decode(buf, source.XLSX, source.Options{Sheet: "Missing"})
	require.Error(t, err)
}
