// Package arraytex renders numeric arrays as LaTeX markup.
//
// Arrays of rank 0 (scalar), 1 (vector) and 2 (rows × columns) are supported.
// The central entry points are [ToMatrix] and [ToTabular], which return the
// markup as a string. [Marshal] and [Write] select the environment with an
// [Env] constant, which suits CLI flags parsed with [ParseEnv].
//
// # Building Arrays
//
// Use [Scalar], [Vector], [Grid] or [New]. Integer element types render as
// integers, float types with the shortest representation that round-trips:
//
//	a, err := arraytex.Grid([][]int{{1, 2, 3}, {4, 5, 6}})
//
// # Matrix
//
// [ToMatrix] wraps the rows in a matrix environment. [WithStyle] selects the
// delimiter style ("b" for bmatrix, "p" for pmatrix, "" for plain matrix):
//
//	\begin{bmatrix}
//	1 & 2 & 3 \\
//	4 & 5 & 6 \\
//	\end{bmatrix}
//
// # Tabular
//
// [ToTabular] produces a booktabs table with a header row. Optional settings:
//
//   - [WithAlignment]: one column specifier for every column (default "c")
//   - [WithColumnAlignments]: one specifier per column
//   - [WithColumnNames]: header labels (default "Col 1".."Col N")
//   - [WithRowIndex]: a leading column of row labels headed "Index"
//
// Output:
//
//	\begin{tabular}{l c c}
//	\toprule
//	Index & Col 1 & Col 2 \\
//	\midrule
//	Row 1 & 1 & 2 \\
//	Row 2 & 3 & 4 \\
//	\bottomrule
//	\end{tabular}
//
// # Number Formats
//
// [WithNumberFormat] applies a format specifier to every cell. The grammar is
// [sign][#][0][width][,][.precision][type] with type one of d, e, E, f, F,
// g, G or %. Exponents are typeset as 1.00\mathrm{e}{-03}; with
// [WithScientificNotation] they become 1.00 \times 10^{-03}.
//
// # Configuration
//
// Settings can also be read from YAML with [DecodeConfig] and applied with
// [WithConfig]:
//
//	style: p
//	number_format: .2f
//	alignment: [l, r, r]
//
// # Clipboard
//
// [WithCopier] hands the rendered markup to a [Copier] after a successful
// render. The returned markup is unchanged.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrDimension]: rank > 2 ([*DimensionError])
//   - [ErrDimensionMismatch]: metadata length disagrees with the array ([*DimensionMismatchError])
//   - [ErrInvalidFormat]: unusable number format ([*FormatError])
//   - [ErrUnsupportedEnv]: unknown environment name
//   - [ErrRagged], [ErrShape]: invalid array construction
//   - [ErrCopy]: the copier failed
package arraytex
