package arraytex

// Option configures a single render call.
type Option func(*Config)

// WithConfig replaces all settings with c. Options after it still apply.
func WithConfig(c Config) Option {
	return func(cfg *Config) {
		copier := cfg.copier
		*cfg = c
		if cfg.copier == nil {
			cfg.copier = copier
		}
	}
}

// WithStyle sets the matrix style prefix, e.g. "b" for bmatrix or "p" for
// pmatrix. Ignored by tabular output.
func WithStyle(style string) Option {
	return func(cfg *Config) { cfg.Style = style }
}

// WithNumberFormat renders every cell through spec, a format specifier of
// the form [sign][#][0][width][,][.precision][type] such as ".2f" or ".3e".
func WithNumberFormat(spec string) Option {
	return func(cfg *Config) { cfg.NumberFormat = spec }
}

// WithScientificNotation renders exponents as "m \times 10^{e}" instead of
// "m\mathrm{e}{e}".
func WithScientificNotation(on bool) Option {
	return func(cfg *Config) { cfg.Scientific = on }
}

// WithAlignment broadcasts a to every tabular column.
func WithAlignment(a Alignment) Option {
	return func(cfg *Config) { cfg.Alignment = ColumnAlignment{Broadcast: a} }
}

// WithColumnAlignments sets an explicit alignment per tabular column. With a
// row index the list may include the index column.
func WithColumnAlignments(a ...Alignment) Option {
	return func(cfg *Config) {
		cfg.Alignment = ColumnAlignment{Columns: append(make([]Alignment, 0, len(a)), a...)}
	}
}

// WithColumnNames sets the tabular header labels.
func WithColumnNames(names ...string) Option {
	return func(cfg *Config) { cfg.ColumnNames = append(make([]string, 0, len(names)), names...) }
}

// WithRowIndex prepends a labelled index column to tabular output, one label
// per row.
func WithRowIndex(labels ...string) Option {
	return func(cfg *Config) { cfg.RowIndex = append(make([]string, 0, len(labels)), labels...) }
}

// WithPadding pads cells so the columns of the generated source line up.
func WithPadding(on bool) Option {
	return func(cfg *Config) { cfg.Pad = on }
}

// WithCopier hands every successfully rendered result to c.
func WithCopier(c Copier) Option {
	return func(cfg *Config) { cfg.copier = c }
}

func gatherOptions(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
