package arraytex

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Alignment is a LaTeX column specifier such as "l", "c", "r" or "p{2cm}".
type Alignment string

const (
	AlignLeft   Alignment = "l"
	AlignCenter Alignment = "c"
	AlignRight  Alignment = "r"
)

// ColumnAlignment is either a single symbol broadcast to every column or an
// explicit per-column list. A non-nil Columns takes precedence.
type ColumnAlignment struct {
	Broadcast Alignment
	Columns   []Alignment
}

func (c ColumnAlignment) explicit() bool { return c.Columns != nil }

// UnmarshalYAML accepts a scalar (broadcast) or a sequence (per column).
func (c *ColumnAlignment) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var s string
		if err := n.Decode(&s); err != nil {
			return err
		}
		*c = ColumnAlignment{Broadcast: Alignment(s)}
	case yaml.SequenceNode:
		cols := make([]Alignment, 0, len(n.Content))
		if err := n.Decode(&cols); err != nil {
			return err
		}
		*c = ColumnAlignment{Columns: cols}
	default:
		return fmt.Errorf("line %d: alignment must be a symbol or a list of symbols", n.Line)
	}
	return nil
}

// Config holds every rendering setting. Start from [DefaultConfig]; the zero
// value renders a plain "matrix" environment, and tabular columns fall back to
// centred alignment when no broadcast symbol is set.
type Config struct {
	Style        string          `yaml:"style"`
	NumberFormat string          `yaml:"number_format"`
	Scientific   bool            `yaml:"scientific_notation"`
	Alignment    ColumnAlignment `yaml:"alignment"`
	ColumnNames  []string        `yaml:"column_names"`
	RowIndex     []string        `yaml:"row_index"`
	Pad          bool            `yaml:"pad"`

	copier Copier
}

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		Style:     "b",
		Alignment: ColumnAlignment{Broadcast: AlignCenter},
	}
}

// DecodeConfig reads a YAML document on top of [DefaultConfig]. Unknown keys
// are rejected. An empty document yields the defaults.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
