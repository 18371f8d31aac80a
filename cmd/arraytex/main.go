// Package main provides the CLI entry point for arraytex.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/arraytex"
	"github.com/bjaus/arraytex/internal/clipboard"
	"github.com/bjaus/arraytex/internal/source"
)

type options struct {
	as         string
	style      string
	format     string
	scientific bool
	align      []string
	columns    []string
	index      []string
	pad        bool
	input      string
	sheet      string
	header     bool
	config     string
	clip       bool
	verbose    bool
}

func main() {
	if err := newRootCmd(clipboard.System{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(copier arraytex.Copier) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "arraytex [file]",
		Short: "Render a numeric array as LaTeX",
		Long: `arraytex reads a numeric array (JSON, YAML, CSV or XLSX) from a file or
stdin and prints it as a LaTeX matrix or booktabs tabular environment.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &o, copier)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.as, "as", string(arraytex.EnvMatrix), "Output environment: matrix or tabular")
	f.StringVar(&o.style, "style", "b", "Matrix style prefix (b, p, v, B, V or empty)")
	f.StringVar(&o.format, "format", "", "Number format, e.g. .2f or .3e")
	f.BoolVar(&o.scientific, "sci", false, `Typeset exponents as "\times 10^{n}"`)
	f.StringSliceVar(&o.align, "align", nil, "Column alignment; one value applies to every column")
	f.StringSliceVar(&o.columns, "columns", nil, "Tabular column names")
	f.StringSliceVar(&o.index, "index", nil, "Tabular row labels")
	f.BoolVar(&o.pad, "pad", false, "Pad cells so source columns line up")
	f.StringVar(&o.input, "input", "", "Input format: json, yaml, csv or xlsx (default: from file extension)")
	f.StringVar(&o.sheet, "sheet", "", "XLSX worksheet (default: first sheet)")
	f.BoolVar(&o.header, "header", false, "Use the first CSV/XLSX row as column names")
	f.StringVar(&o.config, "config", "", "YAML file with default settings")
	f.BoolVar(&o.clip, "clip", false, "Copy the output to the clipboard")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Log debug details to stderr")
	return cmd
}

func run(cmd *cobra.Command, args []string, o *options, copier arraytex.Copier) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	env, err := arraytex.ParseEnv(o.as)
	if err != nil {
		return err
	}

	cfg := arraytex.DefaultConfig()
	if o.config != "" {
		if cfg, err = loadConfig(o.config); err != nil {
			return err
		}
		logger.Debug("loaded config", "path", o.config)
	}

	table, err := readInput(cmd.InOrStdin(), args, o)
	if err != nil {
		return err
	}
	logger.Debug("decoded input", "shape", table.Array.Shape(), "integer", table.Array.IsInt())

	opts := []arraytex.Option{arraytex.WithConfig(cfg)}
	if table.Columns != nil {
		opts = append(opts, arraytex.WithColumnNames(table.Columns...))
	}
	if table.Index != nil {
		opts = append(opts, arraytex.WithRowIndex(table.Index...))
	}
	opts = append(opts, flagOptions(cmd, o)...)
	if o.clip {
		opts = append(opts, arraytex.WithCopier(copier))
	}

	if err := arraytex.Write(cmd.OutOrStdout(), env, table.Array, opts...); err != nil {
		return err
	}
	if o.clip {
		logger.Info("copied to clipboard")
	}
	return nil
}

// flagOptions returns options for the flags set on the command line, which
// take precedence over the config file and input labels.
func flagOptions(cmd *cobra.Command, o *options) []arraytex.Option {
	changed := cmd.Flags().Changed
	var opts []arraytex.Option
	if changed("style") {
		opts = append(opts, arraytex.WithStyle(o.style))
	}
	if changed("format") {
		opts = append(opts, arraytex.WithNumberFormat(o.format))
	}
	if changed("sci") {
		opts = append(opts, arraytex.WithScientificNotation(o.scientific))
	}
	if changed("pad") {
		opts = append(opts, arraytex.WithPadding(o.pad))
	}
	if changed("align") {
		if len(o.align) == 1 {
			opts = append(opts, arraytex.WithAlignment(arraytex.Alignment(o.align[0])))
		} else {
			aligns := make([]arraytex.Alignment, len(o.align))
			for i, a := range o.align {
				aligns[i] = arraytex.Alignment(a)
			}
			opts = append(opts, arraytex.WithColumnAlignments(aligns...))
		}
	}
	if changed("columns") {
		opts = append(opts, arraytex.WithColumnNames(o.columns...))
	}
	if changed("index") {
		opts = append(opts, arraytex.WithRowIndex(o.index...))
	}
	return opts
}

func loadConfig(path string) (arraytex.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return arraytex.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return arraytex.DecodeConfig(f)
}

func readInput(stdin io.Reader, args []string, o *options) (source.Table, error) {
	path := ""
	if len(args) == 1 && args[0] != "-" {
		path = args[0]
	}

	format := source.JSON
	switch {
	case o.input != "":
		f, err := source.ParseFormat(o.input)
		if err != nil {
			return source.Table{}, err
		}
		format = f
	case path != "":
		format = source.FormatFromPath(path)
	}

	r := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return source.Table{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return source.Decode(r, format, source.Options{Sheet: o.sheet, Header: o.header})
}
