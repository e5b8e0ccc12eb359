// Command gridview is an interactive terminal viewer and SQL query
// environment over tabular data, grounded in the original's main.rs/
// args.rs CLI surface and the teacher's flag-based entry point, rebuilt
// on spf13/cobra for subcommands, man-page generation, and shell
// completion.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/espenotterstad/gridview/internal/app"
	"github.com/espenotterstad/gridview/internal/catalog"
	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/reader"
	"github.com/espenotterstad/gridview/internal/sqlengine"
	"github.com/espenotterstad/gridview/internal/theme"
)

type cliOptions struct {
	format       string
	delimiter    string
	quote        string
	noHeader     bool
	ignoreErrors bool
	infer        string
	widths       string
	themeName    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridview:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "gridview [files...]",
		Short: "Browse and query tabular data in a terminal UI",
		Long: "gridview opens one or more data files (or standard input) as SQL-queryable\n" +
			"tables in an interactive terminal viewer.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, opts)
		},
	}

	root.Flags().StringVar(&opts.format, "format", "auto",
		"input format override (csv, tsv, json, jsonl, parquet, arrow, sqlite, excel, fwf, auto)")
	root.Flags().StringVar(&opts.delimiter, "delimiter", ",", "field delimiter for csv input")
	root.Flags().StringVar(&opts.quote, "quote", `"`, `quote character (not applied: the csv reader always quotes with '"')`)
	root.Flags().BoolVar(&opts.noHeader, "no-header", false, "treat the first row as data, not a header")
	root.Flags().BoolVar(&opts.ignoreErrors, "ignore-errors", false, "skip malformed rows instead of failing")
	root.Flags().StringVar(&opts.infer, "infer", "safe", "column type inference mode: no, fast, full, safe")
	root.Flags().StringVar(&opts.widths, "widths", "", "comma-separated column widths for fixed-width input")
	root.Flags().StringVar(&opts.themeName, "theme", theme.Monokai().Name, "color theme (monokai, argonaut, terminal)")

	root.AddCommand(newManCmd(root), newCompletionCmd(root))
	return root
}

func newManCmd(root *cobra.Command) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doc.GenManTree(root, nil, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(os.Stdout)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}

func run(args []string, opts *cliOptions) error {
	readerOpts, err := buildReaderOptions(opts)
	if err != nil {
		return err
	}
	format, err := parseFormat(opts.format)
	if err != nil {
		return err
	}
	theme.SetCurrent(theme.ByName(opts.themeName))

	cat := catalog.New()
	engine, err := sqlengine.New()
	if err != nil {
		return err
	}
	defer engine.Close()

	frames, err := loadSources(args, format, readerOpts)
	if err != nil {
		return err
	}
	srcKind := catalog.SourceFile
	if len(args) == 0 {
		srcKind = catalog.SourceStdin
	}
	for _, f := range frames {
		name := cat.Register(reader.SanitizeName(f.Name), f.DataFrame, catalog.Source{Kind: srcKind, Path: f.Name})
		if err := engine.Register(name, f.DataFrame); err != nil {
			return fmt.Errorf("registering table %q: %w", name, err)
		}
	}

	m := app.New(cat, engine)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.SetProgram(p)

	_, err = p.Run()
	return err
}

func loadSources(args []string, format reader.Format, opts reader.Options) ([]reader.NamedFrame, error) {
	if len(args) == 0 {
		return reader.LoadStdin(format, opts)
	}
	var out []reader.NamedFrame
	for _, path := range args {
		frames, err := reader.LoadFile(path, format, opts)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		out = append(out, frames...)
	}
	return out, nil
}

func buildReaderOptions(opts *cliOptions) (reader.Options, error) {
	o := reader.DefaultOptions()
	if opts.delimiter != "" {
		o.Delimiter = []rune(opts.delimiter)[0]
	}
	if opts.quote != "" {
		o.Quote = []rune(opts.quote)[0]
	}
	o.HasHeader = !opts.noHeader
	o.IgnoreErrors = opts.ignoreErrors

	switch opts.infer {
	case "no", "none":
		o.Infer = dataframe.InferNone
	case "fast":
		o.Infer = dataframe.InferFast
	case "full":
		o.Infer = dataframe.InferFull
	case "safe", "":
		o.Infer = dataframe.InferSafe
	default:
		return o, fmt.Errorf("unknown --infer mode %q (want no, fast, full, or safe)", opts.infer)
	}

	if opts.widths != "" {
		widths, err := reader.ParseWidths(opts.widths)
		if err != nil {
			return o, fmt.Errorf("--widths: %w", err)
		}
		o.Widths = widths
	}
	return o, nil
}

func parseFormat(s string) (reader.Format, error) {
	switch s {
	case "", "auto":
		return reader.FormatAuto, nil
	case "csv":
		return reader.FormatCSV, nil
	case "tsv":
		return reader.FormatTSV, nil
	case "json":
		return reader.FormatJSON, nil
	case "jsonl":
		return reader.FormatJSONLines, nil
	case "parquet":
		return reader.FormatParquet, nil
	case "arrow":
		return reader.FormatArrow, nil
	case "sqlite":
		return reader.FormatSQLite, nil
	case "excel":
		return reader.FormatExcel, nil
	case "fwf":
		return reader.FormatFWF, nil
	default:
		return 0, fmt.Errorf("unknown --format %q", s)
	}
}
