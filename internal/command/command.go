// Package command implements C10: parsing a single `:`-prefixed command
// line into an action.Action, plus the help data frame listing every
// verb. Grounded in the original's handler/command.rs Commands registry
// (a Vec<Entry> of prefix/usage/description/parser, flattened into a
// lookup map and separately rendered as a help table).
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/espenotterstad/gridview/internal/action"
	"github.com/espenotterstad/gridview/internal/apperr"
	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/modal"
)

type entry struct {
	short, long string
	usage       string
	description string
	parse       func(arg string) (action.Action, error)
}

var registry = buildRegistry()

func buildRegistry() []entry {
	return []entry{
		{short: "Q", long: "query", usage: ":Q <query>",
			description: "Execute SQL against the anonymous table `_` bound to the current pane",
			parse: func(arg string) (action.Action, error) {
				return action.ExecuteQuery{SQL: arg}, nil
			}},
		{short: "q", long: "quit", usage: ":q",
			description: "Quit gridview",
			parse: func(string) (action.Action, error) { return action.Quit{}, nil }},
		{long: "goto", usage: ":goto <line>",
			description: "Select row <line> (1-based) in the current pane",
			parse: func(arg string) (action.Action, error) {
				n, err := strconv.Atoi(arg)
				if err != nil || n < 1 {
					return nil, fmt.Errorf("goto: expected a positive integer, got %q", arg)
				}
				return action.TableGotoLine{Row: n - 1}, nil
			}},
		{long: "goup", usage: ":goup (page|half|<n>)",
			description: "Move the selection up",
			parse: func(arg string) (action.Action, error) { return parseMove(arg, true) }},
		{long: "godown", usage: ":godown (page|half|<n>)",
			description: "Move the selection down",
			parse: func(arg string) (action.Action, error) { return parseMove(arg, false) }},
		{long: "reset", usage: ":reset",
			description: "Reset the current pane to its original data frame",
			parse: func(string) (action.Action, error) { return action.TableReset{}, nil }},
		{long: "help", usage: ":help",
			description: "Open the help pane",
			parse: func(string) (action.Action, error) { return action.HelpShow{}, nil }},
		{short: "S", long: "select", usage: ":S <column list>",
			description: "Current pane <- SELECT <args> FROM _",
			parse: func(arg string) (action.Action, error) {
				return action.ExecuteQuery{SQL: "SELECT " + arg + " FROM _"}, nil
			}},
		{short: "F", long: "filter", usage: ":F <condition>",
			description: "Current pane <- SELECT * FROM _ WHERE <args>",
			parse: func(arg string) (action.Action, error) {
				return action.ExecuteQuery{SQL: "SELECT * FROM _ WHERE " + arg}, nil
			}},
		{short: "O", long: "order", usage: ":O <order spec>",
			description: "Current pane <- SELECT * FROM _ ORDER BY <args>",
			parse: func(arg string) (action.Action, error) {
				return action.ExecuteQuery{SQL: "SELECT * FROM _ ORDER BY " + arg}, nil
			}},
		{long: "schema", usage: ":schema",
			description: "Switch to the schema view",
			parse: func(string) (action.Action, error) { return action.SwitchToSchema{}, nil }},
		{long: "rand", usage: ":rand",
			description: "Select a uniformly random row in the current pane",
			parse: func(string) (action.Action, error) { return action.TableGotoRandom{}, nil }},
		{long: "view", usage: ":view (table|sheet|switch)",
			description: "Change the current pane's modal",
			parse: parseView},
		{long: "tabn", usage: ":tabn <query or table name>",
			description: "New tab: SELECT * FROM <name> if <arg> names a catalog table, else run <arg> as SQL",
			parse: func(arg string) (action.Action, error) { return action.TabNew{Arg: arg}, nil }},
		{long: "tab", usage: ":tab <n>",
			description: "Select tab <n> (1-based)",
			parse: func(arg string) (action.Action, error) {
				n, err := parsePositive(arg, "tab")
				if err != nil {
					return nil, err
				}
				return action.TabSelect{Index: n - 1}, nil
			}},
		{long: "tabr", usage: ":tabr <n>",
			description: "Remove the tab at index <n> (1-based)",
			parse: func(arg string) (action.Action, error) {
				n, err := parsePositive(arg, "tabr")
				if err != nil {
					return nil, err
				}
				return action.TabRemove{Index: n - 1}, nil
			}},
		{long: "export", usage: ":export (csv|tsv|json|jsonl|parquet|arrow) <path>",
			description: "Write the current pane's data frame to <path>",
			parse: parseExport},
	}
}

func parsePositive(arg, verb string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s: expected a positive integer, got %q", verb, arg)
	}
	return n, nil
}

func parseMove(arg string, up bool) (action.Action, error) {
	var n int
	switch arg {
	case "page":
		n = pageSize
	case "half":
		n = pageSize / 2
	default:
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("expected page, half, or an integer, got %q", arg)
		}
		n = v
	}
	if up {
		return action.TableSelectUp{N: n}, nil
	}
	return action.TableSelectDown{N: n}, nil
}

// pageSize is the line count a bare "page" move covers; the app shell may
// override call sites with the pane's actual rendered row count, this is
// the command-line fallback when no viewport is known yet.
const pageSize = 20

func parseView(arg string) (action.Action, error) {
	switch arg {
	case "table":
		return action.ShowTable{}, nil
	case "sheet":
		return action.ShowSheet{}, nil
	case "switch":
		return action.DismissModal{}, nil // closes the current modal; does not open the sheet
	default:
		return nil, fmt.Errorf("view: expected table, sheet, or switch, got %q", arg)
	}
}

func parseExport(arg string) (action.Action, error) {
	fmtStr, path, found := strings.Cut(arg, " ")
	if !found || path == "" {
		return nil, fmt.Errorf("export: expected a format and a path, got %q", arg)
	}
	var format modal.ExportFormat
	switch fmtStr {
	case "csv":
		format = modal.ExportCSV
	case "tsv":
		format = modal.ExportTSV
	case "json":
		format = modal.ExportJSON
	case "jsonl":
		format = modal.ExportJSONL
	case "parquet":
		format = modal.ExportParquet
	case "arrow":
		format = modal.ExportArrow
	default:
		return nil, fmt.Errorf("export: unsupported format %q (csv, tsv, json, jsonl, parquet, arrow)", fmtStr)
	}
	return action.ExportData{Format: format, Destination: path}, nil
}

// Parse accepts a line beginning with ':' and returns the action it
// produces, or a ParseError for an unknown verb, a missing argument, or a
// failed integer parse (spec §4.10).
func Parse(line string) (action.Action, error) {
	line = strings.TrimPrefix(line, ":")
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	for _, e := range registry {
		if verb == e.short || verb == e.long {
			// A usage that names a <placeholder> requires an argument.
			if arg == "" && strings.Contains(e.usage, "<") {
				return nil, apperr.New(apperr.Parse, fmt.Sprintf("%s: missing argument", verb))
			}
			act, err := e.parse(arg)
			if err != nil {
				return nil, apperr.Wrap(apperr.Parse, "command", err)
			}
			return act, nil
		}
	}
	return nil, apperr.New(apperr.Parse, fmt.Sprintf("unknown command %q", verb))
}

// HelpDataFrame renders the verb registry as a static data frame (spec
// §4.10 "help"), grounded in the original's Commands::into_data_frame.
func HelpDataFrame() dataframe.DataFrame {
	n := len(registry)
	long := make([]dataframe.Value, n)
	short := make([]dataframe.Value, n)
	usage := make([]dataframe.Value, n)
	description := make([]dataframe.Value, n)
	for i, e := range registry {
		long[i] = dataframe.StringValue(":" + e.long)
		if e.short != "" {
			short[i] = dataframe.StringValue(":" + e.short)
		} else {
			short[i] = dataframe.StringValue("-")
		}
		usage[i] = dataframe.StringValue(e.usage)
		description[i] = dataframe.StringValue(e.description)
	}
	df, _ := dataframe.New([]dataframe.Column{
		dataframe.NewColumn("Command", dataframe.KindString, long),
		dataframe.NewColumn("Short Form", dataframe.KindString, short),
		dataframe.NewColumn("Usage", dataframe.KindString, usage),
		dataframe.NewColumn("Description", dataframe.KindString, description),
	})
	return df
}
