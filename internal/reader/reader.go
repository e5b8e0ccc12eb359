// Package reader implements the reader half of C6 (spec §6 Reader
// interface): format adapters exposing `named_frames(source) -> []
// (name, data frame)` semantics, realized here as `func(io.Reader,
// Options) (dataframe.DataFrame, error)` for single-table formats and
// functions returning `([]NamedFrame, error)` for container formats that
// can hold more than one table per file: ReadSQLite(path, Options) and
// ReadExcel(io.Reader, Options). Grounded in
// the original's reader/ module (mod.rs's ReadToDataFrame(s) traits).
package reader

import (
	"strconv"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// NamedFrame pairs a sanitized table name with its loaded frame, for
// container formats that can yield more than one table per source
// (SQLite tables, Excel sheets).
type NamedFrame struct {
	Name string
	DataFrame dataframe.DataFrame
}

// Options configures every adapter; fields not meaningful to a given
// format are ignored (e.g. Delimiter for JSON).
type Options struct {
	Delimiter    rune
	Quote        rune
	HasHeader    bool
	IgnoreErrors bool
	Infer        dataframe.InferenceMode

	// FWF-specific.
	Widths          []int
	SeparatorLength int
	FlexibleWidth   bool
}

// DefaultOptions matches the original's CLI defaults: comma-separated,
// double-quoted, header present, safe inference.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
		Quote:     '"',
		HasHeader: true,
		Infer:     dataframe.InferSafe,
	}
}

// frameFromRows builds a DataFrame by inferring each column from its raw
// string values, the shared tail of every text-based adapter (CSV, TSV,
// FWF, JSON, JSON Lines all bottom out here).
func frameFromRows(headers []string, rows [][]string, mode dataframe.InferenceMode) dataframe.DataFrame {
	cols := make([]dataframe.Column, len(headers))
	raw := make([]string, len(rows))
	for ci, name := range headers {
		for ri, row := range rows {
			if ci < len(row) {
				raw[ri] = row[ci]
			} else {
				raw[ri] = ""
			}
		}
		cols[ci] = dataframe.InferColumn(name, append([]string(nil), raw...), mode)
	}
	df, _ := dataframe.New(cols)
	return df
}

func syntheticHeaders(n int) []string {
	headers := make([]string, n)
	for i := range headers {
		headers[i] = "column_" + strconv.Itoa(i+1)
	}
	return headers
}
