package reader

import (
	"encoding/csv"
	"io"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// ReadCSV reads delimiter-separated text (CSV or TSV, depending on
// opts.Delimiter) into a DataFrame. Grounded in the original's
// reader/dsv.rs, which is itself a thin wrapper over a DSV crate; Go's
// stdlib encoding/csv already supports an arbitrary delimiter rune, quote
// handling, and ragged-row tolerance, so no third-party DSV library is
// needed here (the pack carries none for this — see DESIGN.md).
func ReadCSV(r io.Reader, opts Options) (dataframe.DataFrame, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.FieldsPerRecord = -1 // tolerate ragged rows; columns are padded below
	cr.LazyQuotes = true

	var header []string
	var rows [][]string
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if opts.IgnoreErrors {
				continue
			}
			return dataframe.DataFrame{}, err
		}
		if first && opts.HasHeader {
			header = append([]string(nil), rec...)
			first = false
			continue
		}
		first = false
		rows = append(rows, rec)
	}

	width := len(header)
	if width == 0 {
		for _, row := range rows {
			if len(row) > width {
				width = len(row)
			}
		}
		header = syntheticHeaders(width)
	}
	return frameFromRows(header, rows, opts.Infer), nil
}
