package writer

import (
	"bytes"
	"encoding/csv"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// renderCSV writes df using stdlib encoding/csv, configured by opts. No
// ecosystem library in the example pack improves on the stdlib CSV
// writer for this (see DESIGN.md); encoding/csv already supports a custom
// separator, which covers both CSV and TSV output from one code path.
func renderCSV(df dataframe.DataFrame, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if opts.Separator != 0 {
		w.Comma = opts.Separator
	}

	if opts.Header {
		if err := w.Write(df.Names()); err != nil {
			return nil, err
		}
	}
	cols := df.Columns()
	for r := 0; r < df.Height(); r++ {
		row := make([]string, len(cols))
		for c, col := range cols {
			row[c] = dataframe.RenderSingleLine(col.At(r), col)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
