package reader

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// ReadArrowIPC reads an Arrow IPC stream (or file) into a DataFrame,
// re-inferring types from each column's string representation rather
// than mapping Arrow's type system onto Kind 1:1 — the same
// re-infer-after-read policy ReadParquet uses, grounded in the original's
// schema normalization after any non-CSV read.
func ReadArrowIPC(r io.Reader, opts Options) (dataframe.DataFrame, error) {
	reader, err := ipc.NewReader(r, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reader: open arrow ipc: %w", err)
	}
	defer reader.Release()

	schema := reader.Schema()
	headers := make([]string, schema.NumFields())
	for i, f := range schema.Fields() {
		headers[i] = f.Name
	}

	var rows [][]string
	for reader.Next() {
		rec := reader.Record()
		nrows := int(rec.NumRows())
		for ri := 0; ri < nrows; ri++ {
			row := make([]string, len(headers))
			for ci := 0; ci < int(rec.NumCols()); ci++ {
				row[ci] = arrowCellString(rec.Column(ci), ri)
			}
			rows = append(rows, row)
		}
	}
	if err := reader.Err(); err != nil && err != io.EOF {
		return dataframe.DataFrame{}, fmt.Errorf("reader: read arrow record batch: %w", err)
	}
	return frameFromRows(headers, rows, opts.Infer), nil
}

func arrowCellString(col arrow.Array, i int) string {
	if col.IsNull(i) {
		return ""
	}
	switch c := col.(type) {
	case *array.String:
		return c.Value(i)
	case *array.Int64:
		return fmt.Sprint(c.Value(i))
	case *array.Int32:
		return fmt.Sprint(c.Value(i))
	case *array.Float64:
		return fmt.Sprint(c.Value(i))
	case *array.Boolean:
		return fmt.Sprint(c.Value(i))
	case *array.Binary:
		return string(c.Value(i))
	default:
		return fmt.Sprint(col.GetOneForMarshal(i))
	}
}
