package writer

import (
	"bytes"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// renderArrowIPC writes df as a single Arrow IPC stream record batch.
// Every column is materialized as a string array regardless of Kind;
// gridview's Kind/Value model is display-oriented (it already renders
// dates, categoricals, and blobs to strings for the table view), so
// round-tripping through Arrow's richer type system would not preserve
// any information this format doesn't already decide to flatten.
func renderArrowIPC(df dataframe.DataFrame) ([]byte, error) {
	pool := memory.NewGoAllocator()
	cols := df.Columns()

	fields := make([]arrow.Field, len(cols))
	arrays := make([]arrow.Array, len(cols))
	for i, col := range cols {
		fields[i] = arrow.Field{Name: col.Name, Type: arrow.BinaryTypes.String, Nullable: true}
		b := array.NewStringBuilder(pool)
		for r := 0; r < col.Len(); r++ {
			v := col.At(r)
			if v.Null {
				b.AppendNull()
				continue
			}
			b.Append(dataframe.RenderSingleLine(v, col))
		}
		arrays[i] = b.NewArray()
		b.Release()
	}
	schema := arrow.NewSchema(fields, nil)
	rec := array.NewRecord(schema, arrays, int64(df.Height()))
	defer rec.Release()
	for _, a := range arrays {
		a.Release()
	}

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, ipc.WithSchema(schema), ipc.WithAllocator(pool))
	if err := w.Write(rec); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
