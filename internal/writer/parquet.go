package writer

import (
	"bytes"

	"github.com/parquet-go/parquet-go"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// renderParquet writes df as a Parquet file. Each row is built as a
// parquet.Row of typed leaf values matching the column's Kind; a dynamic
// schema is derived from the data frame rather than a fixed Go struct,
// since the column set is only known at runtime.
func renderParquet(df dataframe.DataFrame) ([]byte, error) {
	cols := df.Columns()
	group := parquet.Group{}
	for _, col := range cols {
		group[col.Name] = parquetNode(col.Kind)
	}
	schema := parquet.NewSchema("gridview", group)

	var buf bytes.Buffer
	w := parquet.NewGenericWriter[any](&buf, schema)
	for r := 0; r < df.Height(); r++ {
		rec := make(map[string]any, len(cols))
		for _, col := range cols {
			rec[col.Name] = parquetCellValue(col.At(r), col)
		}
		if _, err := w.Write([]any{rec}); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parquetNode(k dataframe.Kind) parquet.Node {
	switch k {
	case dataframe.KindInt:
		return parquet.Optional(parquet.Int(64))
	case dataframe.KindFloat:
		return parquet.Optional(parquet.Leaf(parquet.DoubleType))
	case dataframe.KindBool:
		return parquet.Optional(parquet.Leaf(parquet.BooleanType))
	case dataframe.KindBinary:
		return parquet.Optional(parquet.Leaf(parquet.ByteArrayType))
	default:
		return parquet.Optional(parquet.String())
	}
}

func parquetCellValue(v dataframe.Value, col dataframe.Column) any {
	if v.Null {
		return nil
	}
	switch col.Kind {
	case dataframe.KindInt:
		return v.I
	case dataframe.KindFloat:
		return v.F
	case dataframe.KindBool:
		return v.B
	case dataframe.KindBinary:
		return v.Bin
	default:
		return dataframe.RenderSingleLine(v, col)
	}
}
