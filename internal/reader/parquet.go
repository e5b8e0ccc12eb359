package reader

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// ReadParquet reads a Parquet file's rows as generic maps and re-infers
// column types through the same staged pipeline text-based formats use,
// rather than trusting the Parquet schema verbatim — the original
// likewise re-infers after reading (polars_ext::SafeInferSchema), since a
// column written as one logical type by another tool may still need
// gridview's own widening rules applied when rendered.
func ReadParquet(r io.ReaderAt, size int64, opts Options) (dataframe.DataFrame, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reader: open parquet: %w", err)
	}

	schema := pf.Schema()
	fields := schema.Fields()
	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = f.Name()
	}

	var rows [][]string
	pr := parquet.NewGenericReader[any](r, schema)
	defer pr.Close()

	buf := make([]parquet.Row, 128)
	for {
		n, err := pr.ReadRows(buf)
		for i := 0; i < n; i++ {
			row := buf[i]
			rec := make([]string, len(headers))
			for _, v := range row {
				idx := v.Column()
				if idx < len(rec) {
					rec[idx] = parquetValueString(v)
				}
			}
			rows = append(rows, rec)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			if opts.IgnoreErrors {
				break
			}
			return dataframe.DataFrame{}, fmt.Errorf("reader: read parquet rows: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return frameFromRows(headers, rows, opts.Infer), nil
}

func parquetValueString(v parquet.Value) string {
	if v.IsNull() {
		return ""
	}
	switch v.Kind() {
	case parquet.Boolean:
		if v.Boolean() {
			return "true"
		}
		return "false"
	case parquet.Int32:
		return fmt.Sprint(v.Int32())
	case parquet.Int64:
		return fmt.Sprint(v.Int64())
	case parquet.Float:
		return fmt.Sprint(v.Float())
	case parquet.Double:
		return fmt.Sprint(v.Double())
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}
