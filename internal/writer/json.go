package writer

import (
	"bytes"
	"encoding/json"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// renderJSON writes df as a JSON array of objects (spec §6: "JSON (array
// of records)").
func renderJSON(df dataframe.DataFrame) ([]byte, error) {
	records := toRecords(df)
	return json.Marshal(records)
}

// renderJSONLines writes df as newline-delimited JSON objects (spec §6:
// "JSON Lines").
func renderJSONLines(df dataframe.DataFrame) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, rec := range toRecords(df) {
		if err := enc.Encode(rec); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func toRecords(df dataframe.DataFrame) []map[string]any {
	cols := df.Columns()
	records := make([]map[string]any, df.Height())
	for r := 0; r < df.Height(); r++ {
		rec := make(map[string]any, len(cols))
		for _, col := range cols {
			v := col.At(r)
			rec[col.Name] = jsonCellValue(v, col)
		}
		records[r] = rec
	}
	return records
}

func jsonCellValue(v dataframe.Value, col dataframe.Column) any {
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
	default:
		return dataframe.RenderSingleLine(v, col)
	}
}
