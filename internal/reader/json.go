package reader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// ReadJSON reads a JSON array of flat objects into a DataFrame. Column
// names are the union of keys across all records: each record's new keys
// are appended in alphabetical order, records taken in input order;
// missing keys become empty values for that row, which InferColumn then
// treats as nulls during its scan.
func ReadJSON(r io.Reader, opts Options) (dataframe.DataFrame, error) {
	var records []map[string]any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reader: decode json: %w", err)
	}
	return framesFromRecords(records, opts), nil
}

// ReadJSONLines reads newline-delimited JSON objects, one per line.
func ReadJSONLines(r io.Reader, opts Options) (dataframe.DataFrame, error) {
	var records []map[string]any
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal(line, &rec); err != nil {
			if opts.IgnoreErrors {
				continue
			}
			return dataframe.DataFrame{}, fmt.Errorf("reader: decode json line: %w", err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}
	return framesFromRecords(records, opts), nil
}

func framesFromRecords(records []map[string]any, opts Options) dataframe.DataFrame {
	var headers []string
	seen := map[string]bool{}
	for _, rec := range records {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				headers = append(headers, k)
			}
		}
	}
	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(headers))
		for ci, h := range headers {
			if v, ok := rec[h]; ok && v != nil {
				row[ci] = jsonScalarString(v)
			}
		}
		rows[i] = row
	}
	return frameFromRows(headers, rows, opts.Infer)
}

func jsonScalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
