package reader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadExcel reads every worksheet in an xlsx workbook into one NamedFrame
// per sheet, the first row treated as the header. Grounded in the
// original's reader/excel.rs, which iterates calamine's worksheets and
// infers schema per sheet after reading every cell as a string.
func ReadExcel(r io.Reader, opts Options) ([]NamedFrame, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("reader: open excel workbook: %w", err)
	}
	defer f.Close()

	var frames []NamedFrame
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reader: read sheet %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		header := rows[0]
		body := rows[1:]
		width := len(header)
		for _, row := range body {
			if len(row) > width {
				width = len(row)
			}
		}
		for len(header) < width {
			header = append(header, fmt.Sprintf("column_%d", len(header)+1))
		}
		df := frameFromRows(header, body, opts.Infer)
		frames = append(frames, NamedFrame{Name: sheet, DataFrame: df})
	}
	return frames, nil
}
