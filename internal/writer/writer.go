// Package writer implements the writer half of C6 (spec §6 Writer
// interface): `write_to_file(destination, df) -> () or fails`. Grounded
// in the original's writer/mod.rs WriteToFile trait and its per-format
// implementers.
package writer

import (
	"fmt"
	"os"

	"github.com/espenotterstad/gridview/internal/clipboard"
	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/modal"
)

// Destination is either a file path or the clipboard (spec §6).
type Destination struct {
	Path      string
	Clipboard bool
}

// Options configures the delimited writers; Header and Quote mirror the
// original's WriteToCsv/WriteToTsv builders. Quote is not applied:
// renderCSV always quotes with '"', whatever Quote holds.
type Options struct {
	Separator rune
	Quote     rune
	Header    bool
}

// DefaultCSVOptions matches spec §6: "CSV (configurable separator/quote/
// header)" with comma/double-quote/header-present defaults.
func DefaultCSVOptions() Options {
	return Options{Separator: ',', Quote: '"', Header: true}
}

// DefaultTSVOptions matches spec §6: "TSV (tab-separated, no header)".
func DefaultTSVOptions() Options {
	return Options{Separator: '\t', Quote: '"', Header: false}
}

// Writer adapts action.Exporter to the concrete format writers below, the
// single entry point the action dispatcher calls (spec §4.9 ExportData).
type Writer struct{}

// Export writes df to destination.Path in format. A destination path of
// "-" or the literal string "clipboard" writes to the clipboard via OSC
// 52 instead of a file.
func (Writer) Export(df dataframe.DataFrame, format modal.ExportFormat, destination string) error {
	dest := Destination{Path: destination}
	if destination == "-" || destination == "clipboard" {
		dest = Destination{Clipboard: true}
	}

	var content []byte
	var err error
	switch format {
	case modal.ExportCSV:
		content, err = renderCSV(df, DefaultCSVOptions())
	case modal.ExportTSV:
		content, err = renderCSV(df, DefaultTSVOptions())
	case modal.ExportJSON:
		content, err = renderJSON(df)
	case modal.ExportJSONL:
		content, err = renderJSONLines(df)
	case modal.ExportParquet:
		content, err = renderParquet(df)
	case modal.ExportArrow:
		content, err = renderArrowIPC(df)
	default:
		return fmt.Errorf("writer: unsupported export format")
	}
	if err != nil {
		return err
	}

	if dest.Clipboard {
		return clipboard.Write(content)
	}
	return os.WriteFile(dest.Path, content, 0o644)
}
