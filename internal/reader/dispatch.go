package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// Format names an explicit format override (spec §6 CLI: "input format
// override").
type Format int

const (
	FormatAuto Format = iota
	FormatCSV
	FormatTSV
	FormatParquet
	FormatArrow
	FormatJSON
	FormatJSONLines
	FormatFWF
	FormatSQLite
	FormatExcel
)

// DetectFormat guesses a format from a file extension, used when no
// explicit override is given (spec §6: format override is optional).
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".tsv":
		return FormatTSV
	case ".parquet":
		return FormatParquet
	case ".arrow", ".ipc", ".arrows":
		return FormatArrow
	case ".json":
		return FormatJSON
	case ".jsonl", ".ndjson":
		return FormatJSONLines
	case ".fwf", ".txt":
		return FormatFWF
	case ".sqlite", ".sqlite3", ".db":
		return FormatSQLite
	case ".xlsx", ".xls", ".xlsm":
		return FormatExcel
	default:
		return FormatCSV
	}
}

// LoadFile reads path under format (or DetectFormat(path) if format is
// FormatAuto) and returns the table(s) it contains, sanitized-name-first.
// Grounded in the original's reader/mod.rs dispatch from CLI args to the
// matching ReadToDataFrame(s) implementation.
func LoadFile(path string, format Format, opts Options) ([]NamedFrame, error) {
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	switch format {
	case FormatSQLite:
		return ReadSQLite(path, opts)
	case FormatExcel:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reader: open %s: %w", path, err)
		}
		defer f.Close()
		return ReadExcel(f, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reader: open %s: %w", path, err)
	}
	defer f.Close()

	base := SanitizeName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

	var df dataframe.DataFrame
	switch format {
	case FormatCSV:
		df, err = ReadCSV(f, opts)
	case FormatTSV:
		o := opts
		o.Delimiter = '\t'
		df, err = ReadCSV(f, o)
	case FormatJSON:
		df, err = ReadJSON(f, opts)
	case FormatJSONLines:
		df, err = ReadJSONLines(f, opts)
	case FormatFWF:
		df, err = ReadFWF(f, opts)
	case FormatParquet:
		info, statErr := f.Stat()
		if statErr != nil {
			return nil, statErr
		}
		df, err = ReadParquet(f, info.Size(), opts)
	case FormatArrow:
		df, err = ReadArrowIPC(f, opts)
	default:
		return nil, fmt.Errorf("reader: unsupported format for %s", path)
	}
	if err != nil {
		return nil, err
	}
	return []NamedFrame{{Name: base, DataFrame: df}}, nil
}

// LoadStdin reads standard input under format, naming the resulting table
// "stdin" (spec §6: stdin is a valid input source).
func LoadStdin(format Format, opts Options) ([]NamedFrame, error) {
	var df dataframe.DataFrame
	var err error
	switch format {
	case FormatTSV:
		o := opts
		o.Delimiter = '\t'
		df, err = ReadCSV(os.Stdin, o)
	case FormatJSON:
		df, err = ReadJSON(os.Stdin, opts)
	case FormatJSONLines:
		df, err = ReadJSONLines(os.Stdin, opts)
	case FormatFWF:
		df, err = ReadFWF(os.Stdin, opts)
	default:
		df, err = ReadCSV(os.Stdin, opts)
	}
	if err != nil {
		return nil, err
	}
	return []NamedFrame{{Name: "stdin", DataFrame: df}}, nil
}

// SanitizeName strips characters that would make a table name an invalid
// SQL identifier, matching the original's behavior of deriving a catalog
// name from a file's base name (spec §6: "a sanitized base ... subject to
// uniquification").
func SanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" {
		return "table"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "t_" + out
	}
	return out
}
