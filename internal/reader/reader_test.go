package reader

import (
	"strings"
	"testing"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

func TestReadCSVInfersHeaderAndTypes(t *testing.T) {
	df, err := ReadCSV(strings.NewReader("id,name\n1,a\n2,b\n"), DefaultOptions())
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if df.Height() != 2 || df.Width() != 2 {
		t.Fatalf("got %dx%d, want 2x2", df.Height(), df.Width())
	}
	col, _ := df.ColumnByName("id")
	if col.Kind != dataframe.KindInt {
		t.Errorf("id column: got %v, want KindInt", col.Kind)
	}
}

func TestReadCSVTSVDelimiter(t *testing.T) {
	opts := DefaultOptions()
	opts.Delimiter = '\t'
	df, err := ReadCSV(strings.NewReader("a\tb\n1\t2\n"), opts)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if df.Width() != 2 {
		t.Fatalf("Width: got %d, want 2", df.Width())
	}
}

func TestReadJSONUnionsKeys(t *testing.T) {
	df, err := ReadJSON(strings.NewReader(`[{"a":1,"b":"x"},{"a":2}]`), DefaultOptions())
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if df.Width() != 2 {
		t.Fatalf("Width: got %d, want 2", df.Width())
	}
	if df.Height() != 2 {
		t.Fatalf("Height: got %d, want 2", df.Height())
	}
}

func TestReadJSONLines(t *testing.T) {
	df, err := ReadJSONLines(strings.NewReader("{\"a\":1}\n{\"a\":2}\n"), DefaultOptions())
	if err != nil {
		t.Fatalf("ReadJSONLines: %v", err)
	}
	if df.Height() != 2 {
		t.Fatalf("Height: got %d, want 2", df.Height())
	}
}

func TestReadFWFWithExplicitWidths(t *testing.T) {
	opts := DefaultOptions()
	opts.Widths = []int{4, 4}
	df, err := ReadFWF(strings.NewReader("id  name\n1   a   \n2   b   \n"), opts)
	if err != nil {
		t.Fatalf("ReadFWF: %v", err)
	}
	if df.Height() != 2 || df.Width() != 2 {
		t.Fatalf("got %dx%d, want 2x2", df.Height(), df.Width())
	}
}

func TestSanitizeNameReplacesInvalidChars(t *testing.T) {
	if got := SanitizeName("my report.v2"); got != "my_report_v2" {
		t.Errorf("SanitizeName: got %q", got)
	}
	if got := SanitizeName("2024-data"); got != "t_2024_data" {
		t.Errorf("SanitizeName: got %q", got)
	}
}

func TestDetectFormatByExtension(t *testing.T) {
	cases := map[string]Format{
		"a.csv":     FormatCSV,
		"a.tsv":     FormatTSV,
		"a.parquet": FormatParquet,
		"a.jsonl":   FormatJSONLines,
		"a.xlsx":    FormatExcel,
	}
	for path, want := range cases {
		if got := DetectFormat(path); got != want {
			t.Errorf("DetectFormat(%q): got %v, want %v", path, got, want)
		}
	}
}
