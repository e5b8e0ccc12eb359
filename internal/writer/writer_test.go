package writer

import (
	"strings"
	"testing"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

func frame(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df, err := dataframe.New([]dataframe.Column{
		dataframe.NewColumn("id", dataframe.KindInt, []dataframe.Value{
			dataframe.IntValue(1), dataframe.IntValue(2),
		}),
		dataframe.NewColumn("name", dataframe.KindString, []dataframe.Value{
			dataframe.StringValue("a"), dataframe.StringValue("b"),
		}),
	})
	if err != nil {
		t.Fatal(err)
	}
	return df
}

func TestRenderCSVIncludesHeaderWhenConfigured(t *testing.T) {
	b, err := renderCSV(frame(t), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("renderCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines: %q", len(lines), string(b))
	}
	if lines[0] != "id,name" {
		t.Errorf("header: got %q", lines[0])
	}
}

func TestRenderCSVTSVOmitsHeader(t *testing.T) {
	b, err := renderCSV(frame(t), DefaultTSVOptions())
	if err != nil {
		t.Fatalf("renderCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 data rows with no header, got %d lines", len(lines))
	}
}

func TestRenderJSONProducesArrayOfRecords(t *testing.T) {
	b, err := renderJSON(frame(t))
	if err != nil {
		t.Fatalf("renderJSON: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(b)), "[") {
		t.Errorf("expected a JSON array, got %q", string(b))
	}
}

func TestRenderJSONLinesOneObjectPerLine(t *testing.T) {
	b, err := renderJSONLines(frame(t))
	if err != nil {
		t.Fatalf("renderJSONLines: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}
