package tabs

import (
	"testing"

	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/pane"
)

func newPane(t *testing.T, n int) *pane.Pane {
	t.Helper()
	values := make([]dataframe.Value, n)
	for i := range values {
		values[i] = dataframe.IntValue(int64(i))
	}
	df, err := dataframe.New([]dataframe.Column{dataframe.NewColumn("id", dataframe.KindInt, values)})
	if err != nil {
		t.Fatal(err)
	}
	return pane.New(df, pane.Origin{Kind: pane.SourceName, Label: "t"})
}

func TestAddSelectsNewTab(t *testing.T) {
	ts := New()
	ts.Add(newPane(t, 1))
	ts.Add(newPane(t, 2))
	if ts.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex: got %d, want 1", ts.SelectedIndex())
	}
}

func TestSelectPrevNextSaturate(t *testing.T) {
	ts := New()
	ts.Add(newPane(t, 1))
	ts.Add(newPane(t, 1))
	ts.Select(0)
	ts.SelectPrev()
	if ts.SelectedIndex() != 0 {
		t.Errorf("SelectPrev must saturate at 0, got %d", ts.SelectedIndex())
	}
	ts.SelectNext()
	ts.SelectNext()
	if ts.SelectedIndex() != 1 {
		t.Errorf("SelectNext must saturate at last index, got %d", ts.SelectedIndex())
	}
}

func TestRemoveClampsSelection(t *testing.T) {
	ts := New()
	ts.Add(newPane(t, 1))
	ts.Add(newPane(t, 1))
	ts.Select(1)
	ts.Remove(1)
	if ts.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", ts.Len())
	}
	if ts.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex after removing the selected tab: got %d, want 0", ts.SelectedIndex())
	}
}

func TestRemoveLastTabLeavesEmpty(t *testing.T) {
	ts := New()
	ts.Add(newPane(t, 1))
	ts.Remove(0)
	if ts.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", ts.Len())
	}
	if _, ok := ts.Current(); ok {
		t.Error("Current must report false on an empty Tabs")
	}
}

func TestCurrentOnEmptyTabs(t *testing.T) {
	ts := New()
	if _, ok := ts.Current(); ok {
		t.Error("expected Current to report false")
	}
}
