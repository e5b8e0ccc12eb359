package tablestate

import (
	"math"
	"testing"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

func intFrame(t *testing.T, n int) dataframe.DataFrame {
	t.Helper()
	values := make([]dataframe.Value, n)
	for i := range values {
		values[i] = dataframe.IntValue(int64(i))
	}
	df, err := dataframe.New([]dataframe.Column{dataframe.NewColumn("id", dataframe.KindInt, values)})
	if err != nil {
		t.Fatal(err)
	}
	return df
}

func TestSelectClampsToHeight(t *testing.T) {
	s := New(intFrame(t, 4))
	s.Select(100)
	if s.Selected() != 3 {
		t.Errorf("Selected: got %d, want 3", s.Selected())
	}
	s.Select(-5)
	if s.Selected() != 0 {
		t.Errorf("Selected: got %d, want 0", s.Selected())
	}
}

func TestSelectMaxIntOnEmptyFrameSelectsZero(t *testing.T) {
	s := New(dataframe.Empty())
	s.Select(math.MaxInt)
	if s.Selected() != 0 {
		t.Errorf("Selected: got %d, want 0 on empty frame", s.Selected())
	}
}

func TestSelectLastSelectsFinalRow(t *testing.T) {
	s := New(intFrame(t, 5))
	s.SelectLast()
	if s.Selected() != 4 {
		t.Errorf("Selected: got %d, want 4", s.Selected())
	}
}

func TestScrollLeftAtZeroIsNoop(t *testing.T) {
	s := New(intFrame(t, 1))
	s.ScrollLeft()
	if s.OffsetX() != 0 {
		t.Errorf("OffsetX: got %d, want 0", s.OffsetX())
	}
}

func TestScrollOnlyActiveWhenExpanded(t *testing.T) {
	s := New(intFrame(t, 1))
	s.expanded = false
	s.ScrollRight()
	if s.OffsetX() != 0 {
		t.Errorf("ScrollRight must be a no-op when not expanded")
	}
}

func TestReclampKeepsSelectedRowVisible(t *testing.T) {
	s := New(intFrame(t, 100))
	s.Select(50)
	s.Reclamp(80, 10)
	if s.OffsetY() > s.Selected() || s.Selected() >= s.OffsetY()+10 {
		t.Errorf("selected row %d not visible in [%d, %d)", s.Selected(), s.OffsetY(), s.OffsetY()+10)
	}
}

func twoWideColumnsFrame(t *testing.T) dataframe.DataFrame {
	t.Helper()
	col := func(name string) dataframe.Column {
		return dataframe.NewColumn(name, dataframe.KindInt, []dataframe.Value{dataframe.IntValue(1)})
	}
	df, err := dataframe.New([]dataframe.Column{col("aaaaaaaaaa"), col("bbbbbbbbbb")})
	if err != nil {
		t.Fatal(err)
	}
	return df
}

// TestReclampMaxOffsetXMatchesDocumentedFormula exercises the exact clamp
// DESIGN.md grounds on the original's `totalWidth - viewportWidth +
// widths.len().saturating_sub(1)` (inter-column padding only, no extra
// off-by-one).
func TestReclampMaxOffsetXMatchesDocumentedFormula(t *testing.T) {
	s := New(twoWideColumnsFrame(t))
	s.ScrollEnd()
	s.Reclamp(15, 10)
	if got, want := s.OffsetX(), 6; got != want {
		t.Errorf("OffsetX after ScrollEnd: got %d, want %d (10+10-15+1)", got, want)
	}
}

func TestSetDataFrameResetsOffsets(t *testing.T) {
	s := New(intFrame(t, 100))
	s.Select(50)
	s.Reclamp(80, 10)
	s.SetDataFrame(intFrame(t, 10))
	if s.Selected() != 0 || s.OffsetY() != 0 {
		t.Errorf("SetDataFrame must reset selection/offset, got selected=%d offsetY=%d", s.Selected(), s.OffsetY())
	}
}
