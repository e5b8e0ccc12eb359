package search

import (
	"testing"
	"time"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

func frame(t *testing.T, names []string) dataframe.DataFrame {
	t.Helper()
	values := make([]dataframe.Value, len(names))
	for i, n := range names {
		values[i] = dataframe.StringValue(n)
	}
	df, err := dataframe.New([]dataframe.Column{dataframe.NewColumn("name", dataframe.KindString, values)})
	if err != nil {
		t.Fatal(err)
	}
	return df
}

func TestEmptyPatternPublishesOnceVerbatim(t *testing.T) {
	df := frame(t, []string{"alice", "bob", "carol"})
	s := New(df, "", Contain{})
	defer s.Cancel()

	got, ok := s.Latest()
	if !ok {
		t.Fatal("expected an immediate publication for empty pattern")
	}
	if got.Height() != df.Height() {
		t.Errorf("Height: got %d, want %d", got.Height(), df.Height())
	}

	// A second Latest() call must find nothing new: the slot is drained.
	if _, ok := s.Latest(); ok {
		t.Errorf("expected slot to be empty after first take")
	}
}

func TestSubstringSearchFindsMatchingRows(t *testing.T) {
	df := frame(t, []string{"alice", "bob", "alicia"})
	s := New(df, "ali", Contain{})
	defer s.Cancel()

	var result dataframe.DataFrame
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if df2, ok := s.Latest(); ok {
			result = df2
		}
		if result.Height() == 2 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	if result.Height() != 2 {
		t.Fatalf("expected 2 matching rows eventually, got %d", result.Height())
	}
	col, _ := result.ColumnByName("name")
	for i := 0; i < col.Len(); i++ {
		v := dataframe.RenderSingleLine(col.At(i), col)
		if v != "alice" && v != "alicia" {
			t.Errorf("unexpected row in results: %q", v)
		}
	}
}

func TestCancelStopsPublishing(t *testing.T) {
	df := frame(t, []string{"x", "y", "z"})
	s := New(df, "x", Contain{})
	s.Cancel()
	// Draining whatever was already in flight should not panic or hang.
	time.Sleep(50 * time.Millisecond)
	s.Latest()
}

func TestSkimExactMatchScoresMax(t *testing.T) {
	sk := Skim{}
	score, ok := sk.Score("exact", "exact")
	if !ok || score != maxScore {
		t.Errorf("exact match: got (%d, %v), want (%d, true)", score, ok, maxScore)
	}
}

func TestContainCaseInsensitive(t *testing.T) {
	c := Contain{}
	if _, ok := c.Score("Hello World", "world"); !ok {
		t.Errorf("expected case-insensitive substring match")
	}
	if _, ok := c.Score("Hello World", "xyz"); ok {
		t.Errorf("expected no match")
	}
}
