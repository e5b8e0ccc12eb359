package dataframe

import "testing"

func TestRenderSingleLineBlob(t *testing.T) {
	col := NewColumn("payload", KindBinary, nil)
	v := BinaryValue([]byte{1, 2, 3, 4})
	got := RenderSingleLine(v, col)
	want := "Blob (Length: 4)"
	if got != want {
		t.Errorf("RenderSingleLine: got %q, want %q", got, want)
	}
}

func TestRenderMultiLineBlobHexDump(t *testing.T) {
	col := NewColumn("payload", KindBinary, nil)
	v := BinaryValue([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	got := RenderMultiLine(v, col)
	if got == "" {
		t.Fatal("expected non-empty hex dump")
	}
	if got == RenderSingleLine(v, col) {
		t.Errorf("multi-line blob rendering should differ from single-line marker")
	}
}

func TestRenderCategoricalResolvesThroughDict(t *testing.T) {
	col := NewCategoricalColumn("grade", []int32{0, 1, -1}, []string{"A", "B"})
	if got := RenderSingleLine(col.At(0), col); got != "A" {
		t.Errorf("got %q, want A", got)
	}
	if got := RenderSingleLine(col.At(1), col); got != "B" {
		t.Errorf("got %q, want B", got)
	}
	if !col.At(2).IsNull() {
		t.Errorf("code -1 should render null")
	}
}

func TestDataFrameTakeMaterializesRows(t *testing.T) {
	col := NewColumn("id", KindInt, []Value{IntValue(1), IntValue(2), IntValue(3)})
	df, err := New([]Column{col})
	if err != nil {
		t.Fatal(err)
	}
	got := df.Take([]int{2, 0})
	if got.Height() != 2 {
		t.Fatalf("Height: got %d, want 2", got.Height())
	}
	c, _ := got.ColumnByName("id")
	if c.At(0).I != 3 || c.At(1).I != 1 {
		t.Errorf("Take did not reorder rows correctly: %v, %v", c.At(0), c.At(1))
	}
}

func TestInferColumnWidensInt(t *testing.T) {
	col := InferColumn("age", []string{"1", "2", "30"}, InferFull)
	if col.Kind != KindInt {
		t.Fatalf("Kind: got %s, want int", col.Kind)
	}
}

func TestInferColumnSafeKeepsStringOnOneBadValue(t *testing.T) {
	raw := make([]string, 0, fastSampleRows+1)
	for i := 0; i < fastSampleRows; i++ {
		raw = append(raw, "1")
	}
	raw = append(raw, "not-a-number")
	col := InferColumn("x", raw, InferSafe)
	if col.Kind != KindString {
		t.Fatalf("InferSafe: got %s, want string (one bad value beyond fast sample)", col.Kind)
	}
}

func TestInferColumnNoneLeavesString(t *testing.T) {
	col := InferColumn("x", []string{"1", "2"}, InferNone)
	if col.Kind != KindString {
		t.Fatalf("Kind: got %s, want string", col.Kind)
	}
}

func TestComputeStatsMinMax(t *testing.T) {
	col := NewColumn("id", KindInt, []Value{IntValue(30), IntValue(2), IntValue(1)})
	df, err := New([]Column{col})
	if err != nil {
		t.Fatal(err)
	}
	stats := ComputeStats(df)
	if stats[0].Min != "1" || stats[0].Max != "30" {
		t.Errorf("Min/Max: got %q/%q, want 1/30", stats[0].Min, stats[0].Max)
	}
}
