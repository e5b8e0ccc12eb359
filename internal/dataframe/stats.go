package dataframe

import "strconv"

// ColumnStats holds the per-column metadata the catalog surfaces in schema
// views: logical type, estimated byte size, null count, and (for orderable
// types) rendered min/max.
type ColumnStats struct {
	Name      string
	Kind      Kind
	SizeBytes int64
	NullCount int
	Min       string
	Max       string
	HasMinMax bool
}

// ComputeStats derives ColumnStats for every column of df.
func ComputeStats(df DataFrame) []ColumnStats {
	out := make([]ColumnStats, df.Width())
	for i, col := range df.Columns() {
		out[i] = computeColumnStats(col)
	}
	return out
}

func computeColumnStats(col Column) ColumnStats {
	s := ColumnStats{Name: col.Name, Kind: col.Kind}
	var min, max string
	haveMinMax := false

	for i := 0; i < col.Len(); i++ {
		v := col.At(i)
		s.SizeBytes += valueSize(v)
		if v.Null {
			s.NullCount++
			continue
		}
		if !col.Kind.Orderable() {
			continue
		}
		rendered := RenderSingleLine(v, col)
		if !haveMinMax {
			min, max = rendered, rendered
			haveMinMax = true
			continue
		}
		if lessValue(col.Kind, rendered, min) {
			min = rendered
		}
		if lessValue(col.Kind, max, rendered) {
			max = rendered
		}
	}

	s.Min, s.Max, s.HasMinMax = min, max, haveMinMax
	return s
}

// lessValue compares two already-rendered strings as the underlying kind
// would order them, so numeric columns don't sort lexically ("10" < "9").
func lessValue(k Kind, a, b string) bool {
	switch k {
	case KindInt, KindFloat, KindDate, KindDatetime:
		af, aok := parseOrderableFloat(a)
		bf, bok := parseOrderableFloat(b)
		if aok && bok {
			return af < bf
		}
	}
	return a < b
}

func parseOrderableFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func valueSize(v Value) int64 {
	switch v.Kind {
	case KindInt, KindFloat, KindBool, KindDate, KindDatetime, KindCategorical:
		return 8
	case KindString:
		return int64(len(v.S))
	case KindBinary:
		return int64(len(v.Bin))
	default:
		return 0
	}
}
