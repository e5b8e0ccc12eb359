package dataframe

import "fmt"

// Column is a single named, typed, contiguous vector of values.
type Column struct {
	Name string
	Kind Kind

	// Dict is the reverse map for KindCategorical columns: Dict[code] is the
	// underlying string. Nil for every other kind.
	Dict []string

	values []Value
}

// NewColumn builds a column from an explicit slice of values. All values
// must share kind (or be null).
func NewColumn(name string, kind Kind, values []Value) Column {
	return Column{Name: name, Kind: kind, values: values}
}

// NewCategoricalColumn builds a categorical column from codes plus the
// reverse-lookup dictionary.
func NewCategoricalColumn(name string, codes []int32, dict []string) Column {
	values := make([]Value, len(codes))
	for i, c := range codes {
		if c < 0 {
			values[i] = NullValue(KindCategorical)
			continue
		}
		values[i] = CategoricalValue(c)
	}
	return Column{Name: name, Kind: KindCategorical, Dict: dict, values: values}
}

func (c Column) Len() int { return len(c.values) }

func (c Column) At(i int) Value { return c.values[i] }

// CategoricalString resolves a categorical value's code through the
// column's dictionary. Returns "" if v is null or out of range.
func (c Column) CategoricalString(v Value) string {
	if v.Null || v.Kind != KindCategorical {
		return ""
	}
	if int(v.Cat) < 0 || int(v.Cat) >= len(c.Dict) {
		return ""
	}
	return c.Dict[v.Cat]
}

// Slice returns a new column containing only the values at the given
// indices, in order. Used by search/SQL materialization to re-select rows.
func (c Column) Slice(indices []int) Column {
	out := make([]Value, len(indices))
	for i, idx := range indices {
		out[i] = c.values[idx]
	}
	return Column{Name: c.Name, Kind: c.Kind, Dict: c.Dict, values: out}
}

func (c Column) String() string {
	return fmt.Sprintf("Column(%s, %s, len=%d)", c.Name, c.Kind, c.Len())
}
