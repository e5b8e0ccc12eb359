package dataframe

import "fmt"

// DataFrame is an ordered sequence of equal-length named columns. It is
// treated as immutable: every mutating operation below returns a new value
// rather than editing in place, matching the contract in spec §3.
type DataFrame struct {
	columns []Column
	height  int
}

// New builds a data frame from columns, which must already be equal length.
func New(columns []Column) (DataFrame, error) {
	h := 0
	if len(columns) > 0 {
		h = columns[0].Len()
	}
	for _, c := range columns {
		if c.Len() != h {
			return DataFrame{}, fmt.Errorf("dataframe: column %q has length %d, want %d", c.Name, c.Len(), h)
		}
	}
	return DataFrame{columns: columns, height: h}, nil
}

// Empty returns a zero-column, zero-row data frame.
func Empty() DataFrame { return DataFrame{} }

func (df DataFrame) Height() int { return df.height }
func (df DataFrame) Width() int  { return len(df.columns) }

func (df DataFrame) Columns() []Column { return df.columns }

func (df DataFrame) Column(i int) Column { return df.columns[i] }

// ColumnByName returns the column with the given name and true, or the zero
// value and false.
func (df DataFrame) ColumnByName(name string) (Column, bool) {
	for _, c := range df.columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Row returns the values of row i across all columns, in column order.
func (df DataFrame) Row(i int) []Value {
	out := make([]Value, len(df.columns))
	for j, c := range df.columns {
		out[j] = c.At(i)
	}
	return out
}

// Take builds a new, materialized data frame containing only the given row
// indices, in the given order. Used by the SQL engine's materialization
// step and by the search engine's rank-ordered publication.
func (df DataFrame) Take(indices []int) DataFrame {
	cols := make([]Column, len(df.columns))
	for i, c := range df.columns {
		cols[i] = c.Slice(indices)
	}
	return DataFrame{columns: cols, height: len(indices)}
}

// Names returns the column names in order.
func (df DataFrame) Names() []string {
	out := make([]string, len(df.columns))
	for i, c := range df.columns {
		out[i] = c.Name
	}
	return out
}
