// Package dataframe implements the columnar data model shared by every
// other component: typed columns, an immutable data frame value, per-column
// statistics, and cell rendering.
package dataframe

import "fmt"

// Kind is a column's logical type.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
	KindDatetime
	KindString
	KindBinary
	KindCategorical
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindDatetime:
		return "datetime"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindCategorical:
		return "categorical"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Orderable reports whether values of this kind support min/max comparison.
func (k Kind) Orderable() bool {
	switch k {
	case KindInt, KindFloat, KindBool, KindDate, KindDatetime, KindString, KindCategorical:
		return true
	default:
		return false
	}
}
