package dataframe

import "time"

// Value is a single cell. Exactly one of the typed fields is meaningful,
// selected by Kind; Null reports the absence of a value regardless of Kind.
type Value struct {
	Kind Kind
	Null bool

	I   int64
	F   float64
	B   bool
	T   time.Time
	S   string
	Bin []byte
	// Cat is the categorical code; the owning column's Dict resolves it to
	// the underlying string.
	Cat int32
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.Null }

func NullValue(k Kind) Value { return Value{Kind: k, Null: true} }

func IntValue(i int64) Value      { return Value{Kind: KindInt, I: i} }
func FloatValue(f float64) Value  { return Value{Kind: KindFloat, F: f} }
func BoolValue(b bool) Value      { return Value{Kind: KindBool, B: b} }
func DateValue(t time.Time) Value { return Value{Kind: KindDate, T: t} }
func DatetimeValue(t time.Time) Value {
	return Value{Kind: KindDatetime, T: t}
}
func StringValue(s string) Value { return Value{Kind: KindString, S: s} }
func BinaryValue(b []byte) Value { return Value{Kind: KindBinary, Bin: b} }
func CategoricalValue(code int32) Value {
	return Value{Kind: KindCategorical, Cat: code}
}
