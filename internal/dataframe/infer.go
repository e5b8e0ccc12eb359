package dataframe

import (
	"strconv"
	"time"
)

// InferenceMode selects how aggressively raw string cells are widened to a
// narrower logical type when a format reader produces string-only columns
// (delimited text, fixed-width). Grounded in the original's staged type
// inference (integer -> float -> boolean -> date -> datetime -> string).
type InferenceMode int

const (
	// InferNone leaves every column as string.
	InferNone InferenceMode = iota
	// InferFast samples a bounded prefix of rows.
	InferFast
	// InferFull scans every row.
	InferFull
	// InferSafe scans every row but never widens a column away from string
	// if even one value fails to parse as the candidate type.
	InferSafe
)

const fastSampleRows = 100

var dateLayouts = []string{"2006-01-02"}
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// InferColumn widens a column of raw strings (KindString, one value per
// row, with empty string treated as null) to the narrowest type that fits,
// per mode.
func InferColumn(name string, raw []string, mode InferenceMode) Column {
	if mode == InferNone {
		return stringColumn(name, raw)
	}

	scan := raw
	if mode == InferFast && len(scan) > fastSampleRows {
		scan = scan[:fastSampleRows]
	}

	for _, kind := range []Kind{KindInt, KindFloat, KindBool, KindDate, KindDatetime} {
		if fitsKind(scan, kind) {
			if mode == InferSafe && !fitsKind(raw, kind) {
				continue
			}
			if col, ok := buildKind(name, raw, kind); ok {
				return col
			}
		}
	}
	return stringColumn(name, raw)
}

func stringColumn(name string, raw []string) Column {
	values := make([]Value, len(raw))
	for i, s := range raw {
		if s == "" {
			values[i] = NullValue(KindString)
			continue
		}
		values[i] = StringValue(s)
	}
	return NewColumn(name, KindString, values)
}

func fitsKind(raw []string, kind Kind) bool {
	seenAny := false
	for _, s := range raw {
		if s == "" {
			continue
		}
		if !parsesAs(s, kind) {
			return false
		}
		seenAny = true
	}
	return seenAny
}

func parsesAs(s string, kind Kind) bool {
	switch kind {
	case KindInt:
		_, err := strconv.ParseInt(s, 10, 64)
		return err == nil
	case KindFloat:
		_, err := strconv.ParseFloat(s, 64)
		return err == nil
	case KindBool:
		_, err := strconv.ParseBool(s)
		return err == nil
	case KindDate:
		return parseTime(s, dateLayouts) != nil
	case KindDatetime:
		return parseTime(s, datetimeLayouts) != nil
	default:
		return false
	}
}

func parseTime(s string, layouts []string) *time.Time {
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return &t
		}
	}
	return nil
}

func buildKind(name string, raw []string, kind Kind) (Column, bool) {
	values := make([]Value, len(raw))
	for i, s := range raw {
		if s == "" {
			values[i] = NullValue(kind)
			continue
		}
		switch kind {
		case KindInt:
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return Column{}, false
			}
			values[i] = IntValue(n)
		case KindFloat:
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Column{}, false
			}
			values[i] = FloatValue(f)
		case KindBool:
			b, err := strconv.ParseBool(s)
			if err != nil {
				return Column{}, false
			}
			values[i] = BoolValue(b)
		case KindDate:
			t := parseTime(s, dateLayouts)
			if t == nil {
				return Column{}, false
			}
			values[i] = DateValue(*t)
		case KindDatetime:
			t := parseTime(s, datetimeLayouts)
			if t == nil {
				return Column{}, false
			}
			values[i] = DatetimeValue(*t)
		}
	}
	return NewColumn(name, kind, values), true
}
