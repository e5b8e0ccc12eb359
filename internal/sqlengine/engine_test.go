package sqlengine

import (
	"testing"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

func TestSqlTypeMapping(t *testing.T) {
	cases := map[dataframe.Kind]string{
		dataframe.KindInt:      "INTEGER",
		dataframe.KindFloat:    "REAL",
		dataframe.KindBool:     "BOOLEAN",
		dataframe.KindDate:     "DATETIME",
		dataframe.KindDatetime: "DATETIME",
		dataframe.KindBinary:   "BLOB",
		dataframe.KindString:   "TEXT",
	}
	for kind, want := range cases {
		if got := sqlType(kind); got != want {
			t.Errorf("sqlType(%s): got %q, want %q", kind, got, want)
		}
	}
}

func TestInferResultKindPrefersFirstNonNull(t *testing.T) {
	got := inferResultKind([]any{nil, int64(5), "text"})
	if got != dataframe.KindInt {
		t.Errorf("got %s, want int", got)
	}
}

func TestInferResultKindAllNullIsString(t *testing.T) {
	got := inferResultKind([]any{nil, nil})
	if got != dataframe.KindString {
		t.Errorf("got %s, want string", got)
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := quoteIdent("my table"); got != `"my table"` {
		t.Errorf("got %q", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := &Error{Query: "SELECT 1", Err: errTest{"boom"}}
	if inner.Unwrap().Error() != "boom" {
		t.Errorf("Unwrap mismatch")
	}
	if inner.Error() == "" {
		t.Errorf("Error() must not be empty")
	}
}

type errTest struct{ msg string }

func (e errTest) Error() string { return e.msg }
