package command

import (
	"testing"

	"github.com/espenotterstad/gridview/internal/action"
)

func TestParseQueryProducesExecuteQuery(t *testing.T) {
	act, err := Parse(":Q select 1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	eq, ok := act.(action.ExecuteQuery)
	if !ok || eq.SQL != "select 1" {
		t.Fatalf("got %#v", act)
	}
}

func TestParseFilterBuildsWhereClause(t *testing.T) {
	act, err := Parse(":F id > 2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	eq := act.(action.ExecuteQuery)
	if eq.SQL != "SELECT * FROM _ WHERE id > 2" {
		t.Fatalf("got %q", eq.SQL)
	}
}

func TestParseOrderBuildsOrderByClause(t *testing.T) {
	act, err := Parse(":order name DESC")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	eq := act.(action.ExecuteQuery)
	if eq.SQL != "SELECT * FROM _ ORDER BY name DESC" {
		t.Fatalf("got %q", eq.SQL)
	}
}

func TestParseGotoRejectsNonInteger(t *testing.T) {
	if _, err := Parse(":goto abc"); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestParseUnknownVerbIsError(t *testing.T) {
	if _, err := Parse(":bogus"); err == nil {
		t.Fatal("expected an error for an unknown verb")
	}
}

func TestParseExportRequiresPath(t *testing.T) {
	if _, err := Parse(":export csv"); err == nil {
		t.Fatal("expected an error when the path is missing")
	}
	act, err := Parse(":export csv /tmp/out.csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	exp, ok := act.(action.ExportData)
	if !ok || exp.Destination != "/tmp/out.csv" {
		t.Fatalf("got %#v", act)
	}
}

func TestParseTabSelectIsOneBased(t *testing.T) {
	act, err := Parse(":tab 1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sel := act.(action.TabSelect)
	if sel.Index != 0 {
		t.Fatalf("expected 0-based index 0, got %d", sel.Index)
	}
}

func TestHelpDataFrameListsAllVerbs(t *testing.T) {
	df := HelpDataFrame()
	if df.Height() != len(registry) {
		t.Fatalf("Height: got %d, want %d", df.Height(), len(registry))
	}
}
