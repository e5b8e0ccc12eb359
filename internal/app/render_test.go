package app

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestScrolledRowAppliesCharacterOffset(t *testing.T) {
	cells := []string{"aaaaaaaaaa", "bbbbbbbbbb"} // "aaaaaaaaaa bbbbbbbbbb"
	plain := func(int) lipgloss.Style { return lipgloss.NewStyle() }

	if got, want := scrolledRow(cells, 0, 21, plain), "aaaaaaaaaa bbbbbbbbbb"; got != want {
		t.Errorf("offset 0: got %q, want %q", got, want)
	}
	if got, want := scrolledRow(cells, 11, 10, plain), "bbbbbbbbbb"; got != want {
		t.Errorf("offset 11: got %q, want %q", got, want)
	}
	if got, want := scrolledRow(cells, 6, 9, plain), "aaaa bbbb"; got != want {
		t.Errorf("offset 6: got %q, want %q", got, want)
	}
}

func TestScrolledRowPastEndIsEmpty(t *testing.T) {
	cells := []string{"abc"}
	plain := func(int) lipgloss.Style { return lipgloss.NewStyle() }
	if got := scrolledRow(cells, 10, 5, plain); got != "" {
		t.Errorf("got %q, want empty string when offset exceeds row length", got)
	}
}

func TestPadToPadsToDisplayWidth(t *testing.T) {
	if got, want := padTo("ab", 5), "ab   "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := padTo("abcdef", 3), "abcdef"; got != want {
		t.Errorf("padTo must not truncate: got %q, want %q", got, want)
	}
}
