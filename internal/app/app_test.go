package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/espenotterstad/gridview/internal/apperr"
	"github.com/espenotterstad/gridview/internal/catalog"
	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/keymap"
	"github.com/espenotterstad/gridview/internal/modal"
	"github.com/espenotterstad/gridview/internal/pane"
	"github.com/espenotterstad/gridview/internal/sqlengine"
)

func idFrame(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df, err := dataframe.New([]dataframe.Column{
		dataframe.NewColumn("id", dataframe.KindInt, []dataframe.Value{
			dataframe.IntValue(1), dataframe.IntValue(2),
		}),
	})
	if err != nil {
		t.Fatal(err)
	}
	return df
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	eng, err := sqlengine.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { eng.Close() })
	return New(catalog.New(), eng)
}

func keyRune(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestInferContextEmptyWhenNoTabs(t *testing.T) {
	if ctx := inferContext(false, false, false, false, nil); ctx != keymap.Empty {
		t.Errorf("got %v, want Empty", ctx)
	}
}

func TestInferContextErrorOverlayTakesPriority(t *testing.T) {
	if ctx := inferContext(true, true, true, true, nil); ctx != keymap.ErrorOverlay {
		t.Errorf("got %v, want ErrorOverlay", ctx)
	}
}

func TestInferContextSheetModal(t *testing.T) {
	if ctx := inferContext(true, false, false, false, modal.Sheet{}); ctx != keymap.Sheet {
		t.Errorf("got %v, want Sheet", ctx)
	}
}

func TestInferContextCommandPalette(t *testing.T) {
	if ctx := inferContext(true, true, false, false, nil); ctx != keymap.Command {
		t.Errorf("got %v, want Command", ctx)
	}
}

func TestQuitKeyStopsProgram(t *testing.T) {
	m := newTestModel(t)
	m.tabs.Add(pane.New(idFrame(t), pane.Origin{Kind: pane.SourceName, Label: "t"}))

	if _, cmd := m.Update(keyRune('q')); cmd == nil {
		t.Fatal("expected a tea.Quit command after removing the last tab")
	}
}

func TestOpenAndCloseCommandPalette(t *testing.T) {
	m := newTestModel(t)
	m.tabs.Add(pane.New(idFrame(t), pane.Origin{Kind: pane.SourceName, Label: "t"}))

	m.Update(keyRune(':'))
	if !m.paletteOpen {
		t.Fatal("expected palette to open")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.paletteOpen {
		t.Fatal("expected palette to close on Esc")
	}
}

func TestGotoDigitFallbackOpensPalettePrefilled(t *testing.T) {
	m := newTestModel(t)
	m.tabs.Add(pane.New(idFrame(t), pane.Origin{Kind: pane.SourceName, Label: "t"}))

	m.Update(keyRune('5'))
	if !m.paletteOpen {
		t.Fatal("expected digit key to open the palette")
	}
	if got := m.palette.Value(); got != "goto 5" {
		t.Errorf("palette value: got %q, want %q", got, "goto 5")
	}
}

func TestSheetModalEnterReturnsToTable(t *testing.T) {
	m := newTestModel(t)
	p := pane.New(idFrame(t), pane.Origin{Kind: pane.SourceName, Label: "t"})
	p.ShowSheet()
	m.tabs.Add(p)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Modal() != nil {
		t.Fatal("expected Enter in the sheet context to dismiss the modal")
	}
}

func TestSearchEscRestoresPreSearchFrame(t *testing.T) {
	m := newTestModel(t)
	p := pane.New(idFrame(t), pane.Origin{Kind: pane.SourceName, Label: "t"})
	m.tabs.Add(p)

	p.ShowSearch(modal.StrategyContain)
	p.SetDataFrame(idFrame(t))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if p.Modal() != nil {
		t.Fatal("expected Esc to dismiss the search modal")
	}
	if p.Table().Height() != 2 {
		t.Fatalf("Height: got %d, want 2 (pre-search frame restored)", p.Table().Height())
	}
}

func TestErrorOverlayColonOpensPaletteAndDismissesError(t *testing.T) {
	m := newTestModel(t)
	m.tabs.Add(pane.New(idFrame(t), pane.Origin{Kind: pane.SourceName, Label: "t"}))
	m.status.ShowError(apperr.IO, "boom")

	m.Update(keyRune(':'))

	if !m.paletteOpen {
		t.Fatal("expected ':' to open the palette from the error overlay")
	}
	if m.status.Active() {
		t.Fatal("expected ':' to dismiss the error overlay")
	}
}

func TestRenderDoesNotPanicWithNoTabs(t *testing.T) {
	m := newTestModel(t)
	m.width, m.height = 80, 24
	_ = m.View()
}

func TestRenderDoesNotPanicWithActivePane(t *testing.T) {
	m := newTestModel(t)
	m.width, m.height = 80, 24
	m.tabs.Add(pane.New(idFrame(t), pane.Origin{Kind: pane.SourceName, Label: "t"}))
	_ = m.View()
}
