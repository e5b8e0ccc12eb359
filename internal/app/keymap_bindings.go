package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/espenotterstad/gridview/internal/action"
	"github.com/espenotterstad/gridview/internal/keymap"
	"github.com/espenotterstad/gridview/internal/modal"
)

// halfPage and fullPage are the row counts a half/full page jump covers,
// matching the command line's ":goup/:godown half/page" constant so a
// keybind and its command-line equivalent move the selection by the same
// amount.
const (
	halfPage = 10
	fullPage = 20
)

func rune_(r rune) keymap.Binding { return keymap.Binding{Key: tea.KeyRunes, Rune: r} }

// buildRegistry constructs the context tree, grounded directly in the
// original's handler/key.rs binding table (the current, non-legacy one)
// translated onto this port's smaller modal set — TabSidePanel and
// ScatterPlot have no analog here and are dropped.
func buildRegistry() *keymap.Registry {
	r := keymap.NewRegistry()

	bindTable(r)
	bindSchema(r)
	bindSheet(r)
	bindInfo(r)
	bindErrorOverlay(r)
	bindEmpty(r)

	r.SetParent(keymap.Sheet, keymap.Table)
	r.SetParent(keymap.Info, keymap.Table)

	return r
}

func bindTable(r *keymap.Registry) {
	bind := func(b keymap.Binding, make func() keymap.Action) {
		b.Make = make
		r.Bind(keymap.Table, b)
	}

	bind(keymap.Binding{Key: tea.KeyUp}, func() keymap.Action { return action.TableSelectUp{N: 1} })
	bind(rune_('k'), func() keymap.Action { return action.TableSelectUp{N: 1} })
	bind(keymap.Binding{Key: tea.KeyDown}, func() keymap.Action { return action.TableSelectDown{N: 1} })
	bind(rune_('j'), func() keymap.Action { return action.TableSelectDown{N: 1} })

	bind(keymap.Binding{Key: tea.KeyCtrlU}, func() keymap.Action { return action.TableSelectUp{N: halfPage} })
	bind(keymap.Binding{Key: tea.KeyCtrlD}, func() keymap.Action { return action.TableSelectDown{N: halfPage} })
	bind(keymap.Binding{Key: tea.KeyCtrlB}, func() keymap.Action { return action.TableSelectUp{N: fullPage} })
	bind(keymap.Binding{Key: tea.KeyPgUp}, func() keymap.Action { return action.TableSelectUp{N: fullPage} })
	bind(keymap.Binding{Key: tea.KeyCtrlF}, func() keymap.Action { return action.TableSelectDown{N: fullPage} })
	bind(keymap.Binding{Key: tea.KeyPgDown}, func() keymap.Action { return action.TableSelectDown{N: fullPage} })

	bind(rune_('g'), func() keymap.Action { return action.TableSelectFirst{} })
	bind(keymap.Binding{Key: tea.KeyHome}, func() keymap.Action { return action.TableSelectFirst{} })
	bind(rune_('G'), func() keymap.Action { return action.TableSelectLast{} })
	bind(keymap.Binding{Key: tea.KeyEnd}, func() keymap.Action { return action.TableSelectLast{} })

	bind(keymap.Binding{Key: tea.KeyLeft}, func() keymap.Action { return action.TableScrollLeft{} })
	bind(keymap.Binding{Key: tea.KeyRight}, func() keymap.Action { return action.TableScrollRight{} })
	bind(rune_('0'), func() keymap.Action { return action.TableScrollStart{} })
	bind(rune_('$'), func() keymap.Action { return action.TableScrollEnd{} })
	bind(rune_('z'), func() keymap.Action { return action.TableToggleExpansion{} })
	bind(rune_('R'), func() keymap.Action { return action.TableGotoRandom{} })
	bind(keymap.Binding{Key: tea.KeyCtrlR}, func() keymap.Action { return action.TableReset{} })

	bind(keymap.Binding{Key: tea.KeyEnter}, func() keymap.Action { return action.ShowSheet{} })
	bind(rune_('I'), func() keymap.Action { return action.ShowInfo{} })
	bind(rune_('/'), func() keymap.Action { return action.ShowSearch{Strategy: modal.StrategyFuzzy} })
	bind(rune_('?'), func() keymap.Action { return action.ShowSearch{Strategy: modal.StrategyContain} })
	bind(rune_('s'), func() keymap.Action { return action.ShowInlineQuery{Kind: modal.QuerySelect} })
	bind(rune_('f'), func() keymap.Action { return action.ShowInlineQuery{Kind: modal.QueryFilter} })
	bind(rune_('o'), func() keymap.Action { return action.ShowInlineQuery{Kind: modal.QueryOrder} })
	bind(rune_('p'), func() keymap.Action { return action.ShowHistogramWizard{} })
	bind(keymap.Binding{Key: tea.KeyCtrlG}, func() keymap.Action { return action.ShowGoToLine{} })
	bind(rune_('e'), func() keymap.Action { return action.ShowExportWizard{} })

	bind(rune_('H'), func() keymap.Action { return action.TabSelectPrev{} })
	bind(rune_('L'), func() keymap.Action { return action.TabSelectNext{} })
	bind(keymap.Binding{Key: tea.KeyShiftTab}, func() keymap.Action { return action.TabSelectPrev{} })
	bind(keymap.Binding{Key: tea.KeyTab}, func() keymap.Action { return action.TabSelectNext{} })

	bind(rune_('q'), func() keymap.Action { return action.TabRemoveCurrent{} })
	bind(keymap.Binding{Key: tea.KeyCtrlC}, func() keymap.Action { return action.TabRemoveCurrent{} })
	bind(keymap.Binding{Key: tea.KeyF1}, func() keymap.Action { return action.HelpShow{} })
	bind(rune_(':'), func() keymap.Action { return action.ShowPalette{} })

	r.Fallback(keymap.Table, digitGotoFallback)
}

// digitGotoFallback opens the command palette prefilled with "goto N" for
// a bare digit keystroke 1-9, the original's quick row-jump shortcut (spec
// table context fallback — the palette's own Enter handling reuses
// command.Parse to build the real action).
func digitGotoFallback(msg tea.KeyMsg) (keymap.Action, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return nil, false
	}
	d := msg.Runes[0]
	if d < '1' || d > '9' {
		return nil, false
	}
	return action.ShowPalette{Prefill: "goto " + string(d)}, true
}

func bindSchema(r *keymap.Registry) {
	r.Bind(keymap.Schema, keymap.Binding{Key: tea.KeyEsc, Make: func() keymap.Action { return action.SwitchToTabulars{} }})
	r.Bind(keymap.Schema, keymap.Binding{Key: tea.KeyRunes, Rune: 'q', Make: func() keymap.Action { return action.SwitchToTabulars{} }})
	r.Bind(keymap.Schema, keymap.Binding{Key: tea.KeyRunes, Rune: ':', Make: func() keymap.Action { return action.ShowPalette{} }})
	r.Bind(keymap.Schema, keymap.Binding{Key: tea.KeyCtrlC, Make: func() keymap.Action { return action.Quit{} }})
}

func bindSheet(r *keymap.Registry) {
	r.Bind(keymap.Sheet, keymap.Binding{Key: tea.KeyUp, Make: func() keymap.Action { return action.SheetScrollUp{} }})
	r.Bind(keymap.Sheet, keymap.Binding{Key: tea.KeyRunes, Rune: 'k', Make: func() keymap.Action { return action.SheetScrollUp{} }})
	r.Bind(keymap.Sheet, keymap.Binding{Key: tea.KeyDown, Make: func() keymap.Action { return action.SheetScrollDown{} }})
	r.Bind(keymap.Sheet, keymap.Binding{Key: tea.KeyRunes, Rune: 'j', Make: func() keymap.Action { return action.SheetScrollDown{} }})
	r.Bind(keymap.Sheet, keymap.Binding{Key: tea.KeyEsc, Make: func() keymap.Action { return action.ShowTable{} }})
	r.Bind(keymap.Sheet, keymap.Binding{Key: tea.KeyEnter, Make: func() keymap.Action { return action.ShowTable{} }})
	r.Bind(keymap.Sheet, keymap.Binding{Key: tea.KeyRunes, Rune: 'q', Make: func() keymap.Action { return action.ShowTable{} }})
}

func bindInfo(r *keymap.Registry) {
	r.Bind(keymap.Info, keymap.Binding{Key: tea.KeyUp, Make: func() keymap.Action { return action.InfoScrollUp{} }})
	r.Bind(keymap.Info, keymap.Binding{Key: tea.KeyRunes, Rune: 'k', Make: func() keymap.Action { return action.InfoScrollUp{} }})
	r.Bind(keymap.Info, keymap.Binding{Key: tea.KeyDown, Make: func() keymap.Action { return action.InfoScrollDown{} }})
	r.Bind(keymap.Info, keymap.Binding{Key: tea.KeyRunes, Rune: 'j', Make: func() keymap.Action { return action.InfoScrollDown{} }})
	r.Bind(keymap.Info, keymap.Binding{Key: tea.KeyEsc, Make: func() keymap.Action { return action.ShowTable{} }})
	r.Bind(keymap.Info, keymap.Binding{Key: tea.KeyEnter, Make: func() keymap.Action { return action.ShowTable{} }})
	r.Bind(keymap.Info, keymap.Binding{Key: tea.KeyRunes, Rune: 'q', Make: func() keymap.Action { return action.ShowTable{} }})
}

func bindErrorOverlay(r *keymap.Registry) {
	r.Fallback(keymap.ErrorOverlay, func(msg tea.KeyMsg) (keymap.Action, bool) {
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == ':' {
			return action.ShowPalette{}, true
		}
		return action.DismissError{}, true
	})
}

func bindEmpty(r *keymap.Registry) {
	r.Bind(keymap.Empty, keymap.Binding{Key: tea.KeyCtrlC, Make: func() keymap.Action { return action.Quit{} }})
	r.Bind(keymap.Empty, keymap.Binding{Key: tea.KeyRunes, Rune: 'q', Make: func() keymap.Action { return action.Quit{} }})
}
