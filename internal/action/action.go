// Package action implements C9: the coarse-grained state-transition
// actions a keybinding or a parsed command can produce, and the single
// dispatcher entry point that applies one. Grounded in the original's
// handler/keybind.rs AppAction set (the current, non-legacy one; see
// spec §9 on the duplicate legacy/current action enums).
package action

import (
	"github.com/espenotterstad/gridview/internal/apperr"
	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/modal"
)

// Action is the marker interface every dispatchable action implements.
type Action interface{ action() }

type base struct{}

func (base) action() {}

// NoAction is a deliberate no-op, distinct from "no action resolved"
// (spec §4.9: "an action whose preconditions do not hold is a no-op, not
// an error").
type NoAction struct{ base }

// DismissError clears any error currently shown on the status bar.
type DismissError struct{ base }

// ShowPalette opens the command palette overlay, prefilled with text.
type ShowPalette struct {
	base
	Prefill string
}

// Quit sets the app's running flag to false.
type Quit struct{ base }

// SwitchToSchema / SwitchToTabulars toggle the app-level view between the
// catalog schema browser and the tab content.
type SwitchToSchema struct{ base }
type SwitchToTabulars struct{ base }

// ExecuteQuery runs sql against the SQL engine with the current pane's
// data frame transiently bound to the reserved name `_`, then replaces
// the current pane's data frame with the result (spec §4.10 Q/S/F/O
// verbs all reduce to this, with the command parser building the SQL).
type ExecuteQuery struct {
	base
	SQL string
}

// TabNew opens a new tab. If Arg names a catalog table, the resulting
// query is `SELECT * FROM <Arg>`; otherwise Arg is executed verbatim as a
// query (spec §4.10 "tabn").
type TabNew struct {
	base
	Arg string
}

// TabSelect selects the 1-based tab N (spec §4.10 "tab"). The command
// parser rejects N<1; Invoke reports N>count as an error.
type TabSelect struct {
	base
	Index int // 0-based
}

// TabRemove removes the 1-based tab N (spec §4.10 "tabr").
type TabRemove struct {
	base
	Index int // 0-based
}

type TabSelectPrev struct{ base }
type TabSelectNext struct{ base }

// TabRemoveCurrent removes the currently selected tab, or quits if it is
// the last one — the original's combined "q" binding (TabRemoveOrQuit).
type TabRemoveCurrent struct{ base }

// TableReset restores the current pane's original data frame.
type TableReset struct{ base }

// TableGotoLine selects the 0-based row i in the current pane.
type TableGotoLine struct {
	base
	Row int
}

type TableGotoRandom struct{ base }

type TableSelectUp struct {
	base
	N int
}
type TableSelectDown struct {
	base
	N int
}
type TableSelectFirst struct{ base }
type TableSelectLast struct{ base }
type TableScrollLeft struct{ base }
type TableScrollRight struct{ base }
type TableScrollStart struct{ base }
type TableScrollEnd struct{ base }
type TableToggleExpansion struct{ base }

// ShowSheet / ShowTable toggle the current pane's modal between the
// row-detail sheet and no modal (table view).
type ShowSheet struct{ base }
type ShowTable struct{ base }

// SheetScrollUp / SheetScrollDown scroll the sheet modal's field list.
type SheetScrollUp struct{ base }
type SheetScrollDown struct{ base }

// InfoScrollUp / InfoScrollDown scroll the info modal's column-stats list.
type InfoScrollUp struct{ base }
type InfoScrollDown struct{ base }

// ShowSearch opens a search bar with the given strategy.
type ShowSearch struct {
	base
	Strategy modal.SearchStrategyName
}

type ShowInfo struct{ base }

type ShowInlineQuery struct {
	base
	Kind modal.InlineQueryKind
}

type ShowGoToLine struct{ base }
type ShowExportWizard struct{ base }
type ShowHistogramWizard struct{ base }

// ShowHistogram replaces a HistogramWizard modal with the rendered plot
// for the chosen column.
type ShowHistogram struct {
	base
	Column string
}

type DismissModal struct{ base }

// HelpShow opens a new tab showing the static help data frame.
type HelpShow struct{ base }

// ExportData writes the current pane's data frame to destination in
// format (spec §6 Writer interface; spec §4.10 "export").
type ExportData struct {
	base
	Format      modal.ExportFormat
	Destination string
}

// replaceDataFrame is an internal follow-up emitted by Invoke itself
// (spec §4.9: "may ... emit a ReplaceTableDataFrame(df) follow-up"); it is
// unexported because nothing outside this package's own Invoke loop ever
// needs to construct one.
type replaceDataFrame struct {
	base
	df dataframe.DataFrame
}

// reportError is the internal follow-up that routes a non-fatal error to
// the status bar (spec §7 propagation policy).
type reportError struct {
	base
	kind apperr.Kind
	msg  string
}
