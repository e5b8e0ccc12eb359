// Package pane implements C6: one tab's visible content, a data-frame
// table state plus at most one modal overlay. Grounded in the original's
// tui/pane.rs PaneState.
package pane

import (
	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/modal"
	"github.com/espenotterstad/gridview/internal/tablestate"
)

// SourceKind distinguishes a pane's origin, mirroring the original's
// TableType: a named catalog table, an ad hoc query result, or the static
// help table.
type SourceKind int

const (
	SourceHelp SourceKind = iota
	SourceName
	SourceQuery
)

// Origin names where a pane's current data frame came from, for display
// in the tab bar.
type Origin struct {
	Kind  SourceKind
	Label string // table name or the literal query/help text
}

// Pane bundles a table state with an optional modal (spec §4.6).
type Pane struct {
	table  *tablestate.State
	modal  modal.Modal
	origin Origin

	// original is the data frame the pane was created from, restored by
	// Reset (spec §4.10 "reset" verb / end-to-end scenario 2).
	original dataframe.DataFrame

	// preSearch is the data frame in place when the active search bar was
	// opened, restored by CancelSearch (spec §8 end-to-end scenario 3).
	preSearch dataframe.DataFrame
}

// New builds a pane showing df, tagged with origin for the tab bar.
func New(df dataframe.DataFrame, origin Origin) *Pane {
	return &Pane{
		table:    tablestate.New(df),
		origin:   origin,
		original: df,
	}
}

func (p *Pane) Table() *tablestate.State { return p.table }
func (p *Pane) Origin() Origin           { return p.origin }
func (p *Pane) Modal() modal.Modal       { return p.modal }

// SetDataFrame replaces the pane's current table content without touching
// the original snapshot used by Reset.
func (p *Pane) SetDataFrame(df dataframe.DataFrame) {
	p.table.SetDataFrame(df)
}

// Reset restores the pane to the data frame it was created with (spec
// §4.10 "reset").
func (p *Pane) Reset() {
	p.table.SetDataFrame(p.original)
}

// Tick polls the search session, if the active modal is a search bar, and
// swaps in any newly published data frame (spec §4.6 "Tick").
func (p *Pane) Tick() {
	if sb, ok := p.modal.(*modal.SearchBar); ok {
		if df, ok := sb.Session.Latest(); ok {
			p.table.SetDataFrame(df)
		}
	}
}

// ShowSheet opens the row-detail modal.
func (p *Pane) ShowSheet() { p.modal = modal.Sheet{} }

// ShowSearch opens a search bar against the pane's current data frame,
// remembering that frame so CancelSearch can restore it.
func (p *Pane) ShowSearch(strategy modal.SearchStrategyName) {
	p.preSearch = p.table.DataFrame()
	p.modal = modal.NewSearchBar(p.table.DataFrame(), strategy)
}

// CancelSearch dismisses an active search bar and restores the data frame
// the pane had before the search began, cancelling the live session so its
// scoring goroutine exits at its next poll (spec §4.4 Cancellation
// contract, §8 end-to-end scenario 3). A no-op if the active modal isn't a
// search bar.
func (p *Pane) CancelSearch() {
	if _, ok := p.modal.(*modal.SearchBar); ok {
		p.table.SetDataFrame(p.preSearch)
		p.DismissModal()
	}
}

// ShowInfo opens the per-column stats modal.
func (p *Pane) ShowInfo() {
	p.modal = modal.Info{Stats: dataframe.ComputeStats(p.table.DataFrame())}
}

// ShowInlineQuery opens a SELECT/WHERE/ORDER BY argument editor.
func (p *Pane) ShowInlineQuery(kind modal.InlineQueryKind) {
	p.modal = modal.NewInlineQuery(kind)
}

// ShowGoToLine opens a 1-based row-jump input, pre-filled with the current
// selection.
func (p *Pane) ShowGoToLine() {
	p.modal = modal.NewGoToLine(p.table.Selected())
}

// ShowExportWizard opens the format/destination export modal.
func (p *Pane) ShowExportWizard() { p.modal = modal.NewExportWizard() }

// ShowHistogramWizard opens the numeric-column picker for a histogram.
func (p *Pane) ShowHistogramWizard() {
	p.modal = modal.NewHistogramWizard(p.table.DataFrame())
}

// ShowHistogram replaces the wizard with the rendered plot.
func (p *Pane) ShowHistogram(h *modal.Histogram) { p.modal = h }

// AdjustSheetScroll moves the sheet modal's field-scroll offset by delta,
// clamped at zero. A no-op if the active modal isn't a sheet. Sheet is a
// value type (not a pointer receiver), so its Scroll field can't be
// mutated through the stored interface value directly; this copies it out,
// adjusts, and writes it back.
func (p *Pane) AdjustSheetScroll(delta int) {
	sh, ok := p.modal.(modal.Sheet)
	if !ok {
		return
	}
	sh.Scroll += delta
	if sh.Scroll < 0 {
		sh.Scroll = 0
	}
	p.modal = sh
}

// AdjustInfoScroll moves the info modal's scroll offset by delta, clamped
// at zero and the number of stats rows. A no-op if the active modal isn't
// the info table.
func (p *Pane) AdjustInfoScroll(delta int) {
	in, ok := p.modal.(modal.Info)
	if !ok {
		return
	}
	in.Scroll += delta
	if in.Scroll < 0 {
		in.Scroll = 0
	}
	if max := len(in.Stats) - 1; max >= 0 && in.Scroll > max {
		in.Scroll = max
	}
	p.modal = in
}

// ModalTake consumes and returns the current modal, leaving none (spec
// §4.6 "modal_take").
func (p *Pane) ModalTake() modal.Modal {
	m := p.modal
	p.modal = nil
	return m
}

// DismissModal clears the modal without returning it, cancelling any live
// search session first so its scoring goroutine exits at its next poll
// (spec §4.4 Cancellation contract) instead of leaking past the bar's
// closing — Go does not cancel a goroutine just because its handle is
// dropped.
func (p *Pane) DismissModal() {
	if sb, ok := p.modal.(*modal.SearchBar); ok {
		sb.Session.Cancel()
	}
	p.modal = nil
}
