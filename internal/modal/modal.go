// Package modal implements the per-pane overlay variants described in
// spec §4.6: at most one is present at a time, and while present it
// monopolizes key routing until dismissed. Grounded in the original's
// tui/pane.rs Modal enum, ported from a closed Rust sum type to a Go
// interface with one concrete type per variant.
package modal

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/search"
)

// Modal marks the modal variants. nil means no modal is present.
type Modal interface {
	modal()
}

// Sheet is a scrollable detail view of the table's currently selected row.
type Sheet struct {
	Scroll int
}

func (Sheet) modal() {}

// SearchStrategyName names which search.Strategy a SearchBar uses, kept
// alongside the session so SetPattern can restart with the same strategy.
type SearchStrategyName int

const (
	StrategyContain SearchStrategyName = iota
	StrategyFuzzy
)

// SearchBar owns a live search session plus the text input that feeds it.
// Grounded in the original's tui/search_bar.rs, which pairs a ratatui
// input widget with a SearchSession.
type SearchBar struct {
	Strategy SearchStrategyName
	Session  *search.Session
	Input    textinput.Model
}

func (*SearchBar) modal() {}

// NewSearchBar starts a session against df's current rows with strategy.
func NewSearchBar(df dataframe.DataFrame, name SearchStrategyName) *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "search…"
	ti.Focus()

	var strat search.Strategy = search.Contain{}
	if name == StrategyFuzzy {
		strat = search.Skim{}
	}
	return &SearchBar{
		Strategy: name,
		Session:  search.New(df, "", strat),
		Input:    ti,
	}
}

// SetPattern restarts the session against a (possibly unchanged) pattern.
// Grounded in the original's search bar, which recreates its SearchSession
// whenever the input buffer changes — this spec's session has no in-place
// re-pattern operation, so SetPattern cancels the old session and starts a
// fresh one.
func (s *SearchBar) SetPattern(df dataframe.DataFrame, pattern string) {
	if s.Session != nil {
		s.Session.Cancel()
	}
	var strat search.Strategy = search.Contain{}
	if s.Strategy == StrategyFuzzy {
		strat = search.Skim{}
	}
	s.Session = search.New(df, pattern, strat)
}

// Info is the scrollable per-column stats table (spec §4.6: "data-frame
// info").
type Info struct {
	Stats  []dataframe.ColumnStats
	Scroll int
}

func (Info) modal() {}

// InlineQueryKind selects which SQL shape an InlineQuery edits.
type InlineQueryKind int

const (
	QuerySelect InlineQueryKind = iota
	QueryFilter
	QueryOrder
)

func (k InlineQueryKind) String() string {
	switch k {
	case QuerySelect:
		return "select"
	case QueryFilter:
		return "filter"
	case QueryOrder:
		return "order"
	default:
		return "query"
	}
}

// InlineQuery edits the argument half of a SELECT/WHERE/ORDER BY clause
// applied against the pane's data frame (spec §4.10 S/F/O verbs, offered
// here as a modal instead of only the command line). Each kind commits
// through the same ExecuteQuery action but builds its own SQL shape
// (SELECT, WHERE, or ORDER BY), so filter and order do not share a
// commit path.
type InlineQuery struct {
	Kind  InlineQueryKind
	Input textinput.Model
}

func (*InlineQuery) modal() {}

func NewInlineQuery(kind InlineQueryKind) *InlineQuery {
	ti := textinput.New()
	ti.Focus()
	return &InlineQuery{Kind: kind, Input: ti}
}

// GoToLine edits a 1-based row number to jump the selection to.
type GoToLine struct {
	Input textinput.Model
}

func (*GoToLine) modal() {}

func NewGoToLine(currentSelected int) *GoToLine {
	ti := textinput.New()
	ti.Focus()
	ti.SetValue(strconv.Itoa(currentSelected + 1))
	return &GoToLine{Input: ti}
}

// ExportFormat enumerates the writer formats exposed by the export wizard
// (spec §6 Writer interface).
type ExportFormat int

const (
	ExportCSV ExportFormat = iota
	ExportTSV
	ExportJSON
	ExportJSONL
	ExportParquet
	ExportArrow
)

// ExportWizard walks format selection then destination-path entry.
type ExportWizard struct {
	Format      ExportFormat
	Destination textinput.Model
	PickingPath bool
}

func (*ExportWizard) modal() {}

func NewExportWizard() *ExportWizard {
	ti := textinput.New()
	ti.Placeholder = "/path/to/file"
	return &ExportWizard{Destination: ti}
}

// HistogramWizard picks a numeric column to bucket into a histogram.
// Grounded in the original's popups/histogram_wizard.rs, which seeds its
// candidate list from the current data frame's schema.
type HistogramWizard struct {
	Columns  []string
	Selected int
}

func (*HistogramWizard) modal() {}

func NewHistogramWizard(df dataframe.DataFrame) *HistogramWizard {
	var cols []string
	for _, c := range df.Columns() {
		if c.Kind == dataframe.KindInt || c.Kind == dataframe.KindFloat {
			cols = append(cols, c.Name)
		}
	}
	return &HistogramWizard{Columns: cols}
}

// Histogram is a rendered histogram plot: one bucket count per bar.
type Histogram struct {
	Column  string
	Buckets []int
	Counts  []int64
}

func (*Histogram) modal() {}
