package app

import (
	"github.com/espenotterstad/gridview/internal/keymap"
	"github.com/espenotterstad/gridview/internal/modal"
)

// inferContext combines the app's view flag, the status bar, the palette,
// and the active pane's modal into a single keymap.Context, mirroring the
// original's App::infer_state combining tabular and status-bar state into
// one AppState used purely for keybind lookup.
func inferContext(hasTabs bool, paletteOpen bool, schema bool, statusActive bool, m modal.Modal) keymap.Context {
	switch {
	case !hasTabs:
		return keymap.Empty
	case statusActive:
		return keymap.ErrorOverlay
	case paletteOpen:
		return keymap.Command
	case schema:
		return keymap.Schema
	}

	switch m.(type) {
	case modal.Sheet:
		return keymap.Sheet
	case *modal.SearchBar:
		return keymap.Search
	case modal.Info:
		return keymap.Info
	case *modal.InlineQuery:
		return keymap.InlineQuery
	case *modal.GoToLine:
		return keymap.GoToLine
	case *modal.ExportWizard:
		return keymap.ExportWizard
	case *modal.HistogramWizard, *modal.Histogram:
		return keymap.HistogramWizard
	default:
		return keymap.Table
	}
}
