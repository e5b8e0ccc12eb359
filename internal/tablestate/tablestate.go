// Package tablestate implements C5: paging, selection, horizontal scroll,
// and column expansion for a single data frame. Grounded in the original's
// tui/data_frame_table.rs DataFrameTableState, with ratatui's per-frame
// clamping translated into an explicit Reclamp call driven by the
// bubbletea render loop.
package tablestate

import (
	"math"

	"github.com/clipperhouse/displaywidth"
	"github.com/espenotterstad/gridview/internal/dataframe"
)

// State is a single data frame's paging/selection/scroll state.
type State struct {
	df dataframe.DataFrame

	offsetY      int
	offsetX      int
	selected     int
	renderedRows int
	expanded     bool

	widths  []int
	headers []string
}

// New builds state for df with an initial selection at row 0.
func New(df dataframe.DataFrame) *State {
	s := &State{expanded: true}
	s.SetDataFrame(df)
	return s
}

// SetDataFrame replaces the underlying data frame, resetting the vertical
// offset and selection to the top; the horizontal offset is kept and
// clamped by the next Reclamp (spec §4.5: set_data_frame resets to
// original view).
func (s *State) SetDataFrame(df dataframe.DataFrame) {
	s.df = df
	s.offsetY = 0
	s.selected = 0
	s.widths = computeWidths(df)
	s.headers = df.Names()
}

func computeWidths(df dataframe.DataFrame) []int {
	widths := make([]int, df.Width())
	for i, col := range df.Columns() {
		w := displayWidth(col.Name)
		for r := 0; r < col.Len(); r++ {
			if cw := dataframe.DisplayWidth(col.At(r), col); cw > w {
				w = cw
			}
		}
		widths[i] = w
	}
	return widths
}

func displayWidth(s string) int { return displaywidth.String(s) }

func (s *State) DataFrame() dataframe.DataFrame { return s.df }
func (s *State) Headers() []string              { return s.headers }
func (s *State) Widths() []int                  { return s.widths }
func (s *State) Selected() int                  { return s.selected }
func (s *State) OffsetY() int                   { return s.offsetY }
func (s *State) OffsetX() int                   { return s.offsetX }
func (s *State) Expanded() bool                 { return s.expanded }
func (s *State) Height() int                    { return s.df.Height() }

// Select clamps i into [0, height) and sets the selected row. Selecting
// math.MaxInt selects the last row (spec §8 boundary: select(usize::MAX)).
func (s *State) Select(i int) {
	last := s.df.Height() - 1
	if last < 0 {
		last = 0
	}
	if i > last {
		i = last
	}
	if i < 0 {
		i = 0
	}
	s.selected = i
}

func (s *State) SelectUp(n int)   { s.Select(s.selected - n) }
func (s *State) SelectDown(n int) { s.Select(s.selected + n) }
func (s *State) SelectFirst()     { s.Select(0) }
func (s *State) SelectLast()      { s.Select(math.MaxInt) }

func (s *State) ScrollLeft() {
	if s.expanded && s.offsetX > 0 {
		s.offsetX--
	}
}

func (s *State) ScrollRight() {
	if s.expanded {
		s.offsetX++
	}
}

func (s *State) ScrollStart() {
	if s.expanded {
		s.offsetX = 0
	}
}

func (s *State) ScrollEnd() {
	if s.expanded {
		s.offsetX = math.MaxInt
	}
}

func (s *State) ToggleExpansion() { s.expanded = !s.expanded }

// Reclamp re-derives offsetY/offsetX from the current viewport dimensions,
// matching the original's per-frame clamp: the selected row is always
// visible, and the horizontal offset never exceeds total column width minus
// viewport width plus inter-column padding (spec §4.5/§3).
func (s *State) Reclamp(viewportWidth, viewportHeight int) {
	s.renderedRows = viewportHeight
	if s.renderedRows < 0 {
		s.renderedRows = 0
	}

	lowBound := s.selected - maxInt(s.renderedRows-1, 0)
	if lowBound < 0 {
		lowBound = 0
	}
	if s.offsetY < lowBound {
		s.offsetY = lowBound
	}
	if s.offsetY > s.selected {
		s.offsetY = s.selected
	}

	totalWidth := 0
	for _, w := range s.widths {
		totalWidth += w
	}
	maxOffsetX := totalWidth - viewportWidth + maxInt(len(s.widths)-1, 0)
	if maxOffsetX < 0 {
		maxOffsetX = 0
	}
	if s.offsetX > maxOffsetX {
		s.offsetX = maxOffsetX
	}
	if s.offsetX < 0 {
		s.offsetX = 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
