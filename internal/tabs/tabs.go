// Package tabs implements C7: an ordered collection of panes with a
// selected index. Grounded in the original's tui/tab.rs TabState, a Vec
// of content plus an index.
package tabs

import "github.com/espenotterstad/gridview/internal/pane"

// Tabs is the ordered pane collection (spec §4.7, invariants in §3/§8:
// selected index ∈ [0, len) whenever len > 0).
type Tabs struct {
	panes    []*pane.Pane
	selected int
}

func New() *Tabs { return &Tabs{} }

func (t *Tabs) Len() int { return len(t.panes) }

// Add appends p and selects it, matching the end-to-end scenarios in spec
// §8 where ":tabn" both creates and switches to the new tab.
func (t *Tabs) Add(p *pane.Pane) {
	t.panes = append(t.panes, p)
	t.selected = len(t.panes) - 1
}

// Remove deletes the pane at i. If the removed pane was selected or
// preceded the selection, the selected index is re-clamped into range.
// Removing the only remaining tab leaves an empty Tabs (spec §8 boundary:
// "removing the last tab when only one exists is equivalent to :quit" —
// the app shell observes Len()==0 and quits, not this package).
func (t *Tabs) Remove(i int) {
	if i < 0 || i >= len(t.panes) {
		return
	}
	t.panes = append(t.panes[:i], t.panes[i+1:]...)
	if t.selected >= len(t.panes) {
		t.selected = len(t.panes) - 1
	}
	if t.selected < 0 {
		t.selected = 0
	}
}

// Select sets the selected index, clamped into [0, len).
func (t *Tabs) Select(i int) {
	if len(t.panes) == 0 {
		t.selected = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t.panes) {
		i = len(t.panes) - 1
	}
	t.selected = i
}

// SelectPrev moves the selection left, saturating at 0 (spec §8 scenario
// 4: "saturating", not wrapping).
func (t *Tabs) SelectPrev() {
	if t.selected > 0 {
		t.selected--
	}
}

// SelectNext moves the selection right, saturating at the last tab.
func (t *Tabs) SelectNext() {
	if t.selected < len(t.panes)-1 {
		t.selected++
	}
}

func (t *Tabs) SelectedIndex() int { return t.selected }

// Current returns the selected pane, or (nil, false) if there are no tabs.
func (t *Tabs) Current() (*pane.Pane, bool) {
	if len(t.panes) == 0 {
		return nil, false
	}
	return t.panes[t.selected], true
}

// At returns the pane at i, or (nil, false) if out of range.
func (t *Tabs) At(i int) (*pane.Pane, bool) {
	if i < 0 || i >= len(t.panes) {
		return nil, false
	}
	return t.panes[i], true
}

// All returns the panes in positional (insertion-modulo-removal) order.
func (t *Tabs) All() []*pane.Pane { return t.panes }

// Tick propagates the tick to the selected pane.
func (t *Tabs) Tick() {
	if p, ok := t.Current(); ok {
		p.Tick()
	}
}
