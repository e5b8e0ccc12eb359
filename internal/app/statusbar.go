// Package app implements C11: the root Bubble Tea model wiring the
// keymap, dispatcher, tabs, and status bar together into one running
// program. Grounded in the original's app.rs App struct and its
// infer_state/handle_event loop, adapted onto bubbletea's Init/Update/View
// rather than the original's own render-loop-plus-crossterm-poll.
package app

import "github.com/espenotterstad/gridview/internal/apperr"

// StatusBar is the app-level status line: either idle, showing a
// non-fatal error, or (future) a transient info message. Implements
// action.StatusBar so the dispatcher can route errors into it directly
// (spec §7 propagation policy).
type StatusBar struct {
	kind    apperr.Kind
	message string
	active  bool
}

// ShowError records a non-fatal error for display until dismissed.
func (s *StatusBar) ShowError(kind apperr.Kind, msg string) {
	s.kind = kind
	s.message = msg
	s.active = true
}

// Dismiss clears any error currently shown.
func (s *StatusBar) Dismiss() {
	s.active = false
	s.message = ""
}

// Active reports whether an error is currently displayed.
func (s *StatusBar) Active() bool { return s.active }

// Kind returns the kind of the currently displayed error.
func (s *StatusBar) Kind() apperr.Kind { return s.kind }

// Message returns the currently displayed error text.
func (s *StatusBar) Message() string { return s.message }
