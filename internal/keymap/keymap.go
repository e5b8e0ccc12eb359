// Package keymap implements C8: a context-keyed lookup from key event to
// action, with per-context fallbacks and parent-context escalation.
// Grounded in the original's handler/keybind.rs flat StateKey map; the
// context tree and escalation are this spec's generalization of it (the
// original has no escalation — every state is independent).
package keymap

import tea "github.com/charmbracelet/bubbletea"

// Context tags the active UI region for keymap lookup.
type Context int

const (
	Table Context = iota
	Sheet
	Command
	Search
	Schema
	ErrorOverlay
	Empty
	ThemeSelector
	ExportWizard
	GoToLine
	Info
	HistogramWizard
	InlineQuery
	SearchPicker
)

// Action is an opaque payload produced by a binding. The keymap package
// does not know the concrete action type; it is supplied as `any` and type
// asserted by the dispatcher. This avoids an import cycle between keymap
// and action.
type Action any

// Binding is one (key code, modifier set, action) triple. Ctrl-combinations
// are their own tea.KeyType constants (e.g. tea.KeyCtrlU) rather than a
// separate modifier, matching how bubbletea reports them. Alt is the one
// modifier bubbletea exposes as a flag. bubbletea reports no SHIFT flag:
// a shifted character arrives as its own rune, so SHIFT never takes part
// in matching and 'b' and 'B' are distinct Rune bindings.
type Binding struct {
	Key  tea.KeyType
	Rune rune // set when Key == tea.KeyRunes (single-rune bindings only)
	Alt  bool
	Make func() Action
}

type contextEntry struct {
	bindings []Binding
	fallback func(tea.KeyMsg) (Action, bool)
	parent   *Context
}

// Registry is the full context tree.
type Registry struct {
	contexts map[Context]*contextEntry
}

func NewRegistry() *Registry {
	return &Registry{contexts: make(map[Context]*contextEntry)}
}

// Bind registers a binding in ctx.
func (r *Registry) Bind(ctx Context, b Binding) {
	r.entry(ctx).bindings = append(r.entry(ctx).bindings, b)
}

// Fallback sets ctx's fallback closure, consulted when no binding matches.
func (r *Registry) Fallback(ctx Context, fn func(tea.KeyMsg) (Action, bool)) {
	r.entry(ctx).fallback = fn
}

// SetParent establishes ctx's escalation parent (spec §4.8 step 4).
func (r *Registry) SetParent(ctx, parent Context) {
	p := parent
	r.entry(ctx).parent = &p
}

func (r *Registry) entry(ctx Context) *contextEntry {
	e, ok := r.contexts[ctx]
	if !ok {
		e = &contextEntry{}
		r.contexts[ctx] = e
	}
	return e
}

// Resolve looks up the action for (ctx, event) per spec §4.8: exact
// binding match in ctx, else ctx's fallback, else escalate to ctx's
// parent and repeat; if no parent remains, returns (nil, false) (the null
// action).
func (r *Registry) Resolve(ctx Context, msg tea.KeyMsg) (Action, bool) {
	cur := ctx
	for {
		e, ok := r.contexts[cur]
		if ok {
			for _, b := range e.bindings {
				if bindingMatches(b, msg) {
					return b.Make(), true
				}
			}
			if e.fallback != nil {
				if act, matched := e.fallback(msg); matched {
					return act, true
				}
			}
			if e.parent != nil {
				cur = *e.parent
				continue
			}
		}
		return nil, false
	}
}

func bindingMatches(b Binding, msg tea.KeyMsg) bool {
	if b.Key == tea.KeyRunes {
		if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Runes[0] != b.Rune {
			return false
		}
		// Character bindings dominate (ignore) SHIFT; the rune's case already
		// carries it. Alt must still match exactly.
		return msg.Alt == b.Alt
	}
	if msg.Type != b.Key {
		return false
	}
	return msg.Alt == b.Alt
}
