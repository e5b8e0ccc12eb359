package app

import (
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/espenotterstad/gridview/internal/action"
	"github.com/espenotterstad/gridview/internal/apperr"
	"github.com/espenotterstad/gridview/internal/catalog"
	"github.com/espenotterstad/gridview/internal/command"
	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/editor"
	"github.com/espenotterstad/gridview/internal/keymap"
	"github.com/espenotterstad/gridview/internal/modal"
	"github.com/espenotterstad/gridview/internal/pane"
	"github.com/espenotterstad/gridview/internal/sqlengine"
	"github.com/espenotterstad/gridview/internal/tabs"
	"github.com/espenotterstad/gridview/internal/writer"
)

// tickMsg drives the search session poll (spec §4.4: the collector
// publishes a refined result roughly every 100ms; the app polls at the
// same cadence rather than owning a second timer per pane).
type tickMsg struct{}

// editResultMsg is delivered once an external-editor round trip finishes.
type editResultMsg struct {
	df  dataframe.DataFrame
	err error
}

// Model is the root Bubble Tea model (C11), wiring together the catalog,
// SQL engine, tab collection, keymap registry, and dispatcher into one
// running program. Grounded in the original's app.rs App, adapted onto
// bubbletea's pointer-receiver Update so the model can hand a *tea.Program
// reference to internal/editor's suspend/resume hooks (see SetProgram).
type Model struct {
	catalog *catalog.Catalog
	engine  *sqlengine.Engine
	tabs    *tabs.Tabs
	status  *StatusBar
	keys    *keymap.Registry
	disp    *action.Dispatcher

	palette       textinput.Model
	paletteOpen   bool
	quitRequested bool

	width, height int

	program *tea.Program
}

// New builds the app shell over an already-populated catalog and engine;
// cat's entries are expected to already be registered with engine (the
// CLI entry point does this at startup from the files named on the
// command line).
func New(cat *catalog.Catalog, engine *sqlengine.Engine) *Model {
	status := &StatusBar{}
	ts := tabs.New()

	pal := textinput.New()
	pal.Prompt = ":"

	m := &Model{
		catalog: cat,
		engine:  engine,
		tabs:    ts,
		status:  status,
		keys:    buildRegistry(),
		palette: pal,
	}
	m.disp = &action.Dispatcher{
		Catalog:  cat,
		Engine:   engine,
		Tabs:     ts,
		Status:   status,
		Exporter: writer.Writer{},
		HelpText: command.HelpDataFrame,
		Quit:     func() { m.quitRequested = true },
	}
	return m
}

// SetProgram records the running *tea.Program so external-editor spawns
// can release and restore the terminal around $EDITOR (spec §5).
func (m *Model) SetProgram(p *tea.Program) { m.program = p }

func (m *Model) Init() tea.Cmd { return tick() }

// searchTickInterval matches the search collector's own publish cadence
// (spec §4.4) so the UI never shows a result staler than one tick.
const searchTickInterval = 100 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(searchTickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if p, ok := m.tabs.Current(); ok {
			p.Table().Reclamp(m.width, contentHeight(m.height))
		}
		return m, nil

	case tickMsg:
		m.tabs.Tick()
		return m, tick()

	case editResultMsg:
		return m.handleEditResult(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.quitRequested {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleEditResult(msg editResultMsg) *Model {
	if msg.err != nil {
		m.status.ShowError(apperr.IO, msg.err.Error())
		return m
	}
	if p, ok := m.tabs.Current(); ok {
		p.SetDataFrame(msg.df)
	}
	return m
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.paletteOpen {
		return m.handlePaletteKey(msg)
	}

	p, hasPane := m.tabs.Current()
	if hasPane {
		if cmd, handled := m.handleModalTextInput(p, msg); handled {
			return m, cmd
		}
		if p.Modal() == nil && !m.status.Active() && !m.disp.ShowingSchema() &&
			msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == 'E' {
			return m, m.openEditor()
		}
	}

	ctx := m.context(hasPane, p)
	act, matched := m.keys.Resolve(ctx, msg)
	if !matched {
		return m, nil
	}
	return m.dispatch(act)
}

func (m *Model) context(hasPane bool, p *pane.Pane) keymap.Context {
	var mo modal.Modal
	if hasPane {
		mo = p.Modal()
	}
	return inferContext(hasPane, m.paletteOpen, m.disp.ShowingSchema(), m.status.Active(), mo)
}

// dispatch applies a keymap-resolved action, intercepting the two
// app-level ones (ShowPalette and the fatal-error propagation) before
// falling through to the dispatcher (spec §4.9: the dispatcher owns
// everything except the palette, which is a pure UI concern).
func (m *Model) dispatch(act keymap.Action) (tea.Model, tea.Cmd) {
	a, ok := act.(action.Action)
	if !ok {
		return m, nil
	}
	if sp, ok := a.(action.ShowPalette); ok {
		// Opening the palette supersedes any error overlay still showing
		// (spec §7: ':' both opens the palette and dismisses the error).
		m.status.Dismiss()
		m.openPalette(sp.Prefill)
		return m, nil
	}
	follow, err := m.disp.Invoke(a)
	if err != nil {
		// A FatalError unwinds the program (spec §7).
		m.status.ShowError(apperr.Fatal, err.Error())
		return m, tea.Quit
	}
	for follow != nil {
		follow, err = m.disp.Invoke(follow)
		if err != nil {
			m.status.ShowError(apperr.Fatal, err.Error())
			return m, tea.Quit
		}
	}
	if m.quitRequested {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) openPalette(prefill string) {
	m.palette.SetValue(prefill)
	m.palette.CursorEnd()
	m.palette.Focus()
	m.paletteOpen = true
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePalette()
		return m, nil
	case tea.KeyEnter:
		line := m.palette.Value()
		m.closePalette()
		act, err := command.Parse(":" + line)
		if err != nil {
			m.status.ShowError(apperr.Parse, err.Error())
			return m, nil
		}
		return m.dispatch(act)
	}
	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)
	return m, cmd
}

func (m *Model) closePalette() {
	m.paletteOpen = false
	m.palette.Blur()
	m.palette.SetValue("")
}

// handleModalTextInput special-cases the modal variants that own a live
// textinput.Model: their commit action depends on text only known at
// keystroke time, which a statically registered keymap.Binding cannot
// express (see DESIGN.md on the mutable/immutable modal split). Returns
// handled=false for every other modal so the caller falls through to the
// keymap registry.
func (m *Model) handleModalTextInput(p *pane.Pane, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch mo := p.Modal().(type) {
	case *modal.SearchBar:
		return m.handleSearchBarKey(p, mo, msg), true
	case *modal.InlineQuery:
		return m.handleInlineQueryKey(p, mo, msg), true
	case *modal.GoToLine:
		return m.handleGoToLineKey(p, mo, msg), true
	case *modal.ExportWizard:
		return m.handleExportWizardKey(p, mo, msg), true
	case *modal.HistogramWizard:
		return m.handleHistogramWizardKey(p, mo, msg), true
	default:
		return nil, false
	}
}

func (m *Model) handleSearchBarKey(p *pane.Pane, sb *modal.SearchBar, msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		// Commit: keep whatever the session has already published.
		p.DismissModal()
		return nil
	case tea.KeyEsc:
		// Cancel: roll back to the pre-search frame.
		p.CancelSearch()
		return nil
	}
	var cmd tea.Cmd
	sb.Input, cmd = sb.Input.Update(msg)
	sb.SetPattern(p.Table().DataFrame(), sb.Input.Value())
	return cmd
}

func (m *Model) handleInlineQueryKey(p *pane.Pane, iq *modal.InlineQuery, msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		p.DismissModal()
		return nil
	case tea.KeyEnter:
		arg := iq.Input.Value()
		var line string
		switch iq.Kind {
		case modal.QuerySelect:
			line = "S " + arg
		case modal.QueryFilter:
			line = "F " + arg
		case modal.QueryOrder:
			line = "O " + arg
		}
		p.DismissModal()
		act, err := command.Parse(line)
		if err != nil {
			m.status.ShowError(apperr.Parse, err.Error())
			return nil
		}
		_, cmd := m.dispatch(act)
		return cmd
	}
	var cmd tea.Cmd
	iq.Input, cmd = iq.Input.Update(msg)
	return cmd
}

func (m *Model) handleGoToLineKey(p *pane.Pane, gl *modal.GoToLine, msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		p.DismissModal()
		return nil
	case tea.KeyEnter:
		n, err := strconv.Atoi(gl.Input.Value())
		p.DismissModal()
		if err != nil || n < 1 {
			m.status.ShowError(apperr.Parse, "goto: expected a positive line number")
			return nil
		}
		p.Table().Select(n - 1)
		return nil
	}
	var cmd tea.Cmd
	gl.Input, cmd = gl.Input.Update(msg)
	return cmd
}

func (m *Model) handleExportWizardKey(p *pane.Pane, ew *modal.ExportWizard, msg tea.KeyMsg) tea.Cmd {
	if !ew.PickingPath {
		switch msg.Type {
		case tea.KeyEsc:
			p.DismissModal()
		case tea.KeyLeft:
			ew.Format = cycleExportFormat(ew.Format, -1)
		case tea.KeyRight:
			ew.Format = cycleExportFormat(ew.Format, 1)
		case tea.KeyEnter:
			ew.PickingPath = true
			ew.Destination.Focus()
		}
		return nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		p.DismissModal()
		return nil
	case tea.KeyEnter:
		dest := ew.Destination.Value()
		format := ew.Format
		p.DismissModal()
		_, cmd := m.dispatch(action.ExportData{Format: format, Destination: dest})
		return cmd
	}
	var cmd tea.Cmd
	ew.Destination, cmd = ew.Destination.Update(msg)
	return cmd
}

func cycleExportFormat(f modal.ExportFormat, delta int) modal.ExportFormat {
	const n = 6 // ExportCSV..ExportArrow
	v := (int(f) + delta + n) % n
	return modal.ExportFormat(v)
}

func (m *Model) handleHistogramWizardKey(p *pane.Pane, hw *modal.HistogramWizard, msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		p.DismissModal()
	case tea.KeyUp:
		if hw.Selected > 0 {
			hw.Selected--
		}
	case tea.KeyDown:
		if hw.Selected < len(hw.Columns)-1 {
			hw.Selected++
		}
	case tea.KeyEnter:
		if len(hw.Columns) > 0 {
			col := hw.Columns[hw.Selected]
			_, cmd := m.dispatch(action.ShowHistogram{Column: col})
			return cmd
		}
	}
	return nil
}

// contentHeight reserves rows for the tab bar and status line, matching
// the teacher's fixed chrome-height subtraction in its own View.
func contentHeight(total int) int {
	h := total - 3
	if h < 0 {
		return 0
	}
	return h
}

var editorMu sync.Mutex

// openEditor round-trips the current pane's data frame through $EDITOR,
// suspending the bubbletea program for the duration (spec §5).
func (m *Model) openEditor() tea.Cmd {
	p, ok := m.tabs.Current()
	if !ok || m.program == nil {
		return nil
	}
	df := p.Table().DataFrame()
	return func() tea.Msg {
		editorMu.Lock()
		defer editorMu.Unlock()
		edited, err := editor.Edit(df, editor.Hooks{
			Suspend: m.program.ReleaseTerminal,
			Resume:  m.program.RestoreTerminal,
		})
		return editResultMsg{df: edited, err: err}
	}
}

func (m *Model) View() string {
	if m.quitRequested {
		return ""
	}
	return m.render()
}
