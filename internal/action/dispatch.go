package action

import (
	"fmt"
	"math/rand"

	"github.com/espenotterstad/gridview/internal/apperr"
	"github.com/espenotterstad/gridview/internal/catalog"
	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/modal"
	"github.com/espenotterstad/gridview/internal/pane"
	"github.com/espenotterstad/gridview/internal/sqlengine"
	"github.com/espenotterstad/gridview/internal/tabs"
)

// StatusBar is the subset of the app-level status bar the dispatcher
// needs: routing a non-fatal error, and clearing one.
type StatusBar interface {
	ShowError(kind apperr.Kind, msg string)
	Dismiss()
}

// Exporter writes df to destination in format; satisfied by internal/writer.
type Exporter interface {
	Export(df dataframe.DataFrame, format modal.ExportFormat, destination string) error
}

// Dispatcher is the C9 entry point. It touches at most one subsystem per
// Invoke call (spec §4.9), consulting the catalog/engine to build follow-up
// actions rather than mutating several subsystems directly.
type Dispatcher struct {
	Catalog  *catalog.Catalog
	Engine   *sqlengine.Engine
	Tabs     *tabs.Tabs
	Status   StatusBar
	Exporter Exporter
	HelpText func() dataframe.DataFrame
	Quit     func()

	schema bool // true while the app-level view is the schema browser
}

// ShowingSchema reports whether the app-level view is currently the
// schema browser (set by SwitchToSchema, cleared by SwitchToTabulars).
func (d *Dispatcher) ShowingSchema() bool { return d.schema }

// Invoke applies a, returning an optional follow-up action to invoke next
// (spec §4.9). Only a FatalError propagates as a returned error; every
// other error comes back as a follow-up action that, when invoked, shows
// it on the status bar and ends the chain.
func (d *Dispatcher) Invoke(a Action) (Action, error) {
	switch v := a.(type) {
	case nil, NoAction:
		return nil, nil

	case DismissError:
		d.Status.Dismiss()
		return nil, nil

	case Quit:
		if d.Quit != nil {
			d.Quit()
		}
		return nil, nil

	case SwitchToSchema:
		d.schema = true
		return nil, nil

	case SwitchToTabulars:
		d.schema = false
		return nil, nil

	case ExecuteQuery:
		return d.executeQuery(v.SQL)

	case TabNew:
		return d.tabNew(v.Arg)

	case TabSelect:
		if v.Index < 0 || v.Index >= d.Tabs.Len() {
			return d.fail(apperr.State, fmt.Sprintf("no tab %d", v.Index+1))
		}
		d.Tabs.Select(v.Index)
		return nil, nil

	case TabRemove:
		if v.Index < 0 || v.Index >= d.Tabs.Len() {
			return d.fail(apperr.State, fmt.Sprintf("no tab %d", v.Index+1))
		}
		d.Tabs.Remove(v.Index)
		if d.Tabs.Len() == 0 {
			return Quit{}, nil
		}
		return nil, nil

	case TabSelectPrev:
		d.Tabs.SelectPrev()
		return nil, nil

	case TabSelectNext:
		d.Tabs.SelectNext()
		return nil, nil

	case TabRemoveCurrent:
		if d.Tabs.Len() == 0 {
			return Quit{}, nil
		}
		d.Tabs.Remove(d.Tabs.SelectedIndex())
		if d.Tabs.Len() == 0 {
			return Quit{}, nil
		}
		return nil, nil

	case HelpShow:
		if d.HelpText == nil {
			return nil, nil
		}
		p := pane.New(d.HelpText(), pane.Origin{Kind: pane.SourceHelp, Label: "Help"})
		d.Tabs.Add(p)
		return nil, nil

	case ExportData:
		p, ok := d.Tabs.Current()
		if !ok {
			return d.fail(apperr.State, "export: no active pane")
		}
		if d.Exporter == nil {
			return nil, nil
		}
		if err := d.Exporter.Export(p.Table().DataFrame(), v.Format, v.Destination); err != nil {
			return d.fail(apperr.IO, err.Error())
		}
		return nil, nil
	}

	// Everything past this point requires an active pane (spec §4.9: a
	// precondition that does not hold is a no-op, not an error).
	p, ok := d.Tabs.Current()
	if !ok {
		return nil, nil
	}

	switch v := a.(type) {
	case TableReset:
		p.Reset()
	case TableGotoLine:
		p.Table().Select(v.Row)
	case TableGotoRandom:
		if h := p.Table().Height(); h > 0 {
			p.Table().Select(rand.Intn(h))
		}
	case TableSelectUp:
		p.Table().SelectUp(v.N)
	case TableSelectDown:
		p.Table().SelectDown(v.N)
	case TableSelectFirst:
		p.Table().SelectFirst()
	case TableSelectLast:
		p.Table().SelectLast()
	case TableScrollLeft:
		p.Table().ScrollLeft()
	case TableScrollRight:
		p.Table().ScrollRight()
	case TableScrollStart:
		p.Table().ScrollStart()
	case TableScrollEnd:
		p.Table().ScrollEnd()
	case TableToggleExpansion:
		p.Table().ToggleExpansion()
	case ShowSheet:
		p.ShowSheet()
	case ShowTable:
		p.DismissModal()
	case SheetScrollUp:
		p.AdjustSheetScroll(-1)
	case SheetScrollDown:
		p.AdjustSheetScroll(1)
	case InfoScrollUp:
		p.AdjustInfoScroll(-1)
	case InfoScrollDown:
		p.AdjustInfoScroll(1)
	case ShowSearch:
		p.ShowSearch(v.Strategy)
	case ShowInfo:
		p.ShowInfo()
	case ShowInlineQuery:
		p.ShowInlineQuery(v.Kind)
	case ShowGoToLine:
		p.ShowGoToLine()
	case ShowExportWizard:
		p.ShowExportWizard()
	case ShowHistogramWizard:
		p.ShowHistogramWizard()
	case ShowHistogram:
		return d.showHistogram(p, v.Column)
	case DismissModal:
		p.DismissModal()
	case replaceDataFrame:
		p.SetDataFrame(v.df)
	case reportError:
		d.Status.ShowError(v.kind, v.msg)
	default:
		return nil, nil
	}
	return nil, nil
}

func (d *Dispatcher) executeQuery(sql string) (Action, error) {
	p, ok := d.Tabs.Current()
	if !ok {
		return d.fail(apperr.State, "no active pane")
	}
	df := p.Table().DataFrame()
	result, err := d.Engine.Execute(sql, &df)
	if err != nil {
		return d.fail(apperr.SQL, err.Error())
	}
	return replaceDataFrame{df: result}, nil
}

func (d *Dispatcher) tabNew(arg string) (Action, error) {
	query := arg
	label := arg
	if d.Catalog.Contains(arg) {
		query = fmt.Sprintf(`SELECT * FROM "%s"`, arg)
	}
	df, err := d.Engine.Execute(query, nil)
	if err != nil {
		return d.fail(apperr.SQL, err.Error())
	}
	p := pane.New(df, pane.Origin{Kind: pane.SourceQuery, Label: label})
	d.Tabs.Add(p)
	return nil, nil
}

func (d *Dispatcher) showHistogram(p *pane.Pane, column string) (Action, error) {
	if _, ok := p.Modal().(*modal.HistogramWizard); !ok {
		return d.fail(apperr.State, "no histogram wizard open")
	}
	col, ok := p.Table().DataFrame().ColumnByName(column)
	if !ok {
		return d.fail(apperr.Schema, fmt.Sprintf("no such column %q", column))
	}
	buckets, counts := bucketize(col)
	p.ShowHistogram(&modal.Histogram{Column: column, Buckets: buckets, Counts: counts})
	return nil, nil
}

// bucketize sorts a numeric column's non-null values into 10 equal-width
// buckets spanning [min, max].
func bucketize(col dataframe.Column) ([]int, []int64) {
	const n = 10
	var min, max float64
	first := true
	vals := make([]float64, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		v := col.At(i)
		if v.Null {
			continue
		}
		var f float64
		switch col.Kind {
		case dataframe.KindInt:
			f = float64(v.I)
		case dataframe.KindFloat:
			f = v.F
		default:
			continue
		}
		vals = append(vals, f)
		if first || f < min {
			min = f
		}
		if first || f > max {
			max = f
		}
		first = false
	}
	counts := make([]int64, n)
	span := max - min
	for _, f := range vals {
		idx := 0
		if span > 0 {
			idx = int((f - min) / span * n)
			if idx >= n {
				idx = n - 1
			}
		}
		counts[idx]++
	}
	buckets := make([]int, n)
	for i := range buckets {
		buckets[i] = i
	}
	return buckets, counts
}

func (d *Dispatcher) fail(kind apperr.Kind, msg string) (Action, error) {
	e := apperr.New(kind, msg)
	if apperr.IsFatal(e) {
		return nil, e
	}
	return reportError{kind: kind, msg: msg}, nil
}
