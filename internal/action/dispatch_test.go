package action

import (
	"testing"

	"github.com/espenotterstad/gridview/internal/apperr"
	"github.com/espenotterstad/gridview/internal/catalog"
	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/modal"
	"github.com/espenotterstad/gridview/internal/pane"
	"github.com/espenotterstad/gridview/internal/tabs"
)

type fakeStatus struct {
	lastKind apperr.Kind
	lastMsg  string
	cleared  bool
}

func (f *fakeStatus) ShowError(kind apperr.Kind, msg string) { f.lastKind, f.lastMsg = kind, msg }
func (f *fakeStatus) Dismiss()                                { f.cleared = true }

func idFrame(t *testing.T, n int) dataframe.DataFrame {
	t.Helper()
	values := make([]dataframe.Value, n)
	for i := range values {
		values[i] = dataframe.IntValue(int64(i))
	}
	df, err := dataframe.New([]dataframe.Column{dataframe.NewColumn("id", dataframe.KindInt, values)})
	if err != nil {
		t.Fatal(err)
	}
	return df
}

func TestQuitWithNoTabsInvokesCallback(t *testing.T) {
	called := false
	d := &Dispatcher{Tabs: tabs.New(), Status: &fakeStatus{}, Quit: func() { called = true }}
	if _, err := d.Invoke(Quit{}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !called {
		t.Error("expected Quit callback to run")
	}
}

func TestTabSelectOutOfRangeReportsError(t *testing.T) {
	ts := tabs.New()
	ts.Add(pane.New(idFrame(t, 2), pane.Origin{Kind: pane.SourceName, Label: "t"}))
	status := &fakeStatus{}
	d := &Dispatcher{Tabs: ts, Status: status}

	follow, err := d.Invoke(TabSelect{Index: 5})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if _, err := d.Invoke(follow); err != nil {
		t.Fatalf("Invoke follow-up: %v", err)
	}
	if status.lastKind != apperr.State {
		t.Errorf("expected a StateError, got %v: %q", status.lastKind, status.lastMsg)
	}
}

func TestRemoveLastTabEmitsQuit(t *testing.T) {
	ts := tabs.New()
	ts.Add(pane.New(idFrame(t, 1), pane.Origin{Kind: pane.SourceName, Label: "t"}))
	called := false
	d := &Dispatcher{Tabs: ts, Status: &fakeStatus{}, Quit: func() { called = true }}

	follow, err := d.Invoke(TabRemove{Index: 0})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if follow == nil {
		t.Fatal("expected a Quit follow-up")
	}
	if _, err := d.Invoke(follow); err != nil {
		t.Fatalf("Invoke follow-up: %v", err)
	}
	if !called {
		t.Error("expected the Quit follow-up to fire the callback")
	}
}

func TestActionsWithoutActivePaneAreNoops(t *testing.T) {
	d := &Dispatcher{Tabs: tabs.New(), Status: &fakeStatus{}}
	if _, err := d.Invoke(TableReset{}); err != nil {
		t.Fatalf("expected a no-op, got error: %v", err)
	}
}

func TestDismissErrorClearsStatus(t *testing.T) {
	status := &fakeStatus{}
	d := &Dispatcher{Tabs: tabs.New(), Status: status}
	if _, err := d.Invoke(DismissError{}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !status.cleared {
		t.Error("expected Dismiss to be called")
	}
}

func TestTabRemoveCurrentEmitsQuitWhenLast(t *testing.T) {
	ts := tabs.New()
	ts.Add(pane.New(idFrame(t, 1), pane.Origin{Kind: pane.SourceName, Label: "t"}))
	d := &Dispatcher{Tabs: ts, Status: &fakeStatus{}}

	follow, err := d.Invoke(TabRemoveCurrent{})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if _, ok := follow.(Quit); !ok {
		t.Fatalf("expected a Quit follow-up, got %#v", follow)
	}
}

func TestTabRemoveCurrentKeepsOthersSelected(t *testing.T) {
	ts := tabs.New()
	ts.Add(pane.New(idFrame(t, 1), pane.Origin{Kind: pane.SourceName, Label: "a"}))
	ts.Add(pane.New(idFrame(t, 1), pane.Origin{Kind: pane.SourceName, Label: "b"}))
	d := &Dispatcher{Tabs: ts, Status: &fakeStatus{}}

	follow, err := d.Invoke(TabRemoveCurrent{})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if follow != nil {
		t.Fatalf("expected no follow-up with a tab remaining, got %#v", follow)
	}
	if ts.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", ts.Len())
	}
}

func TestSheetScrollActionsAdjustModal(t *testing.T) {
	ts := tabs.New()
	ts.Add(pane.New(idFrame(t, 1), pane.Origin{Kind: pane.SourceName, Label: "t"}))
	d := &Dispatcher{Tabs: ts, Status: &fakeStatus{}}

	if _, err := d.Invoke(ShowSheet{}); err != nil {
		t.Fatalf("Invoke ShowSheet: %v", err)
	}
	if _, err := d.Invoke(SheetScrollDown{}); err != nil {
		t.Fatalf("Invoke SheetScrollDown: %v", err)
	}
	p, _ := ts.Current()
	sh, ok := p.Modal().(modal.Sheet)
	if !ok {
		t.Fatal("expected a sheet modal")
	}
	if sh.Scroll != 1 {
		t.Errorf("Scroll: got %d, want 1", sh.Scroll)
	}
	if _, err := d.Invoke(SheetScrollUp{}); err != nil {
		t.Fatalf("Invoke SheetScrollUp: %v", err)
	}
	sh, _ = p.Modal().(modal.Sheet)
	if sh.Scroll != 0 {
		t.Errorf("Scroll after up: got %d, want 0", sh.Scroll)
	}
}

func TestInfoScrollActionsAdjustModal(t *testing.T) {
	ts := tabs.New()
	ts.Add(pane.New(idFrame(t, 1), pane.Origin{Kind: pane.SourceName, Label: "t"}))
	d := &Dispatcher{Tabs: ts, Status: &fakeStatus{}}

	if _, err := d.Invoke(ShowInfo{}); err != nil {
		t.Fatalf("Invoke ShowInfo: %v", err)
	}
	if _, err := d.Invoke(InfoScrollDown{}); err != nil {
		t.Fatalf("Invoke InfoScrollDown: %v", err)
	}
	p, _ := ts.Current()
	in, ok := p.Modal().(modal.Info)
	if !ok {
		t.Fatal("expected an info modal")
	}
	want := 1
	if max := len(in.Stats) - 1; max < want {
		want = max
	}
	if in.Scroll != want {
		t.Errorf("Scroll: got %d, want %d", in.Scroll, want)
	}
}

func TestSheetScrollIsNoopWithoutSheetModal(t *testing.T) {
	ts := tabs.New()
	ts.Add(pane.New(idFrame(t, 1), pane.Origin{Kind: pane.SourceName, Label: "t"}))
	d := &Dispatcher{Tabs: ts, Status: &fakeStatus{}}

	if _, err := d.Invoke(SheetScrollDown{}); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	p, _ := ts.Current()
	if p.Modal() != nil {
		t.Fatal("expected no modal to be opened by SheetScrollDown")
	}
}

func TestCatalogContainsRegisteredTableName(t *testing.T) {
	cat := catalog.New()
	name := cat.Register("widgets", idFrame(t, 3), catalog.Source{Kind: catalog.SourceUser})
	if name != "widgets" {
		t.Fatalf("Register: got %q", name)
	}
	if !cat.Contains("widgets") {
		t.Fatal("expected catalog to contain widgets")
	}
}
