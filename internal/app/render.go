package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/clipperhouse/displaywidth"

	"github.com/espenotterstad/gridview/internal/apperr"
	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/modal"
	"github.com/espenotterstad/gridview/internal/pane"
	"github.com/espenotterstad/gridview/internal/tablestate"
	"github.com/espenotterstad/gridview/internal/theme"
)

// render composes the tab bar, the active pane's body (table or modal
// overlay), and the status line, styled via theme.Current() — grounded in
// the teacher's own View()'s top-bar/body/footer layering, generalized
// from its fixed three-tab bar to an arbitrary tab count.
func (m *Model) render() string {
	th := theme.Current()
	var sb strings.Builder

	sb.WriteString(m.renderTabBar(th))
	sb.WriteString("\n")

	p, hasPane := m.tabs.Current()
	switch {
	case m.disp.ShowingSchema():
		sb.WriteString(m.renderSchema(th))
	case !hasPane:
		sb.WriteString("no tabs open — press : to run a query or load a table")
	default:
		sb.WriteString(m.renderPane(th, p))
	}
	sb.WriteString("\n")

	sb.WriteString(m.renderFooter(th))
	return sb.String()
}

func (m *Model) renderTabBar(th theme.Theme) string {
	all := m.tabs.All()
	if len(all) == 0 {
		return th.Block.Render(" gridview ")
	}
	var parts []string
	for i, p := range all {
		label := fmt.Sprintf("%d:%s", i+1, p.Origin().Label)
		if i == m.tabs.SelectedIndex() && !m.disp.ShowingSchema() {
			parts = append(parts, th.Highlight.Render(label))
		} else {
			parts = append(parts, th.Cell.Render(label))
		}
	}
	return strings.Join(parts, " │ ")
}

func (m *Model) renderPane(th theme.Theme, p *pane.Pane) string {
	switch mo := p.Modal().(type) {
	case modal.Sheet:
		return m.renderSheet(th, p, mo)
	case *modal.SearchBar:
		return m.renderSearch(th, p, mo)
	case modal.Info:
		return m.renderInfo(th, mo)
	case *modal.InlineQuery:
		return th.Block.Render(mo.Kind.String()+" > ") + mo.Input.View()
	case *modal.GoToLine:
		return th.Block.Render("goto line > ") + mo.Input.View()
	case *modal.ExportWizard:
		return m.renderExportWizard(th, mo)
	case *modal.HistogramWizard:
		return m.renderHistogramWizard(th, mo)
	case *modal.Histogram:
		return m.renderHistogram(th, mo)
	default:
		return m.renderTable(th, p.Table())
	}
}

func (m *Model) renderTable(th theme.Theme, t *tablestate.State) string {
	t.Reclamp(m.width, contentHeight(m.height))
	headers := t.Headers()
	widths := t.Widths()
	offsetX := t.OffsetX()

	var sb strings.Builder
	var headerCells []string
	for i, h := range headers {
		headerCells = append(headerCells, padTo(h, widths[i]))
	}
	sb.WriteString(scrolledRow(headerCells, offsetX, m.width, th.Header))
	sb.WriteString("\n")

	df := t.DataFrame()
	last := t.OffsetY() + contentHeight(m.height)
	if last > df.Height() {
		last = df.Height()
	}
	for r := t.OffsetY(); r < last; r++ {
		row := df.Row(r)
		rowStyle := th.Row(r)
		if r == t.Selected() {
			rowStyle = th.Highlight
		}
		var cells []string
		for i, v := range row {
			cells = append(cells, padTo(dataframe.RenderSingleLine(v, df.Column(i)), widths[i]))
		}
		sb.WriteString(scrolledRow(cells, offsetX, m.width, func(int) lipgloss.Style { return rowStyle }))
		sb.WriteString("\n")
	}
	return sb.String()
}

func padTo(s string, w int) string {
	cur := displaywidth.String(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

// scrolledRow joins cells with a single-space separator and slices the
// result to the horizontal character window [offsetX, offsetX+width),
// styling each column's visible portion with styleFor — mirroring the
// original's `.chars().skip(offset_x).take(area.width)` over the joined
// line (original_source/src/tui/data_frame_table.rs), adapted to style per
// column instead of overlaying styles onto a shared buffer afterward.
func scrolledRow(cells []string, offsetX, viewportWidth int, styleFor func(col int) lipgloss.Style) string {
	var sb strings.Builder
	windowEnd := offsetX + viewportWidth
	pos := 0
	for i, cell := range cells {
		r := []rune(cell)
		start := pos
		end := start + len(r)
		pos = end + 1 // account for the joining space

		visStart := start
		if visStart < offsetX {
			visStart = offsetX
		}
		visEnd := end
		if visEnd > windowEnd {
			visEnd = windowEnd
		}
		if visStart < visEnd {
			sb.WriteString(styleFor(i).Render(string(r[visStart-start : visEnd-start])))
		}
		if sep := end; sep >= offsetX && sep < windowEnd && i < len(cells)-1 {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}

func (m *Model) renderSheet(th theme.Theme, p *pane.Pane, sh modal.Sheet) string {
	t := p.Table()
	df := t.DataFrame()
	if t.Selected() >= df.Height() {
		return th.Block.Render("no row selected")
	}
	row := df.Row(t.Selected())
	var sb strings.Builder
	sb.WriteString(th.Block.Render(fmt.Sprintf("row %d", t.Selected()+1)) + "\n")
	for i := sh.Scroll; i < len(row); i++ {
		col := df.Column(i)
		sb.WriteString(th.Header(i).Render(col.Name) + ": " + dataframe.RenderMultiLine(row[i], col) + "\n")
	}
	return sb.String()
}

func (m *Model) renderSearch(th theme.Theme, p *pane.Pane, sb *modal.SearchBar) string {
	var b strings.Builder
	b.WriteString(th.Block.Render("search > ") + sb.Input.View() + "\n")
	b.WriteString(m.renderTable(th, p.Table()))
	return b.String()
}

func (m *Model) renderInfo(th theme.Theme, in modal.Info) string {
	var sb strings.Builder
	sb.WriteString(th.Block.Render("column      type      nulls  size(b)  min      max") + "\n")
	for i := in.Scroll; i < len(in.Stats); i++ {
		s := in.Stats[i]
		minMax := "-"
		if s.HasMinMax {
			minMax = s.Min + " / " + s.Max
		}
		sb.WriteString(fmt.Sprintf("%-10s  %-8s  %-5d  %-7d  %s\n",
			s.Name, s.Kind, s.NullCount, s.SizeBytes, minMax))
	}
	return sb.String()
}

func (m *Model) renderExportWizard(th theme.Theme, ew *modal.ExportWizard) string {
	names := []string{"csv", "tsv", "json", "jsonl", "parquet", "arrow"}
	var parts []string
	for i, n := range names {
		if i == int(ew.Format) {
			parts = append(parts, th.Highlight.Render(n))
		} else {
			parts = append(parts, n)
		}
	}
	line := th.Block.Render("export format: ") + strings.Join(parts, " ")
	if ew.PickingPath {
		line += "\n" + th.Block.Render("destination > ") + ew.Destination.View()
	}
	return line
}

func (m *Model) renderHistogramWizard(th theme.Theme, hw *modal.HistogramWizard) string {
	var sb strings.Builder
	sb.WriteString(th.Block.Render("pick a numeric column") + "\n")
	for i, c := range hw.Columns {
		if i == hw.Selected {
			sb.WriteString(th.Highlight.Render(c) + "\n")
		} else {
			sb.WriteString(c + "\n")
		}
	}
	return sb.String()
}

func (m *Model) renderHistogram(th theme.Theme, h *modal.Histogram) string {
	var sb strings.Builder
	sb.WriteString(th.Block.Render("histogram: "+h.Column) + "\n")
	var max int64
	for _, c := range h.Counts {
		if c > max {
			max = c
		}
	}
	for i, c := range h.Counts {
		bars := 0
		if max > 0 {
			bars = int(c * 40 / max)
		}
		sb.WriteString(fmt.Sprintf("%3d | %s %d\n", h.Buckets[i], strings.Repeat("█", bars), c))
	}
	return sb.String()
}

func (m *Model) renderSchema(th theme.Theme) string {
	var sb strings.Builder
	sb.WriteString(th.Block.Render("schema") + "\n")
	n := m.catalog.Len()
	for i := 0; i < n; i++ {
		e, ok := m.catalog.GetByIndex(i)
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-20s %-8s %d rows  %d cols  (%s)\n",
			e.Name, "table", e.Frame.Height(), e.Frame.Width(), e.Source))
	}
	return sb.String()
}

func (m *Model) renderFooter(th theme.Theme) string {
	if m.paletteOpen {
		return th.Block.Render(m.palette.View())
	}
	if m.status.Active() {
		style := th.StatusRed
		if m.status.Kind() == apperr.State {
			style = th.StatusBlue
		}
		return style.Render(fmt.Sprintf("%s: %s", m.status.Kind(), m.status.Message()))
	}
	return th.Block.Render(helpLine)
}

const helpLine = "/ search  ? contain  s/f/o query  I info  e export  p plot  : command  q close tab"
