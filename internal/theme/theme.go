// Package theme defines the named color palettes applied to the table,
// status bar, and overlay chrome, plus a process-wide current-theme
// holder and a TOML-backed config that stores the chosen theme name.
// Grounded in the original's tui/theme.rs
// Styler trait and its per-palette implementers, and misc/config.rs's
// TOML config.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is the fixed set of styles every palette supplies. Unlike the
// original's per-column/per-row Styler methods (which branch on an index
// at call time), each theme here precomputes a short cycle of styles and
// lets the caller index into it — lipgloss.Style values are cheap to hold
// and the cycling logic only needs to live in one place (Header/Row
// below).
type Theme struct {
	Name string

	TableHeader  lipgloss.Style
	HeaderCycle  []lipgloss.Style
	RowEven      lipgloss.Style
	RowOdd       lipgloss.Style
	Highlight    lipgloss.Style
	Cell         lipgloss.Style
	StatusRed    lipgloss.Style
	StatusGreen  lipgloss.Style
	StatusBlue   lipgloss.Style
	Block        lipgloss.Style
}

// Header returns the header style for column index col, cycling through
// HeaderCycle the way the original cycles through six accent colors
// (`col % 6`).
func (t Theme) Header(col int) lipgloss.Style {
	if len(t.HeaderCycle) == 0 {
		return t.TableHeader
	}
	return t.HeaderCycle[col%len(t.HeaderCycle)]
}

// Row returns the alternating row background style for row index row.
func (t Theme) Row(row int) lipgloss.Style {
	if row%2 == 0 {
		return t.RowEven
	}
	return t.RowOdd
}

func solid(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(bg)).Foreground(lipgloss.Color(fg))
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Monokai ports original_source/src/theme.rs's Monokai palette.
func Monokai() Theme {
	return Theme{
		Name:        "monokai",
		TableHeader: solid("#1c191d", "#fffaf4"),
		HeaderCycle: []lipgloss.Style{
			fg("#ff6188").Bold(true), fg("#fc9867").Bold(true), fg("#ffd866").Bold(true),
			fg("#a9dc76").Bold(true), fg("#78dce8").Bold(true), fg("#ab9df2").Bold(true),
		},
		RowEven:     solid("#232024", "#fffaf4"),
		RowOdd:      solid("#1c191d", "#fffaf4"),
		Highlight:   solid("#c89f2d", "#fffaf4"),
		Cell:        fg("#fffaf4"),
		StatusRed:   solid("#d02d00", "#fffaf4"),
		StatusGreen: solid("#008f1f", "#fffaf4"),
		StatusBlue:  solid("#007dd0", "#fffaf4"),
		Block:       solid("#1c191d", "#c89f2d"),
	}
}

// Argonaut ports original_source/src/theme.rs's Argonaut palette.
func Argonaut() Theme {
	return Theme{
		Name:        "argonaut",
		TableHeader: solid("#01030b", "#fffaf4"),
		HeaderCycle: []lipgloss.Style{
			fg("#ff000f").Bold(true), fg("#ffb900").Bold(true), fg("#ffd866").Bold(true),
			fg("#8ce10b").Bold(true), fg("#6d43a6").Bold(true), fg("#00d8eb").Bold(true),
		},
		RowEven:     solid("#11131b", "#fffaf4"),
		RowOdd:      solid("#01030b", "#fffaf4"),
		Highlight:   lipgloss.NewStyle().Background(lipgloss.Color("#002a3b")),
		Cell:        fg("#fffaf4"),
		StatusRed:   solid("#dd0000", "#fffaf4"),
		StatusGreen: solid("#5cb100", "#fffaf4"),
		StatusBlue:  solid("#006dd8", "#fffaf4"),
		Block:       solid("#0e1019", "#fffaf4"),
	}
}

// Terminal ports original_source/src/theme.rs's Terminal palette — it
// relies on the terminal's own ANSI palette rather than fixed hex colors,
// so it uses lipgloss's 16-color names instead of truecolor hex values.
func Terminal() Theme {
	return Theme{
		Name:        "terminal",
		TableHeader: solid("6", "0"),
		HeaderCycle: []lipgloss.Style{lipgloss.NewStyle()},
		RowEven:     lipgloss.NewStyle(),
		RowOdd:      lipgloss.NewStyle(),
		Highlight:   solid("3", "0"),
		Cell:        lipgloss.NewStyle(),
		StatusRed:   solid("1", "15"),
		StatusGreen: solid("2", "15"),
		StatusBlue:  solid("4", "15"),
		Block:       lipgloss.NewStyle(),
	}
}

// Builtins returns the fixed set of named palettes, in display order —
// mirrors original_source/src/tui/themes/theme.rs's Theme::all().
func Builtins() []Theme {
	return []Theme{Monokai(), Argonaut(), Terminal()}
}

// ByName returns the builtin theme with the given name, or Monokai if no
// such theme exists (mirrors the original's default-to-Monokai fallback
// in Theme::styler()).
func ByName(name string) Theme {
	for _, t := range Builtins() {
		if t.Name == name {
			return t
		}
	}
	return Monokai()
}
