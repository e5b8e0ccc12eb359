package dataframe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clipperhouse/displaywidth"
)

// RenderSingleLine produces the compact, single-line rendering of a value
// used in table cells: strings are cut at their first newline and binary
// blobs collapse to a length marker.
func RenderSingleLine(v Value, col Column) string {
	if v.Null {
		return ""
	}
	switch v.Kind {
	case KindString:
		return firstLine(v.S)
	case KindCategorical:
		return col.CategoricalString(v)
	case KindBinary:
		return fmt.Sprintf("Blob (Length: %d)", len(v.Bin))
	default:
		return renderScalar(v)
	}
}

// RenderMultiLine produces the detailed rendering used in sheet views and
// search matching: binary blobs are hex-dumped, everything else verbatim.
func RenderMultiLine(v Value, col Column) string {
	if v.Null {
		return ""
	}
	switch v.Kind {
	case KindString:
		return v.S
	case KindCategorical:
		return col.CategoricalString(v)
	case KindBinary:
		return hexDump(v.Bin)
	default:
		return renderScalar(v)
	}
}

// DisplayWidth returns the width in terminal cells of the single-line
// rendering's first line, accounting for wide/combining/emoji runes.
func DisplayWidth(v Value, col Column) int {
	s := RenderSingleLine(v, col)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return displaywidth.String(s)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func renderScalar(v Value) string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I, 10)
	case KindFloat:
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	case KindBool:
		if v.B {
			return "true"
		}
		return "false"
	case KindDate:
		return v.T.Format("2006-01-02")
	case KindDatetime:
		return v.T.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// hexDump renders a byte slice as "Blob (Length: N)" followed by a
// classic 16-bytes-per-line hex dump, grouped 8 bytes per cluster.
func hexDump(b []byte) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Blob (Length: %d)", len(b))

	const perLine = 16
	lines := (len(b) + perLine - 1) / perLine
	idxWidth := len(strconv.Itoa(max(lines-1, 0)))
	if idxWidth == 0 {
		idxWidth = 1
	}

	for i := 0; i < len(b); i += perLine {
		end := min(i+perLine, len(b))
		chunk := b[i:end]

		var groups []string
		for g := 0; g < len(chunk); g += 8 {
			ge := min(g+8, len(chunk))
			var hexes []string
			for _, by := range chunk[g:ge] {
				hexes = append(hexes, fmt.Sprintf("%02X", by))
			}
			groups = append(groups, strings.Join(hexes, " "))
		}
		fmt.Fprintf(&sb, "\n%0*d:  %s", idxWidth, i/perLine, strings.Join(groups, "   "))
	}
	return sb.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
