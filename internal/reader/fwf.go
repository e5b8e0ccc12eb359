package reader

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/espenotterstad/gridview/internal/dataframe"
)

// ReadFWF reads fixed-width text. If opts.Widths is empty, column
// boundaries are inferred from whitespace columns common to every line —
// the same heuristic as the original's reader/fwf.rs (intersect each
// line's whitespace-index set, then take the sorted boundaries). There is
// no third-party FWF library in the example pack; this is hand-rolled per
// SPEC_FULL.md's note that the original itself only has this one
// (non-ecosystem, single-purpose) FWF crate to draw on.
func ReadFWF(r io.Reader, opts Options) (dataframe.DataFrame, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}
	if len(lines) == 0 {
		return dataframe.Empty(), nil
	}

	widths := opts.Widths
	if len(widths) == 0 {
		widths = inferWidths(lines)
	}

	var header []string
	start := 0
	if opts.HasHeader {
		header = splitFixed(lines[0], widths)
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}
		start = 1
	} else {
		header = syntheticHeaders(len(widths))
	}

	rows := make([][]string, 0, len(lines)-start)
	for _, line := range lines[start:] {
		fields := splitFixed(line, widths)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		rows = append(rows, fields)
	}
	return frameFromRows(header, rows, opts.Infer), nil
}

// splitFixed slices line at the cumulative column boundaries in widths.
func splitFixed(line string, widths []int) []string {
	runes := []rune(line)
	fields := make([]string, len(widths))
	pos := 0
	for i, w := range widths {
		end := pos + w
		if end > len(runes) {
			end = len(runes)
		}
		if pos > len(runes) {
			pos = len(runes)
		}
		fields[i] = string(runes[pos:end])
		pos = end
	}
	return fields
}

// inferWidths finds column boundaries from whitespace columns shared by
// every line, mirroring the original's common_space_indices reduction.
func inferWidths(lines []string) []int {
	maxLen := 0
	var common map[int]bool
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) > maxLen {
			maxLen = len(runes)
		}
		spaces := map[int]bool{}
		for i, c := range runes {
			if c == ' ' || c == '\t' {
				spaces[i] = true
			}
		}
		if common == nil {
			common = spaces
			continue
		}
		for idx := range common {
			if !spaces[idx] {
				delete(common, idx)
			}
		}
	}
	var bounds []int
	for idx := range common {
		bounds = append(bounds, idx)
	}
	bounds = append(bounds, maxLen)
	sort.Ints(bounds)

	widths := make([]int, 0, len(bounds))
	prev := 0
	for _, b := range bounds {
		if b <= prev {
			continue
		}
		widths = append(widths, b-prev)
		prev = b
	}
	return widths
}

// ParseWidths parses a comma-separated width list from the CLI flag.
func ParseWidths(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	widths := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		widths[i] = n
	}
	return widths, nil
}
