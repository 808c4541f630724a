package cli

import (
	"strings"
	"unicode/utf8"
)

// columnGap separates table columns.
const columnGap = "  "

// Table lays out rows of text in aligned columns. Cells in columns with a
// maximum width are word-wrapped onto continuation lines.
type Table struct {
	headers   []string
	rows      [][]string
	maxWidths map[int]int
}

// NewTable returns an empty table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers:   headers,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth wraps column col at width runes. Zero removes the limit.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AddRow appends a row. Missing cells are left blank and extra cells dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render returns the table with a header, a dashed rule and one line per
// wrapped row line. Trailing spaces are trimmed.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	wrapped := make([][][]string, len(t.rows))
	for i, row := range t.rows {
		wrapped[i] = make([][]string, len(row))
		for col, cell := range row {
			wrapped[i][col] = wrapText(cell, t.maxWidths[col])
		}
	}

	widths := make([]int, len(t.headers))
	for col, h := range t.headers {
		widths[col] = utf8.RuneCountInString(h)
	}
	for _, row := range wrapped {
		for col, lines := range row {
			for _, line := range lines {
				widths[col] = max(widths[col], utf8.RuneCountInString(line))
			}
		}
	}

	var b strings.Builder
	writeLine := func(cells []string) {
		padded := make([]string, len(cells))
		for col, cell := range cells {
			padded[col] = padRight(cell, widths[col])
		}
		b.WriteString(strings.TrimRight(strings.Join(padded, columnGap), " "))
		b.WriteByte('\n')
	}

	writeLine(t.headers)
	rule := make([]string, len(widths))
	for col, w := range widths {
		rule[col] = strings.Repeat("-", w)
	}
	writeLine(rule)

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			height = max(height, len(lines))
		}
		for i := range height {
			line := make([]string, len(row))
			for col, lines := range row {
				if i < len(lines) {
					line[col] = lines[i]
				}
			}
			writeLine(line)
		}
	}
	return b.String()
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// wrapText splits text into lines of at most width runes, breaking on spaces.
// Words longer than width are split. A width of zero or less disables wrapping.
func wrapText(text string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return []string{text}
	}

	var lines []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
	}

	for _, word := range strings.Fields(text) {
		w := []rune(word)
		for len(w) > width {
			flush()
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(current) == 0:
			current = append(current, w...)
		case len(current)+1+len(w) <= width:
			current = append(current, ' ')
			current = append(current, w...)
		default:
			flush()
			current = append(current, w...)
		}
	}
	flush()

	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
