package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// columnDef describes a single column in a table.
type columnDef struct {
	Title string
	Width int // preferred width, used as a proportion of the terminal width
}

// tableModel is the generic base for paginated tables with a row cursor.
type tableModel struct {
	columns  []columnDef
	page     int // 0-indexed
	pageSize int // default 10
	cursor   int // row within the current page
}

// newTableModel initialises a tableModel with sensible defaults.
func newTableModel(cols []columnDef, pageSize int) tableModel {
	if pageSize <= 0 {
		pageSize = 10
	}
	return tableModel{
		columns:  cols,
		pageSize: pageSize,
	}
}

// Update handles keyboard input for row selection and pagination.
// totalRows is the number of rows currently displayed.
func (t tableModel) Update(msg tea.Msg, totalRows int) tableModel {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return t
	}
	switch {
	case key.Matches(km, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(km, keys.Down):
		t.cursor++
	case key.Matches(km, keys.PrevPage):
		if t.page > 0 {
			t.page--
			t.cursor = 0
		}
	case key.Matches(km, keys.NextPage):
		if t.page+1 < pageCount(totalRows, t.pageSize) {
			t.page++
			t.cursor = 0
		}
	}
	t.clampPage(totalRows)
	t.clampCursor(t.currentPageRowCount(totalRows))
	return t
}

// pageCount returns the total number of pages for totalRows rows at pageSize rows per page.
// Always at least 1.
func pageCount(totalRows, pageSize int) int {
	if totalRows == 0 || pageSize <= 0 {
		return 1
	}
	c := totalRows / pageSize
	if totalRows%pageSize != 0 {
		c++
	}
	return c
}

// currentPageIndices returns the slice of row indices visible on the current page.
// allIndices is typically [0, 1, 2, ... n-1].
func currentPageIndices(allIndices []int, page, pageSize int) []int {
	if pageSize <= 0 || len(allIndices) == 0 {
		return allIndices
	}
	start := page * pageSize
	if start >= len(allIndices) {
		start = 0
	}
	end := start + pageSize
	if end > len(allIndices) {
		end = len(allIndices)
	}
	return allIndices[start:end]
}

// clampPage ensures the page index stays within valid bounds given the total
// number of rows and the configured pageSize.
func (t *tableModel) clampPage(totalRows int) {
	pc := pageCount(totalRows, t.pageSize)
	if t.page >= pc {
		t.page = pc - 1
	}
	if t.page < 0 {
		t.page = 0
	}
}

// currentPageRowCount returns how many rows are visible on the current page.
func (t *tableModel) currentPageRowCount(totalRows int) int {
	start := t.page * t.pageSize
	if start >= totalRows {
		return 0
	}
	n := totalRows - start
	if n > t.pageSize {
		n = t.pageSize
	}
	return n
}

// clampCursor keeps the cursor on a visible row.
func (t *tableModel) clampCursor(rowsOnPage int) {
	if t.cursor >= rowsOnPage {
		t.cursor = rowsOnPage - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

// selectedIndex returns the absolute row index under the cursor.
func (t *tableModel) selectedIndex(totalRows int) (int, bool) {
	if t.currentPageRowCount(totalRows) == 0 {
		return 0, false
	}
	return t.page*t.pageSize + t.cursor, true
}

// minColWidth is the narrowest a column is allowed to become.
const minColWidth = 4

// columnWidths distributes available terminal columns across defs in
// proportion to their preferred widths. The last column takes the remainder.
// A non-positive available width returns the preferred widths unchanged.
func columnWidths(available int, defs []columnDef) []int {
	out := make([]int, len(defs))
	if available <= 0 {
		for i, d := range defs {
			out[i] = d.Width
		}
		return out
	}
	total := 0
	for _, d := range defs {
		total += d.Width
	}
	if total == 0 {
		return out
	}
	used := 0
	for i, d := range defs {
		var w int
		if i == len(defs)-1 {
			w = available - used
		} else {
			w = available * d.Width / total
		}
		if w < minColWidth {
			w = minColWidth
		}
		out[i] = w
		used += w
	}
	return out
}

// truncateName shortens s to at most maxWidth terminal cells, ending in "..."
// when there is room for it.
func truncateName(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// sanitize removes ANSI escape sequences and control characters from
// server-supplied strings before they reach the terminal.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == 0x1b:
			i = skipEscape(s, i)
		case r < 0x20, r == 0x7f, r >= 0x80 && r < 0xa0:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// skipEscape returns the index just past the escape sequence whose ESC byte
// precedes s[i].
func skipEscape(s string, i int) int {
	if i >= len(s) {
		return i
	}
	switch s[i] {
	case '[': // CSI: parameters up to a final byte in 0x40-0x7e
		i++
		for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
			i++
		}
		if i < len(s) {
			i++
		}
		return i
	case ']': // OSC: terminated by BEL or ESC \
		i++
		for i < len(s) {
			if s[i] == 0x07 {
				return i + 1
			}
			if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			i++
		}
		return i
	default:
		return i + 1
	}
}
