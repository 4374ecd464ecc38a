package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/dm/actdash/internal/client"
	"github.com/dm/actdash/internal/engine"
	"github.com/dm/actdash/internal/format"
	"github.com/dm/actdash/internal/model"
)

// traceColumns are the trace table columns, in the same order as the CSV export.
var traceColumns = []columnDef{
	{Title: "Time Stamp", Width: 26},
	{Title: "Method", Width: 8},
	{Title: "Time Taken", Width: 11},
	{Title: "Status", Width: 7},
	{Title: "URI", Width: 40},
}

// traceTable is the paginated HTTP trace list.
type traceTable struct {
	tableModel
	rows []client.HTTPTrace
}

func newTraceTable(pageSize int) traceTable {
	return traceTable{tableModel: newTableModel(traceColumns, pageSize)}
}

// SetData replaces the table rows, keeping the page and cursor when they are
// still in range.
func (m *traceTable) SetData(rows []client.HTTPTrace) {
	m.rows = rows
	m.clampPage(len(m.rows))
	m.clampCursor(m.currentPageRowCount(len(m.rows)))
}

// Update handles navigation keys.
func (m traceTable) Update(msg tea.KeyMsg) traceTable {
	m.tableModel = m.tableModel.Update(msg, len(m.rows))
	return m
}

// Selected returns the trace under the cursor.
func (m traceTable) Selected() (client.HTTPTrace, bool) {
	idx, ok := m.selectedIndex(len(m.rows))
	if !ok || idx >= len(m.rows) {
		return client.HTTPTrace{}, false
	}
	return m.rows[idx], true
}

// render renders the "HTTP Traces" section: a title line and the current page.
func (m traceTable) render(app *App) string {
	pc := pageCount(len(m.rows), m.pageSize)
	hdr := StyleDim.Render(fmt.Sprintf("HTTP Traces  [↑↓: select]  [←→: page]  [enter: detail]  Page %d/%d", m.page+1, pc))

	allIdx := make([]int, len(m.rows))
	for i := range m.rows {
		allIdx[i] = i
	}
	pageIdx := currentPageIndices(allIdx, m.page, m.pageSize)
	if len(pageIdx) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, hdr, StyleDim.Render("  (no traces)"))
	}

	width := 0
	if app != nil {
		width = app.width
	}
	widths := columnWidths(width-2, m.columns)

	headers := make([]string, len(m.columns))
	for i, c := range m.columns {
		headers[i] = c.Title
	}

	statuses := make([]model.Bucket, len(pageIdx))
	for i, idx := range pageIdx {
		statuses[i] = engine.BucketFor(m.rows[idx])
	}
	cursor := m.cursor

	t := ltable.New().
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(colorGray)
			}
			base := lipgloss.NewStyle()
			switch {
			case row == cursor:
				base = base.Background(colorSelectedBg).Bold(true)
			case row%2 == 0:
				base = base.Background(colorAlt)
			}
			if col == 3 && row < len(statuses) {
				return base.Foreground(bucketColor(statuses[row]))
			}
			return base.Foreground(colorWhite)
		}).
		BorderStyle(lipgloss.NewStyle().Foreground(colorGray)).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(true).
		BorderColumn(false)

	if width > 0 {
		t = t.Width(width)
	}

	for _, idx := range pageIdx {
		tr := m.rows[idx]
		cells := make([]string, len(m.columns))
		for col := range m.columns {
			cells[col] = truncateName(traceCellValue(tr, col), widths[col])
		}
		t = t.Row(cells...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, hdr, t.String())
}

// traceCellValue formats a trace field for a given column index.
func traceCellValue(tr client.HTTPTrace, col int) string {
	switch col {
	case 0:
		return sanitize(tr.Timestamp)
	case 1:
		return sanitize(tr.Request.Method)
	case 2:
		return format.FormatMillis(tr.TimeTaken)
	case 3:
		return statusText(tr)
	case 4:
		return sanitize(tr.Request.URI)
	default:
		return ""
	}
}

// statusText renders a trace status code, or "---" when it is not an integer.
func statusText(tr client.HTTPTrace) string {
	code, ok := tr.Status()
	if !ok {
		return "---"
	}
	return strconv.Itoa(code)
}

// bucketColor maps an outcome bucket to its chart color.
func bucketColor(b model.Bucket) lipgloss.Color {
	switch b {
	case model.Bucket200:
		return color200
	case model.Bucket404:
		return color404
	case model.Bucket400:
		return color400
	case model.Bucket500:
		return color500
	default:
		return colorGray
	}
}
