package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/dm/actdash/internal/client"
	"github.com/dm/actdash/internal/engine"
	"github.com/dm/actdash/internal/format"
)

// modalWidth returns the modal box width for the current terminal.
func modalWidth(app *App) int {
	w := app.width - 8
	if app.width <= 0 {
		w = 72
	}
	if w > 100 {
		w = 100
	}
	if w < 30 {
		w = 30
	}
	return w
}

// renderAlert renders the oldest queued failure as a blocking modal.
func renderAlert(app *App) string {
	if len(app.alerts) == 0 {
		return ""
	}
	a := app.alerts[0]
	w := modalWidth(app)

	lines := []string{
		StyleError.Render(a.Title),
		"",
		StyleBold.Render(classifyError(a.Err)),
	}
	if a.Err != nil {
		lines = append(lines, lipgloss.NewStyle().Width(w-6).Render(sanitize(a.Err.Error())))
	}
	lines = append(lines, "")
	hint := "enter/esc: dismiss"
	if n := len(app.alerts) - 1; n > 0 {
		hint += fmt.Sprintf("  (%d more)", n)
	}
	lines = append(lines, StyleDim.Render(hint))

	return StyleModal.
		BorderForeground(colorRed).
		Width(w).
		Render(strings.Join(lines, "\n"))
}

// renderTraceDetail renders one trace in full, including its request and
// response headers.
func renderTraceDetail(app *App, tr client.HTTPTrace) string {
	w := modalWidth(app)
	label := func(s string) string { return StyleDim.Render(fmt.Sprintf("%-12s", s)) }

	when := sanitize(tr.Timestamp)
	if ts := tr.Time(); !ts.IsZero() {
		when += "  (" + humanize.Time(ts) + ")"
	}
	status := lipgloss.NewStyle().Bold(true).
		Foreground(bucketColor(engine.BucketFor(tr))).
		Render(statusText(tr))

	lines := []string{
		StyleBold.Render(sanitize(tr.Request.Method) + " " + sanitize(tr.Request.URI)),
		"",
		label("Status") + status,
		label("Time Taken") + format.FormatMillis(tr.TimeTaken),
		label("Timestamp") + when,
	}
	if tr.Request.RemoteAddress != "" {
		lines = append(lines, label("Remote")+sanitize(tr.Request.RemoteAddress))
	}
	if tr.Principal != "" {
		lines = append(lines, label("Principal")+sanitize(tr.Principal))
	}
	if tr.Session != "" {
		lines = append(lines, label("Session")+sanitize(tr.Session))
	}
	lines = append(lines, renderHeaders("Request headers", tr.Request.Headers, w-6)...)
	lines = append(lines, renderHeaders("Response headers", tr.Response.Headers, w-6)...)
	lines = append(lines, "", StyleDim.Render("enter/esc: close"))

	return StyleModal.
		BorderForeground(colorBlue).
		Width(w).
		Render(strings.Join(lines, "\n"))
}

// renderHeaders renders a header map sorted by name, one line per header.
func renderHeaders(title string, h map[string][]string, width int) []string {
	if len(h) == 0 {
		return nil
	}
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	sort.Strings(names)

	out := []string{"", StyleCyan.Render(title)}
	for _, k := range names {
		line := sanitize(k) + ": " + sanitize(strings.Join(h[k], ", "))
		out = append(out, "  "+truncateName(line, width-2))
	}
	return out
}
