package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top header bar with the base URL, health and timing info.
//
// Layout:
//
//	left:   actuator base URL
//	center: colored "● STATUS" health indicator ("● CONNECTING" before the first health response)
//	right:  "Refreshing..." while fetches are in flight, else "Last: HH:MM:SS" plus the auto refresh interval
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	left := ""
	if app.client != nil {
		left = app.client.BaseURL()
	}

	var center string
	if app.snap.Health == nil {
		center = StyleStatusUnknown.Render("● CONNECTING")
	} else {
		status := strings.ToUpper(sanitize(app.snap.Health.Status()))
		if status == "" {
			status = "UNKNOWN"
		}
		center = StatusStyle(app.snap.Health.Status()).Render("● " + status)
	}

	var right string
	switch {
	case app.fetching():
		right = StyleDim.Render("Refreshing...")
	case app.lastUpdated.IsZero():
		right = StyleDim.Render("Press r to refresh")
	default:
		right = "Last: " + app.lastUpdated.Format("15:04:05")
		if app.interval > 0 {
			right += "  Every: " + formatDuration(app.interval)
		}
		right = StyleDim.Render(right)
	}

	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	centerVW := lipgloss.Width(center)
	rightVW := lipgloss.Width(right)

	// Truncate the URL so the row never wraps.
	if maxLeft := innerWidth - centerVW - rightVW - 2; lipgloss.Width(left) > maxLeft {
		left = truncateName(left, maxLeft)
	}
	leftVW := lipgloss.Width(left)

	spacing := innerWidth - leftVW - centerVW - rightVW
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).MaxWidth(width).Render(row)
}

// formatDuration formats an interval compactly, e.g. "10s", "2m" or "1m30s".
func formatDuration(d time.Duration) string {
	if d >= time.Minute {
		m := int(d / time.Minute)
		s := int((d % time.Minute) / time.Second)
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
