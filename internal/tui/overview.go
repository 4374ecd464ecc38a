package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/actdash/internal/format"
	"github.com/dm/actdash/internal/model"
)

// hasData reports whether any source has delivered at least once.
func hasData(s *model.Snapshot) bool {
	return !s.TracesAt.IsZero() || s.CPU != nil || s.Health != nil || s.Uptime.Running()
}

// renderOverview renders the 5-card status bar: health, CPU count, disk free,
// uptime, traces in window. Cards for sources that have not answered yet show
// "---". Narrow terminals (< 80 cols) stack the cards 2+2+1.
// Returns empty string until the first response of any kind.
func renderOverview(app *App) string {
	snap := &app.snap
	if !hasData(snap) {
		return ""
	}

	width := app.width
	if width <= 0 {
		width = 80
	}
	narrowMode := width < 80

	var cardWidth int
	if narrowMode {
		cardWidth = (width - 4) / 2
		if cardWidth < 10 {
			cardWidth = 10
		}
	} else {
		cardWidth = (width - 10) / 5
		if cardWidth < 8 {
			cardWidth = 8
		}
	}
	barWidth := cardWidth - 4
	if barWidth < 4 {
		barWidth = 4
	}

	// Card 1: health status on a colored background.
	statusText := strings.ToUpper(sanitize(snap.Health.Status()))
	if statusText == "" {
		statusText = "UNKNOWN"
	}
	var statusBg lipgloss.Color
	switch snap.Health.Status() {
	case "UP":
		statusBg = colorGreen
	case "OUT_OF_SERVICE":
		statusBg = colorYellow
	case "DOWN":
		statusBg = colorRed
	default:
		statusBg = colorGray
	}
	card1 := StyleOverviewCard.
		Background(statusBg).
		Foreground(colorDark).
		Bold(true).
		Width(cardWidth).
		Render(statusText + "\nHealth")

	// Card 2: CPU count.
	cpuText := "---"
	if n := snap.CPUCount(); n >= 0 {
		cpuText = strconv.FormatFloat(n, 'f', -1, 64)
	}
	card2 := StyleOverviewCard.
		Foreground(colorBlue).
		Width(cardWidth).
		Render(cpuText + "\nCPUs")

	// Card 3: disk free with a usage bar, threshold-colored.
	diskText, diskBar := "---", renderMiniBar(0, barWidth)
	diskSev := severityNormal
	if h := snap.Health; h != nil {
		diskText = h.DiskFree
		if total := h.Raw.Components.DiskSpace.Details.Total; total > 0 {
			usedPct := float64(total-h.DiskFreeBytes) / float64(total) * 100
			diskSev = diskUsedSeverity(usedPct)
			diskBar = renderMiniBar(usedPct, barWidth)
			diskText += " / " + format.FormatBytes(total)
		}
	}
	if diskSev == severityCritical {
		diskText += "!"
	}
	card3 := StyleOverviewCard.
		Foreground(severityFg(diskSev)).
		Width(cardWidth).
		Render(diskText + "\n" + diskBar + "\nDisk Free")

	// Card 4: uptime, advanced locally once a second.
	upText := "---"
	if snap.Uptime.Running() {
		upText = snap.Uptime.String()
	}
	card4 := StyleOverviewCard.
		Foreground(colorCyan).
		Width(cardWidth).
		Render(upText + "\nUptime")

	// Card 5: traces in the window with the 500 share.
	traceText := "---"
	errSev := severityNormal
	if !snap.TracesAt.IsZero() {
		total := snap.Buckets.Total()
		traceText = format.FormatNumber(int64(total))
		if total > 0 {
			pct := float64(snap.Buckets.Len(model.Bucket500)) / float64(total) * 100
			errSev = errorShareSeverity(pct)
			traceText += "  " + format.FormatPercent(pct) + " 5xx"
		}
	}
	card5 := StyleOverviewCard.
		Foreground(severityFg(errSev)).
		Width(cardWidth).
		Render(traceText + "\nTraces")

	if narrowMode {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, card1, card2)
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, card3, card4)
		return lipgloss.JoinVertical(lipgloss.Left, row1, row2, card5)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, card1, card2, card3, card4, card5)
}

// renderMiniBar renders a mini progress bar using Unicode block characters.
// Fills proportionally using "█" (U+2588) for filled and "░" (U+2591) for empty cells.
func renderMiniBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
