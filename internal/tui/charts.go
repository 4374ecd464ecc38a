package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/actdash/internal/format"
	"github.com/dm/actdash/internal/model"
)

// chartTitle is the heading shown above both charts.
func chartTitle(snap *model.Snapshot) string {
	return "Last 100 Requests as of " + format.FormatChartDate(snap.TracesAt)
}

// renderCharts renders the bar chart and the share chart side by side (or
// stacked below 80 columns). Returns empty string until the first trace
// window arrives.
func renderCharts(app *App) string {
	snap := &app.snap
	if snap.TracesAt.IsZero() {
		return ""
	}
	width := app.width
	if width <= 0 {
		width = 80
	}

	counts := snap.Buckets.ChartCounts()
	var panelWidth int
	if width < 80 {
		panelWidth = width - 4
	} else {
		panelWidth = width/2 - 4
	}
	if panelWidth < 20 {
		panelWidth = 20
	}

	title := StyleBold.Render(chartTitle(snap))
	bar := StyleChartCard.Width(panelWidth).Render(title + "\n" + renderBarChart(counts, panelWidth-4))
	share := StyleChartCard.Width(panelWidth).Render(title + "\n" + renderShareChart(counts, panelWidth-4))

	if width < 80 {
		return lipgloss.JoinVertical(lipgloss.Left, bar, share)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, bar, share)
}

// renderBarChart renders one horizontal bar per charted bucket, scaled to the
// largest count. counts follows model.ChartBuckets order.
func renderBarChart(counts []int, width int) string {
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	// "404 │" + bar + " 100"
	barWidth := width - 10
	if barWidth < 1 {
		barWidth = 1
	}

	lines := make([]string, 0, len(model.ChartBuckets))
	for i, b := range model.ChartBuckets {
		n := 0
		if i < len(counts) {
			n = counts[i]
		}
		filled := 0
		if maxCount > 0 {
			filled = n * barWidth / maxCount
		}
		if n > 0 && filled == 0 {
			filled = 1
		}
		bar := lipgloss.NewStyle().Foreground(bucketColor(b)).Render(strings.Repeat("█", filled))
		lines = append(lines, fmt.Sprintf("%-3s │%s%s %d", b.Label(), bar, strings.Repeat(" ", barWidth-filled), n))
	}
	return strings.Join(lines, "\n")
}

// renderShareChart renders the charted buckets as one stacked bar followed by
// a legend with each bucket's share of the charted total.
func renderShareChart(counts []int, width int) string {
	total := 0
	for _, c := range counts {
		total += c
	}
	if width < 1 {
		width = 1
	}
	if total == 0 {
		return StyleDim.Render(strings.Repeat("░", width)) + "\n" + StyleDim.Render("no charted requests")
	}

	segs := shareSegments(counts, width)
	var bar strings.Builder
	legend := make([]string, 0, len(model.ChartBuckets))
	for i, b := range model.ChartBuckets {
		style := lipgloss.NewStyle().Foreground(bucketColor(b))
		bar.WriteString(style.Render(strings.Repeat("█", segs[i])))
		pct := float64(counts[i]) / float64(total) * 100
		legend = append(legend, style.Render("■")+" "+b.Label()+" "+format.FormatPercent(pct))
	}
	return bar.String() + "\n" + strings.Join(legend, "  ")
}

// shareSegments splits width cells among counts proportionally using largest
// remainders, so the segments always add up to width exactly.
func shareSegments(counts []int, width int) []int {
	segs := make([]int, len(counts))
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 || width <= 0 {
		return segs
	}
	rem := make([]int, len(counts))
	used := 0
	for i, c := range counts {
		segs[i] = c * width / total
		rem[i] = c * width % total
		used += segs[i]
	}
	for used < width {
		best := 0
		for i := range rem {
			if rem[i] > rem[best] {
				best = i
			}
		}
		segs[best]++
		rem[best] = -1
		used++
	}
	return segs
}
