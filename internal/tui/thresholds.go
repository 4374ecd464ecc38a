package tui

import "github.com/charmbracelet/lipgloss"

// severity represents the alert level for a metric value.
type severity int

const (
	severityNormal   severity = iota
	severityWarning           // yellow
	severityCritical          // red
)

// diskUsedSeverity returns Warning when disk usage > 80%, Critical when > 90%.
func diskUsedSeverity(pct float64) severity {
	switch {
	case pct > 90:
		return severityCritical
	case pct > 80:
		return severityWarning
	default:
		return severityNormal
	}
}

// errorShareSeverity returns Warning when more than 5% of the window are 500s,
// Critical above 20%.
func errorShareSeverity(pct float64) severity {
	switch {
	case pct > 20:
		return severityCritical
	case pct > 5:
		return severityWarning
	default:
		return severityNormal
	}
}

// severityFg returns the card foreground color for a severity.
func severityFg(s severity) lipgloss.Color {
	switch s {
	case severityWarning:
		return colorYellow
	case severityCritical:
		return colorRed
	default:
		return colorWhite
	}
}
