package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the actuator dashboard palette.
var (
	colorGreen  = lipgloss.Color("#10b981")
	colorYellow = lipgloss.Color("#f59e0b")
	colorRed    = lipgloss.Color("#ef4444")
	colorGray   = lipgloss.Color("#6b7280")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorCyan   = lipgloss.Color("#06b6d4")
	colorWhite  = lipgloss.Color("#f8fafc")
	colorDark   = lipgloss.Color("#1e293b")
	colorAlt    = lipgloss.Color("#0f172a")

	colorSelectedBg = lipgloss.Color("#334155")
)

// Outcome colors, one per charted bucket.
var (
	color200 = lipgloss.Color("#28a745")
	color404 = lipgloss.Color("#007bff")
	color400 = lipgloss.Color("#fd7e14")
	color500 = lipgloss.Color("#dc3545")
)

// Status styles: bold foreground, used for the health indicator.
var (
	StyleStatusUp      = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	StyleStatusWarn    = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	StyleStatusDown    = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	StyleStatusUnknown = lipgloss.NewStyle().Foreground(colorGray)
)

// StyleHeader: full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// StyleOverviewCard: card for the status overview bar.
var StyleOverviewCard = lipgloss.NewStyle().
	Background(colorAlt).
	Foreground(colorWhite).
	Padding(0, 1).
	Margin(0).
	Align(lipgloss.Center)

// StyleChartCard: bordered panel around each chart.
var StyleChartCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorGray).
	Padding(0, 1)

// StyleModal: bordered box for alerts and the trace detail view.
var StyleModal = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2)

// Utility styles.
var (
	StyleError = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	StyleDim   = lipgloss.NewStyle().Foreground(colorGray)
	StyleBold  = lipgloss.NewStyle().Bold(true)
)

// Named color styles for footer and modal text.
var (
	StyleGreen = lipgloss.NewStyle().Foreground(colorGreen)
	StyleCyan  = lipgloss.NewStyle().Foreground(colorCyan)
)

// StatusStyle returns the bold+foreground style for an actuator health status.
// Spring reports UP, DOWN, OUT_OF_SERVICE and UNKNOWN.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "UP":
		return StyleStatusUp
	case "OUT_OF_SERVICE":
		return StyleStatusWarn
	case "DOWN":
		return StyleStatusDown
	default:
		return StyleStatusUnknown
	}
}
