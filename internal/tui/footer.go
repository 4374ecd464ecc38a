package tui

// renderFooter renders the key binding help footer at full terminal width.
// A status line (e.g. the last export path) is shown above it when set.
// When app.showHelp is true, shows all key bindings; otherwise a brief hint.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	text := "? for help"
	if app.showHelp {
		text = helpText
	}
	footer := StyleDim.Width(width).Render(text)
	if app.statusMsg != "" {
		return StyleGreen.Width(width).Render(sanitize(app.statusMsg)) + "\n" + footer
	}
	return footer
}
