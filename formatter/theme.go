package formatter

import "github.com/charmbracelet/lipgloss"

// Theme maps output methods to prefix styles. Info and Debug share
// the Log style; pass-through methods carry no prefix at all.
type Theme struct {
	Log   lipgloss.Style
	Warn  lipgloss.Style
	Trace lipgloss.Style
	Error lipgloss.Style
}

// Default returns the stock theme: sea-green log lines, goldenrod
// warnings, gray traces, red errors.
func Default() Theme {
	return Theme{
		Log:   lipgloss.NewStyle().Foreground(lipgloss.Color("#20B2AA")),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#DAA520")),
		Trace: lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")),
	}
}

// Method returns the style for an output method name. Unknown methods
// fall back to the Log style.
func (t Theme) Method(method string) lipgloss.Style {
	switch method {
	case "warn":
		return t.Warn
	case "trace":
		return t.Trace
	case "error":
		return t.Error
	default: // log, info, debug
		return t.Log
	}
}

// Prefix renders the namespace prefix for one call, e.g. "[request]:"
// in the method's color.
func (t Theme) Prefix(name, method string) string {
	return t.Method(method).Render("[" + name + "]:")
}

// CustomPrefix renders the prefix in an arbitrary color, for log
// functions bound to a fixed color. The color accepts anything
// lipgloss does: hex strings or ANSI palette indexes.
func CustomPrefix(name, color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("[" + name + "]:")
}
