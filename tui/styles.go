package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorOrange  = lipgloss.Color("#FFB86C")
	colorRed     = lipgloss.Color("#FF5555")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	tabStyle    = lipgloss.NewStyle().Foreground(colorGray)
	activeTab   = lipgloss.NewStyle().Bold(true).Foreground(colorMagenta)
	labelStyle  = lipgloss.NewStyle().Foreground(colorGray)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMagenta)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	helpStyle   = lipgloss.NewStyle().Foreground(colorGray)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)
)

// processPalette cycles per process id so adjacent Gantt lanes stay distinct.
var processPalette = []lipgloss.Color{
	colorGreen, colorCyan, colorYellow, colorMagenta, colorOrange, colorRed,
}

func processStyle(id int) lipgloss.Style {
	color := processPalette[((id%len(processPalette))+len(processPalette))%len(processPalette)]
	return lipgloss.NewStyle().Foreground(color)
}
