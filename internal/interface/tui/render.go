package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	idColWidth     = 11
	nameColWidth   = 32
	descColWidth   = 32
	statusColWidth = 17
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))

	tableHeadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// columnString fits text into a fixed-width column, truncating with an
// ellipsis when it does not fit.
func columnString(text string, width int) string {
	runes := []rune(text)
	if len(runes) > width {
		if width <= 3 {
			return string(runes[:width])
		}
		return string(runes[:width-3]) + "..."
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}

func tableRow(idWidth, nameWidth, statusWidth int, id, name, status string) string {
	return fmt.Sprintf("%s | %s | %s",
		columnString(id, idWidth),
		columnString(name, nameWidth),
		columnString(status, statusWidth))
}

func detailRow(id, name, description, status string) string {
	return fmt.Sprintf("%s | %s | %s | %s",
		columnString(id, idColWidth),
		columnString(name, nameColWidth),
		columnString(description, descColWidth),
		columnString(status, statusColWidth))
}
