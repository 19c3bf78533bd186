package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ViewTitle renders the standard pane title used by every tab
type ViewTitle struct {
	text string
}

func NewViewTitle(text string) *ViewTitle {
	return &ViewTitle{text: text}
}

// View renders the title with white text on black background
func (v *ViewTitle) View() string {
	if v.text == "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 1)

	return titleStyle.Render(v.text)
}

// ViewWithAlignment renders the title left aligned inside width
func (v *ViewTitle) ViewWithAlignment(width int) string {
	if v.text == "" {
		return ""
	}

	alignStyle := lipgloss.NewStyle().
		Width(width).
		PaddingLeft(1).
		PaddingRight(1)

	return alignStyle.Render(v.View())
}
