package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sitesmith/sitesmith-cli/pkg/controller"
)

// Version is shown in the header; main overrides it at startup
var Version = "dev"

func renderHeader(width int, active controller.View, hasCode bool) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true)

	logo := logoStyle.Render("◆ sitesmith") + DescriptionStyle.Render(" "+Version)

	var tabs []string
	for i, v := range controller.Views {
		label := fmt.Sprintf("F%d %s", i+1, v)
		switch {
		case v == active:
			tabs = append(tabs, ActiveTabStyle.Render(label))
		case v == controller.ViewBuilder && !hasCode:
			tabs = append(tabs, DisabledTabStyle.Render(label))
		default:
			tabs = append(tabs, InactiveTabStyle.Render(label))
		}
	}
	tabRow := strings.Join(tabs, " ")

	contentWidth := width - 2
	gap := contentWidth - lipgloss.Width(tabRow) - lipgloss.Width(logo)
	if gap < 1 {
		gap = 1
	}

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return headerPadding.Render(tabRow + strings.Repeat(" ", gap) + logo)
}

// formatHelpText joins key hints with a dim separator
func formatHelpText(help []string) string {
	return HelpStyle.Render(strings.Join(help, " • "))
}

func renderHelp(width int, help []string) string {
	helpBorderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorInactive)).
		Width(max(width-4, 10)).
		Padding(0, 1)

	aligned := lipgloss.NewStyle().
		Width(max(width-8, 10)).
		Align(lipgloss.Right).
		Render(formatHelpText(help))

	return lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Render(helpBorderStyle.Render(aligned))
}
