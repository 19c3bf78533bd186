package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // Single line under the content
	ConfirmTypeDialog                         // Bordered, centered dialog
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string
	Message     string
	Warning     string // Optional, shown in orange
	Destructive bool   // Yes is red, No is green
	DefaultYes  bool   // Enter confirms instead of cancelling
	Type        ConfirmationType
	Width       int
}

// ConfirmationModel is a y/n prompt that captures keys while active
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update resolves the prompt on y, n, esc or enter; other keys are swallowed
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	var accept bool
	switch msg.String() {
	case "y", "Y":
		accept = true
	case "n", "N", "esc":
	case "enter":
		accept = m.config.DefaultYes
	default:
		return nil
	}

	m.active = false
	next := m.onCancel
	if accept {
		next = m.onConfirm
	}
	if next == nil {
		return nil
	}
	return next()
}

func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	if m.config.Type == ConfirmTypeDialog {
		return m.renderDialog()
	}
	return m.renderInline()
}

func (m *ConfirmationModel) renderInline() string {
	message := fmt.Sprintf("%s %s", m.config.Message, formatConfirmOptions(m.config))
	if m.config.Width > 0 && lipgloss.Width(message) < m.config.Width {
		return lipgloss.NewStyle().
			Width(m.config.Width).
			Align(lipgloss.Center).
			Render(message)
	}
	return message
}

func (m *ConfirmationModel) renderDialog() string {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(1, 2)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning))

	width := m.config.Width
	if width == 0 {
		width = 60
	}
	center := lipgloss.NewStyle().Width(width - 6).Align(lipgloss.Center)

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(center.Render(headerStyle.Render(m.config.Title)))
		b.WriteString("\n\n")
	}
	b.WriteString(center.Render(m.config.Message))
	b.WriteString("\n")
	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(warningStyle.Render(m.config.Warning)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(center.Render(formatConfirmOptions(m.config)))

	return borderStyle.Width(width).Render(b.String())
}

// formatConfirmOptions renders the y/n hint with the enter default in
// upper case. Destructive prompts colour yes red and no green.
func formatConfirmOptions(config ConfirmationConfig) string {
	yesColor, noColor := ColorSuccess, ColorDanger
	if config.Destructive {
		yesColor, noColor = noColor, yesColor
	}
	y, n := "y", "N"
	if config.DefaultYes {
		y, n = "Y", "n"
	}
	yes := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(yesColor)).Render(y)
	no := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(noColor)).Render(n)
	return fmt.Sprintf("[%s/%s]", yes, no)
}
