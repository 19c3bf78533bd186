package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/sitesmith/sitesmith-cli/pkg/prompt"
)

// BuilderModel shows the generated code and lets the user edit it
type BuilderModel struct {
	preview viewport.Model
	editor  textarea.Model
	editing bool
	code    string
	width   int
	height  int
}

func NewBuilderModel() *BuilderModel {
	editor := textarea.New()
	editor.ShowLineNumbers = true
	editor.CharLimit = 0
	editor.MaxHeight = 0

	b := &BuilderModel{
		preview: viewport.New(80, 20),
		editor:  editor,
	}
	return b
}

func (b *BuilderModel) SetSize(width, height int) {
	b.width = width
	b.height = height
	b.preview.Width = max(width-6, 20)
	b.preview.Height = max(height, 5)
	b.editor.SetWidth(max(width-6, 20))
	b.editor.SetHeight(max(height, 5))
	b.refreshPreview()
}

// SetCode replaces the shown code unless the user is mid-edit
func (b *BuilderModel) SetCode(code string) {
	if b.editing || code == b.code {
		return
	}
	b.code = code
	b.refreshPreview()
}

func (b *BuilderModel) Code() string {
	return b.code
}

func (b *BuilderModel) Editing() bool {
	return b.editing
}

func (b *BuilderModel) refreshPreview() {
	b.preview.SetContent(wordwrap.String(b.code, b.preview.Width))
}

// StartEditing moves the code into the editor
func (b *BuilderModel) StartEditing() tea.Cmd {
	b.editing = true
	b.editor.SetValue(b.code)
	return b.editor.Focus()
}

// StopEditing commits the editor content and reports whether it changed
func (b *BuilderModel) StopEditing() bool {
	b.editing = false
	b.editor.Blur()
	edited := b.editor.Value()
	if edited == b.code {
		return false
	}
	b.code = edited
	b.refreshPreview()
	return true
}

// CancelEditing closes the editor and drops its content
func (b *BuilderModel) CancelEditing() {
	b.editing = false
	b.editor.Blur()
	b.editor.SetValue(b.code)
}

func (b *BuilderModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if b.editing {
		b.editor, cmd = b.editor.Update(msg)
		return cmd
	}
	b.preview, cmd = b.preview.Update(msg)
	return cmd
}

// Summary is the one-line status shown above the code
func (b *BuilderModel) Summary() string {
	lines := 0
	if b.code != "" {
		lines = strings.Count(b.code, "\n") + 1
	}
	mode := "preview"
	if b.editing {
		mode = "editing"
	}
	return fmt.Sprintf("%s · %d lines · %.1f KB · %s",
		mode, lines, float64(len(b.code))/1024, prompt.FormatTokenCount(prompt.EstimateTokens(b.code)))
}

func (b *BuilderModel) View() string {
	if b.editing {
		return b.editor.View()
	}
	return b.preview.View()
}
