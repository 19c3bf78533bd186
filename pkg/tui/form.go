package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

type formField int

const (
	fieldBusinessName formField = iota
	fieldDescription
	fieldWebsiteType
	fieldTone
	fieldFeatures
	fieldStyle
	fieldCustomCSS
	fieldExamples
)

var fieldLabels = map[formField]string{
	fieldBusinessName: "Business Name",
	fieldDescription:  "Description",
	fieldWebsiteType:  "Website Type",
	fieldTone:         "Tone",
	fieldFeatures:     "Features",
	fieldStyle:        "Style",
	fieldCustomCSS:    "Custom CSS",
	fieldExamples:     "Examples",
}

// GeneratorForm edits a WebsiteConfig
type GeneratorForm struct {
	name        textinput.Model
	description textarea.Model
	customCSS   textarea.Model

	cfg           models.WebsiteConfig
	focus         formField
	featureCursor int
	exampleCursor int
	width         int
}

func NewGeneratorForm(cfg models.WebsiteConfig) *GeneratorForm {
	name := textinput.New()
	name.Placeholder = "e.g. Acme Coffee Roasters"
	name.CharLimit = 120

	description := textarea.New()
	description.Placeholder = "What does the business do? Who is it for?"
	description.ShowLineNumbers = false
	description.SetHeight(3)

	css := textarea.New()
	css.Placeholder = "body { font-family: serif; }"
	css.SetHeight(4)

	f := &GeneratorForm{
		name:        name,
		description: description,
		customCSS:   css,
	}
	f.SetConfig(cfg)
	f.SetWidth(80)
	f.name.Focus()
	return f
}

// SetConfig replaces every field
func (f *GeneratorForm) SetConfig(cfg models.WebsiteConfig) {
	f.cfg = cfg.Clone()
	f.name.SetValue(cfg.BusinessName)
	f.description.SetValue(cfg.Description)
	f.customCSS.SetValue(cfg.CustomCSS)
	if !f.visible(f.focus) {
		f.setFocus(fieldStyle)
	}
}

// Config returns the form as a WebsiteConfig
func (f *GeneratorForm) Config() models.WebsiteConfig {
	cfg := f.cfg.Clone()
	cfg.BusinessName = f.name.Value()
	cfg.Description = f.description.Value()
	cfg.CustomCSS = f.customCSS.Value()
	return cfg
}

func (f *GeneratorForm) SetWidth(width int) {
	f.width = width
	inner := max(width-8, 20)
	f.name.Width = inner
	f.description.SetWidth(inner)
	f.customCSS.SetWidth(inner)
}

// Focused returns the field receiving keys
func (f *GeneratorForm) Focused() formField {
	return f.focus
}

// InTextField reports whether printable keys are consumed as text
func (f *GeneratorForm) InTextField() bool {
	switch f.focus {
	case fieldBusinessName, fieldDescription, fieldCustomCSS:
		return true
	}
	return false
}

func (f *GeneratorForm) visible(field formField) bool {
	if field == fieldCustomCSS {
		return f.cfg.Style == models.StyleCustom
	}
	return true
}

func (f *GeneratorForm) fields() []formField {
	var out []formField
	for field := fieldBusinessName; field <= fieldExamples; field++ {
		if f.visible(field) {
			out = append(out, field)
		}
	}
	return out
}

func (f *GeneratorForm) setFocus(field formField) {
	f.focus = field
	f.name.Blur()
	f.description.Blur()
	f.customCSS.Blur()
	switch field {
	case fieldBusinessName:
		f.name.Focus()
	case fieldDescription:
		f.description.Focus()
	case fieldCustomCSS:
		f.customCSS.Focus()
	}
}

func (f *GeneratorForm) moveFocus(delta int) {
	fields := f.fields()
	idx := 0
	for i, field := range fields {
		if field == f.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	f.setFocus(fields[idx])
}

func cycle(options []string, current string, delta int) string {
	idx := models.IndexOf(options, current)
	if idx < 0 {
		return options[0]
	}
	return options[(idx+delta+len(options))%len(options)]
}

// Update handles a key and reports whether the config changed
func (f *GeneratorForm) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "tab":
		f.moveFocus(1)
		return false, nil
	case "shift+tab":
		f.moveFocus(-1)
		return false, nil
	}

	switch f.focus {
	case fieldBusinessName:
		before := f.name.Value()
		var cmd tea.Cmd
		f.name, cmd = f.name.Update(msg)
		return f.name.Value() != before, cmd
	case fieldDescription:
		before := f.description.Value()
		var cmd tea.Cmd
		f.description, cmd = f.description.Update(msg)
		return f.description.Value() != before, cmd
	case fieldCustomCSS:
		before := f.customCSS.Value()
		var cmd tea.Cmd
		f.customCSS, cmd = f.customCSS.Update(msg)
		return f.customCSS.Value() != before, cmd
	}

	delta := 0
	switch msg.String() {
	case "left", "h":
		delta = -1
	case "right", "l":
		delta = 1
	}

	switch f.focus {
	case fieldWebsiteType:
		if delta != 0 {
			f.cfg.WebsiteType = cycle(models.WebsiteTypes, f.cfg.WebsiteType, delta)
			return true, nil
		}
	case fieldTone:
		if delta != 0 {
			f.cfg.Tone = cycle(models.Tones, f.cfg.Tone, delta)
			return true, nil
		}
	case fieldStyle:
		if delta != 0 {
			f.cfg.Style = cycle(models.Styles, f.cfg.Style, delta)
			return true, nil
		}
	case fieldFeatures:
		if delta != 0 {
			f.featureCursor = (f.featureCursor + delta + len(models.Features)) % len(models.Features)
			return false, nil
		}
		if msg.String() == " " || msg.String() == "x" {
			f.cfg = f.cfg.ToggleFeature(models.Features[f.featureCursor])
			return true, nil
		}
	case fieldExamples:
		if delta != 0 {
			f.exampleCursor = (f.exampleCursor + delta + len(models.ExampleConfigs)) % len(models.ExampleConfigs)
			return false, nil
		}
		if msg.String() == "enter" {
			f.SetConfig(models.ApplyExample(f.Config(), models.ExampleConfigs[f.exampleCursor]))
			return true, nil
		}
	}
	return false, nil
}

func (f *GeneratorForm) label(field formField) string {
	if f.focus == field {
		return FocusedLabelStyle.Render("▸ " + fieldLabels[field])
	}
	return LabelStyle.Render("  " + fieldLabels[field])
}

func renderChoice(options []string, current string, focused bool) string {
	var parts []string
	for _, o := range options {
		switch {
		case o == current && focused:
			parts = append(parts, SelectedStyle.Render(o))
		case o == current:
			parts = append(parts, CursorStyle.Render(o))
		default:
			parts = append(parts, NormalStyle.Render(o))
		}
	}
	return strings.Join(parts, DescriptionStyle.Render(" · "))
}

func (f *GeneratorForm) View() string {
	indent := lipgloss.NewStyle().PaddingLeft(4).Width(max(f.width-4, 20))
	var b strings.Builder

	for _, field := range f.fields() {
		focused := f.focus == field
		b.WriteString(f.label(field))
		b.WriteString("\n")

		var body string
		switch field {
		case fieldBusinessName:
			body = f.name.View()
		case fieldDescription:
			body = f.description.View()
		case fieldCustomCSS:
			body = f.customCSS.View()
		case fieldWebsiteType:
			body = renderChoice(models.WebsiteTypes, f.cfg.WebsiteType, focused)
		case fieldTone:
			body = renderChoice(models.Tones, f.cfg.Tone, focused)
		case fieldStyle:
			body = renderChoice(models.Styles, f.cfg.Style, focused)
		case fieldFeatures:
			var parts []string
			for i, feature := range models.Features {
				box := "[ ]"
				if f.cfg.HasFeature(feature) {
					box = "[x]"
				}
				item := box + " " + feature
				if focused && i == f.featureCursor {
					parts = append(parts, SelectedStyle.Render(item))
				} else {
					parts = append(parts, NormalStyle.Render(item))
				}
			}
			body = strings.Join(parts, "  ")
		case fieldExamples:
			var parts []string
			for i, ex := range models.ExampleConfigs {
				if focused && i == f.exampleCursor {
					parts = append(parts, SelectedStyle.Render(ex.WebsiteType))
				} else {
					parts = append(parts, NormalStyle.Render(ex.WebsiteType))
				}
			}
			body = strings.Join(parts, "  ")
		}

		b.WriteString(indent.Render(body))
		b.WriteString("\n")
	}
	return b.String()
}
