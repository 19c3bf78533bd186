package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

func focusField(t *testing.T, f *GeneratorForm, field formField) {
	t.Helper()
	for i := 0; i < 10 && f.Focused() != field; i++ {
		f.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	require.Equal(t, field, f.Focused())
}

func TestFormTyping(t *testing.T) {
	f := NewGeneratorForm(models.DefaultConfig())

	changed, _ := f.Update(keyRunes("A"))
	assert.True(t, changed)
	assert.Equal(t, "A", f.Config().BusinessName)
	assert.True(t, f.InTextField())
}

func TestFormCycleSelects(t *testing.T) {
	f := NewGeneratorForm(models.DefaultConfig())
	focusField(t, f, fieldTone)

	changed, _ := f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, changed)
	assert.Equal(t, models.Tones[1], f.Config().Tone)

	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, models.Tones[len(models.Tones)-1], f.Config().Tone, "wraps around")
}

func TestFormToggleFeatures(t *testing.T) {
	f := NewGeneratorForm(models.DefaultConfig())
	focusField(t, f, fieldFeatures)

	f.Update(keyRunes(" "))
	assert.False(t, f.Config().HasFeature(models.Features[0]))

	for i := 0; i < 5; i++ {
		f.Update(tea.KeyMsg{Type: tea.KeyRight})
	}
	f.Update(keyRunes("x"))
	assert.Equal(t, []string{models.Features[1], models.Features[2], models.Features[5]}, f.Config().Features)
}

func TestFormCustomCSSOnlyForCustomStyle(t *testing.T) {
	f := NewGeneratorForm(models.DefaultConfig())
	assert.NotContains(t, f.fields(), fieldCustomCSS)

	cfg := models.DefaultConfig()
	cfg.Style = models.StyleCustom
	cfg.CustomCSS = "body{}"
	f.SetConfig(cfg)
	assert.Contains(t, f.fields(), fieldCustomCSS)
	assert.Contains(t, f.View(), "Custom CSS")

	focusField(t, f, fieldStyle)
	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.NotContains(t, f.fields(), fieldCustomCSS)
	assert.Equal(t, "body{}", f.Config().CustomCSS, "value is kept but not shown")
}

func TestFormApplyExample(t *testing.T) {
	f := NewGeneratorForm(models.DefaultConfig())
	focusField(t, f, fieldExamples)

	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	changed, _ := f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, changed)
	cfg := f.Config()
	assert.Equal(t, models.ExampleConfigs[1].WebsiteType, cfg.WebsiteType)
	assert.Equal(t, "Example Restaurant", cfg.BusinessName)
}
