package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFeature(t *testing.T) {
	cfg := WebsiteConfig{Features: []string{"Hero Section", "Testimonials"}}

	added := cfg.ToggleFeature("Contact Form")
	assert.Equal(t, []string{"Hero Section", "Testimonials", "Contact Form"}, added.Features)
	assert.Equal(t, []string{"Hero Section", "Testimonials"}, cfg.Features, "receiver is not modified")

	removed := added.ToggleFeature("Hero Section")
	assert.Equal(t, []string{"Testimonials", "Contact Form"}, removed.Features)
	assert.Equal(t, []string{"Hero Section", "Testimonials", "Contact Form"}, added.Features)
}

func TestCloneSharesNothing(t *testing.T) {
	cfg := WebsiteConfig{BusinessName: "Acme", Features: []string{"Hero Section"}}
	clone := cfg.Clone()
	clone.Features[0] = "changed"

	assert.Equal(t, "Hero Section", cfg.Features[0])
	assert.Nil(t, WebsiteConfig{}.Clone().Features)
}

func TestUsesCustomCSS(t *testing.T) {
	tests := []struct {
		name  string
		style string
		css   string
		want  bool
	}{
		{"custom with css", StyleCustom, "body{}", true},
		{"custom without css", StyleCustom, "", false},
		{"other style ignores css", "Dark Mode", "body{}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := WebsiteConfig{Style: tt.style, CustomCSS: tt.css}
			assert.Equal(t, tt.want, cfg.UsesCustomCSS())
		})
	}
}

func TestSameIdentityAndEqual(t *testing.T) {
	a := WebsiteConfig{BusinessName: "Acme", Description: "A shop", Tone: "Professional", Features: []string{"A", "B"}}
	b := a.Clone()
	b.Tone = "Playful & Fun"

	assert.True(t, a.SameIdentity(b))
	assert.False(t, a.Equal(b))

	c := a.Clone()
	c.Features = []string{"B", "A"}
	assert.False(t, a.Equal(c), "feature order matters")
	assert.True(t, a.Equal(a.Clone()))
}

func TestMissingFields(t *testing.T) {
	assert.Equal(t, []string{"business name", "description"}, WebsiteConfig{BusinessName: "  "}.MissingFields())
	assert.Empty(t, WebsiteConfig{BusinessName: "Acme", Description: "A shop"}.MissingFields())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, WebsiteTypes[0], cfg.WebsiteType)
	assert.Equal(t, Tones[0], cfg.Tone)
	assert.Equal(t, Styles[0], cfg.Style)
	assert.Equal(t, Features[:3], cfg.Features)
	assert.Empty(t, cfg.BusinessName)

	cfg.Features[0] = "changed"
	assert.Equal(t, "Hero Section", Features[0], "catalog is not aliased")
}

func TestApplyExample(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Style = StyleCustom
	cfg.CustomCSS = "body{}"

	out := ApplyExample(cfg, ExampleConfigs[1])

	assert.Equal(t, "Restaurant", out.WebsiteType)
	assert.Equal(t, "Example Restaurant", out.BusinessName)
	assert.Equal(t, "A sample description for an example Restaurant with a Friendly & Casual tone.", out.Description)
	assert.Equal(t, "Bold & Vibrant", out.Style)
	assert.Empty(t, out.CustomCSS)
	assert.Equal(t, "body{}", cfg.CustomCSS)
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 2, IndexOf(Tones, "Modern & Minimalist"))
	assert.Equal(t, -1, IndexOf(Tones, "Grumpy"))
}

func TestFavoriteJSONShape(t *testing.T) {
	fav := Favorite{ID: "1", WebsiteConfig: WebsiteConfig{BusinessName: "Acme", Features: []string{"Hero Section"}}}

	data, err := json.Marshal(fav)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "1", fields["id"])
	assert.Equal(t, "Acme", fields["businessName"])
	assert.NotContains(t, fields, "customCss")
	assert.NotContains(t, fields, "WebsiteConfig")
}
