package models

import "fmt"

var WebsiteTypes = []string{
	"Portfolio",
	"E-commerce Store",
	"Blog",
	"Restaurant",
	"Corporate",
	"Startup Landing Page",
}

var Tones = []string{
	"Professional",
	"Friendly & Casual",
	"Modern & Minimalist",
	"Luxury & Elegant",
	"Playful & Fun",
}

var Features = []string{
	"Hero Section",
	"About Us Section",
	"Services/Products Section",
	"Testimonials",
	"Image Gallery",
	"Contact Form",
	"Footer with Social Links",
}

var Styles = []string{
	"Minimalist",
	"Bold & Vibrant",
	"Elegant & Corporate",
	"Dark Mode",
	StyleCustom,
}

// ExampleConfig is a preset that fills the form except for the
// business-specific fields
type ExampleConfig struct {
	WebsiteType string
	Tone        string
	Features    []string
	Style       string
}

var ExampleConfigs = []ExampleConfig{
	{
		WebsiteType: "Portfolio",
		Tone:        "Modern & Minimalist",
		Features:    []string{"Hero Section", "Image Gallery", "Contact Form", "Footer with Social Links"},
		Style:       "Minimalist",
	},
	{
		WebsiteType: "Restaurant",
		Tone:        "Friendly & Casual",
		Features:    []string{"Hero Section", "About Us Section", "Services/Products Section", "Contact Form"},
		Style:       "Bold & Vibrant",
	},
	{
		WebsiteType: "Startup Landing Page",
		Tone:        "Professional",
		Features:    []string{"Hero Section", "Services/Products Section", "Testimonials", "Contact Form"},
		Style:       "Elegant & Corporate",
	},
}

// DefaultConfig is the form state on a fresh start
func DefaultConfig() WebsiteConfig {
	return WebsiteConfig{
		WebsiteType: WebsiteTypes[0],
		Tone:        Tones[0],
		Features:    append([]string(nil), Features[:3]...),
		Style:       Styles[0],
	}
}

// ApplyExample overlays an example preset on cfg
func ApplyExample(cfg WebsiteConfig, example ExampleConfig) WebsiteConfig {
	out := cfg.Clone()
	out.WebsiteType = example.WebsiteType
	out.Tone = example.Tone
	out.Features = append([]string(nil), example.Features...)
	out.Style = example.Style
	out.BusinessName = fmt.Sprintf("Example %s", example.WebsiteType)
	out.Description = fmt.Sprintf("A sample description for an example %s with a %s tone.", example.WebsiteType, example.Tone)
	out.CustomCSS = ""
	return out
}

// IndexOf returns the position of value in options, or -1
func IndexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return -1
}
