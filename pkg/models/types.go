package models

import "strings"

// StyleCustom is the only style under which CustomCSS is honoured
const StyleCustom = "Custom"

// WebsiteConfig describes one generation request
type WebsiteConfig struct {
	WebsiteType  string   `json:"websiteType" yaml:"website_type"`
	BusinessName string   `json:"businessName" yaml:"business_name"`
	Description  string   `json:"description" yaml:"description"`
	Tone         string   `json:"tone" yaml:"tone"`
	Features     []string `json:"features" yaml:"features"`
	Style        string   `json:"style" yaml:"style"`
	CustomCSS    string   `json:"customCss,omitempty" yaml:"custom_css,omitempty"`
}

// Favorite is a saved WebsiteConfig snapshot
type Favorite struct {
	ID string `json:"id" yaml:"id"`
	WebsiteConfig
}

// Config returns the configuration part of the favorite
func (f Favorite) Config() WebsiteConfig {
	return f.WebsiteConfig.Clone()
}

// Clone returns a copy that shares no slice storage with c
func (c WebsiteConfig) Clone() WebsiteConfig {
	out := c
	if c.Features != nil {
		out.Features = append([]string(nil), c.Features...)
	}
	return out
}

// HasFeature reports whether feature is selected
func (c WebsiteConfig) HasFeature(feature string) bool {
	for _, f := range c.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// ToggleFeature removes feature if present, otherwise appends it.
// Selection order is preserved.
func (c WebsiteConfig) ToggleFeature(feature string) WebsiteConfig {
	out := c.Clone()
	if out.HasFeature(feature) {
		kept := out.Features[:0]
		for _, f := range out.Features {
			if f != feature {
				kept = append(kept, f)
			}
		}
		out.Features = kept
		return out
	}
	out.Features = append(out.Features, feature)
	return out
}

// UsesCustomCSS reports whether CustomCSS takes part in generation
func (c WebsiteConfig) UsesCustomCSS() bool {
	return c.Style == StyleCustom && c.CustomCSS != ""
}

// SameIdentity is the favorites deduplication key
func (c WebsiteConfig) SameIdentity(other WebsiteConfig) bool {
	return c.BusinessName == other.BusinessName && c.Description == other.Description
}

// Equal compares every field, feature order included
func (c WebsiteConfig) Equal(other WebsiteConfig) bool {
	if c.WebsiteType != other.WebsiteType ||
		c.BusinessName != other.BusinessName ||
		c.Description != other.Description ||
		c.Tone != other.Tone ||
		c.Style != other.Style ||
		c.CustomCSS != other.CustomCSS ||
		len(c.Features) != len(other.Features) {
		return false
	}
	for i := range c.Features {
		if c.Features[i] != other.Features[i] {
			return false
		}
	}
	return true
}

// MissingFields lists the required fields that are blank. Whitespace-only
// values count as blank on purpose, so "  " is not a business name.
func (c WebsiteConfig) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(c.BusinessName) == "" {
		missing = append(missing, "business name")
	}
	if strings.TrimSpace(c.Description) == "" {
		missing = append(missing, "description")
	}
	return missing
}
