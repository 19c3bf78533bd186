package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	if Contains([]string{"text", "json", "yaml"}, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// MatchChoice resolves value case-insensitively against options
func MatchChoice(kind string, options []string, value string) (string, error) {
	for _, o := range options {
		if strings.EqualFold(o, strings.TrimSpace(value)) {
			return o, nil
		}
	}
	return "", fmt.Errorf("invalid %s: %q (must be one of: %s)", kind, value, strings.Join(options, ", "))
}

// ValidateWebsiteConfig normalizes the catalogue fields of cfg. Business
// name and description are left to generation-time validation.
func ValidateWebsiteConfig(cfg models.WebsiteConfig) (models.WebsiteConfig, error) {
	out := cfg.Clone()
	var err error

	if out.WebsiteType, err = MatchChoice("website type", models.WebsiteTypes, cfg.WebsiteType); err != nil {
		return cfg, err
	}
	if out.Tone, err = MatchChoice("tone", models.Tones, cfg.Tone); err != nil {
		return cfg, err
	}
	if out.Style, err = MatchChoice("style", models.Styles, cfg.Style); err != nil {
		return cfg, err
	}

	features := make([]string, 0, len(cfg.Features))
	for _, f := range cfg.Features {
		matched, err := MatchChoice("feature", models.Features, f)
		if err != nil {
			return cfg, err
		}
		if !Contains(features, matched) {
			features = append(features, matched)
		}
	}
	out.Features = features

	return out, nil
}

// ValidateExportPath checks that path is not an existing directory
func ValidateExportPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("export path cannot be empty")
	}
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return fmt.Errorf("export path is a directory: %s", path)
	}
	return nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
