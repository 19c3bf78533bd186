package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	SitesmithDir  = ".sitesmith"
	StoreDir      = "store"
	ExportsDir    = "exports"
	SettingsFile  = "settings.yaml"
	LogFile       = "sitesmith.log"
	DefaultExport = "index.html"
)

func InitProjectStructure() error {
	dirs := []string{
		SitesmithDir,
		filepath.Join(SitesmithDir, StoreDir),
		filepath.Join(SitesmithDir, ExportsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	settingsPath := SettingsPath()
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// ProjectExists reports whether InitProjectStructure has run in the working directory
func ProjectExists() bool {
	info, err := os.Stat(SitesmithDir)
	return err == nil && info.IsDir()
}

func SettingsPath() string {
	return filepath.Join(SitesmithDir, SettingsFile)
}

func StorePath() string {
	return filepath.Join(SitesmithDir, StoreDir)
}

func LogPath() string {
	return filepath.Join(SitesmithDir, LogFile)
}

func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(SitesmithDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	// Never write a key that came from the environment
	out := *settings
	out.AI.APIKey = ""

	content, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(SettingsPath(), content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// WriteFile writes content to a file (for exported sites)
func WriteFile(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
