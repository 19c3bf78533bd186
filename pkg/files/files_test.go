package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

func readSettingsFile(t *testing.T) *models.Settings {
	t.Helper()
	content, err := os.ReadFile(SettingsPath())
	if err != nil {
		t.Fatalf("Failed to read settings: %v", err)
	}
	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		t.Fatalf("Failed to parse settings: %v", err)
	}
	return settings
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)
	return tempDir
}

func TestInitProjectStructure(t *testing.T) {
	chdirTemp(t)

	if ProjectExists() {
		t.Fatal("project should not exist before init")
	}

	err := InitProjectStructure()
	if err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	expectedDirs := []string{
		SitesmithDir,
		filepath.Join(SitesmithDir, StoreDir),
		filepath.Join(SitesmithDir, ExportsDir),
	}

	for _, dir := range expectedDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			t.Errorf("Expected directory %s does not exist", dir)
		}
	}

	if _, err := os.Stat(SettingsPath()); err != nil {
		t.Errorf("Expected default settings file: %v", err)
	}
	if !ProjectExists() {
		t.Error("ProjectExists should be true after init")
	}
}

func TestInitKeepsExistingSettings(t *testing.T) {
	chdirTemp(t)

	settings := models.DefaultSettings()
	settings.AI.Model = "custom-model"
	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	got := readSettingsFile(t)
	if got.AI.Model != "custom-model" {
		t.Errorf("Expected model to survive init, got %q", got.AI.Model)
	}
}

func TestWriteSettings(t *testing.T) {
	chdirTemp(t)

	settings := models.DefaultSettings()
	settings.UI.ToastTTL = 3 * time.Second
	settings.Storage.Backend = models.BackendRedis
	settings.AI.APIKey = "secret"

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	got := readSettingsFile(t)

	if got.UI.ToastTTL != 3*time.Second {
		t.Errorf("Expected toast ttl 3s, got %v", got.UI.ToastTTL)
	}
	if got.Storage.Backend != models.BackendRedis {
		t.Errorf("Expected redis backend, got %q", got.Storage.Backend)
	}
	if got.AI.APIKey != "" {
		t.Error("API key must not be written to the settings file")
	}
}

func TestWriteFile(t *testing.T) {
	chdirTemp(t)

	path := filepath.Join("out", "site", DefaultExport)
	if err := WriteFile(path, "<html></html>"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("Unexpected content %q", string(data))
	}
}
