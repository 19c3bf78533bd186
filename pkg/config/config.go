// Package config layers settings.yaml, environment variables and defaults
// into models.Settings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

// EnvPrefix namespaces every overridable key, e.g. SITESMITH_AI_MODEL
const EnvPrefix = "SITESMITH"

// Load reads settings.yaml from dir (when present) and applies environment
// overrides. The API key may also come from GEMINI_API_KEY or API_KEY.
func Load(dir string) (*models.Settings, error) {
	v := viper.New()
	setDefaults(v, models.DefaultSettings())

	v.AddConfigPath(dir)
	v.SetConfigName("settings")
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("ai.api_key", EnvPrefix+"_AI_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind API key environment: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	settings := &models.Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if err := Validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate rejects settings the application cannot run with
func Validate(s *models.Settings) error {
	switch s.Storage.Backend {
	case models.BackendFile, models.BackendRedis, models.BackendMemory:
	default:
		return fmt.Errorf("invalid storage backend: %s (must be: file, redis, or memory)", s.Storage.Backend)
	}
	if s.Storage.Backend == models.BackendRedis && s.Storage.RedisAddr == "" {
		return fmt.Errorf("storage.redis_addr is required for the redis backend")
	}
	if s.AI.Model == "" {
		return fmt.Errorf("ai.model must not be empty")
	}
	if s.UI.ToastTTL <= 0 || s.UI.AutosaveInterval <= 0 {
		return fmt.Errorf("ui durations must be positive")
	}
	return nil
}

func setDefaults(v *viper.Viper, d *models.Settings) {
	v.SetDefault("ai.model", d.AI.Model)
	v.SetDefault("ai.base_url", d.AI.BaseURL)
	v.SetDefault("ai.api_key", d.AI.APIKey)

	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("storage.redis_addr", d.Storage.RedisAddr)
	v.SetDefault("storage.redis_password", d.Storage.RedisPassword)
	v.SetDefault("storage.redis_db", d.Storage.RedisDB)
	v.SetDefault("storage.key_prefix", d.Storage.KeyPrefix)

	v.SetDefault("ui.toast_ttl", d.UI.ToastTTL)
	v.SetDefault("ui.autosave_interval", d.UI.AutosaveInterval)

	v.SetDefault("output.export_path", d.Output.ExportPath)
}
