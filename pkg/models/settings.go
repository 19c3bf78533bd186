package models

import "time"

// Settings represents the application configuration
type Settings struct {
	AI      AISettings      `yaml:"ai" mapstructure:"ai"`
	Storage StorageSettings `yaml:"storage" mapstructure:"storage"`
	UI      UISettings      `yaml:"ui" mapstructure:"ui"`
	Output  OutputSettings  `yaml:"output" mapstructure:"output"`
}

// AISettings selects the completion endpoint
type AISettings struct {
	Model   string `yaml:"model" mapstructure:"model"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	APIKey  string `yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// StorageSettings selects the key-value backend
type StorageSettings struct {
	Backend       string `yaml:"backend" mapstructure:"backend"` // "file", "redis" or "memory"
	RedisAddr     string `yaml:"redis_addr" mapstructure:"redis_addr"`
	RedisPassword string `yaml:"redis_password,omitempty" mapstructure:"redis_password"`
	RedisDB       int    `yaml:"redis_db" mapstructure:"redis_db"`
	KeyPrefix     string `yaml:"key_prefix" mapstructure:"key_prefix"`
}

// UISettings controls timing in the terminal UI
type UISettings struct {
	ToastTTL         time.Duration `yaml:"toast_ttl" mapstructure:"toast_ttl"`
	AutosaveInterval time.Duration `yaml:"autosave_interval" mapstructure:"autosave_interval"`
}

// OutputSettings controls where exported sites go
type OutputSettings struct {
	ExportPath string `yaml:"export_path" mapstructure:"export_path"`
}

const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"

	DefaultModel   = "gemini-2.5-pro"
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
)

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		AI: AISettings{
			Model:   DefaultModel,
			BaseURL: DefaultBaseURL,
		},
		Storage: StorageSettings{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			KeyPrefix: "sitesmith:",
		},
		UI: UISettings{
			ToastTTL:         5 * time.Second,
			AutosaveInterval: 30 * time.Second,
		},
		Output: OutputSettings{
			ExportPath: "index.html",
		},
	}
}
