package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/sitesmith/sitesmith-cli/pkg/config"
	"github.com/sitesmith/sitesmith-cli/pkg/controller"
	"github.com/sitesmith/sitesmith-cli/pkg/files"
	"github.com/sitesmith/sitesmith-cli/pkg/generator"
	"github.com/sitesmith/sitesmith-cli/pkg/models"
	"github.com/sitesmith/sitesmith-cli/pkg/store"
	"github.com/sitesmith/sitesmith-cli/pkg/toast"
)

// ErrNoAPIKey is returned when generation is requested without credentials
var ErrNoAPIKey = errors.New("no API key configured. Set GEMINI_API_KEY or API_KEY")

// CommandContext lazily builds the pieces a command needs: settings, the
// key-value store and the generation client
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	Logger      zerolog.Logger

	validated   bool
	kv          store.KeyValueStore
	persistence *store.Persistence
	closers     []io.Closer
}

func NewCommandContext(logger zerolog.Logger) *CommandContext {
	return &CommandContext{
		ProjectPath: files.SitesmithDir,
		Logger:      logger,
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}
	if !files.ProjectExists() {
		return fmt.Errorf("no %s directory found. Run 'sitesmith init' first", files.SitesmithDir)
	}
	c.validated = true
	return nil
}

// LoadSettings reads settings.yaml with environment overrides
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}
	settings, err := config.Load(c.ProjectPath)
	if err != nil {
		return nil, err
	}
	c.Settings = settings
	return settings, nil
}

// Store opens the configured key-value backend once
func (c *CommandContext) Store() (store.KeyValueStore, error) {
	if c.kv != nil {
		return c.kv, nil
	}
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(settings.Storage, c.Logger)
	if err != nil {
		return nil, err
	}
	if closer, ok := kv.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
	c.kv = kv
	return kv, nil
}

func (c *CommandContext) Persistence() (*store.Persistence, error) {
	if c.persistence != nil {
		return c.persistence, nil
	}
	kv, err := c.Store()
	if err != nil {
		return nil, err
	}
	c.persistence = store.NewPersistence(kv, c.Logger)
	return c.persistence, nil
}

// Generator builds the completion client. With requireKey a missing API key
// is an error; otherwise the first request fails instead.
func (c *CommandContext) Generator(requireKey bool) (*generator.Client, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}
	if settings.AI.APIKey == "" {
		if requireKey {
			return nil, ErrNoAPIKey
		}
		c.Logger.Warn().Msg("no API key configured; generation requests will fail")
	}
	completer := generator.NewOpenAICompleter(settings.AI)
	return generator.NewClient(completer, settings.AI.Model, c.Logger), nil
}

// Controller wires the generation client, persistence and toast queue
func (c *CommandContext) Controller(requireKey bool) (*controller.Controller, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}
	persistence, err := c.Persistence()
	if err != nil {
		return nil, err
	}
	gen, err := c.Generator(requireKey)
	if err != nil {
		return nil, err
	}
	return controller.New(gen, persistence, toast.NewQueue(settings.UI.ToastTTL), c.Logger), nil
}

// Close releases backend connections
func (c *CommandContext) Close() {
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			c.Logger.Warn().Err(err).Msg("failed to close store")
		}
	}
	c.closers = nil
}
