// Package generator turns a website configuration into HTML by way of a
// single call to a hosted completion service.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
	"github.com/sitesmith/sitesmith-cli/pkg/prompt"
)

var (
	// ErrValidation is returned before any network call when required fields are missing
	ErrValidation = errors.New("invalid configuration")
	// ErrGenerationFailed hides the transport or service error from the caller
	ErrGenerationFailed = errors.New("failed to generate website from AI, please try again")
)

// Completer is the external completion service: one prompt in, text out.
type Completer interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// Generator is what the controller depends on
type Generator interface {
	Generate(ctx context.Context, cfg models.WebsiteConfig) (string, error)
}

// Client issues exactly one completion request per Generate call.
type Client struct {
	completer Completer
	model     string
	log       zerolog.Logger
}

func NewClient(completer Completer, model string, logger zerolog.Logger) *Client {
	if model == "" {
		model = models.DefaultModel
	}
	return &Client{
		completer: completer,
		model:     model,
		log:       logger.With().Str("component", "generator").Logger(),
	}
}

func (c *Client) Model() string { return c.model }

// Generate validates cfg, compiles the prompt and returns the completion
// text verbatim. No retries.
func (c *Client) Generate(ctx context.Context, cfg models.WebsiteConfig) (string, error) {
	if err := prompt.Validate(cfg); err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	text := prompt.Compile(cfg)
	start := time.Now()
	c.log.Debug().
		Str("model", c.model).
		Int("prompt_bytes", len(text)).
		Int("prompt_tokens_est", prompt.EstimateTokens(text)).
		Msg("sending generation request")

	code, err := c.completer.Complete(ctx, c.model, text)
	if err != nil {
		c.log.Error().Err(err).Dur("elapsed", time.Since(start)).Str("model", c.model).Msg("error generating website code")
		return "", ErrGenerationFailed
	}
	if strings.TrimSpace(code) == "" {
		c.log.Error().Dur("elapsed", time.Since(start)).Str("model", c.model).Msg("completion service returned empty text")
		return "", ErrGenerationFailed
	}

	c.log.Info().Dur("elapsed", time.Since(start)).Int("code_bytes", len(code)).Msg("website generated")
	return code, nil
}
