package generator

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/sitesmith/sitesmith-cli/pkg/models"
)

// OpenAICompleter talks to any OpenAI-compatible chat completions endpoint.
// The default base URL is Gemini's compatibility layer.
type OpenAICompleter struct {
	client *openai.Client
}

func NewOpenAICompleter(settings models.AISettings) *OpenAICompleter {
	config := openai.DefaultConfig(settings.APIKey)
	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = models.DefaultBaseURL
	}
	config.BaseURL = strings.TrimRight(baseURL, "/")

	return &OpenAICompleter{client: openai.NewClientWithConfig(config)}
}

func (o *OpenAICompleter) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
