package adapter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	groqDefaultBaseURL = "https://api.groq.com/openai/v1/"

	groqTemperature = 0.1
	groqMaxTokens   = 1000
)

// ChatCompleter is the subset of openai.ChatCompletionService used by GroqAdapter.
type ChatCompleter interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// GroqAdapter summarizes through Groq's OpenAI-compatible chat completions API.
type GroqAdapter struct {
	Completions ChatCompleter
	Model       string
}

// NewGroqAdapter builds an OpenAI SDK client pointed at Groq.
// SDK retries are disabled; a failed call surfaces immediately.
func NewGroqAdapter(apiKey, model, baseURL string, client *http.Client) (*GroqAdapter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("groq: api key required")
	}
	if baseURL == "" {
		baseURL = groqDefaultBaseURL
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if client != nil {
		opts = append(opts, option.WithHTTPClient(client))
	}

	c := openai.NewClient(opts...)
	return &GroqAdapter{Completions: &c.Chat.Completions, Model: model}, nil
}

func (g *GroqAdapter) Provider() Provider { return ProviderGroq }

// Params returns the request sent for text. The message list and sampling
// parameters do not depend on text.
func (g *GroqAdapter) Params(text string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(UserPrompt(text)),
		},
		Temperature: openai.Float(groqTemperature),
		MaxTokens:   openai.Int(groqMaxTokens),
	}
}

func (g *GroqAdapter) Summarize(ctx context.Context, text string) (string, error) {
	if g.Completions == nil {
		return "", providerError(ProviderGroq, "client not configured")
	}

	completion, err := g.Completions.New(ctx, g.Params(text))
	if err != nil {
		return "", &ProviderError{Provider: ProviderGroq, Err: err}
	}

	if completion == nil || len(completion.Choices) == 0 {
		return "", providerError(ProviderGroq, "empty response choices")
	}

	return completion.Choices[0].Message.Content, nil
}

func (g *GroqAdapter) Available() bool {
	return g.Completions != nil
}
