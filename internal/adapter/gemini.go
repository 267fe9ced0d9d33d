package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// ContentGenerator is the subset of *genai.Models used by GeminiAdapter.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiAdapter summarizes through the Gemini generateContent API.
type GeminiAdapter struct {
	Models ContentGenerator
	Model  string
}

// NewGeminiAdapter builds a Gemini client authenticated with apiKey.
// An empty baseURL uses the SDK default endpoint.
func NewGeminiAdapter(ctx context.Context, apiKey, model, baseURL string, client *http.Client) (*GeminiAdapter, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: api key required")
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  client,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &GeminiAdapter{Models: c.Models, Model: model}, nil
}

func (g *GeminiAdapter) Provider() Provider { return ProviderGemini }

func (g *GeminiAdapter) Summarize(ctx context.Context, text string) (string, error) {
	if g.Models == nil {
		return "", providerError(ProviderGemini, "client not configured")
	}

	resp, err := g.Models.GenerateContent(ctx, g.Model, genai.Text(UserPrompt(text)), nil)
	if err != nil {
		return "", &ProviderError{Provider: ProviderGemini, Err: err}
	}

	summary, ok := responseText(resp)
	if !ok {
		return "", providerError(ProviderGemini, "empty response")
	}
	return summary, nil
}

func (g *GeminiAdapter) Available() bool {
	return g.Models != nil
}

// responseText joins the text parts of the first candidate, skipping thoughts.
func responseText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", false
	}

	var b strings.Builder
	found := false
	for _, part := range content.Parts {
		if part == nil || part.Thought || part.Text == "" {
			continue
		}
		b.WriteString(part.Text)
		found = true
	}
	return b.String(), found
}
