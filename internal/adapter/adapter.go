package adapter

import (
	"context"
	"fmt"
)

// Adapter defines the contract for summarization backends.
type Adapter interface {
	Provider() Provider
	Summarize(ctx context.Context, text string) (string, error)
	Available() bool
}

// Provider tags a text-generation backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderGroq   Provider = "groq"
	ProviderMock   Provider = "mock"
)

// Label is the text shown in the provider selector.
func (p Provider) Label() string {
	switch p {
	case ProviderGemini:
		return "Google Gemini"
	case ProviderGroq:
		return "Groq"
	case ProviderMock:
		return "Mock (dev)"
	default:
		return string(p)
	}
}

// Name is the provider name used in error messages.
func (p Provider) Name() string {
	switch p {
	case ProviderGemini:
		return "Gemini"
	case ProviderGroq:
		return "Groq"
	case ProviderMock:
		return "Mock"
	default:
		return string(p)
	}
}

// ModelInfo is exposed via GET /api/models.
type ModelInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
}

// ProviderError is returned by adapters when the upstream call fails.
type ProviderError struct {
	Provider Provider
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func providerError(p Provider, format string, args ...any) error {
	return &ProviderError{Provider: p, Err: fmt.Errorf(format, args...)}
}
