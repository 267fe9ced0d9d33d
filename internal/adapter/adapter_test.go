package adapter

import (
	"errors"
	"strings"
	"testing"
)

func TestProviderLabels(t *testing.T) {
	tests := []struct {
		provider Provider
		label    string
		name     string
	}{
		{ProviderGemini, "Google Gemini", "Gemini"},
		{ProviderGroq, "Groq", "Groq"},
		{ProviderMock, "Mock (dev)", "Mock"},
		{Provider("other"), "other", "other"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			if got := tt.provider.Label(); got != tt.label {
				t.Errorf("Label: got %q, want %q", got, tt.label)
			}
			if got := tt.provider.Name(); got != tt.name {
				t.Errorf("Name: got %q, want %q", got, tt.name)
			}
		})
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	cause := errors.New("quota exceeded")
	var err error = &ProviderError{Provider: ProviderGroq, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatal("expected errors.As to match *ProviderError")
	}
	if pe.Provider != ProviderGroq {
		t.Errorf("provider: got %q, want %q", pe.Provider, ProviderGroq)
	}
	if err.Error() != "groq: quota exceeded" {
		t.Errorf("Error(): got %q", err.Error())
	}
}

func TestUserPrompt(t *testing.T) {
	got := UserPrompt("some text")
	if !strings.HasPrefix(got, "Please provide a concise summary of the following text:\n\n") {
		t.Errorf("missing instruction prefix: %q", got)
	}
	if !strings.HasSuffix(got, "some text") {
		t.Errorf("missing input text: %q", got)
	}
}
