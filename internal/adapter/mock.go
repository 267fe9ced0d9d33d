package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockAdapter returns the first sentence of the input after a configurable delay.
// Used for development and testing without provider credentials.
type MockAdapter struct {
	Delay time.Duration
}

func (m *MockAdapter) Provider() Provider { return ProviderMock }

func (m *MockAdapter) Summarize(ctx context.Context, text string) (string, error) {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", &ProviderError{Provider: ProviderMock, Err: fmt.Errorf("mock: %w", ctx.Err())}
		}
	}

	summary := strings.TrimSpace(text)
	if i := strings.IndexAny(summary, ".!?"); i >= 0 {
		summary = summary[:i+1]
	}
	return summary, nil
}

func (m *MockAdapter) Available() bool { return true }
