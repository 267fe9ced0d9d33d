// Package dispatch routes a summarization request to the adapter the user selected.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mugeems/summaryapp/internal/adapter"
	"github.com/mugeems/summaryapp/internal/metrics"
)

var (
	ErrEmptyInput      = errors.New("text is required")
	ErrUnknownProvider = errors.New("unknown provider")
	ErrNoProviders     = errors.New("no providers configured")
)

const emptyInputMessage = "Please enter some text to summarize."

// Result is a successful dispatch.
type Result struct {
	Summary  string
	Provider adapter.Provider
	Elapsed  time.Duration
}

// Dispatcher holds the selectable adapters in selector order.
// It is read-only after New and safe for concurrent use.
type Dispatcher struct {
	adapters map[adapter.Provider]adapter.Adapter
	order    []adapter.Provider
	models   map[adapter.Provider]string
	log      *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for dispatch records.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) { d.log = log }
}

// WithModel records the model identifier shown for provider on /api/models.
func WithModel(p adapter.Provider, model string) Option {
	return func(d *Dispatcher) { d.models[p] = model }
}

// New builds a Dispatcher. The first adapter is the default selection.
func New(adapters []adapter.Adapter, opts ...Option) (*Dispatcher, error) {
	if len(adapters) == 0 {
		return nil, ErrNoProviders
	}

	d := &Dispatcher{
		adapters: make(map[adapter.Provider]adapter.Adapter, len(adapters)),
		models:   make(map[adapter.Provider]string),
		log:      slog.Default(),
	}
	for _, a := range adapters {
		p := a.Provider()
		if _, dup := d.adapters[p]; dup {
			return nil, fmt.Errorf("dispatch: duplicate provider %q", p)
		}
		d.adapters[p] = a
		d.order = append(d.order, p)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Default is the provider selected before the user picks one.
func (d *Dispatcher) Default() adapter.Provider {
	return d.order[0]
}

// Providers returns the selectable providers in selector order.
func (d *Dispatcher) Providers() []adapter.Provider {
	out := make([]adapter.Provider, len(d.order))
	copy(out, d.order)
	return out
}

// Adapters returns the adapters keyed by provider tag.
func (d *Dispatcher) Adapters() map[string]adapter.Adapter {
	out := make(map[string]adapter.Adapter, len(d.adapters))
	for p, a := range d.adapters {
		out[string(p)] = a
	}
	return out
}

// Models describes the selector choices for GET /api/models.
func (d *Dispatcher) Models() []adapter.ModelInfo {
	models := make([]adapter.ModelInfo, 0, len(d.order))
	for _, p := range d.order {
		models = append(models, adapter.ModelInfo{
			ID:       string(p),
			Name:     p.Label(),
			Provider: string(p),
			Model:    d.models[p],
		})
	}
	return models
}

// Dispatch summarizes text with the selected provider. Empty text and unknown
// providers are rejected before any adapter is invoked.
func (d *Dispatcher) Dispatch(ctx context.Context, provider adapter.Provider, text string) (Result, error) {
	if text == "" {
		return Result{}, ErrEmptyInput
	}

	a, ok := d.adapters[provider]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}

	metrics.InputChars.Observe(float64(len(text)))

	start := time.Now()
	summary, err := a.Summarize(ctx, text)
	elapsed := time.Since(start)

	metrics.SummarizeDuration.WithLabelValues(string(provider)).Observe(elapsed.Seconds())

	if err != nil {
		metrics.ProviderFailures.WithLabelValues(string(provider)).Inc()
		d.log.WarnContext(ctx, "summarize failed",
			"provider", provider,
			"input_chars", len(text),
			"elapsed_ms", elapsed.Milliseconds(),
			"error", err,
		)
		return Result{Provider: provider, Elapsed: elapsed}, err
	}

	d.log.InfoContext(ctx, "summarized",
		"provider", provider,
		"input_chars", len(text),
		"summary_chars", len(summary),
		"elapsed_ms", elapsed.Milliseconds(),
	)

	return Result{Summary: summary, Provider: provider, Elapsed: elapsed}, nil
}

// DisplayMessage formats err for end users.
func DisplayMessage(err error) string {
	var pe *adapter.ProviderError
	switch {
	case errors.As(err, &pe):
		return fmt.Sprintf("Error with %s: %v", pe.Provider.Name(), pe.Err)
	case errors.Is(err, ErrEmptyInput):
		return emptyInputMessage
	default:
		return err.Error()
	}
}
