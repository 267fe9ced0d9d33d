package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mugeems/summaryapp/internal/adapter"
	"github.com/mugeems/summaryapp/internal/metrics"
)

type recordingAdapter struct {
	provider adapter.Provider
	summary  string
	err      error
	inputs   []string
}

func (r *recordingAdapter) Provider() adapter.Provider { return r.provider }

func (r *recordingAdapter) Summarize(_ context.Context, text string) (string, error) {
	r.inputs = append(r.inputs, text)
	if r.err != nil {
		return "", &adapter.ProviderError{Provider: r.provider, Err: r.err}
	}
	return r.summary, nil
}

func (r *recordingAdapter) Available() bool { return true }

func newTestDispatcher(t *testing.T) (*Dispatcher, *recordingAdapter, *recordingAdapter) {
	t.Helper()
	gemini := &recordingAdapter{provider: adapter.ProviderGemini, summary: "A fox runs."}
	groq := &recordingAdapter{provider: adapter.ProviderGroq, summary: "Groq summary."}
	d, err := New([]adapter.Adapter{gemini, groq})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d, gemini, groq
}

func TestDispatchReturnsSummaryUnmodified(t *testing.T) {
	d, gemini, groq := newTestDispatcher(t)

	input := "The quick brown fox jumps over the lazy dog while the farmer watches from the porch."
	res, err := d.Dispatch(context.Background(), adapter.ProviderGemini, input)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if res.Summary != "A fox runs." {
		t.Errorf("summary: got %q, want %q", res.Summary, "A fox runs.")
	}
	if res.Provider != adapter.ProviderGemini {
		t.Errorf("provider: got %q, want %q", res.Provider, adapter.ProviderGemini)
	}
	if len(gemini.inputs) != 1 || gemini.inputs[0] != input {
		t.Errorf("gemini inputs: got %q", gemini.inputs)
	}
	if len(groq.inputs) != 0 {
		t.Errorf("groq should not be invoked, got %d calls", len(groq.inputs))
	}
}

func TestDispatchEmptyInputInvokesNothing(t *testing.T) {
	d, gemini, groq := newTestDispatcher(t)

	for _, p := range []adapter.Provider{adapter.ProviderGemini, adapter.ProviderGroq} {
		t.Run(string(p), func(t *testing.T) {
			_, err := d.Dispatch(context.Background(), p, "")
			if !errors.Is(err, ErrEmptyInput) {
				t.Fatalf("got %v, want ErrEmptyInput", err)
			}
			if got := DisplayMessage(err); got != "Please enter some text to summarize." {
				t.Errorf("display: got %q", got)
			}
		})
	}

	if len(gemini.inputs)+len(groq.inputs) != 0 {
		t.Errorf("adapters invoked on empty input: gemini=%d groq=%d", len(gemini.inputs), len(groq.inputs))
	}
}

func TestDispatchWhitespaceIsNotEmpty(t *testing.T) {
	d, gemini, _ := newTestDispatcher(t)

	if _, err := d.Dispatch(context.Background(), adapter.ProviderGemini, "   "); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(gemini.inputs) != 1 {
		t.Errorf("gemini calls: got %d, want 1", len(gemini.inputs))
	}
}

func TestDispatchSwitchingProviders(t *testing.T) {
	d, gemini, groq := newTestDispatcher(t)

	if _, err := d.Dispatch(context.Background(), adapter.ProviderGroq, "first text"); err != nil {
		t.Fatalf("Dispatch groq: %v", err)
	}
	if len(gemini.inputs) != 0 || len(groq.inputs) != 1 {
		t.Fatalf("after groq dispatch: gemini=%d groq=%d", len(gemini.inputs), len(groq.inputs))
	}

	if _, err := d.Dispatch(context.Background(), adapter.ProviderGemini, "second text"); err != nil {
		t.Fatalf("Dispatch gemini: %v", err)
	}
	if len(gemini.inputs) != 1 || len(groq.inputs) != 1 {
		t.Fatalf("after gemini dispatch: gemini=%d groq=%d", len(gemini.inputs), len(groq.inputs))
	}
	if gemini.inputs[0] != "second text" || groq.inputs[0] != "first text" {
		t.Errorf("inputs routed wrong: gemini=%q groq=%q", gemini.inputs, groq.inputs)
	}
}

func TestDispatchUnknownProvider(t *testing.T) {
	d, gemini, groq := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), adapter.Provider("openai"), "text")
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("got %v, want ErrUnknownProvider", err)
	}
	if len(gemini.inputs)+len(groq.inputs) != 0 {
		t.Error("adapters invoked for unknown provider")
	}
}

func TestDispatchProviderFailure(t *testing.T) {
	tests := []struct {
		provider adapter.Provider
		wantName string
	}{
		{adapter.ProviderGemini, "Gemini"},
		{adapter.ProviderGroq, "Groq"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			failing := &recordingAdapter{provider: tt.provider, err: errors.New("invalid api key")}
			d, err := New([]adapter.Adapter{failing})
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			before := testutil.ToFloat64(metrics.ProviderFailures.WithLabelValues(string(tt.provider)))

			res, err := d.Dispatch(context.Background(), tt.provider, "text")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if res.Summary != "" {
				t.Errorf("summary on failure: got %q", res.Summary)
			}

			msg := DisplayMessage(err)
			if !strings.Contains(msg, "Error with") || !strings.Contains(msg, tt.wantName) {
				t.Errorf("display: got %q", msg)
			}
			if want := "Error with " + tt.wantName + ": invalid api key"; msg != want {
				t.Errorf("display: got %q, want %q", msg, want)
			}

			after := testutil.ToFloat64(metrics.ProviderFailures.WithLabelValues(string(tt.provider)))
			if after != before+1 {
				t.Errorf("failures counter: got %f, want %f", after, before+1)
			}
		})
	}
}

func TestDispatcherDefaultAndModels(t *testing.T) {
	gemini := &recordingAdapter{provider: adapter.ProviderGemini}
	groq := &recordingAdapter{provider: adapter.ProviderGroq}
	d, err := New([]adapter.Adapter{gemini, groq}, WithModel(adapter.ProviderGroq, "mixtral-8x7b-32768"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if d.Default() != adapter.ProviderGemini {
		t.Errorf("default: got %q, want %q", d.Default(), adapter.ProviderGemini)
	}

	models := d.Models()
	if len(models) != 2 {
		t.Fatalf("models count: got %d, want 2", len(models))
	}
	if models[0].ID != "gemini" || models[0].Name != "Google Gemini" {
		t.Errorf("first model: got %+v", models[0])
	}
	if models[1].ID != "groq" || models[1].Model != "mixtral-8x7b-32768" {
		t.Errorf("second model: got %+v", models[1])
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoProviders) {
		t.Errorf("got %v, want ErrNoProviders", err)
	}

	a := &recordingAdapter{provider: adapter.ProviderGroq}
	b := &recordingAdapter{provider: adapter.ProviderGroq}
	if _, err := New([]adapter.Adapter{a, b}); err == nil {
		t.Error("expected error for duplicate provider, got nil")
	}
}

func TestDisplayMessageOtherErrors(t *testing.T) {
	err := errors.New("something else")
	if got := DisplayMessage(err); got != "something else" {
		t.Errorf("got %q", got)
	}
}
