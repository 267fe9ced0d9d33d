package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "summaryapp_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// RequestDuration tracks end-to-end handler latency by method.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "summaryapp_request_duration_seconds",
		Help:    "HTTP request latency including provider calls.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// SummarizeDuration tracks provider latency.
	SummarizeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "summaryapp_summarize_duration_seconds",
		Help:    "Time spent waiting on the summarization provider.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"provider"})

	// InputChars tracks the distribution of input text lengths.
	InputChars = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "summaryapp_input_chars",
		Help:    "Number of characters in summarize input text.",
		Buckets: []float64{100, 500, 1000, 2500, 5000, 10000, 25000, 50000, 100000},
	})

	ProviderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "summaryapp_provider_failures_total",
		Help: "Provider calls that returned an error.",
	}, []string{"provider"})

	// AdapterAvailable tracks whether each adapter has a usable client.
	AdapterAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "summaryapp_adapter_available",
		Help: "Whether a summarization adapter is available (1) or not (0).",
	}, []string{"adapter"})
)
