package middleware

import (
	"net/http"
	"time"
)

// Options tunes the middleware stack.
type Options struct {
	MaxBodyBytes int64
	Timeout      time.Duration
}

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Metrics → MaxBytes → Timeout → mux
func Chain(handler http.Handler, opts Options) http.Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 65 * time.Second
	}

	h := handler
	h = http.TimeoutHandler(h, opts.Timeout, `{"error":"request timeout"}`)
	h = MaxBytes(opts.MaxBodyBytes)(h)
	h = Metrics(h)
	h = Logging(h)
	h = RequestID(h)
	h = CORS(h)
	return h
}
