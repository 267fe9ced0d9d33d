package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mugeems/summaryapp/internal/dispatch"
	"github.com/mugeems/summaryapp/internal/handler"
	"github.com/mugeems/summaryapp/internal/middleware"
)

// SetupMux wires handlers with the full middleware chain.
func SetupMux(d *dispatch.Dispatcher, opts middleware.Options) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", handler.Page(d))
	mux.HandleFunc("/api/health", handler.Health(d.Adapters()))
	mux.HandleFunc("/api/models", handler.Models(d.Models()))
	mux.HandleFunc("/api/summarize", handler.Summarize(d))
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.Chain(mux, opts)
}
