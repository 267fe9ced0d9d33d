package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mugeems/summaryapp/internal/adapter"
	"github.com/mugeems/summaryapp/internal/config"
	"github.com/mugeems/summaryapp/internal/dispatch"
	"github.com/mugeems/summaryapp/internal/logging"
	"github.com/mugeems/summaryapp/internal/middleware"
	"github.com/mugeems/summaryapp/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "summaryapp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config.yaml")
	useMock := flag.Bool("mock", false, "use mock adapter instead of the hosted providers")
	port := flag.Int("port", 0, "override listen port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *port > 0 {
		cfg.Port = *port
	}
	if !*useMock {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	log := logging.New(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d, err := buildDispatcher(ctx, cfg, *useMock, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server.SetupMux(d, middleware.Options{MaxBodyBytes: cfg.MaxBodyBytes, Timeout: cfg.ProviderTimeout + 5*time.Second}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("summaryapp listening", "addr", srv.Addr, "default_provider", d.Default())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		log.Info("server stopped")
		return nil
	})

	return g.Wait()
}

func buildDispatcher(ctx context.Context, cfg config.Config, useMock bool, log *slog.Logger) (*dispatch.Dispatcher, error) {
	if useMock {
		log.Info("mode: mock adapter enabled")
		return dispatch.New([]adapter.Adapter{&adapter.MockAdapter{Delay: 500 * time.Millisecond}}, dispatch.WithLogger(log))
	}

	client := &http.Client{Timeout: cfg.ProviderTimeout}

	gemini, err := adapter.NewGeminiAdapter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, "", client)
	if err != nil {
		return nil, err
	}
	groq, err := adapter.NewGroqAdapter(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqBaseURL, client)
	if err != nil {
		return nil, err
	}
	log.Info("providers configured", "gemini_model", cfg.GeminiModel, "groq_model", cfg.GroqModel)

	return dispatch.New(
		[]adapter.Adapter{gemini, groq},
		dispatch.WithLogger(log),
		dispatch.WithModel(adapter.ProviderGemini, cfg.GeminiModel),
		dispatch.WithModel(adapter.ProviderGroq, cfg.GroqModel),
	)
}
