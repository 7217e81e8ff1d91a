package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vilaca/gh-portfolio/internal/api"
	"github.com/vilaca/gh-portfolio/internal/api/github"
	"github.com/vilaca/gh-portfolio/internal/config"
	"github.com/vilaca/gh-portfolio/internal/observability"
	"github.com/vilaca/gh-portfolio/internal/service"
	"github.com/vilaca/gh-portfolio/internal/site"
)

const serviceName = "gh-portfolio"

func main() {
	root := &cobra.Command{
		Use:          serviceName,
		Short:        "GitHub profile and projects portfolio page",
		SilenceUsage: true,
	}

	root.AddCommand(serveCmd(), renderCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runServer(cmd.Context(), cfg, logger)
		},
	}
}

func renderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build the portfolio page once and write it to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			sugar := observability.NewSugarLogger(logger)
			builder := buildPageBuilder(cfg, sugar)
			writer := site.NewPageWriter(out, site.NewHTMLRenderer(), sugar)

			page := builder.Build(commandContext(cmd), site.NavMenu{})
			if err := writer.Write(page); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "index.html", "Output file path")
	return cmd
}

// setup loads the configuration and builds the process logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := observability.NewLogger(serviceName, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}
	return cfg, logger, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// runServer serves until SIGINT or SIGTERM, then drains in-flight requests.
func runServer(parent context.Context, cfg *config.Config, logger *zap.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           buildServer(cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting portfolio server",
			zap.String("addr", "http://localhost"+srv.Addr),
			zap.String("username", cfg.Username),
			zap.String("github_url", cfg.GitHubURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error("server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}

// buildPageBuilder wires the GitHub client, the portfolio service and the page builder.
func buildPageBuilder(cfg *config.Config, logger *observability.SugarLogger) *site.PageBuilder {
	httpClient := &http.Client{
		Timeout: 30 * time.Second, // Set reasonable timeout for API requests
	}

	githubClient := github.NewClient(api.ClientConfig{
		BaseURL: cfg.GitHubURL,
	}, httpClient)

	portfolioService := service.NewPortfolioService(githubClient, cfg.Username, cfg.LanguageColors, logger)

	return site.NewPageBuilder(portfolioService, cfg.Site, cfg.ProfileURL)
}

// buildServer wires up all dependencies and returns the configured HTTP handler.
// This is the composition root where all dependencies are created and injected.
// Follows SOLID principles and IoC (Inversion of Control).
func buildServer(cfg *config.Config, logger *zap.Logger) http.Handler {
	sugar := observability.NewSugarLogger(logger)
	renderer := site.NewHTMLRenderer()
	builder := buildPageBuilder(cfg, sugar)

	// Create handler with dependencies (Dependency Injection)
	handler := site.NewHandler(renderer, sugar, builder)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(observability.MetricsMiddleware)

	handler.RegisterRoutes(r)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
