package site

import (
	"bytes"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Logger interface for logging operations (Interface Segregation Principle).
type Logger interface {
	Printf(format string, v ...interface{})
}

// Builder interface for page construction (Dependency Inversion Principle).
type Builder interface {
	Build(ctx context.Context, menu NavMenu) *Page
}

// Handler handles HTTP requests for the portfolio.
// Each handler method has a Single Responsibility (SRP).
type Handler struct {
	renderer Renderer
	logger   Logger
	builder  Builder
}

// NewHandler creates a new Handler with injected dependencies (Dependency Inversion Principle).
// This follows IoC (Inversion of Control) by accepting dependencies rather than creating them.
func NewHandler(renderer Renderer, logger Logger, builder Builder) *Handler {
	return &Handler{
		renderer: renderer,
		logger:   logger,
		builder:  builder,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handlePortfolio)
	r.Get("/api/portfolio", h.handlePortfolioJSON)
	r.Get("/api/health", h.handleHealth)
}

// handleHealth serves the health check endpoint.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := h.renderer.RenderHealth(w); err != nil {
		h.logger.Printf("failed to render health: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// handlePortfolio builds a fresh page and serves it as HTML.
func (h *Handler) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	page := h.builder.Build(r.Context(), ParseNavMenu(r.URL.Query().Get(menuParam)))

	// Render to a buffer so a failure can still be answered with a 500
	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, page); err != nil {
		h.logger.Printf("failed to render portfolio: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Printf("failed to write portfolio: %v", err)
	}
}

// handlePortfolioJSON builds a fresh page and serves its regions as JSON.
func (h *Handler) handlePortfolioJSON(w http.ResponseWriter, r *http.Request) {
	page := h.builder.Build(r.Context(), ParseNavMenu(r.URL.Query().Get(menuParam)))

	var buf bytes.Buffer
	if err := h.renderer.RenderPageJSON(&buf, page); err != nil {
		h.logger.Printf("failed to encode portfolio: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Printf("failed to write portfolio: %v", err)
	}
}
