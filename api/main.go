package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/RiteshTiwari1/price-comparison-tool/internal/config"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/countries"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/logger"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/models"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/search"
	"github.com/RiteshTiwari1/price-comparison-tool/internal/serpapi"
)

func main() {
	log := logger.New("api")
	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}
	if cfg.SerpAPIKey == "" {
		log.Warn("SERPAPI_API_KEY is not set; searches will return the credential error")
	}

	upstream := serpapi.New(cfg.SerpAPIKey, cfg.RetryDelay, log)
	srv := &server{
		log:      log,
		searcher: search.New(cfg, upstream, log),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/", srv.handleRoot)
	r.Get("/health", srv.handleHealth)
	r.Post("/api/products/search", srv.handleSearch)
	r.Get("/api/products/countries", srv.handleCountries)

	httpServer := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// A search fans out to several upstream calls, so the write side
		// gets a generous budget.
		WriteTimeout: 2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("api server starting", slog.String("addr", cfg.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
}

type searcher interface {
	Search(ctx context.Context, query, country string) []models.Product
}

type server struct {
	log      *slog.Logger
	searcher searcher
}

type searchRequest struct {
	Country string `json:"country"`
	Query   string `json:"query"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	req.Country = strings.TrimSpace(req.Country)
	req.Query = strings.TrimSpace(req.Query)
	if req.Country == "" || req.Query == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Country and query are required"})
		return
	}

	s.log.Info("search request",
		slog.String("query", req.Query),
		slog.String("country", req.Country),
	)

	products := s.searcher.Search(r.Context(), req.Query, req.Country)
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

func (s *server) handleCountries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, countries.All())
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Price Comparison API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"search":    "POST /api/products/search",
			"countries": "GET /api/products/countries",
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// nothing better to do
	}
}
