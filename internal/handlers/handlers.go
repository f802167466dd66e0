package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"portfolio.dev/internal/catalog"
	"portfolio.dev/internal/config"
	"portfolio.dev/internal/middleware"
	"portfolio.dev/internal/render"
	"portfolio.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, log logrus.FieldLogger) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(chimw.Timeout(30 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if cfg.CORSAllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Initialize services
	pdfs, err := catalog.Lookup(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	projectService := services.NewProjectService(cfg.Projects, cfg.Filters)
	pageService := services.NewPageService(projectService, services.NewCategoryFilter(pdfs))

	opts := render.DefaultOptions()
	if cfg.Title != "" {
		opts.Title = cfg.Title
	}
	renderer, err := render.New(opts)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	// Initialize handlers
	pageHandler := NewPageHandler(pageService, renderer, log)
	searchHandler := NewSearchHandler(log)
	filterHandler := NewFilterHandler(pageService, log)
	projectHandler := NewProjectHandler(projectService, log)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/search", searchHandler.Search)
		r.Get("/filter/{tag}", filterHandler.Select)
		r.Get("/catalog", filterHandler.Catalog)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Get("/fragments/pdf-list", pageHandler.PDFList)

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	assetServer := http.FileServer(http.Dir(cfg.AssetsDir))
	r.Handle("/assets/*", http.StripPrefix("/assets", assetServer))

	r.Get("/", pageHandler.Index)

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, log logrus.FieldLogger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.WithError(err).Error("encoding JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, log logrus.FieldLogger, status int, message string) {
	respondJSON(w, log, status, map[string]string{"error": message})
}

// errorStatus maps service errors to HTTP status codes
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
