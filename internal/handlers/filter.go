package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"portfolio.dev/internal/models"
	"portfolio.dev/internal/services"
)

// FilterHandler exposes the category filter as JSON
type FilterHandler struct {
	pageService *services.PageService
	log         logrus.FieldLogger
}

// NewFilterHandler creates a new FilterHandler
func NewFilterHandler(ps *services.PageService, log logrus.FieldLogger) *FilterHandler {
	return &FilterHandler{pageService: ps, log: log}
}

type filterResponse struct {
	Filter   string              `json:"filter"`
	Controls []models.Control    `json:"controls"`
	Results  []models.ResultItem `json:"results"`
	Count    int                 `json:"count"`
}

// Select handles GET /api/filter/{tag}
func (h *FilterHandler) Select(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	p := h.pageService.Build(tag, "")

	results := p.Results
	if results == nil {
		results = []models.ResultItem{}
	}
	respondJSON(w, h.log, http.StatusOK, filterResponse{
		Filter:   tag,
		Controls: p.Controls,
		Results:  results,
		Count:    len(results),
	})
}

// Catalog handles GET /api/catalog
func (h *FilterHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.log, http.StatusOK, h.pageService.Catalog())
}
