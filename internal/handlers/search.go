package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"portfolio.dev/internal/page"
	"portfolio.dev/internal/services"
)

// SearchHandler handles the search endpoint
type SearchHandler struct {
	log logrus.FieldLogger
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(log logrus.FieldLogger) *SearchHandler {
	return &SearchHandler{log: log}
}

type searchResponse struct {
	Notified bool   `json:"notified"`
	Message  string `json:"message,omitempty"`
}

// Search handles GET /api/search?q=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	p := page.New(nil, nil)
	query := r.URL.Query().Get("q")

	resp := searchResponse{Notified: services.NewSearchTrigger(p).Activate(query)}
	if resp.Notified {
		resp.Message = p.Notifications[0]
	}
	respondJSON(w, h.log, http.StatusOK, resp)
}
