package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"portfolio.dev/internal/page"
	"portfolio.dev/internal/render"
	"portfolio.dev/internal/services"
)

// PageHandler serves the HTML page and its fragments
type PageHandler struct {
	pageService *services.PageService
	renderer    *render.Renderer
	log         logrus.FieldLogger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.PageService, rr *render.Renderer, log logrus.FieldLogger) *PageHandler {
	return &PageHandler{pageService: ps, renderer: rr, log: log}
}

// Index handles GET /?filter=&q=
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := h.pageService.Build(q.Get("filter"), q.Get("q"))
	h.write(w, p, h.renderer.Page)
}

// PDFList handles GET /fragments/pdf-list?filter=
func (h *PageHandler) PDFList(w http.ResponseWriter, r *http.Request) {
	p := h.pageService.Build(r.URL.Query().Get("filter"), "")
	h.write(w, p, h.renderer.PDFList)
}

func (h *PageHandler) write(w http.ResponseWriter, p *page.Page, fn func(io.Writer, *page.Page) error) {
	var buf bytes.Buffer
	if err := fn(&buf, p); err != nil {
		h.log.WithError(err).Error("rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
