package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio.dev/internal/catalog"
	"portfolio.dev/internal/config"
	"portfolio.dev/internal/models"
)

func newTestRouter(t *testing.T, mutate func(*config.Config)) http.Handler {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.StaticDir = t.TempDir()
	cfg.AssetsDir = t.TempDir()
	cfg.Projects = &models.ProjectList{Projects: []models.Project{
		{ID: "a", Title: "A", Category: "web", Description: "A *web* project"},
		{ID: "b", Title: "B", Category: "cpp"},
	}}
	if mutate != nil {
		mutate(cfg)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	h, err := SetupRoutes(cfg, log)
	require.NoError(t, err)
	return h
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	w := get(t, newTestRouter(t, nil), "/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestSearch(t *testing.T) {
	h := newTestRouter(t, nil)

	w := get(t, h, "/api/search?q=golang")
	require.Equal(t, http.StatusOK, w.Code)
	var resp searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Notified)
	assert.Equal(t, "You searched for: golang", resp.Message)

	w = get(t, h, "/api/search")
	require.Equal(t, http.StatusOK, w.Code)
	resp = searchResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Notified)
	assert.Empty(t, resp.Message)
}

func decodeFilter(t *testing.T, w *httptest.ResponseRecorder) filterResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)
	var resp filterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestFilterScenario(t *testing.T) {
	h := newTestRouter(t, nil)
	n := len(catalog.Default())

	web := decodeFilter(t, get(t, h, "/api/filter/web"))
	require.Equal(t, n, web.Count)
	for _, item := range web.Results {
		assert.True(t, strings.HasSuffix(item.Label, " - A"), item.Label)
	}

	cpp := decodeFilter(t, get(t, h, "/api/filter/cpp"))
	require.Equal(t, n, cpp.Count)
	for _, item := range cpp.Results {
		assert.True(t, strings.HasSuffix(item.Label, " - B"), item.Label)
	}

	all := decodeFilter(t, get(t, h, "/api/filter/all"))
	assert.Equal(t, 2*n, all.Count)

	active := 0
	for _, c := range all.Controls {
		if c.Active {
			active++
			assert.Equal(t, "all", c.Tag)
		}
	}
	assert.Equal(t, 1, active)
}

func TestFilterUnknownTag(t *testing.T) {
	resp := decodeFilter(t, get(t, newTestRouter(t, nil), "/api/filter/rust"))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Results)
}

func TestCatalog(t *testing.T) {
	h := newTestRouter(t, func(c *config.Config) { c.Catalog = catalog.Placeholder })

	w := get(t, h, "/api/catalog")
	require.Equal(t, http.StatusOK, w.Code)
	var c models.Catalog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.Len(t, c, 3)

	resp := decodeFilter(t, get(t, h, "/api/filter/all"))
	assert.Equal(t, 6, resp.Count)
}

func TestProjects(t *testing.T) {
	h := newTestRouter(t, nil)

	w := get(t, h, "/api/projects")
	require.Equal(t, http.StatusOK, w.Code)
	var projects []models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	assert.Len(t, projects, 2)

	w = get(t, h, "/api/projects/b")
	require.Equal(t, http.StatusOK, w.Code)

	w = get(t, h, "/api/projects/zzz")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "project not found")
}

func TestIndexPage(t *testing.T) {
	h := newTestRouter(t, nil)

	w := get(t, h, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, `id="search-input"`)
	assert.Contains(t, body, `data-filter="cpp"`)
	assert.NotContains(t, body, "button active")
	assert.NotContains(t, body, `class="pdf-item"`)

	w = get(t, h, "/?filter=cpp&q=trees")
	body = w.Body.String()
	assert.Contains(t, body, `class="button active" data-filter="cpp"`)
	assert.Contains(t, body, "You searched for: trees")
	assert.Equal(t, len(catalog.Default()), strings.Count(body, `class="pdf-item"`))
	assert.Contains(t, body, "DSA - B")
}

func TestPDFListFragment(t *testing.T) {
	w := get(t, newTestRouter(t, nil), "/fragments/pdf-list?filter=all")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2*len(catalog.Default()), strings.Count(w.Body.String(), `class="pdf-item"`))
}

func TestCORSHeaders(t *testing.T) {
	h := newTestRouter(t, func(c *config.Config) { c.CORSAllowAll = true })

	req := httptest.NewRequest("OPTIONS", "/api/health", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRoutesRejectsUnknownCatalog(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Catalog = "huge"
	_, err := SetupRoutes(cfg, logrus.New())
	assert.ErrorIs(t, err, catalog.ErrUnknownCatalog)
}
