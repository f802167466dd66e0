// Package render turns a page.Page into HTML.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"portfolio.dev/internal/models"
	"portfolio.dev/internal/page"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options controls the links emitted by the renderer
type Options struct {
	Title        string
	StaticPrefix string
	// AssetPrefix replaces the "./assets" prefix of catalog links.
	// Empty leaves links untouched.
	AssetPrefix  string
	SearchAction string
	// FilterHref builds the link behind a filter button
	FilterHref func(tag string) string
}

// DefaultOptions returns options for pages served by the HTTP server
func DefaultOptions() Options {
	return Options{
		Title:        "Portfolio",
		StaticPrefix: "/static",
		AssetPrefix:  "/assets",
		SearchAction: "/",
		FilterHref: func(tag string) string {
			return "/?filter=" + url.QueryEscape(tag)
		},
	}
}

// Renderer renders pages and page fragments
type Renderer struct {
	opts Options
	tmpl *template.Template
	md   goldmark.Markdown
}

// New creates a Renderer
func New(opts Options) (*Renderer, error) {
	defaults := DefaultOptions()
	if opts.Title == "" {
		opts.Title = defaults.Title
	}
	if opts.SearchAction == "" {
		opts.SearchAction = defaults.SearchAction
	}
	if opts.FilterHref == nil {
		opts.FilterHref = defaults.FilterHref
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{
		opts: opts,
		tmpl: tmpl,
		md:   goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}, nil
}

type projectView struct {
	models.Project
	Description template.HTML
}

type pageView struct {
	Options
	SearchInput   string
	Notifications []string
	Controls      []models.Control
	Projects      []projectView
	Results       []models.ResultItem
}

// Page writes the full HTML document for p
func (r *Renderer) Page(w io.Writer, p *page.Page) error {
	view, err := r.view(p)
	if err != nil {
		return err
	}
	if err := r.tmpl.ExecuteTemplate(w, "page.html", view); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// PDFList writes only the results container of p
func (r *Renderer) PDFList(w io.Writer, p *page.Page) error {
	view := pageView{Options: r.opts, Results: r.results(p.Results)}
	if err := r.tmpl.ExecuteTemplate(w, "pdf-list", view); err != nil {
		return fmt.Errorf("rendering pdf list: %w", err)
	}
	return nil
}

// Markdown converts a project description to HTML
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	// goldmark omits raw HTML unless WithUnsafe is set
	return template.HTML(buf.String()), nil
}

func (r *Renderer) view(p *page.Page) (pageView, error) {
	projects := make([]projectView, 0, len(p.Projects))
	for _, project := range p.Projects {
		desc, err := r.Markdown(project.Description)
		if err != nil {
			return pageView{}, fmt.Errorf("project %s: %w", project.ID, err)
		}
		projects = append(projects, projectView{Project: project, Description: desc})
	}

	return pageView{
		Options:       r.opts,
		SearchInput:   p.SearchInput,
		Notifications: p.Notifications,
		Controls:      p.Controls,
		Projects:      projects,
		Results:       r.results(p.Results),
	}, nil
}

// AssetURL rewrites a catalog link that points into ./assets
func (r *Renderer) AssetURL(link string) string {
	if r.opts.AssetPrefix == "" {
		return link
	}
	if rest, ok := strings.CutPrefix(link, "./assets/"); ok {
		return strings.TrimSuffix(r.opts.AssetPrefix, "/") + "/" + rest
	}
	return link
}

func (r *Renderer) results(items []models.ResultItem) []models.ResultItem {
	out := make([]models.ResultItem, len(items))
	for i, item := range items {
		item.URL = r.AssetURL(item.URL)
		out[i] = item
	}
	return out
}
