// Package page models the portfolio document that the search trigger and the
// category filter act on. A Page is built per request and mutated in place.
package page

import (
	"unicode"
	"unicode/utf8"

	"portfolio.dev/internal/models"
)

// Page is the server-side view of the portfolio document
type Page struct {
	SearchInput   string
	Controls      []models.Control
	Projects      []models.Project
	Results       []models.ResultItem
	Notifications []string
}

// New creates a page with one inactive control per tag and an empty result list
func New(projects []models.Project, tags []string) *Page {
	controls := make([]models.Control, 0, len(tags))
	for _, tag := range tags {
		controls = append(controls, models.Control{Tag: tag, Label: ControlLabel(tag)})
	}
	return &Page{
		Controls: controls,
		Projects: projects,
	}
}

// Notify records a notification for the user
func (p *Page) Notify(message string) {
	p.Notifications = append(p.Notifications, message)
}

// ActiveTag returns the tag of the selected control, or "" when none is
func (p *Page) ActiveTag() string {
	for _, c := range p.Controls {
		if c.Active {
			return c.Tag
		}
	}
	return ""
}

// ActiveCount returns the number of controls marked active
func (p *Page) ActiveCount() int {
	n := 0
	for _, c := range p.Controls {
		if c.Active {
			n++
		}
	}
	return n
}

// ControlLabel turns a filter tag into a button caption
func ControlLabel(tag string) string {
	switch tag {
	case "":
		return ""
	case models.FilterAll:
		return "All"
	case "cpp":
		return "C++"
	}
	r, size := utf8.DecodeRuneInString(tag)
	return string(unicode.ToUpper(r)) + tag[size:]
}
