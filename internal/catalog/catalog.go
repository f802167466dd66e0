// Package catalog holds the built-in PDF link catalogs served next to the
// portfolio projects.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"portfolio.dev/internal/models"
)

// Names of the built-in catalogs
const (
	Full        = "full"
	Placeholder = "placeholder"
)

// ErrUnknownCatalog is returned by Lookup for a name that is not built in
var ErrUnknownCatalog = errors.New("unknown catalog")

var full = models.Catalog{
	{Name: "DSA", URL: "./assets/dsa.pdf"},
	{Name: "CPP-OOPS", URL: "./assets/ooos-cpp.pdf"},
	{Name: "SQL", URL: "./assets/sql.pdf"},
	{Name: "PYTHON", URL: "./assets/mernstack.pdf"},
	{Name: "DBMS", URL: "./assets/dbms.pdf"},
	{Name: "OPERATING SYSTEM", URL: "./assets/os.pdf"},
	{Name: "COMPUTER NETWORK", URL: "./assets/cn.pdf"},
	{Name: "REACT 1", URL: "./assets/React_merged.pdf"},
	{Name: "REACT 2", URL: "./assets/reactjs.pdf"},
	{Name: "MERN STACK", URL: "./assets/mernstack.pdf"},
	{Name: "FLUTTER CLEAN ARCHITECTURE", URL: "./assets/flutter-clean.pdf"},
	{Name: "WEB", URL: "./assets/web.pdf"},
	{Name: "MYSQL-REACT", URL: "./assets/mysql-react.pdf"},
}

var placeholder = models.Catalog{
	{Name: "Project Report", URL: "./assets/project-report.pdf"},
	{Name: "Design Notes", URL: "./assets/design-notes.pdf"},
	{Name: "Slides", URL: "./assets/slides.pdf"},
}

var builtin = map[string]models.Catalog{
	Full:        full,
	Placeholder: placeholder,
}

// Default returns a copy of the full catalog
func Default() models.Catalog {
	return full.Clone()
}

// Lookup returns a copy of the named built-in catalog
func Lookup(name string) (models.Catalog, error) {
	c, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCatalog, name)
	}
	return c.Clone(), nil
}

// Names lists the built-in catalog names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
