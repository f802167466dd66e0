package models

// FilterAll is the filter tag that matches every project
const FilterAll = "all"

// PDFLink is a single downloadable document in the catalog
type PDFLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

// Catalog is an ordered list of PDF links
type Catalog []PDFLink

// Clone returns a copy that shares no backing array with c
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}

// Control is a filter button on the page
type Control struct {
	Tag    string `json:"tag"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// ResultItem is one rendered entry in the PDF list
type ResultItem struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Label string `json:"label"`
}
