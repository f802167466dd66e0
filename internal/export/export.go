// Package export writes the portfolio as a set of static HTML files.
package export

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"portfolio.dev/internal/render"
	"portfolio.dev/internal/services"
)

// Site renders one page per filter tag
type Site struct {
	Pages *services.PageService
	Title string
	Log   logrus.FieldLogger

	// StaticDir and AssetsDir are copied to static/ and assets/ when set
	StaticDir string
	AssetsDir string
}

// Write generates index.html, filter/<tag>.html and catalog.json under dir
// and copies the static and asset directories next to them.
// Returns the number of files written.
func (s *Site) Write(dir string) (int, error) {
	filterDir := filepath.Join(dir, "filter")
	if err := os.MkdirAll(filterDir, 0755); err != nil {
		return 0, fmt.Errorf("creating output directory: %w", err)
	}

	written := 0

	for _, d := range []struct{ src, dst string }{
		{s.StaticDir, "static"},
		{s.AssetsDir, "assets"},
	} {
		n, err := copyDir(d.src, filepath.Join(dir, d.dst))
		written += n
		if err != nil {
			return written, err
		}
	}

	index, err := s.renderer("static", "assets", "index.html", "filter/")
	if err != nil {
		return written, err
	}
	if err := writePage(filepath.Join(dir, "index.html"), index, s.Pages, ""); err != nil {
		return written, err
	}
	written++

	filtered, err := s.renderer("../static", "../assets", "../index.html", "")
	if err != nil {
		return written, err
	}
	for _, tag := range s.Pages.Tags() {
		path := filepath.Join(filterDir, FileName(tag))
		if err := writePage(path, filtered, s.Pages, tag); err != nil {
			return written, err
		}
		written++
		if s.Log != nil {
			s.Log.WithField("file", path).Debug("wrote filter page")
		}
	}

	data, err := json.MarshalIndent(s.Pages.Catalog(), "", "  ")
	if err != nil {
		return written, fmt.Errorf("marshaling catalog: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "catalog.json"), data, 0644); err != nil {
		return written, fmt.Errorf("writing catalog: %w", err)
	}
	written++

	return written, nil
}

// FileName returns the page file name for a filter tag
func FileName(tag string) string {
	return url.PathEscape(tag) + ".html"
}

func (s *Site) renderer(static, assets, index, filterPrefix string) (*render.Renderer, error) {
	return render.New(render.Options{
		Title:        s.Title,
		StaticPrefix: static,
		AssetPrefix:  assets,
		SearchAction: index,
		FilterHref: func(tag string) string {
			return filterPrefix + FileName(tag)
		},
	})
}

func writePage(path string, r *render.Renderer, pages *services.PageService, tag string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := r.Page(f, pages.Build(tag, "")); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// copyDir copies the regular files under src into dst. A missing or empty
// src copies nothing.
func copyDir(src, dst string) (int, error) {
	if src == "" {
		return 0, nil
	}
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return 0, nil
	}

	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("copying %s: %w", src, err)
	}
	return copied, nil
}
