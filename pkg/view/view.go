// Package view renders server-side HTML pages from an embedded template set.
//
// Every page template is parsed together with the shared base layout; the
// page fills the layout's "title" and "content" blocks. Rendering goes
// through a buffer so a template error never leaks a half-written page.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/grocerly/grocerly/pkg/logger"
)

const layoutFile = "base.html"

// Data is the payload handed to a page template.
type Data map[string]interface{}

// Renderer holds one compiled template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page in fsys against the base layout. funcs are made
// available to all templates (the router's URL builder goes in here).
func New(fsys fs.FS, funcs template.FuncMap) (*Renderer, error) {
	entries, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("view: glob templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(entries))}

	for _, page := range entries {
		if path.Base(page) == layoutFile {
			continue
		}

		t, err := template.New(layoutFile).Funcs(funcs).ParseFS(fsys, layoutFile, page)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", page, err)
		}
		r.pages[path.Base(page)] = t
	}

	return r, nil
}

// Render writes the named page with the given status code. On template
// failure the error is logged and a plain 500 is served instead.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Data) {
	t, ok := r.pages[page]
	if !ok {
		logger.Error("view: unknown template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = Data{}
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutFile, data); err != nil {
		logger.Error("view: render failed", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
