package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mkadlec/pagegrid/internal/writer"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handlePages returns the manifest as JSON.
func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	records, err := writer.ReadManifest(s.dir)
	if err != nil {
		http.Error(w, fmt.Sprintf("no manifest in %s: %v", s.dir, err), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handlePageImage serves a single page image. Only canonical page files are
// reachable; anything with a path separator or an unexpected name is
// rejected.
func (s *Server) handlePageImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !strings.HasPrefix(name, "page_") || name != filepath.Base(name) {
		http.Error(w, "invalid page name", http.StatusBadRequest)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.dir, name))
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>pagegrid preview</title>
<style>
body { font-family: sans-serif; margin: 2em; background: #f4f4f4; }
figure { margin: 0 0 2em 0; }
img { max-width: 100%; border: 1px solid #ccc; background: #fff; }
figcaption { color: #555; font-size: 0.85em; margin-top: 0.3em; }
</style>
</head>
<body>
<h1>Pages</h1>
{{range .}}
<figure>
  <img src="/pages/{{.File}}" alt="{{.File}}">
  <figcaption>{{.File}} &mdash; {{len .Images}} images</figcaption>
</figure>
{{else}}
<p>No pages found.</p>
{{end}}
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	records, err := writer.ReadManifest(s.dir)
	if err != nil {
		http.Error(w, fmt.Sprintf("no manifest in %s: %v", s.dir, err), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, records); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
