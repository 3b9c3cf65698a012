package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkadlec/pagegrid/internal/layout"
	"github.com/mkadlec/pagegrid/internal/writer"
)

// newTestServer builds a server over a directory holding one fake page and
// its manifest.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "page_000.jpg"), []byte("fake-jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := writer.WriteManifest(dir, []layout.PageRecord{
		{
			File:   "page_000.jpg",
			Images: []layout.ImageRef{{Index: 0, Identifier: "a.jpg"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewServer(dir, "127.0.0.1", 0)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/v1/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestPagesJSON(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/v1/pages")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var records []layout.PageRecord
	if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(records) != 1 || records[0].File != "page_000.jpg" {
		t.Errorf("records = %+v", records)
	}
	if len(records[0].Images) != 1 || records[0].Images[0].Identifier != "a.jpg" {
		t.Errorf("images = %+v", records[0].Images)
	}
}

func TestPageImage(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/pages/page_000.jpg")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "fake-jpeg" {
		t.Errorf("body = %q", rec.Body.String())
	}

	// Non-page names are rejected before hitting the filesystem.
	rec = get(t, s, "/pages/secrets.txt")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status for invalid name = %d, want 400", rec.Code)
	}
}

func TestIndexHTML(t *testing.T) {
	rec := get(t, newTestServer(t), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "page_000.jpg") {
		t.Errorf("index does not list the page: %s", body)
	}
}
