package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"ytmanager/internal/app/playlists"
	"ytmanager/internal/config"
	"ytmanager/internal/models"
	"ytmanager/internal/store"
)

func TestHTTPHandlerPlaylistLifecycle(t *testing.T) {
	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}}}
	handler := newHTTPHandler(cfg, zerolog.Nop(), playlists.New(store.NewMemory()))

	do := func(method, path string, body []byte) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Origin", "http://localhost:5173")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s %s: missing X-Request-ID", method, path)
		}
		return rr
	}

	rr := do(http.MethodPost, "/api/v1/playlists", []byte(`{"playlistName":"Favorites"}`))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("missing CORS header")
	}
	var created models.Playlist
	if err := json.NewDecoder(rr.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created != (models.Playlist{ID: 1, Name: "Favorites"}) {
		t.Fatalf("unexpected created playlist: %#v", created)
	}

	if rr := do(http.MethodPost, "/api/v1/playlists/1/videos", []byte(`{"videoId":5}`)); rr.Code != http.StatusNoContent {
		t.Fatalf("add video: expected 204, got %d", rr.Code)
	}

	rr = do(http.MethodPut, "/api/v1/playlists/1", []byte(`{"playlistName":"Top Picks"}`))
	if rr.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", rr.Code)
	}

	if rr := do(http.MethodDelete, "/api/v1/playlists/1", nil); rr.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rr.Code)
	}
	if rr := do(http.MethodGet, "/api/v1/playlists/1", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rr.Code)
	}
	if rr := do(http.MethodGet, "/api/v1/playlists/1/videos", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("videos after delete: expected 404, got %d", rr.Code)
	}
	if rr := do(http.MethodDelete, "/api/v1/playlists/999", nil); rr.Code != http.StatusNoContent {
		t.Fatalf("delete missing: expected 204, got %d", rr.Code)
	}
}

func TestHTTPHandlerPreflight(t *testing.T) {
	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}}}
	handler := newHTTPHandler(cfg, zerolog.Nop(), playlists.New(store.NewMemory()))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/playlists/1", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Fatalf("expected CORS methods header")
	}
}
