package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"ytmanager/internal/logging"
	"ytmanager/internal/models"
	"ytmanager/internal/store"
)

// PlaylistService coordinates playlist-related operations.
type PlaylistService interface {
	List(ctx context.Context) ([]models.Playlist, error)
	Get(ctx context.Context, id int64) (models.Playlist, error)
	Create(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	Update(ctx context.Context, id int64, playlist models.Playlist) (models.Playlist, error)
	Delete(ctx context.Context, id int64) error
	AddVideo(ctx context.Context, playlistID, videoID int64) error
	Videos(ctx context.Context, playlistID int64) ([]int64, error)
}

// Server wires HTTP handlers to the playlist service.
type Server struct {
	playlists PlaylistService
}

// New configures a Server with the given service.
func New(playlists PlaylistService) *Server {
	return &Server{playlists: playlists}
}

// Routes exposes the HTTP handlers. Middleware is applied in the order given.
func (s *Server) Routes(middleware ...mux.MiddlewareFunc) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware...)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/playlists", s.listPlaylists).Methods(http.MethodGet)
	api.HandleFunc("/playlists", s.createPlaylist).Methods(http.MethodPost)
	api.HandleFunc("/playlists/{id}", s.getPlaylist).Methods(http.MethodGet)
	api.HandleFunc("/playlists/{id}", s.updatePlaylist).Methods(http.MethodPut)
	api.HandleFunc("/playlists/{id}", s.deletePlaylist).Methods(http.MethodDelete)
	api.HandleFunc("/playlists/{id}/videos", s.listPlaylistVideos).Methods(http.MethodGet)
	api.HandleFunc("/playlists/{id}/videos", s.addPlaylistVideo).Methods(http.MethodPost)

	// Preflight requests are answered by the CORS middleware, which only runs
	// on matched routes.
	router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return router
}

type errorResponse struct {
	Error string `json:"error"`
}

func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid playlist id"})
		return 0, false
	}
	return id, true
}

// writeError maps service errors onto HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrPlaylistNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	logging.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
