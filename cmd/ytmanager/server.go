package main

import (
	"net/http"

	"github.com/rs/zerolog"

	"ytmanager/internal/app/playlists"
	"ytmanager/internal/config"
	"ytmanager/internal/http/middleware"
	"ytmanager/internal/httpapi"
)

func newHTTPHandler(cfg *config.Config, logger zerolog.Logger, playlistSvc playlists.Service) http.Handler {
	return httpapi.New(playlistSvc).Routes(
		middleware.Recovery(logger),
		middleware.RequestLogging(logger),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)
}
