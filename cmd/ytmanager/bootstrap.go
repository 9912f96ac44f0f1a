package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"ytmanager/internal/app/playlists"
	"ytmanager/internal/models"
)

// defaultPlaylistName is the playlist the frontend's quick-add button targets.
const defaultPlaylistName = "To Watch"

// bootstrapDefaultPlaylist creates the default playlist when no playlist exists.
func bootstrapDefaultPlaylist(ctx context.Context, svc playlists.Service) error {
	existing, err := svc.List(ctx)
	if err != nil {
		return fmt.Errorf("list playlists: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	created, err := svc.Create(ctx, models.Playlist{Name: defaultPlaylistName})
	if err != nil {
		return fmt.Errorf("bootstrap default playlist: %w", err)
	}
	log.Info().Int64("playlist_id", created.ID).Str("name", created.Name).Msg("seeded default playlist")
	return nil
}
