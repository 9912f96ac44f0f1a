package store

import (
	"context"
	"fmt"

	"ytmanager/internal/models"
)

// CreatePlaylist inserts a playlist and returns it with its assigned ID.
func (s *Store) CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	return playlistTable{q: s.db}.insert(ctx, playlist.Name)
}

// ListPlaylists returns every playlist.
func (s *Store) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	return playlistTable{q: s.db}.findAll(ctx)
}

// GetPlaylist returns a single playlist by ID.
func (s *Store) GetPlaylist(ctx context.Context, id int64) (models.Playlist, error) {
	return playlistTable{q: s.db}.findByID(ctx, id)
}

// UpdatePlaylist replaces the name of an existing playlist. Only the name is
// taken from the input.
func (s *Store) UpdatePlaylist(ctx context.Context, id int64, playlist models.Playlist) (models.Playlist, error) {
	table := playlistTable{q: s.db}

	existing, err := table.findByID(ctx, id)
	if err != nil {
		return models.Playlist{}, err
	}
	existing.Name = playlist.Name

	if err := table.save(ctx, existing); err != nil {
		return models.Playlist{}, err
	}
	return existing, nil
}

// DeletePlaylist removes a playlist and every video link that references it
// in a single transaction. Deleting a missing playlist is not an error.
func (s *Store) DeletePlaylist(ctx context.Context, id int64) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	links := videoLinkTable{q: tx}
	if err = links.deleteByPlaylistID(ctx, id); err != nil {
		return err
	}
	table := playlistTable{q: tx}
	if err = table.deleteByID(ctx, id); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit playlist delete: %w", err)
	}
	return nil
}

// AddVideoToPlaylist links a video to a playlist. Adding the same video twice
// is a no-op.
func (s *Store) AddVideoToPlaylist(ctx context.Context, playlistID, videoID int64) error {
	return videoLinkTable{q: s.db}.insert(ctx, models.VideoPlaylistLink{PlaylistID: playlistID, VideoID: videoID})
}

// ListPlaylistVideos returns the IDs of the videos linked to a playlist in the
// order they were added.
func (s *Store) ListPlaylistVideos(ctx context.Context, playlistID int64) ([]int64, error) {
	table := playlistTable{q: s.db}
	if _, err := table.findByID(ctx, playlistID); err != nil {
		return nil, err
	}
	return videoLinkTable{q: s.db}.videoIDsByPlaylistID(ctx, playlistID)
}
