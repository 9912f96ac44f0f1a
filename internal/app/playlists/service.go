package playlists

import (
	"context"

	"ytmanager/internal/logging"
	"ytmanager/internal/models"
)

// Store captures the persistence needs for playlist workflows.
type Store interface {
	CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	ListPlaylists(ctx context.Context) ([]models.Playlist, error)
	GetPlaylist(ctx context.Context, id int64) (models.Playlist, error)
	UpdatePlaylist(ctx context.Context, id int64, playlist models.Playlist) (models.Playlist, error)
	DeletePlaylist(ctx context.Context, id int64) error
	AddVideoToPlaylist(ctx context.Context, playlistID, videoID int64) error
	ListPlaylistVideos(ctx context.Context, playlistID int64) ([]int64, error)
}

// Service coordinates playlist-related operations.
type Service interface {
	List(ctx context.Context) ([]models.Playlist, error)
	Get(ctx context.Context, id int64) (models.Playlist, error)
	Create(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	Update(ctx context.Context, id int64, playlist models.Playlist) (models.Playlist, error)
	Delete(ctx context.Context, id int64) error
	AddVideo(ctx context.Context, playlistID, videoID int64) error
	Videos(ctx context.Context, playlistID int64) ([]int64, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context) ([]models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlaylists(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return models.Playlist{}, err
	}
	return s.store.GetPlaylist(ctx, id)
}

func (s *service) Create(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return models.Playlist{}, err
	}
	created, err := s.store.CreatePlaylist(ctx, playlist)
	if err != nil {
		return models.Playlist{}, err
	}
	logging.WithContext(ctx).Info().Int64("playlist_id", created.ID).Msg("playlist created")
	return created, nil
}

func (s *service) Update(ctx context.Context, id int64, playlist models.Playlist) (models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return models.Playlist{}, err
	}
	updated, err := s.store.UpdatePlaylist(ctx, id, playlist)
	if err != nil {
		return models.Playlist{}, err
	}
	logging.WithContext(ctx).Debug().Int64("playlist_id", id).Msg("playlist renamed")
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.store.DeletePlaylist(ctx, id); err != nil {
		return err
	}
	logging.WithContext(ctx).Info().Int64("playlist_id", id).Msg("playlist deleted")
	return nil
}

func (s *service) AddVideo(ctx context.Context, playlistID, videoID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.AddVideoToPlaylist(ctx, playlistID, videoID)
}

func (s *service) Videos(ctx context.Context, playlistID int64) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlaylistVideos(ctx, playlistID)
}
