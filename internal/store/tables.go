package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ytmanager/internal/models"
)

// playlistTable wraps the playlists relation.
type playlistTable struct {
	q querier
}

func (t playlistTable) insert(ctx context.Context, name string) (models.Playlist, error) {
	playlist := models.Playlist{Name: name}
	if err := t.q.QueryRowContext(ctx, `
		INSERT INTO playlists (playlist_name)
		VALUES ($1)
		RETURNING id`, name).Scan(&playlist.ID); err != nil {
		return models.Playlist{}, fmt.Errorf("insert playlist: %w", err)
	}
	return playlist, nil
}

func (t playlistTable) findAll(ctx context.Context) ([]models.Playlist, error) {
	rows, err := t.q.QueryContext(ctx, `
		SELECT id, playlist_name
		FROM playlists
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	playlists := make([]models.Playlist, 0)
	for rows.Next() {
		var playlist models.Playlist
		if err := rows.Scan(&playlist.ID, &playlist.Name); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}
	return playlists, nil
}

func (t playlistTable) findByID(ctx context.Context, id int64) (models.Playlist, error) {
	var playlist models.Playlist
	err := t.q.QueryRowContext(ctx, `
		SELECT id, playlist_name
		FROM playlists
		WHERE id = $1`, id).Scan(&playlist.ID, &playlist.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Playlist{}, notFound(id)
	}
	if err != nil {
		return models.Playlist{}, fmt.Errorf("get playlist: %w", err)
	}
	return playlist, nil
}

// save writes the name of an existing row. A row removed since it was read
// reports NotFound.
func (t playlistTable) save(ctx context.Context, playlist models.Playlist) error {
	res, err := t.q.ExecContext(ctx, `
		UPDATE playlists
		SET playlist_name = $1
		WHERE id = $2`, playlist.Name, playlist.ID)
	if err != nil {
		return fmt.Errorf("update playlist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound(playlist.ID)
	}
	return nil
}

func (t playlistTable) deleteByID(ctx context.Context, id int64) error {
	if _, err := t.q.ExecContext(ctx, `
		DELETE FROM playlists
		WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	return nil
}

// videoLinkTable wraps the video_playlists join relation.
type videoLinkTable struct {
	q querier
}

func (t videoLinkTable) deleteByPlaylistID(ctx context.Context, playlistID int64) error {
	if _, err := t.q.ExecContext(ctx, `
		DELETE FROM video_playlists
		WHERE playlist_id = $1`, playlistID); err != nil {
		return fmt.Errorf("delete playlist videos: %w", err)
	}
	return nil
}

func (t videoLinkTable) insert(ctx context.Context, link models.VideoPlaylistLink) error {
	if _, err := t.q.ExecContext(ctx, `
		INSERT INTO video_playlists (playlist_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (playlist_id, video_id) DO NOTHING`, link.PlaylistID, link.VideoID); err != nil {
		if isForeignKeyViolation(err) {
			return notFound(link.PlaylistID)
		}
		return fmt.Errorf("insert playlist video: %w", err)
	}
	return nil
}

func (t videoLinkTable) videoIDsByPlaylistID(ctx context.Context, playlistID int64) ([]int64, error) {
	rows, err := t.q.QueryContext(ctx, `
		SELECT video_id
		FROM video_playlists
		WHERE playlist_id = $1
		ORDER BY id ASC`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("list playlist videos: %w", err)
	}
	defer rows.Close()

	videoIDs := make([]int64, 0)
	for rows.Next() {
		var videoID int64
		if err := rows.Scan(&videoID); err != nil {
			return nil, fmt.Errorf("scan playlist video: %w", err)
		}
		videoIDs = append(videoIDs, videoID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlist videos: %w", err)
	}
	return videoIDs, nil
}
