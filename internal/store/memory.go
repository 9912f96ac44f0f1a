package store

import (
	"context"
	"slices"
	"sync"

	"ytmanager/internal/models"
)

// Memory keeps playlists and their video links in process memory. It offers
// the same operations as Store and is meant for local runs without Postgres.
type Memory struct {
	mu        sync.RWMutex
	playlists map[int64]models.Playlist
	links     map[int64][]int64
	nextID    int64
}

// NewMemory returns an empty Memory store. IDs are assigned from 1.
func NewMemory() *Memory {
	return &Memory{
		playlists: make(map[int64]models.Playlist),
		links:     make(map[int64][]int64),
		nextID:    1,
	}
}

// CreatePlaylist stores a playlist under the next free ID.
func (m *Memory) CreatePlaylist(_ context.Context, playlist models.Playlist) (models.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := models.Playlist{ID: m.nextID, Name: playlist.Name}
	m.nextID++
	m.playlists[stored.ID] = stored
	return stored, nil
}

// ListPlaylists returns every playlist ordered by ID.
func (m *Memory) ListPlaylists(_ context.Context) ([]models.Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Playlist, 0, len(m.playlists))
	for _, playlist := range m.playlists {
		result = append(result, playlist)
	}
	slices.SortFunc(result, func(a, b models.Playlist) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return result, nil
}

// GetPlaylist returns a playlist by ID.
func (m *Memory) GetPlaylist(_ context.Context, id int64) (models.Playlist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	playlist, ok := m.playlists[id]
	if !ok {
		return models.Playlist{}, notFound(id)
	}
	return playlist, nil
}

// UpdatePlaylist replaces the name of an existing playlist.
func (m *Memory) UpdatePlaylist(_ context.Context, id int64, playlist models.Playlist) (models.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.playlists[id]
	if !ok {
		return models.Playlist{}, notFound(id)
	}
	existing.Name = playlist.Name
	m.playlists[id] = existing
	return existing, nil
}

// DeletePlaylist removes a playlist and its video links under one lock.
func (m *Memory) DeletePlaylist(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.links, id)
	delete(m.playlists, id)
	return nil
}

// AddVideoToPlaylist links a video to an existing playlist.
func (m *Memory) AddVideoToPlaylist(_ context.Context, playlistID, videoID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.playlists[playlistID]; !ok {
		return notFound(playlistID)
	}
	if slices.Contains(m.links[playlistID], videoID) {
		return nil
	}
	m.links[playlistID] = append(m.links[playlistID], videoID)
	return nil
}

// ListPlaylistVideos returns the video IDs linked to a playlist.
func (m *Memory) ListPlaylistVideos(_ context.Context, playlistID int64) ([]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.playlists[playlistID]; !ok {
		return nil, notFound(playlistID)
	}
	linked := m.links[playlistID]
	return append(make([]int64, 0, len(linked)), linked...), nil
}
