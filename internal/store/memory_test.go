package store

import (
	"context"
	"errors"
	"testing"

	"ytmanager/internal/models"
)

func TestMemoryPlaylistLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	created, err := m.CreatePlaylist(ctx, models.Playlist{Name: "Favorites"})
	if err != nil {
		t.Fatalf("CreatePlaylist: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}

	got, err := m.GetPlaylist(ctx, 1)
	if err != nil {
		t.Fatalf("GetPlaylist: %v", err)
	}
	if got != created {
		t.Fatalf("expected %#v, got %#v", created, got)
	}

	updated, err := m.UpdatePlaylist(ctx, 1, models.Playlist{ID: 9, Name: "Top Picks"})
	if err != nil {
		t.Fatalf("UpdatePlaylist: %v", err)
	}
	if updated != (models.Playlist{ID: 1, Name: "Top Picks"}) {
		t.Fatalf("unexpected update result: %#v", updated)
	}

	if err := m.DeletePlaylist(ctx, 1); err != nil {
		t.Fatalf("DeletePlaylist: %v", err)
	}

	_, err = m.GetPlaylist(ctx, 1)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != 1 {
		t.Fatalf("expected NotFoundError for 1, got %v", err)
	}
}

func TestMemoryDeleteMissingIsNoop(t *testing.T) {
	if err := NewMemory().DeletePlaylist(context.Background(), 999); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestMemoryUpdateMissing(t *testing.T) {
	_, err := NewMemory().UpdatePlaylist(context.Background(), 4, models.Playlist{Name: "x"})
	if !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
}

func TestMemoryDeleteRemovesLinks(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	p, _ := m.CreatePlaylist(ctx, models.Playlist{Name: "To Watch"})
	for _, videoID := range []int64{3, 5, 3} {
		if err := m.AddVideoToPlaylist(ctx, p.ID, videoID); err != nil {
			t.Fatalf("AddVideoToPlaylist: %v", err)
		}
	}

	videos, err := m.ListPlaylistVideos(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListPlaylistVideos: %v", err)
	}
	if len(videos) != 2 || videos[0] != 3 || videos[1] != 5 {
		t.Fatalf("unexpected videos: %v", videos)
	}

	if err := m.DeletePlaylist(ctx, p.ID); err != nil {
		t.Fatalf("DeletePlaylist: %v", err)
	}
	if _, ok := m.links[p.ID]; ok {
		t.Fatalf("links for playlist %d survived delete", p.ID)
	}
	if err := m.AddVideoToPlaylist(ctx, p.ID, 3); !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
}

func TestMemoryListOrderedByID(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	for _, name := range []string{"a", "b", "c"} {
		if _, err := m.CreatePlaylist(ctx, models.Playlist{Name: name}); err != nil {
			t.Fatalf("CreatePlaylist: %v", err)
		}
	}

	got, err := m.ListPlaylists(ctx)
	if err != nil {
		t.Fatalf("ListPlaylists: %v", err)
	}
	for i, p := range got {
		if p.ID != int64(i+1) {
			t.Fatalf("unexpected order: %#v", got)
		}
	}
}
