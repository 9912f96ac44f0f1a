package playlists

import (
	"context"
	"errors"
	"testing"

	"ytmanager/internal/models"
	"ytmanager/internal/store"
)

func TestServiceScenario(t *testing.T) {
	ctx := context.Background()
	svc := New(store.NewMemory())

	created, err := svc.Create(ctx, models.Playlist{Name: "Favorites"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}

	got, err := svc.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != (models.Playlist{ID: 1, Name: "Favorites"}) {
		t.Fatalf("unexpected playlist: %#v", got)
	}

	updated, err := svc.Update(ctx, 1, models.Playlist{Name: "Top Picks"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated != (models.Playlist{ID: 1, Name: "Top Picks"}) {
		t.Fatalf("unexpected playlist: %#v", updated)
	}

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err = svc.Get(ctx, 1)
	var nf *store.NotFoundError
	if !errors.As(err, &nf) || nf.ID != 1 {
		t.Fatalf("expected NotFoundError for 1, got %v", err)
	}
}

func TestServiceDeleteMissingOnEmptyStore(t *testing.T) {
	if err := New(store.NewMemory()).Delete(context.Background(), 999); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestServiceNotFoundForUnknownIDs(t *testing.T) {
	ctx := context.Background()
	svc := New(store.NewMemory())
	if _, err := svc.Create(ctx, models.Playlist{Name: "only"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, id := range []int64{0, 2, 42, -1} {
		if _, err := svc.Get(ctx, id); !errors.Is(err, store.ErrPlaylistNotFound) {
			t.Fatalf("Get(%d): expected not found, got %v", id, err)
		}
		if _, err := svc.Update(ctx, id, models.Playlist{Name: "x"}); !errors.Is(err, store.ErrPlaylistNotFound) {
			t.Fatalf("Update(%d): expected not found, got %v", id, err)
		}
	}
}

func TestServiceCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New(store.NewMemory())

	if _, err := svc.Create(ctx, models.Playlist{Name: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Create: expected context.Canceled, got %v", err)
	}
	if _, err := svc.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("List: expected context.Canceled, got %v", err)
	}
	if err := svc.Delete(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("Delete: expected context.Canceled, got %v", err)
	}
	if err := svc.AddVideo(ctx, 1, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("AddVideo: expected context.Canceled, got %v", err)
	}
}

func TestServiceVideos(t *testing.T) {
	ctx := context.Background()
	svc := New(store.NewMemory())

	p, err := svc.Create(ctx, models.Playlist{Name: "To Watch"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.AddVideo(ctx, p.ID, 7); err != nil {
		t.Fatalf("AddVideo: %v", err)
	}

	videos, err := svc.Videos(ctx, p.ID)
	if err != nil {
		t.Fatalf("Videos: %v", err)
	}
	if len(videos) != 1 || videos[0] != 7 {
		t.Fatalf("unexpected videos: %v", videos)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Videos(ctx, p.ID); !errors.Is(err, store.ErrPlaylistNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
