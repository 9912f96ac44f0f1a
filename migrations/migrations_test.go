package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(names) == 0 {
		t.Fatalf("no migrations embedded")
	}

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Fatalf("unexpected migration file name %q", name)
		}
	}
	for version := range ups {
		if !downs[version] {
			t.Fatalf("migration %s has no down file", version)
		}
	}
	if len(ups) != len(downs) {
		t.Fatalf("mismatched migrations: %d up, %d down", len(ups), len(downs))
	}
}

func TestSchemaHasNoDatabaseCascade(t *testing.T) {
	up, err := files.ReadFile("000001_create_playlists.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	schema := strings.ToUpper(string(up))
	if strings.Contains(schema, "ON DELETE CASCADE") {
		t.Fatalf("video_playlists must not cascade at the database level")
	}
	for _, table := range []string{"PLAYLISTS", "VIDEO_PLAYLISTS"} {
		if !strings.Contains(schema, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Fatalf("schema does not create %s", table)
		}
	}
}
