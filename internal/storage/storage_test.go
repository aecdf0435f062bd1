package storage

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mixmaster/internal/logging"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	logger := logging.NewLogger(logging.Config{
		Format: logging.JSONFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})

	db, err := Open(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestOpen(t *testing.T) {
	db := setupTestDB(t)

	if _, err := os.Stat(db.Path()); err != nil {
		t.Errorf("database file not created: %v", err)
	}
	if filepath.Base(db.Path()) != "mixmaster.db" {
		t.Errorf("Path() = %q, want mixmaster.db file", db.Path())
	}
}

func TestOpen_CreatesStateDir(t *testing.T) {
	logger := logging.NewLogger(logging.Config{
		Format: logging.JSONFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})

	stateDir := filepath.Join(t.TempDir(), "nested", "state")
	db, err := Open(stateDir, logger)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(stateDir); err != nil {
		t.Errorf("state directory not created: %v", err)
	}
}

func TestOpen_Reopen(t *testing.T) {
	logger := logging.NewLogger(logging.Config{
		Format: logging.JSONFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})
	stateDir := t.TempDir()

	db, err := Open(stateDir, logger)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}

	favorites := NewFavoriteRepository(db)
	if _, err := favorites.Add("Negroni"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopening an existing database runs the migration path.
	db, err = Open(stateDir, logger)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer db.Close()

	version, err := db.getSchemaVersion()
	if err != nil {
		t.Fatalf("getSchemaVersion() error = %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, currentSchemaVersion)
	}

	count, err := NewFavoriteRepository(db).Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("favorites did not survive reopen: count = %d, want 1", count)
	}
}

func TestFavorites_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)

	for _, name := range []string{"Whiskey Sour", "daiquiri", "Margarita"} {
		added, err := repo.Add(name)
		if err != nil {
			t.Fatalf("Add(%q) error = %v", name, err)
		}
		if !added {
			t.Errorf("Add(%q) = false, want true", name)
		}
	}

	favorites, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"daiquiri", "Margarita", "Whiskey Sour"}
	if len(favorites) != len(want) {
		t.Fatalf("List() returned %d favorites, want %d", len(favorites), len(want))
	}
	for i, fav := range favorites {
		if fav.Name != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, fav.Name, want[i])
		}
		if fav.CreatedAt.IsZero() {
			t.Errorf("List()[%d] has zero CreatedAt", i)
		}
	}
}

func TestFavorites_DuplicateAddIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)

	added, err := repo.Add("Daiquiri")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !added {
		t.Error("first Add() = false, want true")
	}

	added, err = repo.Add("Daiquiri")
	if err != nil {
		t.Fatalf("second Add() error = %v", err)
	}
	if added {
		t.Error("second Add() = true, want false")
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}
}

func TestFavorites_Remove(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)

	if _, err := repo.Add("Mojito"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	removed, err := repo.Remove("Mojito")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if !removed {
		t.Error("Remove() = false, want true")
	}

	removed, err = repo.Remove("Mojito")
	if err != nil {
		t.Fatalf("second Remove() error = %v", err)
	}
	if removed {
		t.Error("Remove() on missing row = true, want false")
	}
}

func TestFavorites_IsFavorite(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFavoriteRepository(db)

	if _, err := repo.Add("Old Fashioned"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"Old Fashioned", true},
		{"old fashioned", false}, // favorites are stored verbatim
		{"Zombie", false},
	}

	for _, tt := range tests {
		got, err := repo.IsFavorite(tt.name)
		if err != nil {
			t.Fatalf("IsFavorite(%q) error = %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("IsFavorite(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestExportHistory_RecordAndRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExportHistoryRepository(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, recipe := range []string{"Daiquiri", "Negroni", "Margarita"} {
		err := repo.Record(&ExportRecord{
			Recipe:    recipe,
			Path:      fmt.Sprintf("/tmp/cards/%d.png", i),
			Generated: i == 2,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record(%q) error = %v", recipe, err)
		}
	}

	records, err := repo.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Recent(2) returned %d records, want 2", len(records))
	}
	if records[0].Recipe != "Margarita" || records[1].Recipe != "Negroni" {
		t.Errorf("Recent() order = [%s, %s], want [Margarita, Negroni]",
			records[0].Recipe, records[1].Recipe)
	}
	if !records[0].Generated {
		t.Error("Recent()[0].Generated = false, want true")
	}
	if records[1].Generated {
		t.Error("Recent()[1].Generated = true, want false")
	}
}

func TestExportHistory_FillsDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExportHistoryRepository(db)

	record := &ExportRecord{Recipe: "Daiquiri", Path: "/tmp/daiquiri.png"}
	if err := repo.Record(record); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if record.ID == "" {
		t.Error("Record() left ID empty")
	}
	if record.CreatedAt.IsZero() {
		t.Error("Record() left CreatedAt zero")
	}

	records, err := repo.Recent(1)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Recent(1) returned %d records, want 1", len(records))
	}
	if records[0].ID != record.ID {
		t.Errorf("persisted ID = %q, want %q", records[0].ID, record.ID)
	}
}

func TestExportHistory_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExportHistoryRepository(db)

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() on empty table = %d, want 0", count)
	}

	for i := 0; i < 3; i++ {
		err := repo.Record(&ExportRecord{
			Recipe: "Daiquiri",
			Path:   fmt.Sprintf("/tmp/%d.png", i),
		})
		if err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	}

	count, err = repo.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestWithTx_Commit(t *testing.T) {
	db := setupTestDB(t)

	err := db.WithTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			"INSERT INTO favorites (name, created_at) VALUES (?, ?)",
			"Daiquiri", time.Now().UTC().Format(time.RFC3339),
		)
		return err
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}

	count, err := NewFavoriteRepository(db).Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := setupTestDB(t)

	wantErr := fmt.Errorf("boom")
	err := db.WithTx(func(tx *sql.Tx) error {
		_, execErr := tx.Exec(
			"INSERT INTO favorites (name, created_at) VALUES (?, ?)",
			"Daiquiri", time.Now().UTC().Format(time.RFC3339),
		)
		if execErr != nil {
			return execErr
		}
		return wantErr
	})
	if err == nil {
		t.Fatal("WithTx() error = nil, want error")
	}

	count, err := NewFavoriteRepository(db).Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() after rollback = %d, want 0", count)
	}
}
