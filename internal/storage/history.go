package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExportRecord represents one card export
type ExportRecord struct {
	ID        string
	Recipe    string
	Path      string
	Generated bool
	CreatedAt time.Time
}

// ExportHistoryRepository provides CRUD operations for the export_history table
type ExportHistoryRepository struct {
	db *DB
}

// NewExportHistoryRepository creates a new export history repository
func NewExportHistoryRepository(db *DB) *ExportHistoryRepository {
	return &ExportHistoryRepository{db: db}
}

// Record stores one export. Missing IDs and timestamps are filled in.
func (r *ExportHistoryRepository) Record(record *ExportRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO export_history (id, recipe, path, generated, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		record.ID,
		record.Recipe,
		record.Path,
		record.Generated,
		record.CreatedAt.Format(time.RFC3339),
	)

	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}

	return nil
}

// Recent returns the newest exports, most recent first
func (r *ExportHistoryRepository) Recent(limit int) ([]*ExportRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(`
		SELECT id, recipe, path, generated, created_at
		FROM export_history
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query export history: %w", err)
	}
	defer rows.Close()

	var records []*ExportRecord
	for rows.Next() {
		var rec ExportRecord
		var createdAt string

		if err := rows.Scan(&rec.ID, &rec.Recipe, &rec.Path, &rec.Generated, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan export record: %w", err)
		}

		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, &rec)
	}

	return records, rows.Err()
}

// Count returns the number of recorded exports
func (r *ExportHistoryRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM export_history").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count export history: %w", err)
	}
	return count, nil
}
