package storage

import (
	"fmt"
	"time"
)

// Favorite represents a bookmarked cocktail
type Favorite struct {
	Name      string
	CreatedAt time.Time
}

// FavoriteRepository provides CRUD operations for the favorites table
type FavoriteRepository struct {
	db *DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add bookmarks a cocktail. Adding an existing favorite is a no-op; the
// return reports whether a new row was written.
func (r *FavoriteRepository) Add(name string) (bool, error) {
	result, err := r.db.Exec(`
		INSERT OR IGNORE INTO favorites (name, created_at) VALUES (?, ?)
	`, name, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	return rows > 0, nil
}

// Remove drops a bookmark. The return reports whether a row existed.
func (r *FavoriteRepository) Remove(name string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM favorites WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}

	return rows > 0, nil
}

// IsFavorite reports whether a cocktail is bookmarked
func (r *FavoriteRepository) IsFavorite(name string) (bool, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM favorites WHERE name = ?", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// List returns all favorites sorted by name
func (r *FavoriteRepository) List() ([]*Favorite, error) {
	rows, err := r.db.Query(`
		SELECT name, created_at FROM favorites
		ORDER BY name COLLATE NOCASE
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []*Favorite
	for rows.Next() {
		var fav Favorite
		var createdAt string

		if err := rows.Scan(&fav.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}

		fav.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		favorites = append(favorites, &fav)
	}

	return favorites, rows.Err()
}

// Count returns the number of favorites
func (r *FavoriteRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM favorites").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}
