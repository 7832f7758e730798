package database

import (
	"database/sql"
	"fmt"
	"time"

	"triptrove/internal/models"

	"github.com/google/uuid"
)

// CreatePhoto stores a gallery entry for an owner.
func CreatePhoto(db *sql.DB, photo *models.Photo) error {
	if photo.Title == "" {
		return fmt.Errorf("photo title is required")
	}
	if photo.ImageURL == "" {
		return fmt.Errorf("photo image url is required")
	}

	photo.ID = uuid.New().String()
	photo.CreatedAt = time.Now()

	_, err := db.Exec(
		"INSERT INTO photos (id, owner, title, location, taken_on, image_url, featured, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		photo.ID, photo.Owner, photo.Title, photo.Location, photo.TakenOn, photo.ImageURL, photo.Featured, photo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}
	return nil
}

// GetPhotos returns an owner's gallery, newest first. When featuredOnly is
// set, only featured photos are returned.
func GetPhotos(db *sql.DB, owner string, featuredOnly bool) ([]models.Photo, error) {
	query := "SELECT id, owner, title, location, taken_on, image_url, featured, created_at FROM photos WHERE owner = ?"
	args := []interface{}{owner}
	if featuredOnly {
		query += " AND featured = TRUE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.Owner, &p.Title, &p.Location, &p.TakenOn, &p.ImageURL, &p.Featured, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, nil
}

// ToggleFeatured flips a photo's featured flag and returns the new value.
func ToggleFeatured(db *sql.DB, owner, photoID string) (bool, error) {
	result, err := db.Exec(
		"UPDATE photos SET featured = NOT featured WHERE id = ? AND owner = ?",
		photoID, owner,
	)
	if err != nil {
		return false, fmt.Errorf("failed to toggle featured: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to toggle featured: %w", err)
	}
	if affected == 0 {
		return false, fmt.Errorf("photo not found")
	}

	var featured bool
	if err := db.QueryRow("SELECT featured FROM photos WHERE id = ?", photoID).Scan(&featured); err != nil {
		return false, fmt.Errorf("failed to read photo: %w", err)
	}
	return featured, nil
}

// DeletePhoto removes a photo. Unknown ids are a no-op.
func DeletePhoto(db *sql.DB, owner, photoID string) error {
	if _, err := db.Exec("DELETE FROM photos WHERE id = ? AND owner = ?", photoID, owner); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}
