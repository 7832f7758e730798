package database

import (
	"database/sql"
	"fmt"

	"triptrove/internal/models"

	"github.com/google/uuid"
)

// starterCategories is seeded the first time an owner opens their packing
// list, mirroring the default checklist the app ships with.
var starterCategories = []struct {
	name  string
	items []string
}{
	{"Essentials", []string{"Passport", "ID / Driver's license", "Credit/debit cards", "Travel insurance", "Phone + charger"}},
	{"Clothing", []string{"T-shirts", "Pants/jeans", "Underwear", "Socks", "Jacket/coat", "Pajamas"}},
	{"Toiletries", []string{"Toothbrush & toothpaste", "Shampoo & conditioner", "Soap/body wash", "Deodorant", "Medications", "First aid kit"}},
	{"Gadgets", []string{"Camera", "Laptop & charger", "Headphones", "Travel adapter", "Power bank"}},
}

// SeedPackingDefaults creates the starter categories for an owner that has
// none yet. Safe to call on every read.
func SeedPackingDefaults(db *sql.DB, owner string) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM packing_categories WHERE owner = ?", owner).Scan(&count); err != nil {
		return fmt.Errorf("failed to count packing categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for pos, cat := range starterCategories {
		catID := uuid.New().String()
		if _, err := tx.Exec(
			"INSERT INTO packing_categories (id, owner, name, position) VALUES (?, ?, ?, ?)",
			catID, owner, cat.name, pos,
		); err != nil {
			return fmt.Errorf("failed to seed category %s: %w", cat.name, err)
		}
		for _, item := range cat.items {
			if _, err := tx.Exec(
				"INSERT INTO packing_items (id, category_id, name, checked) VALUES (?, ?, ?, FALSE)",
				uuid.New().String(), catID, item,
			); err != nil {
				return fmt.Errorf("failed to seed item %s: %w", item, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit packing defaults: %w", err)
	}
	return nil
}

// GetPackingList returns an owner's categories with their items.
func GetPackingList(db *sql.DB, owner string) ([]models.PackingCategory, error) {
	rows, err := db.Query(
		"SELECT id, owner, name, position FROM packing_categories WHERE owner = ? ORDER BY position, name",
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query packing categories: %w", err)
	}
	defer rows.Close()

	var categories []models.PackingCategory
	for rows.Next() {
		var cat models.PackingCategory
		if err := rows.Scan(&cat.ID, &cat.Owner, &cat.Name, &cat.Position); err != nil {
			return nil, fmt.Errorf("failed to scan packing category: %w", err)
		}
		categories = append(categories, cat)
	}

	for i := range categories {
		items, err := getPackingItems(db, categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].Items = items
	}

	return categories, nil
}

func getPackingItems(db *sql.DB, categoryID string) ([]models.PackingItem, error) {
	rows, err := db.Query(
		"SELECT id, category_id, name, checked FROM packing_items WHERE category_id = ? ORDER BY created_at, name",
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query packing items: %w", err)
	}
	defer rows.Close()

	var items []models.PackingItem
	for rows.Next() {
		var item models.PackingItem
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Checked); err != nil {
			return nil, fmt.Errorf("failed to scan packing item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// CreatePackingCategory adds a category at the end of the owner's list.
func CreatePackingCategory(db *sql.DB, owner, name string) (*models.PackingCategory, error) {
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	var maxPos sql.NullInt64
	if err := db.QueryRow("SELECT MAX(position) FROM packing_categories WHERE owner = ?", owner).Scan(&maxPos); err != nil {
		return nil, fmt.Errorf("failed to find category position: %w", err)
	}

	cat := &models.PackingCategory{
		ID:       uuid.New().String(),
		Owner:    owner,
		Name:     name,
		Position: int(maxPos.Int64) + 1,
	}
	_, err := db.Exec(
		"INSERT INTO packing_categories (id, owner, name, position) VALUES (?, ?, ?, ?)",
		cat.ID, cat.Owner, cat.Name, cat.Position,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create packing category: %w", err)
	}
	return cat, nil
}

// CreatePackingItem adds an unchecked item to one of the owner's categories.
func CreatePackingItem(db *sql.DB, owner, categoryID, name string) (*models.PackingItem, error) {
	if name == "" {
		return nil, fmt.Errorf("item name is required")
	}

	var exists int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM packing_categories WHERE id = ? AND owner = ?",
		categoryID, owner,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check category ownership: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("category not found")
	}

	item := &models.PackingItem{
		ID:         uuid.New().String(),
		CategoryID: categoryID,
		Name:       name,
	}
	_, err = db.Exec(
		"INSERT INTO packing_items (id, category_id, name, checked) VALUES (?, ?, ?, FALSE)",
		item.ID, item.CategoryID, item.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create packing item: %w", err)
	}
	return item, nil
}

// TogglePackingItem flips an item's checked flag and returns the new value.
func TogglePackingItem(db *sql.DB, owner, itemID string) (bool, error) {
	query := `
		UPDATE packing_items SET checked = NOT checked
		WHERE id = ? AND category_id IN (SELECT id FROM packing_categories WHERE owner = ?)
	`
	result, err := db.Exec(query, itemID, owner)
	if err != nil {
		return false, fmt.Errorf("failed to toggle packing item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to toggle packing item: %w", err)
	}
	if affected == 0 {
		return false, fmt.Errorf("item not found")
	}

	var checked bool
	if err := db.QueryRow("SELECT checked FROM packing_items WHERE id = ?", itemID).Scan(&checked); err != nil {
		return false, fmt.Errorf("failed to read packing item: %w", err)
	}
	return checked, nil
}

// DeletePackingItem removes an item. Unknown ids are a no-op.
func DeletePackingItem(db *sql.DB, owner, itemID string) error {
	query := `
		DELETE FROM packing_items
		WHERE id = ? AND category_id IN (SELECT id FROM packing_categories WHERE owner = ?)
	`
	if _, err := db.Exec(query, itemID, owner); err != nil {
		return fmt.Errorf("failed to delete packing item: %w", err)
	}
	return nil
}

// CategoryProgress is the packed percentage of a single category, computed
// on read and never stored.
func CategoryProgress(cat models.PackingCategory) int {
	if len(cat.Items) == 0 {
		return 0
	}
	checked := 0
	for _, item := range cat.Items {
		if item.Checked {
			checked++
		}
	}
	return int(float64(checked)/float64(len(cat.Items))*100 + 0.5)
}

// OverallProgress is the packed percentage across all categories.
func OverallProgress(categories []models.PackingCategory) int {
	total, checked := 0, 0
	for _, cat := range categories {
		for _, item := range cat.Items {
			total++
			if item.Checked {
				checked++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(float64(checked)/float64(total)*100 + 0.5)
}
