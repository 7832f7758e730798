package database

import (
	"database/sql"
	"testing"

	"triptrove/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatal("Failed to open test database:", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatal("Failed to run migrations:", err)
	}

	return db
}

func TestStateStoreRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	store := NewStateStore(db)

	_, ok, err := store.Get("missing")
	if err != nil {
		t.Fatal("Failed to read missing key:", err)
	}
	if ok {
		t.Error("Expected missing key to report absent")
	}

	if err := store.Put("greeting", []byte(`{"hello":"world"}`)); err != nil {
		t.Fatal("Failed to put value:", err)
	}

	raw, ok, err := store.Get("greeting")
	if err != nil {
		t.Fatal("Failed to get value:", err)
	}
	if !ok {
		t.Fatal("Expected key to exist")
	}
	if string(raw) != `{"hello":"world"}` {
		t.Errorf("Unexpected value: %s", raw)
	}

	// Overwrite via upsert.
	if err := store.Put("greeting", []byte(`{"hello":"again"}`)); err != nil {
		t.Fatal("Failed to overwrite value:", err)
	}
	raw, _, _ = store.Get("greeting")
	if string(raw) != `{"hello":"again"}` {
		t.Errorf("Expected overwritten value, got %s", raw)
	}

	if err := store.Delete("greeting"); err != nil {
		t.Fatal("Failed to delete value:", err)
	}
	_, ok, _ = store.Get("greeting")
	if ok {
		t.Error("Expected key to be gone after delete")
	}

	// Deleting again is a no-op.
	if err := store.Delete("greeting"); err != nil {
		t.Error("Expected repeated delete to succeed:", err)
	}
}

func TestPackingDefaultsSeededOnce(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	owner := "alice@example.com"
	if err := SeedPackingDefaults(db, owner); err != nil {
		t.Fatal("Failed to seed packing defaults:", err)
	}
	if err := SeedPackingDefaults(db, owner); err != nil {
		t.Fatal("Failed second seed call:", err)
	}

	categories, err := GetPackingList(db, owner)
	if err != nil {
		t.Fatal("Failed to load packing list:", err)
	}

	if len(categories) != 4 {
		t.Fatalf("Expected 4 starter categories, got %d", len(categories))
	}
	if categories[0].Name != "Essentials" {
		t.Errorf("Expected Essentials first, got %s", categories[0].Name)
	}
	if len(categories[0].Items) != 5 {
		t.Errorf("Expected 5 essentials, got %d", len(categories[0].Items))
	}

	// Seeding is per owner.
	other, err := GetPackingList(db, "bob@example.com")
	if err != nil {
		t.Fatal("Failed to load other owner's list:", err)
	}
	if len(other) != 0 {
		t.Errorf("Expected empty list for unseeded owner, got %d categories", len(other))
	}
}

func TestPackingItemLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	owner := "alice@example.com"
	cat, err := CreatePackingCategory(db, owner, "Beach Gear")
	if err != nil {
		t.Fatal("Failed to create category:", err)
	}

	item, err := CreatePackingItem(db, owner, cat.ID, "Sunscreen")
	if err != nil {
		t.Fatal("Failed to create item:", err)
	}
	if item.Checked {
		t.Error("New items must start unchecked")
	}

	checked, err := TogglePackingItem(db, owner, item.ID)
	if err != nil {
		t.Fatal("Failed to toggle item:", err)
	}
	if !checked {
		t.Error("Expected item checked after first toggle")
	}

	checked, err = TogglePackingItem(db, owner, item.ID)
	if err != nil {
		t.Fatal("Failed to toggle item back:", err)
	}
	if checked {
		t.Error("Expected item unchecked after second toggle")
	}

	// Another owner cannot touch the item.
	if _, err := TogglePackingItem(db, "mallory@example.com", item.ID); err == nil {
		t.Error("Expected toggle by non-owner to fail")
	}

	if err := DeletePackingItem(db, owner, item.ID); err != nil {
		t.Fatal("Failed to delete item:", err)
	}
	categories, _ := GetPackingList(db, owner)
	if len(categories[0].Items) != 0 {
		t.Error("Expected item gone after delete")
	}
}

func TestPackingProgress(t *testing.T) {
	cat := models.PackingCategory{
		Items: []models.PackingItem{
			{Checked: true},
			{Checked: true},
			{Checked: false},
		},
	}
	if got := CategoryProgress(cat); got != 67 {
		t.Errorf("Expected 67%%, got %d%%", got)
	}

	empty := models.PackingCategory{}
	if got := CategoryProgress(empty); got != 0 {
		t.Errorf("Expected 0%% for empty category, got %d%%", got)
	}

	if got := OverallProgress([]models.PackingCategory{cat, empty}); got != 67 {
		t.Errorf("Expected 67%% overall, got %d%%", got)
	}
}

func TestExpenseLifecycleAndSummary(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	owner := "alice@example.com"
	expenses := []models.Expense{
		{Owner: owner, Amount: 300, Description: "Hotel", Category: "Accommodation", Date: "2025-09-10"},
		{Owner: owner, Amount: 45.50, Description: "Dinner", Category: "Food", Date: "2025-09-10"},
		{Owner: owner, Amount: 60, Description: "Museum tickets", Category: "Attractions", Date: "2025-09-11"},
	}
	for i := range expenses {
		if err := CreateExpense(db, &expenses[i]); err != nil {
			t.Fatal("Failed to create expense:", err)
		}
	}

	bad := models.Expense{Owner: owner, Amount: 10, Description: "Snacks", Category: "Bribes", Date: "2025-09-10"}
	if err := CreateExpense(db, &bad); err == nil {
		t.Error("Expected unknown category to be rejected")
	}
	negative := models.Expense{Owner: owner, Amount: -5, Description: "Refund", Category: "Other", Date: "2025-09-10"}
	if err := CreateExpense(db, &negative); err == nil {
		t.Error("Expected non-positive amount to be rejected")
	}

	summary, err := GetBudgetSummary(db, owner)
	if err != nil {
		t.Fatal("Failed to compute summary:", err)
	}
	if summary.Limit != models.DefaultBudgetLimit {
		t.Errorf("Expected default limit %v, got %v", models.DefaultBudgetLimit, summary.Limit)
	}
	if summary.Total != 405.50 {
		t.Errorf("Expected total 405.50, got %v", summary.Total)
	}
	if summary.Remaining != models.DefaultBudgetLimit-405.50 {
		t.Errorf("Unexpected remaining: %v", summary.Remaining)
	}
	if summary.ByCategory["Food"] != 45.50 {
		t.Errorf("Expected 45.50 for Food, got %v", summary.ByCategory["Food"])
	}
	if summary.ByDate["2025-09-10"] != 345.50 {
		t.Errorf("Expected 345.50 on 2025-09-10, got %v", summary.ByDate["2025-09-10"])
	}

	if err := SetBudgetLimit(db, owner, 2000); err != nil {
		t.Fatal("Failed to set budget limit:", err)
	}
	summary, _ = GetBudgetSummary(db, owner)
	if summary.Limit != 2000 {
		t.Errorf("Expected limit 2000, got %v", summary.Limit)
	}

	if err := DeleteExpense(db, owner, expenses[0].ID); err != nil {
		t.Fatal("Failed to delete expense:", err)
	}
	remaining, _ := GetExpenses(db, owner)
	if len(remaining) != 2 {
		t.Errorf("Expected 2 expenses after delete, got %d", len(remaining))
	}

	// Deleting someone else's expense is a no-op.
	if err := DeleteExpense(db, "mallory@example.com", expenses[1].ID); err != nil {
		t.Fatal("Unexpected error:", err)
	}
	remaining, _ = GetExpenses(db, owner)
	if len(remaining) != 2 {
		t.Errorf("Expected foreign delete to be a no-op, got %d expenses", len(remaining))
	}
}

func TestPhotoLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	owner := "alice@example.com"
	photo := models.Photo{
		Owner:    owner,
		Title:    "Sunset over Santorini",
		Location: "Oia, Greece",
		TakenOn:  "2025-09-11",
		ImageURL: "https://example.com/sunset.jpg",
	}
	if err := CreatePhoto(db, &photo); err != nil {
		t.Fatal("Failed to create photo:", err)
	}

	missing := models.Photo{Owner: owner, Title: "No image"}
	if err := CreatePhoto(db, &missing); err == nil {
		t.Error("Expected photo without image url to be rejected")
	}

	featured, err := ToggleFeatured(db, owner, photo.ID)
	if err != nil {
		t.Fatal("Failed to toggle featured:", err)
	}
	if !featured {
		t.Error("Expected photo featured after toggle")
	}

	onlyFeatured, err := GetPhotos(db, owner, true)
	if err != nil {
		t.Fatal("Failed to list featured photos:", err)
	}
	if len(onlyFeatured) != 1 {
		t.Errorf("Expected 1 featured photo, got %d", len(onlyFeatured))
	}

	if err := DeletePhoto(db, owner, photo.ID); err != nil {
		t.Fatal("Failed to delete photo:", err)
	}
	all, _ := GetPhotos(db, owner, false)
	if len(all) != 0 {
		t.Errorf("Expected empty gallery after delete, got %d", len(all))
	}
}

func TestProfileDefaultsAndUpsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	owner := "alice@example.com"
	profile, err := GetProfile(db, owner)
	if err != nil {
		t.Fatal("Failed to read fresh profile:", err)
	}
	if profile.BudgetLimit != models.DefaultBudgetLimit {
		t.Errorf("Expected default budget limit, got %v", profile.BudgetLimit)
	}

	profile.Name = "Alice"
	profile.Bio = "Always planning the next trip"
	profile.TravelStyles = []string{"Adventure", "Foodie"}
	profile.VisitedCountries = []string{"France", "Japan"}
	if err := UpsertProfile(db, profile); err != nil {
		t.Fatal("Failed to upsert profile:", err)
	}

	if err := SetBudgetLimit(db, owner, 3000); err != nil {
		t.Fatal("Failed to set budget limit:", err)
	}

	// A later profile edit must not clobber the budget limit.
	profile.Bio = "Updated bio"
	if err := UpsertProfile(db, profile); err != nil {
		t.Fatal("Failed to update profile:", err)
	}

	saved, err := GetProfile(db, owner)
	if err != nil {
		t.Fatal("Failed to re-read profile:", err)
	}
	if saved.Bio != "Updated bio" {
		t.Errorf("Expected updated bio, got %q", saved.Bio)
	}
	if len(saved.TravelStyles) != 2 || saved.TravelStyles[0] != "Adventure" {
		t.Errorf("Unexpected travel styles: %v", saved.TravelStyles)
	}
	if len(saved.VisitedCountries) != 2 || saved.VisitedCountries[1] != "Japan" {
		t.Errorf("Unexpected visited countries: %v", saved.VisitedCountries)
	}
	if saved.BudgetLimit != 3000 {
		t.Errorf("Expected budget limit 3000 to survive profile edit, got %v", saved.BudgetLimit)
	}
}
