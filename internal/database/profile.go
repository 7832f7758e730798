package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"triptrove/internal/models"
)

// GetProfile reads an owner's profile, materializing defaults when no row
// exists yet.
func GetProfile(db *sql.DB, owner string) (*models.Profile, error) {
	var (
		p         models.Profile
		styles    sql.NullString
		countries sql.NullString
		name      sql.NullString
		bio       sql.NullString
		avatar    sql.NullString
		loc       sql.NullString
		joined    sql.NullString
	)
	err := db.QueryRow(
		"SELECT owner, name, bio, avatar_url, location, travel_styles, visited_countries, budget_limit, joined FROM profiles WHERE owner = ?",
		owner,
	).Scan(&p.Owner, &name, &bio, &avatar, &loc, &styles, &countries, &p.BudgetLimit, &joined)
	if err == sql.ErrNoRows {
		return &models.Profile{
			Owner:       owner,
			BudgetLimit: models.DefaultBudgetLimit,
			Joined:      time.Now().Format("2006-01-02"),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	p.Name = name.String
	p.Bio = bio.String
	p.AvatarURL = avatar.String
	p.Location = loc.String
	p.Joined = joined.String
	if styles.String != "" {
		p.TravelStyles = strings.Split(styles.String, ",")
	}
	if countries.String != "" {
		p.VisitedCountries = strings.Split(countries.String, ",")
	}
	return &p, nil
}

// UpsertProfile creates or replaces an owner's profile. The budget limit is
// left untouched when the row already exists; SetBudgetLimit owns that field.
func UpsertProfile(db *sql.DB, p *models.Profile) error {
	if p.Owner == "" {
		return fmt.Errorf("profile owner is required")
	}
	if p.Joined == "" {
		p.Joined = time.Now().Format("2006-01-02")
	}

	query := `
		INSERT INTO profiles (owner, name, bio, avatar_url, location, travel_styles, visited_countries, joined)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(owner) DO UPDATE SET
			name = excluded.name,
			bio = excluded.bio,
			avatar_url = excluded.avatar_url,
			location = excluded.location,
			travel_styles = excluded.travel_styles,
			visited_countries = excluded.visited_countries,
			updated_at = CURRENT_TIMESTAMP
	`
	_, err := db.Exec(query,
		p.Owner, p.Name, p.Bio, p.AvatarURL, p.Location,
		strings.Join(p.TravelStyles, ","), strings.Join(p.VisitedCountries, ","), p.Joined,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
