package models

import (
	"time"
)

// Identity is a registered account. The PasswordHash field maps to the
// "password" key of the durable registered-identities record; it always
// holds a bcrypt hash, never the plaintext.
type Identity struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}

// SessionRecord is the durable session-identity record. It carries the
// display subset of an Identity only.
type SessionRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PackingCategory struct {
	ID       string        `json:"id" db:"id"`
	Owner    string        `json:"-" db:"owner"`
	Name     string        `json:"name" db:"name"`
	Position int           `json:"position" db:"position"`
	Items    []PackingItem `json:"items,omitempty"`
}

type PackingItem struct {
	ID         string `json:"id" db:"id"`
	CategoryID string `json:"category_id" db:"category_id"`
	Name       string `json:"name" db:"name"`
	Checked    bool   `json:"checked" db:"checked"`
}

type Expense struct {
	ID          string    `json:"id" db:"id"`
	Owner       string    `json:"-" db:"owner"`
	Amount      float64   `json:"amount" db:"amount"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Date        string    `json:"date" db:"date"`
	Currency    string    `json:"currency" db:"currency"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Photo struct {
	ID        string    `json:"id" db:"id"`
	Owner     string    `json:"-" db:"owner"`
	Title     string    `json:"title" db:"title"`
	Location  string    `json:"location" db:"location"`
	TakenOn   string    `json:"date" db:"taken_on"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	Featured  bool      `json:"featured" db:"featured"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Profile struct {
	Owner            string   `json:"-" db:"owner"`
	Name             string   `json:"name" db:"name"`
	Bio              string   `json:"bio" db:"bio"`
	AvatarURL        string   `json:"avatar_url" db:"avatar_url"`
	Location         string   `json:"location" db:"location"`
	TravelStyles     []string `json:"travel_styles"`
	VisitedCountries []string `json:"visited_countries"`
	BudgetLimit      float64  `json:"budget_limit" db:"budget_limit"`
	Joined           string   `json:"joined" db:"joined"`
}

// DefaultBudgetLimit applies until a profile sets its own.
const DefaultBudgetLimit = 1500

// ExpenseCategories is the fixed set the budget tracker accepts.
var ExpenseCategories = []string{"Accommodation", "Food", "Transportation", "Attractions", "Shopping", "Other"}

func IsExpenseCategory(name string) bool {
	for _, c := range ExpenseCategories {
		if c == name {
			return true
		}
	}
	return false
}
