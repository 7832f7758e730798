package database

import (
	"database/sql"
	"fmt"
	"time"

	"triptrove/internal/models"

	"github.com/google/uuid"
)

// CreateExpense records a spend for an owner. Date is "YYYY-MM-DD".
func CreateExpense(db *sql.DB, exp *models.Expense) error {
	if exp.Description == "" {
		return fmt.Errorf("expense description is required")
	}
	if exp.Amount <= 0 {
		return fmt.Errorf("expense amount must be positive")
	}
	if !models.IsExpenseCategory(exp.Category) {
		return fmt.Errorf("unknown expense category %q", exp.Category)
	}
	if _, err := time.Parse("2006-01-02", exp.Date); err != nil {
		return fmt.Errorf("invalid expense date: %w", err)
	}

	exp.ID = uuid.New().String()
	if exp.Currency == "" {
		exp.Currency = "USD"
	}
	exp.CreatedAt = time.Now()

	_, err := db.Exec(
		"INSERT INTO expenses (id, owner, amount, description, category, date, currency, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		exp.ID, exp.Owner, exp.Amount, exp.Description, exp.Category, exp.Date, exp.Currency, exp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetExpenses returns an owner's expenses, most recent date first.
func GetExpenses(db *sql.DB, owner string) ([]models.Expense, error) {
	rows, err := db.Query(
		"SELECT id, owner, amount, description, category, date, currency, created_at FROM expenses WHERE owner = ? ORDER BY date DESC, created_at DESC",
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(&exp.ID, &exp.Owner, &exp.Amount, &exp.Description, &exp.Category, &exp.Date, &exp.Currency, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	return expenses, nil
}

// DeleteExpense removes one expense. Unknown ids are a no-op.
func DeleteExpense(db *sql.DB, owner, id string) error {
	if _, err := db.Exec("DELETE FROM expenses WHERE id = ? AND owner = ?", id, owner); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// BudgetSummary aggregates an owner's spending against their budget limit.
// Everything here is derived on read; nothing is stored.
type BudgetSummary struct {
	Limit      float64            `json:"limit"`
	Total      float64            `json:"total"`
	Remaining  float64            `json:"remaining"`
	Percentage float64            `json:"percentage"`
	ByCategory map[string]float64 `json:"by_category"`
	ByDate     map[string]float64 `json:"by_date"`
}

// GetBudgetSummary computes the summary from the owner's expenses and the
// budget limit on their profile.
func GetBudgetSummary(db *sql.DB, owner string) (*BudgetSummary, error) {
	limit, err := GetBudgetLimit(db, owner)
	if err != nil {
		return nil, err
	}

	expenses, err := GetExpenses(db, owner)
	if err != nil {
		return nil, err
	}

	summary := &BudgetSummary{
		Limit:      limit,
		ByCategory: make(map[string]float64),
		ByDate:     make(map[string]float64),
	}
	for _, exp := range expenses {
		summary.Total += exp.Amount
		summary.ByCategory[exp.Category] += exp.Amount
		summary.ByDate[exp.Date] += exp.Amount
	}
	summary.Remaining = limit - summary.Total
	if limit > 0 {
		summary.Percentage = summary.Total / limit * 100
	}
	return summary, nil
}

// GetBudgetLimit reads the owner's budget limit, falling back to the default
// when they have no profile row yet.
func GetBudgetLimit(db *sql.DB, owner string) (float64, error) {
	var limit float64
	err := db.QueryRow("SELECT budget_limit FROM profiles WHERE owner = ?", owner).Scan(&limit)
	if err == sql.ErrNoRows {
		return models.DefaultBudgetLimit, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read budget limit: %w", err)
	}
	return limit, nil
}

// SetBudgetLimit stores a new budget limit on the owner's profile, creating
// the profile row if needed.
func SetBudgetLimit(db *sql.DB, owner string, limit float64) error {
	if limit <= 0 {
		return fmt.Errorf("budget limit must be positive")
	}
	query := `
		INSERT INTO profiles (owner, budget_limit) VALUES (?, ?)
		ON CONFLICT(owner) DO UPDATE SET budget_limit = excluded.budget_limit, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := db.Exec(query, owner, limit); err != nil {
		return fmt.Errorf("failed to set budget limit: %w", err)
	}
	return nil
}
