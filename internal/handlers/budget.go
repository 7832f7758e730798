package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"triptrove/internal/currency"
	"triptrove/internal/database"
	"triptrove/internal/logger"
	"triptrove/internal/models"

	"github.com/gin-gonic/gin"
)

func handleBudgetSummary(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	who := owner(c)

	summary, err := database.GetBudgetSummary(db, who)
	if err != nil {
		logger.Error("Failed to compute budget summary", "email", who, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load budget"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func handleSetBudgetLimit(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	var req struct {
		Limit float64 `json:"limit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := database.SetBudgetLimit(db, owner(c), req.Limit); err != nil {
		if strings.Contains(err.Error(), "must be positive") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Budget limit must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget limit"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"limit": req.Limit})
}

func handleListExpenses(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	expenses, err := database.GetExpenses(db, owner(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load expenses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"expenses":   expenses,
		"categories": models.ExpenseCategories,
	})
}

func handleCreateExpense(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	var exp models.Expense
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	exp.Owner = owner(c)

	if exp.Currency != "" {
		if _, ok := currency.Lookup(exp.Currency); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown currency"})
			return
		}
	}

	if err := database.CreateExpense(db, &exp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, exp)
}

func handleDeleteExpense(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	if err := database.DeleteExpense(db, owner(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
