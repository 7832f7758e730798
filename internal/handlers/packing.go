package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"triptrove/internal/database"
	"triptrove/internal/logger"

	"github.com/gin-gonic/gin"
)

func handlePackingList(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	who := owner(c)

	if err := database.SeedPackingDefaults(db, who); err != nil {
		logger.Error("Failed to seed packing defaults", "email", who, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load packing list"})
		return
	}

	categories, err := database.GetPackingList(db, who)
	if err != nil {
		logger.Error("Failed to load packing list", "email", who, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load packing list"})
		return
	}

	type categoryView struct {
		ID       string      `json:"id"`
		Name     string      `json:"name"`
		Position int         `json:"position"`
		Items    interface{} `json:"items"`
		Progress int         `json:"progress"`
	}
	views := make([]categoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, categoryView{
			ID:       cat.ID,
			Name:     cat.Name,
			Position: cat.Position,
			Items:    cat.Items,
			Progress: database.CategoryProgress(cat),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": views,
		"progress":   database.OverallProgress(categories),
	})
}

func handleCreatePackingCategory(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	cat, err := database.CreatePackingCategory(db, owner(c), req.Name)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			c.JSON(http.StatusConflict, gin.H{"error": "A category with that name already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func handleCreatePackingItem(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item name is required"})
		return
	}

	item, err := database.CreatePackingItem(db, owner(c), c.Param("id"), req.Name)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func handleTogglePackingItem(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	checked, err := database.TogglePackingItem(db, owner(c), c.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checked": checked})
}

func handleDeletePackingItem(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	if err := database.DeletePackingItem(db, owner(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted"})
}
