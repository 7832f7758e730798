package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"triptrove/internal/database"
	"triptrove/internal/logger"
	"triptrove/internal/models"

	"github.com/gin-gonic/gin"
)

func handleGetProfile(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	who := owner(c)

	profile, err := database.GetProfile(db, who)
	if err != nil {
		logger.Error("Failed to load profile", "email", who, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	// A fresh profile shows the account name until the user edits it.
	if profile.Name == "" {
		profile.Name = c.MustGet("owner_name").(string)
	}
	c.JSON(http.StatusOK, profile)
}

func handleUpdateProfile(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	profile.Owner = owner(c)
	profile.Name = strings.TrimSpace(profile.Name)

	if err := database.UpsertProfile(db, &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	saved, err := database.GetProfile(db, profile.Owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, saved)
}
