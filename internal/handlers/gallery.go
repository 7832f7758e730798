package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"triptrove/internal/database"
	"triptrove/internal/models"

	"github.com/gin-gonic/gin"
)

func handleListPhotos(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	featuredOnly := c.Query("featured") == "true"
	photos, err := database.GetPhotos(db, owner(c), featuredOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load gallery"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

func handleCreatePhoto(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	var photo models.Photo
	if err := c.ShouldBindJSON(&photo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	photo.Owner = owner(c)

	if err := database.CreatePhoto(db, &photo); err != nil {
		if strings.Contains(err.Error(), "required") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add photo"})
		return
	}
	c.JSON(http.StatusCreated, photo)
}

func handleToggleFeatured(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	featured, err := database.ToggleFeatured(db, owner(c), c.Param("id"))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"featured": featured})
}

func handleDeletePhoto(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)

	if err := database.DeletePhoto(db, owner(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted"})
}
