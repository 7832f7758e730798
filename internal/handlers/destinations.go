package handlers

import (
	"net/http"
	"strconv"

	"triptrove/internal/destinations"

	"github.com/gin-gonic/gin"
)

func handleListDestinations(c *gin.Context) {
	filter := destinations.Filter{
		Continent: c.Query("continent"),
		Climate:   c.Query("climate"),
		Type:      c.Query("type"),
		Query:     c.Query("q"),
	}
	c.JSON(http.StatusOK, gin.H{"destinations": destinations.Search(filter)})
}

func handleGetDestination(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid destination id"})
		return
	}

	dest, ok := destinations.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		return
	}
	c.JSON(http.StatusOK, dest)
}
