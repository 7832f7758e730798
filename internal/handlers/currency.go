package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"triptrove/internal/currency"

	"github.com/gin-gonic/gin"
)

func handleListCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currencies": currency.All()})
}

func handleConvertCurrency(c *gin.Context) {
	from := strings.ToUpper(c.Query("from"))
	to := strings.ToUpper(c.Query("to"))

	amount, err := strconv.ParseFloat(c.DefaultQuery("amount", "1"), 64)
	if err != nil || amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	result, err := currency.Convert(amount, from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rate, _ := currency.UnitRate(from, to)

	c.JSON(http.StatusOK, gin.H{
		"from":   from,
		"to":     to,
		"amount": amount,
		"result": result,
		"rate":   rate,
	})
}
