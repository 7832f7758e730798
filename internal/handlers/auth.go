package handlers

import (
	"net/http"
	"regexp"
	"strings"

	emailService "triptrove/internal/email"
	"triptrove/internal/logger"
	"triptrove/internal/session"

	"github.com/gin-gonic/gin"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func handleSignup(c *gin.Context) {
	mgr := c.MustGet("session_manager").(*session.Manager)

	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	errors := make(map[string]string)
	if req.Name == "" {
		errors["name"] = "Name is required"
	}
	if !emailRegex.MatchString(req.Email) {
		errors["email"] = "Please enter a valid email address"
	}
	if len(req.Password) < 6 {
		errors["password"] = "Password must be at least 6 characters"
	}
	if len(errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errors})
		return
	}

	if !mgr.Signup(req.Name, req.Email, req.Password) {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with that email already exists"})
		return
	}

	logger.Info("Account created", "email", req.Email)

	emailSvc, _ := c.Get("email_service")
	if service, ok := emailSvc.(*emailService.Service); ok && service.IsEnabled() {
		go func(name, address string) {
			if err := service.SendWelcomeEmail(name, address); err != nil {
				logger.Warn("Failed to send welcome email", "email", address, "error", err)
			}
		}(req.Name, req.Email)
	}

	c.JSON(http.StatusCreated, gin.H{"name": req.Name, "email": req.Email})
}

func handleLogin(c *gin.Context) {
	mgr := c.MustGet("session_manager").(*session.Manager)

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if !mgr.Login(req.Email, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	rec, _ := mgr.Current()
	logger.Info("Signed in", "email", rec.Email)
	c.JSON(http.StatusOK, gin.H{"name": rec.Name, "email": rec.Email})
}

// handleLogout always succeeds, signed in or not.
func handleLogout(c *gin.Context) {
	mgr := c.MustGet("session_manager").(*session.Manager)
	mgr.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func handleMe(c *gin.Context) {
	mgr := c.MustGet("session_manager").(*session.Manager)
	rec, ok := mgr.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": rec.Name, "email": rec.Email})
}
