package handlers

import (
	"database/sql"
	"net/http"
	"sync"

	"triptrove/internal/config"
	"triptrove/internal/database"
	"triptrove/internal/email"
	"triptrove/internal/logger"
	"triptrove/internal/middleware"
	"triptrove/internal/planner"
	"triptrove/internal/session"

	"github.com/gin-gonic/gin"
)

// Planners hands out one planner model per owner, lazily restored from the
// durable store and written back after every mutation.
type Planners struct {
	store *database.StateStore

	mu   sync.Mutex
	open map[string]*planner.Model
}

func NewPlanners(store *database.StateStore) *Planners {
	return &Planners{
		store: store,
		open:  make(map[string]*planner.Model),
	}
}

func (p *Planners) For(owner string) *planner.Model {
	p.mu.Lock()
	defer p.mu.Unlock()

	if m, ok := p.open[owner]; ok {
		return m
	}

	raw, _, err := p.store.Get("trips:" + owner)
	if err != nil {
		logger.Warn("Failed to read trip snapshot", "email", owner, "error", err)
	}
	m := planner.NewFromSnapshot(raw)
	p.open[owner] = m
	return m
}

func (p *Planners) Save(owner string, m *planner.Model) {
	raw, err := m.Snapshot()
	if err != nil {
		logger.Error("Failed to serialize trips", "email", owner, "error", err)
		return
	}
	if err := p.store.Put("trips:"+owner, raw); err != nil {
		logger.Error("Failed to persist trips", "email", owner, "error", err)
	}
}

func addAppContext(db *sql.DB, mgr *session.Manager, planners *Planners, emailService *email.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Set("session_manager", mgr)
		c.Set("planners", planners)
		c.Set("email_service", emailService)
		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *sql.DB, cfg *config.Config, mgr *session.Manager, emailService *email.Service) {
	planners := NewPlanners(database.NewStateStore(db))

	r.Use(middleware.LogRequests())
	r.Use(middleware.SecurityHeaders(cfg))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(cfg))
	r.Use(addAppContext(db, mgr, planners, emailService))

	r.GET("/health", handleHealth)
	r.POST("/api/signup", middleware.AuthRateLimit(cfg), handleSignup)
	r.POST("/api/login", middleware.AuthRateLimit(cfg), handleLogin)
	r.POST("/api/logout", handleLogout)
	r.GET("/api/me", handleMe)

	api := r.Group("/api")
	api.Use(middleware.AuthRequired(mgr))
	{
		api.GET("/trips", handleListTrips)
		api.POST("/trips", handleCreateTrip)
		api.GET("/trips/:id", handleGetTrip)
		api.DELETE("/trips/:id", handleDeleteTrip)
		api.POST("/trips/:id/select", handleSelectTrip)
		api.POST("/trips/:id/select-date", handleSelectDate)
		api.GET("/trips/:id/days/:date", handleDayActivities)
		api.POST("/trips/:id/days/:date/activities", handleAddActivity)
		api.PUT("/trips/:id/days/:date/activities/:activity_id", handleUpdateActivity)
		api.DELETE("/trips/:id/days/:date/activities/:activity_id", handleDeleteActivity)

		api.GET("/packing", handlePackingList)
		api.POST("/packing/categories", handleCreatePackingCategory)
		api.POST("/packing/categories/:id/items", handleCreatePackingItem)
		api.PUT("/packing/items/:id/toggle", handleTogglePackingItem)
		api.DELETE("/packing/items/:id", handleDeletePackingItem)

		api.GET("/budget", handleBudgetSummary)
		api.PUT("/budget/limit", handleSetBudgetLimit)
		api.GET("/budget/expenses", handleListExpenses)
		api.POST("/budget/expenses", handleCreateExpense)
		api.DELETE("/budget/expenses/:id", handleDeleteExpense)

		api.GET("/currencies", handleListCurrencies)
		api.GET("/currencies/convert", handleConvertCurrency)

		api.GET("/destinations", handleListDestinations)
		api.GET("/destinations/:id", handleGetDestination)

		api.GET("/gallery", handleListPhotos)
		api.POST("/gallery", handleCreatePhoto)
		api.PUT("/gallery/:id/featured", handleToggleFeatured)
		api.DELETE("/gallery/:id", handleDeletePhoto)

		api.GET("/profile", handleGetProfile)
		api.PUT("/profile", handleUpdateProfile)
	}
}

func handleHealth(c *gin.Context) {
	db := c.MustGet("db").(*sql.DB)
	if err := db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func owner(c *gin.Context) string {
	return c.MustGet("owner").(string)
}
