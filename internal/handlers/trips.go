package handlers

import (
	"errors"
	"net/http"
	"time"

	"triptrove/internal/logger"
	"triptrove/internal/planner"

	"github.com/gin-gonic/gin"
)

type tripRequest struct {
	Title     string `json:"title"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// tripView decorates a trip with its derived fields. Countdown and the day
// list are computed per request, never stored.
type tripView struct {
	*planner.Trip
	Countdown string   `json:"countdown"`
	Dates     []string `json:"dates"`
}

func viewOf(t *planner.Trip) tripView {
	return tripView{
		Trip:      t,
		Countdown: planner.Countdown(t, time.Now()),
		Dates:     t.Dates(),
	}
}

func plannerFor(c *gin.Context) (*Planners, *planner.Model, string) {
	planners := c.MustGet("planners").(*Planners)
	who := owner(c)
	return planners, planners.For(who), who
}

func plannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, planner.ErrOutOfRange), errors.Is(err, planner.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

func handleListTrips(c *gin.Context) {
	_, model, _ := plannerFor(c)

	trips := model.Trips()
	views := make([]tripView, 0, len(trips))
	for _, t := range trips {
		views = append(views, viewOf(t))
	}

	selectedTrip, selectedDate := model.Selection()
	c.JSON(http.StatusOK, gin.H{
		"trips":         views,
		"selected_trip": selectedTrip,
		"selected_date": selectedDate,
	})
}

func handleCreateTrip(c *gin.Context) {
	planners, model, who := plannerFor(c)

	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	trip, err := model.AddTrip(req.Title, req.Location, req.StartDate, req.EndDate)
	if err != nil {
		plannerError(c, err)
		return
	}

	planners.Save(who, model)
	logger.Info("Trip created", "trip_id", trip.ID, "email", who)
	c.JSON(http.StatusCreated, viewOf(trip))
}

func handleGetTrip(c *gin.Context) {
	_, model, _ := plannerFor(c)

	trip, ok := model.Trip(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}
	c.JSON(http.StatusOK, viewOf(trip))
}

func handleDeleteTrip(c *gin.Context) {
	planners, model, who := plannerFor(c)

	model.DeleteTrip(c.Param("id"))
	planners.Save(who, model)
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}

func handleSelectTrip(c *gin.Context) {
	_, model, _ := plannerFor(c)

	if err := model.SelectTrip(c.Param("id")); err != nil {
		plannerError(c, err)
		return
	}

	tripID, date := model.Selection()
	c.JSON(http.StatusOK, gin.H{"selected_trip": tripID, "selected_date": date})
}

func handleSelectDate(c *gin.Context) {
	_, model, _ := plannerFor(c)

	var req struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := model.SelectTrip(c.Param("id")); err != nil {
		plannerError(c, err)
		return
	}
	if err := model.SelectDate(req.Date); err != nil {
		plannerError(c, err)
		return
	}

	tripID, date := model.Selection()
	c.JSON(http.StatusOK, gin.H{"selected_trip": tripID, "selected_date": date})
}

func handleDayActivities(c *gin.Context) {
	_, model, _ := plannerFor(c)

	tripID := c.Param("id")
	if _, ok := model.Trip(tripID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	activities := model.ActivitiesOn(tripID, c.Param("date"))
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

func handleAddActivity(c *gin.Context) {
	planners, model, who := plannerFor(c)

	var in planner.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	activity, err := model.AddActivity(c.Param("id"), c.Param("date"), in)
	if err != nil {
		plannerError(c, err)
		return
	}

	planners.Save(who, model)
	c.JSON(http.StatusCreated, activity)
}

// handleUpdateActivity mirrors the model's leniency: updating an activity
// that no longer exists reports success without changing anything.
func handleUpdateActivity(c *gin.Context) {
	planners, model, who := plannerFor(c)

	var in planner.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := model.UpdateActivity(c.Param("id"), c.Param("date"), c.Param("activity_id"), in); err != nil {
		plannerError(c, err)
		return
	}

	planners.Save(who, model)
	c.JSON(http.StatusOK, gin.H{"message": "Activity updated"})
}

func handleDeleteActivity(c *gin.Context) {
	planners, model, who := plannerFor(c)

	model.DeleteActivity(c.Param("id"), c.Param("date"), c.Param("activity_id"))
	planners.Save(who, model)
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}
