package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrip(t *testing.T, m *Model) *Trip {
	t.Helper()
	trip, err := m.AddTrip("Paris Getaway", "Paris, France", "2025-09-10", "2025-09-12")
	require.NoError(t, err)
	return trip
}

func TestAddTripValidation(t *testing.T) {
	m := NewModel()

	_, err := m.AddTrip("", "Paris", "2025-09-10", "2025-09-12")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = m.AddTrip("Trip", "", "2025-09-10", "2025-09-12")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = m.AddTrip("Trip", "Paris", "not-a-date", "2025-09-12")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = m.AddTrip("Trip", "Paris", "2025-09-12", "2025-09-10")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddTripSelectsItAtStartDate(t *testing.T) {
	m := NewModel()
	trip := newTestTrip(t, m)

	tripID, date := m.Selection()
	assert.Equal(t, trip.ID, tripID)
	assert.Equal(t, "2025-09-10", date)
}

func TestTripDatesAreInclusive(t *testing.T) {
	m := NewModel()
	trip := newTestTrip(t, m)

	assert.Equal(t, []string{"2025-09-10", "2025-09-11", "2025-09-12"}, trip.Dates())
}

func TestSingleDayTripHasOneDate(t *testing.T) {
	m := NewModel()
	trip, err := m.AddTrip("Day Trip", "Nearby", "2025-09-10", "2025-09-10")
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-09-10"}, trip.Dates())
}

func TestDatesCrossDSTBoundary(t *testing.T) {
	m := NewModel()
	// US DST ends 2025-11-02; a millisecond-based day count would come up short.
	trip, err := m.AddTrip("Autumn Trip", "New York", "2025-11-01", "2025-11-04")
	require.NoError(t, err)

	assert.Len(t, trip.Dates(), 4)
}

func TestCountdownStates(t *testing.T) {
	trip := &Trip{StartDate: "2025-09-10", EndDate: "2025-09-12"}

	tests := []struct {
		today string
		want  string
	}{
		{"2025-09-05", "5 days until trip"},
		{"2025-09-09", "1 days until trip"},
		{"2025-09-10", "Trip starts today"},
		{"2025-09-11", "Trip in progress"},
		{"2025-09-12", "Trip in progress"},
		{"2025-09-13", "Trip completed"},
	}
	for _, tt := range tests {
		today, err := time.Parse("2006-01-02", tt.today)
		require.NoError(t, err)
		assert.Equal(t, tt.want, Countdown(trip, today), "today=%s", tt.today)
	}
}

func TestCountdownIgnoresTimeOfDay(t *testing.T) {
	trip := &Trip{StartDate: "2025-09-10", EndDate: "2025-09-12"}

	lateEvening := time.Date(2025, 9, 9, 23, 45, 0, 0, time.UTC)
	assert.Equal(t, "1 days until trip", Countdown(trip, lateEvening))
}

func TestDeleteTripFallsBackToFirstRemaining(t *testing.T) {
	m := NewModel()
	first := newTestTrip(t, m)
	second, err := m.AddTrip("Tokyo Adventure", "Tokyo, Japan", "2025-10-01", "2025-10-05")
	require.NoError(t, err)

	// second is selected; deleting it falls back to first.
	m.DeleteTrip(second.ID)
	tripID, date := m.Selection()
	assert.Equal(t, first.ID, tripID)
	assert.Equal(t, first.StartDate, date)

	m.DeleteTrip(first.ID)
	tripID, date = m.Selection()
	assert.Empty(t, tripID)
	assert.Empty(t, date)
}

func TestDeleteTripUnknownIDIsNoOp(t *testing.T) {
	m := NewModel()
	newTestTrip(t, m)

	m.DeleteTrip("no-such-trip")
	assert.Len(t, m.Trips(), 1)
}

func TestSelectDateRejectsOutOfRange(t *testing.T) {
	m := NewModel()
	newTestTrip(t, m)

	assert.ErrorIs(t, m.SelectDate("2025-09-09"), ErrOutOfRange)
	assert.ErrorIs(t, m.SelectDate("2025-09-13"), ErrOutOfRange)

	// Rejection leaves the selection untouched.
	_, date := m.Selection()
	assert.Equal(t, "2025-09-10", date)

	require.NoError(t, m.SelectDate("2025-09-12"))
	_, date = m.Selection()
	assert.Equal(t, "2025-09-12", date)
}

func TestAddActivityValidation(t *testing.T) {
	m := NewModel()
	trip := newTestTrip(t, m)

	_, err := m.AddActivity(trip.ID, "2025-09-10", ActivityInput{Time: "10:00"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = m.AddActivity(trip.ID, "2025-09-10", ActivityInput{Title: "Tour"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = m.AddActivity(trip.ID, "2025-09-10", ActivityInput{Title: "Tour", Time: "25:99"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = m.AddActivity(trip.ID, "2025-09-14", ActivityInput{Title: "Tour", Time: "10:00"})
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = m.AddActivity("no-such-trip", "2025-09-10", ActivityInput{Title: "Tour", Time: "10:00"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActivitiesSortedByTimeOnRead(t *testing.T) {
	m := NewModel()
	trip := newTestTrip(t, m)

	for _, at := range []string{"14:00", "09:00", "11:30"} {
		_, err := m.AddActivity(trip.ID, "2025-09-10", ActivityInput{Title: "Stop at " + at, Time: at})
		require.NoError(t, err)
	}

	got := m.ActivitiesOn(trip.ID, "2025-09-10")
	require.Len(t, got, 3)
	assert.Equal(t, "09:00", got[0].Time)
	assert.Equal(t, "11:30", got[1].Time)
	assert.Equal(t, "14:00", got[2].Time)
}

func TestActivityTypeFallsBackToOther(t *testing.T) {
	m := NewModel()
	trip := newTestTrip(t, m)

	a, err := m.AddActivity(trip.ID, "2025-09-10", ActivityInput{Title: "Mystery", Time: "10:00", Type: "parade"})
	require.NoError(t, err)
	assert.Equal(t, TypeOther, a.Type)

	b, err := m.AddActivity(trip.ID, "2025-09-10", ActivityInput{Title: "Dinner", Time: "19:00", Type: "food"})
	require.NoError(t, err)
	assert.Equal(t, TypeFood, b.Type)
}

func TestUpdateActivityPreservesID(t *testing.T) {
	m := NewModel()
	trip := newTestTrip(t, m)

	a, err := m.AddActivity(trip.ID, "2025-09-10", ActivityInput{Title: "Tour", Time: "10:00"})
	require.NoError(t, err)

	err = m.UpdateActivity(trip.ID, "2025-09-10", a.ID, ActivityInput{Title: "Museum Tour", Time: "11:00", Location: "Louvre"})
	require.NoError(t, err)

	got := m.ActivitiesOn(trip.ID, "2025-09-10")
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, "Museum Tour", got[0].Title)
	assert.Equal(t, "11:00", got[0].Time)
	assert.Equal(t, "Louvre", got[0].Location)
}

func TestUpdateActivityMissingTargetIsSilentNoOp(t *testing.T) {
	m := NewModel()
	trip := newTestTrip(t, m)

	a, err := m.AddActivity(trip.ID, "2025-09-10", ActivityInput{Title: "Tour", Time: "10:00"})
	require.NoError(t, err)

	assert.NoError(t, m.UpdateActivity("no-such-trip", "2025-09-10", a.ID, ActivityInput{Title: "X", Time: "12:00"}))
	assert.NoError(t, m.UpdateActivity(trip.ID, "2025-09-11", a.ID, ActivityInput{Title: "X", Time: "12:00"}))
	assert.NoError(t, m.UpdateActivity(trip.ID, "2025-09-10", "no-such-activity", ActivityInput{Title: "X", Time: "12:00"}))

	got := m.ActivitiesOn(trip.ID, "2025-09-10")
	require.Len(t, got, 1)
	assert.Equal(t, "Tour", got[0].Title)
}

func TestDeleteActivityIsIdempotent(t *testing.T) {
	m := NewModel()
	trip := newTestTrip(t, m)

	a, err := m.AddActivity(trip.ID, "2025-09-10", ActivityInput{Title: "Tour", Time: "10:00"})
	require.NoError(t, err)

	m.DeleteActivity(trip.ID, "2025-09-10", a.ID)
	assert.Empty(t, m.ActivitiesOn(trip.ID, "2025-09-10"))

	m.DeleteActivity(trip.ID, "2025-09-10", a.ID)
	m.DeleteActivity("no-such-trip", "2025-09-10", a.ID)
	assert.Empty(t, m.ActivitiesOn(trip.ID, "2025-09-10"))
}

func TestSnapshotRoundTrip(t *testing.T) {
	m := NewModel()
	trip := newTestTrip(t, m)
	_, err := m.AddActivity(trip.ID, "2025-09-11", ActivityInput{Title: "Tour", Time: "10:00", Type: "attraction"})
	require.NoError(t, err)

	raw, err := m.Snapshot()
	require.NoError(t, err)

	restored := NewFromSnapshot(raw)
	trips := restored.Trips()
	require.Len(t, trips, 1)
	assert.Equal(t, trip.ID, trips[0].ID)

	got := restored.ActivitiesOn(trip.ID, "2025-09-11")
	require.Len(t, got, 1)
	assert.Equal(t, "Tour", got[0].Title)

	// Restoring selects the first trip.
	tripID, date := restored.Selection()
	assert.Equal(t, trip.ID, tripID)
	assert.Equal(t, trip.StartDate, date)
}

func TestNewFromSnapshotToleratesMalformedData(t *testing.T) {
	m := NewFromSnapshot([]byte("{{{{"))
	assert.Empty(t, m.Trips())

	tripID, date := m.Selection()
	assert.Empty(t, tripID)
	assert.Empty(t, date)
}

func TestTripsReturnsClones(t *testing.T) {
	m := NewModel()
	trip := newTestTrip(t, m)
	_, err := m.AddActivity(trip.ID, "2025-09-10", ActivityInput{Title: "Tour", Time: "10:00"})
	require.NoError(t, err)

	clone, ok := m.Trip(trip.ID)
	require.True(t, ok)
	clone.Activities["2025-09-10"][0].Title = "Tampered"

	got := m.ActivitiesOn(trip.ID, "2025-09-10")
	assert.Equal(t, "Tour", got[0].Title)
}
