// Package planner maintains the collection of trips and their day-by-day
// activity schedules. Dates are handled as calendar days ("YYYY-MM-DD"
// bucket keys, inclusive ranges) — never as millisecond offsets, so day
// counts are immune to timezone and DST drift. Derived views (countdown,
// sorted day lists, date ranges) are recomputed on every read and never
// cached.
package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrOutOfRange = errors.New("date outside trip range")
)

type ActivityType string

const (
	TypeAttraction    ActivityType = "attraction"
	TypeFood          ActivityType = "food"
	TypeTransport     ActivityType = "transport"
	TypeAccommodation ActivityType = "accommodation"
	TypeOther         ActivityType = "other"
)

// NormalizeType maps unrecognized values to TypeOther, matching the
// display fallback of the activity badges.
func NormalizeType(s string) ActivityType {
	switch ActivityType(s) {
	case TypeAttraction, TypeFood, TypeTransport, TypeAccommodation, TypeOther:
		return ActivityType(s)
	default:
		return TypeOther
	}
}

type Activity struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Time        string       `json:"time"`
	Location    string       `json:"location,omitempty"`
	Type        ActivityType `json:"type"`
}

// ActivityInput carries the user-editable fields of an Activity.
type ActivityInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Type        string `json:"type"`
}

func (in ActivityInput) validate() error {
	if in.Title == "" {
		return fmt.Errorf("%w: activity title is required", ErrValidation)
	}
	if in.Time == "" {
		return fmt.Errorf("%w: activity time is required", ErrValidation)
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return fmt.Errorf("%w: activity time must be HH:MM", ErrValidation)
	}
	return nil
}

// Trip is a date-ranged travel plan. Activities are bucketed by calendar
// date; every bucket key falls inside [StartDate, EndDate].
type Trip struct {
	ID         string                `json:"id"`
	Title      string                `json:"title"`
	Location   string                `json:"location"`
	StartDate  string                `json:"start_date"`
	EndDate    string                `json:"end_date"`
	Activities map[string][]Activity `json:"activities"`
}

// Contains reports whether date falls inside the trip's inclusive range.
// Lexicographic comparison equals chronological comparison for ISO dates.
func (t *Trip) Contains(date string) bool {
	return date >= t.StartDate && date <= t.EndDate
}

// Dates returns every calendar date of the trip, start to end inclusive.
func (t *Trip) Dates() []string {
	start, err1 := time.Parse(dateLayout, t.StartDate)
	end, err2 := time.Parse(dateLayout, t.EndDate)
	if err1 != nil || err2 != nil {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

// Countdown derives the trip's status relative to today. Pure: it must be
// recomputed for every render since "today" changes.
func Countdown(t *Trip, today time.Time) string {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	start, err1 := time.Parse(dateLayout, t.StartDate)
	end, err2 := time.Parse(dateLayout, t.EndDate)
	if err1 != nil || err2 != nil {
		return ""
	}

	daysUntil := int(start.Sub(day).Hours() / 24)
	switch {
	case daysUntil > 0:
		return fmt.Sprintf("%d days until trip", daysUntil)
	case daysUntil == 0:
		return "Trip starts today"
	case !day.After(end):
		return "Trip in progress"
	default:
		return "Trip completed"
	}
}

// Model owns a collection of trips plus the current selection (one trip, one
// date within it). It is safe for concurrent use and carries no global state:
// callers hold one Model per user.
type Model struct {
	mu           sync.Mutex
	trips        []*Trip
	selectedTrip string
	selectedDate string
}

func NewModel() *Model {
	return &Model{}
}

// NewFromSnapshot rebuilds a model from a Snapshot payload. Malformed data
// yields an empty model, the same leniency the session store gets.
func NewFromSnapshot(raw []byte) *Model {
	m := &Model{}
	if len(raw) == 0 {
		return m
	}

	var trips []*Trip
	if err := json.Unmarshal(raw, &trips); err != nil {
		return m
	}
	for _, t := range trips {
		if t.Activities == nil {
			t.Activities = make(map[string][]Activity)
		}
	}
	m.trips = trips
	if len(trips) > 0 {
		m.selectedTrip = trips[0].ID
		m.selectedDate = trips[0].StartDate
	}
	return m
}

// Snapshot serializes the trip collection for the durable store. Selection
// is ephemeral UI state and is not persisted.
func (m *Model) Snapshot() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return json.Marshal(m.trips)
}

// AddTrip creates a trip, appends it to the collection and selects it with
// the start date as the selected day.
func (m *Model) AddTrip(title, location, startDate, endDate string) (*Trip, error) {
	if title == "" || location == "" {
		return nil, fmt.Errorf("%w: trip title and location are required", ErrValidation)
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date", ErrValidation)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date", ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}

	trip := &Trip{
		ID:         uuid.New().String(),
		Title:      title,
		Location:   location,
		StartDate:  startDate,
		EndDate:    endDate,
		Activities: make(map[string][]Activity),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips = append(m.trips, trip)
	m.selectedTrip = trip.ID
	m.selectedDate = trip.StartDate
	return cloneTrip(trip), nil
}

// DeleteTrip removes the trip and all its activities. Unknown ids are a
// no-op. If the deleted trip was selected, selection falls back to the first
// remaining trip, or clears.
func (m *Model) DeleteTrip(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, t := range m.trips {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	m.trips = append(m.trips[:idx], m.trips[idx+1:]...)

	if m.selectedTrip == id {
		if len(m.trips) > 0 {
			m.selectedTrip = m.trips[0].ID
			m.selectedDate = m.trips[0].StartDate
		} else {
			m.selectedTrip = ""
			m.selectedDate = ""
		}
	}
}

// SelectTrip makes the trip current and moves the selected date to its start.
func (m *Model) SelectTrip(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.find(id)
	if t == nil {
		return fmt.Errorf("%w: trip %s", ErrNotFound, id)
	}
	m.selectedTrip = id
	m.selectedDate = t.StartDate
	return nil
}

// SelectDate changes the selected day within the selected trip. Dates
// outside the trip's range are rejected, not clamped.
func (m *Model) SelectDate(date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.find(m.selectedTrip)
	if t == nil {
		return fmt.Errorf("%w: no trip selected", ErrNotFound)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: invalid date", ErrValidation)
	}
	if !t.Contains(date) {
		return fmt.Errorf("%w: %s not within %s..%s", ErrOutOfRange, date, t.StartDate, t.EndDate)
	}
	m.selectedDate = date
	return nil
}

// Selection returns the selected trip id and date, either may be empty.
func (m *Model) Selection() (tripID, date string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selectedTrip, m.selectedDate
}

// Trips returns a copy of the collection in insertion order.
func (m *Model) Trips() []*Trip {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*Trip, 0, len(m.trips))
	for _, t := range m.trips {
		out = append(out, cloneTrip(t))
	}
	return out
}

// Trip returns a copy of a single trip.
func (m *Model) Trip(id string) (*Trip, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.find(id)
	if t == nil {
		return nil, false
	}
	return cloneTrip(t), true
}

// AddActivity schedules an activity on a specific date of a trip. The date
// must fall inside the trip's range; title and a valid HH:MM time are
// required.
func (m *Model) AddActivity(tripID, date string, in ActivityInput) (*Activity, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.find(tripID)
	if t == nil {
		return nil, fmt.Errorf("%w: trip %s", ErrNotFound, tripID)
	}
	if !t.Contains(date) {
		return nil, fmt.Errorf("%w: %s not within %s..%s", ErrOutOfRange, date, t.StartDate, t.EndDate)
	}

	a := Activity{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Time:        in.Time,
		Location:    in.Location,
		Type:        NormalizeType(in.Type),
	}
	t.Activities[date] = append(t.Activities[date], a)
	return &a, nil
}

// UpdateActivity replaces an activity's fields in place, preserving its id.
// A missing trip, bucket or activity id is a silent no-op — this leniency is
// part of the contract, not an accident.
func (m *Model) UpdateActivity(tripID, date, activityID string, in ActivityInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.find(tripID)
	if t == nil {
		return nil
	}
	bucket := t.Activities[date]
	for i := range bucket {
		if bucket[i].ID == activityID {
			bucket[i] = Activity{
				ID:          activityID,
				Title:       in.Title,
				Description: in.Description,
				Time:        in.Time,
				Location:    in.Location,
				Type:        NormalizeType(in.Type),
			}
			return nil
		}
	}
	return nil
}

// DeleteActivity removes an activity from a date bucket. Idempotent.
func (m *Model) DeleteActivity(tripID, date, activityID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.find(tripID)
	if t == nil {
		return
	}
	bucket := t.Activities[date]
	for i := range bucket {
		if bucket[i].ID == activityID {
			t.Activities[date] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// ActivitiesOn returns the date's activities sorted ascending by time of
// day. Buckets are stored in insertion order; ordering is recomputed here on
// every read. Lexicographic HH:MM comparison equals chronological order.
func (m *Model) ActivitiesOn(tripID, date string) []Activity {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.find(tripID)
	if t == nil {
		return nil
	}

	out := make([]Activity, len(t.Activities[date]))
	copy(out, t.Activities[date])
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

func (m *Model) find(id string) *Trip {
	if id == "" {
		return nil
	}
	for _, t := range m.trips {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func cloneTrip(t *Trip) *Trip {
	c := *t
	c.Activities = make(map[string][]Activity, len(t.Activities))
	for k, v := range t.Activities {
		bucket := make([]Activity, len(v))
		copy(bucket, v)
		c.Activities[k] = bucket
	}
	return &c
}
