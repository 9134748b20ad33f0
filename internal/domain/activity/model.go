package activity

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Max length constants.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxLocationLength    = 200
)

// Domain errors
var (
	ErrEmptyTitle   = errors.New("activity title cannot be empty")
	ErrMissingDate  = errors.New("activity date is required")
	ErrInvalidTime  = errors.New("activity times must be in HH:MM form")
	ErrEndBeforeBeg = errors.New("activity end time cannot be before start time")
)

// timeOfDayRe matches a 24h "HH:MM" clock time.
var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Activity is a calendar entry for the volunteers: a shift, outing, or
// meeting on a specific date. The date is mandatory, which is what lets the
// calendar view group every activity into a month bucket.
type Activity struct {
	ID          string
	Title       string
	Description string
	Location    string
	Date        time.Time // calendar date, time component ignored
	StartTime   string    // optional "HH:MM"
	EndTime     string    // optional "HH:MM"
	CreatedBy   string    // account ID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the activity's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if len(a.Title) > MaxTitleLength {
		return errors.New("activity title cannot exceed 200 characters")
	}
	if a.Date.IsZero() {
		return ErrMissingDate
	}
	if len(a.Description) > MaxDescriptionLength {
		return errors.New("activity description cannot exceed 2000 characters")
	}
	if len(a.Location) > MaxLocationLength {
		return errors.New("activity location cannot exceed 200 characters")
	}
	if a.StartTime != "" && !timeOfDayRe.MatchString(a.StartTime) {
		return ErrInvalidTime
	}
	if a.EndTime != "" && !timeOfDayRe.MatchString(a.EndTime) {
		return ErrInvalidTime
	}
	// "HH:MM" is fixed-width, so string comparison equals clock order.
	if a.StartTime != "" && a.EndTime != "" && a.EndTime < a.StartTime {
		return ErrEndBeforeBeg
	}
	return nil
}

// OccursOn returns the activity's calendar date, for month grouping.
// INVARIANT: Activity fields are not mutated
func (a Activity) OccursOn() time.Time {
	return a.Date
}

// IsUpcoming returns true if the activity is on or after the given day.
// PRE: now is a valid time
// INVARIANT: Activity fields are not mutated
func (a *Activity) IsUpcoming(now time.Time) bool {
	return a.Date.Format("2006-01-02") >= now.Format("2006-01-02")
}
