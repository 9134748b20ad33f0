package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"waaranders/internal/adapters/email"
	"waaranders/internal/application/monthgroup"
	"waaranders/internal/domain/activity"
	"waaranders/internal/domain/volunteer"

	"github.com/google/uuid"
)

// ActivityStore defines the interface for activity persistence.
type ActivityStore interface {
	Save(ctx context.Context, a activity.Activity) error
	GetByID(ctx context.Context, id string) (activity.Activity, error)
	Delete(ctx context.Context, id string) error
}

// VolunteerListerForAnnounce lists the volunteers to notify about new activities.
type VolunteerListerForAnnounce interface {
	ListActive(ctx context.Context) ([]volunteer.Volunteer, error)
}

// SaveActivityInput carries input for the orchestrator. An empty ID means create.
type SaveActivityInput struct {
	ID          string
	Title       string
	Description string
	Location    string
	Date        time.Time
	StartTime   string
	EndTime     string
	CreatedBy   string
	Announce    bool // send an announcement email to active volunteers
}

// SaveActivityDeps holds dependencies for SaveActivity.
type SaveActivityDeps struct {
	ActivityStore ActivityStore
	Volunteers    VolunteerListerForAnnounce
	EmailSender   email.Sender
}

// ExecuteSaveActivity creates or updates a calendar activity. On create with
// Announce set, active volunteers get a notification email; announcement
// failures are logged, not returned.
// PRE: Title is non-empty, date is set
// POST: Activity is persisted; returns the activity ID
func ExecuteSaveActivity(ctx context.Context, input SaveActivityInput, deps SaveActivityDeps) (string, error) {
	a := activity.Activity{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		CreatedBy:   input.CreatedBy,
	}

	creating := input.ID == ""
	if creating {
		a.ID = uuid.New().String()
		a.CreatedAt = time.Now()
	} else {
		existing, err := deps.ActivityStore.GetByID(ctx, input.ID)
		if err != nil {
			return "", errors.New("activity not found")
		}
		a.CreatedAt = existing.CreatedAt
		a.CreatedBy = existing.CreatedBy
		a.UpdatedAt = time.Now()
	}

	// Validate domain rules
	if err := a.Validate(); err != nil {
		return "", err
	}

	if err := deps.ActivityStore.Save(ctx, a); err != nil {
		return "", err
	}

	if creating && input.Announce {
		announceActivity(ctx, a, deps)
	}

	return a.ID, nil
}

// announceActivity emails all active volunteers about a new activity.
func announceActivity(ctx context.Context, a activity.Activity, deps SaveActivityDeps) {
	if deps.Volunteers == nil || deps.EmailSender == nil {
		return
	}
	vols, err := deps.Volunteers.ListActive(ctx)
	if err != nil {
		slog.Error("announce_list_failed", "error", err, "activity_id", a.ID)
		return
	}
	if len(vols) == 0 {
		return
	}

	f := monthgroup.Formatter{Locale: monthgroup.DefaultLocale}
	base := email.ActivityAnnouncement(a.Title, f.DayLabel(a.Date), a.Location)

	reqs := make([]email.SendRequest, 0, len(vols))
	for _, v := range vols {
		req := base
		req.To = []string{v.Email}
		reqs = append(reqs, req)
	}
	if _, err := deps.EmailSender.SendBatch(ctx, reqs); err != nil {
		slog.Error("announce_send_failed", "error", err, "activity_id", a.ID, "recipients", len(reqs))
		return
	}
	slog.Info("activity_announced", "activity_id", a.ID, "recipients", len(reqs))
}

// ExecuteDeleteActivity removes an activity from the calendar.
// PRE: ID refers to an existing activity
// POST: Activity is removed from the store
func ExecuteDeleteActivity(ctx context.Context, id string, deps SaveActivityDeps) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}
	if _, err := deps.ActivityStore.GetByID(ctx, id); err != nil {
		return errors.New("activity not found")
	}
	return deps.ActivityStore.Delete(ctx, id)
}
