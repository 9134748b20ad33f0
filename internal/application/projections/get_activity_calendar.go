package projections

import (
	"context"
	"time"

	"waaranders/internal/adapters/storage/activity"
	"waaranders/internal/application/monthgroup"
	domainActivity "waaranders/internal/domain/activity"
)

// GetActivityCalendarQuery carries query parameters.
type GetActivityCalendarQuery struct {
	From  time.Time // zero means no lower bound
	Until time.Time // zero means no upper bound
}

// ActivityRow is an activity decorated with its localized day label.
type ActivityRow struct {
	Activity domainActivity.Activity
	DayLabel string // e.g. "Zaterdag 15 mrt"
}

// OccursOn implements monthgroup.Dated.
func (r ActivityRow) OccursOn() time.Time { return r.Activity.Date }

// CalendarMonth is one month's worth of activities for display.
type CalendarMonth struct {
	Key        monthgroup.Key
	Title      string // e.g. "Maart 2025"
	Activities []ActivityRow
}

// GetActivityCalendarResult carries the query result.
type GetActivityCalendarResult struct {
	Months []CalendarMonth
}

// formatterForCalendar returns the label formatter all calendar views share.
func formatterForCalendar() monthgroup.Formatter {
	return monthgroup.Formatter{Locale: monthgroup.DefaultLocale}
}

// GetActivityCalendarDeps holds dependencies for GetActivityCalendar.
type GetActivityCalendarDeps struct {
	ActivityStore ActivityStore
}

// QueryGetActivityCalendar retrieves activities grouped per calendar month
// with localized headings.
// PRE: From <= Until when both are set
// POST: Months are in chronological order; every activity in the window
// appears in exactly one month
func QueryGetActivityCalendar(ctx context.Context, query GetActivityCalendarQuery, deps GetActivityCalendarDeps) (GetActivityCalendarResult, error) {
	activities, err := deps.ActivityStore.List(ctx, activity.ListFilter{
		From:  query.From,
		Until: query.Until,
	})
	if err != nil {
		return GetActivityCalendarResult{}, err
	}

	f := formatterForCalendar()

	rows := make([]ActivityRow, 0, len(activities))
	for _, a := range activities {
		// An activity without a date cannot be placed on the calendar
		if a.Date.IsZero() {
			continue
		}
		rows = append(rows, ActivityRow{
			Activity: a,
			DayLabel: f.DayLabel(a.Date),
		})
	}

	groups := monthgroup.ByMonth(rows, f)
	months := make([]CalendarMonth, 0, len(groups))
	for _, g := range groups {
		months = append(months, CalendarMonth{
			Key:        g.Key,
			Title:      g.Title,
			Activities: g.Items,
		})
	}
	return GetActivityCalendarResult{Months: months}, nil
}
