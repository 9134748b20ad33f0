package web

import (
	"net/http"
	"time"

	"github.com/gorilla/csrf"

	"waaranders/internal/adapters/http/middleware"
	"waaranders/internal/application/orchestrators"
	"waaranders/internal/application/projections"
)

// handleActivities handles GET (calendar) and POST (create/update) for /activities.
func handleActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		query := projections.GetActivityCalendarQuery{}
		q := r.URL.Query()
		if raw := q.Get("from"); raw != "" {
			d, err := time.Parse(dueDateLayout, raw)
			if err != nil {
				http.Error(w, "invalid from date", http.StatusBadRequest)
				return
			}
			query.From = d
		}
		if raw := q.Get("until"); raw != "" {
			d, err := time.Parse(dueDateLayout, raw)
			if err != nil {
				http.Error(w, "invalid until date", http.StatusBadRequest)
				return
			}
			query.Until = d
		}
		// Default: show from the start of the current month
		if query.From.IsZero() && query.Until.IsZero() && q.Get("all") != "1" {
			now := timeNow()
			query.From = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		}

		result, err := projections.QueryGetActivityCalendar(ctx, query, projections.GetActivityCalendarDeps{
			ActivityStore: stores.ActivityStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			renderTemplate(w, r, "calendar.html", map[string]any{
				"Months":    result.Months,
				"CSRFToken": csrf.Token(r),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"months": result.Months})
		return
	}

	if r.Method == "POST" {
		if !middleware.IsAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Form error", http.StatusBadRequest)
			return
		}

		date, err := time.Parse(dueDateLayout, r.FormValue("Date"))
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}

		session, _ := middleware.GetSessionFromContext(ctx)
		input := orchestrators.SaveActivityInput{
			ID:          r.FormValue("ID"),
			Title:       r.FormValue("Title"),
			Description: r.FormValue("Description"),
			Location:    r.FormValue("Location"),
			Date:        date,
			StartTime:   r.FormValue("StartTime"),
			EndTime:     r.FormValue("EndTime"),
			CreatedBy:   session.AccountID,
			Announce:    r.FormValue("Announce") == "1",
		}

		_, err = orchestrators.ExecuteSaveActivity(ctx, input, activityDeps())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Redirect(w, r, "/activities", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleActivityDelete handles POST /activities/delete (admin only).
func handleActivityDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Form error", http.StatusBadRequest)
		return
	}

	if err := orchestrators.ExecuteDeleteActivity(r.Context(), r.FormValue("ID"), activityDeps()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/activities", http.StatusSeeOther)
}

func activityDeps() orchestrators.SaveActivityDeps {
	return orchestrators.SaveActivityDeps{
		ActivityStore: stores.ActivityStore,
		Volunteers:    stores.VolunteerStore,
		EmailSender:   emailSender,
	}
}
