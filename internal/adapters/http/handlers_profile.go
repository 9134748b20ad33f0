package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/csrf"

	"waaranders/internal/adapters/http/middleware"
	"waaranders/internal/application/orchestrators"
	"waaranders/internal/application/projections"
)

// handleProfile shows the logged-in volunteer's own profile and lets them
// edit their contact details.
func handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	deps := projections.GetVolunteerProfileDeps{
		VolunteerStore: stores.VolunteerStore,
		TodoStore:      stores.TodoStore,
		ActivityStore:  stores.ActivityStore,
	}

	if r.Method == "GET" {
		result, err := projections.QueryGetVolunteerProfile(ctx, projections.GetVolunteerProfileQuery{
			AccountID: session.AccountID,
		}, deps)
		if err != nil {
			if errors.Is(err, projections.ErrVolunteerNotFound) {
				// Admin accounts without a volunteer record land here
				if isHTMLRequest(r) {
					renderTemplate(w, r, "profile.html", map[string]any{
						"NoProfile": true,
					})
					return
				}
				writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
				return
			}
			internalError(w, err)
			return
		}

		if isHTMLRequest(r) {
			renderTemplate(w, r, "profile.html", map[string]any{
				"Volunteer": result.Volunteer,
				"OpenTodos": result.OpenTodos,
				"Upcoming":  result.Upcoming,
				"CSRFToken": csrf.Token(r),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"volunteer":  result.Volunteer,
			"open_todos": result.OpenTodos,
			"upcoming":   result.Upcoming,
		})
		return
	}

	if r.Method == "POST" {
		result, err := projections.QueryGetVolunteerProfile(ctx, projections.GetVolunteerProfileQuery{
			AccountID: session.AccountID,
		}, deps)
		if err != nil {
			internalError(w, err)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, "Form error", http.StatusBadRequest)
			return
		}

		v := result.Volunteer
		err = orchestrators.ExecuteUpdateVolunteer(ctx, orchestrators.UpdateVolunteerInput{
			ID:     v.ID,
			Name:   r.FormValue("Name"),
			Email:  v.Email, // email is account-bound; volunteers may not change it themselves
			Phone:  r.FormValue("Phone"),
			Notes:  r.FormValue("Notes"),
			Active: v.Active,
		}, volunteerDeps())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

func volunteerDeps() orchestrators.RegisterVolunteerDeps {
	return orchestrators.RegisterVolunteerDeps{
		VolunteerStore: stores.VolunteerStore,
		AccountStore:   stores.AccountStore,
		EmailSender:    emailSender,
	}
}
