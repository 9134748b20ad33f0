package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/csrf"

	"waaranders/internal/adapters/http/middleware"
	"waaranders/internal/application/listutil"
	"waaranders/internal/application/orchestrators"
	"waaranders/internal/application/projections"
)

// handleKlanten handles GET (paged list) and POST (create/update) for /klanten.
// Admin only, enforced by the route.
func handleKlanten(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		params := listutil.Parse(r.URL.Query(), projections.KlantSortColumns())
		result, err := projections.QueryGetKlantList(ctx, projections.GetKlantListQuery{
			Params: params,
			City:   r.URL.Query().Get("city"),
		}, projections.GetKlantListDeps{KlantStore: stores.KlantStore})
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTMLRequest(r) {
			renderTemplate(w, r, "klanten.html", map[string]any{
				"Klanten":        result.Klanten,
				"Page":           result.Page,
				"Params":         params,
				"PerPageOptions": perPageOptions,
				"CSRFToken":      csrf.Token(r),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"klanten": result.Klanten,
			"page":    result.Page,
		})
		return
	}

	if r.Method == "POST" {
		input := orchestrators.SaveKlantInput{}
		if isJSONRequest(r) {
			var body struct {
				ID         string `json:"id"`
				Name       string `json:"name"`
				Address    string `json:"address"`
				PostalCode string `json:"postal_code"`
				City       string `json:"city"`
				Phone      string `json:"phone"`
				Email      string `json:"email"`
				Notes      string `json:"notes"`
			}
			if err := strictDecode(r, &body); err != nil {
				http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
				return
			}
			input = orchestrators.SaveKlantInput{
				ID: body.ID, Name: body.Name, Address: body.Address, PostalCode: body.PostalCode,
				City: body.City, Phone: body.Phone, Email: body.Email, Notes: body.Notes,
			}
		} else {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Form error", http.StatusBadRequest)
				return
			}
			input = orchestrators.SaveKlantInput{
				ID:         r.FormValue("ID"),
				Name:       r.FormValue("Name"),
				Address:    r.FormValue("Address"),
				PostalCode: r.FormValue("PostalCode"),
				City:       r.FormValue("City"),
				Phone:      r.FormValue("Phone"),
				Email:      r.FormValue("Email"),
				Notes:      r.FormValue("Notes"),
			}
		}

		id, err := orchestrators.ExecuteSaveKlant(ctx, input, klantDeps())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if isJSONRequest(r) {
			writeJSON(w, http.StatusOK, map[string]string{"id": id})
			return
		}
		http.Redirect(w, r, "/klanten", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleKlantDelete handles POST /klanten/delete (admin only).
func handleKlantDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Form error", http.StatusBadRequest)
		return
	}
	if err := orchestrators.ExecuteDeleteKlant(r.Context(), r.FormValue("ID"), klantDeps()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/klanten", http.StatusSeeOther)
}

func klantDeps() orchestrators.SaveKlantDeps {
	return orchestrators.SaveKlantDeps{KlantStore: stores.KlantStore}
}

// handleVolunteers handles GET (paged list) and POST (register) for
// /volunteers. Admin only, enforced by the route.
func handleVolunteers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		params := listutil.Parse(r.URL.Query(), projections.VolunteerSortColumns())
		result, err := projections.QueryGetVolunteerList(ctx, projections.GetVolunteerListQuery{
			Params:     params,
			ActiveOnly: r.URL.Query().Get("active") == "1",
		}, projections.GetVolunteerListDeps{VolunteerStore: stores.VolunteerStore})
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTMLRequest(r) {
			renderTemplate(w, r, "volunteers.html", map[string]any{
				"Volunteers":     result.Volunteers,
				"Page":           result.Page,
				"Params":         params,
				"PerPageOptions": perPageOptions,
				"CSRFToken":      csrf.Token(r),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"volunteers": result.Volunteers,
			"page":       result.Page,
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Form error", http.StatusBadRequest)
			return
		}

		id, err := orchestrators.ExecuteRegisterVolunteer(ctx, orchestrators.RegisterVolunteerInput{
			Name:    r.FormValue("Name"),
			Email:   r.FormValue("Email"),
			Phone:   r.FormValue("Phone"),
			Notes:   r.FormValue("Notes"),
			BaseURL: baseURL,
		}, volunteerDeps())
		if err != nil {
			if errors.Is(err, orchestrators.ErrVolunteerEmailExists) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if isJSONRequest(r) {
			writeJSON(w, http.StatusOK, map[string]string{"id": id})
			return
		}
		http.Redirect(w, r, "/volunteers", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleVolunteerUpdate handles POST /volunteers/update (admin only).
func handleVolunteerUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Form error", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteUpdateVolunteer(r.Context(), orchestrators.UpdateVolunteerInput{
		ID:     r.FormValue("ID"),
		Name:   r.FormValue("Name"),
		Email:  r.FormValue("Email"),
		Phone:  r.FormValue("Phone"),
		Notes:  r.FormValue("Notes"),
		Active: r.FormValue("Active") == "1",
	}, volunteerDeps())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/volunteers", http.StatusSeeOther)
}

// handleAccounts handles GET (list) and POST (change role) for /accounts.
// Admin only, enforced by the route.
func handleAccounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		accounts, err := stores.AccountStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTMLRequest(r) {
			renderTemplate(w, r, "accounts.html", map[string]any{
				"Accounts":  accounts,
				"CSRFToken": csrf.Token(r),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"accounts": accounts})
		return
	}

	if r.Method == "POST" {
		session, _ := middleware.GetSessionFromContext(ctx)

		input := orchestrators.ChangeRoleInput{ActorID: session.AccountID}
		if isJSONRequest(r) {
			var body struct {
				AccountID string `json:"account_id"`
				Role      string `json:"role"`
			}
			if err := strictDecode(r, &body); err != nil {
				http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
				return
			}
			input.AccountID = body.AccountID
			input.NewRole = body.Role
		} else {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Form error", http.StatusBadRequest)
				return
			}
			input.AccountID = r.FormValue("AccountID")
			input.NewRole = r.FormValue("Role")
		}

		err := orchestrators.ExecuteChangeRole(ctx, input, orchestrators.ChangeRoleDeps{
			AccountStore: stores.AccountStore,
		})
		if err != nil {
			if errors.Is(err, orchestrators.ErrLastAdmin) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if isJSONRequest(r) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		http.Redirect(w, r, "/accounts", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handlePerf exposes the in-memory request/query timings (admin only).
func handlePerf(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, perfCollector.Snapshot())
}
