package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/csrf"

	"waaranders/internal/adapters/http/middleware"
	"waaranders/internal/application/orchestrators"
	"waaranders/internal/application/ordering"
	"waaranders/internal/application/projections"
)

const dueDateLayout = "2006-01-02"

// handleTodos handles GET (list) and POST (create/update) for /todos.
// The list supports a secondary-sort toggle via the mode query parameter.
func handleTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		mode := ordering.ParseMode(r.URL.Query().Get("mode"))
		openOnly := r.URL.Query().Get("open") == "1"

		result, err := projections.QueryGetTodoList(ctx, projections.GetTodoListQuery{
			Mode:     mode,
			OpenOnly: openOnly,
		}, projections.GetTodoListDeps{
			TodoStore:      stores.TodoStore,
			VolunteerStore: stores.VolunteerStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			vols, err := stores.VolunteerStore.ListActive(ctx)
			if err != nil {
				internalError(w, err)
				return
			}
			renderTemplate(w, r, "todos.html", map[string]any{
				"Todos":      result.Todos,
				"Mode":       string(result.Mode),
				"OpenOnly":   openOnly,
				"Volunteers": vols,
				"CSRFToken":  csrf.Token(r),
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"todos": result.Todos,
			"mode":  string(result.Mode),
		})
		return
	}

	if r.Method == "POST" {
		if !middleware.IsAdmin(ctx) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		input, err := todoInputFromRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		session, _ := middleware.GetSessionFromContext(ctx)
		if input.ID == "" {
			input.CreatedBy = session.AccountID
		}

		id, err := orchestrators.ExecuteSaveTodo(ctx, input, orchestrators.SaveTodoDeps{
			TodoStore:      stores.TodoStore,
			VolunteerStore: stores.VolunteerStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/todos", http.StatusSeeOther)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": id})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// todoInputFromRequest builds a SaveTodoInput from either a form or JSON body.
func todoInputFromRequest(r *http.Request) (orchestrators.SaveTodoInput, error) {
	var input orchestrators.SaveTodoInput

	if isJSONRequest(r) {
		var body struct {
			ID         string `json:"id"`
			Text       string `json:"text"`
			DueDate    string `json:"due_date"`
			Priority   string `json:"priority"`
			AssigneeID string `json:"assignee_id"`
		}
		if err := strictDecode(r, &body); err != nil {
			return input, err
		}
		input = orchestrators.SaveTodoInput{
			ID:         body.ID,
			Text:       body.Text,
			Priority:   body.Priority,
			AssigneeID: body.AssigneeID,
		}
		return withParsedDueDate(input, body.DueDate)
	}

	if err := r.ParseForm(); err != nil {
		return input, err
	}
	input = orchestrators.SaveTodoInput{
		ID:         r.FormValue("ID"),
		Text:       r.FormValue("Text"),
		Priority:   r.FormValue("Priority"),
		AssigneeID: r.FormValue("AssigneeID"),
	}
	return withParsedDueDate(input, r.FormValue("DueDate"))
}

func withParsedDueDate(input orchestrators.SaveTodoInput, raw string) (orchestrators.SaveTodoInput, error) {
	if raw == "" {
		return input, nil
	}
	d, err := time.Parse(dueDateLayout, raw)
	if err != nil {
		return input, err
	}
	input.DueDate = d
	return input, nil
}

// handleTodoStatus handles POST /todos/status.
func handleTodoStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var id, status string
	if isJSONRequest(r) {
		var body struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id, status = body.ID, body.Status
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Form error", http.StatusBadRequest)
			return
		}
		id, status = r.FormValue("ID"), r.FormValue("Status")
	}

	err := orchestrators.ExecuteUpdateTodoStatus(r.Context(), orchestrators.UpdateTodoStatusInput{
		ID:        id,
		NewStatus: status,
	}, orchestrators.SaveTodoDeps{
		TodoStore:      stores.TodoStore,
		VolunteerStore: stores.VolunteerStore,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/todos", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTodoDelete handles POST /todos/delete (admin only).
func handleTodoDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Form error", http.StatusBadRequest)
		return
	}

	err := orchestrators.ExecuteDeleteTodo(r.Context(), r.FormValue("ID"), orchestrators.SaveTodoDeps{
		TodoStore:      stores.TodoStore,
		VolunteerStore: stores.VolunteerStore,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/todos", http.StatusSeeOther)
}

func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}
