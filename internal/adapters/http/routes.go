package web

import (
	"net/http"

	"waaranders/internal/adapters/http/middleware"
	"waaranders/internal/domain/account"
)

// registerRoutes wires all application routes on the mux. Auth and role
// requirements are applied per-route; the session itself is attached by the
// Auth middleware in NewMux.
func registerRoutes(mux *http.ServeMux) {
	adminOnly := middleware.RequireRole(account.RoleAdmin)

	// Public
	mux.HandleFunc("/", handleIndex)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/logout", handleLogout)

	// Any logged-in account
	mux.Handle("/dashboard", middleware.RequireAuth(http.HandlerFunc(handleDashboard)))
	mux.Handle("/change-password", middleware.RequireAuth(http.HandlerFunc(handleChangePassword)))
	mux.Handle("/profile", middleware.RequireAuth(http.HandlerFunc(handleProfile)))
	mux.Handle("/todos", middleware.RequireAuth(http.HandlerFunc(handleTodos)))
	mux.Handle("/todos/status", middleware.RequireAuth(http.HandlerFunc(handleTodoStatus)))
	mux.Handle("/activities", middleware.RequireAuth(http.HandlerFunc(handleActivities)))

	// Admin
	mux.Handle("/todos/delete", adminOnly(http.HandlerFunc(handleTodoDelete)))
	mux.Handle("/activities/delete", adminOnly(http.HandlerFunc(handleActivityDelete)))
	mux.Handle("/klanten", adminOnly(http.HandlerFunc(handleKlanten)))
	mux.Handle("/klanten/delete", adminOnly(http.HandlerFunc(handleKlantDelete)))
	mux.Handle("/volunteers", adminOnly(http.HandlerFunc(handleVolunteers)))
	mux.Handle("/volunteers/update", adminOnly(http.HandlerFunc(handleVolunteerUpdate)))
	mux.Handle("/accounts", adminOnly(http.HandlerFunc(handleAccounts)))
	mux.Handle("/admin/perf", adminOnly(http.HandlerFunc(handlePerf)))
}
