package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	_ "modernc.org/sqlite"

	emailPkg "waaranders/internal/adapters/email"
	web "waaranders/internal/adapters/http"
	"waaranders/internal/adapters/http/perf"
	"waaranders/internal/adapters/storage"
	accountStore "waaranders/internal/adapters/storage/account"
	activityStore "waaranders/internal/adapters/storage/activity"
	klantStore "waaranders/internal/adapters/storage/klant"
	todoStore "waaranders/internal/adapters/storage/todo"
	volunteerStore "waaranders/internal/adapters/storage/volunteer"
	"waaranders/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// WAL mode, foreign keys and a busy timeout keep concurrent web
	// requests from tripping over each other on SQLite
	dbPath := envOrDefault("WAARANDERS_DB", "waaranders.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	acctStore := accountStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		AccountStore:   acctStore,
		VolunteerStore: volunteerStore.NewSQLiteStore(timedDB),
		KlantStore:     klantStore.NewSQLiteStore(timedDB),
		TodoStore:      todoStore.NewSQLiteStore(timedDB),
		ActivityStore:  activityStore.NewSQLiteStore(timedDB),
	}

	// Seed the default admin account when the database is empty
	adminEmail := envOrDefault("WAARANDERS_ADMIN_EMAIL", "beheer@waaranders.nl")
	adminPassword := envOrDefault("WAARANDERS_ADMIN_PASSWORD", "verander-mij-direct")
	seedDeps := orchestrators.CreateAccountDeps{AccountStore: acctStore}
	if err := orchestrators.ExecuteSeedAdmin(context.Background(), seedDeps, adminEmail, adminPassword); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	// Configure email sender
	baseURL := envOrDefault("WAARANDERS_BASE_URL", "http://localhost:8080")
	resendKey := os.Getenv("WAARANDERS_RESEND_API_KEY")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailPkg.DefaultFrom), baseURL)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), baseURL)
		if os.Getenv("WAARANDERS_ENV") == "production" {
			log.Println("WARNING: WAARANDERS_RESEND_API_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set WAARANDERS_RESEND_API_KEY for real delivery)")
		}
	}

	mux := web.NewMux("static", stores, collector)

	addr := envOrDefault("WAARANDERS_ADDR", ":8080")
	log.Printf("Waaranders %s starting on %s (env=%s)", version, addr, envOrDefault("WAARANDERS_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
