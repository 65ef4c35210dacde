// Package web is the administration UI: server-rendered pages over the
// remote customer and training collections. It owns no business data —
// every page is built from a fresh fetch against the REST service.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"personaltrainer/internal/adapters/http/middleware"
	"personaltrainer/internal/application/orchestrators"
	"personaltrainer/internal/application/projections"
	"personaltrainer/internal/config"
)

// Service is the remote-service surface the UI needs: collection reads,
// cross-reference resolution and mutations. *rest.Client satisfies it.
type Service interface {
	projections.CustomerSource
	projections.TrainingSource
	projections.NameResolver
	orchestrators.CustomerWriter
	orchestrators.TrainingWriter
}

// Global service instance (set by NewMux)
var service Service

// Global template directory (set by NewMux)
var templateDir string

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// loadCSRFKey reads the CSRF secret from the config (hex-encoded, 32
// bytes). In production the key MUST be set; in development a random
// key is generated per startup.
func loadCSRFKey(cfg config.Server) []byte {
	if cfg.CSRFKey != "" {
		key, err := hex.DecodeString(cfg.CSRFKey)
		if err != nil || len(key) != 32 {
			log.Fatal("TRAINER_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if cfg.Environment == "production" {
		log.Fatal("TRAINER_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (forms won't survive restart). Set TRAINER_CSRF_KEY for production.")
	return key
}

// NewMux wires HTTP handlers for the app.
func NewMux(cfg config.Server, svc Service) http.Handler {
	service = svc
	templateDir = cfg.TemplateDir

	mux := http.NewServeMux()
	registerRoutes(mux)

	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(loadCSRFKey(cfg), cfg.Environment == "production"),
		middleware.RateLimit(limiter),
	)
}

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", handleHome)

	mux.HandleFunc("GET /customers", handleCustomerList)
	mux.HandleFunc("GET /customers/export", handleCustomersExport)
	mux.HandleFunc("GET /customers/new", handleCustomerNew)
	mux.HandleFunc("POST /customers", handleCustomerCreate)
	mux.HandleFunc("GET /customers/edit", handleCustomerEdit)
	mux.HandleFunc("POST /customers/edit", handleCustomerUpdate)
	mux.HandleFunc("GET /customers/delete", handleCustomerDeleteConfirm)
	mux.HandleFunc("POST /customers/delete", handleCustomerDelete)

	mux.HandleFunc("GET /trainings", handleTrainingList)
	mux.HandleFunc("GET /trainings/export", handleTrainingsExport)
	mux.HandleFunc("GET /trainings/new", handleTrainingNew)
	mux.HandleFunc("POST /trainings", handleTrainingCreate)
	mux.HandleFunc("GET /trainings/delete", handleTrainingDeleteConfirm)
	mux.HandleFunc("POST /trainings/delete", handleTrainingDelete)

	mux.HandleFunc("GET /calendar", handleCalendar)
	mux.HandleFunc("GET /calendar.ics", handleCalendarFeed)
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}
