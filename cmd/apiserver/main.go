package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"personaltrainer/internal/adapters/api"
	"personaltrainer/internal/adapters/storage"
	customerStore "personaltrainer/internal/adapters/storage/customer"
	trainingStore "personaltrainer/internal/adapters/storage/training"
	"personaltrainer/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.ParseAPI()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
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
	log.Println("Database initialized successfully!")

	stores := &api.Stores{
		CustomerStore: customerStore.NewSQLiteStore(db),
		TrainingStore: trainingStore.NewSQLiteStore(db),
	}

	if cfg.Seed {
		if err := seedDemoData(context.Background(), stores); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	mux := api.NewMux(stores)

	log.Printf("Personal Trainer API %s starting on %s (db=%s)", version, cfg.Addr, cfg.DBPath)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// seedDemoData loads a couple of customers and trainings on first boot
// so the UI has something to show. Idempotent: skipped when any
// customer already exists.
func seedDemoData(ctx context.Context, stores *api.Stores) error {
	existing, err := stores.CustomerStore.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	ann := customerStore.Record{
		ID: uuid.New().String(), Firstname: "Ann", Lastname: "Lee",
		Streetaddress: "12 Harbour St", Postcode: "00120", City: "Helsinki",
		Email: "ann.lee@example.com", Phone: "040-1234567",
	}
	bob := customerStore.Record{
		ID: uuid.New().String(), Firstname: "Bob", Lastname: "Mills",
		Streetaddress: "7 Station Rd", Postcode: "33100", City: "Tampere",
		Email: "bob.mills@example.com", Phone: "050-7654321",
	}
	for _, c := range []customerStore.Record{ann, bob} {
		if err := stores.CustomerStore.Save(ctx, c); err != nil {
			return err
		}
	}

	monday := time.Now().Truncate(24 * time.Hour).Add(10 * time.Hour)
	sessions := []trainingStore.Record{
		{ID: uuid.New().String(), CustomerID: ann.ID, Date: monday, Duration: 45, Activity: "Running"},
		{ID: uuid.New().String(), CustomerID: ann.ID, Date: monday.AddDate(0, 0, 2), Duration: 60, Activity: "Gym"},
		{ID: uuid.New().String(), CustomerID: bob.ID, Date: monday.AddDate(0, 0, 1), Duration: 30, Activity: "Spinning"},
	}
	for _, t := range sessions {
		if err := stores.TrainingStore.Save(ctx, t); err != nil {
			return err
		}
	}
	log.Println("Demo seed data loaded")
	return nil
}
