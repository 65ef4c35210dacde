package main

import (
	"log"
	"net/http"

	web "personaltrainer/internal/adapters/http"
	"personaltrainer/internal/adapters/rest"
	"personaltrainer/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.ParseServer()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	client := rest.NewClient(cfg.APIBaseURL)
	mux := web.NewMux(cfg, client)

	log.Printf("Personal Trainer %s starting on %s (env=%s, api=%s)", version, cfg.Addr, cfg.Environment, cfg.APIBaseURL)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
