// Package api implements the REST service the administration app talks
// to: HAL-style customer and training collections, wire-compatible with
// the hosted backend the front end was originally written against.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	customerStore "personaltrainer/internal/adapters/storage/customer"
	trainingStore "personaltrainer/internal/adapters/storage/training"
)

// Stores holds the server's storage dependencies.
type Stores struct {
	CustomerStore customerStore.Store
	TrainingStore trainingStore.Store
}

// Server serves the REST API.
type Server struct {
	stores *Stores
}

// NewMux wires the API routes.
func NewMux(s *Stores) http.Handler {
	srv := &Server{stores: s}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/customers", srv.handleListCustomers)
	mux.HandleFunc("POST /api/customers", srv.handleCreateCustomer)
	mux.HandleFunc("GET /api/customers/{id}", srv.handleGetCustomer)
	mux.HandleFunc("PUT /api/customers/{id}", srv.handleReplaceCustomer)
	mux.HandleFunc("DELETE /api/customers/{id}", srv.handleDeleteCustomer)

	mux.HandleFunc("GET /api/trainings", srv.handleListTrainings)
	mux.HandleFunc("POST /api/trainings", srv.handleCreateTraining)
	mux.HandleFunc("DELETE /api/trainings/{id}", srv.handleDeleteTraining)
	mux.HandleFunc("GET /api/trainings/{id}/customer", srv.handleTrainingCustomer)

	return mux
}

// baseURL reconstructs the externally visible root for building
// _links hrefs from the incoming request.
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("api_encode_failed", "error", err.Error())
	}
}

// internalError logs the real error and returns a generic message.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
