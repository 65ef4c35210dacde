package api

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	trainingStore "personaltrainer/internal/adapters/storage/training"
)

type trainingLinks struct {
	Self     link `json:"self"`
	Customer link `json:"customer"`
}

// trainingCreateBody is the representation accepted on create. The
// customer field is the owning customer's canonical URL.
type trainingCreateBody struct {
	Date     time.Time `json:"date"`
	Activity string    `json:"activity"`
	Duration int       `json:"duration"`
	Customer string    `json:"customer"`
}

type trainingRepresentation struct {
	Date     time.Time     `json:"date"`
	Duration int           `json:"duration"`
	Activity string        `json:"activity"`
	Links    trainingLinks `json:"_links"`
}

func representTraining(base string, rec trainingStore.Record) trainingRepresentation {
	self := base + "/api/trainings/" + rec.ID
	return trainingRepresentation{
		Date:     rec.Date,
		Duration: rec.Duration,
		Activity: rec.Activity,
		Links: trainingLinks{
			Self: link{Href: self},
			// The customer link goes through the training, matching the
			// hosted backend's association resource shape.
			Customer: link{Href: self + "/customer"},
		},
	}
}

// handleListTrainings returns the full collection wrapped in a HAL
// _embedded envelope.
func (s *Server) handleListTrainings(w http.ResponseWriter, r *http.Request) {
	records, err := s.stores.TrainingStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	base := baseURL(r)
	trainings := make([]trainingRepresentation, 0, len(records))
	for _, rec := range records {
		trainings = append(trainings, representTraining(base, rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"_embedded": map[string]any{"trainings": trainings},
		"_links":    selfLinks{Self: link{Href: base + "/api/trainings"}},
	})
}

// handleCreateTraining creates a training owned by the customer named
// in the body's customer URL and echoes the created representation.
func (s *Server) handleCreateTraining(w http.ResponseWriter, r *http.Request) {
	var body trainingCreateBody
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	customerID := idFromResourceURL(body.Customer)
	if customerID == "" {
		http.Error(w, "customer is required", http.StatusBadRequest)
		return
	}
	if _, err := s.stores.CustomerStore.GetByID(r.Context(), customerID); err != nil {
		http.Error(w, "customer not found", http.StatusBadRequest)
		return
	}
	rec := trainingStore.Record{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Date:       body.Date,
		Duration:   body.Duration,
		Activity:   body.Activity,
	}
	if err := s.stores.TrainingStore.Save(r.Context(), rec); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, representTraining(baseURL(r), rec))
}

// handleDeleteTraining deletes a training by ID.
func (s *Server) handleDeleteTraining(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.stores.TrainingStore.GetByID(r.Context(), id); err != nil {
		http.Error(w, "training not found", http.StatusNotFound)
		return
	}
	if err := s.stores.TrainingStore.Delete(r.Context(), id); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleTrainingCustomer serves the association resource behind a
// training's _links.customer.href.
func (s *Server) handleTrainingCustomer(w http.ResponseWriter, r *http.Request) {
	rec, err := s.stores.TrainingStore.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "training not found", http.StatusNotFound)
		return
	}
	cust, err := s.stores.CustomerStore.GetByID(r.Context(), rec.CustomerID)
	if err != nil {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, representCustomer(baseURL(r), cust))
}
