package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	customerStore "personaltrainer/internal/adapters/storage/customer"
)

type selfLinks struct {
	Self link `json:"self"`
}

type link struct {
	Href string `json:"href"`
}

// customerBody is the representation accepted on create/replace. It
// carries no identity fields; the server assigns those.
type customerBody struct {
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	Streetaddress string `json:"streetaddress"`
	Postcode      string `json:"postcode"`
	City          string `json:"city"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

type customerRepresentation struct {
	customerBody
	Links selfLinks `json:"_links"`
}

func customerHref(base, id string) string {
	return base + "/api/customers/" + id
}

func representCustomer(base string, rec customerStore.Record) customerRepresentation {
	return customerRepresentation{
		customerBody: customerBody{
			Firstname:     rec.Firstname,
			Lastname:      rec.Lastname,
			Streetaddress: rec.Streetaddress,
			Postcode:      rec.Postcode,
			City:          rec.City,
			Email:         rec.Email,
			Phone:         rec.Phone,
		},
		Links: selfLinks{Self: link{Href: customerHref(base, rec.ID)}},
	}
}

func (b customerBody) toRecord(id string) customerStore.Record {
	return customerStore.Record{
		ID:            id,
		Firstname:     b.Firstname,
		Lastname:      b.Lastname,
		Streetaddress: b.Streetaddress,
		Postcode:      b.Postcode,
		City:          b.City,
		Email:         b.Email,
		Phone:         b.Phone,
	}
}

// handleListCustomers returns the full collection wrapped in a HAL
// _embedded envelope.
func (s *Server) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	records, err := s.stores.CustomerStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	base := baseURL(r)
	customers := make([]customerRepresentation, 0, len(records))
	for _, rec := range records {
		customers = append(customers, representCustomer(base, rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"_embedded": map[string]any{"customers": customers},
		"_links":    selfLinks{Self: link{Href: base + "/api/customers"}},
	})
}

// handleCreateCustomer creates a customer and echoes the created
// representation.
func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var body customerBody
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	rec := body.toRecord(uuid.New().String())
	if err := s.stores.CustomerStore.Save(r.Context(), rec); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, representCustomer(baseURL(r), rec))
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	rec, err := s.stores.CustomerStore.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, representCustomer(baseURL(r), rec))
}

// handleReplaceCustomer replaces the full customer body at its
// canonical URL and echoes the updated representation.
func (s *Server) handleReplaceCustomer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.stores.CustomerStore.GetByID(r.Context(), id); err != nil {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}
	var body customerBody
	if err := strictDecode(r, &body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	rec := body.toRecord(id)
	if err := s.stores.CustomerStore.Save(r.Context(), rec); err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, representCustomer(baseURL(r), rec))
}

// handleDeleteCustomer deletes a customer. A customer still referenced
// by trainings is refused with 409 so the caller can surface it.
func (s *Server) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.stores.CustomerStore.GetByID(r.Context(), id); err != nil {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}
	n, err := s.stores.TrainingStore.CountByCustomer(r.Context(), id)
	if err != nil {
		internalError(w, err)
		return
	}
	if n > 0 {
		http.Error(w, "customer has trainings", http.StatusConflict)
		return
	}
	if err := s.stores.CustomerStore.Delete(r.Context(), id); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// idFromResourceURL extracts the trailing path segment of a canonical
// URL, e.g. the customer URL sent in a training create body.
func idFromResourceURL(u string) string {
	s := strings.TrimRight(u, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}
