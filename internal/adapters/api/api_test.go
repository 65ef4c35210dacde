package api

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"personaltrainer/internal/adapters/storage"
	customerStore "personaltrainer/internal/adapters/storage/customer"
	trainingStore "personaltrainer/internal/adapters/storage/training"
)

// newTestServer spins up the API over an in-memory database.
func newTestServer(t *testing.T) (*httptest.Server, *Stores) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	stores := &Stores{
		CustomerStore: customerStore.NewSQLiteStore(db),
		TrainingStore: trainingStore.NewSQLiteStore(db),
	}
	srv := httptest.NewServer(NewMux(stores))
	t.Cleanup(srv.Close)
	return srv, stores
}

const annBody = `{
	"firstname": "Ann", "lastname": "Lee",
	"streetaddress": "12 Harbour St", "postcode": "00120",
	"city": "Helsinki", "email": "ann@example.com", "phone": "040-1234567"
}`

func createCustomer(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/customers", "application/json", strings.NewReader(annBody))
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created struct {
		Links struct {
			Self struct {
				Href string `json:"href"`
			} `json:"self"`
		} `json:"_links"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode create echo: %v", err)
	}
	return created.Links.Self.Href
}

func doRequest(t *testing.T, method, url string, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// TestCustomerLifecycle runs create, list, replace and delete against
// the served collection, checking the HAL envelope along the way.
func TestCustomerLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	self := createCustomer(t, srv)
	if !strings.Contains(self, "/api/customers/") {
		t.Fatalf("created self href = %q", self)
	}

	// list carries the customer inside _embedded
	resp := doRequest(t, http.MethodGet, srv.URL+"/api/customers", "")
	var listDoc struct {
		Embedded struct {
			Customers []struct {
				Firstname string `json:"firstname"`
				Links     struct {
					Self struct {
						Href string `json:"href"`
					} `json:"self"`
				} `json:"_links"`
			} `json:"customers"`
		} `json:"_embedded"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listDoc); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(listDoc.Embedded.Customers) != 1 {
		t.Fatalf("got %d customers, want 1", len(listDoc.Embedded.Customers))
	}
	if listDoc.Embedded.Customers[0].Links.Self.Href != self {
		t.Errorf("list self = %q, want %q", listDoc.Embedded.Customers[0].Links.Self.Href, self)
	}

	// replace the full body at the canonical URL
	updated := strings.Replace(annBody, "Helsinki", "Espoo", 1)
	resp = doRequest(t, http.MethodPut, self, updated)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("replace status = %d, want 200", resp.StatusCode)
	}
	var echo struct {
		City string `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&echo); err != nil {
		t.Fatalf("failed to decode replace echo: %v", err)
	}
	if echo.City != "Espoo" {
		t.Errorf("echoed city = %q, want %q", echo.City, "Espoo")
	}

	// delete, then the resource is gone
	resp = doRequest(t, http.MethodDelete, self, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", resp.StatusCode)
	}
	resp = doRequest(t, http.MethodGet, self, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", resp.StatusCode)
	}
}

func TestReplaceCustomer_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doRequest(t, http.MethodPut, srv.URL+"/api/customers/missing", annBody)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestCreateCustomer_BadBody(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/customers", `{"firstname": "Ann", "surprise": true}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown fields", resp.StatusCode)
	}
}

// TestTrainingLifecycle creates a training for a customer and walks its
// links, including the customer association resource.
func TestTrainingLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	customerSelf := createCustomer(t, srv)

	body := `{"date": "2024-05-01T10:00:00Z", "activity": "Running", "duration": 45, "customer": "` + customerSelf + `"}`
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/trainings", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", resp.StatusCode)
	}
	var created struct {
		Activity string `json:"activity"`
		Duration int    `json:"duration"`
		Links    struct {
			Self struct {
				Href string `json:"href"`
			} `json:"self"`
			Customer struct {
				Href string `json:"href"`
			} `json:"customer"`
		} `json:"_links"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode create echo: %v", err)
	}
	if created.Activity != "Running" || created.Duration != 45 {
		t.Errorf("echo = %+v", created)
	}
	if created.Links.Customer.Href != created.Links.Self.Href+"/customer" {
		t.Errorf("customer link = %q, want association under self", created.Links.Customer.Href)
	}

	// the association resource resolves to the owning customer
	resp = doRequest(t, http.MethodGet, created.Links.Customer.Href, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("association status = %d, want 200", resp.StatusCode)
	}
	var owner struct {
		Firstname string `json:"firstname"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&owner); err != nil {
		t.Fatalf("failed to decode association: %v", err)
	}
	if owner.Firstname != "Ann" {
		t.Errorf("association firstname = %q", owner.Firstname)
	}

	// delete the training
	resp = doRequest(t, http.MethodDelete, created.Links.Self.Href, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", resp.StatusCode)
	}
}

func TestCreateTraining_UnknownCustomer(t *testing.T) {
	srv, _ := newTestServer(t)
	body := `{"date": "2024-05-01T10:00:00Z", "activity": "Running", "duration": 45, "customer": "http://h/api/customers/missing"}`
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/trainings", body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

// TestDeleteCustomer_WithTrainings verifies the referential guard: a
// customer still owning sessions is refused with 409 and stays stored.
func TestDeleteCustomer_WithTrainings(t *testing.T) {
	srv, _ := newTestServer(t)
	customerSelf := createCustomer(t, srv)

	body := `{"date": "2024-05-01T10:00:00Z", "activity": "Running", "duration": 45, "customer": "` + customerSelf + `"}`
	resp := doRequest(t, http.MethodPost, srv.URL+"/api/trainings", body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create training status = %d", resp.StatusCode)
	}

	resp = doRequest(t, http.MethodDelete, customerSelf, "")
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("delete status = %d, want 409", resp.StatusCode)
	}

	resp = doRequest(t, http.MethodGet, customerSelf, "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("refused delete must leave the customer in place, got %d", resp.StatusCode)
	}
}

func TestDeleteTraining_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := doRequest(t, http.MethodDelete, srv.URL+"/api/trainings/missing", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestIDFromResourceURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://h/api/customers/7", "7"},
		{"http://h/api/customers/7/", "7"},
		{"7", "7"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := idFromResourceURL(tt.in); got != tt.want {
			t.Errorf("idFromResourceURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
