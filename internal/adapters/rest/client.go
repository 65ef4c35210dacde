package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"personaltrainer/internal/domain/customer"
	"personaltrainer/internal/domain/resource"
	"personaltrainer/internal/domain/training"
)

// RequestError describes a failed call against the remote service:
// either a transport failure or a non-2xx response. The caller decides
// whether to surface it to the user or only log it.
type RequestError struct {
	Op     string // the attempted operation, e.g. "fetch customers"
	Status string // server status text, empty on transport failure
	Err    error  // underlying transport error, nil on HTTP failure
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Client issues create/read/delete operations against the remote
// customer and training collections. Calls are one-shot: no retries and
// no timeout (a hung remote call hangs the caller — known limitation).
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a Client for the service at baseURL.
// PRE: baseURL is the service root, e.g. "https://host" or "http://localhost:8081"
func NewClient(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{},
	}
}

// Wire types for the HAL-style representations.

type link struct {
	Href string `json:"href"`
}

type resourceLinks struct {
	Self     link `json:"self"`
	Customer link `json:"customer"`
}

type customerResource struct {
	Firstname     string        `json:"firstname"`
	Lastname      string        `json:"lastname"`
	Streetaddress string        `json:"streetaddress"`
	Postcode      string        `json:"postcode"`
	City          string        `json:"city"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Links         resourceLinks `json:"_links"`
}

type trainingResource struct {
	Date     time.Time     `json:"date"`
	Duration int           `json:"duration"`
	Activity string        `json:"activity"`
	Links    resourceLinks `json:"_links"`
}

type customerEnvelope struct {
	Embedded struct {
		Customers []customerResource `json:"customers"`
	} `json:"_embedded"`
}

type trainingEnvelope struct {
	Embedded struct {
		Trainings []trainingResource `json:"trainings"`
	} `json:"_embedded"`
}

// customerPayload is the body sent on create/replace; it carries no
// identity fields, the server assigns those.
type customerPayload struct {
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	Streetaddress string `json:"streetaddress"`
	Postcode      string `json:"postcode"`
	City          string `json:"city"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

// trainingPayload is the body sent on training create. The customer
// field is the owning customer's canonical URL.
type trainingPayload struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
	Duration int    `json:"duration"`
	Customer string `json:"customer"`
}

func (r customerResource) toDomain() customer.Customer {
	return customer.Customer{
		Ref:           resource.Ref(r.Links.Self.Href),
		Firstname:     r.Firstname,
		Lastname:      r.Lastname,
		Streetaddress: r.Streetaddress,
		Postcode:      r.Postcode,
		City:          r.City,
		Email:         r.Email,
		Phone:         r.Phone,
	}
}

func (r trainingResource) toDomain() training.Training {
	return training.Training{
		Ref:         resource.Ref(r.Links.Self.Href),
		CustomerRef: resource.Ref(r.Links.Customer.Href),
		Date:        r.Date,
		Duration:    r.Duration,
		Activity:    r.Activity,
	}
}

func payloadFor(c customer.Customer) customerPayload {
	return customerPayload{
		Firstname:     c.Firstname,
		Lastname:      c.Lastname,
		Streetaddress: c.Streetaddress,
		Postcode:      c.Postcode,
		City:          c.City,
		Email:         c.Email,
		Phone:         c.Phone,
	}
}

// Customers fetches the full customer collection.
// POST: returns every customer with its canonical URL, or a *RequestError
func (c *Client) Customers(ctx context.Context) ([]customer.Customer, error) {
	var env customerEnvelope
	if err := c.get(ctx, c.base+"/api/customers", "fetching customers", &env); err != nil {
		return nil, err
	}
	out := make([]customer.Customer, 0, len(env.Embedded.Customers))
	for _, r := range env.Embedded.Customers {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// Trainings fetches the full training collection.
// POST: returns every training with its canonical and customer URLs, or a *RequestError
func (c *Client) Trainings(ctx context.Context) ([]training.Training, error) {
	var env trainingEnvelope
	if err := c.get(ctx, c.base+"/api/trainings", "fetching trainings", &env); err != nil {
		return nil, err
	}
	out := make([]training.Training, 0, len(env.Embedded.Trainings))
	for _, r := range env.Embedded.Trainings {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// CreateCustomer posts a new customer and returns the created
// representation echoed by the server.
func (c *Client) CreateCustomer(ctx context.Context, value customer.Customer) (customer.Customer, error) {
	var created customerResource
	err := c.send(ctx, http.MethodPost, c.base+"/api/customers", payloadFor(value), "adding a customer", &created)
	if err != nil {
		return customer.Customer{}, err
	}
	return created.toDomain(), nil
}

// ReplaceCustomer puts the full customer body at its canonical URL and
// returns the updated representation.
// PRE: ref is the customer's canonical URL
func (c *Client) ReplaceCustomer(ctx context.Context, ref resource.Ref, value customer.Customer) (customer.Customer, error) {
	var updated customerResource
	err := c.send(ctx, http.MethodPut, ref.String(), payloadFor(value), "editing a customer", &updated)
	if err != nil {
		return customer.Customer{}, err
	}
	return updated.toDomain(), nil
}

// DeleteCustomer deletes the customer at its canonical URL. Success is
// any 2xx regardless of body content.
func (c *Client) DeleteCustomer(ctx context.Context, ref resource.Ref) error {
	return c.del(ctx, ref.String(), "deleting a customer")
}

// CreateTraining posts a new training and returns the created
// representation echoed by the server.
func (c *Client) CreateTraining(ctx context.Context, value training.Training) (training.Training, error) {
	payload := trainingPayload{
		Date:     value.Date.Format(time.RFC3339),
		Activity: value.Activity,
		Duration: value.Duration,
		Customer: value.CustomerRef.String(),
	}
	var created trainingResource
	err := c.send(ctx, http.MethodPost, c.base+"/api/trainings", payload, "adding a training", &created)
	if err != nil {
		return training.Training{}, err
	}
	return created.toDomain(), nil
}

// DeleteTraining deletes the training at its canonical URL.
func (c *Client) DeleteTraining(ctx context.Context, ref resource.Ref) error {
	return c.del(ctx, ref.String(), "deleting a training")
}

func (c *Client) get(ctx context.Context, url, op string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}
	return c.do(req, op, v)
}

func (c *Client) send(ctx context.Context, method, url string, payload any, op string, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, op, v)
}

func (c *Client) del(ctx context.Context, url, op string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}
	return c.do(req, op, nil)
}

// do executes the request and decodes a JSON body into v when v is
// non-nil. A nil v means the body is irrelevant (delete).
func (c *Client) do(req *http.Request, op string, v any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &RequestError{Op: op, Status: resp.Status}
	}
	if v == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &RequestError{Op: op, Err: err}
	}
	return nil
}
