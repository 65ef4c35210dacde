package customer

import (
	"errors"
	"strings"

	"personaltrainer/internal/domain/resource"
)

// Domain errors
var (
	ErrMissingField = errors.New("all customer fields are required")
)

// Customer holds state for the concept. The canonical URL issued by the
// remote service is the identity; there is no separate numeric key.
type Customer struct {
	Ref           resource.Ref
	Firstname     string
	Lastname      string
	Streetaddress string
	Postcode      string
	City          string
	Email         string
	Phone         string
}

// Validate checks if the Customer has valid data.
// PRE: Customer struct is initialized
// POST: Returns error if a required field is blank, nil otherwise
func (c *Customer) Validate() error {
	fields := []string{
		c.Firstname, c.Lastname, c.Streetaddress,
		c.Postcode, c.City, c.Email, c.Phone,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return ErrMissingField
		}
	}
	return nil
}

// DisplayName returns "first last" joined by a single space.
func (c *Customer) DisplayName() string {
	return c.Firstname + " " + c.Lastname
}
