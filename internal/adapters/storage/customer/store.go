package customer

import "context"

// Record is a customer row as owned by the API server. The server is
// the identity authority: it issues the ID that becomes the last
// segment of the resource's canonical URL.
type Record struct {
	ID            string
	Firstname     string
	Lastname      string
	Streetaddress string
	Postcode      string
	City          string
	Email         string
	Phone         string
}

// Store persists customer records.
type Store interface {
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, value Record) error
	Delete(ctx context.Context, id string) error
}
