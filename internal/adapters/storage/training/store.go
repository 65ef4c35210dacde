package training

import (
	"context"
	"time"
)

// Record is a training row as owned by the API server.
type Record struct {
	ID         string
	CustomerID string
	Date       time.Time
	Duration   int // minutes
	Activity   string
}

// Store persists training records.
type Store interface {
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, value Record) error
	Delete(ctx context.Context, id string) error
	CountByCustomer(ctx context.Context, customerID string) (int, error)
}
