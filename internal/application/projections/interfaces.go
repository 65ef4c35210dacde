package projections

import (
	"context"

	"personaltrainer/internal/domain/customer"
	"personaltrainer/internal/domain/resource"
	"personaltrainer/internal/domain/training"
)

// CustomerSource fetches the remote customer collection.
type CustomerSource interface {
	Customers(ctx context.Context) ([]customer.Customer, error)
}

// TrainingSource fetches the remote training collection.
type TrainingSource interface {
	Trainings(ctx context.Context) ([]training.Training, error)
}

// NameResolver resolves a customer reference into a display name,
// degrading to the given fallback on any failure.
type NameResolver interface {
	ResolveCustomerName(ctx context.Context, ref resource.Ref, fallback string) string
}
