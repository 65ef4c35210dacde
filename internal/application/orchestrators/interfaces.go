package orchestrators

import (
	"context"

	"personaltrainer/internal/domain/customer"
	"personaltrainer/internal/domain/resource"
	"personaltrainer/internal/domain/training"
)

// CustomerWriter issues customer mutations against the remote service.
type CustomerWriter interface {
	CreateCustomer(ctx context.Context, value customer.Customer) (customer.Customer, error)
	ReplaceCustomer(ctx context.Context, ref resource.Ref, value customer.Customer) (customer.Customer, error)
	DeleteCustomer(ctx context.Context, ref resource.Ref) error
}

// TrainingWriter issues training mutations against the remote service.
// Trainings are only ever created and deleted; replace is not part of
// the system.
type TrainingWriter interface {
	CreateTraining(ctx context.Context, value training.Training) (training.Training, error)
	DeleteTraining(ctx context.Context, ref resource.Ref) error
}
