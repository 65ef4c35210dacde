package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"personaltrainer/internal/domain/resource"
)

// DeleteCustomerInput carries input for the delete-customer orchestrator.
type DeleteCustomerInput struct {
	Ref resource.Ref
}

// DeleteCustomerDeps holds dependencies for DeleteCustomer.
type DeleteCustomerDeps struct {
	Writer CustomerWriter
}

// ExecuteDeleteCustomer deletes the customer at its canonical URL.
// PRE: Ref is the customer's canonical URL
// POST: on success the customer is gone from the next collection fetch;
// on failure the row stays and the error surfaces to the caller
func ExecuteDeleteCustomer(ctx context.Context, input DeleteCustomerInput, deps DeleteCustomerDeps) error {
	if input.Ref.IsZero() {
		return &ValidationError{Err: errors.New("missing customer resource link")}
	}
	if err := deps.Writer.DeleteCustomer(ctx, input.Ref); err != nil {
		return err
	}
	slog.Info("customer_event", "event", "customer_deleted", "ref", input.Ref.String())
	return nil
}
