package orchestrators

import (
	"context"
	"log/slog"

	"personaltrainer/internal/domain/customer"
)

// SaveCustomerInput carries input for the save-customer orchestrator.
// An absent Ref means create; otherwise the customer at Ref is replaced
// with the full body.
type SaveCustomerInput struct {
	Customer customer.Customer
}

// SaveCustomerDeps holds dependencies for SaveCustomer.
type SaveCustomerDeps struct {
	Writer CustomerWriter
}

// ExecuteSaveCustomer validates and persists a customer via the remote
// service.
// PRE: deps.Writer is set
// POST: returns the server-echoed representation; on ValidationError no
// request was sent
func ExecuteSaveCustomer(ctx context.Context, input SaveCustomerInput, deps SaveCustomerDeps) (customer.Customer, error) {
	c := input.Customer
	if err := c.Validate(); err != nil {
		return customer.Customer{}, &ValidationError{Err: err}
	}

	if c.Ref.IsZero() {
		created, err := deps.Writer.CreateCustomer(ctx, c)
		if err != nil {
			return customer.Customer{}, err
		}
		slog.Info("customer_event", "event", "customer_created", "ref", created.Ref.String())
		return created, nil
	}

	updated, err := deps.Writer.ReplaceCustomer(ctx, c.Ref, c)
	if err != nil {
		return customer.Customer{}, err
	}
	slog.Info("customer_event", "event", "customer_updated", "ref", c.Ref.String())
	return updated, nil
}
