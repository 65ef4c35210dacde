package training

import (
	"errors"
	"strings"
	"time"

	"personaltrainer/internal/domain/resource"
)

// Domain errors
var (
	ErrMissingActivity  = errors.New("training activity is required")
	ErrMissingDate      = errors.New("training date is required")
	ErrNegativeDuration = errors.New("training duration must be positive")
	ErrMissingCustomer  = errors.New("training customer is required")
)

// Training represents one booked session. It references its owning
// customer by canonical URL only; the customer record does not point
// back. Trainings are created and deleted, never edited in place.
type Training struct {
	Ref         resource.Ref
	CustomerRef resource.Ref
	Date        time.Time
	Duration    int // minutes
	Activity    string
}

// End returns the session end instant.
// INVARIANT: End is always Date + Duration minutes
func (t *Training) End() time.Time {
	return t.Date.Add(time.Duration(t.Duration) * time.Minute)
}

// Validate checks the fields required before submission.
// PRE: Training struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (t *Training) Validate() error {
	if strings.TrimSpace(t.Activity) == "" {
		return ErrMissingActivity
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if t.Duration <= 0 {
		return ErrNegativeDuration
	}
	if t.CustomerRef.IsZero() {
		return ErrMissingCustomer
	}
	return nil
}
