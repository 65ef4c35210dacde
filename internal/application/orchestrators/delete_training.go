package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"personaltrainer/internal/domain/resource"
)

// DeleteTrainingInput carries input for the delete-training orchestrator.
type DeleteTrainingInput struct {
	Ref resource.Ref
}

// DeleteTrainingDeps holds dependencies for DeleteTraining.
type DeleteTrainingDeps struct {
	Writer TrainingWriter
}

// ExecuteDeleteTraining deletes the training at its canonical URL.
// PRE: Ref is the training's canonical URL
// POST: the training no longer appears in subsequent collection fetches
func ExecuteDeleteTraining(ctx context.Context, input DeleteTrainingInput, deps DeleteTrainingDeps) error {
	if input.Ref.IsZero() {
		return &ValidationError{Err: errors.New("missing training resource link")}
	}
	if err := deps.Writer.DeleteTraining(ctx, input.Ref); err != nil {
		return err
	}
	slog.Info("training_event", "event", "training_deleted", "ref", input.Ref.String())
	return nil
}
