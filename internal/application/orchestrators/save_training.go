package orchestrators

import (
	"context"
	"log/slog"

	"personaltrainer/internal/domain/training"
)

// SaveTrainingInput carries input for the save-training orchestrator.
type SaveTrainingInput struct {
	Training training.Training
}

// SaveTrainingDeps holds dependencies for SaveTraining.
type SaveTrainingDeps struct {
	Writer TrainingWriter
}

// ExecuteSaveTraining validates and creates a training session for its
// customer.
// PRE: deps.Writer is set
// POST: returns the server-echoed representation; on ValidationError no
// request was sent
func ExecuteSaveTraining(ctx context.Context, input SaveTrainingInput, deps SaveTrainingDeps) (training.Training, error) {
	t := input.Training
	if err := t.Validate(); err != nil {
		return training.Training{}, &ValidationError{Err: err}
	}

	created, err := deps.Writer.CreateTraining(ctx, t)
	if err != nil {
		return training.Training{}, err
	}
	slog.Info("training_event", "event", "training_created", "ref", created.Ref.String(), "activity", t.Activity)
	return created, nil
}
