package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"personaltrainer/internal/domain/resource"
	"personaltrainer/internal/domain/training"
)

// mockTrainingWriter records mutation calls.
type mockTrainingWriter struct {
	created []training.Training
	deleted []resource.Ref
	err     error
}

func (m *mockTrainingWriter) CreateTraining(ctx context.Context, value training.Training) (training.Training, error) {
	m.created = append(m.created, value)
	if m.err != nil {
		return training.Training{}, m.err
	}
	value.Ref = resource.Ref("https://h/api/trainings/new")
	return value, nil
}

func (m *mockTrainingWriter) DeleteTraining(ctx context.Context, ref resource.Ref) error {
	m.deleted = append(m.deleted, ref)
	return m.err
}

func validTraining() training.Training {
	return training.Training{
		CustomerRef: resource.Ref("https://h/api/customers/7"),
		Date:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Duration:    45,
		Activity:    "Running",
	}
}

func TestExecuteSaveTraining(t *testing.T) {
	writer := &mockTrainingWriter{}

	saved, err := ExecuteSaveTraining(context.Background(), SaveTrainingInput{Training: validTraining()}, SaveTrainingDeps{Writer: writer})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writer.created) != 1 {
		t.Fatalf("created %d trainings, want 1", len(writer.created))
	}
	if writer.created[0].CustomerRef != "https://h/api/customers/7" {
		t.Errorf("created body customer = %q", writer.created[0].CustomerRef)
	}
	if saved.Ref.IsZero() {
		t.Error("saved training must carry the server-assigned URL")
	}
}

// TestExecuteSaveTraining_ValidationBlocksRequest verifies each invalid
// shape is caught before any request is sent.
func TestExecuteSaveTraining_ValidationBlocksRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*training.Training)
		want   error
	}{
		{"missing activity", func(tr *training.Training) { tr.Activity = "" }, training.ErrMissingActivity},
		{"missing date", func(tr *training.Training) { tr.Date = time.Time{} }, training.ErrMissingDate},
		{"zero duration", func(tr *training.Training) { tr.Duration = 0 }, training.ErrNegativeDuration},
		{"missing customer", func(tr *training.Training) { tr.CustomerRef = "" }, training.ErrMissingCustomer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := &mockTrainingWriter{}
			tr := validTraining()
			tt.mutate(&tr)

			_, err := ExecuteSaveTraining(context.Background(), SaveTrainingInput{Training: tr}, SaveTrainingDeps{Writer: writer})
			if !IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected wrapped %v, got %v", tt.want, err)
			}
			if len(writer.created) != 0 {
				t.Error("no request may be sent for an invalid training")
			}
		})
	}
}

func TestExecuteSaveTraining_WriterFailure(t *testing.T) {
	wantErr := errors.New("400 Bad Request")
	writer := &mockTrainingWriter{err: wantErr}

	_, err := ExecuteSaveTraining(context.Background(), SaveTrainingInput{Training: validTraining()}, SaveTrainingDeps{Writer: writer})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected writer error, got %v", err)
	}
}

func TestExecuteDeleteTraining(t *testing.T) {
	writer := &mockTrainingWriter{}
	ref := resource.Ref("https://h/api/trainings/3")

	if err := ExecuteDeleteTraining(context.Background(), DeleteTrainingInput{Ref: ref}, DeleteTrainingDeps{Writer: writer}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(writer.deleted) != 1 || writer.deleted[0] != ref {
		t.Fatalf("deleted refs = %v, want [%s]", writer.deleted, ref)
	}
}

func TestExecuteDeleteTraining_MissingRef(t *testing.T) {
	writer := &mockTrainingWriter{}
	err := ExecuteDeleteTraining(context.Background(), DeleteTrainingInput{}, DeleteTrainingDeps{Writer: writer})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(writer.deleted) != 0 {
		t.Error("no request may be sent without a resource link")
	}
}
