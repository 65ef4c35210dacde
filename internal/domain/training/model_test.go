package training

import (
	"testing"
	"time"

	"personaltrainer/internal/domain/resource"
)

// TestEnd verifies end = start + duration minutes, exactly.
func TestEnd(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration int
		want     time.Time
	}{
		{"45 minutes", 45, time.Date(2024, 5, 1, 10, 45, 0, 0, time.UTC)},
		{"zero duration", 0, start},
		{"crosses midnight", 15 * 60, time.Date(2024, 5, 2, 1, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Training{Date: start, Duration: tt.duration}
			if got := tr.End(); !got.Equal(tt.want) {
				t.Errorf("End() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Training{
		CustomerRef: resource.Ref("https://host/api/customers/7"),
		Date:        time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Duration:    45,
		Activity:    "Running",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid training rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Training)
		want   error
	}{
		{"missing activity", func(tr *Training) { tr.Activity = " " }, ErrMissingActivity},
		{"missing date", func(tr *Training) { tr.Date = time.Time{} }, ErrMissingDate},
		{"zero duration", func(tr *Training) { tr.Duration = 0 }, ErrNegativeDuration},
		{"negative duration", func(tr *Training) { tr.Duration = -5 }, ErrNegativeDuration},
		{"missing customer", func(tr *Training) { tr.CustomerRef = "" }, ErrMissingCustomer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := valid
			tt.mutate(&tr)
			if err := tr.Validate(); err != tt.want {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
