package projections

import (
	"context"
	"fmt"

	"personaltrainer/internal/adapters/rest"
	"personaltrainer/internal/domain/calendar"
)

// GetCalendarDeps holds dependencies for GetCalendar.
type GetCalendarDeps struct {
	TrainingSource TrainingSource
	Resolver       NameResolver
}

// GetCalendarResult carries the query result.
type GetCalendarResult struct {
	Events []calendar.Event
}

// QueryGetCalendar turns the training collection into calendar events.
// An unresolved customer leaves the title bare (no suffix) rather than
// showing a placeholder; the view windowing happens in the calendar UI,
// so every event is returned regardless of the current view state.
// PRE: deps.TrainingSource and deps.Resolver are set
// POST: one event per training, end = start + duration minutes
func QueryGetCalendar(ctx context.Context, deps GetCalendarDeps) (GetCalendarResult, error) {
	items, err := deps.TrainingSource.Trainings(ctx)
	if err != nil {
		return GetCalendarResult{}, err
	}

	enriched := enrichTrainings(ctx, items, deps.Resolver, rest.FallbackEmpty)

	events := make([]calendar.Event, 0, len(enriched))
	for _, e := range enriched {
		title := e.Activity
		if e.CustomerName != "" {
			title += " - " + e.CustomerName
		}
		events = append(events, calendar.Event{
			Title:   title,
			Start:   e.Date,
			End:     e.End(),
			Tooltip: fmt.Sprintf("%s (%d min) %s", e.Activity, e.Duration, e.CustomerName),
		})
	}
	return GetCalendarResult{Events: events}, nil
}
