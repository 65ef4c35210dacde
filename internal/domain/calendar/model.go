package calendar

import "time"

// View granularity constants.
const (
	ViewDay   = "day"
	ViewWeek  = "week"
	ViewMonth = "month"
)

// Event is a timed calendar entry derived from a training session.
// INVARIANT: End >= Start for any event built from a non-negative duration.
type Event struct {
	Title   string
	Start   time.Time
	End     time.Time
	Tooltip string
}

// State is the calendar's view state: which granularity is shown and
// which date is in focus. It is held independently of the event list —
// changing it never triggers a re-fetch, only a different window over
// the same events.
type State struct {
	View string // day, week or month
	Date time.Time
}

// NewState returns the default view state: week view around the given date.
func NewState(now time.Time) State {
	return State{View: ViewWeek, Date: now}
}

// WithView returns a copy of the state showing the given granularity.
// Unknown values fall back to the week view.
func (s State) WithView(view string) State {
	switch view {
	case ViewDay, ViewWeek, ViewMonth:
		s.View = view
	default:
		s.View = ViewWeek
	}
	return s
}

// WithDate returns a copy of the state focused on the given date.
func (s State) WithDate(date time.Time) State {
	s.Date = date
	return s
}

// Next returns the state advanced by one view-sized step.
func (s State) Next() State {
	return s.step(1)
}

// Prev returns the state moved back by one view-sized step.
func (s State) Prev() State {
	return s.step(-1)
}

func (s State) step(n int) State {
	switch s.View {
	case ViewDay:
		s.Date = s.Date.AddDate(0, 0, n)
	case ViewMonth:
		s.Date = s.Date.AddDate(0, n, 0)
	default:
		s.Date = s.Date.AddDate(0, 0, 7*n)
	}
	return s
}

// Range returns the half-open interval [from, to) the view displays.
// PRE: State.View is one of the view constants
// POST: from <= Date < to
func (s State) Range() (time.Time, time.Time) {
	y, m, d := s.Date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, s.Date.Location())
	switch s.View {
	case ViewDay:
		return day, day.AddDate(0, 0, 1)
	case ViewMonth:
		first := time.Date(y, m, 1, 0, 0, 0, 0, s.Date.Location())
		return first, first.AddDate(0, 1, 0)
	default:
		// Week starts on Monday.
		offset := (int(day.Weekday()) + 6) % 7
		monday := day.AddDate(0, 0, -offset)
		return monday, monday.AddDate(0, 0, 7)
	}
}

// Contains reports whether the event overlaps the displayed window.
func (s State) Contains(e Event) bool {
	from, to := s.Range()
	return e.Start.Before(to) && !e.End.Before(from)
}
