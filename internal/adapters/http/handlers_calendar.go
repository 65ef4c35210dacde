package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"

	"personaltrainer/internal/application/projections"
	"personaltrainer/internal/domain/calendar"
)

const calendarDateParam = "2006-01-02"

// calendarDay is one rendered column/row of the calendar grid.
type calendarDay struct {
	Label  string
	Events []calendar.Event
}

// calendarPage is the template data for the calendar view.
type calendarPage struct {
	View       string
	RangeLabel string
	Days       []calendarDay
	PrevURL    string
	NextURL    string
	TodayURL   string
	DayURL     string
	WeekURL    string
	MonthURL   string
}

// parseCalendarState reads view state from the query string. The state
// lives entirely in the URL: switching view or date never re-fetches
// more than the page itself, and the event list is windowed here, not
// at the source.
func parseCalendarState(r *http.Request) calendar.State {
	q := r.URL.Query()
	state := calendar.NewState(timeNow()).WithView(q.Get("view"))
	if d, err := time.ParseInLocation(calendarDateParam, q.Get("date"), time.Local); err == nil {
		state = state.WithDate(d)
	}
	return state
}

func calendarURL(s calendar.State) string {
	return "/calendar?view=" + s.View + "&date=" + s.Date.Format(calendarDateParam)
}

// handleCalendar renders the training calendar at the requested
// granularity and date.
func handleCalendar(w http.ResponseWriter, r *http.Request) {
	state := parseCalendarState(r)

	result, err := projections.QueryGetCalendar(r.Context(),
		projections.GetCalendarDeps{TrainingSource: service, Resolver: service},
	)
	if err != nil {
		slog.Error("calendar_fetch_failed", "error", err.Error())
	}

	from, to := state.Range()
	page := calendarPage{
		View:       state.View,
		RangeLabel: rangeLabel(state),
		PrevURL:    calendarURL(state.Prev()),
		NextURL:    calendarURL(state.Next()),
		TodayURL:   calendarURL(state.WithDate(timeNow())),
		DayURL:     calendarURL(state.WithView(calendar.ViewDay)),
		WeekURL:    calendarURL(state.WithView(calendar.ViewWeek)),
		MonthURL:   calendarURL(state.WithView(calendar.ViewMonth)),
	}

	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)
		col := calendarDay{Label: day.Format("Mon 02.01")}
		for _, e := range result.Events {
			if e.Start.Before(next) && !e.End.Before(day) {
				col.Events = append(col.Events, e)
			}
		}
		page.Days = append(page.Days, col)
	}

	renderTemplate(w, r, "calendar.html", page)
}

func rangeLabel(s calendar.State) string {
	from, to := s.Range()
	switch s.View {
	case calendar.ViewDay:
		return from.Format("Monday 02.01.2006")
	case calendar.ViewMonth:
		return from.Format("January 2006")
	default:
		return from.Format("02.01.2006") + " – " + to.AddDate(0, 0, -1).Format("02.01.2006")
	}
}

// handleCalendarFeed serves the full training calendar as an iCalendar
// feed for subscription from external calendar apps.
func handleCalendarFeed(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetCalendar(r.Context(),
		projections.GetCalendarDeps{TrainingSource: service, Resolver: service},
	)
	if err != nil {
		slog.Error("calendar_feed_fetch_failed", "error", err.Error())
		http.Error(w, "failed to fetch trainings", http.StatusBadGateway)
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Personal Trainer//Calendar//EN")
	now := timeNow()
	for i, e := range result.Events {
		ev := cal.AddEvent(fmt.Sprintf("%d-%d@personaltrainer", e.Start.Unix(), i))
		ev.SetDtStampTime(now)
		ev.SetStartAt(e.Start)
		ev.SetEndAt(e.End)
		ev.SetSummary(e.Title)
		ev.SetDescription(e.Tooltip)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trainings.ics"`)
	fmt.Fprint(w, cal.Serialize())
}
