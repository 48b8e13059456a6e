package ticketmaster

import (
	"strings"
	"time"
	_ "time/tzdata" // the reference timezone must load without a host zone db
)

const localDateTimeLayout = "2006-01-02T15:04:05"

// The product is geographically scoped to the US midwest, so event times
// are interpreted in one fixed civil timezone instead of implementing
// general timezone conversion.
var centralTime = loadCentralTime()

func loadCentralTime() *time.Location {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		return time.UTC
	}
	return loc
}

// dateWindow computes the upstream date parameters. Explicit bounds pass
// through verbatim; with no bounds at all the start defaults to the
// current wall-clock time in the reference timezone so past events never
// come back.
func dateWindow(startDate, endDate string) (start, end string) {
	if startDate == "" && endDate == "" {
		return time.Now().In(centralTime).Format(localDateTimeLayout), ""
	}
	return startDate, endDate
}

// filterByDateWindow re-applies the requested date range locally. The
// provider does not reliably honor its own date filters, so this runs on
// every response. Comparison is date-only and inclusive; records without
// a parseable date are dropped.
func filterByDateWindow(events []rawEvent, startDate, endDate string) []rawEvent {
	start, hasStart := parseDateOnly(startDate)
	end, hasEnd := parseDateOnly(endDate)

	filtered := make([]rawEvent, 0, len(events))
	for _, ev := range events {
		d, ok := parseDateOnly(ev.Dates.Start.LocalDate)
		if !ok {
			continue
		}
		if hasStart && d.Before(start) {
			continue
		}
		if hasEnd && d.After(end) {
			continue
		}
		filtered = append(filtered, ev)
	}
	return filtered
}

// parseDateOnly reads the calendar-date part of a date or date-time
// string, ignoring any time-of-day component.
func parseDateOnly(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
