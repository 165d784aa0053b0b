package api

import (
	"time"

	"raspictl/pkg/timetable"
)

// Items is the service's listing of selectable profiles.
type Items struct {
	Groups   []string `json:"groups"`
	Teachers []string `json:"teachers"`
}

// Event is a calendar event such as a practice period or holiday,
// consumed only by the banner on the schedule view.
type Event struct {
	Title     string `json:"title"`
	Code      string `json:"code"`
	Type      string `json:"type"`
	DateStart string `json:"dateStart"` // YYYY-MM-DD
	DateEnd   string `json:"dateEnd"`   // YYYY-MM-DD
}

// DayData is the joined result of one date's concurrent fetches.
type DayData struct {
	Schedule  *timetable.Schedule
	Overrides *timetable.OverridesBatch
	Events    []Event
}

// ActiveEvents filters events to those whose date range covers the given
// moment. Events with unparseable dates are skipped.
func ActiveEvents(events []Event, now time.Time) []Event {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var active []Event
	for _, e := range events {
		start, err := time.Parse("2006-01-02", e.DateStart)
		if err != nil {
			continue
		}
		end, err := time.Parse("2006-01-02", e.DateEnd)
		if err != nil {
			continue
		}
		if !day.Before(start) && !day.After(end) {
			active = append(active, e)
		}
	}
	return active
}
