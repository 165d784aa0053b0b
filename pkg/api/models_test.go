package api

import (
	"testing"
	"time"
)

func TestActiveEvents(t *testing.T) {
	events := []Event{
		{Title: "Практика", Code: "ПР", Type: "practice", DateStart: "2024-02-01", DateEnd: "2024-02-29"},
		{Title: "Каникулы", Code: "К", Type: "holiday", DateStart: "2024-03-25", DateEnd: "2024-03-31"},
		{Title: "Сломанное", Code: "X", Type: "misc", DateStart: "not-a-date", DateEnd: "2024-02-29"},
	}

	now := time.Date(2024, 2, 15, 13, 45, 0, 0, time.UTC)

	active := ActiveEvents(events, now)
	if len(active) != 1 {
		t.Fatalf("expected 1 active event, got %d", len(active))
	}
	if active[0].Code != "ПР" {
		t.Errorf("expected the practice event, got %+v", active[0])
	}

	// Range boundaries are inclusive.
	lastDay := time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)
	if got := ActiveEvents(events, lastDay); len(got) != 1 {
		t.Errorf("expected the closing day to still be active, got %d events", len(got))
	}

	outside := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := ActiveEvents(events, outside); len(got) != 0 {
		t.Errorf("expected no active events outside all ranges, got %d", len(got))
	}
}
