package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"raspictl/pkg/timetable"
)

func TestGenerateICS(t *testing.T) {
	display := timetable.NewSchedule()
	display.Weeks[0].Days[2].Lessons[0] = timetable.Lesson{
		Common: &timetable.CommonLesson{Name: "Физика", Teacher: "Иванов", Room: "204", Group: "П-21"},
	}

	// Monday 2026-03-02; the lesson sits on Wednesday slot 0 (08:30 MSK).
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := GenerateICS(display, 0, weekStart, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Физика") {
		t.Errorf("Expected ICS to contain lesson summary, got: \n%s", output)
	}
	if !strings.Contains(output, "LOCATION:204") {
		t.Errorf("Expected ICS to contain room location")
	}
	// 04-Mar-2026 08:30 Moscow time is 05:30 UTC.
	if !strings.Contains(output, "DTSTART:20260304T053000Z") {
		t.Errorf("Expected start time string in ICS (should be UTC), got: \n%s", output)
	}
}

func TestGenerateICSSkipsEmptySlots(t *testing.T) {
	display := timetable.NewSchedule()

	var buf bytes.Buffer
	if err := GenerateICS(display, 0, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Errorf("Expected no events for an empty week, got: \n%s", buf.String())
	}
}

func TestGenerateICSSubgroupedRooms(t *testing.T) {
	display := timetable.NewSchedule()
	display.Weeks[0].Days[0].Lessons[1] = timetable.Lesson{
		Subgrouped: &timetable.SubgroupedLesson{
			Name: "Информатика",
			Subgroups: []timetable.SubgroupEntry{
				{Teacher: "Котов", Room: "205", SubgroupIndex: 0, Group: "И-21"},
				{Teacher: "Мухина", Room: "206", SubgroupIndex: 1, Group: "И-22"},
			},
		},
	}

	var buf bytes.Buffer
	if err := GenerateICS(display, 0, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "205") || !strings.Contains(output, "206") {
		t.Errorf("Expected both subgroup rooms in location, got: \n%s", output)
	}
	if !strings.Contains(output, "SUMMARY:Информатика") {
		t.Errorf("Expected subgrouped lesson summary, got: \n%s", output)
	}
}
