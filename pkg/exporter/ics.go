package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"raspictl/pkg/timetable"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes one display week of the schedule as calendar events.
// weekStart must be the Monday the exported week begins on; slot times come
// from the fixed bell table. Empty slots produce no events.
func GenerateICS(display *timetable.Schedule, week int, weekStart time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	layout := "2006-01-02 15:04"

	for day := 0; day < timetable.DaysPerWeek; day++ {
		date := weekStart.AddDate(0, 0, day).Format("2006-01-02")

		for slot := 0; slot < timetable.SlotsPerDay; slot++ {
			lesson := display.Slot(week, day, slot)
			if lesson.IsEmpty() {
				continue
			}

			bell := timetable.Bells[slot]
			startTime, err := time.ParseInLocation(layout, fmt.Sprintf("%s %s", date, bell.Start), loc)
			if err != nil {
				continue // Skip invalid times
			}
			endTime, err := time.ParseInLocation(layout, fmt.Sprintf("%s %s", date, bell.End), loc)
			if err != nil {
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%d", startTime.Format("20060102T150405Z"), slot))
			event.SetCreatedTime(time.Now())
			event.SetDtStampTime(time.Now())
			event.SetModifiedAt(time.Now())
			event.SetStartAt(startTime)
			event.SetEndAt(endTime)
			event.SetSummary(lesson.Title())
			event.SetLocation(lessonRooms(lesson))
			event.SetDescription(lessonDescription(lesson))
		}
	}

	return cal.SerializeTo(w)
}

func lessonRooms(l timetable.Lesson) string {
	if l.Common != nil {
		return l.Common.Room
	}
	var rooms []string
	for _, sub := range l.Subgrouped.Subgroups {
		if sub.Room != "" {
			rooms = append(rooms, sub.Room)
		}
	}
	return strings.Join(rooms, ", ")
}

func lessonDescription(l timetable.Lesson) string {
	if l.Common != nil {
		return fmt.Sprintf("Teacher: %s\nGroup: %s", l.Common.Teacher, l.Common.Group)
	}
	var parts []string
	for _, sub := range l.Subgrouped.Subgroups {
		parts = append(parts, fmt.Sprintf("Subgroup %d: %s (%s)", sub.SubgroupIndex+1, sub.Teacher, sub.Group))
	}
	return strings.Join(parts, "\n")
}
