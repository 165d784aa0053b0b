package timetable

import (
	"reflect"
	"testing"
)

func TestSlotOutOfRange(t *testing.T) {
	s := testSchedule()

	coords := [][3]int{
		{-1, 0, 0},
		{2, 0, 0},
		{0, -1, 0},
		{0, 6, 0},
		{0, 0, -1},
		{0, 0, 5},
	}
	for _, c := range coords {
		if got := s.Slot(c[0], c[1], c[2]); !got.IsEmpty() {
			t.Errorf("expected empty lesson for coordinate %v, got %+v", c, got)
		}
	}

	var nilSchedule *Schedule
	if got := nilSchedule.Slot(0, 0, 0); !got.IsEmpty() {
		t.Errorf("expected empty lesson from a nil schedule, got %+v", got)
	}
}

func TestConformPadsShortPayloads(t *testing.T) {
	s := &Schedule{Weeks: []Week{
		{Days: []Day{{Lessons: []Lesson{common("Физика", "Иванов", "204")}}}},
	}}

	s.Conform()

	if len(s.Weeks) != NumWeeks {
		t.Fatalf("expected %d weeks after conforming, got %d", NumWeeks, len(s.Weeks))
	}
	for w := range s.Weeks {
		if len(s.Weeks[w].Days) != DaysPerWeek {
			t.Fatalf("expected %d days, got %d", DaysPerWeek, len(s.Weeks[w].Days))
		}
		for d := range s.Weeks[w].Days {
			if len(s.Weeks[w].Days[d].Lessons) != SlotsPerDay {
				t.Fatalf("expected %d slots, got %d", SlotsPerDay, len(s.Weeks[w].Days[d].Lessons))
			}
		}
	}
	if got := s.Slot(0, 0, 0); got.Common == nil || got.Common.Name != "Физика" {
		t.Errorf("conforming lost existing lesson data: %+v", got)
	}
	if !s.Slot(0, 0, 4).IsEmpty() {
		t.Errorf("expected padded slots to be empty")
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := testSchedule()
	clone := s.Clone()

	if !reflect.DeepEqual(s, clone) {
		t.Fatalf("clone differs from original")
	}

	clone.Weeks[0].Days[0].Lessons[0].Common.Name = "Изменено"
	if s.Weeks[0].Days[0].Lessons[0].Common.Name != "Физика" {
		t.Errorf("mutating the clone leaked into the original")
	}
}

func TestScheduleStoreReplace(t *testing.T) {
	store := NewScheduleStore()

	if !store.Slot(0, 0, 0).IsEmpty() {
		t.Fatalf("expected a fresh store to hold an empty schedule")
	}

	store.Replace(testSchedule())
	if got := store.Slot(0, 0, 0); got.Common == nil || got.Common.Name != "Физика" {
		t.Errorf("expected replaced schedule to be visible, got %+v", got)
	}

	store.Replace(nil)
	if !store.Slot(0, 0, 0).IsEmpty() {
		t.Errorf("expected nil replace to reset to the empty schedule")
	}
}
