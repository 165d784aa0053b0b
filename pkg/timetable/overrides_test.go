package timetable

import (
	"reflect"
	"testing"
)

func common(name, teacher, room string) Lesson {
	return Lesson{Common: &CommonLesson{Name: name, Teacher: teacher, Room: room}}
}

func testSchedule() *Schedule {
	s := NewSchedule()
	s.Weeks[0].Days[0].Lessons[0] = common("Физика", "Иванов", "204")
	s.Weeks[0].Days[0].Lessons[1] = common("Математика", "Петрова", "101")
	s.Weeks[1].Days[2].Lessons[4] = common("История", "Сидоров", "310")
	return s
}

func TestApplyOverridesDisabledOrEmpty(t *testing.T) {
	base := testSchedule()

	if got := ApplyOverrides(base, nil, true); got != base {
		t.Errorf("expected nil batch to return the base unchanged by reference")
	}
	if got := ApplyOverrides(base, &OverridesBatch{}, true); got != base {
		t.Errorf("expected empty batch to return the base unchanged by reference")
	}
	batch := &OverridesBatch{
		WeekNum:   0,
		WeekDay:   0,
		Overrides: []Override{{Index: 0, WillBe: common("Химия", "Орлова", "402")}},
	}
	if got := ApplyOverrides(base, batch, false); got != base {
		t.Errorf("expected disabled engine to return the base unchanged by reference")
	}
}

func TestApplyOverridesReplacesSlot(t *testing.T) {
	base := testSchedule()
	batch := &OverridesBatch{
		WeekNum: 0,
		WeekDay: 0,
		Overrides: []Override{
			{Index: 1, ShouldBe: common("Математика", "Петрова", "101"), WillBe: common("Химия", "Орлова", "402")},
		},
	}

	display := ApplyOverrides(base, batch, true)

	if display == base {
		t.Fatalf("expected a cloned schedule, got the base by reference")
	}
	if got := display.Slot(0, 0, 1); got.Common == nil || got.Common.Name != "Химия" {
		t.Errorf("expected overridden slot to carry the willBe lesson, got %+v", got)
	}
	// The base must be untouched.
	if got := base.Slot(0, 0, 1); got.Common == nil || got.Common.Name != "Математика" {
		t.Errorf("base schedule was mutated: %+v", got)
	}
	// Untouched slots must be identical to the base.
	if !reflect.DeepEqual(display.Slot(0, 0, 0), base.Slot(0, 0, 0)) {
		t.Errorf("untouched slot differs from base")
	}
	if !reflect.DeepEqual(display.Slot(1, 2, 4), base.Slot(1, 2, 4)) {
		t.Errorf("untouched slot in another week differs from base")
	}
}

func TestApplyOverridesKeepsShape(t *testing.T) {
	base := testSchedule()
	batch := &OverridesBatch{
		WeekNum: 0,
		WeekDay: 0,
		Overrides: []Override{
			{Index: 0, WillBe: common("Химия", "Орлова", "402")},
			{Index: -1, WillBe: common("Мусор", "", "")},
			{Index: 99, WillBe: common("Мусор", "", "")},
		},
	}

	display := ApplyOverrides(base, batch, true)

	if len(display.Weeks) != NumWeeks {
		t.Fatalf("expected %d weeks, got %d", NumWeeks, len(display.Weeks))
	}
	for w := range display.Weeks {
		if len(display.Weeks[w].Days) != DaysPerWeek {
			t.Fatalf("expected %d days in week %d, got %d", DaysPerWeek, w, len(display.Weeks[w].Days))
		}
		for d := range display.Weeks[w].Days {
			if len(display.Weeks[w].Days[d].Lessons) != SlotsPerDay {
				t.Fatalf("expected %d slots in week %d day %d, got %d",
					SlotsPerDay, w, d, len(display.Weeks[w].Days[d].Lessons))
			}
		}
	}
}

func TestApplyOverridesOutOfRangeCoordinates(t *testing.T) {
	base := testSchedule()
	batch := &OverridesBatch{
		WeekNum:   7,
		WeekDay:   0,
		Overrides: []Override{{Index: 0, WillBe: common("Химия", "Орлова", "402")}},
	}

	display := ApplyOverrides(base, batch, true)
	if !reflect.DeepEqual(display, base) {
		t.Errorf("expected out-of-range batch coordinates to leave every slot unchanged")
	}
}

func TestFreeSlotsFullDay(t *testing.T) {
	base := NewSchedule()
	for i := 0; i < SlotsPerDay; i++ {
		base.Weeks[0].Days[0].Lessons[i] = common("Пара", "Кто-то", "1")
	}

	if got := FreeSlots(base, nil, 0, 0); len(got) != 0 {
		t.Errorf("expected no free slots on a fully populated day, got %v", got)
	}
}

func TestFreeSlotsEmptyDay(t *testing.T) {
	base := NewSchedule()

	got := FreeSlots(base, nil, 0, 0)
	want := []int{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected all slots free on an empty Monday, got %v", got)
	}
}

func TestFreeSlotsTuesdayClassHour(t *testing.T) {
	base := NewSchedule()

	got := FreeSlots(base, nil, 0, Tuesday)
	want := []int{0, 1, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected the class-hour slot to be excluded on Tuesday, got %v", got)
	}
}

func TestFreeSlotsRespectOverrides(t *testing.T) {
	base := NewSchedule()
	base.Weeks[0].Days[0].Lessons[2] = common("Физика", "Иванов", "204")

	// An override cancelling slot 2 frees it; an override filling slot 4
	// occupies it.
	batch := &OverridesBatch{
		WeekNum: 0,
		WeekDay: 0,
		Overrides: []Override{
			{Index: 2, ShouldBe: common("Физика", "Иванов", "204"), WillBe: NoLesson()},
			{Index: 4, WillBe: common("Химия", "Орлова", "402")},
		},
	}

	got := FreeSlots(base, batch, 0, 0)
	want := []int{0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected overrides to shift availability, got %v want %v", got, want)
	}
}
