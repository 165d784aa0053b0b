package timetable

import "sort"

// Override is one server-reported change to one slot of one calendar date.
type Override struct {
	Index    int    `json:"index"`
	ShouldBe Lesson `json:"shouldBe"`
	WillBe   Lesson `json:"willBe"`
}

// OverridesBatch scopes a list of overrides to one concrete date and the
// timetable coordinate that date falls on.
type OverridesBatch struct {
	WeekNum   int        `json:"weekNum"`
	WeekDay   int        `json:"weekDay"`
	Overrides []Override `json:"overrides"`
	Day       int        `json:"day"`
	Month     int        `json:"month"`
	Year      int        `json:"year"`
}

// ApplyOverrides overlays a date's overrides onto the base schedule and
// returns the display schedule. When disabled or when the batch is absent
// or empty, the base is returned as-is. Otherwise the base is deep-cloned
// and every override addressing a valid slot replaces that slot's lesson
// with its willBe; out-of-range indices are silently skipped. The base is
// never mutated.
func ApplyOverrides(base *Schedule, batch *OverridesBatch, enabled bool) *Schedule {
	if base == nil {
		return nil
	}
	if !enabled || batch == nil || len(batch.Overrides) == 0 {
		return base
	}

	out := base.Clone()
	if batch.WeekNum < 0 || batch.WeekNum >= len(out.Weeks) {
		return out
	}
	days := out.Weeks[batch.WeekNum].Days
	if batch.WeekDay < 0 || batch.WeekDay >= len(days) {
		return out
	}
	lessons := days[batch.WeekDay].Lessons
	for _, o := range batch.Overrides {
		if o.Index < 0 || o.Index >= len(lessons) {
			continue
		}
		lessons[o.Index] = o.WillBe.Clone()
	}
	return out
}

// FreeSlots returns, in ascending order, the slot indices of the given day
// that are free for inserting a custom course. A slot is free when its
// effective lesson (the override's willBe if one targets the index, else
// the base lesson) is empty. The Tuesday class-hour slot is never free.
func FreeSlots(base *Schedule, batch *OverridesBatch, week, day int) []int {
	free := []int{}
	for index := 0; index < SlotsPerDay; index++ {
		if day == Tuesday && index == ClassHourIndex {
			continue
		}
		effective := base.Slot(week, day, index)
		if batch != nil && batch.WeekNum == week && batch.WeekDay == day {
			for _, o := range batch.Overrides {
				if o.Index == index {
					effective = o.WillBe
					break
				}
			}
		}
		if effective.IsEmpty() {
			free = append(free, index)
		}
	}
	sort.Ints(free)
	return free
}
