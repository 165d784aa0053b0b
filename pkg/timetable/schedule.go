package timetable

// The timetable repeats over two weeks of six study days (Monday-Saturday),
// five slots per day. Tuesday conceptually has a sixth position because the
// class hour is wedged in at slot 3; the service never sends it, so it is a
// display-level reservation rather than stored data.
const (
	NumWeeks    = 2
	DaysPerWeek = 6
	SlotsPerDay = 5

	// Tuesday is the weekday carrying the reserved class-hour slot.
	Tuesday        = 1
	ClassHourIndex = 3
)

// DayNames indexes weekday labels by day position within a week.
var DayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Bell holds the start and end time of one slot, as "HH:MM".
type Bell struct {
	Start string
	End   string
}

// Bells is the fixed bell table used for display and calendar export.
var Bells = [SlotsPerDay]Bell{
	{"08:30", "10:00"},
	{"10:10", "11:40"},
	{"12:10", "13:40"},
	{"13:50", "15:20"},
	{"15:30", "17:00"},
}

// Day is one study day's fixed sequence of lesson slots.
type Day struct {
	Lessons []Lesson `json:"lessons"`
}

// Week is one of the two alternating timetable weeks.
type Week struct {
	Days []Day `json:"days"`
}

// Schedule is the recurring two-week base timetable.
type Schedule struct {
	Weeks []Week `json:"weeks"`
}

// NewSchedule returns a schedule of the full fixed shape with every slot
// set to the empty lesson.
func NewSchedule() *Schedule {
	s := &Schedule{Weeks: make([]Week, NumWeeks)}
	for w := range s.Weeks {
		s.Weeks[w].Days = make([]Day, DaysPerWeek)
		for d := range s.Weeks[w].Days {
			s.Weeks[w].Days[d].Lessons = make([]Lesson, SlotsPerDay)
		}
	}
	return s
}

// Conform pads or trims the schedule in place to the fixed
// weeks/days/slots shape, filling missing slots with empty lessons.
// Payloads occasionally arrive with short days or missing weeks.
func (s *Schedule) Conform() {
	for len(s.Weeks) < NumWeeks {
		s.Weeks = append(s.Weeks, Week{})
	}
	s.Weeks = s.Weeks[:NumWeeks]
	for w := range s.Weeks {
		week := &s.Weeks[w]
		for len(week.Days) < DaysPerWeek {
			week.Days = append(week.Days, Day{})
		}
		week.Days = week.Days[:DaysPerWeek]
		for d := range week.Days {
			day := &week.Days[d]
			for len(day.Lessons) < SlotsPerDay {
				day.Lessons = append(day.Lessons, NoLesson())
			}
			day.Lessons = day.Lessons[:SlotsPerDay]
		}
	}
}

// Slot returns the lesson at the given coordinate, or the empty lesson for
// any out-of-range coordinate.
func (s *Schedule) Slot(week, day, index int) Lesson {
	if s == nil || week < 0 || week >= len(s.Weeks) {
		return NoLesson()
	}
	days := s.Weeks[week].Days
	if day < 0 || day >= len(days) {
		return NoLesson()
	}
	lessons := days[day].Lessons
	if index < 0 || index >= len(lessons) {
		return NoLesson()
	}
	return lessons[index]
}

// Clone returns a deep copy of the schedule.
func (s *Schedule) Clone() *Schedule {
	if s == nil {
		return nil
	}
	out := &Schedule{Weeks: make([]Week, len(s.Weeks))}
	for w := range s.Weeks {
		out.Weeks[w].Days = make([]Day, len(s.Weeks[w].Days))
		for d := range s.Weeks[w].Days {
			src := s.Weeks[w].Days[d].Lessons
			dst := make([]Lesson, len(src))
			for i := range src {
				dst[i] = src[i].Clone()
			}
			out.Weeks[w].Days[d].Lessons = dst
		}
	}
	return out
}

// ScheduleStore holds the base schedule. The base is replaced wholesale on
// refetch and never mutated in place; overlays work on deep clones.
type ScheduleStore struct {
	base *Schedule
}

// NewScheduleStore returns a store holding an all-empty schedule.
func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{base: NewSchedule()}
}

// Replace swaps the entire base schedule atomically. A nil schedule resets
// the store to the all-empty shape.
func (st *ScheduleStore) Replace(s *Schedule) {
	if s == nil {
		st.base = NewSchedule()
		return
	}
	s.Conform()
	st.base = s
}

// Base returns the current base schedule. Callers must treat it as
// read-only; use Clone before modifying.
func (st *ScheduleStore) Base() *Schedule {
	return st.base
}

// Slot returns the base lesson at the given coordinate, empty when out of
// range.
func (st *ScheduleStore) Slot(week, day, index int) Lesson {
	return st.base.Slot(week, day, index)
}
