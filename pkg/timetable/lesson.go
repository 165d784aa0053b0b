package timetable

import "encoding/json"

// CommonLesson is a single class shared by one whole group.
type CommonLesson struct {
	Name    string `json:"name"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
	Group   string `json:"group,omitempty"`
}

// SubgroupEntry is one subgroup's slice of a split class.
type SubgroupEntry struct {
	Teacher       string `json:"teacher"`
	Room          string `json:"room"`
	SubgroupIndex int    `json:"subgroupIndex"`
	Group         string `json:"group,omitempty"`
}

// SubgroupedLesson is one class split across subgroups, each possibly
// taught by a different teacher in a different room.
type SubgroupedLesson struct {
	Name      string          `json:"name"`
	Subgroups []SubgroupEntry `json:"subgroups"`
}

// Lesson is the canonical lesson representation. At most one of the two
// variant pointers is set; both nil means an explicitly empty slot.
type Lesson struct {
	Common     *CommonLesson     `json:"commonLesson,omitempty"`
	Subgrouped *SubgroupedLesson `json:"subgroupedLesson,omitempty"`
}

// NoLesson returns the canonical empty slot.
func NoLesson() Lesson {
	return Lesson{}
}

// IsEmpty reports whether the lesson is an empty slot. A variant whose
// fields are all blank counts as empty too, since the service sometimes
// sends hollow lesson objects instead of omitting the slot.
func (l Lesson) IsEmpty() bool {
	if l.Common != nil {
		c := l.Common
		return c.Name == "" && c.Teacher == "" && c.Room == ""
	}
	if l.Subgrouped != nil {
		return l.Subgrouped.Name == "" && len(l.Subgrouped.Subgroups) == 0
	}
	return true
}

// Title returns the display name of the lesson, or "" for an empty slot.
func (l Lesson) Title() string {
	if l.Common != nil {
		return l.Common.Name
	}
	if l.Subgrouped != nil {
		return l.Subgrouped.Name
	}
	return ""
}

// Clone returns a deep copy of the lesson.
func (l Lesson) Clone() Lesson {
	var out Lesson
	if l.Common != nil {
		c := *l.Common
		out.Common = &c
	}
	if l.Subgrouped != nil {
		s := SubgroupedLesson{Name: l.Subgrouped.Name}
		if l.Subgrouped.Subgroups != nil {
			s.Subgroups = make([]SubgroupEntry, len(l.Subgrouped.Subgroups))
			copy(s.Subgroups, l.Subgrouped.Subgroups)
		}
		out.Subgrouped = &s
	}
	return out
}

// SameCourse reports whether two lessons describe the same class.
// The room is deliberately ignored: a room-only move must not break a
// substitution chain when the history reconciler links entries together.
func SameCourse(a, b Lesson) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	if a.Common != nil && b.Common != nil {
		return a.Common.Name == b.Common.Name &&
			a.Common.Teacher == b.Common.Teacher &&
			a.Common.Group == b.Common.Group
	}
	if a.Subgrouped != nil && b.Subgrouped != nil {
		return a.Subgrouped.Name == b.Subgrouped.Name
	}
	return false
}

// UnmarshalJSON funnels every lesson arriving off the wire through
// Normalize, so code past the API boundary only ever sees canonical
// lessons no matter which payload shape the service produced.
func (l *Lesson) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		// Malformed lesson payloads degrade to an empty slot.
		*l = NoLesson()
		return nil
	}
	*l = Normalize(raw)
	return nil
}
