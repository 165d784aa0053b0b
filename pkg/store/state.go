package store

import (
	"fmt"
	"time"

	"raspictl/pkg/timetable"
)

// Profile types. At most one profile of each type is held at a time.
const (
	ProfileStudent = "student"
	ProfileTeacher = "teacher"
)

// Profile is a selected identity whose schedule is being viewed. The
// schedule and overrides fields are the last fetched copies, kept so the
// display layer can choose to show stale data when the service is down.
type Profile struct {
	Type      string                    `json:"type"`
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Schedule  *timetable.Schedule       `json:"schedule,omitempty"`
	Overrides *timetable.OverridesBatch `json:"overrides,omitempty"`
}

// ProfileMeta holds per-profile preference flags.
type ProfileMeta struct {
	OverridesEnabled bool `json:"overridesEnabled"`
}

// Note is a user annotation attached to one timetable slot.
type Note struct {
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomCourse is a user-inserted lesson occupying a verified-free slot.
type CustomCourse struct {
	ID          string `json:"id"`
	ProfileID   string `json:"profileId"`
	Name        string `json:"name"`
	Teacher     string `json:"teacher"`
	Room        string `json:"room"`
	WeekIndex   int    `json:"weekIndex"`
	DayIndex    int    `json:"dayIndex"`
	LessonIndex int    `json:"lessonIndex"`
}

// HistoryEntry is one date's reconciled overrides for one profile.
type HistoryEntry struct {
	ProfileID string               `json:"profileId"`
	Timestamp int64                `json:"timestamp"`
	Day       int                  `json:"day"`
	Month     int                  `json:"month"`
	Year      int                  `json:"year"`
	Overrides []timetable.Override `json:"overrides"`
}

// AppState is the single persisted document.
type AppState struct {
	Profiles        map[string]Profile         `json:"profiles"`        // keyed by profile type
	ProfileMetadata map[string]ProfileMeta     `json:"profileMetadata"` // keyed by profile id
	OverrideHistory []HistoryEntry             `json:"overrideHistory"`
	CustomCourses   []CustomCourse             `json:"customCourses"`
	Notes           map[string]map[string]Note `json:"notes"` // profile id -> slot key -> note
	FeedbackSent    bool                       `json:"feedbackSent"`
	FirstTimeLaunch bool                       `json:"firstTimeLaunch"`
	LastUsed        string                     `json:"lastUsed"` // profile type last viewed
}

func defaultState() AppState {
	return AppState{
		Profiles:        make(map[string]Profile),
		ProfileMetadata: make(map[string]ProfileMeta),
		Notes:           make(map[string]map[string]Note),
		FirstTimeLaunch: true,
	}
}

// ensureContainers re-creates any nil maps so a partially filled or legacy
// document never causes nil map writes downstream.
func (st *AppState) ensureContainers() {
	if st.Profiles == nil {
		st.Profiles = make(map[string]Profile)
	}
	if st.ProfileMetadata == nil {
		st.ProfileMetadata = make(map[string]ProfileMeta)
	}
	if st.Notes == nil {
		st.Notes = make(map[string]map[string]Note)
	}
}

// SlotKey builds the note index key for one timetable coordinate.
func SlotKey(week, day, index int) string {
	return fmt.Sprintf("%d-%d-%d", week, day, index)
}
