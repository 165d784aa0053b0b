package tui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"raspictl/pkg/api"
	"raspictl/pkg/store"
	"raspictl/pkg/timetable"
)

func tempStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return s
}

func TestLoadDayReplacesSessionBase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/161902/schedule":
			w.Write([]byte(`{"weeks": [{"days": [{"lessons": [{"name": "Физика", "teacher": "Иванов", "room": "204"}]}]}]}`))
		case "/161902/overrides":
			w.Write([]byte(`{"weekNum": 0, "weekDay": 0, "overrides": []}`))
		case "/161902/events":
			w.Write([]byte(`[]`))
		default:
			t.Errorf("unexpected request path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s := tempStore(t)
	if err := s.SetProfile(store.Profile{Type: store.ProfileStudent, ID: "161902", Name: "П-21"}); err != nil {
		t.Fatalf("failed to set profile: %v", err)
	}
	profile, err := s.ActiveProfile()
	if err != nil {
		t.Fatalf("expected active profile: %v", err)
	}

	schedules := timetable.NewScheduleStore()
	client := api.NewClient(server.URL)

	data, stale, err := loadDay(s, client, schedules, profile, time.Now())
	if err != nil {
		t.Fatalf("unexpected error loading day: %v", err)
	}
	if stale {
		t.Errorf("expected a fresh load, got stale")
	}

	// The fetched base lives in the session store; the overlay reads it
	// from there.
	if data.Schedule != schedules.Base() {
		t.Errorf("expected the returned schedule to be the session base")
	}
	got := schedules.Slot(0, 0, 0)
	if got.Common == nil || got.Common.Name != "Физика" {
		t.Errorf("expected the session base to hold the fetched lesson, got %+v", got)
	}

	cached, err := s.ActiveProfile()
	if err != nil || cached.Schedule == nil {
		t.Errorf("expected the fetched schedule cached on the profile")
	}
}

func TestLoadDayFallsBackToCachedSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cached := timetable.NewSchedule()
	cached.Weeks[0].Days[0].Lessons[0] = timetable.Lesson{
		Common: &timetable.CommonLesson{Name: "Химия", Teacher: "Орлова", Room: "402"},
	}

	s := tempStore(t)
	if err := s.SetProfile(store.Profile{Type: store.ProfileStudent, ID: "161902", Name: "П-21", Schedule: cached}); err != nil {
		t.Fatalf("failed to set profile: %v", err)
	}
	profile, err := s.ActiveProfile()
	if err != nil {
		t.Fatalf("expected active profile: %v", err)
	}

	schedules := timetable.NewScheduleStore()
	client := api.NewClient(server.URL)

	data, stale, err := loadDay(s, client, schedules, profile, time.Now())
	if err != nil {
		t.Fatalf("expected fallback to the cached schedule, got error: %v", err)
	}
	if !stale {
		t.Errorf("expected the fallback load to be reported stale")
	}
	if data.Schedule != schedules.Base() {
		t.Errorf("expected the stale schedule to be served from the session base")
	}
	got := schedules.Slot(0, 0, 0)
	if got.Common == nil || got.Common.Name != "Химия" {
		t.Errorf("expected the cached lesson in the session base, got %+v", got)
	}
}

func TestRenderWeekClassHourPrintedOnce(t *testing.T) {
	s := tempStore(t)
	profile := store.Profile{Type: store.ProfileStudent, ID: "161902", Name: "П-21"}

	out := RenderWeek(s, profile, timetable.NewSchedule(), 0)

	if !strings.Contains(out, "Class hour") {
		t.Errorf("expected the reserved Tuesday slot to be labeled")
	}
	start := timetable.Bells[timetable.ClassHourIndex].Start
	if got := strings.Count(out, start); got != timetable.DaysPerWeek {
		t.Errorf("expected %q once per day (%d), got %d", start, timetable.DaysPerWeek, got)
	}
}
