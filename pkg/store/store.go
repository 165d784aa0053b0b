package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"raspictl/pkg/timetable"
)

// The schema version is part of the state filename: bumping it starts a
// new document and leaves the old one behind for migration.
const (
	schemaVersion = "v2"
	stateFileName = "state-" + schemaVersion + ".json"

	// historyLimit caps stored history entries per profile.
	historyLimit = 50
)

var (
	ErrNoProfile      = errors.New("no active profile")
	ErrCourseNotFound = errors.New("custom course not found")
)

// Store owns all durable per-user state. It is constructed explicitly and
// passed to consumers; there is no package-level instance. The application
// is single-threaded, so the store does no locking; writes are synchronous.
type Store struct {
	dir         string
	state       AppState
	subscribers map[int]func(AppState)
	nextSubID   int
}

// DefaultDir returns the data directory in the user's home.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".raspictl"), nil
}

// Open loads the store from the given directory, creating it as needed.
// A missing or corrupt state file yields the default state; startup never
// fails on bad data. Legacy flat files from older releases are merged into
// still-empty fields once and then removed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	state := defaultState()
	if data, err := os.ReadFile(filepath.Join(dir, stateFileName)); err == nil {
		var loaded AppState
		if err := json.Unmarshal(data, &loaded); err == nil {
			// Stored fields win over defaults; anything missing keeps its
			// default from the zero value handling below.
			state = loaded
			state.ensureContainers()
		}
	}

	migrateLegacy(dir, &state)

	s := &Store{
		dir:         dir,
		state:       state,
		subscribers: make(map[int]func(AppState)),
	}
	// Persist so migrated data survives even if nothing else changes.
	if err := s.persist(); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns a structurally fresh copy of the current state.
func (s *Store) State() AppState {
	return snapshot(s.state)
}

// Update applies a pure transform to the state and persists the result
// synchronously. On success every subscriber receives its own fresh copy,
// so observers can detect changes by container reference.
func (s *Store) Update(fn func(AppState) AppState) error {
	next := fn(snapshot(s.state))
	next.ensureContainers()

	prev := s.state
	s.state = next
	if err := s.persist(); err != nil {
		s.state = prev
		return err
	}

	for _, listener := range s.subscribers {
		listener(snapshot(s.state))
	}
	return nil
}

// Subscribe registers a listener called after every successful update.
// The returned function unregisters it.
func (s *Store) Subscribe(listener func(AppState)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = listener
	return func() {
		delete(s.subscribers, id)
	}
}

func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	path := filepath.Join(s.dir, stateFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// snapshot copies the state with new container references for every nested
// collection. Lesson payloads inside are cloned where they are pointers.
func snapshot(st AppState) AppState {
	out := st

	out.Profiles = make(map[string]Profile, len(st.Profiles))
	for k, p := range st.Profiles {
		p.Schedule = p.Schedule.Clone()
		if p.Overrides != nil {
			batch := *p.Overrides
			batch.Overrides = cloneOverrides(p.Overrides.Overrides)
			p.Overrides = &batch
		}
		out.Profiles[k] = p
	}

	out.ProfileMetadata = make(map[string]ProfileMeta, len(st.ProfileMetadata))
	for k, m := range st.ProfileMetadata {
		out.ProfileMetadata[k] = m
	}

	out.OverrideHistory = make([]HistoryEntry, len(st.OverrideHistory))
	for i, e := range st.OverrideHistory {
		e.Overrides = cloneOverrides(e.Overrides)
		out.OverrideHistory[i] = e
	}

	out.CustomCourses = append([]CustomCourse(nil), st.CustomCourses...)

	out.Notes = make(map[string]map[string]Note, len(st.Notes))
	for profileID, notes := range st.Notes {
		inner := make(map[string]Note, len(notes))
		for k, n := range notes {
			inner[k] = n
		}
		out.Notes[profileID] = inner
	}

	return out
}

// cloneOverrides copies an override slice along with the lesson payloads
// inside, so a holder of the copy cannot write through to the source.
func cloneOverrides(src []timetable.Override) []timetable.Override {
	out := make([]timetable.Override, len(src))
	for i, o := range src {
		o.ShouldBe = o.ShouldBe.Clone()
		o.WillBe = o.WillBe.Clone()
		out[i] = o
	}
	return out
}

// SetProfile stores a profile in its type slot and makes it the active one.
func (s *Store) SetProfile(p Profile) error {
	return s.Update(func(st AppState) AppState {
		st.Profiles[p.Type] = p
		st.LastUsed = p.Type
		if _, ok := st.ProfileMetadata[p.ID]; !ok {
			st.ProfileMetadata[p.ID] = ProfileMeta{OverridesEnabled: true}
		}
		st.FirstTimeLaunch = false
		return st
	})
}

// ActiveProfile returns the last used profile.
func (s *Store) ActiveProfile() (Profile, error) {
	st := s.state
	if st.LastUsed == "" {
		return Profile{}, ErrNoProfile
	}
	p, ok := st.Profiles[st.LastUsed]
	if !ok {
		return Profile{}, ErrNoProfile
	}
	return p, nil
}

// SwitchProfile makes the stored profile of the given type active.
func (s *Store) SwitchProfile(profileType string) error {
	if _, ok := s.state.Profiles[profileType]; !ok {
		return ErrNoProfile
	}
	return s.Update(func(st AppState) AppState {
		st.LastUsed = profileType
		return st
	})
}

// CacheProfileData stores the last fetched schedule and overrides on the
// profile so the display layer can fall back to stale data offline.
func (s *Store) CacheProfileData(profileType string, schedule *timetable.Schedule, overrides *timetable.OverridesBatch) error {
	return s.Update(func(st AppState) AppState {
		p, ok := st.Profiles[profileType]
		if !ok {
			return st
		}
		p.Schedule = schedule
		p.Overrides = overrides
		st.Profiles[profileType] = p
		return st
	})
}

// OverridesEnabled reports the subscription flag for a profile; profiles
// without stored metadata default to enabled.
func (s *Store) OverridesEnabled(profileID string) bool {
	meta, ok := s.state.ProfileMetadata[profileID]
	if !ok {
		return true
	}
	return meta.OverridesEnabled
}

// SetOverridesEnabled toggles the substitutions overlay for a profile.
func (s *Store) SetOverridesEnabled(profileID string, enabled bool) error {
	return s.Update(func(st AppState) AppState {
		meta := st.ProfileMetadata[profileID]
		meta.OverridesEnabled = enabled
		st.ProfileMetadata[profileID] = meta
		return st
	})
}

// RecordOverrides reconciles one date's override batch and stores it as a
// history entry. An entry for the same profile and date is replaced, never
// duplicated; per-profile history is capped at the most recent entries.
func (s *Store) RecordOverrides(profileID string, batch *timetable.OverridesBatch) error {
	if batch == nil {
		return nil
	}
	entry := HistoryEntry{
		ProfileID: profileID,
		Timestamp: time.Now().Unix(),
		Day:       batch.Day,
		Month:     batch.Month,
		Year:      batch.Year,
		Overrides: timetable.Reconcile(batch.Overrides),
	}
	return s.Update(func(st AppState) AppState {
		kept := st.OverrideHistory[:0]
		for _, e := range st.OverrideHistory {
			if e.ProfileID == profileID && e.Day == entry.Day && e.Month == entry.Month && e.Year == entry.Year {
				continue
			}
			kept = append(kept, e)
		}
		st.OverrideHistory = append([]HistoryEntry{entry}, kept...)

		// Enforce the per-profile cap, newest first.
		count := 0
		trimmed := st.OverrideHistory[:0]
		for _, e := range st.OverrideHistory {
			if e.ProfileID == profileID {
				if count >= historyLimit {
					continue
				}
				count++
			}
			trimmed = append(trimmed, e)
		}
		st.OverrideHistory = trimmed
		return st
	})
}

// HistoryFor returns the stored history entries for a profile, newest
// first.
func (s *Store) HistoryFor(profileID string) []HistoryEntry {
	var entries []HistoryEntry
	for _, e := range s.state.OverrideHistory {
		if e.ProfileID == profileID {
			e.Overrides = cloneOverrides(e.Overrides)
			entries = append(entries, e)
		}
	}
	return entries
}

// AddCustomCourse stores a custom course, assigning it an ID if absent.
// Slot availability is the caller's responsibility; the engine's free-slot
// check runs before anything reaches the store.
func (s *Store) AddCustomCourse(c CustomCourse) (CustomCourse, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	err := s.Update(func(st AppState) AppState {
		st.CustomCourses = append(st.CustomCourses, c)
		return st
	})
	return c, err
}

// RemoveCustomCourse deletes a custom course by ID.
func (s *Store) RemoveCustomCourse(id string) error {
	found := false
	err := s.Update(func(st AppState) AppState {
		kept := st.CustomCourses[:0]
		for _, c := range st.CustomCourses {
			if c.ID == id {
				found = true
				continue
			}
			kept = append(kept, c)
		}
		st.CustomCourses = kept
		return st
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrCourseNotFound
	}
	return nil
}

// CoursesFor returns the custom courses belonging to a profile.
func (s *Store) CoursesFor(profileID string) []CustomCourse {
	var courses []CustomCourse
	for _, c := range s.state.CustomCourses {
		if c.ProfileID == profileID {
			courses = append(courses, c)
		}
	}
	return courses
}

// SetNote stores a note under a profile's slot key, replacing any previous
// one. Empty text clears the note.
func (s *Store) SetNote(profileID, slotKey, text string) error {
	return s.Update(func(st AppState) AppState {
		notes := st.Notes[profileID]
		if notes == nil {
			notes = make(map[string]Note)
			st.Notes[profileID] = notes
		}
		if text == "" {
			delete(notes, slotKey)
			return st
		}
		notes[slotKey] = Note{Text: text, UpdatedAt: time.Now()}
		return st
	})
}

// NoteFor returns the note stored for a profile's slot, if any.
func (s *Store) NoteFor(profileID, slotKey string) (Note, bool) {
	n, ok := s.state.Notes[profileID][slotKey]
	return n, ok
}
