package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Older releases kept flat files next to each other instead of one
// versioned document: a profile blob, a flat history blob, a feedback
// marker and a user-type marker. They are merged into the unified state
// once, only where the destination is still empty, and removed after a
// successful merge. The migration is best effort and never fails startup.
const (
	legacyProfileFile  = "profile.json"
	legacyHistoryFile  = "history.json"
	legacyFeedbackFile = "feedback_sent"
	legacyUserTypeFile = "user_type"
)

func migrateLegacy(dir string, state *AppState) {
	migrateLegacyProfile(dir, state)
	migrateLegacyHistory(dir, state)
	migrateLegacyFeedback(dir, state)
	migrateLegacyUserType(dir, state)
}

func migrateLegacyProfile(dir string, state *AppState) {
	path := filepath.Join(dir, legacyProfileFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil || p.Type == "" {
		return
	}
	if _, exists := state.Profiles[p.Type]; !exists {
		state.Profiles[p.Type] = p
		if _, ok := state.ProfileMetadata[p.ID]; !ok {
			state.ProfileMetadata[p.ID] = ProfileMeta{OverridesEnabled: true}
		}
		if state.LastUsed == "" {
			state.LastUsed = p.Type
		}
		state.FirstTimeLaunch = false
	}
	os.Remove(path)
}

func migrateLegacyHistory(dir string, state *AppState) {
	path := filepath.Join(dir, legacyHistoryFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return
	}
	if len(state.OverrideHistory) == 0 {
		state.OverrideHistory = entries
	}
	os.Remove(path)
}

func migrateLegacyFeedback(dir string, state *AppState) {
	path := filepath.Join(dir, legacyFeedbackFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	if !state.FeedbackSent {
		v := strings.TrimSpace(string(data))
		state.FeedbackSent = v == "1" || v == "true"
	}
	os.Remove(path)
}

func migrateLegacyUserType(dir string, state *AppState) {
	path := filepath.Join(dir, legacyUserTypeFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	if state.LastUsed == "" {
		v := strings.TrimSpace(string(data))
		if v == ProfileStudent || v == ProfileTeacher {
			state.LastUsed = v
		}
	}
	os.Remove(path)
}
