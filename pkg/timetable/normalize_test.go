package timetable

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeFlatLegacyShape(t *testing.T) {
	raw := map[string]any{
		"name":    "Физика",
		"teacher": "Иванов",
		"room":    "204",
	}

	lesson := Normalize(raw)

	if lesson.Common == nil {
		t.Fatalf("expected a common lesson, got %+v", lesson)
	}
	if lesson.Common.Name != "Физика" || lesson.Common.Teacher != "Иванов" || lesson.Common.Room != "204" {
		t.Errorf("unexpected common lesson fields: %+v", lesson.Common)
	}
	if lesson.Common.Group != "" {
		t.Errorf("expected no group on flat lesson without group fields, got %q", lesson.Common.Group)
	}
}

func TestNormalizeEmptyInputs(t *testing.T) {
	inputs := []any{
		nil,
		"null",
		map[string]any{},
		"some stray string",
		42.0,
		[]any{"not", "a", "lesson"},
		true,
	}

	for _, in := range inputs {
		lesson := Normalize(in)
		if !lesson.IsEmpty() {
			t.Errorf("expected empty lesson for input %#v, got %+v", in, lesson)
		}
	}
}

func TestNormalizeNestedCommonLesson(t *testing.T) {
	raw := map[string]any{
		"commonLesson": map[string]any{
			"name":    "Математика",
			"teacher": "Петрова",
			"room":    "101",
		},
		"studentGroup": "П-21",
	}

	lesson := Normalize(raw)

	if lesson.Common == nil {
		t.Fatalf("expected a common lesson, got %+v", lesson)
	}
	if lesson.Common.Group != "П-21" {
		t.Errorf("expected group to be filled from the outer studentGroup alias, got %q", lesson.Common.Group)
	}
}

func TestNormalizeGroupAliasPriority(t *testing.T) {
	// "group" outranks "className" even when both are present.
	raw := map[string]any{
		"name":      "История",
		"teacher":   "Сидоров",
		"room":      "310",
		"className": "И-11",
		"group":     "И-12",
	}

	lesson := Normalize(raw)
	if lesson.Common == nil || lesson.Common.Group != "И-12" {
		t.Errorf("expected group И-12 from the highest-priority alias, got %+v", lesson)
	}
}

func TestNormalizeGroupFromNestedContainer(t *testing.T) {
	raw := map[string]any{
		"commonLesson": map[string]any{
			"name":    "Химия",
			"teacher": "Орлова",
			"room":    "402",
		},
		"willBe": map[string]any{
			"targetGroup": map[string]any{"name": "Х-31"},
		},
	}

	lesson := Normalize(raw)
	if lesson.Common == nil || lesson.Common.Group != "Х-31" {
		t.Errorf("expected group resolved through the willBe container, got %+v", lesson)
	}
}

func TestNormalizeSubgroupedLesson(t *testing.T) {
	raw := map[string]any{
		"subgroupedLesson": map[string]any{
			"name": "Информатика",
			"subgroups": []any{
				map[string]any{"teacher": "Котов", "room": "205", "subgroupIndex": 0.0, "group": "И-21"},
				map[string]any{"teacher": "Мухина", "room": "206", "subgroupIndex": 1.0, "className": "И-22"},
			},
		},
	}

	lesson := Normalize(raw)

	if lesson.Subgrouped == nil {
		t.Fatalf("expected a subgrouped lesson, got %+v", lesson)
	}
	subs := lesson.Subgrouped.Subgroups
	if len(subs) != 2 {
		t.Fatalf("expected 2 subgroups, got %d", len(subs))
	}
	if subs[0].Group != "И-21" || subs[1].Group != "И-22" {
		t.Errorf("expected per-subgroup group resolution, got %q and %q", subs[0].Group, subs[1].Group)
	}
	if subs[1].SubgroupIndex != 1 {
		t.Errorf("expected subgroup index 1, got %d", subs[1].SubgroupIndex)
	}
}

func TestNormalizeFlatWithSubgroupIndex(t *testing.T) {
	raw := map[string]any{
		"name":           "Английский язык",
		"teacher":        "Белова",
		"room":           "118",
		"subgroup_index": 1.0,
	}

	lesson := Normalize(raw)

	if lesson.Subgrouped == nil {
		t.Fatalf("expected a single-subgroup lesson, got %+v", lesson)
	}
	if len(lesson.Subgrouped.Subgroups) != 1 {
		t.Fatalf("expected exactly one subgroup, got %d", len(lesson.Subgrouped.Subgroups))
	}
	if lesson.Subgrouped.Subgroups[0].SubgroupIndex != 1 {
		t.Errorf("expected subgroup index 1, got %d", lesson.Subgrouped.Subgroups[0].SubgroupIndex)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []any{
		nil,
		"null",
		map[string]any{},
		map[string]any{"name": "Физика", "teacher": "Иванов", "room": "204"},
		map[string]any{
			"commonLesson": map[string]any{"name": "Математика", "teacher": "Петрова", "room": "101"},
			"group":        "П-21",
		},
		map[string]any{
			"subgroupedLesson": map[string]any{
				"name":      "Информатика",
				"subgroups": []any{map[string]any{"teacher": "Котов", "room": "205", "subgroupIndex": 0.0}},
			},
		},
		map[string]any{"unrelated": map[string]any{"deeply": []any{1.0, 2.0}}},
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("normalization is not idempotent for %#v:\nonce:  %+v\ntwice: %+v", in, once, twice)
		}
	}
}

func TestLessonUnmarshalNormalizes(t *testing.T) {
	payload := `{"name": "Физика", "teacher": "Иванов", "room": "204"}`

	var lesson Lesson
	if err := json.Unmarshal([]byte(payload), &lesson); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if lesson.Common == nil || lesson.Common.Name != "Физика" {
		t.Errorf("expected decoding to normalize the flat shape, got %+v", lesson)
	}

	// Round-tripping the canonical form must be stable.
	data, err := json.Marshal(lesson)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var again Lesson
	if err := json.Unmarshal(data, &again); err != nil {
		t.Fatalf("second unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(lesson, again) {
		t.Errorf("canonical lesson not stable over a JSON round trip:\nfirst:  %+v\nsecond: %+v", lesson, again)
	}
}

func TestLessonUnmarshalNull(t *testing.T) {
	var lesson Lesson
	if err := json.Unmarshal([]byte(`null`), &lesson); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !lesson.IsEmpty() {
		t.Errorf("expected JSON null to decode as an empty slot, got %+v", lesson)
	}
}
