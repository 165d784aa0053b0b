package timetable

// The schedule service is inconsistent about lesson payload shapes: field
// casing and nesting differ between endpoints and API revisions, and older
// deployments still send flat un-nested lessons. Normalize is the single
// seam that absorbs all of that before any display or comparison logic runs.

// groupAliases is the priority order in which group-carrying fields are
// searched. Capitalized variants come from the service's older endpoints.
var groupAliases = []string{
	"group", "Group",
	"studentGroup", "StudentGroup",
	"className", "ClassName",
	"targetGroup", "TargetGroup",
}

// groupContainers are nested objects the group search descends into when
// the current level carries no group field itself.
var groupContainers = []string{"commonLesson", "CommonLesson", "willBe", "WillBe"}

// Normalize converts an arbitrary lesson payload into its canonical form.
// It never fails: anything unrecognizable degrades to an empty slot.
// Normalizing an already-normalized lesson returns it unchanged.
func Normalize(raw any) Lesson {
	switch v := raw.(type) {
	case nil:
		return NoLesson()
	case Lesson:
		return v
	case *Lesson:
		if v == nil {
			return NoLesson()
		}
		return *v
	case string:
		// Some endpoints serialize missing slots as the literal string "null".
		return NoLesson()
	case map[string]any:
		return normalizeMap(v)
	default:
		return NoLesson()
	}
}

func normalizeMap(m map[string]any) Lesson {
	if len(m) == 0 {
		return NoLesson()
	}

	if nested, ok := childMap(m, "commonLesson", "CommonLesson"); ok {
		c := CommonLesson{
			Name:    getString(nested, "name", "Name"),
			Teacher: getString(nested, "teacher", "Teacher"),
			Room:    getString(nested, "room", "Room"),
			Group:   getString(nested, "group", "Group"),
		}
		if c.Group == "" {
			c.Group = findGroup(m)
		}
		return Lesson{Common: &c}
	}

	if nested, ok := childMap(m, "subgroupedLesson", "SubgroupedLesson"); ok {
		s := SubgroupedLesson{Name: getString(nested, "name", "Name")}
		rawSubs, _ := nested["subgroups"].([]any)
		if rawSubs == nil {
			rawSubs, _ = nested["Subgroups"].([]any)
		}
		for _, rs := range rawSubs {
			sm, ok := rs.(map[string]any)
			if !ok {
				continue
			}
			entry := SubgroupEntry{
				Teacher:       getString(sm, "teacher", "Teacher"),
				Room:          getString(sm, "room", "Room"),
				SubgroupIndex: getInt(sm, "subgroupIndex", "SubgroupIndex", "subgroup_index"),
				// Each subgroup may belong to a different group, so the
				// group is resolved per entry, not once for the lesson.
				Group: findGroup(sm),
			}
			s.Subgroups = append(s.Subgroups, entry)
		}
		return Lesson{Subgrouped: &s}
	}

	// Flat legacy shape: name/teacher/room directly on the object.
	if hasAny(m, "name", "Name", "teacher", "Teacher", "room", "Room") {
		name := getString(m, "name", "Name")
		teacher := getString(m, "teacher", "Teacher")
		room := getString(m, "room", "Room")
		if hasAny(m, "subgroup_index", "subgroupIndex", "SubgroupIndex") {
			return Lesson{Subgrouped: &SubgroupedLesson{
				Name: name,
				Subgroups: []SubgroupEntry{{
					Teacher:       teacher,
					Room:          room,
					SubgroupIndex: getInt(m, "subgroup_index", "subgroupIndex", "SubgroupIndex"),
					Group:         findGroup(m),
				}},
			}}
		}
		return Lesson{Common: &CommonLesson{
			Name:    name,
			Teacher: teacher,
			Room:    room,
			Group:   findGroup(m),
		}}
	}

	return NoLesson()
}

// findGroup searches the alias list on the given object, then descends
// into nested lesson-shaped containers, returning the first group found.
func findGroup(m map[string]any) string {
	for _, alias := range groupAliases {
		if v, ok := m[alias]; ok {
			if g := groupValue(v); g != "" {
				return g
			}
		}
	}
	for _, key := range groupContainers {
		if nested, ok := m[key].(map[string]any); ok {
			if g := findGroup(nested); g != "" {
				return g
			}
		}
	}
	return ""
}

// groupValue resolves a group field that is either a plain string or an
// object carrying the group under .name or .group.
func groupValue(v any) string {
	switch g := v.(type) {
	case string:
		return g
	case map[string]any:
		if s := getString(g, "name", "Name"); s != "" {
			return s
		}
		return getString(g, "group", "Group")
	default:
		return ""
	}
}

func childMap(m map[string]any, keys ...string) (map[string]any, bool) {
	for _, k := range keys {
		if nested, ok := m[k].(map[string]any); ok {
			return nested, true
		}
	}
	return nil, false
}

func getString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			return s
		}
	}
	return ""
}

func getInt(m map[string]any, keys ...string) int {
	for _, k := range keys {
		switch n := m[k].(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}
	return 0
}

func hasAny(m map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}
