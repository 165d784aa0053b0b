package timetable

import "sort"

// Repeated checks of the same date can report the same slot several times:
// a class changed, then changed again, or a substitution later cancelled.
// The service sends these as independent before/after snapshots across
// polls rather than one authoritative diff, so without merging the change
// history would show spurious intermediate states.

// Reconcile collapses multiple overrides touching the same slot index into
// the minimal coherent "was -> became" chain. Overrides for distinct
// indices pass through untouched; the result is sorted by index. Input is
// not modified. Reconciling an already-reconciled list returns it
// unchanged.
func Reconcile(overrides []Override) []Override {
	byIndex := make(map[int][]Override)
	var indices []int
	for _, o := range overrides {
		if _, seen := byIndex[o.Index]; !seen {
			indices = append(indices, o.Index)
		}
		byIndex[o.Index] = append(byIndex[o.Index], o)
	}
	sort.Ints(indices)

	out := []Override{}
	for _, index := range indices {
		group := byIndex[index]
		if len(group) == 1 {
			out = append(out, group[0])
			continue
		}
		out = append(out, mergeChains(group)...)
	}
	return out
}

// mergeChains links continuation pairs within one slot's overrides. A
// "start" (non-empty shouldBe) whose willBe matches a later-seen entry's
// shouldBe is merged with it into a single start.shouldBe -> end.willBe
// record; everything unlinked is kept as-is.
func mergeChains(group []Override) []Override {
	merged := []Override{}
	consumedAsEnd := make([]bool, len(group))
	mergedAsStart := make([]bool, len(group))

	for i, start := range group {
		if start.ShouldBe.IsEmpty() || start.WillBe.IsEmpty() {
			// Not a chainable start: nothing existed before, or the
			// change removes the lesson outright.
			continue
		}
		for j, end := range group {
			if j == i || consumedAsEnd[j] || end.WillBe.IsEmpty() {
				continue
			}
			if SameCourse(end.ShouldBe, start.WillBe) {
				merged = append(merged, Override{
					Index:    start.Index,
					ShouldBe: start.ShouldBe,
					WillBe:   end.WillBe,
				})
				consumedAsEnd[j] = true
				mergedAsStart[i] = true
				break
			}
		}
	}

	for i, o := range group {
		if !mergedAsStart[i] && !consumedAsEnd[i] {
			merged = append(merged, o)
		}
	}
	return merged
}
