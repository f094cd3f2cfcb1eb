package service

import (
	"sort"

	"social-planner/modules/schedule/entity"
)

// RankSlotsScored filters slots to the preset's window and orders them by
// descending score. Equal scores keep their input order.
func RankSlotsScored(slots []entity.Slot, p entity.Preset) []entity.ScoredSlot {
	filtered := FilterSlotsToWindow(slots, GetWindowForPreset(p))

	scored := make([]entity.ScoredSlot, len(filtered))
	for i, s := range filtered {
		scored[i] = entity.ScoredSlot{Slot: s, Score: ScoreSlot(s, p)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// RankSlots is RankSlotsScored without the scores.
func RankSlots(slots []entity.Slot, p entity.Preset) []entity.Slot {
	scored := RankSlotsScored(slots, p)
	out := make([]entity.Slot, len(scored))
	for i, s := range scored {
		out[i] = s.Slot
	}
	return out
}
