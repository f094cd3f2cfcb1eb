package service

import (
	"time"

	"social-planner/modules/schedule/entity"
)

const minutesPerDay = 24 * 60

// GetWindowForPreset resolves a preset to its allowed hours.
func GetWindowForPreset(p entity.Preset) entity.Window {
	return p.Window()
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// endMinuteOfDay treats an end at exactly 00:00 as 1440 so slots that finish
// at midnight still fit a window ending at 24.
func endMinuteOfDay(t time.Time) int {
	m := minuteOfDay(t)
	if m == 0 {
		return minutesPerDay
	}
	return m
}

// FilterSlotsToWindow keeps the slots whose wall-clock start and end fall
// inside w. Times are read in each slot's own location, so callers convert to
// the viewer's zone first. The input is not modified and order is preserved.
func FilterSlotsToWindow(slots []entity.Slot, w entity.Window) []entity.Slot {
	lo, hi := w.StartHour*60, w.EndHour*60
	out := make([]entity.Slot, 0, len(slots))
	for _, s := range slots {
		if minuteOfDay(s.Start) >= lo && endMinuteOfDay(s.End) <= hi {
			out = append(out, s)
		}
	}
	return out
}
