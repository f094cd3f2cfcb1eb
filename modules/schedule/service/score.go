package service

import (
	"time"

	"social-planner/modules/schedule/entity"
)

const (
	availabilityWeight = 0.6
	timeOfDayWeight    = 0.3
)

type hourBand struct {
	from, to int // [from, to)
	weight   float64
}

const defaultBandWeight = 0.2

var weekendBands = []hourBand{
	{11, 15, 1.0},
	{15, 19, 0.8},
	{9, 11, 0.6},
	{19, 22, 0.5},
}

var weekdayBands = []hourBand{
	{18, 21, 1.0},
	{12, 17, 0.7},
	{9, 12, 0.6},
	{21, 22, 0.4},
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func todWeight(t time.Time) float64 {
	bands := weekdayBands
	if isWeekend(t) {
		bands = weekendBands
	}
	h := t.Hour()
	for _, b := range bands {
		if h >= b.from && h < b.to {
			return b.weight
		}
	}
	return defaultBandWeight
}

func presetBonus(p entity.Preset, hour int) float64 {
	switch p {
	case entity.PresetEarlyBird:
		if hour >= 7 && hour < 10 {
			return 0.1
		}
	case entity.PresetNightOwl:
		if hour >= 20 && hour < 24 {
			return 0.1
		}
		if hour >= 5 && hour < 8 {
			return -0.05
		}
	case entity.PresetLateLate:
		if hour >= 21 {
			return 0.1
		}
	}
	return 0
}

// ScoreSlot rates a slot for a viewer with preset p. Higher is better. The
// value is only meaningful relative to other slots.
func ScoreSlot(s entity.Slot, p entity.Preset) float64 {
	ratio := 0.0
	if s.TotalMembers > 0 {
		ratio = float64(s.AvailableCount) / float64(s.TotalMembers)
	}
	return ratio*availabilityWeight + todWeight(s.Start)*timeOfDayWeight + presetBonus(p, s.Start.Hour())
}
