package entity

import (
	"strings"
	"time"
)

// Preset names a Suggested-Hours window chosen by the user.
type Preset string

const (
	PresetEarlyBird Preset = "early_bird"
	PresetDefault   Preset = "default"
	PresetNightOwl  Preset = "night_owl"
	PresetLateLate  Preset = "late_late"
)

// Presets lists every preset in display order.
var Presets = []Preset{PresetEarlyBird, PresetDefault, PresetNightOwl, PresetLateLate}

// Window is an allowed-hours range in local clock hours. EndHour 24 means
// midnight at the end of the day.
type Window struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

// Windows spanning midnight (e.g. 9 to 26) are not supported yet; late
// presets are clamped to 24.
var presetWindows = map[Preset]Window{
	PresetEarlyBird: {StartHour: 5, EndHour: 21},
	PresetDefault:   {StartHour: 5, EndHour: 22},
	PresetNightOwl:  {StartHour: 7, EndHour: 24},
	PresetLateLate:  {StartHour: 9, EndHour: 24},
}

func (p Preset) Valid() bool {
	_, ok := presetWindows[p]
	return ok
}

// Window returns the preset's allowed hours. Unknown presets get the default window.
func (p Preset) Window() Window {
	if w, ok := presetWindows[p]; ok {
		return w
	}
	return presetWindows[PresetDefault]
}

// ParsePreset normalises a stored or user-supplied value. Anything
// unrecognised becomes PresetDefault.
func ParsePreset(s string) Preset {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if p.Valid() {
		return p
	}
	return PresetDefault
}

// Slot is a candidate meeting window with availability counts.
type Slot struct {
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	AvailableCount int       `json:"available_count"`
	TotalMembers   int       `json:"total_members"`
}

// In returns a copy of s with both timestamps converted to loc.
func (s Slot) In(loc *time.Location) Slot {
	s.Start = s.Start.In(loc)
	s.End = s.End.In(loc)
	return s
}

// ScoredSlot pairs a slot with its ranking score.
type ScoredSlot struct {
	Slot
	Score float64 `json:"score"`
}
