package dto

import (
	"time"

	"social-planner/modules/schedule/entity"
)

// ===================== Request DTOs =====================

// RankSlotsRequest ranks caller-supplied slots for a preset.
type RankSlotsRequest struct {
	Preset   string    `json:"preset"`
	Timezone string    `json:"timezone"` // IANA name, e.g. "Europe/Berlin"
	Slots    []SlotDTO `json:"slots"`
}

type SlotDTO struct {
	Start          time.Time `json:"start"` // RFC3339
	End            time.Time `json:"end"`   // RFC3339
	AvailableCount int       `json:"available_count"`
	TotalMembers   int       `json:"total_members"`
}

type UpdatePresetRequest struct {
	Preset string `json:"preset"`
}

// ===================== Response DTOs =====================

type PresetResponse struct {
	Preset string        `json:"preset"`
	Window entity.Window `json:"window"`
}

type RankSlotsResponse struct {
	Preset   string          `json:"preset"`
	Timezone string          `json:"timezone"`
	Window   entity.Window   `json:"window"`
	Slots    []RankedSlotDTO `json:"slots"`
}

type RankedSlotDTO struct {
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	AvailableCount int       `json:"available_count"`
	TotalMembers   int       `json:"total_members"`
	Score          float64   `json:"score"`
	DayOfWeek      string    `json:"day_of_week"`
	FormattedTime  string    `json:"formatted_time"`
}

// ===================== Mapper Functions =====================

func ToPresetResponse(p entity.Preset) PresetResponse {
	return PresetResponse{Preset: string(p), Window: p.Window()}
}

func (s SlotDTO) ToEntity() entity.Slot {
	return entity.Slot{
		Start:          s.Start,
		End:            s.End,
		AvailableCount: s.AvailableCount,
		TotalMembers:   s.TotalMembers,
	}
}

func ToEntitySlots(in []SlotDTO) []entity.Slot {
	out := make([]entity.Slot, len(in))
	for i, s := range in {
		out[i] = s.ToEntity()
	}
	return out
}

// ToRankedSlotDTO renders a scored slot in its own location.
func ToRankedSlotDTO(s entity.ScoredSlot) RankedSlotDTO {
	return RankedSlotDTO{
		Start:          s.Start,
		End:            s.End,
		AvailableCount: s.AvailableCount,
		TotalMembers:   s.TotalMembers,
		Score:          s.Score,
		DayOfWeek:      s.Start.Weekday().String(),
		FormattedTime:  s.Start.Format("15:04") + " - " + s.End.Format("15:04"),
	}
}

func ToRankedSlotDTOs(in []entity.ScoredSlot) []RankedSlotDTO {
	out := make([]RankedSlotDTO, len(in))
	for i, s := range in {
		out[i] = ToRankedSlotDTO(s)
	}
	return out
}
