package dto

import (
	"time"

	"social-planner/modules/availability/entity"
	scheduledto "social-planner/modules/schedule/dto"
	scheduleentity "social-planner/modules/schedule/entity"
)

// ===================== Request DTOs =====================

type SuggestRequest struct {
	Timezone        string      `json:"timezone"`     // IANA name, e.g. "Europe/Berlin"
	SearchStart     time.Time   `json:"search_start"` // RFC3339
	SearchEnd       time.Time   `json:"search_end"`   // RFC3339
	DurationMinutes int         `json:"duration_minutes"`
	MinAvailable    int         `json:"min_available"`
	Limit           int         `json:"limit"`
	Members         []MemberDTO `json:"members"`
}

type MemberDTO struct {
	ID   string         `json:"id"`
	Busy []TimeRangeDTO `json:"busy"`
}

type TimeRangeDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ===================== Response DTOs =====================

type SuggestResponse struct {
	Preset      string                `json:"preset"`
	Timezone    string                `json:"timezone"`
	Window      scheduleentity.Window `json:"window"`
	Suggestions []SuggestionDTO       `json:"suggestions"`
}

type SuggestionDTO struct {
	ID string `json:"id"`
	scheduledto.RankedSlotDTO
}

// ===================== Mapper Functions =====================

func (r SuggestRequest) ToEntity(loc *time.Location) entity.SearchRequest {
	members := make([]entity.Member, len(r.Members))
	for i, m := range r.Members {
		busy := make([]entity.TimeSlot, len(m.Busy))
		for j, b := range m.Busy {
			busy[j] = entity.TimeSlot{Start: b.Start, End: b.End}
		}
		members[i] = entity.Member{ID: m.ID, Busy: busy}
	}
	return entity.SearchRequest{
		Members:         members,
		SearchStart:     r.SearchStart,
		SearchEnd:       r.SearchEnd,
		DurationMinutes: r.DurationMinutes,
		Location:        loc,
		MinAvailable:    r.MinAvailable,
	}
}

func ToSuggestionDTOs(in []entity.Suggestion) []SuggestionDTO {
	out := make([]SuggestionDTO, len(in))
	for i, s := range in {
		out[i] = SuggestionDTO{ID: s.ID, RankedSlotDTO: scheduledto.ToRankedSlotDTO(s.ScoredSlot)}
	}
	return out
}
