package entity

import (
	"time"

	schedule "social-planner/modules/schedule/entity"
)

// TimeSlot represents a generic time range (used for free/busy calculations)
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Member is one invitee and the ranges they are already booked.
type Member struct {
	ID   string     `json:"id"`
	Busy []TimeSlot `json:"busy"`
}

// SearchRequest describes the window to look for a shared free slot in.
type SearchRequest struct {
	Members         []Member
	SearchStart     time.Time
	SearchEnd       time.Time
	DurationMinutes int
	Location        *time.Location
	MinAvailable    int
}

// Suggestion is a ranked candidate slot with a short id the client can echo
// back when creating the plan.
type Suggestion struct {
	ID string `json:"id"`
	schedule.ScoredSlot
}
