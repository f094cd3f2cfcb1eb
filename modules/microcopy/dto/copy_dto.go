package dto

import "time"

// ===================== Request DTOs =====================

// DraftsRequest asks for three message drafts for one friend.
type DraftsRequest struct {
	Date            string `json:"date"`     // YYYY-MM-DD, defaults to today
	Timezone        string `json:"timezone"` // IANA name
	Archetype       string `json:"archetype"`
	FriendFirstName string `json:"friend_first_name"`
	EventTitle      string `json:"event_title"`
}

// ===================== Response DTOs =====================

type CompletionResponse struct {
	Date     string `json:"date"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// FeedbackResponse is shared by accept and dismiss feedback. Message is
// empty when Show is false.
type FeedbackResponse struct {
	Date    string `json:"date"`
	Show    bool   `json:"show"`
	Message string `json:"message,omitempty"`
}

type DeckHintResponse struct {
	Date      string `json:"date"`
	Remaining int    `json:"remaining"`
	Message   string `json:"message"`
}

type DraftsResponse struct {
	Date     string   `json:"date"`
	Variants []string `json:"variants"`
}

type LabelResponse struct {
	Show  bool   `json:"show"`
	Label string `json:"label,omitempty"`
}

type CountdownResponse struct {
	LabelResponse
	RefreshAt time.Time `json:"refresh_at"`
}
