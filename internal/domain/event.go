package domain

import "time"

type EventStatus string

const (
	EventStatusActive    EventStatus = "active"
	EventStatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Date            time.Time   `json:"date"`
	Location        string      `json:"location"`
	MaxParticipants int         `json:"max_participants"`
	OrganizerID     string      `json:"organizer_id"`
	Status          EventStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// EventSummary is one row of the event listing, annotated for a
// specific viewer. IsParticipating is computed for that viewer only.
type EventSummary struct {
	Event             Event
	OrganizerEmail    string
	ParticipantsCount int
	IsParticipating   bool
}

type CreateEventInput struct {
	OrganizerID     string
	Title           string
	Description     string
	Date            time.Time
	Location        string
	MaxParticipants int
}
