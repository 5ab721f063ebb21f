package dto

import (
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   any    `json:"error,omitempty"`
}

func OK(message string, data any) Response {
	return Response{Status: true, Message: message, Data: data}
}

func Fail(message string, err any) Response {
	return Response{Status: false, Message: message, Error: err}
}

type EventResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"max_participants"`
	OrganizerID     string `json:"organizer_id"`
	CreatedAt       string `json:"created_at"`
}

type EventSummaryResponse struct {
	EventResponse
	Organizer         string `json:"organizer"`
	ParticipantsCount int    `json:"participants_count"`
	IsParticipating   bool   `json:"is_participating"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Date:            e.Date.Format(time.RFC3339),
		Location:        e.Location,
		MaxParticipants: e.MaxParticipants,
		OrganizerID:     e.OrganizerID,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventSummaryResponse(s *domain.EventSummary) EventSummaryResponse {
	return EventSummaryResponse{
		EventResponse:     ToEventResponse(&s.Event),
		Organizer:         s.OrganizerEmail,
		ParticipantsCount: s.ParticipantsCount,
		IsParticipating:   s.IsParticipating,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
