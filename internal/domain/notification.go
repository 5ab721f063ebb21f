package domain

import (
	"fmt"
	"time"
)

// Broadcast kinds, mirrored by the frontend subscriptions.
const (
	KindEventCreated           = "event.created"
	KindEventDeleted           = "event.deleted"
	KindParticipationJoined    = "participation.joined"
	KindParticipationCancelled = "participation.cancelled"
)

const PublicEventsChannel = "events"

// ParticipationChannel is the organizer's private channel for joins.
func ParticipationChannel(organizerID string) string {
	return "event_participation." + organizerID
}

// ParticipationCancelledChannel is the organizer's private channel for
// cancelled participations.
func ParticipationCancelledChannel(organizerID string) string {
	return "event_participation_cancelled." + organizerID
}

// Notification is a decided broadcast: channel, kind and payload.
// OriginUserID, when set, lets subscribers drop their own echoes; the
// transport itself delivers to every channel subscriber.
type Notification struct {
	Channel      string
	Kind         string
	Payload      any
	OriginUserID string
}

type EventCreatedPayload struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Creator         string    `json:"creator"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	MaxParticipants int       `json:"max_participants"`
	Description     string    `json:"description"`
}

type EventDeletedPayload struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
}

type participantPayload struct {
	Email string `json:"email"`
}

type ParticipationPayload struct {
	Event             Event              `json:"event"`
	Participant       participantPayload `json:"participant"`
	ParticipantsCount int                `json:"participants_count"`
	Message           string             `json:"message,omitempty"`
}

func NewEventCreated(e *Event, organizerEmail string) Notification {
	return Notification{
		Channel: PublicEventsChannel,
		Kind:    KindEventCreated,
		Payload: EventCreatedPayload{
			ID:              e.ID,
			Title:           e.Title,
			Creator:         organizerEmail,
			Date:            e.Date,
			Location:        e.Location,
			MaxParticipants: e.MaxParticipants,
			Description:     e.Description,
		},
		OriginUserID: e.OrganizerID,
	}
}

func NewEventDeleted(e *Event) Notification {
	return Notification{
		Channel: PublicEventsChannel,
		Kind:    KindEventDeleted,
		Payload: EventDeletedPayload{
			ID:       e.ID,
			Title:    e.Title,
			Date:     e.Date,
			Location: e.Location,
		},
	}
}

func NewParticipationJoined(e *Event, participantEmail string, count int) Notification {
	return Notification{
		Channel: ParticipationChannel(e.OrganizerID),
		Kind:    KindParticipationJoined,
		Payload: ParticipationPayload{
			Event:             *e,
			Participant:       participantPayload{Email: participantEmail},
			ParticipantsCount: count,
			Message:           fmt.Sprintf("%s has joined your event: %s", participantEmail, e.Title),
		},
	}
}

func NewParticipationCancelled(e *Event, participantEmail string, count int) Notification {
	return Notification{
		Channel: ParticipationCancelledChannel(e.OrganizerID),
		Kind:    KindParticipationCancelled,
		Payload: ParticipationPayload{
			Event:             *e,
			Participant:       participantPayload{Email: participantEmail},
			ParticipantsCount: count,
		},
	}
}
