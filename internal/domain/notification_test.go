package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *Event {
	return &Event{
		ID:              "e1",
		Title:           "Go Meetup",
		Date:            time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		Location:        "Moscow",
		MaxParticipants: 10,
		OrganizerID:     "u1",
	}
}

func TestNewEventCreated(t *testing.T) {
	n := NewEventCreated(testEvent(), "organizer@example.com")

	assert.Equal(t, PublicEventsChannel, n.Channel)
	assert.Equal(t, KindEventCreated, n.Kind)
	assert.Equal(t, "u1", n.OriginUserID)

	payload, ok := n.Payload.(EventCreatedPayload)
	require.True(t, ok)
	assert.Equal(t, "e1", payload.ID)
	assert.Equal(t, "organizer@example.com", payload.Creator)
}

func TestNewEventDeleted(t *testing.T) {
	n := NewEventDeleted(testEvent())

	assert.Equal(t, PublicEventsChannel, n.Channel)
	assert.Equal(t, KindEventDeleted, n.Kind)
	assert.Empty(t, n.OriginUserID)

	payload, ok := n.Payload.(EventDeletedPayload)
	require.True(t, ok)
	assert.Equal(t, "Go Meetup", payload.Title)
}

func TestNewParticipationJoined(t *testing.T) {
	n := NewParticipationJoined(testEvent(), "participant@example.com", 4)

	assert.Equal(t, "event_participation.u1", n.Channel)
	assert.Equal(t, KindParticipationJoined, n.Kind)

	payload, ok := n.Payload.(ParticipationPayload)
	require.True(t, ok)
	assert.Equal(t, 4, payload.ParticipantsCount)
	assert.Equal(t, "participant@example.com", payload.Participant.Email)
	assert.Equal(t, "participant@example.com has joined your event: Go Meetup", payload.Message)
}

func TestNewParticipationCancelled(t *testing.T) {
	n := NewParticipationCancelled(testEvent(), "participant@example.com", 2)

	assert.Equal(t, "event_participation_cancelled.u1", n.Channel)
	assert.Equal(t, KindParticipationCancelled, n.Kind)

	payload, ok := n.Payload.(ParticipationPayload)
	require.True(t, ok)
	assert.Equal(t, 2, payload.ParticipantsCount)
	assert.Empty(t, payload.Message)
}
