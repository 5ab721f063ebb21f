package mailer

import (
	"fmt"

	"github.com/stpnv0/EventHub/internal/domain"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// NewParticipationMessage builds the organizer email for one join.
func NewParticipationMessage(event *domain.Event, organizer, participant *domain.User, participants int) Message {
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"A new participant has joined your event!\n\n"+
			"Event Details\n"+
			"- Title: %s\n"+
			"- Date: %s\n"+
			"- Location: %s\n\n"+
			"Participant Details\n"+
			"- Email: %s\n"+
			"- Current Participants: %d/%d\n\n"+
			"Thanks,\nEventHub",
		organizer.Email,
		event.Title,
		event.Date.Format("January 2, 2006, 3:04 pm"),
		event.Location,
		participant.Email,
		participants, event.MaxParticipants,
	)

	return Message{
		To:      organizer.Email,
		Subject: fmt.Sprintf("New Participant in %s", event.Title),
		Body:    body,
	}
}
