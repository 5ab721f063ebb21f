package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type ParticipationNotifier interface {
	NotifyParticipationJoined(ctx context.Context, organizer *domain.User, event *domain.Event, participantEmail string, participants int)
}
