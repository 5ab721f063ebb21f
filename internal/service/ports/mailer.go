package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

// Mailer enqueues the organizer email for a successful join. Delivery
// is best-effort and never affects the outcome of the join itself.
type Mailer interface {
	SendParticipationNotification(ctx context.Context, event *domain.Event, organizer, participant *domain.User, participants int)
}
