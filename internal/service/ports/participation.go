package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type ParticipationRepo interface {
	Join(ctx context.Context, eventID, userID string) (*domain.JoinResult, error)
	Cancel(ctx context.Context, eventID, userID string) (*domain.JoinResult, error)
}
