package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, viewerID string) ([]*domain.EventSummary, error)
	Cancel(ctx context.Context, id string) error
}
