package ports

import (
	"context"

	"github.com/stpnv0/EventHub/internal/domain"
)

// Broadcaster publishes a decided notification to its channel. The
// transport owns delivery; no guarantee or backlog replay is assumed.
type Broadcaster interface {
	Publish(ctx context.Context, n domain.Notification) error
}
