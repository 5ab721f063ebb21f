package dispatch

import (
	"context"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/mailer"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Dispatcher drains the mail queue in the background. A join enqueues
// the organizer email and returns immediately; delivery failures are
// logged and never reach the caller.
type Dispatcher struct {
	queue    chan mailer.Message
	sender   sender
	strategy retry.Strategy
	logger   logger.Logger
}

func New(s sender, queueSize int, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		queue:  make(chan mailer.Message, queueSize),
		sender: s,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    2 * time.Second,
			Backoff:  2,
		},
		logger: log,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.Info("mail dispatcher started",
		logger.Int("queue_size", cap(d.queue)),
	)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("mail dispatcher stopped")
			return
		case msg := <-d.queue:
			d.deliver(ctx, msg)
		}
	}
}

// SendParticipationNotification implements ports.Mailer. A full queue
// drops the message: mail is best-effort by contract.
func (d *Dispatcher) SendParticipationNotification(
	ctx context.Context,
	event *domain.Event,
	organizer, participant *domain.User,
	participants int,
) {
	msg := mailer.NewParticipationMessage(event, organizer, participant, participants)

	select {
	case d.queue <- msg:
	default:
		d.logger.Error("mail queue full, dropping message",
			logger.String("to", msg.To),
			logger.String("subject", msg.Subject),
		)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg mailer.Message) {
	err := retry.Do(func() error {
		return d.sender.Send(ctx, msg)
	}, d.strategy)
	if err != nil {
		d.logger.Error("failed to send mail",
			logger.String("to", msg.To),
			logger.String("subject", msg.Subject),
			logger.String("error", err.Error()),
		)
		return
	}

	d.logger.Debug("mail sent", logger.String("to", msg.To))
}
