package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ParticipationService applies join/leave transitions and decides the
// notification side effects. The capacity invariant itself is enforced
// inside the repository transaction; everything after the commit is
// best-effort delivery.
type ParticipationService struct {
	participationRepo ports.ParticipationRepo
	userRepo          ports.UserRepo
	broadcaster       ports.Broadcaster
	mailer            ports.Mailer
	notifier          ports.ParticipationNotifier
	logger            logger.Logger
}

func NewParticipationService(
	participationRepo ports.ParticipationRepo,
	userRepo ports.UserRepo,
	broadcaster ports.Broadcaster,
	mailer ports.Mailer,
	notifier ports.ParticipationNotifier,
	log logger.Logger,
) *ParticipationService {
	return &ParticipationService{
		participationRepo: participationRepo,
		userRepo:          userRepo,
		broadcaster:       broadcaster,
		mailer:            mailer,
		notifier:          notifier,
		logger:            log,
	}
}

// Join admits userID into the event. On success the organizer gets a
// ParticipationJoined broadcast on their private channel, an email is
// enqueued, and a Telegram ping goes out if the organizer linked one.
func (s *ParticipationService) Join(ctx context.Context, eventID, userID string) error {
	res, err := s.participationRepo.Join(ctx, eventID, userID)
	if err != nil {
		return fmt.Errorf("join event: %w", err)
	}

	s.logger.Info("participation joined",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("participants", res.ParticipantsCount),
	)

	// Lookups below feed notifications only; the join is committed.
	participant, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get participant for notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	organizer, err := s.userRepo.GetByID(ctx, res.Event.OrganizerID)
	if err != nil {
		s.logger.Error("failed to get organizer for notification",
			logger.String("organizer_id", res.Event.OrganizerID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	notifyCtx := context.WithoutCancel(ctx)
	go s.publish(notifyCtx, domain.NewParticipationJoined(&res.Event, participant.Email, res.ParticipantsCount))
	s.mailer.SendParticipationNotification(notifyCtx, &res.Event, organizer, participant, res.ParticipantsCount)
	go s.notifier.NotifyParticipationJoined(notifyCtx, organizer, &res.Event, participant.Email, res.ParticipantsCount)

	return nil
}

// Cancel removes the caller's membership edge and tells the organizer.
func (s *ParticipationService) Cancel(ctx context.Context, eventID, userID string) error {
	res, err := s.participationRepo.Cancel(ctx, eventID, userID)
	if err != nil {
		return fmt.Errorf("cancel participation: %w", err)
	}

	s.logger.Info("participation cancelled",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
		logger.Int("participants", res.ParticipantsCount),
	)

	participant, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get participant for notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.publish(
		context.WithoutCancel(ctx),
		domain.NewParticipationCancelled(&res.Event, participant.Email, res.ParticipantsCount),
	)

	return nil
}

func (s *ParticipationService) publish(ctx context.Context, n domain.Notification) {
	if err := s.broadcaster.Publish(ctx, n); err != nil {
		s.logger.Error("failed to publish notification",
			logger.String("channel", n.Channel),
			logger.String("kind", n.Kind),
			logger.String("error", err.Error()),
		)
	}
}
