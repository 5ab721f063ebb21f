package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stpnv0/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const maxFieldLen = 255

type EventService struct {
	repo        ports.EventRepo
	userRepo    ports.UserRepo
	broadcaster ports.Broadcaster
	logger      logger.Logger
	now         func() time.Time
}

func NewEventService(
	repo ports.EventRepo,
	userRepo ports.UserRepo,
	broadcaster ports.Broadcaster,
	log logger.Logger,
) *EventService {
	return &EventService{
		repo:        repo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		logger:      log,
		now:         time.Now,
	}
}

// CreateEvent validates the input, persists the event owned by the
// authenticated organizer and broadcasts EventCreated to the public
// channel. The organizer id always comes from the session, never from
// the request body.
func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	organizer, err := s.userRepo.GetByID(ctx, input.OrganizerID)
	if err != nil {
		return nil, fmt.Errorf("get organizer: %w", err)
	}

	event := &domain.Event{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Description:     input.Description,
		Date:            input.Date,
		Location:        input.Location,
		MaxParticipants: input.MaxParticipants,
		OrganizerID:     organizer.ID,
		Status:          domain.EventStatusActive,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", organizer.ID),
	)

	go s.publish(context.WithoutCancel(ctx), domain.NewEventCreated(event, organizer.Email))

	return event, nil
}

func (s *EventService) List(ctx context.Context, viewerID string) ([]*domain.EventSummary, error) {
	return s.repo.List(ctx, viewerID)
}

// CancelEvent soft-deletes an event on behalf of its organizer. The
// EventDeleted broadcast is published synchronously so subscribers
// learn about it before any in-flight join settles client-side.
func (s *EventService) CancelEvent(ctx context.Context, eventID, callerID string) error {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if event.Status != domain.EventStatusActive {
		return domain.ErrEventNotFound
	}
	if event.OrganizerID != callerID {
		return domain.ErrForbidden
	}

	if err := s.repo.Cancel(ctx, eventID); err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}

	s.logger.Info("event cancelled",
		logger.String("event_id", eventID),
		logger.String("organizer_id", callerID),
	)

	s.publish(ctx, domain.NewEventDeleted(event))

	return nil
}

// publish delivers one broadcast. Failures are logged and swallowed:
// stored state is authoritative, clients re-fetch on reconnect.
func (s *EventService) publish(ctx context.Context, n domain.Notification) {
	if err := s.broadcaster.Publish(ctx, n); err != nil {
		s.logger.Error("failed to publish notification",
			logger.String("channel", n.Channel),
			logger.String("kind", n.Kind),
			logger.String("error", err.Error()),
		)
	}
}

func (s *EventService) validate(input domain.CreateEventInput) error {
	fields := make(map[string]string)

	if input.Title == "" {
		fields["title"] = "The title field is required."
	} else if utf8.RuneCountInString(input.Title) > maxFieldLen {
		fields["title"] = "The title cannot exceed 255 characters."
	}

	if input.Location == "" {
		fields["location"] = "The location field is required."
	} else if utf8.RuneCountInString(input.Location) > maxFieldLen {
		fields["location"] = "The location cannot exceed 255 characters."
	}

	if input.MaxParticipants < 1 {
		fields["max_participants"] = "The maximum participants must be at least 1."
	}

	if input.Date.IsZero() {
		fields["date"] = "The date field is required."
	} else if dayOf(input.Date).Before(dayOf(s.now())) {
		// сравнение по дню, событие сегодня — валидно
		fields["date"] = "The event date must be today or a future date."
	}

	if len(fields) > 0 {
		return &domain.FieldErrors{Fields: fields}
	}
	return nil
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
