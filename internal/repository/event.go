package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, event_date, location, max_participants, organizer_id, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.Location,
		e.MaxParticipants, e.OrganizerID, e.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	e.CreatedAt, e.UpdatedAt = now, now

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, description, event_date, location, max_participants, organizer_id, status, created_at, updated_at
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location,
		&e.MaxParticipants, &e.OrganizerID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

// List returns active events newest-first, each annotated with the
// organizer email, the active participant count and whether viewerID
// holds a membership edge. Only the viewer's own edge is consulted.
func (r *EventRepository) List(ctx context.Context, viewerID string) ([]*domain.EventSummary, error) {
	query := `SELECT e.id, e.title, e.description, e.event_date, e.location, e.max_participants,
					 e.organizer_id, e.status, e.created_at, e.updated_at,
					 u.email,
					 COUNT(p.user_id),
					 COALESCE(BOOL_OR(p.user_id = $1), FALSE)
			  FROM events e
			  JOIN users u ON u.id = e.organizer_id
			  LEFT JOIN participations p ON p.event_id = e.id
			  WHERE e.status = $2
			  GROUP BY e.id, u.email
			  ORDER BY e.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, viewerID, domain.EventStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventSummary
	for rows.Next() {
		var s domain.EventSummary
		if err = rows.Scan(
			&s.Event.ID, &s.Event.Title, &s.Event.Description, &s.Event.Date, &s.Event.Location,
			&s.Event.MaxParticipants, &s.Event.OrganizerID, &s.Event.Status,
			&s.Event.CreatedAt, &s.Event.UpdatedAt,
			&s.OrganizerEmail, &s.ParticipantsCount, &s.IsParticipating,
		); err != nil {
			return nil, fmt.Errorf("scan event summary: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

// Cancel soft-deletes an event. Membership edges stay in place for
// audit; they become unreachable through the active-only read paths.
func (r *EventRepository) Cancel(ctx context.Context, id string) error {
	query := `UPDATE events
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.EventStatusCancelled, domain.EventStatusActive)
	if err != nil {
		return fmt.Errorf("cancel event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
