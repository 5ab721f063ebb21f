package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
)

// ParticipationRepository does all of its work inside explicit
// transactions, so statements are not individually retried.
type ParticipationRepository struct {
	db *dbpg.DB
}

func NewParticipationRepo(db *dbpg.DB) *ParticipationRepository {
	return &ParticipationRepository{db: db}
}

// Join admits userID into an event inside a single transaction. The
// event row is locked for the duration, so two concurrent joins are
// serialized and the capacity bound holds. Precondition order is
// fixed: missing/cancelled event, self-participation, capacity,
// already joined.
func (r *ParticipationRepository) Join(ctx context.Context, eventID, userID string) (*domain.JoinResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	e, err := lockEvent(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	if e.OrganizerID == userID {
		return nil, domain.ErrSelfParticipation
	}

	// Проверяем наличие мест под блокировкой
	var count int
	countQuery := `SELECT COUNT(*) FROM participations WHERE event_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, eventID).Scan(&count); err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}
	if count >= e.MaxParticipants {
		return nil, domain.ErrEventFull
	}

	insertQuery := `INSERT INTO participations (event_id, user_id, created_at)
					VALUES ($1, $2, $3)`
	if _, err = tx.ExecContext(ctx, insertQuery, eventID, userID, time.Now().UTC()); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyParticipating
		}
		return nil, fmt.Errorf("insert participation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit join: %w", err)
	}

	return &domain.JoinResult{Event: *e, ParticipantsCount: count + 1}, nil
}

// Cancel removes the membership edge and frees the capacity slot.
func (r *ParticipationRepository) Cancel(ctx context.Context, eventID, userID string) (*domain.JoinResult, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	e, err := lockEvent(ctx, tx, eventID)
	if err != nil {
		return nil, err
	}

	deleteQuery := `DELETE FROM participations WHERE event_id = $1 AND user_id = $2`
	res, err := tx.ExecContext(ctx, deleteQuery, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("delete participation: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("participation rows affected: %w", err)
	}
	if rows == 0 {
		return nil, domain.ErrNotParticipating
	}

	var count int
	countQuery := `SELECT COUNT(*) FROM participations WHERE event_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, eventID).Scan(&count); err != nil {
		return nil, fmt.Errorf("count participants: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel: %w", err)
	}

	return &domain.JoinResult{Event: *e, ParticipantsCount: count}, nil
}

// lockEvent fetches an active event FOR UPDATE. Cancelled events are
// indistinguishable from missing ones for join/leave.
func lockEvent(ctx context.Context, tx *sql.Tx, eventID string) (*domain.Event, error) {
	query := `SELECT id, title, description, event_date, location, max_participants, organizer_id, status, created_at, updated_at
			  FROM events
			  WHERE id = $1
			  FOR UPDATE`

	var e domain.Event
	err := tx.QueryRowContext(ctx, query, eventID).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location,
		&e.MaxParticipants, &e.OrganizerID, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}
	if e.Status != domain.EventStatusActive {
		return nil, domain.ErrEventNotFound
	}

	return &e, nil
}
