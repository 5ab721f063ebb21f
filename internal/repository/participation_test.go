package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newParticipationRepoMock(t *testing.T) (*ParticipationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewParticipationRepo(&dbpg.DB{Master: db}), mock
}

func lockedEventRows(organizerID string, maxParticipants int, status domain.EventStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "title", "description", "event_date", "location",
		"max_participants", "organizer_id", "status", "created_at", "updated_at",
	}).AddRow("e1", "Meetup", "", now, "Moscow", maxParticipants, organizerID, string(status), now, now)
}

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func expectJoinTx(mock sqlmock.Sqlmock, organizerID string, max, current int) {
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("e1").
		WillReturnRows(lockedEventRows(organizerID, max, domain.EventStatusActive))
	mock.ExpectQuery("SELECT COUNT").WithArgs("e1").WillReturnRows(countRows(current))
	mock.ExpectExec("INSERT INTO participations").
		WithArgs("e1", "u1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

func TestParticipationRepo_Join_Success(t *testing.T) {
	repo, mock := newParticipationRepoMock(t)
	expectJoinTx(mock, "org1", 5, 3)

	res, err := repo.Join(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, 4, res.ParticipantsCount)
	assert.Equal(t, "org1", res.Event.OrganizerID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepo_Join_EventNotFound(t *testing.T) {
	repo, mock := newParticipationRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("e1").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Join(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepo_Join_CancelledEvent(t *testing.T) {
	// Cancelled reads as missing; the transaction ends at the lock.
	repo, mock := newParticipationRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("e1").
		WillReturnRows(lockedEventRows("org1", 5, domain.EventStatusCancelled))
	mock.ExpectRollback()

	_, err := repo.Join(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepo_Join_SelfParticipation(t *testing.T) {
	// The organizer check fires before the capacity count runs.
	repo, mock := newParticipationRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("e1").
		WillReturnRows(lockedEventRows("u1", 5, domain.EventStatusActive))
	mock.ExpectRollback()

	_, err := repo.Join(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrSelfParticipation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepo_Join_EventFull(t *testing.T) {
	// At capacity nothing is inserted.
	repo, mock := newParticipationRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("e1").
		WillReturnRows(lockedEventRows("org1", 5, domain.EventStatusActive))
	mock.ExpectQuery("SELECT COUNT").WithArgs("e1").WillReturnRows(countRows(5))
	mock.ExpectRollback()

	_, err := repo.Join(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrEventFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepo_Join_AlreadyParticipating(t *testing.T) {
	repo, mock := newParticipationRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("e1").
		WillReturnRows(lockedEventRows("org1", 5, domain.EventStatusActive))
	mock.ExpectQuery("SELECT COUNT").WithArgs("e1").WillReturnRows(countRows(3))
	mock.ExpectExec("INSERT INTO participations").
		WithArgs("e1", "u1", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err := repo.Join(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrAlreadyParticipating)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepo_Cancel_Success(t *testing.T) {
	repo, mock := newParticipationRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("e1").
		WillReturnRows(lockedEventRows("org1", 5, domain.EventStatusActive))
	mock.ExpectExec("DELETE FROM participations").WithArgs("e1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT").WithArgs("e1").WillReturnRows(countRows(2))
	mock.ExpectCommit()

	res, err := repo.Cancel(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, 2, res.ParticipantsCount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepo_Cancel_NotParticipating(t *testing.T) {
	repo, mock := newParticipationRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("e1").
		WillReturnRows(lockedEventRows("org1", 5, domain.EventStatusActive))
	mock.ExpectExec("DELETE FROM participations").WithArgs("e1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Cancel(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrNotParticipating)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationRepo_CancelFreesSlotForRejoin(t *testing.T) {
	// Leaving a full event releases the slot; the same user joins
	// again right away.
	repo, mock := newParticipationRepoMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs("e1").
		WillReturnRows(lockedEventRows("org1", 5, domain.EventStatusActive))
	mock.ExpectExec("DELETE FROM participations").WithArgs("e1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT COUNT").WithArgs("e1").WillReturnRows(countRows(4))
	mock.ExpectCommit()

	expectJoinTx(mock, "org1", 5, 4)

	left, err := repo.Cancel(context.Background(), "e1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 4, left.ParticipantsCount)

	rejoined, err := repo.Join(context.Background(), "e1", "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, rejoined.ParticipantsCount)

	require.NoError(t, mock.ExpectationsWereMet())
}
