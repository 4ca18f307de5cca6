package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/entity"
)

type CheckInsRepository struct {
	conn PgConnection
}

func NewCheckInsRepo(conn PgConnection) *CheckInsRepository {
	pingOrDie(conn, "checkInsRepo")
	return &CheckInsRepository{
		conn: conn,
	}
}

func (repo *CheckInsRepository) GetByDate(ctx context.Context, challengeID uuid.UUID, date string) (*entity.CheckIn, error) {
	return getCheckIn(ctx, repo.conn, challengeID, date)
}

func (repo *CheckInsRepository) ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]entity.CheckIn, error) {
	return listCheckIns(ctx, repo.conn, challengeID)
}

// Upsert is idempotent: the same check-in written twice leaves one identical row.
// A complete day stays complete: it is neither downgraded nor replaced by a habit
// check-in when it was covered by the emergency protocol
func (repo *CheckInsRepository) Upsert(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error) {
	if checkIn == nil {
		return nil, errors.New("check-in is nil")
	}
	tx, err := repo.conn.Begin(ctx)
	if err != nil {
		return nil, transientOr(err, "beginning transaction error")
	}
	defer tx.Rollback(ctx)

	ch, err := lockChallenge(ctx, tx, checkIn.ChallengeID)
	if err != nil {
		return nil, err
	}
	if ch.Status != entity.StatusActive {
		return nil, errorvalues.ErrChallengeNotActive
	}
	existing, err := getCheckIn(ctx, tx, checkIn.ChallengeID, checkIn.CheckInDate)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.IsEmergency && !checkIn.IsEmergency {
		return nil, errorvalues.ErrDayAlreadyComplete
	}
	if existing != nil && existing.IsComplete && !checkIn.IsComplete {
		return nil, errorvalues.ErrDayAlreadyComplete
	}
	saved, err := upsertCheckIn(ctx, tx, checkIn)
	if err != nil {
		return nil, err
	}
	if err = refreshCounters(ctx, tx, ch, checkIn.CheckInDate); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, transientOr(err, "committing check-in error")
	}
	return saved, nil
}
