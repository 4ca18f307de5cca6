package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/entity"
)

type EmergencyRepository struct {
	conn PgConnection
}

func NewEmergencyRepo(conn PgConnection) *EmergencyRepository {
	pingOrDie(conn, "emergencyRepo")
	return &EmergencyRepository{
		conn: conn,
	}
}

// Use checks every precondition against the locked row, never against state read earlier by the caller.
// A replay of an already committed call fails with ErrDayAlreadyComplete and consumes nothing
func (repo *EmergencyRepository) Use(ctx context.Context, challengeID, userID uuid.UUID, reason, date string) (*entity.CheckIn, int, error) {
	tx, err := repo.conn.Begin(ctx)
	if err != nil {
		return nil, 0, errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	ch, err := lockChallenge(ctx, tx, challengeID)
	if err != nil {
		return nil, 0, err
	}
	switch {
	case ch.UserID != userID:
		return nil, 0, errorvalues.ErrWrongOwner
	case ch.Status != entity.StatusActive:
		return nil, 0, errorvalues.ErrChallengeNotActive
	case ch.EmergencyUses >= entity.MaxEmergencyUses:
		return nil, 0, errorvalues.ErrEmergencyExhausted
	}
	existing, err := getCheckIn(ctx, tx, challengeID, date)
	if err != nil {
		return nil, 0, err
	}
	if existing != nil && existing.IsComplete {
		return nil, 0, errorvalues.ErrDayAlreadyComplete
	}

	var uses int
	row := tx.QueryRow(ctx, `UPDATE challenges SET emergency_uses = emergency_uses + 1, updated_at = NOW() `+
		`WHERE id = $1 AND emergency_uses < $2 RETURNING emergency_uses;`, challengeID, entity.MaxEmergencyUses)
	if err := row.Scan(&uses); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrorCode(err) == pgCheckViolation {
			return nil, 0, errorvalues.ErrEmergencyExhausted
		}
		return nil, 0, errors.New("incrementing emergency uses error: " + err.Error())
	}
	ch.EmergencyUses = uses

	checkIn := &entity.CheckIn{
		ChallengeID:     challengeID,
		UserID:          userID,
		CheckInDate:     date,
		CompletedHabits: []string{},
		TotalHabits:     len(ch.HabitSequence),
		IsComplete:      true,
		IsEmergency:     true,
		EmergencyReason: &reason,
	}
	if existing != nil {
		checkIn.Notes = existing.Notes
	}
	saved, err := upsertCheckIn(ctx, tx, checkIn)
	if err != nil {
		return nil, 0, err
	}
	if err = refreshCounters(ctx, tx, ch, date); err != nil {
		return nil, 0, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, 0, errors.New("committing emergency use error: " + err.Error())
	}
	return saved, entity.MaxEmergencyUses - uses, nil
}
