package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/entity"
)

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(conn PgConnection) *ChallengesRepository {
	pingOrDie(conn, "challengesRepo")
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, challenge *entity.Challenge) (*entity.Challenge, error) {
	if challenge == nil {
		return nil, errors.New("challenge is nil")
	}
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	// Only one active challenge per user: the new one supersedes the previous
	_, err = tx.Exec(ctx, `UPDATE challenges SET status = $1, updated_at = NOW() WHERE user_id = $2 AND status = $3;`,
		string(entity.StatusPaused), challenge.UserID, string(entity.StatusActive),
	)
	if err != nil {
		return nil, errors.New("pausing active challenges error: " + err.Error())
	}
	row := tx.QueryRow(ctx, `INSERT INTO challenges (user_id, title, duration, start_date, end_date, scheduled_time, `+
		`habit_sequence, declaration_text, declaration_signature, status) `+
		`VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING `+challengeColumns+`;`,
		challenge.UserID, challenge.Title, challenge.Duration, challenge.StartDate, challenge.EndDate,
		challenge.ScheduledTime, challenge.HabitSequence, challenge.DeclarationText, challenge.DeclarationSignature,
		string(entity.StatusActive),
	)
	created, err := scanChallenge(row)
	if err != nil {
		switch pgErrorCode(err) {
		// Partial unique index on active challenges, concurrent creation won
		case pgUniqueViolation:
			return nil, errorvalues.ErrActiveChallengeExists
		case pgForeignKeyViolation:
			return nil, errorvalues.ErrOwnerNotFound
		}
		return nil, errors.New("creating challenge db error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing challenge error: " + err.Error())
	}
	return created, nil
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = $1;`, id)
	ch, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	return ch, nil
}

func (cr *ChallengesRepository) ListActiveByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE user_id = $1 AND status = $2 `+
		`ORDER BY created_at DESC, id DESC;`, uid, string(entity.StatusActive))
	if err != nil {
		return nil, errors.New("getting active challenges error: " + err.Error())
	}
	defer rows.Close()
	challenges := make([]*entity.Challenge, 0, 1)
	for rows.Next() {
		ch, err := scanChallenge(rows)
		if err != nil {
			return nil, errors.New("unmarshalling challenge error: " + err.Error())
		}
		challenges = append(challenges, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return challenges, nil
}
