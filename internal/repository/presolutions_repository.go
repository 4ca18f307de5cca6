package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/pkg/entity"
)

type PresolutionsRepository struct {
	conn PgConnection
}

func NewPresolutionsRepo(conn PgConnection) *PresolutionsRepository {
	pingOrDie(conn, "presolutionsRepo")
	return &PresolutionsRepository{
		conn: conn,
	}
}

func (pr *PresolutionsRepository) CreateBatch(ctx context.Context, challengeID uuid.UUID, presolutions []entity.Presolution) ([]entity.Presolution, error) {
	if len(presolutions) == 0 {
		return []entity.Presolution{}, nil
	}
	tx, err := pr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	created := make([]entity.Presolution, 0, len(presolutions))
	for _, p := range presolutions {
		saved := entity.Presolution{
			ChallengeID:     challengeID,
			Obstacle:        p.Obstacle,
			MinimumPractice: p.MinimumPractice,
		}
		row := tx.QueryRow(ctx, `INSERT INTO presolutions (challenge_id, obstacle, minimum_practice) VALUES ($1, $2, $3) `+
			`RETURNING id, created_at;`, challengeID, p.Obstacle, p.MinimumPractice)
		if err := row.Scan(&saved.ID, &saved.CreatedAt); err != nil {
			if pgErrorCode(err) == pgForeignKeyViolation {
				return nil, errorvalues.ErrChallengeNotFound
			}
			return nil, errors.New("creating presolution error: " + err.Error())
		}
		created = append(created, saved)
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing presolutions error: " + err.Error())
	}
	return created, nil
}

func (pr *PresolutionsRepository) ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]entity.Presolution, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, challenge_id, obstacle, minimum_practice, created_at FROM presolutions `+
		`WHERE challenge_id = $1 ORDER BY created_at ASC, id ASC;`, challengeID)
	if err != nil {
		return nil, errors.New("getting presolutions error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Presolution, 0)
	for rows.Next() {
		var p entity.Presolution
		if err := rows.Scan(&p.ID, &p.ChallengeID, &p.Obstacle, &p.MinimumPractice, &p.CreatedAt); err != nil {
			return nil, errors.New("presolution row parsing error: " + err.Error())
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected presolution rows error: " + err.Error())
	}
	return result, nil
}
