package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/progress"
	"github.com/limbo/accountability/pkg/entity"
)

// Dates are selected as text so they never pass through time.Time and a timezone
const challengeColumns = `id, user_id, title, duration, start_date::text, end_date::text, scheduled_time, habit_sequence, ` +
	`declaration_text, declaration_signature, status, current_streak, longest_streak, total_checkins, emergency_uses, ` +
	`created_at, updated_at`

const checkInColumns = `id, challenge_id, user_id, check_in_date::text, completed_habits, total_habits, is_complete, ` +
	`is_emergency, emergency_reason, notes, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChallenge(row rowScanner) (*entity.Challenge, error) {
	var ch entity.Challenge
	var status string
	err := row.Scan(&ch.ID, &ch.UserID, &ch.Title, &ch.Duration, &ch.StartDate, &ch.EndDate, &ch.ScheduledTime,
		&ch.HabitSequence, &ch.DeclarationText, &ch.DeclarationSignature, &status, &ch.CurrentStreak,
		&ch.LongestStreak, &ch.TotalCheckIns, &ch.EmergencyUses, &ch.CreatedAt, &ch.UpdatedAt)
	if err != nil {
		return nil, err
	}
	ch.Status = entity.ChallengeStatus(status)
	return &ch, nil
}

func scanCheckIn(row rowScanner) (*entity.CheckIn, error) {
	var c entity.CheckIn
	err := row.Scan(&c.ID, &c.ChallengeID, &c.UserID, &c.CheckInDate, &c.CompletedHabits, &c.TotalHabits,
		&c.IsComplete, &c.IsEmergency, &c.EmergencyReason, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if c.CompletedHabits == nil {
		c.CompletedHabits = []string{}
	}
	return &c, nil
}

// lockChallenge re-reads committed challenge state and holds its row until tx ends.
// Every ledger write of a challenge goes through it, so writes of one challenge are serialized
func lockChallenge(ctx context.Context, tx querier, id uuid.UUID) (*entity.Challenge, error) {
	row := tx.QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = $1 FOR UPDATE;`, id)
	ch, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, transientOr(err, "locking challenge error")
	}
	return ch, nil
}

func getCheckIn(ctx context.Context, q querier, challengeID uuid.UUID, date string) (*entity.CheckIn, error) {
	row := q.QueryRow(ctx, `SELECT `+checkInColumns+` FROM check_ins WHERE challenge_id = $1 AND check_in_date = $2;`,
		challengeID, date)
	c, err := scanCheckIn(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, transientOr(err, "getting check-in by date error")
	}
	return c, nil
}

func listCheckIns(ctx context.Context, q querier, challengeID uuid.UUID) ([]entity.CheckIn, error) {
	rows, err := q.Query(ctx, `SELECT `+checkInColumns+` FROM check_ins WHERE challenge_id = $1 ORDER BY check_in_date ASC;`,
		challengeID)
	if err != nil {
		return nil, transientOr(err, "listing check-ins error")
	}
	defer rows.Close()
	result := make([]entity.CheckIn, 0)
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, errors.New("check-in row parsing error: " + err.Error())
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, transientOr(err, "unexpected check-in rows error")
	}
	return result, nil
}

func upsertCheckIn(ctx context.Context, q querier, c *entity.CheckIn) (*entity.CheckIn, error) {
	completed := c.CompletedHabits
	if completed == nil {
		completed = []string{}
	}
	row := q.QueryRow(ctx, `INSERT INTO check_ins (challenge_id, user_id, check_in_date, completed_habits, total_habits, `+
		`is_complete, is_emergency, emergency_reason, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) `+
		`ON CONFLICT (challenge_id, check_in_date) DO UPDATE SET completed_habits = EXCLUDED.completed_habits, `+
		`total_habits = EXCLUDED.total_habits, is_complete = EXCLUDED.is_complete, is_emergency = EXCLUDED.is_emergency, `+
		`emergency_reason = EXCLUDED.emergency_reason, notes = EXCLUDED.notes, updated_at = NOW() `+
		`RETURNING `+checkInColumns+`;`,
		c.ChallengeID, c.UserID, c.CheckInDate, completed, c.TotalHabits,
		c.IsComplete, c.IsEmergency, c.EmergencyReason, c.Notes,
	)
	saved, err := scanCheckIn(row)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, transientOr(err, "upserting check-in error")
	}
	return saved, nil
}

// refreshCounters recomputes cached counters of ch from its history inside the writing transaction.
// The ledger stays the source of truth, counters never drift from it
func refreshCounters(ctx context.Context, tx querier, ch *entity.Challenge, today string) error {
	history, err := listCheckIns(ctx, tx, ch.ID)
	if err != nil {
		return err
	}
	p, err := progress.Calculate(ch, history, today)
	if err != nil {
		return errors.New("calculating progress error: " + err.Error())
	}
	status := ch.Status
	if p.IsChallengeDone && status == entity.StatusActive {
		status = entity.StatusCompleted
	}
	_, err = tx.Exec(ctx, `UPDATE challenges SET current_streak = $1, longest_streak = $2, total_checkins = $3, `+
		`status = $4, updated_at = NOW() WHERE id = $5;`,
		p.CurrentStreak, p.LongestStreak, p.TotalCompletedDays, string(status), ch.ID,
	)
	if err != nil {
		return transientOr(err, "updating challenge counters error")
	}
	ch.CurrentStreak = p.CurrentStreak
	ch.LongestStreak = p.LongestStreak
	ch.TotalCheckIns = p.TotalCompletedDays
	ch.Status = status
	return nil
}
