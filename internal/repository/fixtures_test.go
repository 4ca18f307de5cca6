package repository_test

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
)

var (
	challengeCols = []string{"id", "user_id", "title", "duration", "start_date", "end_date", "scheduled_time",
		"habit_sequence", "declaration_text", "declaration_signature", "status", "current_streak", "longest_streak",
		"total_checkins", "emergency_uses", "created_at", "updated_at"}
	checkInCols = []string{"id", "challenge_id", "user_id", "check_in_date", "completed_habits", "total_habits",
		"is_complete", "is_emergency", "emergency_reason", "notes", "created_at", "updated_at"}

	lockChallengeQuery = regexp.QuoteMeta(`FROM challenges WHERE id = $1 FOR UPDATE;`)
	checkInByDateQuery = regexp.QuoteMeta(`FROM check_ins WHERE challenge_id = $1 AND check_in_date = $2;`)
	listCheckInsQuery  = regexp.QuoteMeta(`FROM check_ins WHERE challenge_id = $1 ORDER BY check_in_date ASC;`)
	upsertCheckInQuery = regexp.QuoteMeta(`INSERT INTO check_ins (challenge_id, user_id, check_in_date, completed_habits, total_habits, is_complete, is_emergency, emergency_reason, notes) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (challenge_id, check_in_date) DO UPDATE`)
	refreshQuery       = regexp.QuoteMeta(`UPDATE challenges SET current_streak = $1, longest_streak = $2, total_checkins = $3, status = $4, updated_at = NOW() WHERE id = $5;`)
)

func newChallenge() *entity.Challenge {
	signature := "J. Doe"
	now := time.Now()
	return &entity.Challenge{
		ID:                   uuid.New(),
		UserID:               uuid.New(),
		Title:                "66 days of focus",
		Duration:             66,
		StartDate:            "2024-01-01",
		EndDate:              "2024-03-07",
		ScheduledTime:        "06:30",
		HabitSequence:        []string{"meditate", "read", "exercise"},
		DeclarationText:      "I will show up every day",
		DeclarationSignature: &signature,
		Status:               entity.StatusActive,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func challengeRows(challenges ...*entity.Challenge) *pgxmock.Rows {
	rows := pgxmock.NewRows(challengeCols)
	for _, ch := range challenges {
		rows.AddRow(ch.ID, ch.UserID, ch.Title, ch.Duration, ch.StartDate, ch.EndDate, ch.ScheduledTime,
			ch.HabitSequence, ch.DeclarationText, ch.DeclarationSignature, string(ch.Status), ch.CurrentStreak,
			ch.LongestStreak, ch.TotalCheckIns, ch.EmergencyUses, ch.CreatedAt, ch.UpdatedAt)
	}
	return rows
}

func checkInRows(checkIns ...entity.CheckIn) *pgxmock.Rows {
	rows := pgxmock.NewRows(checkInCols)
	for _, c := range checkIns {
		rows.AddRow(c.ID, c.ChallengeID, c.UserID, c.CheckInDate, c.CompletedHabits, c.TotalHabits,
			c.IsComplete, c.IsEmergency, c.EmergencyReason, c.Notes, c.CreatedAt, c.UpdatedAt)
	}
	return rows
}

func completeCheckIn(ch *entity.Challenge, date string) entity.CheckIn {
	now := time.Now()
	return entity.CheckIn{
		ID:              uuid.New(),
		ChallengeID:     ch.ID,
		UserID:          ch.UserID,
		CheckInDate:     date,
		CompletedHabits: ch.HabitSequence,
		TotalHabits:     len(ch.HabitSequence),
		IsComplete:      true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
