package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCheckInByDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCheckInsRepo(mock)
	ch := newChallenge()
	checkIn := completeCheckIn(ch, "2024-01-05")
	testCases := []struct {
		Desc         string
		Error        error
		Expected     *entity.CheckIn
		MockPrepFunc func()
	}{
		{
			Desc:     "found",
			Expected: &checkIn,
			MockPrepFunc: func() {
				mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, "2024-01-05").WillReturnRows(checkInRows(checkIn))
			},
		},
		{
			Desc:     "no check-in yet",
			Expected: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, "2024-01-05").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting check-in by date error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, "2024-01-05").WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := repo.GetByDate(ctx, ch.ID, "2024-01-05")
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.Expected, result)
			}
		})
	}
}

func TestListCheckInsByChallenge(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCheckInsRepo(mock)
	ch := newChallenge()
	history := []entity.CheckIn{completeCheckIn(ch, "2024-01-01"), completeCheckIn(ch, "2024-01-02")}
	t.Run("ascending history", func(t *testing.T) {
		mock.ExpectQuery(listCheckInsQuery).WithArgs(ch.ID).WillReturnRows(checkInRows(history...))
		result, err := repo.ListByChallenge(context.Background(), ch.ID)
		require.NoError(t, err)
		assert.Equal(t, history, result)
	})
	t.Run("empty history", func(t *testing.T) {
		mock.ExpectQuery(listCheckInsQuery).WithArgs(ch.ID).WillReturnRows(checkInRows())
		result, err := repo.ListByChallenge(context.Background(), ch.ID)
		require.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("serialization failure is transient", func(t *testing.T) {
		mock.ExpectQuery(listCheckInsQuery).WithArgs(ch.ID).WillReturnError(&pgconn.PgError{Code: "40001"})
		_, err := repo.ListByChallenge(context.Background(), ch.ID)
		assert.ErrorIs(t, err, errorvalues.ErrTransient)
	})
}

func TestUpsertCheckIn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCheckInsRepo(mock)
	ch := newChallenge()
	date := "2024-01-03"
	incoming := &entity.CheckIn{
		ChallengeID:     ch.ID,
		UserID:          ch.UserID,
		CheckInDate:     date,
		CompletedHabits: ch.HabitSequence,
		TotalHabits:     3,
		IsComplete:      true,
	}
	upsertArgs := []any{ch.ID, ch.UserID, date, ch.HabitSequence, 3, true, false, (*string)(nil), (*string)(nil)}
	saved := completeCheckIn(ch, date)
	history := []entity.CheckIn{completeCheckIn(ch, "2024-01-01"), completeCheckIn(ch, "2024-01-02"), saved}
	reason := "flu"
	emergencyDay := completeCheckIn(ch, date)
	emergencyDay.IsEmergency = true
	emergencyDay.EmergencyReason = &reason
	emergencyDay.CompletedHabits = []string{}
	paused := *ch
	paused.Status = entity.StatusPaused

	testCases := []struct {
		Desc         string
		Error        error
		ErrorIs      error
		Incoming     *entity.CheckIn
		MockPrepFunc func()
	}{
		{
			Desc: "inserted and counters refreshed",
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnRows(challengeRows(ch))
				mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, date).WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(upsertCheckInQuery).WithArgs(upsertArgs...).WillReturnRows(checkInRows(saved))
				mock.ExpectQuery(listCheckInsQuery).WithArgs(ch.ID).WillReturnRows(checkInRows(history...))
				mock.ExpectExec(refreshQuery).WithArgs(3, 3, 3, "active", ch.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
		},
		{
			Desc: "same day resubmitted",
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnRows(challengeRows(ch))
				mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, date).WillReturnRows(checkInRows(saved))
				mock.ExpectQuery(upsertCheckInQuery).WithArgs(upsertArgs...).WillReturnRows(checkInRows(saved))
				mock.ExpectQuery(listCheckInsQuery).WithArgs(ch.ID).WillReturnRows(checkInRows(history...))
				mock.ExpectExec(refreshQuery).WithArgs(3, 3, 3, "active", ch.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
		},
		{
			Desc:    "emergency day is not overwritten",
			ErrorIs: errorvalues.ErrDayAlreadyComplete,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnRows(challengeRows(ch))
				mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, date).WillReturnRows(checkInRows(emergencyDay))
				mock.ExpectRollback()
			},
		},
		{
			Desc:    "complete day is not downgraded",
			ErrorIs: errorvalues.ErrDayAlreadyComplete,
			Incoming: &entity.CheckIn{
				ChallengeID:     ch.ID,
				UserID:          ch.UserID,
				CheckInDate:     date,
				CompletedHabits: []string{"meditate"},
				TotalHabits:     3,
			},
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnRows(challengeRows(ch))
				mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, date).WillReturnRows(checkInRows(saved))
				mock.ExpectRollback()
			},
		},
		{
			Desc:    "challenge not active",
			ErrorIs: errorvalues.ErrChallengeNotActive,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnRows(challengeRows(&paused))
				mock.ExpectRollback()
			},
		},
		{
			Desc:    "challenge not found",
			ErrorIs: errorvalues.ErrChallengeNotFound,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
		},
		{
			Desc:    "deadlock is transient",
			ErrorIs: errorvalues.ErrTransient,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnRows(challengeRows(ch))
				mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, date).WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(upsertCheckInQuery).WithArgs(upsertArgs...).WillReturnError(&pgconn.PgError{Code: "40P01"})
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "counters update error",
			Error: errors.New("updating challenge counters error: db error"),
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnRows(challengeRows(ch))
				mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, date).WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(upsertCheckInQuery).WithArgs(upsertArgs...).WillReturnRows(checkInRows(saved))
				mock.ExpectQuery(listCheckInsQuery).WithArgs(ch.ID).WillReturnRows(checkInRows(history...))
				mock.ExpectExec(refreshQuery).WithArgs(3, 3, 3, "active", ch.ID).WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			in := incoming
			if tc.Incoming != nil {
				in = tc.Incoming
			}
			result, err := repo.Upsert(ctx, in)
			switch {
			case tc.ErrorIs != nil:
				assert.ErrorIs(t, err, tc.ErrorIs)
				assert.Nil(t, result)
			case tc.Error != nil:
				assert.EqualError(t, err, tc.Error.Error())
				assert.Nil(t, result)
			default:
				require.NoError(t, err)
				assert.Equal(t, &saved, result)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCheckInCompletesChallenge(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCheckInsRepo(mock)
	ch := newChallenge()
	ch.Duration = 30
	ch.TotalCheckIns = 29
	history := make([]entity.CheckIn, 0, 30)
	for i := 1; i <= 30; i++ {
		history = append(history, completeCheckIn(ch, fmt.Sprintf("2024-01-%02d", i)))
	}
	last := history[29]
	upsertArgs := []any{ch.ID, ch.UserID, last.CheckInDate, ch.HabitSequence, 3, true, false, (*string)(nil), (*string)(nil)}

	mock.ExpectBegin()
	mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnRows(challengeRows(ch))
	mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, last.CheckInDate).WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(upsertCheckInQuery).WithArgs(upsertArgs...).WillReturnRows(checkInRows(last))
	mock.ExpectQuery(listCheckInsQuery).WithArgs(ch.ID).WillReturnRows(checkInRows(history...))
	mock.ExpectExec(refreshQuery).WithArgs(30, 30, 30, "completed", ch.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	_, err = repo.Upsert(context.Background(), &entity.CheckIn{
		ChallengeID:     ch.ID,
		UserID:          ch.UserID,
		CheckInDate:     last.CheckInDate,
		CompletedHabits: ch.HabitSequence,
		TotalHabits:     3,
		IsComplete:      true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertCheckInKeepsCompletedDays(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewCheckInsRepo(mock)
	ch := newChallenge()
	date := "2024-01-03"
	saved := completeCheckIn(ch, date)
	history := []entity.CheckIn{completeCheckIn(ch, "2024-01-01"), completeCheckIn(ch, "2024-01-02"), saved}
	notes := "felt great"
	withNotes := saved
	withNotes.Notes = &notes
	ctx := context.Background()

	// day recorded complete, counters reach 3
	mock.ExpectBegin()
	mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnRows(challengeRows(ch))
	mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, date).WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(upsertCheckInQuery).
		WithArgs(ch.ID, ch.UserID, date, ch.HabitSequence, 3, true, false, (*string)(nil), (*string)(nil)).
		WillReturnRows(checkInRows(saved))
	mock.ExpectQuery(listCheckInsQuery).WithArgs(ch.ID).WillReturnRows(checkInRows(history...))
	mock.ExpectExec(refreshQuery).WithArgs(3, 3, 3, "active", ch.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	_, err = repo.Upsert(ctx, &entity.CheckIn{
		ChallengeID:     ch.ID,
		UserID:          ch.UserID,
		CheckInDate:     date,
		CompletedHabits: ch.HabitSequence,
		TotalHabits:     3,
		IsComplete:      true,
	})
	require.NoError(t, err)

	// partial resubmit is refused before anything is written, total stays 3
	mock.ExpectBegin()
	mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnRows(challengeRows(ch))
	mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, date).WillReturnRows(checkInRows(saved))
	mock.ExpectRollback()
	_, err = repo.Upsert(ctx, &entity.CheckIn{
		ChallengeID:     ch.ID,
		UserID:          ch.UserID,
		CheckInDate:     date,
		CompletedHabits: []string{"meditate"},
		TotalHabits:     3,
	})
	assert.ErrorIs(t, err, errorvalues.ErrDayAlreadyComplete)

	// complete resubmit with notes is still accepted
	mock.ExpectBegin()
	mock.ExpectQuery(lockChallengeQuery).WithArgs(ch.ID).WillReturnRows(challengeRows(ch))
	mock.ExpectQuery(checkInByDateQuery).WithArgs(ch.ID, date).WillReturnRows(checkInRows(saved))
	mock.ExpectQuery(upsertCheckInQuery).
		WithArgs(ch.ID, ch.UserID, date, ch.HabitSequence, 3, true, false, (*string)(nil), &notes).
		WillReturnRows(checkInRows(withNotes))
	mock.ExpectQuery(listCheckInsQuery).WithArgs(ch.ID).WillReturnRows(checkInRows(history...))
	mock.ExpectExec(refreshQuery).WithArgs(3, 3, 3, "active", ch.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	result, err := repo.Upsert(ctx, &entity.CheckIn{
		ChallengeID:     ch.ID,
		UserID:          ch.UserID,
		CheckInDate:     date,
		CompletedHabits: ch.HabitSequence,
		TotalHabits:     3,
		IsComplete:      true,
		Notes:           &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, &notes, result.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
