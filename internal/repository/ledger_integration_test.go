package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/progress"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestLedgerIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	cfg, userID := setupLedgerTestDB(t)
	pool := repository.NewPool(cfg)
	challenges := repository.NewChallengesRepo(pool)
	checkIns := repository.NewCheckInsRepo(pool)
	emergency := repository.NewEmergencyRepo(pool)
	ctx := context.Background()

	newActive := func(t *testing.T, title string) *entity.Challenge {
		ch, err := challenges.Create(ctx, &entity.Challenge{
			UserID:          userID,
			Title:           title,
			Duration:        30,
			StartDate:       "2024-01-01",
			EndDate:         "2024-01-31",
			HabitSequence:   []string{"read", "walk"},
			DeclarationText: "every day",
		})
		require.NoError(t, err)
		return ch
	}

	t.Run("new challenge pauses previous", func(t *testing.T) {
		first := newActive(t, "first")
		second := newActive(t, "second")
		active, err := challenges.ListActiveByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, second.ID, active[0].ID)
		paused, err := challenges.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPaused, paused.Status)
	})

	t.Run("check-in upsert is idempotent", func(t *testing.T) {
		ch := newActive(t, "idempotent")
		checkIn := &entity.CheckIn{
			ChallengeID:     ch.ID,
			UserID:          userID,
			CheckInDate:     "2024-01-01",
			CompletedHabits: []string{"read", "walk"},
			TotalHabits:     2,
			IsComplete:      true,
		}
		for range 2 {
			_, err := checkIns.Upsert(ctx, checkIn)
			require.NoError(t, err)
		}
		history, err := checkIns.ListByChallenge(ctx, ch.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "2024-01-01", history[0].CheckInDate)
		stored, err := challenges.GetByID(ctx, ch.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.TotalCheckIns)
		assert.Equal(t, 1, stored.CurrentStreak)
	})

	t.Run("completed days never drop", func(t *testing.T) {
		ch := newActive(t, "monotonic")
		steps := []struct {
			date      string
			completed []string
			rejected  bool
		}{
			{date: "2024-01-01", completed: []string{"read", "walk"}},
			{date: "2024-01-02", completed: []string{"read"}},
			{date: "2024-01-02", completed: []string{"read", "walk"}},
			{date: "2024-01-02", completed: []string{"walk"}, rejected: true},
			{date: "2024-01-01", completed: []string{}, rejected: true},
			{date: "2024-01-03", completed: []string{"read"}},
		}
		prevTotal, prevStored := 0, 0
		for _, step := range steps {
			_, err := checkIns.Upsert(ctx, &entity.CheckIn{
				ChallengeID:     ch.ID,
				UserID:          userID,
				CheckInDate:     step.date,
				CompletedHabits: step.completed,
				TotalHabits:     2,
				IsComplete:      len(step.completed) == 2,
			})
			if step.rejected {
				assert.ErrorIs(t, err, errorvalues.ErrDayAlreadyComplete, step.date)
			} else {
				require.NoError(t, err, step.date)
			}
			stored, err := challenges.GetByID(ctx, ch.ID)
			require.NoError(t, err)
			history, err := checkIns.ListByChallenge(ctx, ch.ID)
			require.NoError(t, err)
			p, err := progress.Calculate(stored, history, "2024-01-03")
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p.TotalCompletedDays, prevTotal, step.date)
			assert.GreaterOrEqual(t, stored.TotalCheckIns, prevStored, step.date)
			prevTotal, prevStored = p.TotalCompletedDays, stored.TotalCheckIns
		}
		assert.Equal(t, 2, prevTotal)
		assert.Equal(t, 2, prevStored)
	})

	t.Run("emergency uses are bounded", func(t *testing.T) {
		ch := newActive(t, "bounded")
		for i := 1; i <= entity.MaxEmergencyUses; i++ {
			_, remaining, err := emergency.Use(ctx, ch.ID, userID, "sick", fmt.Sprintf("2024-01-%02d", i))
			require.NoError(t, err)
			assert.Equal(t, entity.MaxEmergencyUses-i, remaining)
		}
		_, _, err := emergency.Use(ctx, ch.ID, userID, "sick", "2024-01-04")
		assert.ErrorIs(t, err, errorvalues.ErrEmergencyExhausted)
		stored, err := challenges.GetByID(ctx, ch.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.MaxEmergencyUses, stored.EmergencyUses)
		assert.Equal(t, 3, stored.TotalCheckIns)
	})

	t.Run("concurrent emergency uses", func(t *testing.T) {
		ch := newActive(t, "concurrent")
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)
		for i := 1; i <= 6; i++ {
			wg.Add(1)
			go func(day int) {
				defer wg.Done()
				_, _, err := emergency.Use(ctx, ch.ID, userID, "storm", fmt.Sprintf("2024-01-%02d", day))
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}(i)
		}
		wg.Wait()
		assert.Equal(t, entity.MaxEmergencyUses, succeeded)
	})

	t.Run("replayed emergency consumes nothing", func(t *testing.T) {
		ch := newActive(t, "replay")
		_, _, err := emergency.Use(ctx, ch.ID, userID, "flat tyre", "2024-01-01")
		require.NoError(t, err)
		_, _, err = emergency.Use(ctx, ch.ID, userID, "flat tyre", "2024-01-01")
		assert.ErrorIs(t, err, errorvalues.ErrDayAlreadyComplete)
		stored, err := challenges.GetByID(ctx, ch.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.EmergencyUses)
	})
}

func setupLedgerTestDB(t *testing.T) (*testPGConfig, uuid.UUID) {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("accountability"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	var userID uuid.UUID
	err = conn.QueryRow(`INSERT INTO users (name, password_hash) VALUES ($1, $2) RETURNING id;`, "test_name", "pass_hash").Scan(&userID)
	if err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}, userID
}
