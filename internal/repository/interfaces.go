package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/accountability/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database, returns its id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type ChallengesRepositoryI interface {
	// Pauses user's active challenges and inserts the new one as active, in one transaction.
	// EndDate must be already computed
	Create(ctx context.Context, challenge *entity.Challenge) (*entity.Challenge, error)
	// Searches challenge with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Lists active challenges of user, newest first. More than one means broken data
	ListActiveByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error)
}

type PresolutionsRepositoryI interface {
	// Inserts all presolutions of challenge or none of them
	CreateBatch(ctx context.Context, challengeID uuid.UUID, presolutions []entity.Presolution) ([]entity.Presolution, error)
	ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]entity.Presolution, error)
}

type CheckInsRepositoryI interface {
	// Returns check-in for date or nil if there is none
	GetByDate(ctx context.Context, challengeID uuid.UUID, date string) (*entity.CheckIn, error)
	// Lists check-ins of challenge ordered by date ascending
	ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]entity.CheckIn, error)
	// Inserts or replaces check-in for (ChallengeID, CheckInDate) and refreshes challenge counters
	Upsert(ctx context.Context, checkIn *entity.CheckIn) (*entity.CheckIn, error)
}

type EmergencyRepositoryI interface {
	// Atomically consumes one emergency use and marks date complete.
	// Returns stored check-in and count of remaining uses
	Use(ctx context.Context, challengeID, userID uuid.UUID, reason, date string) (*entity.CheckIn, int, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// querier is satisfied by both PgConnection and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
