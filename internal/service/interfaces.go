package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/accountability/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=6,max=72"`
}

type PresolutionRequest struct {
	Obstacle        string `json:"obstacle" validate:"max=500"`
	MinimumPractice string `json:"minimum_practice" validate:"max=500"`
}

type CreateChallengeRequest struct {
	Title                string               `json:"title" validate:"required,max=200"`
	Duration             int                  `json:"duration" validate:"required,oneof=30 55 66 90"`
	StartDate            string               `json:"start_date" validate:"required,calendar_date"`
	ScheduledTime        string               `json:"scheduled_time" validate:"omitempty,clock_time"`
	HabitSequence        []string             `json:"habit_sequence" validate:"required,min=1,unique,dive,required,max=200"`
	DeclarationText      string               `json:"declaration_text" validate:"required,max=5000"`
	DeclarationSignature *string              `json:"declaration_signature,omitempty" validate:"omitempty,max=200"`
	Presolutions         []PresolutionRequest `json:"presolutions,omitempty" validate:"dive"`
}

type UpdateCheckInRequest struct {
	// Sequence the client rendered, optional. Must match the stored one when given
	HabitSequence   []string `json:"habit_sequence,omitempty"`
	CompletedHabits []string `json:"completed_habits" validate:"dive,max=200"`
	// Client states that the day is done, rejected if completed habits don't cover the sequence
	ClaimComplete bool    `json:"claim_complete"`
	Notes         *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type CreatedChallenge struct {
	Challenge    *entity.Challenge    `json:"challenge"`
	Presolutions []entity.Presolution `json:"presolutions"`
	// Non fatal problems, e.g. presolutions that were not stored
	Warnings []string `json:"warnings,omitempty"`
}

// Clock resolves today's calendar date for the caller
type Clock interface {
	Today(ctx context.Context) string
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type ChallengesServiceI interface {
	// Validates request, stores challenge as the only active one of user and its presolutions
	CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*CreatedChallenge, error)
	// Returns most recently created active challenge or nil
	GetActiveChallenge(ctx context.Context, uid uuid.UUID) (*entity.Challenge, error)
	GetChallenge(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error)
	GetPresolutions(ctx context.Context, id, uid uuid.UUID) ([]entity.Presolution, error)
	GetProgress(ctx context.Context, id, uid uuid.UUID) (*entity.Progress, error)
}

type CheckInsServiceI interface {
	// Returns today's check-in or nil
	GetTodayCheckIn(ctx context.Context, challengeID, uid uuid.UUID) (*entity.CheckIn, error)
	GetChallengeCheckIns(ctx context.Context, challengeID, uid uuid.UUID) ([]entity.CheckIn, error)
	// Records today's habits, same request repeated leaves one identical check-in
	UpdateCheckIn(ctx context.Context, challengeID, uid uuid.UUID, req *UpdateCheckInRequest) (*entity.CheckIn, error)
	// Business failures come back in result, error is reserved for authentication and storage problems
	UseEmergencyProtocol(ctx context.Context, challengeID, uid uuid.UUID, reason string) (*entity.EmergencyResult, error)
}
