package entity

import (
	"time"

	"github.com/google/uuid"
)

// Emergency protocol budget per challenge
const MaxEmergencyUses = 3

// Allowed challenge lengths in days
var SupportedDurations = []int{30, 55, 66, 90}

type ChallengeStatus string

const (
	StatusActive    ChallengeStatus = "active"
	StatusCompleted ChallengeStatus = "completed"
	StatusFailed    ChallengeStatus = "failed"
	StatusPaused    ChallengeStatus = "paused"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Challenge struct {
	ID                   uuid.UUID       `json:"id"`
	UserID               uuid.UUID       `json:"user_id"`
	Title                string          `json:"title"`
	Duration             int             `json:"duration"`
	StartDate            string          `json:"start_date"`
	EndDate              string          `json:"end_date"`
	ScheduledTime        string          `json:"scheduled_time"`
	HabitSequence        []string        `json:"habit_sequence"`
	DeclarationText      string          `json:"declaration_text"`
	DeclarationSignature *string         `json:"declaration_signature"`
	Status               ChallengeStatus `json:"status"`
	CurrentStreak        int             `json:"current_streak"`
	LongestStreak        int             `json:"longest_streak"`
	TotalCheckIns        int             `json:"total_checkins"`
	EmergencyUses        int             `json:"emergency_uses"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

type Presolution struct {
	ID              uuid.UUID `json:"id"`
	ChallengeID     uuid.UUID `json:"challenge_id"`
	Obstacle        string    `json:"obstacle"`
	MinimumPractice string    `json:"minimum_practice"`
	CreatedAt       time.Time `json:"created_at"`
}

// CheckIn is unique per (ChallengeID, CheckInDate)
type CheckIn struct {
	ID              uuid.UUID `json:"id"`
	ChallengeID     uuid.UUID `json:"challenge_id"`
	UserID          uuid.UUID `json:"user_id"`
	CheckInDate     string    `json:"check_in_date"`
	CompletedHabits []string  `json:"completed_habits"`
	TotalHabits     int       `json:"total_habits"`
	IsComplete      bool      `json:"is_complete"`
	IsEmergency     bool      `json:"is_emergency"`
	EmergencyReason *string   `json:"emergency_reason"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Progress struct {
	ChallengeID        uuid.UUID `json:"challenge_id"`
	Duration           int       `json:"duration"`
	TotalCompletedDays int       `json:"total_completed_days"`
	CurrentStreak      int       `json:"current_streak"`
	LongestStreak      int       `json:"longest_streak"`
	ProgressPercent    float64   `json:"progress_percent"`
	DaysElapsed        int       `json:"days_elapsed"`
	DaysLeft           int       `json:"days_left"`
	EmergencyRemaining int       `json:"emergency_remaining"`
	TodayComplete      bool      `json:"today_complete"`
	IsChallengeDone    bool      `json:"is_challenge_complete"`
}

// EmergencyResult is either a success with Remaining/Message or a failure with Error.
type EmergencyResult struct {
	Success   bool     `json:"success"`
	Remaining int      `json:"remaining"`
	Message   string   `json:"message,omitempty"`
	Error     string   `json:"error,omitempty"`
	CheckIn   *CheckIn `json:"check_in,omitempty"`
}
