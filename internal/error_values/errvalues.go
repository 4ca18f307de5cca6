package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrUnauthenticated  = errors.New("not authenticated")
)

var (
	// Wrapped together with the concrete field errors, check with errors.Is
	ErrValidation = errors.New("validation error")
	// Retryable storage failure (serialization failure, deadlock)
	ErrTransient = errors.New("transient storage error")
)

var (
	ErrChallengeNotFound       = errors.New("challenge doesn't exist")
	ErrWrongOwner              = errors.New("challenge has different owner")
	ErrOwnerNotFound           = errors.New("challenge owner doesn't exist")
	ErrChallengeNotActive      = errors.New("challenge is not active")
	ErrActiveChallengeExists   = errors.New("user already has an active challenge")
	ErrDayAlreadyComplete      = errors.New("today is already complete")
	ErrEmergencyExhausted      = errors.New("no emergency uses left")
	ErrEmergencyReasonRequired = errors.New("emergency reason is required")
)
