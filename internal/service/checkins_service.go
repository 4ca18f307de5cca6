package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/limbo/accountability/pkg/logger"
)

// Upsert is idempotent so transient failures are retried, emergency use never is
const maxUpsertRetries = 3

type CheckInsService struct {
	challenges repository.ChallengesRepositoryI
	checkIns   repository.CheckInsRepositoryI
	emergency  repository.EmergencyRepositoryI
	clock      Clock
}

func NewCheckInsService(challenges repository.ChallengesRepositoryI, checkIns repository.CheckInsRepositoryI,
	emergency repository.EmergencyRepositoryI, clock Clock) *CheckInsService {
	if challenges == nil || checkIns == nil || emergency == nil || clock == nil {
		log.Fatal("on check-ins service provided nil dependencies")
	}
	return &CheckInsService{
		challenges: challenges,
		checkIns:   checkIns,
		emergency:  emergency,
		clock:      clock,
	}
}

func (s *CheckInsService) GetTodayCheckIn(ctx context.Context, challengeID, uid uuid.UUID) (*entity.CheckIn, error) {
	if _, err := ownedChallenge(ctx, s.challenges, challengeID, uid); err != nil {
		return nil, err
	}
	checkIn, err := s.checkIns.GetByDate(ctx, challengeID, s.clock.Today(ctx))
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	return checkIn, nil
}

func (s *CheckInsService) GetChallengeCheckIns(ctx context.Context, challengeID, uid uuid.UUID) ([]entity.CheckIn, error) {
	if _, err := ownedChallenge(ctx, s.challenges, challengeID, uid); err != nil {
		return nil, err
	}
	history, err := s.checkIns.ListByChallenge(ctx, challengeID)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	return history, nil
}

func (s *CheckInsService) UpdateCheckIn(ctx context.Context, challengeID, uid uuid.UUID, req *UpdateCheckInRequest) (*entity.CheckIn, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	if req == nil {
		return nil, invalid("empty request")
	}
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	ch, err := ownedChallenge(ctx, s.challenges, challengeID, uid)
	if err != nil {
		return nil, err
	}
	if ch.Status != entity.StatusActive {
		return nil, errorvalues.ErrChallengeNotActive
	}
	if req.HabitSequence != nil && !slices.Equal(normalizeNames(req.HabitSequence), ch.HabitSequence) {
		return nil, invalid("habit sequence differs from the challenge's one, reload the challenge")
	}
	completed, err := completedInOrder(ch.HabitSequence, req.CompletedHabits)
	if err != nil {
		return nil, err
	}
	isComplete := len(completed) == len(ch.HabitSequence)
	if req.ClaimComplete && !isComplete {
		return nil, invalid(fmt.Sprintf("day is not complete: %d of %d habits checked", len(completed), len(ch.HabitSequence)))
	}
	var notes *string
	if req.Notes != nil && strings.TrimSpace(*req.Notes) != "" {
		notes = req.Notes
	}
	checkIn := &entity.CheckIn{
		ChallengeID:     challengeID,
		UserID:          uid,
		CheckInDate:     s.clock.Today(ctx),
		CompletedHabits: completed,
		TotalHabits:     len(ch.HabitSequence),
		IsComplete:      isComplete,
		Notes:           notes,
	}

	var saved *entity.CheckIn
	operation := func() error {
		var err error
		saved, err = s.checkIns.Upsert(ctx, checkIn)
		if err != nil && !errors.Is(err, errorvalues.ErrTransient) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, next time.Duration) {
		logger.FromContext(ctx).Warn("retrying check-in upsert",
			slog.String("challenge_id", challengeID.String()), slog.Duration("next", next), slog.String("error", err.Error()))
	}
	err = backoff.RetryNotify(operation, upsertBackOff(ctx), notify)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrChallengeNotFound),
			errors.Is(err, errorvalues.ErrChallengeNotActive),
			errors.Is(err, errorvalues.ErrDayAlreadyComplete),
			errors.Is(err, errorvalues.ErrTransient):
			return nil, err
		}
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	return saved, nil
}

func (s *CheckInsService) UseEmergencyProtocol(ctx context.Context, challengeID, uid uuid.UUID, reason string) (*entity.EmergencyResult, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return failedEmergency(errorvalues.ErrEmergencyReasonRequired, 0), nil
	}
	// Read only to report ownership and remaining uses, preconditions are checked again under lock
	ch, err := ownedChallenge(ctx, s.challenges, challengeID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) || errors.Is(err, errorvalues.ErrWrongOwner) {
			return failedEmergency(errorvalues.ErrChallengeNotFound, 0), nil
		}
		return nil, err
	}
	remainingBefore := max(0, entity.MaxEmergencyUses-ch.EmergencyUses)
	checkIn, remaining, err := s.emergency.Use(ctx, challengeID, uid, reason, s.clock.Today(ctx))
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmergencyExhausted):
			return failedEmergency(err, 0), nil
		case errors.Is(err, errorvalues.ErrChallengeNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			return failedEmergency(errorvalues.ErrChallengeNotFound, 0), nil
		case errors.Is(err, errorvalues.ErrChallengeNotActive), errors.Is(err, errorvalues.ErrDayAlreadyComplete):
			return failedEmergency(err, remainingBefore), nil
		}
		return nil, errors.New("emergency repository error: " + err.Error())
	}
	logger.FromContext(ctx).Info("emergency protocol used",
		slog.String("challenge_id", challengeID.String()), slog.Int("remaining", remaining))
	return &entity.EmergencyResult{
		Success:   true,
		Remaining: remaining,
		Message:   fmt.Sprintf("Emergency protocol activated, today counts as complete. %d of %d uses left", remaining, entity.MaxEmergencyUses),
		CheckIn:   checkIn,
	}, nil
}

func failedEmergency(err error, remaining int) *entity.EmergencyResult {
	return &entity.EmergencyResult{
		Success:   false,
		Remaining: remaining,
		Error:     err.Error(),
	}
}

// completedInOrder deduplicates completed habits and orders them as sequence does.
// Every habit must belong to sequence, otherwise a foreign name could fake a complete day
func completedInOrder(sequence, completed []string) ([]string, error) {
	checked := make(map[string]struct{}, len(completed))
	for _, name := range normalizeNames(completed) {
		if !slices.Contains(sequence, name) {
			return nil, invalid(fmt.Sprintf("habit %q is not part of the challenge", name))
		}
		checked[name] = struct{}{}
	}
	result := make([]string, 0, len(checked))
	for _, name := range sequence {
		if _, ok := checked[name]; ok {
			result = append(result, name)
		}
	}
	return result, nil
}

func upsertBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = time.Second
	return backoff.WithContext(backoff.WithMaxRetries(b, maxUpsertRetries), ctx)
}
