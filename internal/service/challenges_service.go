package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/progress"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/pkg/calendar"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/limbo/accountability/pkg/logger"
)

type ChallengesService struct {
	challenges   repository.ChallengesRepositoryI
	presolutions repository.PresolutionsRepositoryI
	checkIns     repository.CheckInsRepositoryI
	clock        Clock
}

func NewChallengesService(challenges repository.ChallengesRepositoryI, presolutions repository.PresolutionsRepositoryI,
	checkIns repository.CheckInsRepositoryI, clock Clock) *ChallengesService {
	if challenges == nil || presolutions == nil || checkIns == nil || clock == nil {
		log.Fatal("on challenges service provided nil dependencies")
	}
	return &ChallengesService{
		challenges:   challenges,
		presolutions: presolutions,
		checkIns:     checkIns,
		clock:        clock,
	}
}

func (cs *ChallengesService) CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*CreatedChallenge, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	if req == nil {
		return nil, invalid("empty request")
	}
	normalized := normalizeChallengeRequest(req)
	if err := validateStruct(normalized); err != nil {
		return nil, err
	}
	endDate, err := calendar.AddDays(normalized.StartDate, normalized.Duration)
	if err != nil {
		return nil, invalid(err.Error())
	}
	created, err := cs.challenges.Create(ctx, &entity.Challenge{
		UserID:               uid,
		Title:                normalized.Title,
		Duration:             normalized.Duration,
		StartDate:            normalized.StartDate,
		EndDate:              endDate,
		ScheduledTime:        normalized.ScheduledTime,
		HabitSequence:        normalized.HabitSequence,
		DeclarationText:      normalized.DeclarationText,
		DeclarationSignature: normalized.DeclarationSignature,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrActiveChallengeExists):
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	result := &CreatedChallenge{
		Challenge:    created,
		Presolutions: []entity.Presolution{},
	}
	if len(normalized.Presolutions) == 0 {
		return result, nil
	}
	presolutions := make([]entity.Presolution, 0, len(normalized.Presolutions))
	for _, p := range normalized.Presolutions {
		presolutions = append(presolutions, entity.Presolution{
			Obstacle:        p.Obstacle,
			MinimumPractice: p.MinimumPractice,
		})
	}
	// Challenge exists already, presolutions are auxiliary
	saved, err := cs.presolutions.CreateBatch(ctx, created.ID, presolutions)
	if err != nil {
		logger.FromContext(ctx).Warn("presolutions were not stored",
			slog.String("challenge_id", created.ID.String()), slog.String("error", err.Error()))
		result.Warnings = append(result.Warnings, "challenge created, but presolutions were not saved")
		return result, nil
	}
	result.Presolutions = saved
	return result, nil
}

func (cs *ChallengesService) GetActiveChallenge(ctx context.Context, uid uuid.UUID) (*entity.Challenge, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	active, err := cs.challenges.ListActiveByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	if len(active) == 0 {
		return nil, nil
	}
	if len(active) > 1 {
		ids := make([]string, 0, len(active))
		for _, ch := range active {
			ids = append(ids, ch.ID.String())
		}
		logger.FromContext(ctx).Error("user has more than one active challenge",
			slog.String("uid", uid.String()), slog.Any("challenge_ids", ids))
	}
	return cs.withLiveCounters(ctx, active[0])
}

func (cs *ChallengesService) GetChallenge(ctx context.Context, id, uid uuid.UUID) (*entity.Challenge, error) {
	ch, err := ownedChallenge(ctx, cs.challenges, id, uid)
	if err != nil {
		return nil, err
	}
	return cs.withLiveCounters(ctx, ch)
}

// withLiveCounters replaces counters stored at the last write with ones computed for today,
// a streak lapses without any write happening
func (cs *ChallengesService) withLiveCounters(ctx context.Context, ch *entity.Challenge) (*entity.Challenge, error) {
	history, err := cs.checkIns.ListByChallenge(ctx, ch.ID)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	p, err := progress.Calculate(ch, history, cs.clock.Today(ctx))
	if err != nil {
		return nil, errors.New("calculating progress error: " + err.Error())
	}
	live := *ch
	live.CurrentStreak = p.CurrentStreak
	live.LongestStreak = p.LongestStreak
	live.TotalCheckIns = p.TotalCompletedDays
	return &live, nil
}

func (cs *ChallengesService) GetPresolutions(ctx context.Context, id, uid uuid.UUID) ([]entity.Presolution, error) {
	if _, err := ownedChallenge(ctx, cs.challenges, id, uid); err != nil {
		return nil, err
	}
	presolutions, err := cs.presolutions.ListByChallenge(ctx, id)
	if err != nil {
		return nil, errors.New("presolutions repository error: " + err.Error())
	}
	return presolutions, nil
}

func (cs *ChallengesService) GetProgress(ctx context.Context, id, uid uuid.UUID) (*entity.Progress, error) {
	ch, err := ownedChallenge(ctx, cs.challenges, id, uid)
	if err != nil {
		return nil, err
	}
	history, err := cs.checkIns.ListByChallenge(ctx, id)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	p, err := progress.Calculate(ch, history, cs.clock.Today(ctx))
	if err != nil {
		return nil, errors.New("calculating progress error: " + err.Error())
	}
	return &p, nil
}

// ownedChallenge loads challenge and makes sure uid owns it
func ownedChallenge(ctx context.Context, repo repository.ChallengesRepositoryI, id, uid uuid.UUID) (*entity.Challenge, error) {
	if uid == uuid.Nil {
		return nil, errorvalues.ErrUnauthenticated
	}
	ch, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	if ch.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return ch, nil
}

func normalizeChallengeRequest(req *CreateChallengeRequest) CreateChallengeRequest {
	normalized := *req
	normalized.Title = strings.TrimSpace(req.Title)
	normalized.StartDate = strings.TrimSpace(req.StartDate)
	normalized.ScheduledTime = strings.TrimSpace(req.ScheduledTime)
	normalized.DeclarationText = strings.TrimSpace(req.DeclarationText)
	normalized.HabitSequence = normalizeNames(req.HabitSequence)
	if req.DeclarationSignature != nil {
		signature := strings.TrimSpace(*req.DeclarationSignature)
		normalized.DeclarationSignature = nil
		if signature != "" {
			normalized.DeclarationSignature = &signature
		}
	}
	// Half filled presolutions are dropped
	normalized.Presolutions = make([]PresolutionRequest, 0, len(req.Presolutions))
	for _, p := range req.Presolutions {
		obstacle := strings.TrimSpace(p.Obstacle)
		practice := strings.TrimSpace(p.MinimumPractice)
		if obstacle == "" || practice == "" {
			continue
		}
		normalized.Presolutions = append(normalized.Presolutions, PresolutionRequest{
			Obstacle:        obstacle,
			MinimumPractice: practice,
		})
	}
	return normalized
}
