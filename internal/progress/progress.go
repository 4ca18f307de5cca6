// Package progress derives streaks and completion numbers from a challenge's check-in history.
package progress

import (
	"errors"
	"sort"

	"github.com/limbo/accountability/pkg/calendar"
	"github.com/limbo/accountability/pkg/entity"
)

var ErrInvalidDuration = errors.New("challenge duration must be positive")

// Calculate is pure: the same challenge, history and today always give the same Progress.
// History order does not matter and a date appearing twice is counted once.
func Calculate(challenge *entity.Challenge, history []entity.CheckIn, today string) (entity.Progress, error) {
	if challenge.Duration <= 0 {
		return entity.Progress{}, ErrInvalidDuration
	}
	days, err := completeDays(history)
	if err != nil {
		return entity.Progress{}, err
	}
	todayNum, err := dayNumber(today)
	if err != nil {
		return entity.Progress{}, err
	}
	elapsed, err := calendar.DaysBetween(challenge.StartDate, today)
	if err != nil {
		return entity.Progress{}, err
	}

	total := len(days)
	current, longest := streaks(days, todayNum)
	percent := float64(total) / float64(challenge.Duration) * 100
	todayComplete := total > 0 && days[total-1] == todayNum

	return entity.Progress{
		ChallengeID:        challenge.ID,
		Duration:           challenge.Duration,
		TotalCompletedDays: total,
		CurrentStreak:      current,
		LongestStreak:      longest,
		ProgressPercent:    min(100, percent),
		DaysElapsed:        max(1, elapsed+1),
		DaysLeft:           max(0, challenge.Duration-total),
		EmergencyRemaining: max(0, entity.MaxEmergencyUses-challenge.EmergencyUses),
		TodayComplete:      todayComplete,
		IsChallengeDone:    total >= challenge.Duration,
	}, nil
}

// completeDays returns distinct day numbers of complete check-ins, ascending
func completeDays(history []entity.CheckIn) ([]int, error) {
	seen := make(map[int]struct{}, len(history))
	days := make([]int, 0, len(history))
	for _, checkIn := range history {
		if !checkIn.IsComplete {
			continue
		}
		n, err := dayNumber(checkIn.CheckInDate)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		days = append(days, n)
	}
	sort.Ints(days)
	return days, nil
}

// streaks walks sorted day numbers once. The trailing run only counts as current
// while its last day is today or yesterday: a fully missed day lapses it.
func streaks(days []int, today int) (current, longest int) {
	run := 0
	for i, day := range days {
		if i > 0 && day == days[i-1]+1 {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	if len(days) == 0 {
		return 0, 0
	}
	if gap := today - days[len(days)-1]; gap <= 1 {
		current = run
	}
	return current, longest
}

func dayNumber(date string) (int, error) {
	t, err := calendar.Parse(date)
	if err != nil {
		return 0, err
	}
	return int(calendar.DayNumber(t)), nil
}
