// Package calendar resolves "today" as a calendar date in the caller's timezone
// and does whole-day arithmetic on YYYY-MM-DD strings.
//
// Dates are never derived from a UTC timestamp: a user in UTC-8 checking in at
// 23:00 local time still checks in for their own day.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	// Layout is the canonical representation of a calendar date
	Layout = "2006-01-02"
	// TimeOfDayLayout is the representation of an advisory time of day
	TimeOfDayLayout = "15:04"
)

var ErrInvalidDate = errors.New("invalid calendar date")

const secondsPerDay = 24 * 60 * 60

type locationKey struct{}

// WithLocation attaches the caller's timezone to ctx. Clock.Today prefers it over the default zone.
func WithLocation(ctx context.Context, loc *time.Location) context.Context {
	if loc == nil {
		return ctx
	}
	return context.WithValue(ctx, locationKey{}, loc)
}

// LocationFromContext returns the timezone attached by WithLocation.
func LocationFromContext(ctx context.Context) (*time.Location, bool) {
	loc, ok := ctx.Value(locationKey{}).(*time.Location)
	return loc, ok && loc != nil
}

type Clock struct {
	loc *time.Location
	now func() time.Time
}

// New creates clock with default timezone name (IANA, "" or "Local" for system zone).
func New(timezone string) (*Clock, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewWithNow creates clock with a custom time source. Used by tests.
func NewWithNow(loc *time.Location, now func() time.Time) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc, now: now}
}

// Today returns the current calendar date in the caller's timezone
func (c *Clock) Today(ctx context.Context) string {
	loc := c.loc
	if ctxLoc, ok := LocationFromContext(ctx); ok {
		loc = ctxLoc
	}
	return Format(c.now().In(loc))
}

// Format takes year, month and day from the wall clock of t in its own location.
func Format(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// Parse validates date and returns it as midnight UTC, which is only used for arithmetic.
func Parse(date string) (time.Time, error) {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, date)
	}
	return t, nil
}

func AddDays(date string, days int) (string, error) {
	t, err := Parse(date)
	if err != nil {
		return "", err
	}
	return Format(t.AddDate(0, 0, days)), nil
}

// DaysBetween returns to - from in whole days (negative when to is earlier).
func DaysBetween(from, to string) (int, error) {
	f, err := Parse(from)
	if err != nil {
		return 0, err
	}
	t, err := Parse(to)
	if err != nil {
		return 0, err
	}
	return int(DayNumber(t) - DayNumber(f)), nil
}

// DayNumber counts days since 1970-01-01 for a date returned by Parse.
// Unlike time.Duration it does not saturate for distant years.
func DayNumber(t time.Time) int64 {
	return t.Unix() / secondsPerDay
}

func ValidTimeOfDay(value string) bool {
	_, err := time.Parse(TimeOfDayLayout, value)
	return err == nil
}

func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}
