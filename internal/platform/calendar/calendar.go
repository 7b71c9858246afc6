// Package calendar isolates civil-calendar date arithmetic behind CivilCalendar
// so that both endpoints of every "days ago" comparison use the same calendar.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/billing_ledger_app/internal/apperrors"
)

// System names a supported calendar implementation.
type System string

const (
	SystemJalali    System = "jalali"
	SystemGregorian System = "gregorian"
)

// Clock returns the current instant. time.Now in production.
type Clock func() time.Time

// CivilCalendar is the date-boundary abstraction consumed by the ledger and aging computations.
// Every returned date is midnight in the calendar's location.
type CivilCalendar interface {
	// Today returns the start of the current civil day.
	Today() time.Time

	// DaysAgo returns the start of the civil day n days before Today.
	DaysAgo(n int) time.Time

	// FiscalYearStart returns the first day of the fiscal year containing Today.
	FiscalYearStart() time.Time

	// StartOfDay returns midnight, in the calendar's location, of the date t
	// carries. The date is read from t itself and is not converted between zones.
	StartOfDay(t time.Time) time.Time

	// Format renders the date t carries as a civil-calendar date (YYYY/MM/DD).
	Format(t time.Time) string

	// System reports which calendar this is.
	System() System
}

// New selects a calendar implementation by name.
func New(system string, loc *time.Location, fiscalStartMonth time.Month, clock Clock) (CivilCalendar, error) {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = time.Now
	}
	switch System(strings.ToLower(strings.TrimSpace(system))) {
	case SystemJalali, "":
		return NewJalali(loc, clock), nil
	case SystemGregorian:
		if fiscalStartMonth < time.January || fiscalStartMonth > time.December {
			return nil, fmt.Errorf("%w: fiscal year start month %d out of range", apperrors.ErrValidation, fiscalStartMonth)
		}
		return NewGregorian(loc, fiscalStartMonth, clock), nil
	default:
		return nil, fmt.Errorf("%w: unknown calendar system %q", apperrors.ErrValidation, system)
	}
}

const secondsPerDay = 24 * 60 * 60

// epochDay is the number of days between 1970-01-01 and the given Gregorian date.
func epochDay(year int, month time.Month, day int) int {
	return int(time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// fromEpochDay is the inverse of epochDay.
func fromEpochDay(n int) (int, time.Month, int) {
	t := time.Unix(int64(n)*secondsPerDay, 0).UTC()
	return t.Year(), t.Month(), t.Day()
}

// civilDay truncates the instant t to midnight of the day it falls on in loc.
func civilDay(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// dateOnly re-anchors the calendar date t carries to midnight in loc. Stored
// dates are date-only values, so their own year, month and day are kept as is.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
