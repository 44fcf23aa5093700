// Package analytics derives next-feed predictions, weekly statistics and
// insights from caregiving logs. Every function is pure: no I/O, no shared
// state, and inputs are never mutated.
package analytics

import (
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
)

// AgeParams is a plausible feed-interval window for an age.
type AgeParams struct {
	MinMinutes     int `json:"min_minutes"`
	MaxMinutes     int `json:"max_minutes"`
	DefaultMinutes int `json:"default_minutes"`
}

var unknownAgeParams = AgeParams{MinMinutes: 120, MaxMinutes: 180, DefaultMinutes: 150}

var ageParamTable = []struct {
	belowDays int
	params    AgeParams
}{
	{14, AgeParams{90, 180, 135}},
	{60, AgeParams{120, 210, 165}},
	{120, AgeParams{150, 240, 195}},
	{180, AgeParams{180, 270, 225}},
	{365, AgeParams{210, 300, 255}},
}

// FeedIntervalParams maps age to the feed-interval window.
func FeedIntervalParams(dob *time.Time, now time.Time) AgeParams {
	days, ok := domain.AgeInDays(dob, now)
	if !ok {
		return unknownAgeParams
	}
	for _, row := range ageParamTable {
		if days < row.belowDays {
			return row.params
		}
	}
	return AgeParams{240, 360, 300}
}

// dailySleepTargetHours is the per-day sleep target used for sleep debt.
func dailySleepTargetHours(dob *time.Time, now time.Time) float64 {
	months, ok := domain.AgeInMonths(dob, now)
	switch {
	case !ok:
		return 15.5
	case months < 3:
		return 15.5
	case months < 6:
		return 13.5
	case months < 12:
		return 13
	default:
		return 12.5
	}
}

// recommendedSleepRange is the total-sleep range (hours/day) shown alongside stats.
func recommendedSleepRange(dob *time.Time, now time.Time) (lo, hi float64) {
	months, ok := domain.AgeInMonths(dob, now)
	switch {
	case !ok, months < 4:
		return 14, 17
	case months < 12:
		return 12, 16
	case months < 24:
		return 11, 14
	default:
		return 10, 13
	}
}

// minWetPerDay is the lowest healthy average of wet diapers per day.
func minWetPerDay(dob *time.Time, now time.Time) int {
	months, ok := domain.AgeInMonths(dob, now)
	switch {
	case !ok, months < 4:
		return 6
	case months < 12:
		return 4
	default:
		return 3
	}
}
