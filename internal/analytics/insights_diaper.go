package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
)

const (
	lowWetThreshold       = 4
	noDirtyStreakFlagDays = 2
	stoolSpikeFactor      = 1.5
)

// Hydration marks days with at least one diaper but fewer than four wet
// (or wet and dirty) changes. Nil when no diaper was logged all week.
func Hydration(stats domain.WeeklyStats) *domain.HydrationSignal {
	diaperDays := 0
	low := []string{}
	for _, d := range stats.Days {
		if d.DiaperCount == 0 {
			continue
		}
		diaperDays++
		if d.WetCount+d.BothCount < lowWetThreshold {
			low = append(low, d.DayName)
		}
	}
	if diaperDays == 0 {
		return nil
	}

	h := &domain.HydrationSignal{LowWetDays: low}
	switch n := len(low); {
	case n == 0:
		h.Status = domain.HydrationGood
		h.Message = "Wet diaper output looked healthy every day this week."
	case n <= 2:
		h.Status = domain.HydrationWarn
		h.Message = fmt.Sprintf("Fewer than %d wet diapers on %s. Keep an eye on feeds and fluids.",
			lowWetThreshold, strings.Join(low, ", "))
	default:
		h.Status = domain.HydrationConcern
		h.Message = fmt.Sprintf("Fewer than %d wet diapers on %d days (%s). Consider discussing hydration with your pediatrician.",
			lowWetThreshold, n, strings.Join(low, ", "))
	}
	return h
}

// StoolPattern raises stool flags for the week. Nil when no diaper was logged.
func StoolPattern(stats domain.WeeklyStats) *domain.StoolPattern {
	if stats.Totals.Diapers == 0 {
		return nil
	}

	sp := &domain.StoolPattern{
		CurrentDirtyTotal:  stats.Totals.Dirty + stats.Totals.Both,
		PreviousDirtyTotal: stats.PreviousTotals.Dirty + stats.PreviousTotals.Both,
		UnusualColors:      []domain.PooType{},
	}

	streak := 0
	unusual := make(map[domain.PooType]struct{})
	for _, d := range stats.Days {
		if d.DirtyCount+d.BothCount == 0 {
			streak++
			if streak > sp.MaxNoDirtyStreak {
				sp.MaxNoDirtyStreak = streak
			}
		} else {
			streak = 0
		}
		for _, p := range d.PooTypes {
			if !p.Typical() {
				unusual[p] = struct{}{}
			}
		}
	}
	sp.NoDirtyStreakFlag = sp.MaxNoDirtyStreak >= noDirtyStreakFlagDays

	if sp.PreviousDirtyTotal > 0 &&
		float64(sp.CurrentDirtyTotal) > stoolSpikeFactor*float64(sp.PreviousDirtyTotal) {
		sp.StoolFrequencyIncreased = true
	}

	for p := range unusual {
		sp.UnusualColors = append(sp.UnusualColors, p)
	}
	sort.Slice(sp.UnusualColors, func(i, j int) bool { return sp.UnusualColors[i] < sp.UnusualColors[j] })
	sp.UnusualColorFlag = len(sp.UnusualColors) > 0
	return sp
}

// DiaperHealth folds hydration, stool flags and wet volume into one score.
// Nil when no diaper was logged.
func DiaperHealth(stats domain.WeeklyStats, hydration *domain.HydrationSignal, stool *domain.StoolPattern, dob *time.Time, now time.Time) *domain.DiaperHealthScore {
	if stats.Totals.Diapers == 0 {
		return nil
	}

	score := 80
	if hydration != nil {
		switch n := len(hydration.LowWetDays); {
		case n == 0:
			score += 15
		case n <= 2:
			score -= 15
		default:
			score -= 35
		}
	}

	penalty := 10 * stool.FlagCount()
	if penalty > 25 {
		penalty = 25
	}
	score -= penalty

	minWet := minWetPerDay(dob, now)
	avgWet := float64(stats.Totals.Wet+stats.Totals.Both) / DaysPerWeek
	below := avgWet < float64(minWet)
	if below {
		score -= 20
	}
	score = int(clamp(float64(score), 0, 100))

	return &domain.DiaperHealthScore{
		Score:           score,
		Label:           diaperHealthLabel(score),
		AvgWetPerDay:    round1(avgWet),
		MinWetPerDay:    minWet,
		BelowAgeMinimum: below,
	}
}

func diaperHealthLabel(score int) string {
	switch {
	case score >= 90:
		return "Healthy pattern"
	case score >= 70:
		return "On track"
	case score >= 50:
		return "Monitor closely"
	default:
		return "Consult your pediatrician"
	}
}
