package analytics

import (
	"fmt"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
)

// sleepDebtBand is the tolerance in hours either side of the target.
const sleepDebtBand = 2.0

// SleepDebt compares the week's logged sleep with the age target, counting
// only days on which any sleep was logged. Nil when no day has sleep.
func SleepDebt(stats domain.WeeklyStats, dob *time.Time, now time.Time) *domain.SleepDebt {
	days := 0
	for _, d := range stats.Days {
		if d.SleepHours > 0 {
			days++
		}
	}
	if days == 0 {
		return nil
	}

	target := dailySleepTargetHours(dob, now)
	expected := target * float64(days)
	actual := stats.Totals.SleepHours
	diff := expected - actual

	sd := &domain.SleepDebt{
		TargetHours:   target,
		DaysWithSleep: days,
		ExpectedHours: round1(expected),
		ActualHours:   round1(actual),
		DiffHours:     round1(diff),
	}
	switch {
	case diff > sleepDebtBand:
		sd.Status = domain.SleepDebtBehind
		sd.Message = fmt.Sprintf("%s behind the age target this week", formatHoursMinutes(diff))
	case diff < -sleepDebtBand:
		sd.Status = domain.SleepDebtAhead
		sd.Message = fmt.Sprintf("%s ahead of the age target this week", formatHoursMinutes(-diff))
	default:
		sd.Status = domain.SleepDebtOnTrack
		sd.Message = "Sleep is on track for this age"
	}
	return sd
}

// NapArchitecture splits the week's sleep logs into naps and night
// sessions by start hour. Nil when no sleep was logged in the window.
func NapArchitecture(logs []domain.Log, stats domain.WeeklyStats, dob *time.Time, now time.Time, loc *time.Location) *domain.NapArchitecture {
	if loc == nil {
		loc = time.UTC
	}
	start := stats.RangeStart.In(loc)
	end := start.AddDate(0, 0, DaysPerWeek)

	var (
		na        domain.NapArchitecture
		napDur    time.Duration
		nightDur  time.Duration
		longest   *domain.Log
		sleepDays = make(map[string]struct{})
	)
	sorted := sortedCopy(logs)
	for i := range sorted {
		l := &sorted[i]
		if l.Type != domain.LogTypeSleep {
			continue
		}
		local := l.StartedAt.In(loc)
		if local.Before(start) || !local.Before(end) {
			continue
		}
		sleepDays[local.Format(dayKeyLayout)] = struct{}{}

		dur := l.Duration()
		if IsNightStart(local) {
			na.NightCount++
			nightDur += dur
		} else {
			na.NapCount++
			napDur += dur
		}
		if longest == nil || dur > longest.Duration() {
			longest = l
		}
	}
	if len(sleepDays) == 0 {
		return nil
	}

	na.NapHours = round1(napDur.Hours())
	na.NightHours = round1(nightDur.Hours())
	if na.NapCount > 0 {
		na.AvgNapMinutes = round1(napDur.Minutes() / float64(na.NapCount))
	}
	if na.NightCount > 0 {
		na.AvgNightHours = round1(nightDur.Hours() / float64(na.NightCount))
	}
	napsPerDay := float64(na.NapCount) / float64(len(sleepDays))
	na.NapsPerDay = round1(napsPerDay)

	if longest != nil && longest.Duration() > 0 {
		startedAt := longest.StartedAt
		na.LongestStretchHours = round1(longest.Duration().Hours())
		na.LongestStretchDay = startedAt.In(loc).Format("Mon")
		na.LongestStretchStart = &startedAt
	}

	if months, ok := domain.AgeInMonths(dob, now); ok && months < 6 && napsPerDay < 2 {
		na.FewerNapsThanTypical = true
	}
	return &na
}
