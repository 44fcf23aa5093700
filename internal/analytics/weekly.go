package analytics

import (
	"sort"
	"time"

	"github.com/blaisecz/baby-journal/internal/domain"
)

// DaysPerWeek is both the bucket count and the divisor for daily averages;
// days with nothing logged still count.
const DaysPerWeek = 7

const dayKeyLayout = "2006-01-02"

// IsNightStart reports whether a session starting at t (already in local
// time) counts as night sleep: 19:00 up to 06:00.
func IsNightStart(t time.Time) bool {
	h := t.Hour()
	return h >= 19 || h < 6
}

// WeekStart returns local midnight of the first day of the 7-day window
// ending on weekEnd's local date.
func WeekStart(weekEnd time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	end := weekEnd.In(loc)
	return time.Date(end.Year(), end.Month(), end.Day()-(DaysPerWeek-1), 0, 0, 0, 0, loc)
}

// BuildWeeklyStats buckets current logs into the 7 local days ending on
// weekEnd and previous logs into the 7 days before that. Logs falling
// outside those days are ignored. Input order does not affect the result.
func BuildWeeklyStats(current, previous []domain.Log, weekEnd time.Time, loc *time.Location, dob *time.Time) domain.WeeklyStats {
	if loc == nil {
		loc = time.UTC
	}
	start := WeekStart(weekEnd, loc)
	cur := bucketLogs(current, start, loc)
	prev := bucketLogs(previous, start.AddDate(0, 0, -DaysPerWeek), loc)

	stats := domain.WeeklyStats{
		RangeStart:     start,
		RangeEnd:       start.AddDate(0, 0, DaysPerWeek-1),
		Days:           cur.days,
		Totals:         cur.totals(),
		PreviousTotals: prev.totals(),
	}
	stats.Averages = averagesOf(stats.Totals)
	stats.WeekOverWeek = weekOverWeek(stats.Totals, stats.PreviousTotals)
	stats.FeedInsights = cur.feedInsights(stats.Totals)
	stats.SleepInsights = cur.sleepInsights(stats.Totals, dob, weekEnd)
	stats.DiaperInsights = cur.diaperInsights(stats.Totals, stats.Averages)
	return stats
}

// buckets accumulates one 7-day window.
type buckets struct {
	days         []domain.DailyStats
	index        map[string]int
	poo          []map[domain.PooType]struct{}
	feedHours    [24]int
	diaperHours  [24]int
	nightFeeds   int
	longestSleep time.Duration
}

func bucketLogs(logs []domain.Log, start time.Time, loc *time.Location) *buckets {
	b := &buckets{
		days:  make([]domain.DailyStats, DaysPerWeek),
		index: make(map[string]int, DaysPerWeek),
		poo:   make([]map[domain.PooType]struct{}, DaysPerWeek),
	}
	for i := 0; i < DaysPerWeek; i++ {
		day := time.Date(start.Year(), start.Month(), start.Day()+i, 0, 0, 0, 0, loc)
		key := day.Format(dayKeyLayout)
		b.days[i] = domain.DailyStats{Date: key, DayName: day.Format("Mon")}
		b.index[key] = i
		b.poo[i] = make(map[domain.PooType]struct{})
	}

	ordered := sortedCopy(logs)
	for i := range ordered {
		b.add(&ordered[i], loc)
	}

	for i := range b.days {
		d := &b.days[i]
		d.NursingDurationMin = round1(d.NursingDurationMin)
		d.BottleTotalMl = round1(d.BottleTotalMl)
		d.NapHours = round1(d.NapHours)
		d.NightHours = round1(d.NightHours)
		d.SleepHours = round1(d.SleepHours)
		for p := range b.poo[i] {
			d.PooTypes = append(d.PooTypes, p)
		}
		sort.Slice(d.PooTypes, func(x, y int) bool { return d.PooTypes[x] < d.PooTypes[y] })
	}
	return b
}

func (b *buckets) add(l *domain.Log, loc *time.Location) {
	local := l.StartedAt.In(loc)
	idx, ok := b.index[local.Format(dayKeyLayout)]
	if !ok {
		return
	}
	day := &b.days[idx]

	switch l.Type {
	case domain.LogTypeFeed:
		day.FeedCount++
		b.feedHours[local.Hour()]++
		if IsNightStart(local) {
			b.nightFeeds++
		}
		d := l.FeedDetails()
		switch d.FeedType {
		case domain.FeedTypeNursing:
			day.NursingCount++
			day.NursingDurationMin += l.Duration().Minutes()
		case domain.FeedTypeBottle:
			day.BottleCount++
			if d.AmountML != nil {
				day.BottleTotalMl += *d.AmountML
			}
		}
	case domain.LogTypeSleep:
		dur := l.Duration()
		hours := dur.Hours()
		day.SleepHours += hours
		if IsNightStart(local) {
			day.NightHours += hours
		} else {
			day.NapHours += hours
			day.NapCount++
		}
		if dur > b.longestSleep {
			b.longestSleep = dur
		}
	case domain.LogTypeDiaper:
		day.DiaperCount++
		b.diaperHours[local.Hour()]++
		d := l.DiaperDetails()
		// Untyped changes count as wet so the per-type counts always add up.
		switch d.DiaperType {
		case domain.DiaperDirty:
			day.DirtyCount++
		case domain.DiaperBoth:
			day.BothCount++
		default:
			day.WetCount++
		}
		if d.PooType != "" {
			b.poo[idx][d.PooType] = struct{}{}
		}
	}
}

func (b *buckets) totals() domain.WeeklyTotals {
	var t domain.WeeklyTotals
	for _, d := range b.days {
		t.Feeds += d.FeedCount
		t.NursingCount += d.NursingCount
		t.BottleCount += d.BottleCount
		t.NursingDurationMin += d.NursingDurationMin
		t.BottleTotalMl += d.BottleTotalMl
		t.SleepHours += d.SleepHours
		t.NapHours += d.NapHours
		t.NightHours += d.NightHours
		t.Diapers += d.DiaperCount
		t.Wet += d.WetCount
		t.Dirty += d.DirtyCount
		t.Both += d.BothCount
	}
	t.NursingDurationMin = round1(t.NursingDurationMin)
	t.BottleTotalMl = round1(t.BottleTotalMl)
	t.SleepHours = round1(t.SleepHours)
	t.NapHours = round1(t.NapHours)
	t.NightHours = round1(t.NightHours)
	return t
}

func averagesOf(t domain.WeeklyTotals) domain.DailyAverages {
	const n = float64(DaysPerWeek)
	return domain.DailyAverages{
		Feeds:              round1(float64(t.Feeds) / n),
		NursingDurationMin: round1(t.NursingDurationMin / n),
		BottleTotalMl:      round1(t.BottleTotalMl / n),
		SleepHours:         round1(t.SleepHours / n),
		NapHours:           round1(t.NapHours / n),
		NightHours:         round1(t.NightHours / n),
		Diapers:            round1(float64(t.Diapers) / n),
		Wet:                round1(float64(t.Wet) / n),
		Dirty:              round1(float64(t.Dirty) / n),
	}
}

func weekOverWeek(cur, prev domain.WeeklyTotals) domain.WeekOverWeek {
	return domain.WeekOverWeek{
		Feeds:      percentChange(float64(cur.Feeds), float64(prev.Feeds)),
		BottleMl:   percentChange(cur.BottleTotalMl, prev.BottleTotalMl),
		NursingMin: percentChange(cur.NursingDurationMin, prev.NursingDurationMin),
		SleepHours: percentChange(cur.SleepHours, prev.SleepHours),
		Diapers:    percentChange(float64(cur.Diapers), float64(prev.Diapers)),
		Wet:        percentChange(float64(cur.Wet), float64(prev.Wet)),
		Dirty:      percentChange(float64(cur.Dirty), float64(prev.Dirty)),
	}
}

func (b *buckets) feedInsights(t domain.WeeklyTotals) domain.FeedInsights {
	perDay := make([]int, len(b.days))
	for i, d := range b.days {
		perDay[i] = d.FeedCount
	}
	fi := domain.FeedInsights{
		PeakHour:       peakIndex(b.feedHours[:]),
		PeakDayIndex:   peakIndex(perDay),
		NursingPercent: percentOf(float64(t.NursingCount), float64(t.Feeds)),
		BottlePercent:  percentOf(float64(t.BottleCount), float64(t.Feeds)),
		NightFeedCount: b.nightFeeds,
	}
	if t.BottleCount > 0 {
		fi.AvgBottleMl = round1(t.BottleTotalMl / float64(t.BottleCount))
	}
	return fi
}

func (b *buckets) sleepInsights(t domain.WeeklyTotals, dob *time.Time, now time.Time) domain.SleepInsights {
	lo, hi := recommendedSleepRange(dob, now)
	si := domain.SleepInsights{
		NapPercent:          percentOf(t.NapHours, t.SleepHours),
		NightPercent:        percentOf(t.NightHours, t.SleepHours),
		RecommendedMinHours: lo,
		RecommendedMaxHours: hi,
		LongestStretchHours: round1(b.longestSleep.Hours()),
	}

	daysWithSleep := 0
	for _, d := range b.days {
		if d.SleepHours > 0 {
			daysWithSleep++
		}
	}
	if daysWithSleep == 0 {
		return si
	}
	avg := t.SleepHours / float64(daysWithSleep)
	si.AvgDailyHours = round1(avg)
	si.QualityScore = sleepQualityScore(avg, lo, hi)
	return si
}

// sleepQualityScore is 100 inside the recommended range and falls off
// proportionally outside it.
func sleepQualityScore(avg, lo, hi float64) int {
	switch {
	case avg < lo:
		return percentOf(avg, lo)
	case avg > hi:
		return int(clamp(float64(100-percentOf(avg-hi, hi)), 0, 100))
	default:
		return 100
	}
}

func (b *buckets) diaperInsights(t domain.WeeklyTotals, avg domain.DailyAverages) domain.DiaperInsights {
	perDay := make([]int, len(b.days))
	for i, d := range b.days {
		perDay[i] = d.DiaperCount
	}
	total := float64(t.Diapers)
	return domain.DiaperInsights{
		PeakHour:     peakIndex(b.diaperHours[:]),
		PeakDayIndex: peakIndex(perDay),
		WetPercent:   percentOf(float64(t.Wet), total),
		DirtyPercent: percentOf(float64(t.Dirty), total),
		BothPercent:  percentOf(float64(t.Both), total),
		AvgPerDay:    avg.Diapers,
	}
}
